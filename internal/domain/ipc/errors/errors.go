// Package errors contains domain-specific errors for the ipc domain
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/archita9/IPC-News-Bot/pkg/errors"
)

// Domain errors for ipc operations
var (
	ErrEmptyMessage = pkgerrors.NewValidationError("message text cannot be empty")
	ErrEmptyQuery   = pkgerrors.NewValidationError("news query cannot be empty")
)

// Feed failure kinds used as log fields and metric labels
const (
	KindEncoding    = "encoding"
	KindUnavailable = "unavailable"
	KindParse       = "parse"
)

// FeedError is a classified news feed failure.
// It unwraps to the typed pkg/errors error it carries.
type FeedError struct {
	kind string
	err  error
}

func (e *FeedError) Error() string {
	return e.err.Error()
}

func (e *FeedError) Unwrap() error {
	return e.err
}

// Kind returns one of KindEncoding, KindUnavailable or KindParse
func (e *FeedError) Kind() string {
	return e.kind
}

// NewFeedRequestError reports a failure to reach the news feed
func NewFeedRequestError(cause error) error {
	return &FeedError{kind: KindUnavailable, err: pkgerrors.NewUnavailableError("news feed request failed", cause)}
}

// NewFeedParseError reports a feed body that could not be parsed
func NewFeedParseError(cause error) error {
	return &FeedError{kind: KindParse, err: pkgerrors.NewInternalError("news feed parse failed", cause)}
}

// NewFeedURLError reports a search URL that could not be built
func NewFeedURLError(cause error) error {
	return &FeedError{kind: KindEncoding, err: pkgerrors.NewInternalError("news feed url encoding failed", cause)}
}

// FeedErrorKind labels err for logs and metrics.
// Errors that are not feed errors fall back to their pkg/errors type.
func FeedErrorKind(err error) string {
	var feedErr *FeedError
	if stderrors.As(err, &feedErr) {
		return feedErr.Kind()
	}
	return pkgerrors.TypeOf(err).String()
}
