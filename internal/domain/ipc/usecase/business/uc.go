// Package business contains business logic for the ipc domain
package business

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/consts"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/deps"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/dto"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/entities"
	ipcerrors "github.com/archita9/IPC-News-Bot/internal/domain/ipc/errors"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/metrics"
	pkgerrors "github.com/archita9/IPC-News-Bot/pkg/errors"
)

// UseCase contains business logic for IPC news lookups
type UseCase struct {
	fetcher deps.NewsFetcher
	sender  deps.MessageSender
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewUseCase creates a new UseCase instance
func NewUseCase(fetcher deps.NewsFetcher, sender deps.MessageSender, m *metrics.Metrics, logger zerolog.Logger) *UseCase {
	return &UseCase{
		fetcher: fetcher,
		sender:  sender,
		metrics: m,
		logger:  logger.With().Str("component", "ipc_usecase").Logger(),
	}
}

// HandleMessage resolves the message text as a section code and sends the reply
func (uc *UseCase) HandleMessage(ctx context.Context, req *dto.MessageRequest) (*dto.MessageResponse, error) {
	if req.Text == "" {
		return nil, ipcerrors.ErrEmptyMessage
	}

	code := strings.TrimSpace(req.Text)
	phrase, ok := Resolve(code)
	if !ok {
		uc.logger.Debug().
			Int64("user_id", req.UserID).
			Str("text", code).
			Msg("Unsupported IPC section requested")
		uc.metrics.RecordMessage(metrics.OutcomeUnrecognized)

		resp := &dto.MessageResponse{Text: consts.MessageUnsupported}
		return resp, uc.send(ctx, req.ChatID, resp.Text, false)
	}

	uc.logger.Info().
		Int64("user_id", req.UserID).
		Str("section", code).
		Msg("Fetching news for IPC section")
	uc.metrics.RecordMessage(metrics.OutcomeResolved)

	if err := uc.sender.SendTyping(ctx, req.ChatID); err != nil {
		uc.logger.Debug().Err(err).Int64("chat_id", req.ChatID).Msg("Failed to send typing action")
	}

	resp := &dto.MessageResponse{
		Code:     code,
		Resolved: true,
		Text:     fmt.Sprintf(consts.SectionHeaderFormat, code) + uc.FetchRecentNews(ctx, phrase),
	}
	return resp, uc.send(ctx, req.ChatID, resp.Text, true)
}

// HandleHelp sends the list of supported sections
func (uc *UseCase) HandleHelp(ctx context.Context, chatID int64) (*dto.MessageResponse, error) {
	resp := &dto.MessageResponse{Text: HelpText()}
	return resp, uc.send(ctx, chatID, resp.Text, true)
}

// FetchRecentNews returns the formatted news block for phrase.
// Every failure, including a panic inside the fetcher, becomes the fallback text.
func (uc *UseCase) FetchRecentNews(ctx context.Context, phrase string) (text string) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			uc.logger.Error().Interface("panic", r).Str("phrase", phrase).Msg("Recovered from panic while fetching news")
			uc.metrics.RecordFetchError(pkgerrors.ErrorTypeInternal.String())
			uc.metrics.RecordFetch(metrics.FetchResultError, time.Since(start).Seconds())
			text = consts.MessageFetchFailed
		}
	}()

	items, err := uc.fetcher.FetchNews(ctx, phrase+consts.RecencyToken)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		kind := ipcerrors.FeedErrorKind(err)
		uc.logger.Warn().
			Err(err).
			Str("error_type", kind).
			Str("phrase", phrase).
			Msg("Failed to fetch news")
		uc.metrics.RecordFetchError(kind)
		uc.metrics.RecordFetch(metrics.FetchResultError, elapsed)
		return consts.MessageFetchFailed
	}

	if len(items) == 0 {
		uc.metrics.RecordFetch(metrics.FetchResultEmpty, elapsed)
		return consts.MessageNoNews
	}

	uc.metrics.RecordFetch(metrics.FetchResultOK, elapsed)
	return FormatNews(items)
}

// FormatNews renders at most consts.MaxNewsItems entries in feed order
func FormatNews(items []entities.NewsItem) string {
	if len(items) > consts.MaxNewsItems {
		items = items[:consts.MaxNewsItems]
	}

	var b strings.Builder
	b.WriteString(consts.MessageNewsHeader)
	for _, item := range items {
		published := item.PublishedAt
		if published == "" {
			published = consts.DatePlaceholder
		}
		fmt.Fprintf(&b, consts.NewsItemFormat, item.Title, published, item.Link)
	}

	return b.String()
}

// HelpText lists every supported section with its topic
func HelpText() string {
	var b strings.Builder
	b.WriteString(consts.MessageHelpHeader)
	for _, code := range Codes() {
		fmt.Fprintf(&b, "%s - %s\n", code, sectionIndex[code].Title)
	}
	return b.String()
}

func (uc *UseCase) send(ctx context.Context, chatID int64, text string, disableLinkPreview bool) error {
	if err := uc.sender.SendText(ctx, chatID, text, disableLinkPreview); err != nil {
		uc.metrics.RecordReplyFailure()
		return fmt.Errorf("failed to send reply: %w", err)
	}
	return nil
}
