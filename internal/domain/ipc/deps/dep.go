// Package deps contains interface definitions for the ipc domain dependencies
package deps

import (
	"context"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/entities"
)

// NewsFetcher loads feed entries for a search query
type NewsFetcher interface {
	// FetchNews returns entries in feed order; an empty slice is not an error
	FetchNews(ctx context.Context, query string) ([]entities.NewsItem, error)
}

// MessageSender defines interface for sending messages via Telegram
type MessageSender interface {
	// SendText sends a plain text message to the chat
	SendText(ctx context.Context, chatID int64, text string, disableLinkPreview bool) error

	// SendTyping shows the typing indicator in the chat
	SendTyping(ctx context.Context, chatID int64) error
}
