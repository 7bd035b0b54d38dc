// Package feed contains the Google News RSS client
package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog"

	"github.com/archita9/IPC-News-Bot/config"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/entities"
	ipcerrors "github.com/archita9/IPC-News-Bot/internal/domain/ipc/errors"
)

// Fixed Google News edition: English, India
const (
	languageParam = "en-IN"
	regionParam   = "IN"
	editionParam  = "IN:en"
)

// Client fetches and parses news search feeds.
// Implements deps.NewsFetcher.
type Client struct {
	baseURL    string
	userAgent  string
	timeout    time.Duration
	httpClient *http.Client
	parser     *gofeed.Parser
	logger     zerolog.Logger
}

// NewClient creates a feed client from config
func NewClient(cfg *config.NewsConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.FeedURL,
		userAgent:  cfg.UserAgent,
		timeout:    cfg.FetchTimeout,
		httpClient: &http.Client{},
		parser:     gofeed.NewParser(),
		logger:     logger.With().Str("component", "feed_client").Logger(),
	}
}

// BuildSearchURL returns the feed URL for query. Spaces are encoded as '+'.
func BuildSearchURL(baseURL, query string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("feed url %q must be absolute", baseURL)
	}

	u.RawQuery = "q=" + url.QueryEscape(query) +
		"&hl=" + languageParam +
		"&gl=" + regionParam +
		"&ceid=" + editionParam

	return u.String(), nil
}

// FetchNews implements deps.NewsFetcher interface
func (c *Client) FetchNews(ctx context.Context, query string) ([]entities.NewsItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ipcerrors.ErrEmptyQuery
	}

	feedURL, err := BuildSearchURL(c.baseURL, query)
	if err != nil {
		return nil, ipcerrors.NewFeedURLError(err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, ipcerrors.NewFeedURLError(err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug().Str("url", feedURL).Msg("Fetching news feed")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ipcerrors.NewFeedRequestError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, ipcerrors.NewFeedRequestError(fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	feed, err := c.parser.Parse(resp.Body)
	if err != nil {
		// A cancelled body read surfaces here, not at Do
		if ctx.Err() != nil {
			return nil, ipcerrors.NewFeedRequestError(ctx.Err())
		}
		return nil, ipcerrors.NewFeedParseError(err)
	}

	items := make([]entities.NewsItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		// gofeed fills Published from <updated> for Atom entries without
		// <published>; the updated time is shown rather than the placeholder
		items = append(items, entities.NewsItem{
			Title:       item.Title,
			PublishedAt: item.Published,
			Link:        item.Link,
		})
	}

	c.logger.Debug().Int("items", len(items)).Msg("News feed parsed")

	return items, nil
}
