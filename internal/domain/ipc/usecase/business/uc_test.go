package business

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/consts"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/dto"
	"github.com/archita9/IPC-News-Bot/internal/domain/ipc/entities"
	ipcerrors "github.com/archita9/IPC-News-Bot/internal/domain/ipc/errors"
	"github.com/archita9/IPC-News-Bot/internal/infrastructure/metrics"
)

type mockFetcher struct {
	items   []entities.NewsItem
	err     error
	panics  bool
	queries []string
}

func (m *mockFetcher) FetchNews(_ context.Context, query string) ([]entities.NewsItem, error) {
	m.queries = append(m.queries, query)
	if m.panics {
		panic("feed exploded")
	}
	return m.items, m.err
}

type sentMessage struct {
	chatID             int64
	text               string
	disableLinkPreview bool
}

type mockSender struct {
	sent    []sentMessage
	typing  []int64
	sendErr error
}

func (m *mockSender) SendText(_ context.Context, chatID int64, text string, disableLinkPreview bool) error {
	m.sent = append(m.sent, sentMessage{chatID: chatID, text: text, disableLinkPreview: disableLinkPreview})
	return m.sendErr
}

func (m *mockSender) SendTyping(_ context.Context, chatID int64) error {
	m.typing = append(m.typing, chatID)
	return errors.New("typing not supported")
}

func newTestUseCase(fetcher *mockFetcher, sender *mockSender) *UseCase {
	return NewUseCase(fetcher, sender, metrics.GetDefaultMetrics(), zerolog.Nop())
}

func newsItems(n int) []entities.NewsItem {
	items := make([]entities.NewsItem, n)
	for i := range items {
		items[i] = entities.NewsItem{
			Title:       fmt.Sprintf("Headline %d", i+1),
			PublishedAt: fmt.Sprintf("Mon, 1%d Oct 2026 08:00:00 GMT", i),
			Link:        fmt.Sprintf("https://news.example.com/%d", i+1),
		}
	}
	return items
}

func TestFetchRecentNews_Empty(t *testing.T) {
	fetcher := &mockFetcher{}
	uc := newTestUseCase(fetcher, &mockSender{})

	got := uc.FetchRecentNews(context.Background(), "assault OR beaten India")

	assert.Equal(t, "\n❌ No news found in the last 7 days.\n", got)
	assert.Equal(t, []string{"assault OR beaten India when:7d"}, fetcher.queries)
}

func TestFetchRecentNews_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fetcher   *mockFetcher
		wantLabel string
	}{
		{"network", &mockFetcher{err: ipcerrors.NewFeedRequestError(errors.New("connection reset"))}, ipcerrors.KindUnavailable},
		{"parse", &mockFetcher{err: ipcerrors.NewFeedParseError(errors.New("unexpected EOF"))}, ipcerrors.KindParse},
		{"encoding", &mockFetcher{err: ipcerrors.NewFeedURLError(errors.New("invalid escape"))}, ipcerrors.KindEncoding},
		{"untyped", &mockFetcher{err: errors.New("boom")}, "internal"},
		{"partial result with error", &mockFetcher{items: newsItems(2), err: errors.New("boom")}, "internal"},
		{"panic", &mockFetcher{panics: true}, "internal"},
	}

	m := metrics.GetDefaultMetrics()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.fetcher, &mockSender{})
			before := testutil.ToFloat64(m.FeedFetchErrors.WithLabelValues(tt.wantLabel))

			got := uc.FetchRecentNews(context.Background(), "hurt OR physical assault India")

			assert.Equal(t, "\n⚠️ Error fetching news. Please try again later.\n", got)
			assert.Equal(t, before+1, testutil.ToFloat64(m.FeedFetchErrors.WithLabelValues(tt.wantLabel)))
		})
	}
}

func TestFormatNews_CapsAndOrder(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("%d entries", n), func(t *testing.T) {
			items := newsItems(n)
			got := FormatNews(items)

			require.True(t, strings.HasPrefix(got, "\n📰 Latest IPC News (Last 7 Days):\n\n"))

			want := min(n, 3)
			assert.Equal(t, want, strings.Count(got, "• "))

			// Blocks appear in feed order
			last := -1
			for i := 0; i < want; i++ {
				idx := strings.Index(got, items[i].Title)
				require.GreaterOrEqual(t, idx, 0)
				assert.Greater(t, idx, last)
				last = idx
				assert.Contains(t, got, items[i].Link)
				assert.Contains(t, got, "🕒 "+items[i].PublishedAt)
			}
			for i := want; i < n; i++ {
				assert.NotContains(t, got, items[i].Title)
			}
		})
	}
}

func TestFormatNews_ExactLayout(t *testing.T) {
	got := FormatNews([]entities.NewsItem{
		{Title: "Acid attack case filed", PublishedAt: "Tue, 14 Oct 2026 06:30:00 GMT", Link: "https://a.example/1"},
		{Title: "Court hears appeal", Link: "https://a.example/2"},
	})

	want := "\n📰 Latest IPC News (Last 7 Days):\n\n" +
		"• Acid attack case filed\n🕒 Tue, 14 Oct 2026 06:30:00 GMT\nhttps://a.example/1\n\n" +
		"• Court hears appeal\n🕒 Date not available\nhttps://a.example/2\n\n"
	assert.Equal(t, want, got)
}

func TestHandleMessage_ResolvedSection(t *testing.T) {
	fetcher := &mockFetcher{items: newsItems(5)}
	sender := &mockSender{}
	uc := newTestUseCase(fetcher, sender)

	resp, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 100, UserID: 7, Text: "326"})
	require.NoError(t, err)

	assert.True(t, resp.Resolved)
	assert.Equal(t, "326", resp.Code)
	assert.Equal(t, []string{"acid attack OR chemical burn India when:7d"}, fetcher.queries)
	assert.Equal(t, []int64{100}, sender.typing)

	require.Len(t, sender.sent, 1)
	msg := sender.sent[0]
	assert.Equal(t, int64(100), msg.chatID)
	assert.True(t, msg.disableLinkPreview)
	assert.True(t, strings.HasPrefix(msg.text, "📘 IPC Act 326\n"))
	assert.Equal(t, 3, strings.Count(msg.text, "• "))
	assert.Equal(t, resp.Text, msg.text)
}

func TestHandleMessage_UnknownSection(t *testing.T) {
	fetcher := &mockFetcher{items: newsItems(5)}
	sender := &mockSender{}
	uc := newTestUseCase(fetcher, sender)

	resp, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 100, Text: "999"})
	require.NoError(t, err)

	assert.False(t, resp.Resolved)
	assert.Empty(t, fetcher.queries, "no network call for unknown sections")
	assert.Empty(t, sender.typing)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "❌ IPC Act not supported yet.\n\n📌 Send an IPC section number like:\n320\n323\n326", sender.sent[0].text)
}

func TestHandleMessage_TrimsWhitespace(t *testing.T) {
	fetcher := &mockFetcher{}
	sender := &mockSender{}
	uc := newTestUseCase(fetcher, sender)

	resp, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 1, Text: " 320 "})
	require.NoError(t, err)

	assert.True(t, resp.Resolved)
	assert.Equal(t, "320", resp.Code)
	assert.Equal(t, "📘 IPC Act 320\n"+consts.MessageNoNews, resp.Text)
}

func TestHandleMessage_WhitespaceOnly(t *testing.T) {
	sender := &mockSender{}
	uc := newTestUseCase(&mockFetcher{}, sender)

	resp, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 1, Text: "   "})
	require.NoError(t, err)
	assert.Equal(t, consts.MessageUnsupported, resp.Text)
}

func TestHandleMessage_EmptyText(t *testing.T) {
	sender := &mockSender{}
	uc := newTestUseCase(&mockFetcher{}, sender)

	_, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 1})
	assert.ErrorIs(t, err, ipcerrors.ErrEmptyMessage)
	assert.Empty(t, sender.sent)
}

func TestHandleMessage_FetchFailureStillReplies(t *testing.T) {
	sender := &mockSender{}
	uc := newTestUseCase(&mockFetcher{err: errors.New("dial tcp: no such host")}, sender)

	_, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 1, Text: "38"})
	require.NoError(t, err)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "📘 IPC Act 38\n"+consts.MessageFetchFailed, sender.sent[0].text)
}

func TestHandleMessage_SendFailure(t *testing.T) {
	sender := &mockSender{sendErr: errors.New("bot was blocked by the user")}
	uc := newTestUseCase(&mockFetcher{}, sender)

	_, err := uc.HandleMessage(context.Background(), &dto.MessageRequest{ChatID: 1, Text: "999"})
	assert.Error(t, err)
}

func TestHandleHelp_ListsAllSections(t *testing.T) {
	sender := &mockSender{}
	uc := newTestUseCase(&mockFetcher{}, sender)

	resp, err := uc.HandleHelp(context.Background(), 5)
	require.NoError(t, err)

	for _, s := range consts.Sections {
		assert.Contains(t, resp.Text, s.Code+" - "+s.Title)
	}
	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(5), sender.sent[0].chatID)
}
