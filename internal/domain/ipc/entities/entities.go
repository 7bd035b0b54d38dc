// Package entities contains domain entities
package entities

// Section maps a recognized IPC section number to its news search phrase
type Section struct {
	Code   string `json:"code"`
	Title  string `json:"title"`
	Phrase string `json:"phrase"`
}

// NewsItem is a single feed entry used to build a reply
type NewsItem struct {
	Title string `json:"title"`
	// PublishedAt is the raw timestamp from the feed, empty when absent
	PublishedAt string `json:"publishedAt"`
	Link        string `json:"link"`
}
