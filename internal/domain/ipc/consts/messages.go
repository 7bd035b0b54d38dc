package consts

// News query parameters
const (
	// RecencyToken restricts Google News results to the last 7 days
	RecencyToken = " when:7d"
	// MaxNewsItems is the number of entries included in a reply
	MaxNewsItems = 3
	// DatePlaceholder replaces a missing entry timestamp
	DatePlaceholder = "Date not available"
)

// Reply texts
const (
	MessageUnsupported = "❌ IPC Act not supported yet.\n\n" +
		"📌 Send an IPC section number like:\n" +
		"320\n323\n326"

	// SectionHeaderFormat takes the resolved section code
	SectionHeaderFormat = "📘 IPC Act %s\n"

	MessageNewsHeader  = "\n📰 Latest IPC News (Last 7 Days):\n\n"
	MessageNoNews      = "\n❌ No news found in the last 7 days.\n"
	MessageFetchFailed = "\n⚠️ Error fetching news. Please try again later.\n"

	// NewsItemFormat takes title, timestamp and link
	NewsItemFormat = "• %s\n🕒 %s\n%s\n\n"

	MessageHelpHeader = "📚 IPC News Bot\n\n" +
		"Send an IPC section number and I will reply with the latest news from the last 7 days.\n\n" +
		"Supported sections:\n"
)
