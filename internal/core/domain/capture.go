package domain

// CapturedPage is the readable text extracted from a pasted link before it
// is handed to the AI pipeline.
type CapturedPage struct {
	// URL is the fetched location after redirects.
	URL string

	// Title is the page title, if one could be determined.
	Title string

	// Text is the extracted readable text.
	Text string

	// Site is the host the page came from.
	Site string
}
