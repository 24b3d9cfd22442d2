package content

// Sermon is a recorded or upcoming sermon shown on the sermons page.
// Listings are sorted by Date descending (most recent sermon first),
// not by creation time.
type Sermon struct {
	Base
	Title        string `json:"title"`
	Description  string `json:"description"`
	Speaker      string `json:"speaker"`
	Date         string `json:"date"`
	VideoURL     string `json:"videoUrl,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Duration     string `json:"duration,omitempty"`
}
