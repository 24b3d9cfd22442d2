package content

// Resource is a downloadable file (study guide, audio, book) listed on the
// resources page. Listings are sorted by CreatedAt descending.
//
// Price and IsPaid are independently settable on purpose: the product model
// lets them disagree (e.g. isPaid=true, price=0) and deriving one from the
// other is an open product question.
type Resource struct {
	Base
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	FileURL       string  `json:"fileUrl"`
	FileName      string  `json:"fileName"`
	FileSize      int64   `json:"fileSize"`
	FileType      string  `json:"fileType"`
	ThumbnailURL  string  `json:"thumbnailUrl,omitempty"`
	Price         float64 `json:"price"`
	IsPaid        bool    `json:"isPaid"`
	DownloadCount int64   `json:"downloadCount"`
}
