package content

// HomepageEvent is the single featured event on the home page. There is at
// most one; it lives under a fixed key with no id or index.
type HomepageEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"` // free-form display string
	Time        string `json:"time"` // free-form display string
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// DefaultHomepageEvent is returned whenever no homepage event has been saved
// yet. Reads must never fail on absence.
func DefaultHomepageEvent() *HomepageEvent {
	return &HomepageEvent{
		Title:       "Annual Thanksgiving Service 2024",
		Description: "Join us for a special time of worship, thanksgiving, and testimonies as we celebrate God's goodness and faithfulness throughout the year.",
		Date:        "December 15, 2024",
		Time:        "8:00 AM - 2:00 PM",
	}
}

// LiveStreamSettings controls the watch-live page and banner.
type LiveStreamSettings struct {
	IsLive       bool   `json:"isLive"`
	YoutubeURL   string `json:"youtubeUrl"`
	ScheduleText string `json:"scheduleText"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// DefaultScheduleText is the fallback message shown when no stream is live.
const DefaultScheduleText = "Check back soon for our next live service!"

func DefaultLiveStreamSettings() *LiveStreamSettings {
	return &LiveStreamSettings{
		IsLive:       false,
		YoutubeURL:   "",
		ScheduleText: DefaultScheduleText,
	}
}
