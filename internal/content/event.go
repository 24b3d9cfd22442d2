package content

import "time"

// Event is a church event on the events page. Listings are sorted by Date
// ascending (earliest first), the opposite direction from sermons and
// resources. Time is a free-form display string ("8:00 AM - 2:00 PM"), not a
// structured time.
type Event struct {
	Base
	Title                string `json:"title"`
	Description          string `json:"description"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	Category             string `json:"category"`
	ImageURL             string `json:"imageUrl,omitempty"`
	RegistrationRequired bool   `json:"registrationRequired"`
	RegistrationLink     string `json:"registrationLink,omitempty"`
}

// UpcomingEvents filters events to those dated now or later, evaluated
// against wall-clock time at call time. Events whose date does not parse are
// excluded. The input is assumed already sorted ascending by date.
func UpcomingEvents(events []*Event, now time.Time) []*Event {
	upcoming := make([]*Event, 0, len(events))
	for _, ev := range events {
		d, ok := ParseDate(ev.Date)
		if !ok {
			continue
		}
		if !d.Before(now) {
			upcoming = append(upcoming, ev)
		}
	}
	return upcoming
}
