package entity

import "time"

// Badge is the lifecycle status of an event.
type Badge string

const (
	BadgeLive     Badge = "LIVE"
	BadgeUpcoming Badge = "UPCOMING"
)

// Valid reports whether b is a known badge.
func (b Badge) Valid() bool {
	return b == BadgeLive || b == BadgeUpcoming
}

// Defaults applied when an event is created without the optional fields.
const (
	DefaultEventIcon  = "📅"
	DefaultEventColor = "#ffffff"
)

// Event is a single club event.
//
// ClubID references Club.ClubID. The link is advisory: events whose club has
// been removed still render in the feed with empty club info.
type Event struct {
	ID          int64
	ClubID      int64
	Title       string
	Description string
	Icon        string
	Badge       Badge
	Date        time.Time
	TimeDisplay string
	Location    string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EnrichedEvent is an event joined with its club's display metadata.
// ClubName and Category stay empty when no club matches ClubID.
type EnrichedEvent struct {
	Event
	ClubName string
	Category Category
}
