package model

import "time"

// Event is a published campus event students can register for. Organizer is
// a display name, not a reference into the user collection.
type Event struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Date            time.Time `json:"date"`
	Location        string    `json:"location"`
	Organizer       string    `json:"organizer"`
	ImageURL        string    `json:"imageUrl"`
	MaxCapacity     int       `json:"maxCapacity"`
}
