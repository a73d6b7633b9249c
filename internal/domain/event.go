package domain

import "time"

// EventStatus is the lifecycle state of an event. All transitions are
// explicit administrator actions; any status may change to any other.
type EventStatus string

const (
	StatusActive EventStatus = "Active"
	StatusPaused EventStatus = "Paused"
	StatusEnded  EventStatus = "Ended"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s EventStatus) bool {
	return s == StatusActive || s == StatusPaused || s == StatusEnded
}

// CategoryAll is the filter value that matches every category.
const CategoryAll = "All"

// Categories observed in the directory. Category is free-form text; these
// are the values the filter UI offers.
var Categories = []string{"Technical", "Cultural", "Entrepreneurship"}

// Event represents a campus activity with a registration window.
// swagger:model Event
type Event struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        string      `json:"date"`
	Time        string      `json:"time"`
	Location    string      `json:"location"`
	Status      EventStatus `json:"status"`
	Category    string      `json:"category"`
	ImageURL    string      `json:"imageUrl"`
	// RegistrationDeadline closes the registration window; display fields
	// Date and Time are free-form and never compared.
	RegistrationDeadline time.Time `json:"registrationDeadline"`
}

// CanRegister reports whether the event accepts registrations at the given
// instant. Eligibility is a derived predicate, not stored state: it depends
// on wall-clock time and must be re-evaluated at the moment of submission.
func (e Event) CanRegister(now time.Time) bool {
	return e.Status == StatusActive && now.Before(e.RegistrationDeadline)
}
