package domain

import "time"

// Registration is a team's signup record against one event.
// swagger:model Registration
type Registration struct {
	ID       string `json:"id"`
	EventID  string `json:"eventId"`
	TeamName string `json:"teamName"`
	Email    string `json:"email"`
	// MemberCount is at least 1. The form caps it at 10, but that is a
	// form-level hint, not a domain invariant.
	MemberCount      int       `json:"memberCount"`
	RegistrationDate time.Time `json:"registrationDate"`
}

// NewRegistration returns a Registration for the given event. ID and
// RegistrationDate are set by the directory service on create.
func NewRegistration(eventID, teamName, email string, memberCount int) *Registration {
	return &Registration{
		EventID:     eventID,
		TeamName:    teamName,
		Email:       email,
		MemberCount: memberCount,
	}
}
