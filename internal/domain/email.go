package domain

import "context"

// RegistrationConfirmationData carries the fields rendered into a
// registration confirmation email.
type RegistrationConfirmationData struct {
	Email       string
	TeamName    string
	MemberCount int
	EventTitle  string
	EventDate   string
	EventTime   string
	Location    string
}

// Mailer sends transactional email. Implementations must be safe to call
// with a noop provider; mail failure never fails the mutation that
// triggered it.
type Mailer interface {
	SendRegistrationConfirmation(ctx context.Context, data *RegistrationConfirmationData) error
}
