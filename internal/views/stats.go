package views

import "eduvent/internal/domain"

// Stats is the aggregate dashboard summary.
// swagger:model Stats
type Stats struct {
	Total              int `json:"total"`
	Active             int `json:"active"`
	Paused             int `json:"paused"`
	Ended              int `json:"ended"`
	TotalRegistrations int `json:"totalRegistrations"`
	TotalParticipants  int `json:"totalParticipants"`
}

// RegistrationCount returns how many registrations reference the event.
func RegistrationCount(eventID string, regs []domain.Registration) int {
	n := 0
	for _, r := range regs {
		if r.EventID == eventID {
			n++
		}
	}
	return n
}

// DashboardStats computes the dashboard summary: event counts by status,
// total registrations, and total participants (the sum of member counts).
func DashboardStats(events []domain.Event, regs []domain.Registration) Stats {
	s := Stats{Total: len(events), TotalRegistrations: len(regs)}
	for _, e := range events {
		switch e.Status {
		case domain.StatusActive:
			s.Active++
		case domain.StatusPaused:
			s.Paused++
		case domain.StatusEnded:
			s.Ended++
		}
	}
	for _, r := range regs {
		s.TotalParticipants += r.MemberCount
	}
	return s
}

// ChartPoint is one bar of the per-event registration chart.
// swagger:model ChartPoint
type ChartPoint struct {
	Name          string `json:"name"`
	Registrations int    `json:"registrations"`
}

// ChartData returns one point per event with its registration count. Titles
// longer than 12 runes are shortened to their first 10 runes plus an
// ellipsis for axis labels.
func ChartData(events []domain.Event, regs []domain.Registration) []ChartPoint {
	points := make([]ChartPoint, 0, len(events))
	for _, e := range events {
		name := e.Title
		if runes := []rune(name); len(runes) > 12 {
			name = string(runes[:10]) + "..."
		}
		points = append(points, ChartPoint{
			Name:          name,
			Registrations: RegistrationCount(e.ID, regs),
		})
	}
	return points
}
