package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() Dataset {
	return Dataset{
		Events: []Event{
			{ID: "1", Title: "Hackathon", Status: StatusActive},
			{ID: "2", Title: "Fest", Status: StatusActive},
		},
		Registrations: []Registration{
			{ID: "r1", EventID: "1", TeamName: "Alpha", MemberCount: 3},
			{ID: "r2", EventID: "2", TeamName: "Beta", MemberCount: 2},
			{ID: "r3", EventID: "1", TeamName: "Gamma", MemberCount: 1},
		},
	}
}

func TestWithEvent_AppendsWithoutMutatingReceiver(t *testing.T) {
	ds := sampleDataset()
	next := ds.WithEvent(Event{ID: "3", Title: "Workshop"})

	assert.Len(t, ds.Events, 2, "receiver must be unchanged")
	require.Len(t, next.Events, 3)
	assert.Equal(t, "3", next.Events[2].ID)
}

func TestWithUpdatedEvent_PreservesPosition(t *testing.T) {
	ds := sampleDataset()
	next, applied := ds.WithUpdatedEvent(Event{ID: "1", Title: "Hackathon v2", Status: StatusPaused})

	assert.True(t, applied)
	assert.Equal(t, "Hackathon v2", next.Events[0].Title)
	assert.Equal(t, "Hackathon", ds.Events[0].Title, "receiver must be unchanged")
}

func TestWithUpdatedEvent_MissingIDNeverInserts(t *testing.T) {
	ds := sampleDataset()
	next, applied := ds.WithUpdatedEvent(Event{ID: "nope", Title: "Ghost"})

	assert.False(t, applied)
	assert.Len(t, next.Events, 2)
}

func TestWithoutEvent_CascadesRegistrations(t *testing.T) {
	ds := sampleDataset()
	next := ds.WithoutEvent("1")

	require.Len(t, next.Events, 1)
	assert.Equal(t, "2", next.Events[0].ID)
	require.Len(t, next.Registrations, 1)
	assert.Equal(t, "r2", next.Registrations[0].ID)

	// Deleting twice yields the same dataset as deleting once.
	again := next.WithoutEvent("1")
	assert.Equal(t, next, again)
}

func TestRegistrationsFor(t *testing.T) {
	ds := sampleDataset()
	regs := ds.RegistrationsFor("1")
	require.Len(t, regs, 2)
	assert.Equal(t, "Alpha", regs[0].TeamName)
	assert.Equal(t, "Gamma", regs[1].TeamName)
	assert.Empty(t, ds.RegistrationsFor("missing"))
}

func TestCanRegister(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	open := Event{Status: StatusActive, RegistrationDeadline: now.Add(time.Hour)}
	assert.True(t, open.CanRegister(now))

	paused := Event{Status: StatusPaused, RegistrationDeadline: now.Add(time.Hour)}
	assert.False(t, paused.CanRegister(now))

	pastDeadline := Event{Status: StatusActive, RegistrationDeadline: now}
	assert.False(t, pastDeadline.CanRegister(now), "deadline itself is closed")
}

func TestSeedDataset(t *testing.T) {
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)
	ds := SeedDataset(now)

	require.Len(t, ds.Events, 4)
	assert.Empty(t, ds.Registrations)

	ids := map[string]bool{}
	for _, e := range ds.Events {
		assert.False(t, ids[e.ID], "seed ids must be unique")
		ids[e.ID] = true
		assert.NotEmpty(t, e.Title)
		assert.NotEmpty(t, e.Description)
	}

	assert.True(t, ds.Events[0].CanRegister(now), "Hackathon is open for 5 days")
	assert.False(t, ds.Events[2].CanRegister(now), "paused event never accepts registrations")
	assert.False(t, ds.Events[3].CanRegister(now), "ended event is long past its deadline")
}
