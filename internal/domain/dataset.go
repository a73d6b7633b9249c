package domain

import "context"

// Dataset is the full in-memory collection of events and registrations and
// the unit the store persists. Both sequences keep insertion order; ordering
// carries no meaning beyond "most recently added last".
type Dataset struct {
	Events        []Event        `json:"events"`
	Registrations []Registration `json:"registrations"`
}

// The mutation helpers below are pure: each returns a new snapshot and never
// modifies the receiver. The directory service is the only caller and is
// responsible for persisting the result.

// WithEvent returns a snapshot with e appended to the event sequence.
func (d Dataset) WithEvent(e Event) Dataset {
	out := d.clone()
	out.Events = append(out.Events, e)
	return out
}

// WithUpdatedEvent returns a snapshot with the event matching e.ID replaced
// in place, preserving its position. If no event has that id the snapshot is
// returned unchanged; an update never inserts.
func (d Dataset) WithUpdatedEvent(e Event) (Dataset, bool) {
	out := d.clone()
	for i := range out.Events {
		if out.Events[i].ID == e.ID {
			out.Events[i] = e
			return out, true
		}
	}
	return out, false
}

// WithoutEvent returns a snapshot with the event removed and every
// registration referencing it removed as well. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (d Dataset) WithoutEvent(id string) Dataset {
	out := Dataset{
		Events:        make([]Event, 0, len(d.Events)),
		Registrations: make([]Registration, 0, len(d.Registrations)),
	}
	for _, e := range d.Events {
		if e.ID != id {
			out.Events = append(out.Events, e)
		}
	}
	for _, r := range d.Registrations {
		if r.EventID != id {
			out.Registrations = append(out.Registrations, r)
		}
	}
	return out
}

// WithRegistration returns a snapshot with r appended to the registration
// sequence.
func (d Dataset) WithRegistration(r Registration) Dataset {
	out := d.clone()
	out.Registrations = append(out.Registrations, r)
	return out
}

// EventByID returns the event with the given id, if present.
func (d Dataset) EventByID(id string) (Event, bool) {
	for _, e := range d.Events {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// RegistrationsFor returns the registrations referencing the given event, in
// insertion order.
func (d Dataset) RegistrationsFor(eventID string) []Registration {
	out := []Registration{}
	for _, r := range d.Registrations {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

func (d Dataset) clone() Dataset {
	out := Dataset{
		Events:        make([]Event, len(d.Events)),
		Registrations: make([]Registration, len(d.Registrations)),
	}
	copy(out.Events, d.Events)
	copy(out.Registrations, d.Registrations)
	return out
}

// DatasetStore persists the dataset as a single blob under a fixed key.
// Load is called once at startup; Save after every successful mutation,
// overwriting unconditionally (last writer wins).
type DatasetStore interface {
	LoadDataset() (Dataset, error)
	SaveDataset(Dataset) error
}

// PreferenceStore persists the two independently-keyed session flags: the
// theme preference and the admin-session marker.
type PreferenceStore interface {
	Theme() (string, error)
	SaveTheme(theme string) error
	AdminSessionActive() (bool, error)
	SetAdminSession(active bool) error
}

// DirectoryService is the mutation façade and read surface over the
// in-memory dataset. It is the single writer: every successful mutation is
// persisted through the DatasetStore before it returns.
type DirectoryService interface {
	ListEvents(ctx context.Context) []Event
	GetEvent(ctx context.Context, id string) (Event, error)
	// CreateEvent assigns a fresh unique id and appends the event.
	CreateEvent(ctx context.Context, e Event) (Event, error)
	// UpdateEvent replaces the event with matching id. Returns false when no
	// such event exists; that case is a no-op, not an error.
	UpdateEvent(ctx context.Context, e Event) (bool, error)
	// SetEventStatus is the one partial-update path: it changes only the
	// lifecycle status. Returns ErrNotFound when the event is missing.
	SetEventStatus(ctx context.Context, id string, status EventStatus) (Event, error)
	// DeleteEvent removes the event and cascades to its registrations.
	// Deleting a missing id is a silent no-op.
	DeleteEvent(ctx context.Context, id string) error
	// RegisterTeam assigns id and registration date and appends the
	// registration. It performs no eligibility gating; callers check
	// Event.CanRegister at submission time.
	RegisterTeam(ctx context.Context, r *Registration) (*Registration, error)
	RegistrationsForEvent(ctx context.Context, eventID string) []Registration
	// Snapshot returns the current dataset for derived-view computation.
	Snapshot(ctx context.Context) Dataset
}
