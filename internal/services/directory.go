package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"eduvent/internal/domain"
)

// directoryService owns the in-memory dataset for the lifetime of the
// process. It is the only writer: every mutation builds a new snapshot,
// persists it through the store, and only then swaps it in. The mutex exists
// because the HTTP listener is multi-goroutine; the modeled application has
// exactly one writer at a time.
type directoryService struct {
	mu     sync.RWMutex
	ds     domain.Dataset
	store  domain.DatasetStore
	mailer domain.Mailer
	logger *slog.Logger
}

// NewDirectoryService loads the dataset once from the store (this is the
// only read the store ever serves) and returns the directory façade.
func NewDirectoryService(store domain.DatasetStore, mailer domain.Mailer, logger *slog.Logger) (domain.DirectoryService, error) {
	ds, err := store.LoadDataset()
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return &directoryService{
		ds:     ds,
		store:  store,
		mailer: mailer,
		logger: logger,
	}, nil
}

func (s *directoryService) ListEvents(ctx context.Context) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Event, len(s.ds.Events))
	copy(out, s.ds.Events)
	return out
}

func (s *directoryService) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.ds.EventByID(id)
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	return e, nil
}

func (s *directoryService) CreateEvent(ctx context.Context, e domain.Event) (domain.Event, error) {
	e.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.ds.WithEvent(e)
	if err := s.store.SaveDataset(next); err != nil {
		return domain.Event{}, fmt.Errorf("save dataset: %w", err)
	}
	s.ds = next
	return e, nil
}

func (s *directoryService) UpdateEvent(ctx context.Context, e domain.Event) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, applied := s.ds.WithUpdatedEvent(e)
	if !applied {
		// Updating a missing event is a no-op, never an insert.
		return false, nil
	}
	if err := s.store.SaveDataset(next); err != nil {
		return false, fmt.Errorf("save dataset: %w", err)
	}
	s.ds = next
	return true, nil
}

func (s *directoryService) SetEventStatus(ctx context.Context, id string, status domain.EventStatus) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.ds.EventByID(id)
	if !ok {
		return domain.Event{}, domain.ErrNotFound
	}
	// Any status may transition to any other; there are no forbidden
	// transitions and no automatic ones.
	e.Status = status
	next, _ := s.ds.WithUpdatedEvent(e)
	if err := s.store.SaveDataset(next); err != nil {
		return domain.Event{}, fmt.Errorf("save dataset: %w", err)
	}
	s.ds = next
	return e, nil
}

func (s *directoryService) DeleteEvent(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.ds.WithoutEvent(id)
	if err := s.store.SaveDataset(next); err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	s.ds = next
	return nil
}

func (s *directoryService) RegisterTeam(ctx context.Context, r *domain.Registration) (*domain.Registration, error) {
	reg := *r
	reg.ID = uuid.NewString()
	reg.RegistrationDate = time.Now()

	s.mu.Lock()
	next := s.ds.WithRegistration(reg)
	if err := s.store.SaveDataset(next); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("save dataset: %w", err)
	}
	s.ds = next
	event, hasEvent := next.EventByID(reg.EventID)
	s.mu.Unlock()

	if hasEvent {
		data := &domain.RegistrationConfirmationData{
			Email:       reg.Email,
			TeamName:    reg.TeamName,
			MemberCount: reg.MemberCount,
			EventTitle:  event.Title,
			EventDate:   event.Date,
			EventTime:   event.Time,
			Location:    event.Location,
		}
		if err := s.mailer.SendRegistrationConfirmation(ctx, data); err != nil {
			// Mail is best-effort; the registration already succeeded.
			s.logger.Warn("confirmation email failed", "registration_id", reg.ID, "err", err)
		}
	}
	return &reg, nil
}

func (s *directoryService) RegistrationsForEvent(ctx context.Context, eventID string) []domain.Registration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds.RegistrationsFor(eventID)
}

func (s *directoryService) Snapshot(ctx context.Context) domain.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ds
}
