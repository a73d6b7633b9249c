// Package bolt persists application state to a local bbolt file, mirroring
// the original client-side storage contract: one bucket holding the dataset
// as a single JSON blob plus two independently-keyed session flags.
package bolt

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	bbolt "go.etcd.io/bbolt"

	"eduvent/internal/domain"
)

var (
	bucketName      = []byte("eduvent")
	keyAppData      = []byte("eduvent_app_data")
	keyTheme        = []byte("eduvent_theme")
	keyAdminSession = []byte("eduvent_admin_session")
)

// Store implements domain.DatasetStore and domain.PreferenceStore on a
// single bbolt file. All writes overwrite whole values; there are no
// partial or delta writes.
type Store struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Open opens (or creates) the store file and ensures the bucket exists.
func Open(path string, logger *slog.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying file.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadDataset reads the persisted dataset blob. A missing blob is a cold
// start and returns the seed dataset. A blob that fails to parse must never
// crash startup: the corruption is logged and the seed dataset is returned.
func (s *Store) LoadDataset() (domain.Dataset, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(keyAppData); v != nil {
			raw = make([]byte, len(v))
			copy(raw, v)
		}
		return nil
	})
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	if raw == nil {
		return domain.SeedDataset(time.Now()), nil
	}
	var ds domain.Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		s.logger.Warn("persisted dataset is corrupt, falling back to seed data", "err", err)
		return domain.SeedDataset(time.Now()), nil
	}
	if ds.Events == nil {
		ds.Events = []domain.Event{}
	}
	if ds.Registrations == nil {
		ds.Registrations = []domain.Registration{}
	}
	return ds, nil
}

// SaveDataset serializes the full dataset and overwrites the stored blob.
func (s *Store) SaveDataset(ds domain.Dataset) error {
	raw, err := json.Marshal(ds)
	if err != nil {
		return fmt.Errorf("marshal dataset: %w", err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(keyAppData, raw)
	})
	if err != nil {
		return fmt.Errorf("write dataset: %w", err)
	}
	return nil
}

// Theme returns the persisted theme preference, defaulting to "light".
func (s *Store) Theme() (string, error) {
	theme := "light"
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketName).Get(keyTheme); v != nil {
			theme = string(v)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("read theme: %w", err)
	}
	return theme, nil
}

// SaveTheme persists the theme preference under its own key.
func (s *Store) SaveTheme(theme string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(keyTheme, []byte(theme))
	})
	if err != nil {
		return fmt.Errorf("write theme: %w", err)
	}
	return nil
}

// AdminSessionActive reports whether the admin-session marker is present.
func (s *Store) AdminSessionActive() (bool, error) {
	active := false
	err := s.db.View(func(tx *bbolt.Tx) error {
		active = string(tx.Bucket(bucketName).Get(keyAdminSession)) == "true"
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("read admin session: %w", err)
	}
	return active, nil
}

// SetAdminSession writes the marker on login and removes it on logout.
func (s *Store) SetAdminSession(active bool) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketName)
		if active {
			return b.Put(keyAdminSession, []byte("true"))
		}
		return b.Delete(keyAdminSession)
	})
	if err != nil {
		return fmt.Errorf("write admin session: %w", err)
	}
	return nil
}
