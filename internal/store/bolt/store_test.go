package bolt

import (
	"encoding/json"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bbolt "go.etcd.io/bbolt"

	"eduvent/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "eduvent.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadDataset_ColdStartReturnsSeed(t *testing.T) {
	s := newTestStore(t)

	ds, err := s.LoadDataset()
	require.NoError(t, err)

	require.Len(t, ds.Events, 4)
	assert.Empty(t, ds.Registrations)
	assert.Equal(t, domain.StatusActive, ds.Events[0].Status)
	assert.Equal(t, domain.StatusActive, ds.Events[1].Status)
	assert.Equal(t, domain.StatusPaused, ds.Events[2].Status)
	assert.Equal(t, domain.StatusEnded, ds.Events[3].Status)
}

func TestSaveDataset_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	deadline := time.Date(2026, time.September, 10, 12, 0, 0, 0, time.UTC)
	regDate := time.Date(2026, time.August, 28, 9, 30, 0, 0, time.UTC)
	ds := domain.Dataset{
		Events: []domain.Event{{
			ID:                   "e1",
			Title:                "Hackathon",
			Description:          "24 hours of code",
			Date:                 "2026-09-12",
			Time:                 "09:00 AM",
			Location:             "Main Auditorium",
			Status:               domain.StatusActive,
			Category:             "Technical",
			ImageURL:             "https://example.com/hack.png",
			RegistrationDeadline: deadline,
		}},
		Registrations: []domain.Registration{{
			ID:               "r1",
			EventID:          "e1",
			TeamName:         "Alpha",
			Email:            "a@b.com",
			MemberCount:      3,
			RegistrationDate: regDate,
		}},
	}

	require.NoError(t, s.SaveDataset(ds))
	got, err := s.LoadDataset()
	require.NoError(t, err)

	want, err := json.Marshal(ds)
	require.NoError(t, err)
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(raw))
}

func TestSaveDataset_OverwritesPreviousBlob(t *testing.T) {
	s := newTestStore(t)

	first := domain.Dataset{Events: []domain.Event{{ID: "e1", Title: "First"}}, Registrations: []domain.Registration{}}
	require.NoError(t, s.SaveDataset(first))
	second := domain.Dataset{Events: []domain.Event{{ID: "e2", Title: "Second"}}, Registrations: []domain.Registration{}}
	require.NoError(t, s.SaveDataset(second))

	got, err := s.LoadDataset()
	require.NoError(t, err)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "e2", got.Events[0].ID)
}

func TestLoadDataset_CorruptBlobFallsBackToSeed(t *testing.T) {
	s := newTestStore(t)

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(keyAppData, []byte("{not json"))
	})
	require.NoError(t, err)

	ds, err := s.LoadDataset()
	require.NoError(t, err, "a parse failure must never crash startup")
	require.Len(t, ds.Events, 4)
	assert.Empty(t, ds.Registrations)
}

func TestTheme_DefaultsToLight(t *testing.T) {
	s := newTestStore(t)

	theme, err := s.Theme()
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	require.NoError(t, s.SaveTheme("dark"))
	theme, err = s.Theme()
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestAdminSessionMarker(t *testing.T) {
	s := newTestStore(t)

	active, err := s.AdminSessionActive()
	require.NoError(t, err)
	assert.False(t, active)

	require.NoError(t, s.SetAdminSession(true))
	active, err = s.AdminSessionActive()
	require.NoError(t, err)
	assert.True(t, active)

	require.NoError(t, s.SetAdminSession(false))
	active, err = s.AdminSessionActive()
	require.NoError(t, err)
	assert.False(t, active)
}
