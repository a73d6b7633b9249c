package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduvent/internal/domain"
)

func titleLookup(titles map[string]string) func(string) (string, bool) {
	return func(eventID string) (string, bool) {
		t, ok := titles[eventID]
		return t, ok
	}
}

func TestMasterCSV(t *testing.T) {
	regs := []domain.Registration{
		{
			ID: "r1", EventID: "e1", TeamName: "Alpha", Email: "a@b.com",
			MemberCount:      3,
			RegistrationDate: time.Date(2026, time.August, 5, 14, 30, 0, 0, time.UTC),
		},
		{
			ID: "r2", EventID: "gone", TeamName: `Team "Quotes"`, Email: "q@b.com",
			MemberCount:      1,
			RegistrationDate: time.Date(2026, time.December, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	out, err := MasterCSV(regs, titleLookup(map[string]string{"e1": "Hackathon 2024"}))
	require.NoError(t, err)

	s := string(out)
	require.True(t, strings.HasPrefix(s, "\ufeff"), "output must start with a byte-order marker")

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(s, "\ufeff"), "\r\n"), "\r\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Event Name,Team Name,Email,Member Count,Registration Date", lines[0])
	assert.Equal(t, `"Hackathon 2024","Alpha",a@b.com,3,8/5/2026`, lines[1])
	assert.Equal(t, `"Unknown Event","Team ""Quotes""",q@b.com,1,12/24/2026`, lines[2])
}

func TestManifestCSV(t *testing.T) {
	regs := []domain.Registration{{
		ID: "r1", EventID: "e1", TeamName: "Beta", Email: "beta@campus.edu",
		MemberCount:      5,
		RegistrationDate: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}}

	out, err := ManifestCSV(regs)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(strings.TrimPrefix(string(out), "\ufeff"), "\r\n"), "\r\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Team Name,Email,Member Count,Registration Date", lines[0])
	assert.Equal(t, `"Beta",beta@campus.edu,5,3/2/2026`, lines[1])
}

func TestExport_EmptyListProducesNothing(t *testing.T) {
	out, err := MasterCSV(nil, titleLookup(nil))
	assert.ErrorIs(t, err, domain.ErrNoRegistrations)
	assert.Nil(t, out)

	out, err = ManifestCSV([]domain.Registration{})
	assert.ErrorIs(t, err, domain.ErrNoRegistrations)
	assert.Nil(t, out)
}

func TestManifestFilename(t *testing.T) {
	assert.Equal(t, "Annual_Cultural_Fest_Manifest.csv", ManifestFilename("Annual Cultural Fest"))
	assert.Equal(t, "Hackathon_Manifest.csv", ManifestFilename("Hackathon"))
}
