// Package export renders registration lists as comma-delimited text for
// spreadsheet download.
package export

import (
	"fmt"
	"regexp"
	"strings"

	"eduvent/internal/domain"
)

// utf8BOM prefixes every export so spreadsheet tools detect the encoding.
const utf8BOM = "\ufeff"

// unknownEventTitle is the fallback when a registration references an event
// that no longer resolves.
const unknownEventTitle = "Unknown Event"

// registrationDateLayout renders the registration date as a locale date with
// no time component.
const registrationDateLayout = "1/2/2006"

var whitespaceRe = regexp.MustCompile(`\s+`)

// MasterCSV renders the all-registrations export: a header row followed by
// one row per registration, with event titles resolved through titleFor.
// Returns ErrNoRegistrations for an empty list; no output is produced.
func MasterCSV(regs []domain.Registration, titleFor func(eventID string) (string, bool)) ([]byte, error) {
	if len(regs) == 0 {
		return nil, domain.ErrNoRegistrations
	}
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString("Event Name,Team Name,Email,Member Count,Registration Date\r\n")
	for _, r := range regs {
		title, ok := titleFor(r.EventID)
		if !ok {
			title = unknownEventTitle
		}
		fmt.Fprintf(&b, "%s,%s,%s,%d,%s\r\n",
			quote(title),
			quote(r.TeamName),
			r.Email,
			r.MemberCount,
			r.RegistrationDate.Format(registrationDateLayout),
		)
	}
	return []byte(b.String()), nil
}

// ManifestCSV renders the single-event export. The event title is carried in
// the filename rather than a column, so rows hold only registration fields.
// Returns ErrNoRegistrations for an empty list.
func ManifestCSV(regs []domain.Registration) ([]byte, error) {
	if len(regs) == 0 {
		return nil, domain.ErrNoRegistrations
	}
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString("Team Name,Email,Member Count,Registration Date\r\n")
	for _, r := range regs {
		fmt.Fprintf(&b, "%s,%s,%d,%s\r\n",
			quote(r.TeamName),
			r.Email,
			r.MemberCount,
			r.RegistrationDate.Format(registrationDateLayout),
		)
	}
	return []byte(b.String()), nil
}

// MasterFilename is the download name for the all-registrations export.
const MasterFilename = "Master_Campus_Event_Registrations.csv"

// ManifestFilename derives the single-event download name from the event
// title, with whitespace runs replaced by underscores.
func ManifestFilename(eventTitle string) string {
	return whitespaceRe.ReplaceAllString(eventTitle, "_") + "_Manifest.csv"
}

// quote wraps a free-text field in double quotes, doubling any embedded
// quote characters.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
