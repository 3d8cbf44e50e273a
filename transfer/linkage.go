package transfer

import (
	"strings"

	"github.com/curesma/registry-bridge/redcap"
)

// EncounterWindow is the date window of one submitted encounter, used to link
// ancillary events (procedures, vital signs) back to their owning encounter.
type EncounterWindow struct {
	ID    string
	Start string
	End   string
}

// buildWindows projects the record's submitted encounters into date windows,
// in instance order. Encounters that have not been assigned an id yet cannot
// be referenced and are left out.
func buildWindows(rows []redcap.EncounterRow) []EncounterWindow {
	var windows []EncounterWindow
	for _, row := range rows {
		if row.EncID == "" {
			continue
		}
		windows = append(windows, EncounterWindow{
			ID:    row.EncID,
			Start: dateOnly(row.StartDateTime),
			End:   dateOnly(row.EndDateTime),
		})
	}
	return windows
}

// resolveEncounter returns the id of the first window containing the event
// date, walking windows in instance order. A window without an end date is a
// one-day encounter: the event date has to match its start date exactly.
// Returns "" when no window matches.
func resolveEncounter(windows []EncounterWindow, eventDate string) string {
	date := dateOnly(eventDate)
	for _, w := range windows {
		if w.End == "" {
			if w.Start == date {
				return w.ID
			}
			continue
		}
		if w.Start <= date && date <= w.End {
			return w.ID
		}
	}
	return ""
}

// dateOnly strips the time portion off a "YYYY-MM-DD HH:MM" style timestamp.
func dateOnly(ts string) string {
	if i := strings.Index(ts, " "); i >= 0 {
		return ts[:i]
	}
	return ts
}
