package reports

import (
	"strings"
	"time"

	pkgerrors "github.com/zahratravel/agency-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

const (
	PresetToday = "today"
	PresetWeek  = "week"
	PresetMonth = "month"
	PresetYear  = "year"
)

// DateWindow is a half-open interval [Start, End). A nil side means the
// window is open on that side and no bound is applied upstream.
type DateWindow struct {
	Start *time.Time
	End   *time.Time
}

// IsUnbounded reports whether neither side carries a bound.
func (w DateWindow) IsUnbounded() bool {
	return w.Start == nil && w.End == nil
}

// ResolveWindow turns a preset or explicit from/to pair into a concrete
// window relative to now. A preset wins over explicit bounds; with neither,
// the window is unbounded.
func ResolveWindow(preset, from, to string, now time.Time) (DateWindow, error) {
	preset = strings.ToLower(strings.TrimSpace(preset))
	if preset != "" {
		return resolvePreset(preset, now)
	}

	var win DateWindow
	if from = strings.TrimSpace(from); from != "" {
		start, err := time.ParseInLocation(dateLayout, from, now.Location())
		if err != nil {
			return DateWindow{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid dateFrom")
		}
		win.Start = &start
	}
	if to = strings.TrimSpace(to); to != "" {
		day, err := time.ParseInLocation(dateLayout, to, now.Location())
		if err != nil {
			return DateWindow{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid dateTo")
		}
		// dateTo is inclusive through end of day.
		end := day.AddDate(0, 0, 1)
		win.End = &end
	}
	return win, nil
}

func resolvePreset(preset string, now time.Time) (DateWindow, error) {
	today := midnight(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch preset {
	case PresetToday:
		return DateWindow{Start: &today, End: &tomorrow}, nil
	case PresetWeek:
		// Sunday-anchored start; the window always runs through the end of
		// today rather than through Saturday.
		start := today.AddDate(0, 0, -int(now.Weekday()))
		return DateWindow{Start: &start, End: &tomorrow}, nil
	case PresetMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(0, 1, 0)
		return DateWindow{Start: &start, End: &end}, nil
	case PresetYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end := start.AddDate(1, 0, 0)
		return DateWindow{Start: &start, End: &end}, nil
	default:
		return DateWindow{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid preset")
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
