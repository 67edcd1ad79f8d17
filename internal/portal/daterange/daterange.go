// Package daterange turns raw calendar drag selections into the day
// sequence and submission dates the absence API expects.
package daterange

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

var ErrNoSelection = errors.New("no days selected")

// Expand converts a selection's start and end instants into the ordered,
// distinct calendar days of the selection.
//
// A single-day selection yields exactly that day. A multi-day selection
// walks day by day from start to end inclusive and then drops the last
// generated day, because the calendar surface reports an exclusive end
// boundary for drag selections. The drop applies only when more than one
// day was generated; that asymmetry against the single-day case is the
// shipped behavior and is kept as-is pending a product review.
func Expand(start, end time.Time) []time.Time {
	if sameDay(start, end) {
		return []time.Time{truncate(start)}
	}

	var days []time.Time
	last := truncate(end)
	for d := truncate(start); !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	if len(days) > 1 {
		days = days[:len(days)-1]
	}
	return days
}

// Submission converts an expanded day sequence into the submission-ready
// date pair. Both endpoints are shifted forward by one day to compensate
// for timezone truncation when the dates are serialized; the shift is
// applied here and nowhere else.
func Submission(days []time.Time) (startDate, endDate string, err error) {
	if len(days) == 0 {
		return "", "", ErrNoSelection
	}
	first := days[0].AddDate(0, 0, 1)
	last := days[len(days)-1].AddDate(0, 0, 1)
	return first.Format(dateLayout), last.Format(dateLayout), nil
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return sameDay(a, b)
}

// Contains reports whether day is one of the selected days.
func Contains(days []time.Time, day time.Time) bool {
	for _, d := range days {
		if sameDay(d, day) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
