// Package calendarview maps absence records and in-progress selections to
// calendar visual state, and models the two mutually exclusive interaction
// modes of the calendar surface.
package calendarview

import (
	"time"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/portal/daterange"
)

// EventStyle is the rendered look of one calendar event.
type EventStyle struct {
	Background  string
	BorderColor string
	Color       string
	BorderStyle string
}

var (
	approvedStyle = EventStyle{
		Background:  "rgba(0, 128, 0, 0.7)",
		BorderColor: "green",
		Color:       "white",
		BorderStyle: "solid",
	}
	pendingStyle = EventStyle{
		Background:  "rgba(128,128,128,0.44)",
		BorderColor: "gray",
		Color:       "white",
		BorderStyle: "solid",
	}
)

// StyleFor is total: every record is either approved or pending, there is
// no third visual state.
func StyleFor(approved bool) EventStyle {
	if approved {
		return approvedStyle
	}
	return pendingStyle
}

// DayStyle is the highlight applied to a day cell inside the current
// in-progress selection.
type DayStyle struct {
	Background string
	Border     string
}

var selectedDayStyle = DayStyle{
	Background: "#f0f8ff",
	Border:     "2px solid #1976d2",
}

// DayHighlight returns the highlight for a day cell and whether the day is
// part of the current selection.
func DayHighlight(day time.Time, selection []time.Time) (DayStyle, bool) {
	if daterange.Contains(selection, day) {
		return selectedDayStyle, true
	}
	return DayStyle{}, false
}

// EventTitle renders the type for an event label. Display-only; the
// underlying type value never changes.
func EventTitle(t absence.Type) string {
	return t.Display()
}

// Anchor is where an event action menu attaches, in surface coordinates.
type Anchor struct {
	Top  int
	Left int
}

type Mode int

const (
	ModeIdle Mode = iota
	// ModeEventSelected: an existing event's action surface is open.
	ModeEventSelected
	// ModeDaysSelected: an in-progress day selection awaits a type choice.
	ModeDaysSelected
)

// Surface tracks what the user is interacting with. Selecting an event and
// selecting days are mutually exclusive: entering one mode clears the
// other.
type Surface struct {
	mode     Mode
	anchor   Anchor
	event    absence.RecordResponse
	selected []time.Time
}

func NewSurface() *Surface {
	return &Surface{}
}

func (s *Surface) Mode() Mode { return s.mode }

// SelectEvent opens the action surface for an existing event, anchored
// near the interaction point, and discards any in-progress day selection.
func (s *Surface) SelectEvent(event absence.RecordResponse, anchor Anchor) {
	s.mode = ModeEventSelected
	s.event = event
	s.anchor = anchor
	s.selected = nil
}

// SelectRange starts a new day selection from a drag gesture and closes
// any open event surface.
func (s *Surface) SelectRange(start, end time.Time) {
	s.mode = ModeDaysSelected
	s.selected = daterange.Expand(start, end)
	s.event = absence.RecordResponse{}
	s.anchor = Anchor{}
}

// Clear returns the surface to idle, as when a dialog closes.
func (s *Surface) Clear() {
	*s = Surface{}
}

// Event returns the selected event and its anchor; ok is false unless an
// event surface is open.
func (s *Surface) Event() (absence.RecordResponse, Anchor, bool) {
	if s.mode != ModeEventSelected {
		return absence.RecordResponse{}, Anchor{}, false
	}
	return s.event, s.anchor, true
}

// Selection returns the in-progress day selection; empty unless days are
// selected.
func (s *Surface) Selection() []time.Time {
	if s.mode != ModeDaysSelected {
		return nil
	}
	out := make([]time.Time, len(s.selected))
	copy(out, s.selected)
	return out
}

// CanPickType reports whether the type dialog may open: it requires at
// least one selected day, which is the validation the UI enforces before
// any server round-trip.
func (s *Surface) CanPickType() bool {
	return s.mode == ModeDaysSelected && len(s.selected) > 0
}
