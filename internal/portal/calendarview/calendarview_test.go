package calendarview

import (
	"testing"
	"time"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleFor_TotalMapping(t *testing.T) {
	approved := StyleFor(true)
	pending := StyleFor(false)

	assert.Equal(t, "rgba(0, 128, 0, 0.7)", approved.Background)
	assert.Equal(t, "green", approved.BorderColor)
	assert.Equal(t, "rgba(128,128,128,0.44)", pending.Background)
	assert.Equal(t, "gray", pending.BorderColor)

	// Both styles are solid white text; only fill and border differ.
	assert.Equal(t, "white", approved.Color)
	assert.Equal(t, "white", pending.Color)
	assert.Equal(t, "solid", approved.BorderStyle)
	assert.Equal(t, "solid", pending.BorderStyle)
	assert.NotEqual(t, approved, pending)
}

func TestEventTitle_ReplacesUnderscores(t *testing.T) {
	assert.Equal(t, "SICK LEAVE", EventTitle(absence.TypeSickLeave))
	assert.Equal(t, "WORK FROM HOME", EventTitle(absence.TypeWorkFromHome))
	assert.Equal(t, "OTHER", EventTitle(absence.TypeOther))
	// The underlying value is untouched.
	assert.Equal(t, absence.Type("SICK_LEAVE"), absence.TypeSickLeave)
}

func TestDayHighlight(t *testing.T) {
	selection := []time.Time{
		time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC),
	}

	style, selected := DayHighlight(time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC), selection)
	assert.True(t, selected)
	assert.Equal(t, "#f0f8ff", style.Background)
	assert.Equal(t, "2px solid #1976d2", style.Border)

	style, selected = DayHighlight(time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC), selection)
	assert.False(t, selected)
	assert.Equal(t, DayStyle{}, style)
}

func TestSurface_ModesAreMutuallyExclusive(t *testing.T) {
	s := NewSurface()
	assert.Equal(t, ModeIdle, s.Mode())

	s.SelectRange(
		time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 7, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, ModeDaysSelected, s.Mode())
	assert.Len(t, s.Selection(), 2)
	_, _, ok := s.Event()
	assert.False(t, ok)

	// Clicking an event discards the in-progress day selection.
	event := absence.RecordResponse{ID: "e1", Type: absence.TypeVacation}
	s.SelectEvent(event, Anchor{Top: 120, Left: 40})
	assert.Equal(t, ModeEventSelected, s.Mode())
	assert.Empty(t, s.Selection())
	got, anchor, ok := s.Event()
	require.True(t, ok)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, Anchor{Top: 120, Left: 40}, anchor)

	// Starting a new drag closes the event surface.
	s.SelectRange(
		time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC),
	)
	assert.Equal(t, ModeDaysSelected, s.Mode())
	_, _, ok = s.Event()
	assert.False(t, ok)
}

func TestSurface_CanPickTypeRequiresSelection(t *testing.T) {
	s := NewSurface()
	assert.False(t, s.CanPickType(), "no dates selected yet")

	s.SelectRange(
		time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
	)
	assert.True(t, s.CanPickType())

	s.Clear()
	assert.Equal(t, ModeIdle, s.Mode())
	assert.False(t, s.CanPickType())
}
