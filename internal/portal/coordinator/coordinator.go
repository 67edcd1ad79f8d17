// Package coordinator drives the manager approval flow as an explicit
// two-state machine: the subordinate roster, and the detail view for one
// selected subordinate. Roster is both the initial and the terminal state.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/domain/user"
	"github.com/pulsehr/ess-portal-go/internal/portal/store"
)

var ErrInvalidState = errors.New("action not allowed in current view state")

type State int

const (
	StateRoster State = iota
	StateSubordinateDetail
)

func (s State) String() string {
	if s == StateSubordinateDetail {
		return "subordinate-detail"
	}
	return "roster"
}

// Directory is the slice of the org-hierarchy API the coordinator needs.
type Directory interface {
	Subordinates(ctx context.Context) ([]user.Subordinate, error)
}

type Coordinator struct {
	directory Directory
	store     *store.Store

	state    State
	selected string
	roster   []user.Subordinate
}

func New(directory Directory, absenceStore *store.Store) *Coordinator {
	return &Coordinator{
		directory: directory,
		store:     absenceStore,
		state:     StateRoster,
	}
}

func (c *Coordinator) State() State { return c.state }

// Selected returns the subordinate in detail view, empty in roster state.
func (c *Coordinator) Selected() string { return c.selected }

// Load fetches the roster. Each entry's pending flag is computed by the
// server at this moment and goes stale until the next Load; approvals made
// inside the detail view deliberately do not update it.
func (c *Coordinator) Load(ctx context.Context) error {
	roster, err := c.directory.Subordinates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch subordinates: %w", err)
	}
	c.roster = roster
	return nil
}

// HasSubordinates gates the approval surface: managers without direct
// reports never see it.
func (c *Coordinator) HasSubordinates() bool {
	return len(c.roster) > 0
}

func (c *Coordinator) Roster() []user.Subordinate {
	out := make([]user.Subordinate, len(c.roster))
	copy(out, c.roster)
	return out
}

// Select moves Roster -> SubordinateDetail and loads that subordinate's
// absence calendar. On failure the coordinator stays in the roster state.
func (c *Coordinator) Select(ctx context.Context, email string) error {
	if c.state != StateRoster {
		return ErrInvalidState
	}
	if err := c.store.LoadSubordinate(ctx, email); err != nil {
		return err
	}
	c.state = StateSubordinateDetail
	c.selected = email
	return nil
}

// Back moves SubordinateDetail -> Roster and re-fetches the roster, which
// is the only point at which the pending flags refresh.
func (c *Coordinator) Back(ctx context.Context) error {
	if c.state != StateSubordinateDetail {
		return ErrInvalidState
	}
	c.state = StateRoster
	c.selected = ""
	return c.Load(ctx)
}

// Absences returns the selected subordinate's records in detail state.
func (c *Coordinator) Absences() ([]absence.RecordResponse, error) {
	if c.state != StateSubordinateDetail {
		return nil, ErrInvalidState
	}
	return c.store.Records(), nil
}

// CanApprove reports whether the approve action is offered for a record:
// only inside the detail view, and never once the record is approved.
func (c *Coordinator) CanApprove(rec absence.RecordResponse) bool {
	return c.state == StateSubordinateDetail && !rec.Approved
}

// Approve approves one absence of the selected subordinate. The store
// re-fetches the subordinate's list only; the roster is not touched and
// the manager stays in the detail view.
func (c *Coordinator) Approve(ctx context.Context, absenceID string) error {
	if c.state != StateSubordinateDetail {
		return ErrInvalidState
	}
	return c.store.Approve(ctx, absenceID)
}

// Delete removes one absence of the selected subordinate, pending or
// approved, without leaving the detail view. The detail list is re-fetched
// afterwards so the calendar reflects server state immediately.
func (c *Coordinator) Delete(ctx context.Context, absenceID string) error {
	if c.state != StateSubordinateDetail {
		return ErrInvalidState
	}
	if err := c.store.Delete(ctx, absenceID); err != nil {
		return err
	}
	return c.store.LoadSubordinate(ctx, c.selected)
}
