// Package store owns the in-memory absence view for the signed-in user or
// for one selected subordinate. It is the single writer of that view: every
// mutation awaits the API before local state changes, except creation,
// which appends the confirmed record without a full re-list.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/portal/apiclient"
)

var ErrNoScope = errors.New("no absence list loaded")

// API is the slice of the absence API the store needs.
type API interface {
	ListOwn(ctx context.Context) ([]absence.RecordResponse, error)
	ListForUser(ctx context.Context, email string) ([]absence.RecordResponse, error)
	Create(ctx context.Context, sub apiclient.CreateSubmission) (absence.RecordResponse, error)
	Approve(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type scopeKind int

const (
	scopeNone scopeKind = iota
	scopeOwn
	scopeSubordinate
)

// Store is not safe for concurrent use; the UI serializes all calls and
// re-renders after each one.
type Store struct {
	api API

	scope       scopeKind
	subordinate string
	records     []absence.RecordResponse

	// strictRefresh swaps the optimistic create append for a full re-list.
	strictRefresh bool
}

type Option func(*Store)

// WithStrictRefresh makes every mutation, creation included, re-fetch the
// current list instead of patching it locally.
func WithStrictRefresh() Option {
	return func(s *Store) { s.strictRefresh = true }
}

func New(api API, opts ...Option) *Store {
	s := &Store{api: api}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadOwn fetches and replaces the view with the signed-in user's records.
func (s *Store) LoadOwn(ctx context.Context) error {
	records, err := s.api.ListOwn(ctx)
	if err != nil {
		return fmt.Errorf("failed to load own absences: %w", err)
	}
	s.scope = scopeOwn
	s.subordinate = ""
	s.records = records
	return nil
}

// LoadSubordinate fetches and replaces the view with one direct report's
// records, approved and pending alike.
func (s *Store) LoadSubordinate(ctx context.Context, email string) error {
	records, err := s.api.ListForUser(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to load absences for %s: %w", email, err)
	}
	s.scope = scopeSubordinate
	s.subordinate = email
	s.records = records
	return nil
}

// Records returns a copy of the current view.
func (s *Store) Records() []absence.RecordResponse {
	out := make([]absence.RecordResponse, len(s.records))
	copy(out, s.records)
	return out
}

// Create submits a new absence and, on success, appends the confirmed
// record to the view without re-fetching the list. A failure leaves the
// view untouched. If the server response carries no id the record gets a
// placeholder until the next full load.
func (s *Store) Create(ctx context.Context, sub apiclient.CreateSubmission) (absence.RecordResponse, error) {
	if s.scope == scopeNone {
		return absence.RecordResponse{}, ErrNoScope
	}

	created, err := s.api.Create(ctx, sub)
	if err != nil {
		return absence.RecordResponse{}, err
	}
	if created.ID == "" {
		created.ID = uuid.NewString()
	}

	if s.strictRefresh {
		if err := s.reload(ctx); err != nil {
			return created, err
		}
		return created, nil
	}

	s.records = append(s.records, created)
	return created, nil
}

// Approve awaits the approval call and then re-fetches the current list so
// the view reflects server state. Approval of a missing record fails
// without touching the view.
func (s *Store) Approve(ctx context.Context, id string) error {
	if s.scope == scopeNone {
		return ErrNoScope
	}
	if err := s.api.Approve(ctx, id); err != nil {
		return err
	}
	return s.reload(ctx)
}

// Delete awaits the delete call and removes the record from the view on
// success. On failure the view keeps the stale entry until the next
// successful load.
func (s *Store) Delete(ctx context.Context, id string) error {
	if s.scope == scopeNone {
		return ErrNoScope
	}
	if err := s.api.Delete(ctx, id); err != nil {
		return err
	}

	if s.strictRefresh {
		return s.reload(ctx)
	}

	kept := s.records[:0]
	for _, rec := range s.records {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	s.records = kept
	return nil
}

func (s *Store) reload(ctx context.Context) error {
	switch s.scope {
	case scopeOwn:
		return s.LoadOwn(ctx)
	case scopeSubordinate:
		return s.LoadSubordinate(ctx, s.subordinate)
	default:
		return ErrNoScope
	}
}
