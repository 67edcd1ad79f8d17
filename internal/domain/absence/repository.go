package absence

import (
	"context"
)

// Repository - interface for the absences table
type Repository interface {
	Create(ctx context.Context, record Record) (Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]Record, error)
	// SetApproved flips approved to true and stamps the approving manager.
	// Approval never reverts; repositories must not write approved=false here.
	SetApproved(ctx context.Context, id string, managerEmail string) error
	Delete(ctx context.Context, id string) error
	// HasPending reports whether the owner has at least one record with
	// approved=false.
	HasPending(ctx context.Context, ownerEmail string) (bool, error)
}
