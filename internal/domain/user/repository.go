package user

import (
	"context"
)

// Repository - interface for the users table
type Repository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	// ListByManager returns the direct reports of the given manager.
	ListByManager(ctx context.Context, managerEmail string) ([]User, error)
}
