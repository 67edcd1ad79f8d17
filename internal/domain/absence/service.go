package absence

import (
	"context"
	"io"
)

// Document is a downloadable evidence file attached to a record.
type Document struct {
	Name    string
	Content io.ReadCloser
}

type Service interface {
	ListOwn(ctx context.Context, ownerEmail string) ([]RecordResponse, error)
	// ListForUser lists every record, approved and pending, for one of the
	// requester's direct reports.
	ListForUser(ctx context.Context, requesterEmail, targetEmail string) ([]RecordResponse, error)
	Create(ctx context.Context, req CreateRequest) (RecordResponse, error)
	// Approve flips a pending record to approved; only the owner's manager
	// may call it, and a repeat call is a no-op.
	Approve(ctx context.Context, id string, managerEmail string) error
	// Delete removes a record; allowed for the owner or the owner's manager.
	Delete(ctx context.Context, id string, callerEmail string) error
	Document(ctx context.Context, id string) (Document, error)
}
