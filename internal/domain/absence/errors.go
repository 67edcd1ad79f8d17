package absence

import "errors"

var (
	ErrAbsenceNotFound    = errors.New("absence not found")
	ErrInvalidDateRange   = errors.New("start date must not be after end date")
	ErrDocumentNotAllowed = errors.New("absence type does not accept a document")
	ErrNoDocument         = errors.New("absence has no document")
	ErrNotSubordinate     = errors.New("user is not a subordinate of the requester")
)
