package absence

import (
	"io"
	"time"

	"github.com/pulsehr/ess-portal-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

// CreateRequest carries a new absence submission. StartDate and EndDate are
// "YYYY-MM-DD" strings as posted by the client; Document is nil unless the
// client attached a file.
type CreateRequest struct {
	OwnerEmail   string
	StartDate    string
	EndDate      string
	Type         string
	Document     io.Reader
	DocumentName string
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OwnerEmail) || !validator.IsValidEmail(r.OwnerEmail) {
		errs = append(errs, validator.ValidationError{Field: "ownerEmail", Message: "valid email is required"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "must be a YYYY-MM-DD date"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "must be a YYYY-MM-DD date"})
	}
	if !Type(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown absence type"})
	}
	if len(errs) > 0 {
		return errs
	}

	if start.After(end) {
		return ErrInvalidDateRange
	}
	if r.Document != nil && !DocumentAllowed(Type(r.Type)) {
		return ErrDocumentNotAllowed
	}
	return nil
}

// Dates returns the parsed start and end dates. Call only after Validate.
func (r CreateRequest) Dates() (time.Time, time.Time) {
	start, _ := time.Parse(dateLayout, r.StartDate)
	end, _ := time.Parse(dateLayout, r.EndDate)
	return start, end
}

// RecordResponse is the wire shape of a record. Field names match what the
// portal client consumes.
type RecordResponse struct {
	ID           string  `json:"id"`
	OwnerEmail   string  `json:"ownerEmail"`
	ManagerEmail *string `json:"managerEmail,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	Type         Type    `json:"type"`
	Approved     bool    `json:"approved"`
	HasDocument  bool    `json:"document"`
}

func ToResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:           r.ID,
		OwnerEmail:   r.OwnerEmail,
		ManagerEmail: r.ManagerEmail,
		StartDate:    r.StartDate.Format(dateLayout),
		EndDate:      r.EndDate.Format(dateLayout),
		Type:         r.Type,
		Approved:     r.Approved,
		HasDocument:  r.HasDocument(),
	}
}

func ToResponseList(records []Record) []RecordResponse {
	out := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, ToResponse(r))
	}
	return out
}
