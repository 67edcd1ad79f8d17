package absence

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/domain/user"
	"github.com/pulsehr/ess-portal-go/internal/pkg/storage"
)

type AbsenceService struct {
	absenceRepo absence.Repository
	userRepo    user.Repository
	files       storage.FileStorage
}

func NewAbsenceService(absenceRepo absence.Repository, userRepo user.Repository, files storage.FileStorage) *AbsenceService {
	return &AbsenceService{
		absenceRepo: absenceRepo,
		userRepo:    userRepo,
		files:       files,
	}
}

func (s *AbsenceService) ListOwn(ctx context.Context, ownerEmail string) ([]absence.RecordResponse, error) {
	records, err := s.absenceRepo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	return absence.ToResponseList(records), nil
}

func (s *AbsenceService) ListForUser(ctx context.Context, requesterEmail, targetEmail string) ([]absence.RecordResponse, error) {
	target, err := s.userRepo.GetByEmail(ctx, targetEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to get target user: %w", err)
	}
	if target.ManagerEmail == nil || *target.ManagerEmail != requesterEmail {
		return nil, absence.ErrNotSubordinate
	}

	records, err := s.absenceRepo.ListByOwner(ctx, targetEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list absences: %w", err)
	}
	return absence.ToResponseList(records), nil
}

func (s *AbsenceService) Create(ctx context.Context, req absence.CreateRequest) (absence.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return absence.RecordResponse{}, err
	}

	absenceType := absence.Type(req.Type)
	startDate, endDate := req.Dates()

	record := absence.Record{
		OwnerEmail: req.OwnerEmail,
		StartDate:  startDate,
		EndDate:    endDate,
		Type:       absenceType,
		// The approval flag is derived here, never taken from the client.
		Approved: absence.AutoApproved(absenceType),
	}

	owner, err := s.userRepo.GetByEmail(ctx, req.OwnerEmail)
	if err != nil {
		return absence.RecordResponse{}, fmt.Errorf("failed to get owner: %w", err)
	}
	record.ManagerEmail = owner.ManagerEmail

	if req.Document != nil {
		if !absence.DocumentAllowed(absenceType) {
			return absence.RecordResponse{}, absence.ErrDocumentNotAllowed
		}
		storedPath := path.Join("absences", uuid.NewString()+path.Ext(req.DocumentName))
		storedPath, err = s.files.Upload(ctx, req.Document, storedPath)
		if err != nil {
			return absence.RecordResponse{}, fmt.Errorf("failed to store document: %w", err)
		}
		record.DocumentPath = &storedPath
		name := req.DocumentName
		record.DocumentName = &name
	}

	created, err := s.absenceRepo.Create(ctx, record)
	if err != nil {
		if record.DocumentPath != nil {
			_ = s.files.Delete(ctx, *record.DocumentPath)
		}
		return absence.RecordResponse{}, fmt.Errorf("failed to create absence: %w", err)
	}

	return absence.ToResponse(created), nil
}

// Approve flips a pending record to approved. Only the owner's manager may
// approve. Approving a record that is already approved succeeds and leaves
// it approved; approval never reverts.
func (s *AbsenceService) Approve(ctx context.Context, id string, managerEmail string) error {
	record, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.requireManagerOf(ctx, managerEmail, record.OwnerEmail); err != nil {
		return err
	}
	if record.Approved {
		return nil
	}

	if err := s.absenceRepo.SetApproved(ctx, id, managerEmail); err != nil {
		return fmt.Errorf("failed to approve absence: %w", err)
	}
	return nil
}

// Delete removes a record, pending or approved. The owner may delete their
// own records; anyone else must be the owner's manager.
func (s *AbsenceService) Delete(ctx context.Context, id string, callerEmail string) error {
	record, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record.OwnerEmail != callerEmail {
		if err := s.requireManagerOf(ctx, callerEmail, record.OwnerEmail); err != nil {
			return err
		}
	}

	if err := s.absenceRepo.Delete(ctx, id); err != nil {
		return err
	}
	if record.DocumentPath != nil {
		_ = s.files.Delete(ctx, *record.DocumentPath)
	}
	return nil
}

// requireManagerOf checks that callerEmail sits on ownerEmail's reporting
// line and holds an approving role.
func (s *AbsenceService) requireManagerOf(ctx context.Context, callerEmail, ownerEmail string) error {
	owner, err := s.userRepo.GetByEmail(ctx, ownerEmail)
	if err != nil {
		return fmt.Errorf("failed to get owner: %w", err)
	}
	if owner.ManagerEmail == nil || *owner.ManagerEmail != callerEmail {
		return user.ErrManagerAccessRequired
	}

	caller, err := s.userRepo.GetByEmail(ctx, callerEmail)
	if err != nil {
		return fmt.Errorf("failed to get caller: %w", err)
	}
	if !caller.CanApprove() {
		return user.ErrManagerAccessRequired
	}
	return nil
}

func (s *AbsenceService) Document(ctx context.Context, id string) (absence.Document, error) {
	record, err := s.absenceRepo.GetByID(ctx, id)
	if err != nil {
		return absence.Document{}, err
	}
	if !record.HasDocument() {
		return absence.Document{}, absence.ErrNoDocument
	}

	content, err := s.files.Download(ctx, *record.DocumentPath)
	if err != nil {
		return absence.Document{}, fmt.Errorf("failed to read document: %w", err)
	}

	name := fmt.Sprintf("document_%s.pdf", record.ID)
	if record.DocumentName != nil && *record.DocumentName != "" {
		name = *record.DocumentName
	}
	return absence.Document{Name: name, Content: content}, nil
}
