package directory

import (
	"context"
	"fmt"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/domain/user"
)

// Service answers the two questions the approval flow needs: does this
// manager have direct reports, and which of them have pending absences.
type Service interface {
	Subordinates(ctx context.Context, managerEmail string) ([]user.Subordinate, error)
}

type DirectoryService struct {
	userRepo    user.Repository
	absenceRepo absence.Repository
}

func NewDirectoryService(userRepo user.Repository, absenceRepo absence.Repository) *DirectoryService {
	return &DirectoryService{
		userRepo:    userRepo,
		absenceRepo: absenceRepo,
	}
}

// Subordinates lists direct reports with the pending flag computed at fetch
// time. The flag is a roster-scoped snapshot: approvals made afterwards do
// not update it until the roster is fetched again.
func (s *DirectoryService) Subordinates(ctx context.Context, managerEmail string) ([]user.Subordinate, error) {
	reports, err := s.userRepo.ListByManager(ctx, managerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct reports: %w", err)
	}

	subordinates := make([]user.Subordinate, 0, len(reports))
	for _, report := range reports {
		pending, err := s.absenceRepo.HasPending(ctx, report.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending absences for %s: %w", report.Email, err)
		}
		subordinates = append(subordinates, user.Subordinate{
			Email:                report.Email,
			HasUnapprovedAbsence: pending,
		})
	}

	return subordinates, nil
}
