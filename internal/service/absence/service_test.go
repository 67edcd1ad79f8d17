package absence

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== IN-MEMORY FAKES =====

type memAbsenceRepo struct {
	records map[string]absence.Record
	nextID  int
}

func newMemAbsenceRepo() *memAbsenceRepo {
	return &memAbsenceRepo{records: make(map[string]absence.Record)}
}

func (m *memAbsenceRepo) Create(ctx context.Context, record absence.Record) (absence.Record, error) {
	m.nextID++
	record.ID = fmt.Sprintf("abs-%d", m.nextID)
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	m.records[record.ID] = record
	return record, nil
}

func (m *memAbsenceRepo) GetByID(ctx context.Context, id string) (absence.Record, error) {
	rec, ok := m.records[id]
	if !ok {
		return absence.Record{}, absence.ErrAbsenceNotFound
	}
	return rec, nil
}

func (m *memAbsenceRepo) ListByOwner(ctx context.Context, ownerEmail string) ([]absence.Record, error) {
	var out []absence.Record
	for _, rec := range m.records {
		if rec.OwnerEmail == ownerEmail {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (m *memAbsenceRepo) SetApproved(ctx context.Context, id string, managerEmail string) error {
	rec, ok := m.records[id]
	if !ok {
		return absence.ErrAbsenceNotFound
	}
	rec.Approved = true
	rec.ManagerEmail = &managerEmail
	m.records[id] = rec
	return nil
}

func (m *memAbsenceRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.records[id]; !ok {
		return absence.ErrAbsenceNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *memAbsenceRepo) HasPending(ctx context.Context, ownerEmail string) (bool, error) {
	for _, rec := range m.records {
		if rec.OwnerEmail == ownerEmail && !rec.Approved {
			return true, nil
		}
	}
	return false, nil
}

type memUserRepo struct {
	users map[string]user.User
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := m.users[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (m *memUserRepo) ListByManager(ctx context.Context, managerEmail string) ([]user.User, error) {
	var out []user.User
	for _, u := range m.users {
		if u.ManagerEmail != nil && *u.ManagerEmail == managerEmail {
			out = append(out, u)
		}
	}
	return out, nil
}

type memStorage struct {
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) Upload(ctx context.Context, file io.Reader, path string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	m.files[path] = data
	return path, nil
}

func (m *memStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(ctx context.Context, path string) error {
	delete(m.files, path)
	return nil
}

func strPtr(s string) *string { return &s }

func newTestService() (*AbsenceService, *memAbsenceRepo, *memStorage) {
	absenceRepo := newMemAbsenceRepo()
	userRepo := &memUserRepo{users: map[string]user.User{
		"alice@corp.test": {
			Email: "alice@corp.test", Role: user.RoleEmployee,
			ManagerEmail: strPtr("mara@corp.test"),
		},
		"bob@corp.test": {
			Email: "bob@corp.test", Role: user.RoleEmployee,
			ManagerEmail: strPtr("mara@corp.test"),
		},
		"mara@corp.test": {Email: "mara@corp.test", Role: user.RoleManager},
	}}
	files := newMemStorage()
	return NewAbsenceService(absenceRepo, userRepo, files), absenceRepo, files
}

// ===== CREATE =====

func TestCreate_AutoApprovedTypesStartApproved(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, typ := range []absence.Type{absence.TypeWorkFromHome, absence.TypeWorkFromOffice} {
		created, err := svc.Create(ctx, absence.CreateRequest{
			OwnerEmail: "alice@corp.test",
			StartDate:  "2026-01-06",
			EndDate:    "2026-01-06",
			Type:       string(typ),
		})
		require.NoError(t, err)
		assert.True(t, created.Approved, "type %s must auto-approve", typ)
	}
}

func TestCreate_OtherTypesStartPending(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, typ := range absence.Types {
		if absence.AutoApproved(typ) {
			continue
		}
		created, err := svc.Create(ctx, absence.CreateRequest{
			OwnerEmail: "alice@corp.test",
			StartDate:  "2026-01-06",
			EndDate:    "2026-01-07",
			Type:       string(typ),
		})
		require.NoError(t, err)
		assert.False(t, created.Approved, "type %s must start pending", typ)
	}
}

func TestCreate_ApprovalFlagIsServerDerived(t *testing.T) {
	// The client never sends an approval flag; whatever the submission
	// claims, a vacation starts pending.
	svc, repo, _ := newTestService()

	created, err := svc.Create(context.Background(), absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-06",
		Type:       string(absence.TypeVacation),
	})

	require.NoError(t, err)
	assert.False(t, created.Approved)
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.Approved)
}

func TestCreate_SickLeaveStoresDocument(t *testing.T) {
	svc, _, files := newTestService()

	created, err := svc.Create(context.Background(), absence.CreateRequest{
		OwnerEmail:   "alice@corp.test",
		StartDate:    "2026-01-06",
		EndDate:      "2026-01-06",
		Type:         string(absence.TypeSickLeave),
		Document:     strings.NewReader("medical note"),
		DocumentName: "note.pdf",
	})

	require.NoError(t, err)
	assert.True(t, created.HasDocument)
	assert.Len(t, files.files, 1)

	doc, err := svc.Document(context.Background(), created.ID)
	require.NoError(t, err)
	defer doc.Content.Close()
	assert.Equal(t, "note.pdf", doc.Name)
	content, _ := io.ReadAll(doc.Content)
	assert.Equal(t, "medical note", string(content))
}

func TestCreate_DocumentRejectedForOtherTypes(t *testing.T) {
	svc, _, files := newTestService()

	_, err := svc.Create(context.Background(), absence.CreateRequest{
		OwnerEmail:   "alice@corp.test",
		StartDate:    "2026-01-06",
		EndDate:      "2026-01-06",
		Type:         string(absence.TypeVacation),
		Document:     strings.NewReader("not allowed"),
		DocumentName: "note.pdf",
	})

	assert.ErrorIs(t, err, absence.ErrDocumentNotAllowed)
	assert.Empty(t, files.files)
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-08",
		EndDate:    "2026-01-06",
		Type:       string(absence.TypeVacation),
	})
	assert.ErrorIs(t, err, absence.ErrInvalidDateRange)

	_, err = svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-06",
		Type:       "LONG_WEEKEND",
	})
	assert.Error(t, err)
}

func TestCreate_SingleDayRange(t *testing.T) {
	svc, _, _ := newTestService()

	created, err := svc.Create(context.Background(), absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-06",
		Type:       string(absence.TypeWorkFromHome),
	})

	require.NoError(t, err)
	assert.Equal(t, created.StartDate, created.EndDate)
	assert.True(t, created.Approved)
}

// ===== APPROVE =====

func TestApprove_FlipsPendingToApproved(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, created.ID, "mara@corp.test"))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)
	require.NotNil(t, stored.ManagerEmail)
	assert.Equal(t, "mara@corp.test", *stored.ManagerEmail)
}

func TestApprove_DoubleApproveKeepsApproved(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)
	require.NoError(t, svc.Approve(ctx, created.ID, "mara@corp.test"))

	// A repeat approval succeeds and never toggles back.
	require.NoError(t, svc.Approve(ctx, created.ID, "mara@corp.test"))

	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, stored.Approved)
}

func TestApprove_MissingRecord(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Approve(context.Background(), "no-such-id", "mara@corp.test")
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

func TestApprove_OwnerCannotSelfApprove(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	err = svc.Approve(ctx, created.ID, "alice@corp.test")

	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	stored, getErr := repo.GetByID(ctx, created.ID)
	require.NoError(t, getErr)
	assert.False(t, stored.Approved, "record must stay pending")
}

func TestApprove_RejectsCallerOutsideReportingLine(t *testing.T) {
	// Bob shares Alice's manager but does not manage her himself.
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	err = svc.Approve(ctx, created.ID, "bob@corp.test")

	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	stored, getErr := repo.GetByID(ctx, created.ID)
	require.NoError(t, getErr)
	assert.False(t, stored.Approved)
}

// ===== DELETE =====

func TestDelete_RemovesRecordAndDocument(t *testing.T) {
	svc, repo, files := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail:   "alice@corp.test",
		StartDate:    "2026-01-06",
		EndDate:      "2026-01-06",
		Type:         string(absence.TypeSickLeave),
		Document:     strings.NewReader("medical note"),
		DocumentName: "note.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "alice@corp.test"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
	assert.Empty(t, files.files)
}

func TestDelete_WorksOnApprovedRecords(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-06",
		Type:       string(absence.TypeWorkFromHome),
	})
	require.NoError(t, err)
	require.True(t, created.Approved)

	assert.NoError(t, svc.Delete(ctx, created.ID, "alice@corp.test"))
}

func TestDelete_ManagerCanDeleteSubordinateRecord(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, "mara@corp.test"))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

func TestDelete_RejectsCallerOutsideReportingLine(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID, "bob@corp.test")

	assert.ErrorIs(t, err, user.ErrManagerAccessRequired)
	_, getErr := repo.GetByID(ctx, created.ID)
	assert.NoError(t, getErr, "record must survive the rejected delete")
}

func TestDelete_MissingRecord(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Delete(context.Background(), "already-gone", "alice@corp.test")
	assert.ErrorIs(t, err, absence.ErrAbsenceNotFound)
}

// ===== LIST =====

func TestListForUser_RequiresReportingLine(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	records, err := svc.ListForUser(ctx, "mara@corp.test", "alice@corp.test")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Alice does not report to herself.
	_, err = svc.ListForUser(ctx, "alice@corp.test", "mara@corp.test")
	assert.ErrorIs(t, err, absence.ErrNotSubordinate)
}

func TestListOwn_ReturnsOnlyOwnRecords(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, absence.CreateRequest{
		OwnerEmail: "alice@corp.test",
		StartDate:  "2026-01-06",
		EndDate:    "2026-01-07",
		Type:       string(absence.TypeVacation),
	})
	require.NoError(t, err)

	records, err := svc.ListOwn(ctx, "alice@corp.test")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	records, err = svc.ListOwn(ctx, "mara@corp.test")
	require.NoError(t, err)
	assert.Empty(t, records)
}
