package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/pulsehr/ess-portal-go/internal/domain/absence"
	"github.com/pulsehr/ess-portal-go/internal/pkg/database"
)

type absenceRepositoryImpl struct {
	db *database.DB
}

func NewAbsenceRepository(db *database.DB) absence.Repository {
	return &absenceRepositoryImpl{db: db}
}

func (r *absenceRepositoryImpl) Create(ctx context.Context, record absence.Record) (absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO absences (
			id, owner_email, manager_email,
			start_date, end_date, type, approved,
			document_path, document_name,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2,
			$3, $4, $5, $6,
			$7, $8,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.OwnerEmail, record.ManagerEmail,
		record.StartDate, record.EndDate, record.Type, record.Approved,
		record.DocumentPath, record.DocumentName,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return absence.Record{}, err
	}

	return record, nil
}

func (r *absenceRepositoryImpl) GetByID(ctx context.Context, id string) (absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_email, manager_email,
			   start_date, end_date, type, approved,
			   document_path, document_name,
			   created_at, updated_at
		FROM absences
		WHERE id = $1
	`

	var rec absence.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.OwnerEmail,
		&rec.ManagerEmail,
		&rec.StartDate,
		&rec.EndDate,
		&rec.Type,
		&rec.Approved,
		&rec.DocumentPath,
		&rec.DocumentName,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return absence.Record{}, absence.ErrAbsenceNotFound
		}
		return absence.Record{}, err
	}

	return rec, nil
}

func (r *absenceRepositoryImpl) ListByOwner(ctx context.Context, ownerEmail string) ([]absence.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_email, manager_email,
			   start_date, end_date, type, approved,
			   document_path, document_name,
			   created_at, updated_at
		FROM absences
		WHERE owner_email = $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []absence.Record
	for rows.Next() {
		var rec absence.Record
		err := rows.Scan(
			&rec.ID,
			&rec.OwnerEmail,
			&rec.ManagerEmail,
			&rec.StartDate,
			&rec.EndDate,
			&rec.Type,
			&rec.Approved,
			&rec.DocumentPath,
			&rec.DocumentName,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *absenceRepositoryImpl) SetApproved(ctx context.Context, id string, managerEmail string) error {
	q := GetQuerier(ctx, r.db)

	// approved only ever moves false -> true; the WHERE clause does not
	// filter on approved so a repeat call is a no-op that still matches.
	query := `
		UPDATE absences
		SET approved = TRUE, manager_email = $2, updated_at = NOW()
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id, managerEmail)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func (r *absenceRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM absences
		WHERE id = $1
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return absence.ErrAbsenceNotFound
	}
	return nil
}

func (r *absenceRepositoryImpl) HasPending(ctx context.Context, ownerEmail string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM absences
			WHERE owner_email = $1 AND approved = FALSE
		)
	`

	var pending bool
	if err := q.QueryRow(ctx, query, ownerEmail).Scan(&pending); err != nil {
		return false, err
	}
	return pending, nil
}
