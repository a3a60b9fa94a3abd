package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"coursetable/internal/model"
)

// ErrSemesterNotFound is returned when an operation requires an existing
// semester and the given id matches nothing.
var ErrSemesterNotFound = errors.New("semester not found")

// SemesterRepository defines the interface for interacting with semester data
type SemesterRepository interface {
	CreateSemester(ctx context.Context, s *model.Semester) error
	ListSemesters(ctx context.Context) ([]model.Semester, error)
	// GetSemesterByID retrieves a semester by its ID
	GetSemesterByID(ctx context.Context, semesterID int64) (*model.Semester, error)
	// GetCurrentSemester returns the single current semester, or nil when none is set
	GetCurrentSemester(ctx context.Context) (*model.Semester, error)
	// SetCurrentSemester atomically clears the current flag everywhere and sets it on one semester
	SetCurrentSemester(ctx context.Context, semesterID int64) error
	UpdateSemester(ctx context.Context, s *model.Semester) error
}

type semesterRepo struct {
	db *sql.DB
}

// NewSemesterRepo creates a new SemesterRepository
func NewSemesterRepo(db *sql.DB) SemesterRepository {
	return &semesterRepo{db: db}
}

// CreateSemester inserts a new semester and fills in the generated id
func (r *semesterRepo) CreateSemester(ctx context.Context, s *model.Semester) error {
	query := `
		INSERT INTO semesters (name, start_date, end_date, current)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, s.Name, s.StartDate, s.EndDate, s.Current).
		Scan(&s.SemesterID)
	if err != nil {
		return fmt.Errorf("creating semester: %w", err)
	}
	return nil
}

// ListSemesters retrieves all semesters ordered by start date ascending
func (r *semesterRepo) ListSemesters(ctx context.Context) ([]model.Semester, error) {
	query := `
		SELECT id, name, start_date, end_date, current
		FROM semesters
		ORDER BY start_date ASC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying semesters: %w", err)
	}
	defer rows.Close()

	var semesters []model.Semester
	for rows.Next() {
		var s model.Semester
		if err := rows.Scan(&s.SemesterID, &s.Name, &s.StartDate, &s.EndDate, &s.Current); err != nil {
			return nil, fmt.Errorf("scanning semester row: %w", err)
		}
		semesters = append(semesters, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating semester rows: %w", err)
	}

	// If no semesters found, return an empty slice, not nil
	if len(semesters) == 0 {
		return []model.Semester{}, nil
	}
	return semesters, nil
}

// GetSemesterByID retrieves a semester by its ID
func (r *semesterRepo) GetSemesterByID(ctx context.Context, semesterID int64) (*model.Semester, error) {
	query := `
		SELECT id, name, start_date, end_date, current
		FROM semesters
		WHERE id = $1
	`
	var s model.Semester
	err := r.db.QueryRowContext(ctx, query, semesterID).
		Scan(&s.SemesterID, &s.Name, &s.StartDate, &s.EndDate, &s.Current)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting semester by id %d: %w", semesterID, err)
	}
	return &s, nil
}

// GetCurrentSemester returns the single current semester, or nil when none is set
func (r *semesterRepo) GetCurrentSemester(ctx context.Context) (*model.Semester, error) {
	query := `
		SELECT id, name, start_date, end_date, current
		FROM semesters
		WHERE current = TRUE
		LIMIT 1
	`
	var s model.Semester
	err := r.db.QueryRowContext(ctx, query).
		Scan(&s.SemesterID, &s.Name, &s.StartDate, &s.EndDate, &s.Current)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting current semester: %w", err)
	}
	return &s, nil
}

// SetCurrentSemester clears the current flag on every semester and sets it
// on the given one inside a single transaction, so no reader ever observes
// zero or two current semesters. Unknown ids roll back with
// ErrSemesterNotFound.
func (r *semesterRepo) SetCurrentSemester(ctx context.Context, semesterID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning current-semester swap: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE semesters SET current = FALSE WHERE current = TRUE`); err != nil {
		return fmt.Errorf("clearing current semester flags: %w", err)
	}
	res, err := tx.ExecContext(ctx, `UPDATE semesters SET current = TRUE WHERE id = $1`, semesterID)
	if err != nil {
		return fmt.Errorf("setting current semester %d: %w", semesterID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking current-semester swap: %w", err)
	}
	if affected == 0 {
		return ErrSemesterNotFound
	}
	return tx.Commit()
}

// UpdateSemester updates the mutable fields of an existing semester
func (r *semesterRepo) UpdateSemester(ctx context.Context, s *model.Semester) error {
	query := `
		UPDATE semesters
		SET name = $1, start_date = $2, end_date = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, s.Name, s.StartDate, s.EndDate, s.SemesterID)
	if err != nil {
		return fmt.Errorf("updating semester %d: %w", s.SemesterID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking semester update: %w", err)
	}
	if affected == 0 {
		return ErrSemesterNotFound
	}
	return nil
}
