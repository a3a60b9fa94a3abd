package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
)

// ErrCourseNotFound is returned when an update targets a nonexistent course.
var ErrCourseNotFound = errors.New("course not found")

// CourseRepository defines the interface for interacting with course data.
// Every read path runs rows through the validity filter: legacy or corrupt
// rows are dropped with a warning, never surfaced as malformed records.
type CourseRepository interface {
	CreateCourse(ctx context.Context, c *model.Course) error
	// UpdateCourse replaces every mutable field of an existing course
	UpdateCourse(ctx context.Context, c *model.Course) error
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, courseID int64) error
	// ListCourses retrieves all valid courses ordered by (semester, day, start time)
	ListCourses(ctx context.Context) ([]model.Course, error)
	// ListCoursesBySemester retrieves all valid courses of one semester
	ListCoursesBySemester(ctx context.Context, semesterID int64) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID; invalid rows read as a miss
	GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error)
}

type courseRepo struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB, logger zerolog.Logger) CourseRepository {
	return &courseRepo{db: db, logger: logger.With().Str("repository", "CourseRepository").Logger()}
}

const courseColumns = `id, name, teacher, location, start_week, end_week, day_of_week,
		start_time, end_time, color, course_type, is_special, semester_id,
		reminder_enabled, reminder_minutes, reminder_type`

// CreateCourse inserts a new course and fills in the generated id.
// Week and day values are written as text for schema compatibility.
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (name, teacher, location, start_week, end_week, day_of_week,
			start_time, end_time, color, course_type, is_special, semester_id,
			reminder_enabled, reminder_minutes, reminder_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		c.Name, c.Teacher, c.Location,
		strconv.Itoa(c.StartWeek), strconv.Itoa(c.EndWeek), strconv.Itoa(c.DayOfWeek),
		c.StartTime, c.EndTime, c.Color, c.CourseType, c.IsSpecial, c.SemesterID,
		c.ReminderEnabled, c.ReminderMinutes, c.ReminderType,
	).Scan(&c.CourseID)
	if err != nil {
		return fmt.Errorf("creating course: %w", err)
	}
	r.logger.Info().Int64("course_id", c.CourseID).Str("name", c.Name).Msg("Course created")
	return nil
}

// UpdateCourse replaces every mutable field of an existing course
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET name = $1, teacher = $2, location = $3, start_week = $4, end_week = $5,
			day_of_week = $6, start_time = $7, end_time = $8, color = $9,
			course_type = $10, is_special = $11, semester_id = $12,
			reminder_enabled = $13, reminder_minutes = $14, reminder_type = $15
		WHERE id = $16
	`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.Teacher, c.Location,
		strconv.Itoa(c.StartWeek), strconv.Itoa(c.EndWeek), strconv.Itoa(c.DayOfWeek),
		c.StartTime, c.EndTime, c.Color, c.CourseType, c.IsSpecial, c.SemesterID,
		c.ReminderEnabled, c.ReminderMinutes, c.ReminderType, c.CourseID,
	)
	if err != nil {
		return fmt.Errorf("updating course %d: %w", c.CourseID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking course update: %w", err)
	}
	if affected == 0 {
		return ErrCourseNotFound
	}
	r.logger.Info().Int64("course_id", c.CourseID).Str("name", c.Name).Msg("Course updated")
	return nil
}

// DeleteCourse deletes a course by its ID
func (r *courseRepo) DeleteCourse(ctx context.Context, courseID int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, courseID); err != nil {
		return fmt.Errorf("deleting course %d: %w", courseID, err)
	}
	r.logger.Info().Int64("course_id", courseID).Msg("Course deleted")
	return nil
}

// ListCourses retrieves all valid courses ordered by (semester, day, start time)
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		ORDER BY semester_id, day_of_week, start_time
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()
	return r.collectValid(rows)
}

// ListCoursesBySemester retrieves all valid courses of one semester
func (r *courseRepo) ListCoursesBySemester(ctx context.Context, semesterID int64) ([]model.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE semester_id = $1
		ORDER BY day_of_week, start_time
	`
	rows, err := r.db.QueryContext(ctx, query, semesterID)
	if err != nil {
		return nil, fmt.Errorf("querying courses for semester %d: %w", semesterID, err)
	}
	defer rows.Close()
	return r.collectValid(rows)
}

// GetCourseByID retrieves a course by its ID; invalid rows read as a miss
func (r *courseRepo) GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error) {
	query := `
		SELECT ` + courseColumns + `
		FROM courses
		WHERE id = $1
	`
	var row model.CourseRow
	err := scanCourseRow(r.db.QueryRowContext(ctx, query, courseID), &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("getting course by id %d: %w", courseID, err)
	}
	c, err := row.Course()
	if err != nil {
		r.logger.Warn().Err(err).Int64("course_id", row.CourseID).Msg("Dropping invalid course row")
		return nil, nil
	}
	return &c, nil
}

// collectValid scans every row, coerces it to a typed course, and silently
// drops rows that fail coercion or the validity predicate.
func (r *courseRepo) collectValid(rows *sql.Rows) ([]model.Course, error) {
	courses := []model.Course{}
	for rows.Next() {
		var row model.CourseRow
		if err := scanCourseRow(rows, &row); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		c, err := row.Course()
		if err != nil {
			r.logger.Warn().Err(err).Int64("course_id", row.CourseID).Msg("Dropping invalid course row")
			continue
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course rows: %w", err)
	}
	return courses, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCourseRow(s rowScanner, row *model.CourseRow) error {
	return s.Scan(
		&row.CourseID,
		&row.Name,
		&row.Teacher,
		&row.Location,
		&row.StartWeek,
		&row.EndWeek,
		&row.DayOfWeek,
		&row.StartTime,
		&row.EndTime,
		&row.Color,
		&row.CourseType,
		&row.IsSpecial,
		&row.SemesterID,
		&row.ReminderEnabled,
		&row.ReminderMinutes,
		&row.ReminderType,
	)
}
