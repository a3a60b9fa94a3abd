package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
	"coursetable/internal/repository"
	"coursetable/internal/schedule"
)

// CourseService defines course-store operations
type CourseService interface {
	AddCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// UpdateCourse replaces the full record of an existing course
	UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error)
	// DeleteCourse deletes a course by its ID
	DeleteCourse(ctx context.Context, courseID int64) error
	// ListCourses returns all valid courses, served from a short-lived cache
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course by its ID, nil on a miss
	GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error)
	// Search filters all valid courses by substring match over one field
	Search(ctx context.Context, keyword, field string) ([]model.Course, error)
}

// courseService is the implementation of CourseService. It keeps a mutex-
// guarded list cache with a short TTL; every write invalidates it so a
// caller never observes stale data after its own mutation.
type courseService struct {
	repo     repository.CourseRepository
	cacheTTL time.Duration
	logger   zerolog.Logger

	mu       sync.Mutex
	cached   []model.Course
	cachedAt time.Time
}

// NewCourseService creates a new CourseService. A zero cacheTTL disables the
// list cache.
func NewCourseService(repo repository.CourseRepository, cacheTTL time.Duration, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:     repo,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("service", "CourseService").Logger(),
	}
}

// validateCourse checks the write-boundary rules and collects every failure
// message.
func validateCourse(c *model.Course) *ValidationError {
	var messages []string
	if c.Name == "" {
		messages = append(messages, "name must not be empty")
	}
	if c.Teacher == "" {
		messages = append(messages, "teacher must not be empty")
	}
	if c.Location == "" {
		messages = append(messages, "location must not be empty")
	}
	if c.StartWeek < 1 || c.EndWeek > model.MaxWeek || c.StartWeek > c.EndWeek {
		messages = append(messages, fmt.Sprintf("weeks must satisfy 1 <= start_week <= end_week <= %d", model.MaxWeek))
	}
	if c.DayOfWeek < 1 || c.DayOfWeek > 7 {
		messages = append(messages, "day_of_week must be between 1 (Monday) and 7 (Sunday)")
	}
	st, err := time.Parse(model.TimeLayout, c.StartTime)
	if err != nil {
		messages = append(messages, fmt.Sprintf("start_time %q is not a valid HH:MM time", c.StartTime))
	}
	et, err := time.Parse(model.TimeLayout, c.EndTime)
	if err != nil {
		messages = append(messages, fmt.Sprintf("end_time %q is not a valid HH:MM time", c.EndTime))
	}
	if len(messages) == 0 && !et.After(st) {
		messages = append(messages, "end_time must be after start_time")
	}
	if c.SemesterID == 0 {
		messages = append(messages, "semester_id must be set")
	}
	switch c.ReminderType {
	case "", model.ReminderPopup, model.ReminderSound, model.ReminderBoth:
	default:
		messages = append(messages, fmt.Sprintf("reminder_type %q must be popup, sound or both", c.ReminderType))
	}
	if c.ReminderMinutes < 0 {
		messages = append(messages, "reminder_minutes must not be negative")
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// normalizeCourse fills the derived fields: course type from the name when
// absent, display color from the type, and the is_special mirror. The type
// classification, not the stored flag, is authoritative.
func normalizeCourse(c *model.Course) {
	if c.CourseType == "" {
		c.CourseType = model.ClassifyCourseType(c.Name)
	}
	if c.Color == "" {
		c.Color = model.TypeColor(c.CourseType)
	}
	if c.ReminderType == "" {
		c.ReminderType = model.ReminderPopup
	}
	c.IsSpecial = model.IsSpecialType(c.CourseType)
}

// AddCourse validates, normalizes and creates a new course record
func (s *courseService) AddCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if verr := validateCourse(c); verr != nil {
		return nil, verr
	}
	normalizeCourse(c)
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("name", c.Name).Msg("Failed to create course")
		return nil, err
	}
	s.invalidate()
	return c, nil
}

// UpdateCourse replaces the full record of an existing course
func (s *courseService) UpdateCourse(ctx context.Context, c *model.Course) (*model.Course, error) {
	if verr := validateCourse(c); verr != nil {
		return nil, verr
	}
	normalizeCourse(c)
	if err := s.repo.UpdateCourse(ctx, c); err != nil {
		s.logger.Error().Err(err).Int64("course_id", c.CourseID).Msg("Failed to update course")
		return nil, err
	}
	s.invalidate()
	return c, nil
}

// DeleteCourse deletes a course by its ID
func (s *courseService) DeleteCourse(ctx context.Context, courseID int64) error {
	if err := s.repo.DeleteCourse(ctx, courseID); err != nil {
		s.logger.Error().Err(err).Int64("course_id", courseID).Msg("Failed to delete course")
		return err
	}
	s.invalidate()
	return nil
}

// ListCourses returns all valid courses, served from the cache while fresh
func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	s.mu.Lock()
	if s.cacheTTL > 0 && s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		out := make([]model.Course, len(s.cached))
		copy(out, s.cached)
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	courses, err := s.repo.ListCourses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list courses")
		return nil, err
	}

	s.mu.Lock()
	s.cached = courses
	s.cachedAt = time.Now()
	s.mu.Unlock()

	out := make([]model.Course, len(courses))
	copy(out, courses)
	return out, nil
}

// GetCourseByID retrieves a course by its ID, nil on a miss
func (s *courseService) GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error) {
	course, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		s.logger.Error().Err(err).Int64("course_id", courseID).Msg("Failed to get course by ID")
		return nil, err
	}
	return course, nil
}

// Search filters all valid courses by substring match over one field
func (s *courseService) Search(ctx context.Context, keyword, field string) ([]model.Course, error) {
	courses, err := s.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := schedule.Search(courses, keyword, field)
	if err != nil {
		return nil, &ValidationError{Messages: []string{err.Error()}}
	}
	return matches, nil
}

func (s *courseService) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.mu.Unlock()
}
