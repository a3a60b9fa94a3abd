package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
	"coursetable/internal/repository"
)

// SemesterService defines semester-registry operations
type SemesterService interface {
	AddSemester(ctx context.Context, name, startDate, endDate string) (*model.Semester, error)
	ListSemesters(ctx context.Context) ([]model.Semester, error)
	// GetCurrentSemester returns the current semester or nil when none is set
	GetCurrentSemester(ctx context.Context) (*model.Semester, error)
	// SetCurrentSemester makes one semester current; unknown ids fail with repository.ErrSemesterNotFound
	SetCurrentSemester(ctx context.Context, semesterID int64) error
	UpdateSemester(ctx context.Context, semesterID int64, name, startDate, endDate string) (*model.Semester, error)
}

type semesterService struct {
	repo   repository.SemesterRepository
	logger zerolog.Logger
}

// NewSemesterService creates a new SemesterService
func NewSemesterService(repo repository.SemesterRepository, logger zerolog.Logger) SemesterService {
	return &semesterService{
		repo:   repo,
		logger: logger.With().Str("service", "SemesterService").Logger(),
	}
}

// validateSemesterDates checks date format and ordering before anything
// reaches the store.
func validateSemesterDates(name, startDate, endDate string) *ValidationError {
	var messages []string
	if name == "" {
		messages = append(messages, "name must not be empty")
	}
	start, err := time.Parse(model.DateLayout, startDate)
	if err != nil {
		messages = append(messages, fmt.Sprintf("start_date %q is not a valid YYYY-MM-DD date", startDate))
	}
	end, err := time.Parse(model.DateLayout, endDate)
	if err != nil {
		messages = append(messages, fmt.Sprintf("end_date %q is not a valid YYYY-MM-DD date", endDate))
	}
	if len(messages) == 0 && !end.After(start) {
		messages = append(messages, "end_date must be after start_date")
	}
	if len(messages) > 0 {
		return &ValidationError{Messages: messages}
	}
	return nil
}

// AddSemester validates and creates a new semester record
func (s *semesterService) AddSemester(ctx context.Context, name, startDate, endDate string) (*model.Semester, error) {
	if verr := validateSemesterDates(name, startDate, endDate); verr != nil {
		return nil, verr
	}
	sem := &model.Semester{Name: name, StartDate: startDate, EndDate: endDate}
	if err := s.repo.CreateSemester(ctx, sem); err != nil {
		s.logger.Error().Err(err).Str("name", name).Msg("Failed to create semester")
		return nil, err
	}
	return sem, nil
}

// ListSemesters retrieves all semesters ordered by start date
func (s *semesterService) ListSemesters(ctx context.Context) ([]model.Semester, error) {
	semesters, err := s.repo.ListSemesters(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list semesters")
		return nil, err
	}
	return semesters, nil
}

// GetCurrentSemester returns the current semester or nil when none is set
func (s *semesterService) GetCurrentSemester(ctx context.Context) (*model.Semester, error) {
	sem, err := s.repo.GetCurrentSemester(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to get current semester")
		return nil, err
	}
	return sem, nil
}

// SetCurrentSemester makes one semester current
func (s *semesterService) SetCurrentSemester(ctx context.Context, semesterID int64) error {
	if err := s.repo.SetCurrentSemester(ctx, semesterID); err != nil {
		s.logger.Error().Err(err).Int64("semester_id", semesterID).Msg("Failed to set current semester")
		return err
	}
	s.logger.Info().Int64("semester_id", semesterID).Msg("Current semester switched")
	return nil
}

// UpdateSemester validates and updates an existing semester
func (s *semesterService) UpdateSemester(ctx context.Context, semesterID int64, name, startDate, endDate string) (*model.Semester, error) {
	if verr := validateSemesterDates(name, startDate, endDate); verr != nil {
		return nil, verr
	}
	sem := &model.Semester{SemesterID: semesterID, Name: name, StartDate: startDate, EndDate: endDate}
	if err := s.repo.UpdateSemester(ctx, sem); err != nil {
		s.logger.Error().Err(err).Int64("semester_id", semesterID).Msg("Failed to update semester")
		return nil, err
	}
	return sem, nil
}
