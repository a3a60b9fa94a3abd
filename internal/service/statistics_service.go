package service

import (
	"context"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
	"coursetable/internal/repository"
	"coursetable/internal/schedule"
)

// StatisticsService derives study-time distributions from the course store
type StatisticsService interface {
	// StudyStatistics aggregates one semester's valid courses; semesterID 0 means the current semester
	StudyStatistics(ctx context.Context, semesterID int64) (*model.StudyStatistics, error)
}

type statisticsService struct {
	semesters repository.SemesterRepository
	courses   repository.CourseRepository
	logger    zerolog.Logger
}

// NewStatisticsService creates a new StatisticsService
func NewStatisticsService(semesters repository.SemesterRepository, courses repository.CourseRepository, logger zerolog.Logger) StatisticsService {
	return &statisticsService{
		semesters: semesters,
		courses:   courses,
		logger:    logger.With().Str("service", "StatisticsService").Logger(),
	}
}

// StudyStatistics aggregates one semester's valid courses. An unknown or
// unset semester degrades to the zero-valued aggregate.
func (s *statisticsService) StudyStatistics(ctx context.Context, semesterID int64) (*model.StudyStatistics, error) {
	if semesterID == 0 {
		sem, err := s.semesters.GetCurrentSemester(ctx)
		if err != nil {
			return nil, err
		}
		if sem == nil {
			empty := schedule.Statistics(nil, s.logger)
			return &empty, nil
		}
		semesterID = sem.SemesterID
	}
	courses, err := s.courses.ListCoursesBySemester(ctx, semesterID)
	if err != nil {
		s.logger.Error().Err(err).Int64("semester_id", semesterID).Msg("Failed to list courses for statistics")
		return nil, err
	}
	stats := schedule.Statistics(courses, s.logger)
	return &stats, nil
}
