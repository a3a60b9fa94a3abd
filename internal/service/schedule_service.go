package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
	"coursetable/internal/repository"
	"coursetable/internal/schedule"
)

// ScheduleService binds the pure recurrence engine to the active semester's
// validated course list. All results are computed on demand; views render
// them without re-deriving occurrence logic.
type ScheduleService interface {
	// CoursesInWeek returns the current semester's courses occurring in the given week
	CoursesInWeek(ctx context.Context, week int) ([]model.Course, error)
	// CoursesOn returns the current semester's courses on (day, week)
	CoursesOn(ctx context.Context, day, week int) ([]model.Course, error)
	// FreeSlots returns catalog slots not exactly occupied on (day, week)
	FreeSlots(ctx context.Context, day, week int) ([]model.TimeSlot, error)
	// WeekFreeSlots maps every weekday of the week to its free slots
	WeekFreeSlots(ctx context.Context, week int) (map[int][]model.TimeSlot, error)
	// MonthFreeStats computes the month's free/occupied hour breakdown
	MonthFreeStats(ctx context.Context, year, month int) (*schedule.MonthStats, error)
	// CurrentWeek derives the teaching week of the given instant, 1 when no semester is current
	CurrentWeek(ctx context.Context, now time.Time) (int, error)
}

type scheduleService struct {
	semesters repository.SemesterRepository
	courses   CourseService
	logger    zerolog.Logger
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(semesters repository.SemesterRepository, courses CourseService, logger zerolog.Logger) ScheduleService {
	return &scheduleService{
		semesters: semesters,
		courses:   courses,
		logger:    logger.With().Str("service", "ScheduleService").Logger(),
	}
}

// currentCourses returns the active semester and its validated courses.
// A missing current semester degrades to an empty list, not an error.
func (s *scheduleService) currentCourses(ctx context.Context) (*model.Semester, []model.Course, error) {
	sem, err := s.semesters.GetCurrentSemester(ctx)
	if err != nil {
		return nil, nil, err
	}
	if sem == nil {
		return nil, []model.Course{}, nil
	}
	all, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, nil, err
	}
	scoped := []model.Course{}
	for _, c := range all {
		if c.SemesterID == sem.SemesterID {
			scoped = append(scoped, c)
		}
	}
	return sem, scoped, nil
}

// CoursesInWeek returns the current semester's courses occurring in the given week
func (s *scheduleService) CoursesInWeek(ctx context.Context, week int) ([]model.Course, error) {
	_, courses, err := s.currentCourses(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.CoursesInWeek(courses, week), nil
}

// CoursesOn returns the current semester's courses on (day, week)
func (s *scheduleService) CoursesOn(ctx context.Context, day, week int) ([]model.Course, error) {
	_, courses, err := s.currentCourses(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.CoursesOn(courses, day, week), nil
}

// FreeSlots returns catalog slots not exactly occupied on (day, week)
func (s *scheduleService) FreeSlots(ctx context.Context, day, week int) ([]model.TimeSlot, error) {
	_, courses, err := s.currentCourses(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.FreeSlots(courses, day, week), nil
}

// WeekFreeSlots maps every weekday of the week to its free slots
func (s *scheduleService) WeekFreeSlots(ctx context.Context, week int) (map[int][]model.TimeSlot, error) {
	_, courses, err := s.currentCourses(ctx)
	if err != nil {
		return nil, err
	}
	return schedule.WeekFreeSlots(courses, week), nil
}

// MonthFreeStats computes the month's free/occupied hour breakdown
func (s *scheduleService) MonthFreeStats(ctx context.Context, year, month int) (*schedule.MonthStats, error) {
	if month < 1 || month > 12 {
		return nil, &ValidationError{Messages: []string{fmt.Sprintf("month %d is out of range", month)}}
	}
	sem, courses, err := s.currentCourses(ctx)
	if err != nil {
		return nil, err
	}
	if sem == nil {
		return &schedule.MonthStats{Year: year, Month: month, Days: []schedule.DayFreeStat{}}, nil
	}
	stats, err := schedule.MonthFreeStats(courses, *sem, year, month)
	if err != nil {
		s.logger.Error().Err(err).Int64("semester_id", sem.SemesterID).Msg("Failed to compute month stats")
		return nil, err
	}
	return stats, nil
}

// CurrentWeek derives the teaching week of the given instant, 1 when no
// semester is current or its start date does not parse.
func (s *scheduleService) CurrentWeek(ctx context.Context, now time.Time) (int, error) {
	sem, err := s.semesters.GetCurrentSemester(ctx)
	if err != nil {
		return 0, err
	}
	if sem == nil {
		return 1, nil
	}
	start, err := time.Parse(model.DateLayout, sem.StartDate)
	if err != nil {
		s.logger.Warn().Err(err).Int64("semester_id", sem.SemesterID).Msg("Unparseable semester start date, assuming week 1")
		return 1, nil
	}
	return schedule.WeekNumber(now, start), nil
}
