package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
	"coursetable/internal/schedule"
)

// Clock defines an interface for getting the current time.
// This allows us to inject a fake time during unit tests.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// MockClock implements Clock for testing specific scenarios.
type MockClock struct {
	MockTime time.Time
}

func (m MockClock) Now() time.Time { return m.MockTime }

// Notifier is the external reminder channel. Implementations are
// platform-specific; the engine only hands over display fields.
type Notifier interface {
	Popup(c model.Course)
	Sound(c model.Course)
}

// LogNotifier is the default Notifier; it writes the reminder to the log.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Popup(c model.Course) {
	n.Logger.Info().
		Str("name", c.Name).
		Str("teacher", c.Teacher).
		Str("location", c.Location).
		Str("time", c.StartTime+"-"+c.EndTime).
		Msg("Class starting soon")
}

func (n LogNotifier) Sound(c model.Course) {
	n.Logger.Info().Str("name", c.Name).Msg("Reminder chime")
}

// ShouldRemind decides whether a course's reminder fires at the given
// instant. The fire window is half-open and sized to the poll interval, so
// each occurrence fires exactly once as long as the poll cadence holds.
func ShouldRemind(c model.Course, now time.Time, interval time.Duration) bool {
	if !c.ReminderEnabled {
		return false
	}
	if c.DayOfWeek != schedule.ISOWeekday(now) {
		return false
	}
	st, err := time.Parse(model.TimeLayout, c.StartTime)
	if err != nil {
		return false
	}
	classStart := time.Date(now.Year(), now.Month(), now.Day(), st.Hour(), st.Minute(), 0, 0, now.Location())
	fireAt := classStart.Add(-time.Duration(c.ReminderMinutes) * time.Minute)
	elapsed := now.Sub(fireAt)
	return elapsed >= 0 && elapsed < interval
}

// ReminderService polls the current week's courses on a fixed interval and
// dispatches due reminders. One background worker; Start/Stop lifecycle with
// Stop joining the worker before returning.
type ReminderService struct {
	schedule ScheduleService
	notifier Notifier
	clock    Clock
	interval time.Duration
	logger   zerolog.Logger

	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
}

// NewReminderService creates a new ReminderService
func NewReminderService(scheduleSvc ScheduleService, notifier Notifier, clock Clock, interval time.Duration, logger zerolog.Logger) *ReminderService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &ReminderService{
		schedule: scheduleSvc,
		notifier: notifier,
		clock:    clock,
		interval: interval,
		logger:   logger.With().Str("service", "ReminderService").Logger(),
	}
}

// Start launches the polling worker. Calling Start on a running service is a
// no-op.
func (s *ReminderService) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
	s.logger.Info().Dur("interval", s.interval).Msg("Reminder service started")
}

// Stop signals the worker and waits for it to exit.
func (s *ReminderService) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	stop, done := s.stop, s.done
	s.mu.Unlock()

	close(stop)
	<-done
	s.logger.Info().Msg("Reminder service stopped")
}

func (s *ReminderService) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.checkReminders()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.checkReminders()
		}
	}
}

// checkReminders runs one poll tick: resolve the current week, fetch its
// courses and dispatch everything inside the fire window.
func (s *ReminderService) checkReminders() {
	ctx := context.Background()
	now := s.clock.Now()

	week, err := s.schedule.CurrentWeek(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to resolve current week")
		return
	}
	courses, err := s.schedule.CoursesInWeek(ctx, week)
	if err != nil {
		s.logger.Error().Err(err).Int("week", week).Msg("Failed to load courses for reminder check")
		return
	}
	for _, c := range courses {
		if !ShouldRemind(c, now, s.interval) {
			continue
		}
		s.dispatch(c)
	}
}

func (s *ReminderService) dispatch(c model.Course) {
	s.logger.Info().Int64("course_id", c.CourseID).Str("name", c.Name).Str("reminder_type", c.ReminderType).Msg("Reminder due")
	switch c.ReminderType {
	case model.ReminderSound:
		s.notifier.Sound(c)
	case model.ReminderBoth:
		s.notifier.Popup(c)
		s.notifier.Sound(c)
	default:
		s.notifier.Popup(c)
	}
}
