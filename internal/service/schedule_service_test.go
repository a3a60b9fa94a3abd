package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
)

// scheduleFixture wires a schedule service over in-memory repos with one
// current semester (2024Fall, starting 2024-09-01) and a Monday course, plus
// a second semester carrying a course that must never leak into views.
func scheduleFixture(t *testing.T) ScheduleService {
	t.Helper()
	ctx := context.Background()

	semRepo := &fakeSemesterRepo{}
	fall := &model.Semester{Name: "2024Fall", StartDate: "2024-09-01", EndDate: "2025-01-15"}
	spring := &model.Semester{Name: "2025Spring", StartDate: "2025-02-15", EndDate: "2025-07-01"}
	if err := semRepo.CreateSemester(ctx, fall); err != nil {
		t.Fatal(err)
	}
	if err := semRepo.CreateSemester(ctx, spring); err != nil {
		t.Fatal(err)
	}
	if err := semRepo.SetCurrentSemester(ctx, fall.SemesterID); err != nil {
		t.Fatal(err)
	}

	courseSvc := NewCourseService(&fakeCourseRepo{}, 0, zerolog.Nop())
	algo := testCourse()
	algo.SemesterID = fall.SemesterID
	if _, err := courseSvc.AddCourse(ctx, algo); err != nil {
		t.Fatal(err)
	}
	other := testCourse()
	other.Name = "Spring Physics"
	other.SemesterID = spring.SemesterID
	if _, err := courseSvc.AddCourse(ctx, other); err != nil {
		t.Fatal(err)
	}

	return NewScheduleService(semRepo, courseSvc, zerolog.Nop())
}

func TestCoursesInWeekScopedToCurrentSemester(t *testing.T) {
	svc := scheduleFixture(t)

	got, err := svc.CoursesInWeek(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "Algorithms" {
		t.Fatalf("expected only the current semester's course, got %+v", got)
	}
}

func TestCoursesOnAndFreeSlots(t *testing.T) {
	svc := scheduleFixture(t)
	ctx := context.Background()

	monday, err := svc.CoursesOn(ctx, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(monday) != 1 {
		t.Fatalf("expected one Monday course, got %d", len(monday))
	}

	free, err := svc.FreeSlots(ctx, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(free) != len(model.Catalog)-1 {
		t.Fatalf("expected %d free slots, got %d", len(model.Catalog)-1, len(free))
	}

	byDay, err := svc.WeekFreeSlots(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(byDay) != 7 || len(byDay[2]) != len(model.Catalog) {
		t.Fatalf("unexpected week free-slot map: %d days", len(byDay))
	}
}

func TestCurrentWeek(t *testing.T) {
	svc := scheduleFixture(t)

	week, err := svc.CurrentWeek(context.Background(), time.Date(2024, time.September, 15, 10, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if week != 3 {
		t.Fatalf("expected week 3, got %d", week)
	}
}

func TestCurrentWeekWithoutSemester(t *testing.T) {
	courseSvc := NewCourseService(&fakeCourseRepo{}, 0, zerolog.Nop())
	svc := NewScheduleService(&fakeSemesterRepo{}, courseSvc, zerolog.Nop())
	ctx := context.Background()

	week, err := svc.CurrentWeek(ctx, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if week != 1 {
		t.Fatalf("expected week 1 without a current semester, got %d", week)
	}

	got, err := svc.CoursesInWeek(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty schedule without a current semester, got %+v", got)
	}
}

func TestMonthFreeStatsValidation(t *testing.T) {
	svc := scheduleFixture(t)
	ctx := context.Background()

	_, err := svc.MonthFreeStats(ctx, 2024, 13)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error for month 13, got %v", err)
	}

	stats, err := svc.MonthFreeStats(ctx, 2024, 9)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Year != 2024 || stats.Month != 9 || len(stats.Days) != 30 {
		t.Fatalf("unexpected month stats: %+v", stats)
	}
}
