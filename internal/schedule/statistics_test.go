package schedule

import (
	"testing"

	"github.com/rs/zerolog"

	"coursetable/internal/model"
)

func TestStatisticsEmpty(t *testing.T) {
	stats := Statistics(nil, zerolog.Nop())
	if stats.TotalCourses != 0 || stats.TotalHours != 0 {
		t.Fatalf("empty input must yield zero totals: %+v", stats)
	}
	if len(stats.PerType) != 0 || len(stats.PerWeek) != 0 || len(stats.PerDay) != 0 || len(stats.PerSlot) != 0 {
		t.Fatal("empty input must yield empty distributions")
	}
}

func TestStatisticsSingleCourse(t *testing.T) {
	algo := course(1, "Algorithms", 1, 1, 16, "08:00", "09:40")
	algo.CourseType = model.NormalCourseType

	stats := Statistics([]model.Course{algo}, zerolog.Nop())
	if stats.TotalCourses != 1 || stats.NormalCourses != 1 || stats.SpecialCourses != 0 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
	// 1.7 hours over 16 weeks.
	if stats.TotalHours != 27.2 {
		t.Fatalf("expected 27.2 total hours, got %v", stats.TotalHours)
	}
	if ts := stats.PerType[model.NormalCourseType]; ts.Count != 1 || ts.Hours != 27.2 {
		t.Fatalf("unexpected per-type stat: %+v", ts)
	}
	for w := 1; w <= 16; w++ {
		if stats.PerWeek[w] != 1.7 {
			t.Fatalf("week %d: expected 1.7 hours, got %v", w, stats.PerWeek[w])
		}
	}
	if stats.PerWeek[17] != 0 {
		t.Fatal("no hours expected past end week")
	}
	if stats.PerDay[1] != 27.2 {
		t.Fatalf("expected all hours on Monday, got %v", stats.PerDay[1])
	}
	if stats.PerSlot["08:00-09:40"] != 27.2 {
		t.Fatalf("expected all hours in the 08:00 slot, got %v", stats.PerSlot["08:00-09:40"])
	}
}

func TestStatisticsSpecialSplit(t *testing.T) {
	algo := course(1, "Algorithms", 1, 1, 8, "08:00", "09:40")
	lab := course(2, "chem lab", 2, 1, 8, "14:00", "15:40")
	lab.CourseType = "lab"
	lab.IsSpecial = true

	stats := Statistics([]model.Course{algo, lab}, zerolog.Nop())
	if stats.NormalCourses != 1 || stats.SpecialCourses != 1 {
		t.Fatalf("unexpected split: %+v", stats)
	}
	if ts := stats.PerType["lab"]; ts.Count != 1 {
		t.Fatalf("expected one lab course, got %+v", ts)
	}
	// An unset course_type folds into the normal bucket.
	if ts := stats.PerType[model.NormalCourseType]; ts.Count != 1 {
		t.Fatalf("expected one normal course, got %+v", ts)
	}
}

func TestStatisticsMalformedTimeDoesNotAbort(t *testing.T) {
	good := course(1, "Algorithms", 1, 1, 10, "08:00", "09:40")
	bad := course(2, "Broken", 2, 1, 10, "8h00", "09:40")

	stats := Statistics([]model.Course{good, bad}, zerolog.Nop())
	if stats.TotalCourses != 2 {
		t.Fatalf("both courses must be counted, got %d", stats.TotalCourses)
	}
	// Only the good course contributes hours: 1.7 * 10 weeks.
	if stats.TotalHours != 17.0 {
		t.Fatalf("expected 17.0 total hours, got %v", stats.TotalHours)
	}
	if stats.PerDay[2] != 0 {
		t.Fatalf("malformed course must contribute zero hours, got %v", stats.PerDay[2])
	}
}
