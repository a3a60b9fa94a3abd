// Package schedule is the recurrence and query engine: pure functions over
// course lists answering which courses occur on a given day of a given week,
// which catalog slots remain free, and how study time distributes across a
// semester. Views and export sinks consume these results and never compute
// occurrence or week-number logic themselves.
package schedule

import (
	"fmt"
	"math"
	"strings"
	"time"

	"coursetable/internal/model"
)

// Searchable course fields.
const (
	FieldName     = "name"
	FieldTeacher  = "teacher"
	FieldLocation = "location"
)

var weekdayLabels = [8]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekNumber converts a calendar date to a 1-based teaching week relative to
// the semester start, clamped to [1, MaxWeek]. Dates outside the semester
// still yield a clamped week number rather than an error; callers rely on
// that quirk.
func WeekNumber(date, semesterStart time.Time) int {
	days := int(date.Sub(semesterStart).Hours() / 24)
	week := floorDiv(days, 7) + 1
	if week < 1 {
		return 1
	}
	if week > model.MaxWeek {
		return model.MaxWeek
	}
	return week
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ISOWeekday maps time.Weekday onto the ISO numbering, Monday=1..Sunday=7.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekdayLabel returns the human-readable label for an ISO weekday, or an
// empty string when the day is out of range.
func WeekdayLabel(day int) string {
	if day < 1 || day > 7 {
		return ""
	}
	return weekdayLabels[day]
}

// CoursesInWeek filters courses occurring at all during the given week.
func CoursesInWeek(courses []model.Course, week int) []model.Course {
	out := []model.Course{}
	for _, c := range courses {
		if c.InWeek(week) {
			out = append(out, c)
		}
	}
	return out
}

// CoursesOn filters courses occurring on the given weekday of the given
// week.
func CoursesOn(courses []model.Course, day, week int) []model.Course {
	out := []model.Course{}
	for _, c := range courses {
		if c.OccursOn(day, week) {
			out = append(out, c)
		}
	}
	return out
}

// FreeSlots returns the catalog slots, in catalog order, with no course on
// (day, week) whose stored times exactly equal both slot endpoints. Matching
// is string equality, not interval overlap: a course whose times do not
// align with the catalog occupies nothing here even though it still occurs.
func FreeSlots(courses []model.Course, day, week int) []model.TimeSlot {
	occupied := CoursesOn(courses, day, week)
	free := []model.TimeSlot{}
	for _, slot := range model.Catalog {
		taken := false
		for _, c := range occupied {
			if c.StartTime == slot.Start && c.EndTime == slot.End {
				taken = true
				break
			}
		}
		if !taken {
			free = append(free, slot)
		}
	}
	return free
}

// WeekFreeSlots maps every weekday of the given week to its free slots.
func WeekFreeSlots(courses []model.Course, week int) map[int][]model.TimeSlot {
	out := make(map[int][]model.TimeSlot, 7)
	for day := 1; day <= 7; day++ {
		out[day] = FreeSlots(courses, day, week)
	}
	return out
}

// SlotDurationHours computes the length of an "HH:MM"-"HH:MM" interval in
// hours, rounded to one decimal. The whole-minute difference is taken before
// dividing so that 100 minutes comes out as 1.7, not a float artifact.
func SlotDurationHours(start, end string) (float64, error) {
	st, err := time.Parse(model.TimeLayout, start)
	if err != nil {
		return 0, fmt.Errorf("start time %q: %w", start, err)
	}
	et, err := time.Parse(model.TimeLayout, end)
	if err != nil {
		return 0, fmt.Errorf("end time %q: %w", end, err)
	}
	minutes := et.Sub(st).Minutes()
	return round1(minutes / 60), nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func slotMinutes(s model.TimeSlot) float64 {
	st, err1 := time.Parse(model.TimeLayout, s.Start)
	et, err2 := time.Parse(model.TimeLayout, s.End)
	if err1 != nil || err2 != nil {
		return 0
	}
	return et.Sub(st).Minutes()
}

// DayFreeStat is one day's slice of the month free-time breakdown.
type DayFreeStat struct {
	Date          string  `json:"date"` // "YYYY-MM-DD"
	Week          int     `json:"week"`
	Weekday       int     `json:"weekday"`
	FreeHours     float64 `json:"free_hours"`
	OccupiedHours float64 `json:"occupied_hours"`
	HasCourses    bool    `json:"has_courses"`
}

// MonthStats is the free/occupied breakdown for every day of one calendar
// month plus month totals, all rounded to one decimal.
type MonthStats struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	Days          []DayFreeStat `json:"days"`
	FreeHours     float64       `json:"free_hours"`
	OccupiedHours float64       `json:"occupied_hours"`
}

// MonthFreeStats walks every calendar day of the month, derives its teaching
// week from the semester start, and accumulates free and occupied catalog
// hours per day and in total.
func MonthFreeStats(courses []model.Course, semester model.Semester, year, month int) (*MonthStats, error) {
	start, err := time.Parse(model.DateLayout, semester.StartDate)
	if err != nil {
		return nil, fmt.Errorf("semester start date %q: %w", semester.StartDate, err)
	}
	catalogMinutes := 0.0
	for _, s := range model.Catalog {
		catalogMinutes += slotMinutes(s)
	}

	stats := &MonthStats{Year: year, Month: month, Days: []DayFreeStat{}}
	freeTotal, occupiedTotal := 0.0, 0.0
	for d := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC); int(d.Month()) == month; d = d.AddDate(0, 0, 1) {
		week := WeekNumber(d, start)
		day := ISOWeekday(d)
		freeMinutes := 0.0
		for _, s := range FreeSlots(courses, day, week) {
			freeMinutes += slotMinutes(s)
		}
		occupiedMinutes := catalogMinutes - freeMinutes
		stats.Days = append(stats.Days, DayFreeStat{
			Date:          d.Format(model.DateLayout),
			Week:          week,
			Weekday:       day,
			FreeHours:     round1(freeMinutes / 60),
			OccupiedHours: round1(occupiedMinutes / 60),
			HasCourses:    len(CoursesOn(courses, day, week)) > 0,
		})
		freeTotal += freeMinutes
		occupiedTotal += occupiedMinutes
	}
	stats.FreeHours = round1(freeTotal / 60)
	stats.OccupiedHours = round1(occupiedTotal / 60)
	return stats, nil
}

// Search filters courses by case-insensitive substring match over the chosen
// field.
func Search(courses []model.Course, keyword, field string) ([]model.Course, error) {
	needle := strings.ToLower(keyword)
	out := []model.Course{}
	for _, c := range courses {
		var haystack string
		switch field {
		case FieldName:
			haystack = c.Name
		case FieldTeacher:
			haystack = c.Teacher
		case FieldLocation:
			haystack = c.Location
		default:
			return nil, fmt.Errorf("unknown search field %q", field)
		}
		if strings.Contains(strings.ToLower(haystack), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}
