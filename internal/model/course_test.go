package model

import "testing"

func validRow() CourseRow {
	return CourseRow{
		CourseID:  1,
		Name:      "Algorithms",
		Teacher:   "Prof. Zhang",
		Location:  "A-301",
		StartWeek: "1",
		EndWeek:   "16",
		DayOfWeek: "1",
		StartTime: "08:00",
		EndTime:   "09:40",
	}
}

func TestCourseRowCoercion(t *testing.T) {
	c, err := validRow().Course()
	if err != nil {
		t.Fatalf("valid row rejected: %v", err)
	}
	if c.StartWeek != 1 || c.EndWeek != 16 || c.DayOfWeek != 1 {
		t.Fatalf("unexpected coerced values: %+v", c)
	}
}

func TestCourseRowCoercionFailureDropsRow(t *testing.T) {
	row := validRow()
	row.StartWeek = "abc"
	if _, err := row.Course(); err == nil {
		t.Fatal("expected error for non-numeric start_week")
	}
}

func TestCourseRowValidityChecks(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CourseRow)
	}{
		{"empty name", func(r *CourseRow) { r.Name = "" }},
		{"empty teacher", func(r *CourseRow) { r.Teacher = "" }},
		{"empty location", func(r *CourseRow) { r.Location = "" }},
		{"empty start time", func(r *CourseRow) { r.StartTime = "" }},
		{"empty end time", func(r *CourseRow) { r.EndTime = "" }},
		{"weeks reversed", func(r *CourseRow) { r.StartWeek, r.EndWeek = "10", "2" }},
		{"day too small", func(r *CourseRow) { r.DayOfWeek = "0" }},
		{"day too large", func(r *CourseRow) { r.DayOfWeek = "8" }},
	}
	for _, tc := range cases {
		row := validRow()
		tc.mutate(&row)
		if _, err := row.Course(); err == nil {
			t.Fatalf("%s: expected validity error", tc.name)
		}
	}
}

func TestOccursOn(t *testing.T) {
	c, err := validRow().Course()
	if err != nil {
		t.Fatal(err)
	}
	if !c.OccursOn(1, 3) {
		t.Fatal("expected Monday week 3 occurrence")
	}
	if c.OccursOn(2, 3) {
		t.Fatal("did not expect Tuesday occurrence")
	}
	if c.OccursOn(1, 17) {
		t.Fatal("did not expect occurrence past end week")
	}
}

func TestClassifyCourseType(t *testing.T) {
	if got := ClassifyCourseType("midterm exam prep"); got != "exam" {
		t.Fatalf("expected exam, got %q", got)
	}
	if got := ClassifyCourseType("Algorithms"); got != NormalCourseType {
		t.Fatalf("expected normal type, got %q", got)
	}
	// Catalog order decides ties: "study-hall" is listed before "lab",
	// so a name containing both classifies as study-hall.
	if got := ClassifyCourseType("study-hall in lab 2"); got != "study-hall" {
		t.Fatalf("expected study-hall, got %q", got)
	}
}

func TestIsSpecialType(t *testing.T) {
	if IsSpecialType(NormalCourseType) {
		t.Fatal("normal type must not be special")
	}
	if IsSpecialType("") {
		t.Fatal("empty type must not be special")
	}
	if !IsSpecialType("lab") {
		t.Fatal("lab must be special")
	}
}

func TestTypeColor(t *testing.T) {
	if got := TypeColor("early-checkin"); got != "warning" {
		t.Fatalf("expected warning, got %q", got)
	}
	if got := TypeColor(NormalCourseType); got != "primary" {
		t.Fatalf("expected primary fallback, got %q", got)
	}
}
