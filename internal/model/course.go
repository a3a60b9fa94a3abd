package model

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeLayout is the storage format for class times.
const TimeLayout = "15:04"

// MaxWeek is the hard cap on teaching weeks per semester.
const MaxWeek = 20

// Reminder channel selection.
const (
	ReminderPopup = "popup"
	ReminderSound = "sound"
	ReminderBoth  = "both"
)

// Course is a weekly recurring class entry scoped to a semester. It occurs
// on week W, weekday D iff StartWeek <= W <= EndWeek and DayOfWeek == D.
type Course struct {
	CourseID        int64  `db:"id" json:"course_id"`
	Name            string `db:"name" json:"name"`
	Teacher         string `db:"teacher" json:"teacher"`
	Location        string `db:"location" json:"location"`
	StartWeek       int    `db:"start_week" json:"start_week"`
	EndWeek         int    `db:"end_week" json:"end_week"`
	DayOfWeek       int    `db:"day_of_week" json:"day_of_week"` // ISO, Monday=1..Sunday=7
	StartTime       string `db:"start_time" json:"start_time"`   // "HH:MM"
	EndTime         string `db:"end_time" json:"end_time"`       // "HH:MM"
	Color           string `db:"color" json:"color"`
	CourseType      string `db:"course_type" json:"course_type"`
	IsSpecial       bool   `db:"is_special" json:"is_special"`
	SemesterID      int64  `db:"semester_id" json:"semester_id"`
	ReminderEnabled bool   `db:"reminder_enabled" json:"reminder_enabled"`
	ReminderMinutes int    `db:"reminder_minutes" json:"reminder_minutes"`
	ReminderType    string `db:"reminder_type" json:"reminder_type"`
}

// InWeek reports whether the course occurs at all during the given week.
func (c Course) InWeek(week int) bool {
	return c.StartWeek <= week && week <= c.EndWeek
}

// OccursOn reports whether the course occurs on the given weekday of the
// given week.
func (c Course) OccursOn(day, week int) bool {
	return c.InWeek(week) && c.DayOfWeek == day
}

// Valid is the read-path validity predicate: required strings non-empty and
// the week/day integers in a sane relation. Rows failing it are dropped from
// reads, never surfaced as errors.
func (c Course) Valid() bool {
	if c.Name == "" || c.Teacher == "" || c.Location == "" ||
		c.StartTime == "" || c.EndTime == "" {
		return false
	}
	if c.StartWeek > c.EndWeek {
		return false
	}
	return c.DayOfWeek >= 1 && c.DayOfWeek <= 7
}

// CourseRow is the raw shape scanned from storage before numeric coercion.
// Week and day columns are TEXT in the schema so that legacy imports with
// junk values load as rows that the read filter can drop.
type CourseRow struct {
	CourseID        int64
	Name            string
	Teacher         string
	Location        string
	StartWeek       string
	EndWeek         string
	DayOfWeek       string
	StartTime       string
	EndTime         string
	Color           string
	CourseType      string
	IsSpecial       bool
	SemesterID      int64
	ReminderEnabled bool
	ReminderMinutes int
	ReminderType    string
}

// Course coerces the raw row into a typed Course. Coercion failure or a
// failed validity check makes the row invalid; callers drop it.
func (r CourseRow) Course() (Course, error) {
	startWeek, err := strconv.Atoi(strings.TrimSpace(r.StartWeek))
	if err != nil {
		return Course{}, fmt.Errorf("start_week %q: %w", r.StartWeek, err)
	}
	endWeek, err := strconv.Atoi(strings.TrimSpace(r.EndWeek))
	if err != nil {
		return Course{}, fmt.Errorf("end_week %q: %w", r.EndWeek, err)
	}
	dayOfWeek, err := strconv.Atoi(strings.TrimSpace(r.DayOfWeek))
	if err != nil {
		return Course{}, fmt.Errorf("day_of_week %q: %w", r.DayOfWeek, err)
	}
	c := Course{
		CourseID:        r.CourseID,
		Name:            r.Name,
		Teacher:         r.Teacher,
		Location:        r.Location,
		StartWeek:       startWeek,
		EndWeek:         endWeek,
		DayOfWeek:       dayOfWeek,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Color:           r.Color,
		CourseType:      r.CourseType,
		IsSpecial:       r.IsSpecial,
		SemesterID:      r.SemesterID,
		ReminderEnabled: r.ReminderEnabled,
		ReminderMinutes: r.ReminderMinutes,
		ReminderType:    r.ReminderType,
	}
	if !c.Valid() {
		return Course{}, fmt.Errorf("course %d failed validity check", r.CourseID)
	}
	return c, nil
}
