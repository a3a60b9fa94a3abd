package model

import "strings"

// NormalCourseType is the fallback category for courses matching no special
// type.
const NormalCourseType = "normal course"

// CourseTypeInfo carries the display color and nominal duration pre-filled
// for a special course type. It does not affect occurrence logic.
type CourseTypeInfo struct {
	Name            string `json:"name"`
	Color           string `json:"color"`
	DurationMinutes int    `json:"duration_minutes"`
}

// SpecialTypes is the static special-type catalog. Order matters: course
// names are classified by substring match and the first match wins.
var SpecialTypes = []CourseTypeInfo{
	{Name: "early-checkin", Color: "warning", DurationMinutes: 30},
	{Name: "study-hall", Color: "info", DurationMinutes: 45},
	{Name: "class-meeting", Color: "success", DurationMinutes: 60},
	{Name: "lab", Color: "danger", DurationMinutes: 90},
	{Name: "exam", Color: "primary", DurationMinutes: 120},
	{Name: "lecture", Color: "secondary", DurationMinutes: 100},
	{Name: "club-activity", Color: "light", DurationMinutes: 60},
	{Name: "sports-day", Color: "dark", DurationMinutes: 180},
}

// ClassifyCourseType maps a course name to its type by substring match in
// catalog order, falling back to NormalCourseType.
func ClassifyCourseType(courseName string) string {
	for _, t := range SpecialTypes {
		if strings.Contains(courseName, t.Name) {
			return t.Name
		}
	}
	return NormalCourseType
}

// TypeColor returns the display color for a course type, defaulting to
// "primary" for unknown or normal types.
func TypeColor(courseType string) string {
	for _, t := range SpecialTypes {
		if t.Name == courseType {
			return t.Color
		}
	}
	return "primary"
}

// IsSpecialType derives the is_special mirror from the course type. The
// stored column is a cache of this, never a second source of truth.
func IsSpecialType(courseType string) bool {
	return courseType != "" && courseType != NormalCourseType
}
