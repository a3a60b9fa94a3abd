package model

// TypeStat is the per-course-type slice of the study statistics.
type TypeStat struct {
	Count int     `json:"count"`
	Hours float64 `json:"hours"`
}

// StudyStatistics is the aggregate study-time distribution for one
// semester's valid course list. All hour figures use the whole-minute
// duration rule and an empty course list yields the zero value.
type StudyStatistics struct {
	TotalCourses   int                 `json:"total_courses"`
	NormalCourses  int                 `json:"normal_courses"`
	SpecialCourses int                 `json:"special_courses"`
	TotalHours     float64             `json:"total_hours"`
	PerType        map[string]TypeStat `json:"per_type"`
	PerWeek        map[int]float64     `json:"per_week"`
	PerDay         map[int]float64     `json:"per_day"`
	PerSlot        map[string]float64  `json:"per_slot"`
}
