package dto

// CourseCreateDTO is used for incoming course creation requests. The
// cross-field rules (week ordering, time ordering, HH:MM format) are
// enforced at the service boundary.
type CourseCreateDTO struct {
	Name            string `json:"name" validate:"required"`
	Teacher         string `json:"teacher" validate:"required"`
	Location        string `json:"location" validate:"required"`
	StartWeek       int    `json:"start_week" validate:"min=1,max=20"`
	EndWeek         int    `json:"end_week" validate:"min=1,max=20"`
	DayOfWeek       int    `json:"day_of_week" validate:"min=1,max=7"`
	StartTime       string `json:"start_time" validate:"required"`
	EndTime         string `json:"end_time" validate:"required"`
	Color           string `json:"color,omitempty"`
	CourseType      string `json:"course_type,omitempty"`
	SemesterID      int64  `json:"semester_id" validate:"required"`
	ReminderEnabled bool   `json:"reminder_enabled,omitempty"`
	ReminderMinutes int    `json:"reminder_minutes,omitempty" validate:"gte=0"`
	ReminderType    string `json:"reminder_type,omitempty" validate:"omitempty,oneof=popup sound both"`
}

// CourseUpdateDTO is used for incoming course update requests. Updates are
// full-record: every field is replaced, there is no partial patch.
type CourseUpdateDTO = CourseCreateDTO

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	CourseID        int64  `json:"course_id"`
	Name            string `json:"name"`
	Teacher         string `json:"teacher"`
	Location        string `json:"location"`
	StartWeek       int    `json:"start_week"`
	EndWeek         int    `json:"end_week"`
	DayOfWeek       int    `json:"day_of_week"`
	WeekdayLabel    string `json:"weekday"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Color           string `json:"color"`
	CourseType      string `json:"course_type"`
	IsSpecial       bool   `json:"is_special"`
	SemesterID      int64  `json:"semester_id"`
	ReminderEnabled bool   `json:"reminder_enabled"`
	ReminderMinutes int    `json:"reminder_minutes"`
	ReminderType    string `json:"reminder_type"`
}
