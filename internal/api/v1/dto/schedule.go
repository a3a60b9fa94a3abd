package dto

// TimeSlotDTO mirrors one catalog slot
type TimeSlotDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayScheduleDTO is one weekday column of the week grid
type DayScheduleDTO struct {
	Day     int                 `json:"day"`
	Label   string              `json:"label"`
	Courses []CourseResponseDTO `json:"courses"`
}

// WeekScheduleResponseDTO carries everything a week view needs to lay out
// the 7-by-catalog grid: the slot rows plus per-day course columns.
type WeekScheduleResponseDTO struct {
	Week  int              `json:"week"`
	Slots []TimeSlotDTO    `json:"slots"`
	Days  []DayScheduleDTO `json:"days"`
}

// DayScheduleResponseDTO is the day-view payload
type DayScheduleResponseDTO struct {
	Week    int                 `json:"week"`
	Day     int                 `json:"day"`
	Label   string              `json:"label"`
	Courses []CourseResponseDTO `json:"courses"`
}

// FreeSlotsResponseDTO is the free-slot payload for one day of a week
type FreeSlotsResponseDTO struct {
	Week int           `json:"week"`
	Day  int           `json:"day"`
	Free []TimeSlotDTO `json:"free"`
}

// WeekFreeSlotsResponseDTO maps every weekday of a week to its free slots
type WeekFreeSlotsResponseDTO struct {
	Week int                   `json:"week"`
	Days map[int][]TimeSlotDTO `json:"days"`
}
