package dto

import "coursetable/internal/model"

// StatisticsResponseDTO wraps the semester aggregate with the current-week
// counters the stats panel shows.
type StatisticsResponseDTO struct {
	CurrentWeek        int                   `json:"current_week"`
	CurrentWeekCourses int                   `json:"current_week_courses"`
	Statistics         model.StudyStatistics `json:"statistics"`
}
