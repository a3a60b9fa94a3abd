package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/api/v1/dto"
	"coursetable/internal/service"
)

// StatisticsHandler exposes the study-time aggregator
type StatisticsHandler struct {
	statisticsService service.StatisticsService
	scheduleService   service.ScheduleService
	logger            zerolog.Logger
}

// NewStatisticsHandler creates a new StatisticsHandler
func NewStatisticsHandler(statisticsService service.StatisticsService, scheduleService service.ScheduleService, logger zerolog.Logger) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, scheduleService: scheduleService, logger: logger}
}

// RegisterRoutes mounts statistics routes
func (h *StatisticsHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/statistics", http.HandlerFunc(h.getStatistics))
}

// getStatistics godoc
// @Summary Study-time statistics
// @Description Aggregates a semester's study hours per type, week, weekday and time slot, plus the current-week counters.
// @Tags statistics
// @Produce json
// @Param semester_id query int false "Semester ID, defaults to the current semester"
// @Success 200 {object} dto.StatisticsResponseDTO
// @Router /statistics [get]
func (h *StatisticsHandler) getStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	var semesterID int64
	if param := r.URL.Query().Get("semester_id"); param != "" {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			http.Error(w, "Invalid semester id", http.StatusBadRequest)
			return
		}
		semesterID = id
	}
	stats, err := h.statisticsService.StudyStatistics(r.Context(), semesterID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	week, err := h.scheduleService.CurrentWeek(r.Context(), time.Now())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	weekCourses, err := h.scheduleService.CoursesInWeek(r.Context(), week)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.StatisticsResponseDTO{
		CurrentWeek:        week,
		CurrentWeekCourses: len(weekCourses),
		Statistics:         *stats,
	})
}
