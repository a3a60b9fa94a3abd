package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"coursetable/internal/api/v1/dto"
	"coursetable/internal/model"
	"coursetable/internal/schedule"
	"coursetable/internal/service"
)

// ScheduleHandler exposes the recurrence/query engine to the view layer.
// Views render these payloads and never compute occurrence logic themselves.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleHandler creates a new ScheduleHandler
func NewScheduleHandler(scheduleService service.ScheduleService, logger zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService, logger: logger}
}

// RegisterRoutes mounts schedule routes
func (h *ScheduleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/schedule/weeks/", http.HandlerFunc(h.handleWeeks))
	mux.Handle("/schedule/months/", http.HandlerFunc(h.handleMonths))
}

func (h *ScheduleHandler) handleWeeks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/schedule/weeks/"), "/")
	week, err := strconv.Atoi(parts[0])
	if err != nil || week < 1 || week > model.MaxWeek {
		http.Error(w, "Invalid week number", http.StatusBadRequest)
		return
	}
	switch {
	case len(parts) == 1:
		h.weekSchedule(w, r, week)
	case len(parts) == 3 && parts[1] == "days":
		day, err := strconv.Atoi(parts[2])
		if err != nil || day < 1 || day > 7 {
			http.Error(w, "Invalid weekday", http.StatusBadRequest)
			return
		}
		h.daySchedule(w, r, week, day)
	case len(parts) == 2 && parts[1] == "free":
		h.freeSlots(w, r, week)
	default:
		http.NotFound(w, r)
	}
}

// weekSchedule godoc
// @Summary Week view
// @Description Returns the week's courses grouped per weekday together with the slot catalog, ready for grid layout.
// @Tags schedule
// @Produce json
// @Param week path int true "Teaching week (1-20)"
// @Success 200 {object} dto.WeekScheduleResponseDTO
// @Router /schedule/weeks/{week} [get]
func (h *ScheduleHandler) weekSchedule(w http.ResponseWriter, r *http.Request, week int) {
	courses, err := h.scheduleService.CoursesInWeek(r.Context(), week)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := dto.WeekScheduleResponseDTO{
		Week:  week,
		Slots: slotDTOs(model.Catalog),
		Days:  make([]dto.DayScheduleDTO, 0, 7),
	}
	for day := 1; day <= 7; day++ {
		dayCourses := schedule.CoursesOn(courses, day, week)
		resp.Days = append(resp.Days, dto.DayScheduleDTO{
			Day:     day,
			Label:   schedule.WeekdayLabel(day),
			Courses: courseResponses(dayCourses),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// daySchedule godoc
// @Summary Day view
// @Description Returns the courses occurring on one weekday of one week.
// @Tags schedule
// @Produce json
// @Param week path int true "Teaching week (1-20)"
// @Param day path int true "ISO weekday (1-7)"
// @Success 200 {object} dto.DayScheduleResponseDTO
// @Router /schedule/weeks/{week}/days/{day} [get]
func (h *ScheduleHandler) daySchedule(w http.ResponseWriter, r *http.Request, week, day int) {
	courses, err := h.scheduleService.CoursesOn(r.Context(), day, week)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.DayScheduleResponseDTO{
		Week:    week,
		Day:     day,
		Label:   schedule.WeekdayLabel(day),
		Courses: courseResponses(courses),
	})
}

// freeSlots godoc
// @Summary Free slots
// @Description Returns the free catalog slots for a whole week, or for one weekday when ?day= is given.
// @Tags schedule
// @Produce json
// @Param week path int true "Teaching week (1-20)"
// @Param day query int false "ISO weekday (1-7)"
// @Success 200 {object} dto.WeekFreeSlotsResponseDTO
// @Router /schedule/weeks/{week}/free [get]
func (h *ScheduleHandler) freeSlots(w http.ResponseWriter, r *http.Request, week int) {
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		day, err := strconv.Atoi(dayParam)
		if err != nil || day < 1 || day > 7 {
			http.Error(w, "Invalid weekday", http.StatusBadRequest)
			return
		}
		free, err := h.scheduleService.FreeSlots(r.Context(), day, week)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dto.FreeSlotsResponseDTO{Week: week, Day: day, Free: slotDTOs(free)})
		return
	}
	byDay, err := h.scheduleService.WeekFreeSlots(r.Context(), week)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := dto.WeekFreeSlotsResponseDTO{Week: week, Days: make(map[int][]dto.TimeSlotDTO, len(byDay))}
	for day, slots := range byDay {
		resp.Days[day] = slotDTOs(slots)
	}
	writeJSON(w, http.StatusOK, resp)
}

// handleMonths godoc
// @Summary Month free-time statistics
// @Description Walks every day of the month and reports free and occupied catalog hours per day plus month totals.
// @Tags schedule
// @Produce json
// @Param year path int true "Calendar year"
// @Param month path int true "Calendar month (1-12)"
// @Success 200 {object} schedule.MonthStats
// @Router /schedule/months/{year}/{month}/free [get]
func (h *ScheduleHandler) handleMonths(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/schedule/months/"), "/")
	if len(parts) != 3 || parts[2] != "free" {
		http.NotFound(w, r)
		return
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		http.Error(w, "Invalid year", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		http.Error(w, "Invalid month", http.StatusBadRequest)
		return
	}
	stats, err := h.scheduleService.MonthFreeStats(r.Context(), year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func slotDTOs(slots []model.TimeSlot) []dto.TimeSlotDTO {
	out := make([]dto.TimeSlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, dto.TimeSlotDTO{Start: s.Start, End: s.End})
	}
	return out
}
