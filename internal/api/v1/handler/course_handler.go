package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"coursetable/internal/api/v1/dto"
	"coursetable/internal/model"
	"coursetable/internal/schedule"
	"coursetable/internal/service"
)

// CourseHandler handles course-store endpoints
type CourseHandler struct {
	courseService service.CourseService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{courseService: courseService, validate: validate, logger: logger}
}

// RegisterRoutes mounts course routes
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/courses", http.HandlerFunc(h.handleCollection))
	mux.Handle("/courses/search", http.HandlerFunc(h.searchCourses))
	mux.Handle("/courses/", http.HandlerFunc(h.handleCourse))
}

func (h *CourseHandler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createCourse(w, r)
	case http.MethodGet:
		h.listCourses(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *CourseHandler) handleCourse(w http.ResponseWriter, r *http.Request) {
	idPart := strings.TrimPrefix(r.URL.Path, "/courses/")
	courseID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodGet:
		h.getCourse(w, r, courseID)
	case http.MethodPut:
		h.updateCourse(w, r, courseID)
	case http.MethodDelete:
		h.deleteCourse(w, r, courseID)
	default:
		http.NotFound(w, r)
	}
}

// createCourse godoc
// @Summary Create a new course
// @Description Creates a course after boundary validation; type, color and the special flag are derived when absent.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	course := courseFromDTO(&req)
	created, err := h.courseService.AddCourse(r.Context(), course)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, courseResponse(created))
}

// listCourses godoc
// @Summary List courses
// @Description Retrieves all valid courses ordered by (semester, day, start time); corrupt rows are dropped, never surfaced.
// @Tags courses
// @Produce json
// @Success 200 {array} dto.CourseResponseDTO
// @Router /courses [get]
func (h *CourseHandler) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.courseService.ListCourses(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courseResponses(courses))
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by its ID.
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {string} string "Course not found"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, courseID int64) {
	course, err := h.courseService.GetCourseByID(r.Context(), courseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if course == nil {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, courseResponse(course))
}

// updateCourse godoc
// @Summary Update a course
// @Description Replaces the full record of an existing course.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param course body dto.CourseUpdateDTO true "Course update request"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 404 {string} string "Course not found"
// @Router /courses/{courseId} [put]
func (h *CourseHandler) updateCourse(w http.ResponseWriter, r *http.Request, courseID int64) {
	var req dto.CourseUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	course := courseFromDTO(&req)
	course.CourseID = courseID
	updated, err := h.courseService.UpdateCourse(r.Context(), course)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courseResponse(updated))
}

// deleteCourse godoc
// @Summary Delete a course
// @Description Deletes a course by its ID.
// @Tags courses
// @Param courseId path int true "Course ID"
// @Success 204 {string} string "No Content"
// @Router /courses/{courseId} [delete]
func (h *CourseHandler) deleteCourse(w http.ResponseWriter, r *http.Request, courseID int64) {
	if err := h.courseService.DeleteCourse(r.Context(), courseID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// searchCourses godoc
// @Summary Search courses
// @Description Case-insensitive substring search over name, teacher or location.
// @Tags courses
// @Produce json
// @Param field query string true "Field to search" Enums(name, teacher, location)
// @Param q query string true "Keyword"
// @Success 200 {array} dto.CourseResponseDTO
// @Failure 400 {object} map[string][]string "Unknown search field"
// @Router /courses/search [get]
func (h *CourseHandler) searchCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	field := r.URL.Query().Get("field")
	keyword := r.URL.Query().Get("q")
	matches, err := h.courseService.Search(r.Context(), keyword, field)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, courseResponses(matches))
}

func courseFromDTO(req *dto.CourseCreateDTO) *model.Course {
	return &model.Course{
		Name:            req.Name,
		Teacher:         req.Teacher,
		Location:        req.Location,
		StartWeek:       req.StartWeek,
		EndWeek:         req.EndWeek,
		DayOfWeek:       req.DayOfWeek,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Color:           req.Color,
		CourseType:      req.CourseType,
		SemesterID:      req.SemesterID,
		ReminderEnabled: req.ReminderEnabled,
		ReminderMinutes: req.ReminderMinutes,
		ReminderType:    req.ReminderType,
	}
}

func courseResponse(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		CourseID:        c.CourseID,
		Name:            c.Name,
		Teacher:         c.Teacher,
		Location:        c.Location,
		StartWeek:       c.StartWeek,
		EndWeek:         c.EndWeek,
		DayOfWeek:       c.DayOfWeek,
		WeekdayLabel:    schedule.WeekdayLabel(c.DayOfWeek),
		StartTime:       c.StartTime,
		EndTime:         c.EndTime,
		Color:           c.Color,
		CourseType:      c.CourseType,
		IsSpecial:       c.IsSpecial,
		SemesterID:      c.SemesterID,
		ReminderEnabled: c.ReminderEnabled,
		ReminderMinutes: c.ReminderMinutes,
		ReminderType:    c.ReminderType,
	}
}

func courseResponses(courses []model.Course) []dto.CourseResponseDTO {
	out := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		out = append(out, courseResponse(&courses[i]))
	}
	return out
}
