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
	"coursetable/internal/service"
)

// SemesterHandler handles semester-registry endpoints
type SemesterHandler struct {
	semesterService service.SemesterService
	validate        *validator.Validate
	logger          zerolog.Logger
}

// NewSemesterHandler creates a new SemesterHandler
func NewSemesterHandler(semesterService service.SemesterService, validate *validator.Validate, logger zerolog.Logger) *SemesterHandler {
	return &SemesterHandler{semesterService: semesterService, validate: validate, logger: logger}
}

// RegisterRoutes mounts semester routes
func (h *SemesterHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/semesters", http.HandlerFunc(h.handleCollection))
	mux.Handle("/semesters/", http.HandlerFunc(h.handleItem))
}

func (h *SemesterHandler) handleCollection(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createSemester(w, r)
	case http.MethodGet:
		h.listSemesters(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *SemesterHandler) handleItem(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/semesters/")
	switch {
	case path == "current" && r.Method == http.MethodGet:
		h.getCurrentSemester(w, r)
	case strings.HasSuffix(path, "/current") && r.Method == http.MethodPut:
		h.setCurrentSemester(w, r, strings.TrimSuffix(path, "/current"))
	case r.Method == http.MethodPut:
		h.updateSemester(w, r, path)
	default:
		http.NotFound(w, r)
	}
}

// createSemester godoc
// @Summary Create a new semester
// @Description Creates a semester after validating its name and date range.
// @Tags semesters
// @Accept json
// @Produce json
// @Param semester body dto.SemesterCreateDTO true "Semester creation request"
// @Success 201 {object} dto.SemesterResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Router /semesters [post]
func (h *SemesterHandler) createSemester(w http.ResponseWriter, r *http.Request) {
	var req dto.SemesterCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	sem, err := h.semesterService.AddSemester(r.Context(), req.Name, req.StartDate, req.EndDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, semesterResponse(sem))
}

// listSemesters godoc
// @Summary List semesters
// @Description Retrieves all semesters ordered by start date ascending.
// @Tags semesters
// @Produce json
// @Success 200 {array} dto.SemesterResponseDTO
// @Router /semesters [get]
func (h *SemesterHandler) listSemesters(w http.ResponseWriter, r *http.Request) {
	semesters, err := h.semesterService.ListSemesters(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	out := make([]dto.SemesterResponseDTO, 0, len(semesters))
	for i := range semesters {
		out = append(out, semesterResponse(&semesters[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// getCurrentSemester godoc
// @Summary Get the current semester
// @Description Retrieves the single current semester; 404 when none is set.
// @Tags semesters
// @Produce json
// @Success 200 {object} dto.SemesterResponseDTO
// @Failure 404 {string} string "No current semester"
// @Router /semesters/current [get]
func (h *SemesterHandler) getCurrentSemester(w http.ResponseWriter, r *http.Request) {
	sem, err := h.semesterService.GetCurrentSemester(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if sem == nil {
		http.Error(w, "No current semester", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, semesterResponse(sem))
}

// setCurrentSemester godoc
// @Summary Make a semester current
// @Description Atomically clears the current flag everywhere and sets it on the given semester.
// @Tags semesters
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Success 204 {string} string "No Content"
// @Failure 404 {string} string "Semester not found"
// @Router /semesters/{semesterId}/current [put]
func (h *SemesterHandler) setCurrentSemester(w http.ResponseWriter, r *http.Request, idPart string) {
	semesterID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		http.Error(w, "Invalid semester id", http.StatusBadRequest)
		return
	}
	if err := h.semesterService.SetCurrentSemester(r.Context(), semesterID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// updateSemester godoc
// @Summary Update a semester
// @Description Updates a semester's name and date range after validation.
// @Tags semesters
// @Accept json
// @Produce json
// @Param semesterId path int true "Semester ID"
// @Param semester body dto.SemesterUpdateDTO true "Semester update request"
// @Success 200 {object} dto.SemesterResponseDTO
// @Failure 400 {object} map[string][]string "Validation failed"
// @Failure 404 {string} string "Semester not found"
// @Router /semesters/{semesterId} [put]
func (h *SemesterHandler) updateSemester(w http.ResponseWriter, r *http.Request, idPart string) {
	semesterID, err := strconv.ParseInt(idPart, 10, 64)
	if err != nil {
		http.Error(w, "Invalid semester id", http.StatusBadRequest)
		return
	}
	var req dto.SemesterUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	sem, err := h.semesterService.UpdateSemester(r.Context(), semesterID, req.Name, req.StartDate, req.EndDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, semesterResponse(sem))
}

func semesterResponse(s *model.Semester) dto.SemesterResponseDTO {
	return dto.SemesterResponseDTO{
		SemesterID: s.SemesterID,
		Name:       s.Name,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		Current:    s.Current,
	}
}
