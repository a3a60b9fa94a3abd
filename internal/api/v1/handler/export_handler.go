package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"coursetable/internal/api/v1/dto"
	"coursetable/internal/service"
)

// ExportHandler hands the normalized course list to an export renderer
type ExportHandler struct {
	exportService service.ExportService
	validate      *validator.Validate
	logger        zerolog.Logger
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService service.ExportService, validate *validator.Validate, logger zerolog.Logger) *ExportHandler {
	return &ExportHandler{exportService: exportService, validate: validate, logger: logger}
}

// RegisterRoutes mounts export routes
func (h *ExportHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/export", http.HandlerFunc(h.exportCourses))
}

// exportCourses godoc
// @Summary Export the current semester's courses
// @Description Renders the normalized course list in the requested format and reports the written path.
// @Tags export
// @Accept json
// @Produce json
// @Param request body dto.ExportRequestDTO true "Export request"
// @Success 201 {object} dto.ExportResponseDTO
// @Failure 400 {object} map[string][]string "Unknown export format"
// @Router /export [post]
func (h *ExportHandler) exportCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req dto.ExportRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	path, err := h.exportService.Export(r.Context(), req.Format, req.Filename)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ExportResponseDTO{Format: req.Format, Path: path})
}
