package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"coursetable/internal/repository"
	"coursetable/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeServiceError maps service errors onto HTTP statuses: validation
// failures surface their message list as a 400, known lookup failures as a
// 404, anything else as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": verr.Messages})
		return
	}
	if errors.Is(err, repository.ErrSemesterNotFound) || errors.Is(err, repository.ErrCourseNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
