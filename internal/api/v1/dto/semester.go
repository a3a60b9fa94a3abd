package dto

// SemesterCreateDTO is used for incoming semester creation requests
type SemesterCreateDTO struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// SemesterUpdateDTO is used for incoming semester update requests
type SemesterUpdateDTO struct {
	Name      string `json:"name" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
	EndDate   string `json:"end_date" validate:"required"`
}

// SemesterResponseDTO is returned in API responses for semesters
type SemesterResponseDTO struct {
	SemesterID int64  `json:"semester_id"`
	Name       string `json:"name"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Current    bool   `json:"current"`
}
