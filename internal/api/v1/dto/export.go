package dto

// ExportRequestDTO is used for incoming export requests
type ExportRequestDTO struct {
	Format   string `json:"format" validate:"required"`
	Filename string `json:"filename,omitempty"`
}

// ExportResponseDTO reports where the export was written
type ExportResponseDTO struct {
	Format string `json:"format"`
	Path   string `json:"path"`
}
