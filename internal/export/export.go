// Package export turns validated course lists into external sink formats.
// The engine's responsibility ends at producing normalized rows; renderers
// are pluggable so heavier sinks (excel, pdf, image) can register alongside
// the built-in csv and json ones.
package export

import (
	"fmt"
	"io"
)

// Row is one normalized course handed to a renderer: every semantic field
// plus the human-readable weekday label.
type Row struct {
	Name         string  `json:"name"`
	Teacher      string  `json:"teacher"`
	Location     string  `json:"location"`
	StartWeek    int     `json:"start_week"`
	EndWeek      int     `json:"end_week"`
	DayOfWeek    int     `json:"day_of_week"`
	WeekdayLabel string  `json:"weekday"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	CourseType   string  `json:"course_type"`
	Hours        float64 `json:"hours"`
}

// Renderer writes normalized rows in one target format.
type Renderer interface {
	// Format returns the format tag the renderer serves
	Format() string
	// Extension returns the filename extension including the dot
	Extension() string
	Render(w io.Writer, rows []Row) error
}

// Registry maps format tags to renderers.
type Registry struct {
	renderers map[string]Renderer
}

// NewRegistry creates a registry preloaded with the built-in renderers.
func NewRegistry() *Registry {
	r := &Registry{renderers: map[string]Renderer{}}
	r.Register(CSVRenderer{})
	r.Register(JSONRenderer{})
	return r
}

// Register adds or replaces the renderer for its format tag.
func (r *Registry) Register(renderer Renderer) {
	r.renderers[renderer.Format()] = renderer
}

// For returns the renderer for a format tag.
func (r *Registry) For(format string) (Renderer, error) {
	renderer, ok := r.renderers[format]
	if !ok {
		return nil, fmt.Errorf("no renderer registered for format %q", format)
	}
	return renderer, nil
}
