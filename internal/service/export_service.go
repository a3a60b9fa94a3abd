package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"coursetable/internal/export"
	"coursetable/internal/repository"
	"coursetable/internal/schedule"
)

// ExportService hands the current semester's normalized course list to a
// registered renderer and reports where it wrote the result.
type ExportService interface {
	// Export renders the current semester's courses in the given format; an
	// empty filename derives one from the semester name and timestamp
	Export(ctx context.Context, format, filename string) (string, error)
}

type exportService struct {
	semesters repository.SemesterRepository
	courses   CourseService
	registry  *export.Registry
	dir       string
	logger    zerolog.Logger
}

// NewExportService creates a new ExportService writing under dir
func NewExportService(semesters repository.SemesterRepository, courses CourseService, registry *export.Registry, dir string, logger zerolog.Logger) ExportService {
	return &exportService{
		semesters: semesters,
		courses:   courses,
		registry:  registry,
		dir:       dir,
		logger:    logger.With().Str("service", "ExportService").Logger(),
	}
}

// Export renders the current semester's courses in the given format
func (s *exportService) Export(ctx context.Context, format, filename string) (string, error) {
	renderer, err := s.registry.For(format)
	if err != nil {
		return "", &ValidationError{Messages: []string{err.Error()}}
	}

	sem, err := s.semesters.GetCurrentSemester(ctx)
	if err != nil {
		return "", err
	}
	all, err := s.courses.ListCourses(ctx)
	if err != nil {
		return "", err
	}
	rows := []export.Row{}
	for _, c := range all {
		if sem != nil && c.SemesterID != sem.SemesterID {
			continue
		}
		hours, derr := schedule.SlotDurationHours(c.StartTime, c.EndTime)
		if derr != nil {
			s.logger.Warn().Err(derr).Int64("course_id", c.CourseID).Msg("Exporting course with zero duration")
			hours = 0
		}
		rows = append(rows, export.Row{
			Name:         c.Name,
			Teacher:      c.Teacher,
			Location:     c.Location,
			StartWeek:    c.StartWeek,
			EndWeek:      c.EndWeek,
			DayOfWeek:    c.DayOfWeek,
			WeekdayLabel: schedule.WeekdayLabel(c.DayOfWeek),
			StartTime:    c.StartTime,
			EndTime:      c.EndTime,
			CourseType:   c.CourseType,
			Hours:        hours,
		})
	}

	if filename == "" {
		name := "schedule"
		if sem != nil && sem.Name != "" {
			name = sem.Name
		}
		filename = fmt.Sprintf("%s-%s", sanitizeFilename(name), time.Now().Format("20060102-150405"))
	}
	if !strings.HasSuffix(filename, renderer.Extension()) {
		filename += renderer.Extension()
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	path := filepath.Join(s.dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := renderer.Render(f, rows); err != nil {
		return "", fmt.Errorf("rendering %s export: %w", format, err)
	}
	s.logger.Info().Str("format", format).Str("path", path).Int("courses", len(rows)).Msg("Export written")
	return path, nil
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, name)
}
