package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"coursetable/internal/export"
	"coursetable/internal/model"
)

func exportFixture(t *testing.T) (ExportService, string) {
	t.Helper()
	ctx := context.Background()

	semRepo := &fakeSemesterRepo{}
	fall := &model.Semester{Name: "2024 Fall", StartDate: "2024-09-01", EndDate: "2025-01-15"}
	if err := semRepo.CreateSemester(ctx, fall); err != nil {
		t.Fatal(err)
	}
	if err := semRepo.SetCurrentSemester(ctx, fall.SemesterID); err != nil {
		t.Fatal(err)
	}

	courseSvc := NewCourseService(&fakeCourseRepo{}, 0, zerolog.Nop())
	c := testCourse()
	c.SemesterID = fall.SemesterID
	if _, err := courseSvc.AddCourse(ctx, c); err != nil {
		t.Fatal(err)
	}

	dir := t.TempDir()
	return NewExportService(semRepo, courseSvc, export.NewRegistry(), dir, zerolog.Nop()), dir
}

func TestExportCSV(t *testing.T) {
	svc, dir := exportFixture(t)

	path, err := svc.Export(context.Background(), "csv", "schedule")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir || filepath.Base(path) != "schedule.csv" {
		t.Fatalf("unexpected export path %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)
	if !strings.Contains(content, "Algorithms") || !strings.Contains(content, "Monday") {
		t.Fatalf("export missing course data:\n%s", content)
	}
}

func TestExportDerivedFilename(t *testing.T) {
	svc, _ := exportFixture(t)

	path, err := svc.Export(context.Background(), "json", "")
	if err != nil {
		t.Fatal(err)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "2024-Fall-") || !strings.HasSuffix(base, ".json") {
		t.Fatalf("derived filename should carry the sanitized semester name, got %q", base)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	svc, _ := exportFixture(t)

	_, err := svc.Export(context.Background(), "xlsx", "")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error for an unknown format, got %v", err)
	}
}
