package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"coursetable/internal/repository"
)

func TestAddSemesterAndList(t *testing.T) {
	repo := &fakeSemesterRepo{}
	svc := NewSemesterService(repo, zerolog.Nop())
	ctx := context.Background()

	sem, err := svc.AddSemester(ctx, "2024Fall", "2024-09-01", "2025-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if sem.SemesterID == 0 {
		t.Fatal("expected an assigned semester id")
	}

	all, err := svc.ListSemesters(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].Name != "2024Fall" {
		t.Fatalf("unexpected list: %+v", all)
	}
}

func TestAddSemesterValidation(t *testing.T) {
	svc := NewSemesterService(&fakeSemesterRepo{}, zerolog.Nop())
	ctx := context.Background()

	_, err := svc.AddSemester(ctx, "", "09/01/2024", "soon")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(verr.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %v", verr.Messages)
	}

	_, err = svc.AddSemester(ctx, "2024Fall", "2025-01-15", "2024-09-01")
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error for reversed dates, got %v", err)
	}
	if len(verr.Messages) != 1 {
		t.Fatalf("expected a single ordering message, got %v", verr.Messages)
	}
}

func TestSetCurrentSemester(t *testing.T) {
	repo := &fakeSemesterRepo{}
	svc := NewSemesterService(repo, zerolog.Nop())
	ctx := context.Background()

	a, err := svc.AddSemester(ctx, "2024Fall", "2024-09-01", "2025-01-15")
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.AddSemester(ctx, "2025Spring", "2025-02-15", "2025-07-01")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.SetCurrentSemester(ctx, a.SemesterID); err != nil {
		t.Fatal(err)
	}
	if err := svc.SetCurrentSemester(ctx, b.SemesterID); err != nil {
		t.Fatal(err)
	}

	cur, err := svc.GetCurrentSemester(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if cur == nil || cur.SemesterID != b.SemesterID {
		t.Fatalf("expected 2025Spring current, got %+v", cur)
	}
	// Only one semester may be current at a time.
	all, _ := svc.ListSemesters(ctx)
	currents := 0
	for _, s := range all {
		if s.Current {
			currents++
		}
	}
	if currents != 1 {
		t.Fatalf("expected exactly one current semester, got %d", currents)
	}
}

func TestSetCurrentSemesterUnknownID(t *testing.T) {
	svc := NewSemesterService(&fakeSemesterRepo{}, zerolog.Nop())
	err := svc.SetCurrentSemester(context.Background(), 42)
	if !errors.Is(err, repository.ErrSemesterNotFound) {
		t.Fatalf("expected ErrSemesterNotFound, got %v", err)
	}
}

func TestGetCurrentSemesterNoneSet(t *testing.T) {
	svc := NewSemesterService(&fakeSemesterRepo{}, zerolog.Nop())
	cur, err := svc.GetCurrentSemester(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cur != nil {
		t.Fatalf("expected nil without a current semester, got %+v", cur)
	}
}

func TestUpdateSemester(t *testing.T) {
	repo := &fakeSemesterRepo{}
	svc := NewSemesterService(repo, zerolog.Nop())
	ctx := context.Background()

	sem, err := svc.AddSemester(ctx, "2024Fall", "2024-09-01", "2025-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.UpdateSemester(ctx, sem.SemesterID, "2024 Fall Term", "2024-09-02", "2025-01-10"); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetSemesterByID(ctx, sem.SemesterID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "2024 Fall Term" || got.StartDate != "2024-09-02" {
		t.Fatalf("update not applied: %+v", got)
	}

	_, err = svc.UpdateSemester(ctx, 42, "X", "2024-09-01", "2025-01-15")
	if !errors.Is(err, repository.ErrSemesterNotFound) {
		t.Fatalf("expected ErrSemesterNotFound, got %v", err)
	}
}
