package service

import (
	"context"
	"sync"
	"time"

	"coursetable/internal/model"
	"coursetable/internal/repository"
	"coursetable/internal/schedule"
)

// fakeCourseRepo is an in-memory CourseRepository for service tests.
type fakeCourseRepo struct {
	courses   []model.Course
	nextID    int64
	listCalls int
}

func (f *fakeCourseRepo) CreateCourse(_ context.Context, c *model.Course) error {
	f.nextID++
	c.CourseID = f.nextID
	f.courses = append(f.courses, *c)
	return nil
}

func (f *fakeCourseRepo) UpdateCourse(_ context.Context, c *model.Course) error {
	for i := range f.courses {
		if f.courses[i].CourseID == c.CourseID {
			f.courses[i] = *c
			return nil
		}
	}
	return repository.ErrCourseNotFound
}

func (f *fakeCourseRepo) DeleteCourse(_ context.Context, courseID int64) error {
	for i := range f.courses {
		if f.courses[i].CourseID == courseID {
			f.courses = append(f.courses[:i], f.courses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCourseRepo) ListCourses(_ context.Context) ([]model.Course, error) {
	f.listCalls++
	out := make([]model.Course, len(f.courses))
	copy(out, f.courses)
	return out, nil
}

func (f *fakeCourseRepo) ListCoursesBySemester(_ context.Context, semesterID int64) ([]model.Course, error) {
	out := []model.Course{}
	for _, c := range f.courses {
		if c.SemesterID == semesterID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourseRepo) GetCourseByID(_ context.Context, courseID int64) (*model.Course, error) {
	for _, c := range f.courses {
		if c.CourseID == courseID {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

// fakeSemesterRepo is an in-memory SemesterRepository for service tests.
type fakeSemesterRepo struct {
	semesters []model.Semester
	nextID    int64
}

func (f *fakeSemesterRepo) CreateSemester(_ context.Context, s *model.Semester) error {
	f.nextID++
	s.SemesterID = f.nextID
	f.semesters = append(f.semesters, *s)
	return nil
}

func (f *fakeSemesterRepo) ListSemesters(_ context.Context) ([]model.Semester, error) {
	out := make([]model.Semester, len(f.semesters))
	copy(out, f.semesters)
	return out, nil
}

func (f *fakeSemesterRepo) GetSemesterByID(_ context.Context, semesterID int64) (*model.Semester, error) {
	for _, s := range f.semesters {
		if s.SemesterID == semesterID {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeSemesterRepo) GetCurrentSemester(_ context.Context) (*model.Semester, error) {
	for _, s := range f.semesters {
		if s.Current {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (f *fakeSemesterRepo) SetCurrentSemester(_ context.Context, semesterID int64) error {
	found := false
	for i := range f.semesters {
		if f.semesters[i].SemesterID == semesterID {
			found = true
		}
	}
	if !found {
		return repository.ErrSemesterNotFound
	}
	for i := range f.semesters {
		f.semesters[i].Current = f.semesters[i].SemesterID == semesterID
	}
	return nil
}

func (f *fakeSemesterRepo) UpdateSemester(_ context.Context, s *model.Semester) error {
	for i := range f.semesters {
		if f.semesters[i].SemesterID == s.SemesterID {
			f.semesters[i].Name = s.Name
			f.semesters[i].StartDate = s.StartDate
			f.semesters[i].EndDate = s.EndDate
			return nil
		}
	}
	return repository.ErrSemesterNotFound
}

// fakeScheduleService feeds the reminder worker a fixed week and course set.
type fakeScheduleService struct {
	week    int
	courses []model.Course
}

func (f *fakeScheduleService) CoursesInWeek(context.Context, int) ([]model.Course, error) {
	return f.courses, nil
}

func (f *fakeScheduleService) CoursesOn(context.Context, int, int) ([]model.Course, error) {
	return f.courses, nil
}

func (f *fakeScheduleService) FreeSlots(context.Context, int, int) ([]model.TimeSlot, error) {
	return nil, nil
}

func (f *fakeScheduleService) WeekFreeSlots(context.Context, int) (map[int][]model.TimeSlot, error) {
	return nil, nil
}

func (f *fakeScheduleService) MonthFreeStats(context.Context, int, int) (*schedule.MonthStats, error) {
	return nil, nil
}

func (f *fakeScheduleService) CurrentWeek(context.Context, time.Time) (int, error) {
	return f.week, nil
}

// fakeNotifier counts reminder dispatches.
type fakeNotifier struct {
	mu     sync.Mutex
	popups int
	sounds int
}

func (n *fakeNotifier) Popup(model.Course) {
	n.mu.Lock()
	n.popups++
	n.mu.Unlock()
}

func (n *fakeNotifier) Sound(model.Course) {
	n.mu.Lock()
	n.sounds++
	n.mu.Unlock()
}

func (n *fakeNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.popups, n.sounds
}
