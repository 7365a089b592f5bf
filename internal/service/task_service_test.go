package service

import (
	"context"
	"errors"
	"testing"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"

	"go.uber.org/zap"
)

func TestTaskService_ListWithActuals(t *testing.T) {
	tasks := &fakeTaskSource{tasks: []models.Task{
		{ID: "t1", UserID: "u1", ProjectID: "p1", Name: "Design", EstimatedHours: 10},
		{ID: "t2", UserID: "u1", ProjectID: "p1", Name: "Build", EstimatedHours: 4},
		{ID: "t3", UserID: "u1", ProjectID: "other", Name: "Elsewhere", EstimatedHours: 1},
	}}
	entries := &fakeEntrySource{entries: []models.TimeEntry{
		{ID: "e1", UserID: "u1", TaskID: "t1", Hours: 3},
		{ID: "e2", UserID: "u1", TaskID: "t1", Hours: 4.25},
		{ID: "e3", UserID: "u1", TaskID: "t2", Hours: 5},
	}}

	s := NewTaskService(tasks, entries, zap.NewNop())
	result, err := s.ListWithActuals(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 tasks for p1, got %d", len(result))
	}
	if result[0].ActualHours != 7.25 || result[0].HoursDiff != -2.75 {
		t.Fatalf("unexpected t1 actuals %+v", result[0])
	}
	if result[1].ActualHours != 5 || result[1].HoursDiff != 1 {
		t.Fatalf("unexpected t2 actuals %+v", result[1])
	}
}

func TestTaskService_FanInBarrier(t *testing.T) {
	var tasks []models.Task
	for _, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		tasks = append(tasks, models.Task{ID: id, UserID: "u1", ProjectID: "p1", EstimatedHours: 1})
	}

	queryErr := errors.New("entry query failed")
	entries := &fakeEntrySource{
		entries: []models.TimeEntry{
			{ID: "e1", UserID: "u1", TaskID: "t1", Hours: 2},
		},
		failTaskID: "t3",
		failErr:    queryErr,
	}

	s := NewTaskService(&fakeTaskSource{tasks: tasks}, entries, zap.NewNop())
	result, err := s.ListWithActuals(context.Background(), "u1", "p1")

	// One failed fan-out query must fail the whole batch; no task may be
	// reported with assumed-zero hours.
	if !errors.Is(err, queryErr) {
		t.Fatalf("expected batch failure wrapping query error, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no partial results, got %+v", result)
	}
}

func TestTaskService_ListTaskFetchError(t *testing.T) {
	s := NewTaskService(&fakeTaskSource{err: errors.New("down")}, &fakeEntrySource{}, zap.NewNop())
	if _, err := s.ListWithActuals(context.Background(), "u1", "p1"); err == nil {
		t.Fatalf("expected error when task fetch fails")
	}
}

func TestTaskService_CreateValidation(t *testing.T) {
	s := NewTaskService(&fakeTaskSource{}, &fakeEntrySource{}, zap.NewNop())

	cases := []struct {
		name string
		req  models.CreateTaskRequest
	}{
		{"missing project", models.CreateTaskRequest{UserID: "u1", Name: "x", EstimatedHours: 1}},
		{"missing name", models.CreateTaskRequest{UserID: "u1", ProjectID: "p1", EstimatedHours: 1}},
		{"zero estimate", models.CreateTaskRequest{UserID: "u1", ProjectID: "p1", Name: "x"}},
	}
	for _, tc := range cases {
		if _, err := s.Create(context.Background(), &tc.req); err == nil || !apperr.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	id, err := s.Create(context.Background(), &models.CreateTaskRequest{
		UserID: "u1", ProjectID: "p1", Name: "Design", EstimatedHours: 8,
	})
	if err != nil || id == "" {
		t.Fatalf("expected successful create, got id=%q err=%v", id, err)
	}
}

func TestTaskService_UpdateValidation(t *testing.T) {
	s := NewTaskService(&fakeTaskSource{}, &fakeEntrySource{}, zap.NewNop())

	bad := "paused"
	if err := s.Update(context.Background(), "t1", &models.UpdateTaskRequest{Status: &bad}); err == nil || !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}

	zero := 0.0
	if err := s.Update(context.Background(), "t1", &models.UpdateTaskRequest{EstimatedHours: &zero}); err == nil || !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for zero estimate, got %v", err)
	}

	ok := models.TaskCompleted
	if err := s.Update(context.Background(), "t1", &models.UpdateTaskRequest{Status: &ok}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}
