package service

import (
	"context"
	"testing"
	"time"

	"freelancetrack/internal/apperr"
	"freelancetrack/internal/models"

	"go.uber.org/zap"
)

func TestEntryService_LogManualValidation(t *testing.T) {
	entries := &fakeEntrySource{}
	s := NewEntryService(entries, zap.NewNop())

	cases := []struct {
		name          string
		project, task string
		hours         float64
	}{
		{"no project", "", "t1", 1},
		{"no task", "p1", "", 1},
		{"zero hours", "p1", "t1", 0},
		{"negative hours", "p1", "t1", -2},
	}
	for _, tc := range cases {
		_, err := s.LogManual(context.Background(), "u1", tc.project, tc.task, tc.hours)
		if err == nil || !apperr.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}

	if len(entries.added) != 0 {
		t.Fatalf("expected no writes on validation failure, got %d", len(entries.added))
	}
}

func TestEntryService_LogManual(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	entries := &fakeEntrySource{}
	s := NewEntryService(entries, zap.NewNop())
	s.now = func() time.Time { return now }

	id, err := s.LogManual(context.Background(), "u1", "p1", "t1", 2.5)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if id == "" {
		t.Fatalf("expected entry id")
	}

	if len(entries.added) != 1 {
		t.Fatalf("expected one persisted entry, got %d", len(entries.added))
	}
	added := entries.added[0]
	if added.Hours != 2.5 || added.TaskID != "t1" || !added.StartTime.Equal(now) {
		t.Fatalf("unexpected persisted entry %+v", added)
	}
}

func TestProjectService_CreateValidation(t *testing.T) {
	s := NewProjectService(&fakeProjectSource{}, zap.NewNop())

	if _, err := s.Create(context.Background(), &models.CreateProjectRequest{UserID: "u1"}); err == nil || !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for missing name, got %v", err)
	}
	if _, err := s.Create(context.Background(), &models.CreateProjectRequest{UserID: "u1", Name: "A", HourlyRate: -1}); err == nil || !apperr.IsValidation(err) {
		t.Fatalf("expected validation error for negative rate, got %v", err)
	}
	if _, err := s.Create(context.Background(), &models.CreateProjectRequest{UserID: "u1", Name: "A", HourlyRate: 100}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestProjectService_List(t *testing.T) {
	src := &fakeProjectSource{projects: []models.Project{
		{ID: "p1", UserID: "u1", Status: models.ProjectActive},
		{ID: "p2", UserID: "u1", Status: models.ProjectInactive},
		{ID: "p3", UserID: "u2", Status: models.ProjectActive},
	}}
	s := NewProjectService(src, zap.NewNop())

	all, err := s.List(context.Background(), "u1", "")
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 projects, got %d (err %v)", len(all), err)
	}

	active, err := s.List(context.Background(), "u1", models.ProjectActive)
	if err != nil || len(active) != 1 || active[0].ID != "p1" {
		t.Fatalf("expected only p1 active, got %+v (err %v)", active, err)
	}
}
