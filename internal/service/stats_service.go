package service

import (
	"context"
	"time"

	"freelancetrack/internal/export"
	"freelancetrack/internal/models"
	"freelancetrack/internal/query"
	"freelancetrack/internal/stats"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// StatsService fetches a user's records and runs the aggregation engine over
// them. Projects and entries are fetched concurrently and joined before any
// aggregation runs; a failed fetch fails the whole operation.
type StatsService struct {
	projects ProjectSource
	entries  EntrySource
	logger   *zap.Logger
	now      func() time.Time
}

func NewStatsService(projects ProjectSource, entries EntrySource, logger *zap.Logger) *StatsService {
	return &StatsService{
		projects: projects,
		entries:  entries,
		logger:   logger,
		now:      time.Now,
	}
}

// Dashboard computes rollups over the trailing window of `days` calendar days.
func (s *StatsService) Dashboard(ctx context.Context, userID string, days int) (models.Statistics, error) {
	window := stats.LastDays(days, s.now())

	projects, entries, err := s.fetch(ctx, userID,
		[]query.Condition{
			query.Eq("user_id", userID),
			query.Gte("start_time", window.Start),
		})
	if err != nil {
		return models.Statistics{}, err
	}

	result := stats.ComputeStatistics(projects, entries, window)
	s.logger.Debug("Dashboard statistics computed",
		zap.String("user_id", userID),
		zap.Int("days", days),
		zap.Int("entries", len(entries)),
		zap.Float64("total_hours", result.TotalHours),
	)
	return result, nil
}

// IncomeReport computes rollups over an explicit date range, optionally
// restricted to one project, and derives the export datasets from them.
func (s *StatsService) IncomeReport(ctx context.Context, userID string, start, end time.Time, projectID string) (models.Statistics, export.Report, error) {
	window := stats.Range(start, end)

	conds := []query.Condition{
		query.Eq("user_id", userID),
		query.Gte("start_time", window.Start),
		query.Lte("start_time", window.End.AddDate(0, 0, 1)),
	}
	if projectID != "" {
		conds = append(conds, query.Eq("project_id", projectID))
	}

	projects, entries, err := s.fetch(ctx, userID, conds)
	if err != nil {
		return models.Statistics{}, export.Report{}, err
	}

	result := stats.ComputeStatistics(projects, entries, window)
	report := export.Report{
		Detail:  export.Detail(projects, entries),
		Summary: export.Summary(result),
	}
	return result, report, nil
}

// fetch loads projects and time entries in parallel and returns both only when
// both queries succeeded.
func (s *StatsService) fetch(ctx context.Context, userID string, entryConds []query.Condition) ([]models.Project, []models.TimeEntry, error) {
	var projects []models.Project
	var entries []models.TimeEntry

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.projects.GetAll(ctx, []query.Condition{query.Eq("user_id", userID)}, nil)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.entries.GetAll(ctx, entryConds, nil)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return projects, entries, nil
}
