// Package stats turns raw project/task/time-entry records into derived
// metrics: hour and income rollups, daily trend series, and
// actual-vs-estimated task variance. Every computation here is a pure function
// over fully materialized inputs; fetching and filtering belong to the caller.
package stats

import (
	"sort"
	"time"

	"freelancetrack/internal/models"
)

const dayFormat = "2006-01-02"

// Window is an inclusive range of calendar days. Bucketing uses the location
// of Start, so callers control what "local" means.
type Window struct {
	Start time.Time
	End   time.Time
}

// LastDays returns the window [now - days + 1, now] in now's location.
func LastDays(days int, now time.Time) Window {
	end := truncateDay(now)
	start := end.AddDate(0, 0, -(days - 1))
	return Window{Start: start, End: end}
}

// Range returns an explicit start/end window, truncated to calendar days.
func Range(start, end time.Time) Window {
	return Window{Start: truncateDay(start), End: truncateDay(end)}
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ComputeStatistics aggregates the supplied time entries against the supplied
// projects. It assumes the caller already restricted both to one owner and the
// desired time range.
//
// One zeroed bucket is created per calendar day in the window, so the daily
// series is contiguous even when no entry falls on a day. An entry whose
// project id resolves to no supplied project is skipped entirely; an entry
// outside the window's buckets still counts toward the totals, just not the
// daily series.
func ComputeStatistics(projects []models.Project, entries []models.TimeEntry, w Window) models.Statistics {
	byID := make(map[string]models.Project, len(projects))
	activeCount := 0
	for _, p := range projects {
		byID[p.ID] = p
		if p.Status == models.ProjectActive {
			activeCount++
		}
	}

	daily := make(map[string]*models.DayRollup)
	var dayKeys []string
	for d := w.Start; !d.After(w.End); d = d.AddDate(0, 0, 1) {
		key := d.Format(dayFormat)
		daily[key] = &models.DayRollup{Date: key}
		dayKeys = append(dayKeys, key)
	}

	perProject := make(map[string]*models.ProjectRollup)
	var totalHours, totalIncome float64

	loc := w.Start.Location()
	for _, entry := range entries {
		project, ok := byID[entry.ProjectID]
		if !ok {
			continue
		}

		hours := entry.Hours
		income := hours * project.HourlyRate

		totalHours += hours
		totalIncome += income

		rollup, ok := perProject[project.ID]
		if !ok {
			rollup = &models.ProjectRollup{
				ProjectID:   project.ID,
				ProjectName: project.Name,
				HourlyRate:  project.HourlyRate,
			}
			perProject[project.ID] = rollup
		}
		rollup.Hours += hours
		rollup.Income += income

		date := entry.StartTime.In(loc).Format(dayFormat)
		if bucket, ok := daily[date]; ok {
			bucket.Hours += hours
			bucket.Income += income
		}
	}

	result := models.Statistics{
		TotalProjects:  len(projects),
		ActiveProjects: activeCount,
		TotalHours:     totalHours,
		TotalIncome:    totalIncome,
		ProjectStats:   make([]models.ProjectRollup, 0, len(perProject)),
		DailyStats:     make([]models.DayRollup, 0, len(dayKeys)),
	}

	for _, key := range dayKeys {
		result.DailyStats = append(result.DailyStats, *daily[key])
	}

	for _, rollup := range perProject {
		result.ProjectStats = append(result.ProjectStats, *rollup)
	}
	// Stable order keeps repeated runs over identical inputs identical.
	// Presentation order (e.g. by hours) is the caller's job.
	sort.Slice(result.ProjectStats, func(i, j int) bool {
		return result.ProjectStats[i].ProjectID < result.ProjectStats[j].ProjectID
	})

	return result
}

// TopProjects returns up to n project rollups sorted by hours descending.
// The input statistics are not modified.
func TopProjects(s models.Statistics, n int) []models.ProjectRollup {
	top := make([]models.ProjectRollup, len(s.ProjectStats))
	copy(top, s.ProjectStats)
	sort.Slice(top, func(i, j int) bool {
		return top[i].Hours > top[j].Hours
	})
	if n < len(top) {
		top = top[:n]
	}
	return top
}
