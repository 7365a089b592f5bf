// Package export shapes aggregation output into the two tabular datasets the
// spreadsheet writer consumes: a per-entry detail table and a per-project
// summary table. No aggregation logic lives here.
package export

import (
	"freelancetrack/internal/models"
)

// DetailRow is one exported time entry.
type DetailRow struct {
	Date        string  `json:"date"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	Income      float64 `json:"income"`
}

// SummaryRow is one exported project rollup.
type SummaryRow struct {
	ProjectName string  `json:"project_name"`
	TotalHours  float64 `json:"total_hours"`
	HourlyRate  float64 `json:"hourly_rate"`
	TotalIncome float64 `json:"total_income"`
}

// Report bundles both datasets.
type Report struct {
	Detail  []DetailRow  `json:"detail"`
	Summary []SummaryRow `json:"summary"`
}

// Detail builds the per-entry table. Entries referencing a missing project are
// skipped, matching the aggregation engine's orphan policy.
func Detail(projects []models.Project, entries []models.TimeEntry) []DetailRow {
	byID := make(map[string]models.Project, len(projects))
	for _, p := range projects {
		byID[p.ID] = p
	}

	rows := make([]DetailRow, 0, len(entries))
	for _, entry := range entries {
		project, ok := byID[entry.ProjectID]
		if !ok {
			continue
		}
		rows = append(rows, DetailRow{
			Date:        entry.StartTime.Format("2006-01-02"),
			ProjectName: project.Name,
			Hours:       entry.Hours,
			HourlyRate:  project.HourlyRate,
			Income:      entry.Hours * project.HourlyRate,
		})
	}
	return rows
}

// Summary builds the per-project table straight from computed statistics.
func Summary(s models.Statistics) []SummaryRow {
	rows := make([]SummaryRow, 0, len(s.ProjectStats))
	for _, rollup := range s.ProjectStats {
		rows = append(rows, SummaryRow{
			ProjectName: rollup.ProjectName,
			TotalHours:  rollup.Hours,
			HourlyRate:  rollup.HourlyRate,
			TotalIncome: rollup.Income,
		})
	}
	return rows
}
