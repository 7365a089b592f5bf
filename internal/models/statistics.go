package models

// ProjectRollup is the per-project aggregation slot. HourlyRate is the rate in
// effect at aggregation time; a rate change retroactively moves historical
// income figures, which is the intended behavior.
type ProjectRollup struct {
	ProjectID   string  `json:"project_id"`
	ProjectName string  `json:"project_name"`
	Hours       float64 `json:"hours"`
	Income      float64 `json:"income"`
	HourlyRate  float64 `json:"hourly_rate"`
}

// DayRollup is one calendar-day bucket of the daily series. Date is the local
// calendar date in YYYY-MM-DD form.
type DayRollup struct {
	Date   string  `json:"date"`
	Hours  float64 `json:"hours"`
	Income float64 `json:"income"`
}

// Statistics is the full derived rollup over one user's projects and time
// entries. All sums are unrounded; rounding for display is the caller's
// concern.
type Statistics struct {
	TotalProjects  int             `json:"total_projects"`
	ActiveProjects int             `json:"active_projects"`
	TotalHours     float64         `json:"total_hours"`
	TotalIncome    float64         `json:"total_income"`
	ProjectStats   []ProjectRollup `json:"project_stats"`
	DailyStats     []DayRollup     `json:"daily_stats"`
}
