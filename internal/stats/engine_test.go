package stats

import (
	"reflect"
	"testing"
	"time"

	"freelancetrack/internal/models"
)

var testNow = time.Date(2025, 3, 10, 15, 30, 0, 0, time.UTC)

func day(offset int) time.Time {
	return testNow.AddDate(0, 0, offset)
}

func TestComputeStatistics_DayBucketCompleteness(t *testing.T) {
	w := LastDays(7, testNow)

	result := ComputeStatistics(nil, nil, w)

	if len(result.DailyStats) != 7 {
		t.Fatalf("expected 7 day buckets, got %d", len(result.DailyStats))
	}
	for i, bucket := range result.DailyStats {
		want := testNow.AddDate(0, 0, -6+i).Format("2006-01-02")
		if bucket.Date != want {
			t.Fatalf("bucket %d: expected date %s, got %s", i, want, bucket.Date)
		}
		if bucket.Hours != 0 || bucket.Income != 0 {
			t.Fatalf("bucket %d: expected zero hours/income, got %v/%v", i, bucket.Hours, bucket.Income)
		}
	}
}

func TestComputeStatistics_IncomeFormula(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Client A", HourlyRate: 100000, Status: models.ProjectActive},
	}
	entries := []models.TimeEntry{
		{ID: "e1", ProjectID: "p1", TaskID: "t1", Hours: 3.5, StartTime: testNow},
	}

	result := ComputeStatistics(projects, entries, LastDays(7, testNow))
	if result.TotalIncome != 350000 {
		t.Fatalf("expected income 350000, got %v", result.TotalIncome)
	}

	// A rate change retroactively moves historical income.
	projects[0].HourlyRate = 120000
	result = ComputeStatistics(projects, entries, LastDays(7, testNow))
	if result.TotalIncome != 420000 {
		t.Fatalf("expected income 420000 after rate change, got %v", result.TotalIncome)
	}
}

func TestComputeStatistics_OrphanExclusion(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Client A", HourlyRate: 50, Status: models.ProjectActive},
	}
	entries := []models.TimeEntry{
		{ID: "e1", ProjectID: "p1", TaskID: "t1", Hours: 2, StartTime: testNow},
		{ID: "e2", ProjectID: "deleted", TaskID: "t2", Hours: 8, StartTime: testNow},
	}

	result := ComputeStatistics(projects, entries, LastDays(7, testNow))

	if result.TotalHours != 2 {
		t.Fatalf("expected orphan excluded from totals, got %v hours", result.TotalHours)
	}
	if len(result.ProjectStats) != 1 || result.ProjectStats[0].ProjectID != "p1" {
		t.Fatalf("expected single rollup for p1, got %+v", result.ProjectStats)
	}
}

func TestComputeStatistics_EntryOutsideWindowCountsInTotalsOnly(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Client A", HourlyRate: 100, Status: models.ProjectActive},
	}
	entries := []models.TimeEntry{
		{ID: "e1", ProjectID: "p1", TaskID: "t1", Hours: 4, StartTime: day(-30)},
	}

	result := ComputeStatistics(projects, entries, LastDays(7, testNow))

	if result.TotalHours != 4 {
		t.Fatalf("expected out-of-window entry in totals, got %v hours", result.TotalHours)
	}
	for _, bucket := range result.DailyStats {
		if bucket.Hours != 0 {
			t.Fatalf("expected empty daily series, got %v hours on %s", bucket.Hours, bucket.Date)
		}
	}
}

func TestComputeStatistics_PerProjectAndDailyAccumulation(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Client A", HourlyRate: 100, Status: models.ProjectActive},
		{ID: "p2", Name: "Client B", HourlyRate: 200, Status: models.ProjectInactive},
	}
	entries := []models.TimeEntry{
		{ID: "e1", ProjectID: "p1", TaskID: "t1", Hours: 2, StartTime: day(-1)},
		{ID: "e2", ProjectID: "p1", TaskID: "t1", Hours: 3, StartTime: day(-1)},
		{ID: "e3", ProjectID: "p2", TaskID: "t2", Hours: 1, StartTime: testNow},
	}

	result := ComputeStatistics(projects, entries, LastDays(7, testNow))

	if result.TotalProjects != 2 || result.ActiveProjects != 1 {
		t.Fatalf("expected 2 projects / 1 active, got %d/%d", result.TotalProjects, result.ActiveProjects)
	}
	if result.TotalHours != 6 {
		t.Fatalf("expected 6 total hours, got %v", result.TotalHours)
	}
	if result.TotalIncome != 2*100+3*100+1*200 {
		t.Fatalf("unexpected total income %v", result.TotalIncome)
	}

	if len(result.ProjectStats) != 2 {
		t.Fatalf("expected 2 project rollups, got %d", len(result.ProjectStats))
	}
	if result.ProjectStats[0].ProjectID != "p1" || result.ProjectStats[0].Hours != 5 {
		t.Fatalf("unexpected p1 rollup %+v", result.ProjectStats[0])
	}

	yesterday := day(-1).Format("2006-01-02")
	for _, bucket := range result.DailyStats {
		if bucket.Date == yesterday && bucket.Hours != 5 {
			t.Fatalf("expected 5 hours on %s, got %v", yesterday, bucket.Hours)
		}
	}
}

func TestComputeStatistics_Idempotent(t *testing.T) {
	projects := []models.Project{
		{ID: "p1", Name: "Client A", HourlyRate: 99.5, Status: models.ProjectActive},
		{ID: "p2", Name: "Client B", HourlyRate: 150, Status: models.ProjectActive},
	}
	entries := []models.TimeEntry{
		{ID: "e1", ProjectID: "p1", TaskID: "t1", Hours: 1.25, StartTime: day(-2)},
		{ID: "e2", ProjectID: "p2", TaskID: "t2", Hours: 0.75, StartTime: day(-1)},
		{ID: "e3", ProjectID: "p1", TaskID: "t1", Hours: 3.1, StartTime: testNow},
	}
	w := LastDays(30, testNow)

	first := ComputeStatistics(projects, entries, w)
	second := ComputeStatistics(projects, entries, w)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output for identical inputs:\n%+v\n%+v", first, second)
	}
}

func TestRange_ExplicitWindow(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 5, 23, 0, 0, 0, time.UTC)

	result := ComputeStatistics(nil, nil, Range(start, end))

	if len(result.DailyStats) != 5 {
		t.Fatalf("expected 5 buckets for explicit range, got %d", len(result.DailyStats))
	}
	if result.DailyStats[0].Date != "2025-03-01" || result.DailyStats[4].Date != "2025-03-05" {
		t.Fatalf("unexpected bucket bounds: %s .. %s", result.DailyStats[0].Date, result.DailyStats[4].Date)
	}
}

func TestTopProjects(t *testing.T) {
	s := models.Statistics{
		ProjectStats: []models.ProjectRollup{
			{ProjectID: "a", Hours: 2},
			{ProjectID: "b", Hours: 10},
			{ProjectID: "c", Hours: 5},
		},
	}

	top := TopProjects(s, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 rollups, got %d", len(top))
	}
	if top[0].ProjectID != "b" || top[1].ProjectID != "c" {
		t.Fatalf("unexpected top order: %+v", top)
	}

	// Input order untouched.
	if s.ProjectStats[0].ProjectID != "a" {
		t.Fatalf("TopProjects mutated its input: %+v", s.ProjectStats)
	}
}
