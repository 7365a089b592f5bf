package stats

import (
	"math"

	"freelancetrack/internal/models"
)

// Reconcile joins a task with its time entries and computes the booked hours
// and variance against the estimate. Entries whose TaskID does not match the
// task are ignored, so a flat, unfiltered entry list is safe to pass.
//
// Unlike ComputeStatistics, the results here are rounded to two decimals on
// purpose: variance is displayed per task and float noise from many small
// entries would otherwise wobble the last digits between fetches.
func Reconcile(task models.Task, entries []models.TimeEntry) models.TaskWithActuals {
	var total float64
	for _, entry := range entries {
		if entry.TaskID == task.ID {
			total += entry.Hours
		}
	}

	actual := round2(total)
	return models.TaskWithActuals{
		Task:        task,
		ActualHours: actual,
		HoursDiff:   round2(actual - task.EstimatedHours),
	}
}

// ReconcileAll reconciles every task against one flat entry list, grouping the
// entries by task id itself. Result order follows task order.
func ReconcileAll(tasks []models.Task, entries []models.TimeEntry) []models.TaskWithActuals {
	byTask := make(map[string][]models.TimeEntry)
	for _, entry := range entries {
		byTask[entry.TaskID] = append(byTask[entry.TaskID], entry)
	}

	results := make([]models.TaskWithActuals, 0, len(tasks))
	for _, task := range tasks {
		results = append(results, Reconcile(task, byTask[task.ID]))
	}
	return results
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
