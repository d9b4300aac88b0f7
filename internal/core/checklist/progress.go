// Package checklist contains the pure business logic for checklist progress.
// This is part of the Functional Core - no I/O, only pure functions.
package checklist

import (
	"math"

	"github.com/example/launchlist/internal/models"
)

// CompletedCount counts completed ids that belong to the catalog.
// Ids outside the catalog are ignored.
func CompletedCount(catalog *models.Catalog, completed map[string]bool) int {
	count := 0
	for _, id := range catalog.TaskIDs() {
		if completed[id] {
			count++
		}
	}
	return count
}

// Percent returns 100*done/total, or 0 when total is 0.
func Percent(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return 100 * float64(done) / float64(total)
}

// RoundPercent rounds a percentage half-up to the nearest integer.
func RoundPercent(p float64) int {
	return int(math.Floor(p + 0.5))
}

// IsComplete reports whether every task of a non-empty catalog is done.
func IsComplete(done, total int) bool {
	return total > 0 && done == total
}

// CategoryTally is the completion count of one category.
type CategoryTally struct {
	Category models.Category
	Label    string
	Done     int
	Total    int
}

// Tally counts completion per category in the catalog's declared order.
// The sum of Done equals CompletedCount and the sum of Total equals the catalog size.
func Tally(catalog *models.Catalog, completed map[string]bool) []CategoryTally {
	tallies := make([]CategoryTally, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		tally := CategoryTally{Category: c.Category, Label: c.Label}
		for _, t := range catalog.TasksIn(c.Category) {
			tally.Total++
			if completed[t.ID] {
				tally.Done++
			}
		}
		tallies = append(tallies, tally)
	}
	return tallies
}

// BecameComplete reports the edge transition into the complete state.
func BecameComplete(wasComplete, isComplete bool) bool {
	return !wasComplete && isComplete
}
