// Package report builds checklist reports. Build performs the single
// computation; Markdown, Printable and YAML are renderings of its result,
// so the renderings cannot disagree on counts or ordering.
package report

import (
	"fmt"
	"time"

	"github.com/example/launchlist/internal/core/checklist"
	"github.com/example/launchlist/internal/models"
)

// longDateLayout renders dates as "January 5, 2026".
const longDateLayout = "January 2, 2006"

// Report is the computed summary of a catalog and its completion set.
type Report struct {
	Catalog        string                `yaml:"catalog"`
	Title          string                `yaml:"title"`
	GeneratedAt    time.Time             `yaml:"generated_at"`
	GeneratedDate  string                `yaml:"generated_date"`
	Completed      int                   `yaml:"completed"`
	Total          int                   `yaml:"total"`
	Percent        float64               `yaml:"percent"`
	RoundedPercent int                   `yaml:"rounded_percent"`
	Sections       []Section             `yaml:"sections"`
	Trailer        []models.TrailerBlock `yaml:"-"`
}

// Section is one category of the report.
type Section struct {
	Category string `yaml:"category"`
	Label    string `yaml:"label"`
	Done     int    `yaml:"done"`
	Total    int    `yaml:"total"`
	Items    []Item `yaml:"items"`
}

// Item is one task line of the report.
type Item struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
}

// Build computes a report. It is a pure function of its inputs.
func Build(catalog *models.Catalog, completed map[string]bool, now time.Time) Report {
	r := Report{
		Catalog:       catalog.Slug,
		Title:         catalog.ReportTitle,
		GeneratedAt:   now,
		GeneratedDate: now.Format(longDateLayout),
		Total:         catalog.Len(),
		Trailer:       catalog.Trailer(now),
	}
	if r.Title == "" {
		r.Title = catalog.Name + " Report"
	}

	for _, c := range catalog.Categories() {
		section := Section{Category: string(c.Category), Label: c.Label}
		for _, t := range catalog.TasksIn(c.Category) {
			done := completed[t.ID]
			section.Items = append(section.Items, Item{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Done:        done,
			})
			section.Total++
			if done {
				section.Done++
			}
		}
		r.Completed += section.Done
		r.Sections = append(r.Sections, section)
	}

	r.Percent = checklist.Percent(r.Completed, r.Total)
	r.RoundedPercent = checklist.RoundPercent(r.Percent)
	return r
}

// Summary returns "<done> of <total> tasks completed (<pct>%)".
func (r Report) Summary() string {
	return fmt.Sprintf("%d of %d tasks completed (%d%%)", r.Completed, r.Total, r.RoundedPercent)
}

// Filename returns "<slug>-checklist-<YYYY-MM-DD>.<ext>" using the UTC date.
func Filename(slug string, now time.Time, ext string) string {
	return fmt.Sprintf("%s-checklist-%s.%s", slug, now.UTC().Format("2006-01-02"), ext)
}
