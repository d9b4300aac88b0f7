// Package models contains domain types for launchlist catalogs.
// Catalogs are compiled in; nothing here is created or mutated at runtime.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidCatalog is returned by NewCatalog when the catalog definition is inconsistent.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Category is a closed, per-catalog category tag.
type Category string

// Task is a single checklist item.
type Task struct {
	ID          string
	Title       string
	Description string
	Category    Category
	Prompt      string // ready-to-paste assistant prompt for doing the task
}

// CategoryLabel maps a category to its display label.
// The order of a catalog's labels is the order categories appear in reports.
type CategoryLabel struct {
	Category Category
	Label    string
}

// TrailerBlock is a closing report section appended after all categories.
// Paragraph text may contain **bold** markers; renderers translate them.
type TrailerBlock struct {
	Heading    string
	Paragraphs []string
}

// TrailerFunc builds a catalog's trailer for the given generation time.
type TrailerFunc func(now time.Time) []TrailerBlock

// Catalog is an ordered, immutable list of tasks plus category labels.
type Catalog struct {
	Slug        string // used in report file names, e.g. "go-live"
	Name        string
	Subtitle    string
	ReportTitle string
	StorageKey  string

	categories []CategoryLabel
	labels     map[Category]string
	tasks      []Task
	index      map[string]int
	trailer    TrailerFunc
}

// CatalogDefinition is the input to NewCatalog.
type CatalogDefinition struct {
	Slug        string
	Name        string
	Subtitle    string
	ReportTitle string
	StorageKey  string
	Categories  []CategoryLabel
	Tasks       []Task
	Trailer     TrailerFunc
}

// NewCatalog validates a definition and builds a Catalog.
// Rules:
// - Slug and storage key must be set
// - Every category is declared once with a non-empty label
// - Task ids are non-empty and unique
// - Every task's category has a label
func NewCatalog(def CatalogDefinition) (*Catalog, error) {
	if def.Slug == "" {
		return nil, fmt.Errorf("%w: slug is required", ErrInvalidCatalog)
	}
	if def.StorageKey == "" {
		return nil, fmt.Errorf("%w: catalog %s has no storage key", ErrInvalidCatalog, def.Slug)
	}

	labels := make(map[Category]string, len(def.Categories))
	for _, c := range def.Categories {
		if c.Label == "" {
			return nil, fmt.Errorf("%w: catalog %s: category %q has no label", ErrInvalidCatalog, def.Slug, c.Category)
		}
		if _, dup := labels[c.Category]; dup {
			return nil, fmt.Errorf("%w: catalog %s: category %q declared twice", ErrInvalidCatalog, def.Slug, c.Category)
		}
		labels[c.Category] = c.Label
	}

	index := make(map[string]int, len(def.Tasks))
	for i, t := range def.Tasks {
		if t.ID == "" {
			return nil, fmt.Errorf("%w: catalog %s: task %d has an empty id", ErrInvalidCatalog, def.Slug, i)
		}
		if _, dup := index[t.ID]; dup {
			return nil, fmt.Errorf("%w: catalog %s: duplicate task id %s", ErrInvalidCatalog, def.Slug, t.ID)
		}
		if _, ok := labels[t.Category]; !ok {
			return nil, fmt.Errorf("%w: catalog %s: task %s uses unlabeled category %q", ErrInvalidCatalog, def.Slug, t.ID, t.Category)
		}
		index[t.ID] = i
	}

	return &Catalog{
		Slug:        def.Slug,
		Name:        def.Name,
		Subtitle:    def.Subtitle,
		ReportTitle: def.ReportTitle,
		StorageKey:  def.StorageKey,
		categories:  append([]CategoryLabel(nil), def.Categories...),
		labels:      labels,
		tasks:       append([]Task(nil), def.Tasks...),
		index:       index,
		trailer:     def.Trailer,
	}, nil
}

// MustCatalog is NewCatalog for compiled-in definitions; it panics on an invalid definition.
func MustCatalog(def CatalogDefinition) *Catalog {
	c, err := NewCatalog(def)
	if err != nil {
		panic(err)
	}
	return c
}

// Tasks returns the tasks in catalog order.
func (c *Catalog) Tasks() []Task {
	return append([]Task(nil), c.tasks...)
}

// Categories returns the category labels in declared order.
func (c *Catalog) Categories() []CategoryLabel {
	return append([]CategoryLabel(nil), c.categories...)
}

// Label returns the display label of a category.
func (c *Catalog) Label(cat Category) string {
	return c.labels[cat]
}

// TaskIDs returns the task ids in catalog order.
func (c *Catalog) TaskIDs() []string {
	ids := make([]string, len(c.tasks))
	for i, t := range c.tasks {
		ids[i] = t.ID
	}
	return ids
}

// Task looks up a task by id.
func (c *Catalog) Task(id string) (Task, bool) {
	i, ok := c.index[id]
	if !ok {
		return Task{}, false
	}
	return c.tasks[i], true
}

// Has reports whether id belongs to the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of tasks.
func (c *Catalog) Len() int {
	return len(c.tasks)
}

// TasksIn returns the tasks of one category in catalog order.
func (c *Catalog) TasksIn(cat Category) []Task {
	var out []Task
	for _, t := range c.tasks {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Trailer returns the catalog's closing sections for the given time, or nil.
func (c *Catalog) Trailer(now time.Time) []TrailerBlock {
	if c.trailer == nil {
		return nil
	}
	return c.trailer(now)
}
