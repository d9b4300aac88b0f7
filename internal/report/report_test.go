package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/example/launchlist/internal/catalogs"
	"github.com/example/launchlist/internal/models"
)

var fixedNow = time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)

func threeTaskCatalog(t *testing.T) *models.Catalog {
	t.Helper()
	c, err := models.NewCatalog(models.CatalogDefinition{
		Slug:        "abc",
		ReportTitle: "ABC Report",
		StorageKey:  "abc-state",
		Categories: []models.CategoryLabel{
			{Category: "A", Label: "Alpha"},
			{Category: "B", Label: "Beta"},
		},
		Tasks: []models.Task{
			{ID: "t1", Title: "One", Description: "first", Category: "A"},
			{ID: "t2", Title: "Two", Description: "second", Category: "A"},
			{ID: "t3", Title: "Three", Description: "third", Category: "B"},
		},
	})
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return c
}

func TestBuild_ThreeTaskScenario(t *testing.T) {
	r := Build(threeTaskCatalog(t), map[string]bool{"t1": true, "t2": true}, fixedNow)

	if r.Completed != 2 || r.Total != 3 {
		t.Errorf("expected 2 of 3, got %d of %d", r.Completed, r.Total)
	}
	if r.RoundedPercent != 67 {
		t.Errorf("expected 67%%, got %d%%", r.RoundedPercent)
	}
	if r.GeneratedDate != "January 5, 2026" {
		t.Errorf("unexpected date %q", r.GeneratedDate)
	}
	if len(r.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(r.Sections))
	}
	if r.Sections[0].Done != 2 || r.Sections[0].Total != 2 {
		t.Errorf("expected Alpha 2/2, got %d/%d", r.Sections[0].Done, r.Sections[0].Total)
	}
	if r.Sections[1].Done != 0 || r.Sections[1].Total != 1 {
		t.Errorf("expected Beta 0/1, got %d/%d", r.Sections[1].Done, r.Sections[1].Total)
	}
}

func TestBuild_CountsInvariant(t *testing.T) {
	tests := []struct {
		name      string
		catalog   *models.Catalog
		completed map[string]bool
	}{
		{name: "go-live empty", catalog: catalogs.GoLive, completed: map[string]bool{}},
		{
			name:    "go-live partial with unknown ids",
			catalog: catalogs.GoLive,
			completed: map[string]bool{
				"seo-meta-tags": true, "legal-dmca": true, "tech-backup": true, "removed-task": true,
			},
		},
		{name: "local-seo all", catalog: catalogs.LocalSEO, completed: allDone(catalogs.LocalSEO)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Build(tt.catalog, tt.completed, fixedNow)

			var done, total int
			for _, s := range r.Sections {
				done += s.Done
				total += s.Total
			}
			if done != r.Completed {
				t.Errorf("sum of section done %d != completed %d", done, r.Completed)
			}
			if total != r.Total || total != tt.catalog.Len() {
				t.Errorf("sum of section totals %d != total %d", total, r.Total)
			}
		})
	}
}

func allDone(c *models.Catalog) map[string]bool {
	done := map[string]bool{}
	for _, id := range c.TaskIDs() {
		done[id] = true
	}
	return done
}

func TestBuild_EmptyCatalog(t *testing.T) {
	c := models.MustCatalog(models.CatalogDefinition{Slug: "empty", Name: "Empty", StorageKey: "empty-state"})

	r := Build(c, nil, fixedNow)
	if r.Percent != 0 || r.RoundedPercent != 0 {
		t.Errorf("expected 0%%, got %v", r.Percent)
	}
	if r.Title != "Empty Report" {
		t.Errorf("expected fallback title, got %q", r.Title)
	}
}

func TestMarkdown_Layout(t *testing.T) {
	r := Build(threeTaskCatalog(t), map[string]bool{"t1": true, "t2": true}, fixedNow)

	want := "# ABC Report\n\n" +
		"Generated: January 5, 2026\n\n" +
		"**Progress:** 2 of 3 tasks completed (67%)\n\n" +
		"---\n\n" +
		"## Alpha\n\n" +
		"Progress: 2/2\n\n" +
		"- [x] **One**: first\n" +
		"- [x] **Two**: second\n" +
		"\n" +
		"## Beta\n\n" +
		"Progress: 0/1\n\n" +
		"- [ ] **Three**: third\n" +
		"\n"

	if got := Markdown(r); got != want {
		t.Errorf("Markdown mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestMarkdown_LocalSEOTrailer(t *testing.T) {
	r := Build(catalogs.LocalSEO, nil, fixedNow)
	md := Markdown(r)

	if !strings.HasPrefix(md, "# Local SEO Launch Checklist Report – 2026 Edition\n\n") {
		t.Errorf("unexpected header: %q", md[:80])
	}

	wantTail := "## The Brutal Truth\n\n" +
		"Most businesses fail because they half-do 4-5 of these items for 6 weeks and quit.\n\n" +
		"Do **every item** on this list **every month** for **6 straight months** → results compound dramatically.\n\n" +
		"Launch date: 1/5/2026\n" +
		"6-month review date: 7/4/2026\n\n" +
		"Print it. Pin it. Track it. Go dominate your city.\n"
	if !strings.HasSuffix(md, wantTail) {
		t.Errorf("unexpected trailer:\n%s", md[strings.LastIndex(md, "## "):])
	}

	// Trailer follows the last category
	if strings.Index(md, "## Link Building") > strings.Index(md, "## The Brutal Truth") {
		t.Error("trailer must come after all categories")
	}
}

func TestMarkdown_TrailerBlocksSeparated(t *testing.T) {
	r := Build(threeTaskCatalog(t), nil, fixedNow)
	r.Trailer = []models.TrailerBlock{
		{Heading: "First", Paragraphs: []string{"one", "two"}},
		{Heading: "Second", Paragraphs: []string{"three"}},
	}

	wantTail := "## First\n\none\n\ntwo\n\n## Second\n\nthree\n"
	if md := Markdown(r); !strings.HasSuffix(md, wantTail) {
		t.Errorf("unexpected trailer layout:\n%q", md[strings.Index(md, "## First"):])
	}
}

func TestMarkdown_CategoryOrder(t *testing.T) {
	md := Markdown(Build(catalogs.GoLive, nil, fixedNow))

	last := -1
	for _, c := range catalogs.GoLive.Categories() {
		i := strings.Index(md, "## "+c.Label+"\n")
		if i < 0 {
			t.Fatalf("missing heading for %s", c.Label)
		}
		if i < last {
			t.Errorf("category %s out of order", c.Label)
		}
		last = i
	}
}

func TestPrintable_MatchesMarkdownCounts(t *testing.T) {
	completed := map[string]bool{"web-indexed": true, "gbp-weekly-photo": true, "links-branded-anchors": true}
	r := Build(catalogs.LocalSEO, completed, fixedNow)

	html, err := Printable(r)
	if err != nil {
		t.Fatalf("Printable failed: %v", err)
	}

	if !strings.Contains(html, "3 of 24 tasks completed (13%)") {
		t.Error("expected overall summary in print document")
	}
	if got := strings.Count(html, "&#9745;"); got != 3 {
		t.Errorf("expected 3 checked glyphs, got %d", got)
	}
	if got := strings.Count(html, "&#9744;"); got != 21 {
		t.Errorf("expected 21 unchecked glyphs, got %d", got)
	}
	for _, s := range r.Sections {
		count := strings.Count(html, fmt.Sprintf(">%d/%d<", s.Done, s.Total))
		if count == 0 {
			t.Errorf("missing count %d/%d for %s", s.Done, s.Total, s.Label)
		}
	}
	if !strings.Contains(html, "<strong>every item</strong>") {
		t.Error("expected bold trailer emphasis")
	}
	if !strings.Contains(html, "Launch date: 1/5/2026<br>") {
		t.Error("expected trailer line break")
	}
}

func TestPrintable_PreservesOrder(t *testing.T) {
	html, err := Printable(Build(catalogs.GoLive, nil, fixedNow))
	if err != nil {
		t.Fatalf("Printable failed: %v", err)
	}

	last := -1
	for _, task := range catalogs.GoLive.Tasks() {
		i := strings.Index(html, htmlText(task.Title))
		if i < 0 {
			t.Fatalf("missing task %s", task.ID)
		}
		if i < last {
			t.Errorf("task %s out of order", task.ID)
		}
		last = i
	}
}

func TestPrintable_EscapesText(t *testing.T) {
	c := models.MustCatalog(models.CatalogDefinition{
		Slug:       "x",
		StorageKey: "x-state",
		Categories: []models.CategoryLabel{{Category: "a", Label: "A & B"}},
		Tasks:      []models.Task{{ID: "t", Title: "<script>", Description: "x", Category: "a"}},
	})

	html, err := Printable(Build(c, nil, fixedNow))
	if err != nil {
		t.Fatalf("Printable failed: %v", err)
	}
	if strings.Contains(html, "<strong class=\"title\"><script>") {
		t.Error("task title was not escaped")
	}
	if !strings.Contains(html, "A &amp; B") {
		t.Error("label was not escaped")
	}
}

func TestEmphasis(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a **b** c", want: "a <strong>b</strong> c"},
		{in: "**x** and **y**", want: "<strong>x</strong> and <strong>y</strong>"},
		{in: "dangling **star", want: "dangling **star"},
		{in: "<b>", want: "&lt;b&gt;"},
		{in: "one\ntwo", want: "one<br>\ntwo"},
	}

	for _, tt := range tests {
		if got := string(emphasis(tt.in)); got != tt.want {
			t.Errorf("emphasis(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestYAML(t *testing.T) {
	r := Build(catalogs.LocalSEO, map[string]bool{"web-indexed": true}, fixedNow)

	out, err := YAML(r)
	if err != nil {
		t.Fatalf("YAML failed: %v", err)
	}

	var decoded struct {
		Catalog   string `yaml:"catalog"`
		Completed int    `yaml:"completed"`
		Total     int    `yaml:"total"`
		Sections  []struct {
			Label string `yaml:"label"`
			Done  int    `yaml:"done"`
		} `yaml:"sections"`
		Trailer []struct {
			Heading string `yaml:"heading"`
		} `yaml:"trailer"`
	}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("failed to decode YAML: %v", err)
	}

	if decoded.Catalog != "local-seo" || decoded.Completed != 1 || decoded.Total != 24 {
		t.Errorf("unexpected header fields: %+v", decoded)
	}
	if len(decoded.Sections) != 6 || decoded.Sections[0].Done != 1 {
		t.Errorf("unexpected sections: %+v", decoded.Sections)
	}
	if len(decoded.Trailer) != 1 || decoded.Trailer[0].Heading != "The Brutal Truth" {
		t.Errorf("unexpected trailer: %+v", decoded.Trailer)
	}
}

func TestFilename(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC
	local := time.Date(2026, 1, 5, 23, 30, 0, 0, time.FixedZone("EST", -5*3600))

	if got := Filename("go-live", local, "md"); got != "go-live-checklist-2026-01-06.md" {
		t.Errorf("unexpected filename %q", got)
	}
	if got := Filename("local-seo", fixedNow, "yaml"); got != "local-seo-checklist-2026-01-05.yaml" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	done := map[string]bool{"seo-sitemap": true}
	a := Markdown(Build(catalogs.GoLive, done, fixedNow))
	b := Markdown(Build(catalogs.GoLive, done, fixedNow))
	if a != b {
		t.Error("expected identical output for identical inputs")
	}
}

// htmlText escapes a title the way html/template does for text nodes.
func htmlText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&#39;", "\"", "&#34;")
	return r.Replace(s)
}
