package catalogs

import (
	"strings"
	"testing"
	"time"
)

func TestCatalogs_Shape(t *testing.T) {
	tests := []struct {
		slug       string
		tasks      int
		categories int
		storageKey string
	}{
		{slug: "go-live", tasks: 24, categories: 4, storageKey: GoLiveStorageKey},
		{slug: "local-seo", tasks: 24, categories: 6, storageKey: LocalSEOStorageKey},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			c, err := Lookup(tt.slug)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if c.Len() != tt.tasks {
				t.Errorf("expected %d tasks, got %d", tt.tasks, c.Len())
			}
			if got := len(c.Categories()); got != tt.categories {
				t.Errorf("expected %d categories, got %d", tt.categories, got)
			}
			if c.StorageKey != tt.storageKey {
				t.Errorf("expected storage key %s, got %s", tt.storageKey, c.StorageKey)
			}
			for _, task := range c.Tasks() {
				if task.Title == "" || task.Description == "" || task.Prompt == "" {
					t.Errorf("task %s has empty text fields", task.ID)
				}
			}
		})
	}
}

func TestCatalogs_IndependentStorageKeys(t *testing.T) {
	seen := map[string]string{}
	for _, c := range All() {
		if other, ok := seen[c.StorageKey]; ok {
			t.Errorf("catalogs %s and %s share storage key %s", c.Slug, other, c.StorageKey)
		}
		seen[c.StorageKey] = c.Slug
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	c, err := Lookup("GO-LIVE")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if c != GoLive {
		t.Error("expected GoLive catalog")
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("nope")
	if err == nil {
		t.Fatal("expected error for unknown catalog")
	}
	if !strings.Contains(err.Error(), "go-live") {
		t.Errorf("expected error to list available catalogs, got %q", err.Error())
	}
}

func TestLocalSEOTrailer(t *testing.T) {
	now := time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC)

	blocks := LocalSEO.Trailer(now)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 trailer block, got %d", len(blocks))
	}
	if blocks[0].Heading != "The Brutal Truth" {
		t.Errorf("unexpected heading %q", blocks[0].Heading)
	}

	dates := blocks[0].Paragraphs[2]
	if !strings.Contains(dates, "Launch date: 1/5/2026") {
		t.Errorf("expected launch date 1/5/2026, got %q", dates)
	}
	// 180 days after Jan 5, 2026
	if !strings.Contains(dates, "6-month review date: 7/4/2026") {
		t.Errorf("expected review date 7/4/2026, got %q", dates)
	}
}

func TestGoLive_HasNoTrailer(t *testing.T) {
	if GoLive.Trailer(time.Now()) != nil {
		t.Error("expected no trailer for go-live")
	}
}
