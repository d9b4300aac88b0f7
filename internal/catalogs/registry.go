// Package catalogs holds the compiled-in checklist catalogs.
package catalogs

import (
	"fmt"
	"strings"

	"github.com/example/launchlist/internal/models"
)

// All returns every catalog in display order.
func All() []*models.Catalog {
	return []*models.Catalog{GoLive, LocalSEO}
}

// Lookup finds a catalog by slug (case-insensitive).
func Lookup(slug string) (*models.Catalog, error) {
	for _, c := range All() {
		if strings.EqualFold(c.Slug, slug) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("catalog %q not found (available: %s)", slug, strings.Join(Slugs(), ", "))
}

// Slugs returns the slugs of all catalogs.
func Slugs() []string {
	all := All()
	slugs := make([]string, len(all))
	for i, c := range all {
		slugs[i] = c.Slug
	}
	return slugs
}
