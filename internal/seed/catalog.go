package seed

import (
	"fmt"

	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
)

// SectionEntry describes one desired section of a catalogue page.
type SectionEntry struct {
	Name    string
	Type    content.Type
	Content map[string]any
}

// PageEntry describes one desired page, sections in display order.
// LegacySlug names an earlier slug this page supersedes; when a page still
// exists under it and none under Slug, ingestion renames it in place.
type PageEntry struct {
	Title      string
	Slug       string
	LegacySlug string
	SEO        db.SEO
	Sections   []SectionEntry
}

// Catalog is the declarative desired state reconciled against the store.
type Catalog []PageEntry

// checkCatalog rejects a catalogue that declares the same slug twice,
// before any write happens.
func checkCatalog(catalog Catalog) error {
	seen := make(map[string]bool, len(catalog))
	for _, entry := range catalog {
		if seen[entry.Slug] {
			return fmt.Errorf("catalogue declares slug %q more than once", entry.Slug)
		}
		seen[entry.Slug] = true
	}
	return nil
}
