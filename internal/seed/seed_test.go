package seed

import (
	"errors"
	"testing"

	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
	"github.com/hirewise/sitecms/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedTestDB(t *testing.T) (*service.PageService, func()) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Page{}, &db.Section{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	db.DB = gdb

	return service.NewPageService(gdb), func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func homeCatalog() Catalog {
	return Catalog{
		{
			Title: "Home",
			Slug:  "home",
			SEO:   db.SEO{Title: "HireWise"},
			Sections: []SectionEntry{
				{Name: "Hero", Type: content.TypeHero, Content: map[string]any{"heading": "Hire Smarter with AI"}},
			},
		},
	}
}

func TestRunCreatesPagesFromEmptyStore(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	summary, err := Run(pages, homeCatalog(), Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Created != 1 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	page, err := pages.FindBySlug("home")
	if err != nil {
		t.Fatalf("FindBySlug returned error: %v", err)
	}
	if !page.IsPublished() {
		t.Fatalf("expected seeded page to be published, got %s", page.Status)
	}
	if len(page.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(page.Sections))
	}
	sec := page.Sections[0]
	if sec.Type != string(content.TypeHero) || sec.Position != 0 {
		t.Fatalf("unexpected section: type=%s position=%d", sec.Type, sec.Position)
	}
	if heading, _ := sec.Content["heading"].(string); heading != "Hire Smarter with AI" {
		t.Fatalf("unexpected heading: %q", heading)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	if _, err := Run(pages, homeCatalog(), Options{}, zerolog.Nop()); err != nil {
		t.Fatalf("first run returned error: %v", err)
	}

	summary, err := Run(pages, homeCatalog(), Options{Force: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("second run returned error: %v", err)
	}
	if summary.Created != 0 || summary.Skipped != 1 {
		t.Fatalf("expected a pure skip run, got %+v", summary)
	}

	count, err := pages.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 page after rerun, got %d", count)
	}
	var sections int64
	db.DB.Model(&db.Section{}).Count(&sections)
	if sections != 1 {
		t.Fatalf("expected exactly 1 section after rerun, got %d", sections)
	}
}

func TestRunRenamesLegacySlug(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	if _, err := pages.Create(service.PageDraft{
		Title:  "Career",
		Slug:   "career",
		Status: db.PageStatusPublished,
		Sections: []service.SectionDraft{
			{Name: "Old hero", Type: content.TypeHero, Content: map[string]any{"heading": "Join us"}},
		},
	}); err != nil {
		t.Fatalf("failed to seed legacy page: %v", err)
	}

	catalog := Catalog{{
		Title:      "Careers",
		Slug:       "careers",
		LegacySlug: "career",
		Sections: []SectionEntry{
			{Name: "New hero", Type: content.TypeHero, Content: map[string]any{"heading": "Help us fix hiring"}},
		},
	}}

	summary, err := Run(pages, catalog, Options{Force: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Renamed != 1 || summary.Created != 0 {
		t.Fatalf("expected one rename, got %+v", summary)
	}

	if _, err := pages.FindBySlug("career"); !errors.Is(err, service.ErrPageNotFound) {
		t.Fatalf("expected legacy slug to be gone, got %v", err)
	}

	page, err := pages.FindBySlug("careers")
	if err != nil {
		t.Fatalf("FindBySlug returned error: %v", err)
	}
	if page.Title != "Careers" {
		t.Fatalf("expected new title, got %q", page.Title)
	}
	// the legacy page's sections are left untouched by a rename
	if len(page.Sections) != 1 || page.Sections[0].Name != "Old hero" {
		t.Fatalf("expected legacy sections to survive rename, got %+v", page.Sections)
	}

	count, err := pages.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one page after rename, got %d", count)
	}
}

func TestRunContinuesAfterValidationFailure(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	catalog := Catalog{
		homeCatalog()[0],
		{
			Title: "Broken",
			Slug:  "broken",
			Sections: []SectionEntry{
				{Name: "Bad hero", Type: content.TypeHero, Content: map[string]any{"subheading": "no heading"}},
			},
		},
		{
			Title: "About",
			Slug:  "about",
			Sections: []SectionEntry{
				{Name: "Story", Type: content.TypeText, Content: map[string]any{"content": "hello"}},
			},
		},
	}

	summary, err := Run(pages, catalog, Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Created != 2 || summary.Failed != 1 {
		t.Fatalf("expected 2 created and 1 failed, got %+v", summary)
	}

	if _, err := pages.FindBySlug("broken"); !errors.Is(err, service.ErrPageNotFound) {
		t.Fatalf("expected no partial page for failed entry, got %v", err)
	}
	if _, err := pages.FindBySlug("about"); err != nil {
		t.Fatalf("expected later entries to still be created, got %v", err)
	}
}

func TestRunRejectsDuplicateCatalogSlugs(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	catalog := Catalog{homeCatalog()[0], homeCatalog()[0]}
	if _, err := Run(pages, catalog, Options{}, zerolog.Nop()); err == nil {
		t.Fatal("expected error for duplicate catalogue slugs")
	}

	count, err := pages.Count()
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected pre-flight check to run before any write, found %d pages", count)
	}
}

func TestRunRequiresForceOnNonEmptyStore(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	if _, err := pages.Create(service.PageDraft{Title: "Existing", Slug: "existing"}); err != nil {
		t.Fatalf("failed to seed page: %v", err)
	}

	if _, err := Run(pages, homeCatalog(), Options{}, zerolog.Nop()); !errors.Is(err, ErrStoreNotEmpty) {
		t.Fatalf("expected ErrStoreNotEmpty, got %v", err)
	}

	if _, err := Run(pages, homeCatalog(), Options{Force: true}, zerolog.Nop()); err != nil {
		t.Fatalf("expected forced run to proceed, got %v", err)
	}
	if _, err := pages.FindBySlug("home"); err != nil {
		t.Fatalf("expected home page after forced run, got %v", err)
	}
}

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	if err := checkCatalog(catalog); err != nil {
		t.Fatalf("default catalogue declares duplicate slugs: %v", err)
	}
	for _, entry := range catalog {
		for i, sec := range entry.Sections {
			if err := content.Validate(sec.Type, sec.Content); err != nil {
				t.Fatalf("page %q section %d (%s) is invalid: %v", entry.Slug, i, sec.Type, err)
			}
		}
	}
}

func TestDefaultCatalogSeedsEndToEnd(t *testing.T) {
	pages, cleanup := setupSeedTestDB(t)
	defer cleanup()

	summary, err := Run(pages, DefaultCatalog(), Options{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if summary.Created != len(DefaultCatalog()) || summary.Failed != 0 {
		t.Fatalf("expected every catalogue page to be created, got %+v", summary)
	}

	for _, slug := range []string{"home", "product", "pricing", "about", "faq", "contact", "careers"} {
		page, err := pages.FindBySlug(slug)
		if err != nil {
			t.Fatalf("expected page %q to exist: %v", slug, err)
		}
		for i, sec := range page.Sections {
			if sec.Position != i {
				t.Fatalf("page %q has sparse positions: %d at index %d", slug, sec.Position, i)
			}
		}
	}
}
