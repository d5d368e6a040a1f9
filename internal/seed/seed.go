package seed

import (
	"errors"
	"fmt"

	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
	"github.com/hirewise/sitecms/internal/service"
	"github.com/rs/zerolog"
)

// ErrStoreNotEmpty is returned when the store already holds pages and the
// caller did not ask for reconciliation.
var ErrStoreNotEmpty = errors.New("store already contains pages; set Force to reconcile")

// Options controls a single ingestion run.
type Options struct {
	// Force allows running against a non-empty store. It replaces the
	// interactive confirmation a batch tool must not block on.
	Force bool
}

// Summary counts the per-page outcomes of one run.
type Summary struct {
	Created int
	Renamed int
	Skipped int
	Failed  int
}

// Run reconciles the catalogue against the store in declaration order.
// It is idempotent: entries whose slug already exists are skipped, entries
// with a legacy slug still present are renamed in place, the rest are
// created as published pages with dense section positions.
//
// A rejected section payload aborts only that entry's page (nothing of it
// is persisted) and the run continues; any other store error is fatal.
func Run(pages *service.PageService, catalog Catalog, opts Options, log zerolog.Logger) (Summary, error) {
	var summary Summary

	if err := checkCatalog(catalog); err != nil {
		return summary, err
	}

	if !opts.Force {
		count, err := pages.Count()
		if err != nil {
			return summary, fmt.Errorf("count pages: %w", err)
		}
		if count > 0 {
			return summary, ErrStoreNotEmpty
		}
	}

	for _, entry := range catalog {
		outcome, err := reconcile(pages, entry, log)
		if err != nil {
			return summary, err
		}
		switch outcome {
		case outcomeCreated:
			summary.Created++
		case outcomeRenamed:
			summary.Renamed++
		case outcomeSkipped:
			summary.Skipped++
		case outcomeFailed:
			summary.Failed++
		}
	}

	log.Info().
		Int("created", summary.Created).
		Int("renamed", summary.Renamed).
		Int("skipped", summary.Skipped).
		Int("failed", summary.Failed).
		Msg("ingestion finished")

	return summary, nil
}

type outcome int

const (
	outcomeCreated outcome = iota
	outcomeRenamed
	outcomeSkipped
	outcomeFailed
)

func reconcile(pages *service.PageService, entry PageEntry, log zerolog.Logger) (outcome, error) {
	_, err := pages.FindBySlug(entry.Slug)
	if err == nil {
		log.Info().Str("slug", entry.Slug).Msg("page already exists, skipping")
		return outcomeSkipped, nil
	}
	if !errors.Is(err, service.ErrPageNotFound) {
		return 0, fmt.Errorf("lookup %q: %w", entry.Slug, err)
	}

	if entry.LegacySlug != "" {
		legacy, err := pages.FindBySlug(entry.LegacySlug)
		switch {
		case err == nil:
			return rename(pages, legacy.ID, entry, log)
		case !errors.Is(err, service.ErrPageNotFound):
			return 0, fmt.Errorf("lookup legacy %q: %w", entry.LegacySlug, err)
		}
	}

	return create(pages, entry, log)
}

// rename moves a legacy page onto its new slug and title; its sections and
// SEO record are left untouched.
func rename(pages *service.PageService, legacyID uint, entry PageEntry, log zerolog.Logger) (outcome, error) {
	_, err := pages.Update(legacyID, service.PagePatch{
		Title: &entry.Title,
		Slug:  &entry.Slug,
	})
	if err != nil {
		if errors.Is(err, service.ErrDuplicateSlug) {
			// lost a race against another run; desired slug exists now
			log.Info().Str("slug", entry.Slug).Msg("page already exists, skipping")
			return outcomeSkipped, nil
		}
		return 0, fmt.Errorf("rename %q to %q: %w", entry.LegacySlug, entry.Slug, err)
	}
	log.Info().
		Str("from", entry.LegacySlug).
		Str("to", entry.Slug).
		Msg("renamed legacy page")
	return outcomeRenamed, nil
}

func create(pages *service.PageService, entry PageEntry, log zerolog.Logger) (outcome, error) {
	draft := service.PageDraft{
		Title:  entry.Title,
		Slug:   entry.Slug,
		Status: db.PageStatusPublished,
		SEO:    entry.SEO,
	}
	for _, sec := range entry.Sections {
		draft.Sections = append(draft.Sections, service.SectionDraft{
			Name:    sec.Name,
			Type:    sec.Type,
			Content: sec.Content,
		})
	}

	if _, err := pages.Create(draft); err != nil {
		var verr *content.ValidationError
		switch {
		case errors.As(err, &verr):
			log.Error().
				Str("slug", entry.Slug).
				Str("field", verr.Field).
				Str("reason", verr.Message).
				Msg("section content rejected, page not created")
			return outcomeFailed, nil
		case errors.Is(err, service.ErrDuplicateSlug):
			// a concurrent run created the page between lookup and write
			log.Info().Str("slug", entry.Slug).Msg("page already exists, skipping")
			return outcomeSkipped, nil
		default:
			return 0, fmt.Errorf("create %q: %w", entry.Slug, err)
		}
	}

	log.Info().
		Str("slug", entry.Slug).
		Int("sections", len(entry.Sections)).
		Msg("created page")
	return outcomeCreated, nil
}
