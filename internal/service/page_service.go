package service

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound  = errors.New("page not found")
	ErrDuplicateSlug = errors.New("slug already in use")
	ErrInvalidSlug   = errors.New("slug must be lowercase kebab-case")
	ErrInvalidStatus = errors.New("status must be draft or published")
	ErrTitleMissing  = errors.New("page title is required")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// SectionDraft describes one section to be attached to a page.
type SectionDraft struct {
	Name    string
	Type    content.Type
	Content map[string]any
}

// PageDraft describes a page to be created, sections in display order.
type PageDraft struct {
	Title    string
	Slug     string
	Status   string
	SEO      db.SEO
	Sections []SectionDraft
}

// PagePatch carries a partial update; nil fields are left untouched.
type PagePatch struct {
	Title  *string
	Slug   *string
	Status *string
	SEO    *db.SEO
}

// PageService is the persistence boundary for pages and their sections.
type PageService struct {
	db *gorm.DB
}

// NewPageService returns a new PageService instance.
func NewPageService(gdb *gorm.DB) *PageService {
	return &PageService{db: gdb}
}

// FindBySlug fetches a page and its sections, ordered for rendering.
// Slug comparison is exact; callers supply canonical slugs.
func (s *PageService) FindBySlug(slug string) (*db.Page, error) {
	var page db.Page
	err := s.db.
		Preload("Sections", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("slug = ?", slug).
		First(&page).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// List returns all pages without their sections, oldest first.
func (s *PageService) List() ([]db.Page, error) {
	var pages []db.Page
	if err := s.db.Order("id ASC").Find(&pages).Error; err != nil {
		return nil, err
	}
	return pages, nil
}

// Count reports how many pages the store holds.
func (s *PageService) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&db.Page{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create persists a page together with its SEO record and sections in one
// transaction. Sections receive positions 0..N-1 in draft order; every
// section payload is validated against its type before any write happens.
func (s *PageService) Create(draft PageDraft) (*db.Page, error) {
	title := strings.TrimSpace(draft.Title)
	if title == "" {
		return nil, ErrTitleMissing
	}
	if !slugPattern.MatchString(draft.Slug) {
		return nil, ErrInvalidSlug
	}
	status := draft.Status
	if status == "" {
		status = db.PageStatusDraft
	}
	if status != db.PageStatusDraft && status != db.PageStatusPublished {
		return nil, ErrInvalidStatus
	}

	sections := make([]db.Section, 0, len(draft.Sections))
	for i, sd := range draft.Sections {
		if err := content.Validate(sd.Type, sd.Content); err != nil {
			return nil, fmt.Errorf("section %d (%s): %w", i, sd.Type, err)
		}
		sections = append(sections, db.Section{
			Name:     sd.Name,
			Type:     string(sd.Type),
			Position: i,
			Content:  sd.Content,
		})
	}

	page := &db.Page{
		Slug:     draft.Slug,
		Title:    title,
		Status:   status,
		SEO:      draft.SEO,
		Sections: sections,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&db.Page{}).Where("slug = ?", draft.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateSlug
		}
		return tx.Create(page).Error
	})
	if err != nil {
		// 并发写入者可能赢得 slug 唯一索引的竞争
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return page, nil
}

// Update applies a partial patch to a page. Sections are not touched.
func (s *PageService) Update(pageID uint, patch PagePatch) (*db.Page, error) {
	var page db.Page
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&page, pageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}

		if patch.Title != nil {
			title := strings.TrimSpace(*patch.Title)
			if title == "" {
				return ErrTitleMissing
			}
			page.Title = title
		}
		if patch.Slug != nil && *patch.Slug != page.Slug {
			if !slugPattern.MatchString(*patch.Slug) {
				return ErrInvalidSlug
			}
			var count int64
			if err := tx.Model(&db.Page{}).
				Where("slug = ? AND id <> ?", *patch.Slug, page.ID).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return ErrDuplicateSlug
			}
			page.Slug = *patch.Slug
		}
		if patch.Status != nil {
			if *patch.Status != db.PageStatusDraft && *patch.Status != db.PageStatusPublished {
				return ErrInvalidStatus
			}
			page.Status = *patch.Status
		}
		if patch.SEO != nil {
			page.SEO = *patch.SEO
		}

		return tx.Save(&page).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return &page, nil
}

// AppendSection validates and attaches a new section to the end of a page's
// rendering sequence.
func (s *PageService) AppendSection(pageID uint, draft SectionDraft) (*db.Section, error) {
	if err := content.Validate(draft.Type, draft.Content); err != nil {
		return nil, err
	}

	section := &db.Section{
		PageID:  pageID,
		Name:    draft.Name,
		Type:    string(draft.Type),
		Content: draft.Content,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var page db.Page
		if err := tx.First(&page, pageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}

		var max sql.NullInt64
		if err := tx.Model(&db.Section{}).
			Where("page_id = ?", pageID).
			Select("MAX(position)").
			Scan(&max).Error; err != nil {
			return err
		}
		if max.Valid {
			section.Position = int(max.Int64) + 1
		}

		return tx.Create(section).Error
	})
	if err != nil {
		return nil, err
	}
	return section, nil
}

// Delete removes a page together with its sections. Rows are purged rather
// than soft-deleted so the slug becomes available again.
func (s *PageService) Delete(pageID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var page db.Page
		if err := tx.First(&page, pageID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}
		if err := tx.Unscoped().Where("page_id = ?", pageID).Delete(&db.Section{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&page).Error
	})
}
