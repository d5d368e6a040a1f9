package db

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// Page statuses.
const (
	PageStatusDraft     = "draft"
	PageStatusPublished = "published"
)

// SEO carries the per-page metadata rendered into the document head.
// It lives embedded in the page row and shares its lifetime.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Page is a routable marketing page composed of ordered sections.
type Page struct {
	gorm.Model
	Slug     string    `gorm:"uniqueIndex;not null"`
	Title    string    `gorm:"not null"`
	Status   string    `gorm:"not null;default:draft"`
	SEO      SEO       `gorm:"embedded;embeddedPrefix:seo_"`
	Sections []Section `gorm:"constraint:OnDelete:CASCADE"`
}

// IsPublished reports whether the page is publicly visible.
func (p *Page) IsPublished() bool {
	return p.Status == PageStatusPublished
}

// Section is one typed content block owned by exactly one page.
// Position values are dense and zero-based within a page.
type Section struct {
	gorm.Model
	PageID   uint   `gorm:"not null;index"`
	Name     string
	Type     string  `gorm:"not null"`
	Position int     `gorm:"not null"`
	Content  JSONMap `gorm:"type:text"`
}

// JSONMap stores a schemaless JSON document in a text column.
type JSONMap map[string]any

// Value implements driver.Valuer.
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner.
func (m *JSONMap) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*m = nil
		return nil
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("unsupported source type for JSONMap")
	}
}
