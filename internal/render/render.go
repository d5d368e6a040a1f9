package render

import (
	"bytes"
	"fmt"

	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// Section is a content block prepared for the public renderer, with its
// position exposed as the rendering order.
type Section struct {
	Name    string         `json:"name"`
	Type    content.Type   `json:"type"`
	Order   int            `json:"order"`
	Content map[string]any `json:"content"`
}

// Page is the public view of a page: SEO plus sections in rendering order.
type Page struct {
	Slug     string    `json:"slug"`
	Title    string    `json:"title"`
	SEO      db.SEO    `json:"seo"`
	Sections []Section `json:"sections"`
}

// BuildPage maps a stored page through the per-type renderers. Sections are
// expected in position order, as FindBySlug returns them.
func BuildPage(page *db.Page) (Page, error) {
	out := Page{
		Slug:     page.Slug,
		Title:    page.Title,
		SEO:      page.SEO,
		Sections: make([]Section, 0, len(page.Sections)),
	}
	for i := range page.Sections {
		sec, err := buildSection(&page.Sections[i])
		if err != nil {
			return Page{}, err
		}
		out.Sections = append(out.Sections, sec)
	}
	return out, nil
}

func buildSection(sec *db.Section) (Section, error) {
	t := content.Type(sec.Type)
	out := Section{
		Name:    sec.Name,
		Type:    t,
		Order:   sec.Position,
		Content: sec.Content,
	}

	switch t {
	case content.TypeText, content.TypeTextWithImage:
		// the markdown body goes out as sanitized HTML
		raw, _ := sec.Content["content"].(string)
		rendered, err := Markdown(raw)
		if err != nil {
			return Section{}, fmt.Errorf("render section %d of page %d: %w", sec.Position, sec.PageID, err)
		}
		out.Content = cloneWith(sec.Content, "content", rendered)
	case content.TypeHero, content.TypeFeatures, content.TypeGrid,
		content.TypeCTA, content.TypePricing, content.TypeFAQ, content.TypeContactForm:
		// validated at construction time, passed through as-is
	default:
		return Section{}, fmt.Errorf("section %d of page %d has unknown type %q", sec.Position, sec.PageID, sec.Type)
	}
	return out, nil
}

// Markdown converts markdown to HTML and strips anything the UGC policy
// does not allow.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return sanitizer.Sanitize(buf.String()), nil
}

// cloneWith copies a payload with one key replaced, leaving the stored map
// untouched.
func cloneWith(src map[string]any, key string, value any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		out[k] = v
	}
	out[key] = value
	return out
}
