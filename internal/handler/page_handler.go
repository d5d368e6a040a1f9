package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirewise/sitecms/internal/content"
	"github.com/hirewise/sitecms/internal/db"
	"github.com/hirewise/sitecms/internal/render"
	"github.com/hirewise/sitecms/internal/service"
)

type sectionPayload struct {
	Name    string         `json:"name"`
	Type    string         `json:"type"`
	Content map[string]any `json:"content"`
}

type pagePayload struct {
	Title    string           `json:"title"`
	Slug     string           `json:"slug"`
	Status   string           `json:"status"`
	SEO      db.SEO           `json:"seo"`
	Sections []sectionPayload `json:"sections"`
}

type pagePatchPayload struct {
	Title  *string `json:"title"`
	Slug   *string `json:"slug"`
	Status *string `json:"status"`
	SEO    *db.SEO `json:"seo"`
}

// ShowPage serves a published page with its sections rendered in order.
func (a *API) ShowPage(c *gin.Context) {
	slug := c.Param("slug")

	page, err := a.pages.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			respondError(c, http.StatusNotFound, "page not found")
			return
		}
		a.log.Error().Err(err).Str("slug", slug).Msg("page lookup failed")
		respondError(c, http.StatusInternalServerError, "failed to load page")
		return
	}
	if !page.IsPublished() {
		respondError(c, http.StatusNotFound, "page not found")
		return
	}

	view, err := render.BuildPage(page)
	if err != nil {
		a.log.Error().Err(err).Str("slug", slug).Msg("page rendering failed")
		respondError(c, http.StatusInternalServerError, "failed to render page")
		return
	}

	c.JSON(http.StatusOK, view)
}

// ListPages returns every page without sections, for the editor index.
func (a *API) ListPages(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.log.Error().Err(err).Msg("page listing failed")
		respondError(c, http.StatusInternalServerError, "failed to list pages")
		return
	}

	items := make([]gin.H, 0, len(pages))
	for i := range pages {
		items = append(items, pageSummary(&pages[i]))
	}
	c.JSON(http.StatusOK, gin.H{"pages": items})
}

// CreatePage creates a page with its sections and SEO record as one unit.
func (a *API) CreatePage(c *gin.Context) {
	var payload pagePayload
	if !bindJSON(c, &payload, "invalid page payload") {
		return
	}

	draft := service.PageDraft{
		Title:  payload.Title,
		Slug:   payload.Slug,
		Status: payload.Status,
		SEO:    payload.SEO,
	}
	for _, sec := range payload.Sections {
		draft.Sections = append(draft.Sections, service.SectionDraft{
			Name:    sec.Name,
			Type:    content.Type(sec.Type),
			Content: sec.Content,
		})
	}

	page, err := a.pages.Create(draft)
	if err != nil {
		a.respondPageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pageSummary(page))
}

// UpdatePage applies a partial patch to a page's title, slug, status or SEO.
func (a *API) UpdatePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid page id")
		return
	}

	var payload pagePatchPayload
	if !bindJSON(c, &payload, "invalid patch payload") {
		return
	}

	page, err := a.pages.Update(id, service.PagePatch{
		Title:  payload.Title,
		Slug:   payload.Slug,
		Status: payload.Status,
		SEO:    payload.SEO,
	})
	if err != nil {
		a.respondPageError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageSummary(page))
}

// DeletePage removes a page together with its sections.
func (a *API) DeletePage(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid page id")
		return
	}

	if err := a.pages.Delete(id); err != nil {
		a.respondPageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AppendSection adds a section to the end of a page's rendering sequence.
func (a *API) AppendSection(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid page id")
		return
	}

	var payload sectionPayload
	if !bindJSON(c, &payload, "invalid section payload") {
		return
	}

	section, err := a.pages.AppendSection(id, service.SectionDraft{
		Name:    payload.Name,
		Type:    content.Type(payload.Type),
		Content: payload.Content,
	})
	if err != nil {
		a.respondPageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":    section.ID,
		"name":  section.Name,
		"type":  section.Type,
		"order": section.Position,
	})
}

func (a *API) respondPageError(c *gin.Context, err error) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Error())
	case errors.Is(err, service.ErrPageNotFound):
		respondError(c, http.StatusNotFound, "page not found")
	case errors.Is(err, service.ErrDuplicateSlug):
		respondError(c, http.StatusConflict, "slug already in use")
	case errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrTitleMissing):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.log.Error().Err(err).Msg("page operation failed")
		respondError(c, http.StatusInternalServerError, "operation failed")
	}
}

func pageSummary(page *db.Page) gin.H {
	return gin.H{
		"id":     page.ID,
		"title":  page.Title,
		"slug":   page.Slug,
		"status": page.Status,
		"seo":    page.SEO,
	}
}
