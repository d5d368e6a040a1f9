package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirewise/sitecms/internal/service"
)

type contactPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Message  string `json:"message"`
	PageSlug string `json:"pageSlug"`
}

// SubmitContact accepts a submission from a CONTACT_FORM section.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactPayload
	if !bindJSON(c, &payload, "invalid contact payload") {
		return
	}

	submission, err := a.contacts.Submit(service.ContactDraft{
		Name:     payload.Name,
		Email:    payload.Email,
		Company:  payload.Company,
		Message:  payload.Message,
		PageSlug: payload.PageSlug,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContactNameMissing),
			errors.Is(err, service.ErrContactEmailInvalid),
			errors.Is(err, service.ErrContactMessageMissing):
			respondError(c, http.StatusBadRequest, err.Error())
		default:
			a.log.Error().Err(err).Msg("contact submission failed")
			respondError(c, http.StatusInternalServerError, "failed to store submission")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"reference": submission.Reference})
}

// ListContacts returns recent submissions for the editor surface.
func (a *API) ListContacts(c *gin.Context) {
	submissions, err := a.contacts.Recent(50)
	if err != nil {
		a.log.Error().Err(err).Msg("contact listing failed")
		respondError(c, http.StatusInternalServerError, "failed to list submissions")
		return
	}

	items := make([]gin.H, 0, len(submissions))
	for _, sub := range submissions {
		items = append(items, gin.H{
			"reference": sub.Reference,
			"pageSlug":  sub.PageSlug,
			"name":      sub.Name,
			"email":     sub.Email,
			"company":   sub.Company,
			"message":   sub.Message,
			"createdAt": sub.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"submissions": items})
}
