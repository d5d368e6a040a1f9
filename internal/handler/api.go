package handler

import (
	"github.com/hirewise/sitecms/internal/service"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	pages    *service.PageService
	contacts *service.ContactService
	log      zerolog.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, log zerolog.Logger) *API {
	return &API{
		pages:    service.NewPageService(gdb),
		contacts: service.NewContactService(gdb),
		log:      log,
	}
}
