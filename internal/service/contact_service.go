package service

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/hirewise/sitecms/internal/db"
	"gorm.io/gorm"
)

var (
	ErrContactNameMissing    = errors.New("contact name is required")
	ErrContactEmailInvalid   = errors.New("a valid email address is required")
	ErrContactMessageMissing = errors.New("contact message is required")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ContactDraft carries one contact-form submission.
type ContactDraft struct {
	Name     string
	Email    string
	Company  string
	Message  string
	PageSlug string
}

// ContactService persists submissions posted from CONTACT_FORM sections.
type ContactService struct {
	db *gorm.DB
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Submit validates and stores a submission, assigning it an opaque
// reference code the caller can quote back to support.
func (s *ContactService) Submit(draft ContactDraft) (*db.ContactSubmission, error) {
	name := strings.TrimSpace(draft.Name)
	if name == "" {
		return nil, ErrContactNameMissing
	}
	email := strings.TrimSpace(draft.Email)
	if !emailPattern.MatchString(email) {
		return nil, ErrContactEmailInvalid
	}
	message := strings.TrimSpace(draft.Message)
	if message == "" {
		return nil, ErrContactMessageMissing
	}

	submission := &db.ContactSubmission{
		Reference: uuid.NewString(),
		PageSlug:  strings.TrimSpace(draft.PageSlug),
		Name:      name,
		Email:     email,
		Company:   strings.TrimSpace(draft.Company),
		Message:   message,
	}
	if err := s.db.Create(submission).Error; err != nil {
		return nil, err
	}
	return submission, nil
}

// Recent returns the latest submissions, newest first.
func (s *ContactService) Recent(limit int) ([]db.ContactSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	var submissions []db.ContactSubmission
	if err := s.db.Order("id DESC").Limit(limit).Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
