package service

import (
	"errors"
	"testing"

	"github.com/hirewise/sitecms/internal/db"
)

func TestSubmitContactStoresSubmission(t *testing.T) {
	cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(db.DB)
	submission, err := svc.Submit(ContactDraft{
		Name:     "  Dana Reed  ",
		Email:    "dana@example.com",
		Company:  "Acme",
		Message:  "We'd like a demo for a team of 40.",
		PageSlug: "contact",
	})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if submission.Reference == "" {
		t.Fatal("expected a reference code to be assigned")
	}
	if submission.Name != "Dana Reed" {
		t.Fatalf("expected trimmed name, got %q", submission.Name)
	}

	var count int64
	db.DB.Model(&db.ContactSubmission{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 stored submission, found %d", count)
	}
}

func TestSubmitContactValidatesFields(t *testing.T) {
	cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(db.DB)

	_, err := svc.Submit(ContactDraft{Email: "dana@example.com", Message: "hi"})
	if !errors.Is(err, ErrContactNameMissing) {
		t.Fatalf("expected ErrContactNameMissing, got %v", err)
	}

	_, err = svc.Submit(ContactDraft{Name: "Dana", Email: "not-an-email", Message: "hi"})
	if !errors.Is(err, ErrContactEmailInvalid) {
		t.Fatalf("expected ErrContactEmailInvalid, got %v", err)
	}

	_, err = svc.Submit(ContactDraft{Name: "Dana", Email: "dana@example.com", Message: "  "})
	if !errors.Is(err, ErrContactMessageMissing) {
		t.Fatalf("expected ErrContactMessageMissing, got %v", err)
	}
}

func TestRecentReturnsNewestFirst(t *testing.T) {
	cleanup := setupPageServiceTestDB(t)
	defer cleanup()

	svc := NewContactService(db.DB)
	for _, msg := range []string{"first", "second", "third"} {
		if _, err := svc.Submit(ContactDraft{Name: "Dana", Email: "dana@example.com", Message: msg}); err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
	}

	recent, err := svc.Recent(2)
	if err != nil {
		t.Fatalf("Recent returned error: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(recent))
	}
	if recent[0].Message != "third" {
		t.Fatalf("expected newest submission first, got %q", recent[0].Message)
	}
}
