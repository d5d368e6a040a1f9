package db

import "gorm.io/gorm"

// ContactSubmission stores one submission posted from a CONTACT_FORM section.
type ContactSubmission struct {
	gorm.Model
	Reference string `gorm:"uniqueIndex;not null"`
	PageSlug  string `gorm:"index"`
	Name      string `gorm:"not null"`
	Email     string `gorm:"not null"`
	Company   string
	Message   string `gorm:"type:text"`
}
