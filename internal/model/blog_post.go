package model

import (
	"strings"

	"gorm.io/gorm"
)

type BlogPost struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Slug     string `json:"slug" gorm:"uniqueIndex;not null"`
	Content  string `json:"content" gorm:"type:text;not null"`
	Author   string `json:"author" gorm:"default:'BD Garaj'"`
	ImageURL string `json:"image_url"`
}

// BeforeCreate yazı oluşturulurken slug'ı otomatik oluşturur
func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.Slug == "" {
		slug := SanitizeSlug(p.Title)

		// Slug'ın benzersiz olduğundan emin ol
		var count int64
		tx.Model(&BlogPost{}).Where("slug = ?", slug).Count(&count)
		if count > 0 {
			slug = slug + "-" + p.CreatedAt.Format("20060102150405")
		}

		p.Slug = slug
	}
	return nil
}

// SanitizeSlug başlıktan URL-friendly bir slug üretir.
func SanitizeSlug(title string) string {
	slug := strings.ToLower(strings.ReplaceAll(title, " ", "-"))
	slug = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, slug)
	return slug
}
