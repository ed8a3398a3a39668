package model

import "gorm.io/gorm"

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusRejected CommentStatus = "rejected"
)

func ValidCommentStatus(s CommentStatus) bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusRejected:
		return true
	}
	return false
}

// Comment müşteri değerlendirmesi; admin onayından geçene kadar public
// listede görünmez. ServiceID zayıf referanstır, hizmet silinirse yorum kalır.
type Comment struct {
	gorm.Model
	UserName    string        `json:"user_name" gorm:"not null"`
	UserEmail   string        `json:"user_email" gorm:"not null"`
	ServiceID   uint          `json:"service_id" gorm:"index"`
	Rating      int           `json:"rating" gorm:"not null"` // 1-5
	CommentText string        `json:"comment_text" gorm:"type:text;not null"`
	Status      CommentStatus `json:"status" gorm:"default:'pending';index"`
}
