package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a feed post. Name and Avatar are denormalized from the
// author at creation time so reads never join the users table.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Text      string         `gorm:"type:text;not null" json:"text"`
	Name      string         `json:"name"`
	Avatar    string         `json:"avatar"`
	UserID    uint           `gorm:"not null;index" json:"user"`
	Likes     []Like         `gorm:"foreignKey:PostID" json:"likes"`
	Comments  []Comment      `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Like marks that a user liked a post. The composite unique index backstops
// the double-like check under concurrent requests.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"post_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is a reply on a post, read back most-recent-first. Name and Avatar
// are denormalized from the commenting user.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null" json:"user"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}
