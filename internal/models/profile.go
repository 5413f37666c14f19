package models

import (
	"time"

	"gorm.io/gorm"
)

// SocialLinks holds optional social network URLs embedded in a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Profile represents a developer profile. Each user owns at most one profile,
// addressable by its unique handle.
type Profile struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	UserID         uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	User           User   `gorm:"foreignKey:UserID" json:"user"`
	Handle         string `gorm:"size:40;uniqueIndex;not null" json:"handle"`
	Company        string `json:"company,omitempty"`
	Website        string `json:"website,omitempty"`
	Location       string `json:"location,omitempty"`
	Status         string `gorm:"not null" json:"status"`
	// Skills is stored as a JSON array column and replaced wholesale on update.
	Skills         []string       `gorm:"serializer:json" json:"skills"`
	Bio            string         `gorm:"type:text" json:"bio,omitempty"`
	GithubUsername string         `json:"githubusername,omitempty"`
	Social         SocialLinks    `gorm:"embedded;embeddedPrefix:social_" json:"social"`
	Experience     []Experience   `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education    `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// Experience is a work history entry on a profile. Entries are read back
// most-recent-first. Dates travel as YYYY-MM-DD strings; To is empty while
// Current is true.
type Experience struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProfileID   uint      `gorm:"not null;index" json:"-"`
	Title       string    `gorm:"not null" json:"title"`
	Company     string    `gorm:"not null" json:"company"`
	Location    string    `json:"location,omitempty"`
	From        string    `gorm:"size:10;not null" json:"from"`
	To          string    `gorm:"size:10" json:"to,omitempty"`
	Current     bool      `json:"current"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Education is a schooling entry on a profile, read back most-recent-first.
type Education struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ProfileID    uint      `gorm:"not null;index" json:"-"`
	School       string    `gorm:"not null" json:"school"`
	Degree       string    `gorm:"not null" json:"degree"`
	FieldOfStudy string    `gorm:"not null" json:"fieldofstudy"`
	From         string    `gorm:"size:10;not null" json:"from"`
	To           string    `gorm:"size:10" json:"to,omitempty"`
	Current      bool      `json:"current"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
