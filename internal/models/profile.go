package models

import (
	"time"
)

// Experience is a work-history entry embedded in a profile.
type Experience struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        *time.Time `json:"from"`
	To          *time.Time `json:"to,omitempty"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education is a schooling entry embedded in a profile.
type Education struct {
	ID           string     `json:"id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         *time.Time `json:"from"`
	To           *time.Time `json:"to,omitempty"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// Social holds a profile's optional social media links.
type Social struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

// Profile is an aggregate: one per user, with skills, social links and the
// ordered experience/education lists embedded as JSON columns and persisted
// as a unit. Experience and Education are ordered most-recent-first.
type Profile struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	UserID         uint         `gorm:"uniqueIndex;not null" json:"user"`
	User           User         `gorm:"foreignKey:UserID" json:"user_info,omitempty"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `gorm:"serializer:json" json:"skills"`
	Social         Social       `gorm:"serializer:json" json:"social"`
	Experience     []Experience `gorm:"serializer:json" json:"experience"`
	Education      []Education  `gorm:"serializer:json" json:"education"`
	CreatedAt      time.Time    `json:"date"`
	UpdatedAt      time.Time    `json:"-"`
}
