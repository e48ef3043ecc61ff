package models

import (
	"time"
)

// Like marks that a user liked a post. A post's like list never contains
// two entries with the same user id.
type Like struct {
	UserID uint `json:"user"`
}

// Comment is a comment embedded in a post. Name and Avatar are snapshots of
// the author at comment time and are never refreshed.
type Comment struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"user"`
	Text      string    `json:"text"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"date"`
}

// Post is an aggregate: the post row together with its embedded like and
// comment lists, persisted as a unit. Both lists are ordered
// most-recent-first. Name and Avatar snapshot the author at creation time.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Text      string    `gorm:"not null" json:"text"`
	Likes     []Like    `gorm:"serializer:json" json:"likes"`
	Comments  []Comment `gorm:"serializer:json" json:"comments"`
	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}
