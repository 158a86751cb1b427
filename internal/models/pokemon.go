package models

import "time"

// Pokemon represents a pokemon entry. The source URL is unique.
type Pokemon struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	URL       string    `gorm:"size:255;not null;uniqueIndex" json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
