package models

import "time"

// Pokeball represents a capture device with an effectiveness rating.
// Descriptions are unique.
type Pokeball struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"size:100;not null" json:"name"`
	Effectiveness int       `gorm:"not null" json:"effectiveness"`
	Description   string    `gorm:"size:255;not null;uniqueIndex" json:"description"`
	CreatedAt     time.Time `json:"created_at"`
}
