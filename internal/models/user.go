// Package models defines the database entities and shared error types.
package models

import "time"

// User represents a trainer account. Names are unique across all users.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Favoritos []Favorite `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"favoritos"`
}

// UserSummary is the wire shape for a user with their favorites resolved to
// pokemon id/name pairs.
type UserSummary struct {
	ID        uint              `json:"id"`
	Name      string            `json:"name"`
	Favoritos []FavoriteSummary `json:"favoritos"`
}

// Summarize flattens the user's preloaded favorites for serialization.
func (u *User) Summarize() UserSummary {
	out := UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Favoritos: make([]FavoriteSummary, 0, len(u.Favoritos)),
	}
	for _, f := range u.Favoritos {
		out.Favoritos = append(out.Favoritos, f.Summarize())
	}
	return out
}
