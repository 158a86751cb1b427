package models

import "time"

// Favorite links a user to a favorited entity: a Pokemon or a Pokeball,
// never both. NameKey holds the favorited entity's normalized name; the
// composite unique index on (UserID, NameKey) enforces per-user name
// uniqueness at the storage layer, so two racing requests cannot both
// commit the same favorite.
type Favorite struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_name_key" json:"user_id"`
	PokemonID  *uint     `json:"pokemon_id,omitempty"`
	PokeballID *uint     `json:"pokeball_id,omitempty"`
	NameKey    string    `gorm:"size:120;not null;uniqueIndex:idx_user_name_key" json:"-"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Pokemon  *Pokemon  `gorm:"foreignKey:PokemonID;constraint:OnDelete:CASCADE" json:"pokemon,omitempty"`
	Pokeball *Pokeball `gorm:"foreignKey:PokeballID;constraint:OnDelete:CASCADE" json:"pokeball,omitempty"`
}

// FavoriteSummary is the nested favorite shape inside user responses.
type FavoriteSummary struct {
	PokemonID   uint   `json:"pokemon_id,omitempty"`
	PokemonName string `json:"pokemon_name,omitempty"`
	PokeballID  uint   `json:"pokeball_id,omitempty"`
}

// EntityName resolves the name of the favorited entity, whichever side of
// the link is populated. Requires the relation to be preloaded.
func (f *Favorite) EntityName() string {
	if f.Pokemon != nil {
		return f.Pokemon.Name
	}
	if f.Pokeball != nil {
		return f.Pokeball.Name
	}
	return ""
}

// Summarize returns the flattened favorite for user serialization.
func (f *Favorite) Summarize() FavoriteSummary {
	s := FavoriteSummary{}
	if f.Pokemon != nil {
		s.PokemonID = f.Pokemon.ID
		s.PokemonName = f.Pokemon.Name
	}
	if f.Pokeball != nil {
		s.PokeballID = f.Pokeball.ID
	}
	return s
}
