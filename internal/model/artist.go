package model

import "time"

// Artist represents a maker of artworks in the collection.
type Artist struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"size:255;not null;index"`
	Email     *string    `json:"email" gorm:"size:255"`
	Phone     *string    `json:"phone" gorm:"size:50"`
	Website   *string    `json:"website" gorm:"size:255"`
	Biography *string    `json:"biography" gorm:"type:text"`
	Country   *string    `json:"country" gorm:"size:100;index"`
	City      *string    `json:"city" gorm:"size:100"`
	BirthDate *time.Time `json:"birthDate"`
	DeathDate *time.Time `json:"deathDate"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Relations
	Artworks []Artwork `json:"artworks,omitempty" gorm:"foreignKey:ArtistID"`
}
