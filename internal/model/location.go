package model

import "time"

// Location represents a place where artworks are kept or displayed.
type Location struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Name       string    `json:"name" gorm:"size:255;not null;index"`
	Address    *string   `json:"address" gorm:"size:255"`
	PostalCode *string   `json:"postalCode" gorm:"size:20"`
	City       *string   `json:"city" gorm:"size:100;index"`
	Country    *string   `json:"country" gorm:"size:100"`
	Type       *string   `json:"type" gorm:"size:100"`
	Notes      *string   `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Artworks []Artwork `json:"artworks,omitempty" gorm:"foreignKey:LocationID"`
}
