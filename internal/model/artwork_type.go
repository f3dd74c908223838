package model

import "time"

// ArtworkType classifies artworks (schilderij, sculptuur, ...). Names are
// unique ignoring case; the MySQL utf8mb4 collation makes the unique index
// case-insensitive, so the index is the race-proof backstop behind the
// friendlier duplicate check in the service layer.
type ArtworkType struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:100;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
