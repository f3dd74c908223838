package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Artwork is the central record of the collection. Money fields are nullable
// decimals: a missing value means "not appraised", which the reports treat as
// zero for sums and as unknown for percentage deltas.
type Artwork struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"size:255;not null;index"`
	ArtistID    uint    `json:"artistId" gorm:"not null;index"`
	TypeID      uint    `json:"typeId" gorm:"not null;index"`
	LocationID  *uint   `json:"locationId" gorm:"index"`
	Year        *int    `json:"year"`
	Description *string `json:"description" gorm:"type:text"`

	// Physical attributes, centimeters and kilograms.
	HeightCM *float64 `json:"heightCm" gorm:"column:height_cm"`
	WidthCM  *float64 `json:"widthCm" gorm:"column:width_cm"`
	DepthCM  *float64 `json:"depthCm" gorm:"column:depth_cm"`
	WeightKG *float64 `json:"weightKg" gorm:"column:weight_kg"`

	// Provenance and valuation.
	PurchaseDate  *time.Time          `json:"purchaseDate"`
	PurchasePrice decimal.NullDecimal `json:"purchasePrice" gorm:"type:decimal(12,2)"`
	Supplier      *string             `json:"supplier" gorm:"size:255"`
	MarketValue   decimal.NullDecimal `json:"marketValue" gorm:"type:decimal(12,2)"`
	InsuredValue  decimal.NullDecimal `json:"insuredValue" gorm:"type:decimal(12,2)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations. Images and attachments are removed with the artwork; the
	// artist and location are never touched by an artwork delete.
	Artist      *Artist             `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
	Type        *ArtworkType        `json:"type,omitempty" gorm:"foreignKey:TypeID"`
	Location    *Location           `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Images      []ArtworkImage      `json:"images,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
	Attachments []ArtworkAttachment `json:"attachments,omitempty" gorm:"foreignKey:ArtworkID;constraint:OnDelete:CASCADE"`
}

// ArtworkImage holds metadata of an uploaded image file.
type ArtworkImage struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ArtworkID   uint      `json:"artworkId" gorm:"not null;index"`
	Filename    string    `json:"filename" gorm:"size:255;not null"`
	FilePath    string    `json:"filePath" gorm:"size:500;not null"`
	ContentType string    `json:"contentType" gorm:"size:50"`
	Size        int64     `json:"size"`
	IsPrimary   bool      `json:"isPrimary" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

// ArtworkAttachment holds metadata of a document attached to an artwork
// (certificates, invoices, condition reports).
type ArtworkAttachment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ArtworkID   uint      `json:"artworkId" gorm:"not null;index"`
	Filename    string    `json:"filename" gorm:"size:255;not null"`
	FilePath    string    `json:"filePath" gorm:"size:500;not null"`
	ContentType string    `json:"contentType" gorm:"size:50"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}
