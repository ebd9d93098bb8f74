package model

import "time"

// Listing is a lost/found item record. The row never changes after creation;
// the optional PNG lives in the image store under "<id>.png", not in a column.
type Listing struct {
	ID           string    `json:"uuid" gorm:"primaryKey;type:varchar(36)"`
	Type         string    `json:"type" gorm:"type:varchar(32);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"index:idx_listing_created;not null"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null"`
	Description  string    `json:"description" gorm:"type:text;not null"`
	Room         string    `json:"room" gorm:"type:varchar(128);index:idx_listing_scope;not null"`
	Category     string    `json:"category" gorm:"type:varchar(128);index:idx_listing_scope;not null"`
	ContactEmail *string   `json:"contact_email" gorm:"type:varchar(255)"`
}

func (Listing) TableName() string { return "listings" }

// ListingWithImage is the read shape: the row plus its image as a
// "data:image/png;base64,..." data URL, or null if absent.
type ListingWithImage struct {
	Listing
	B64Image *string `json:"b64_image"`
}
