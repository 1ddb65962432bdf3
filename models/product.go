package models

import "time"

// Product is a retail item sold alongside a booking.
type Product struct {
	ID             string    `gorm:"type:text;primaryKey" json:"id"`
	SiteKey        string    `gorm:"type:text;primaryKey" json:"-"`
	Name           string    `gorm:"type:text;not null" json:"name" binding:"omitempty,max=120"`
	Description    string    `gorm:"type:text" json:"description"`
	Price          int       `gorm:"not null" json:"price" binding:"min=0"`
	ImageURL       string    `gorm:"type:text" json:"imageUrl"`
	Active         bool      `json:"active"`
	Options        []string  `gorm:"type:jsonb;serializer:json" json:"options"`
	NotForChildren bool      `json:"notForChildren"`
	SortOrder      int       `gorm:"index" json:"-"`
	CreatedAt      time.Time `json:"-"`
	UpdatedAt      time.Time `json:"-"`
}

func (Product) TableName() string { return "products" }

func (p Product) Listed() bool {
	return p.Active && p.Name != ""
}
