package models

import "time"

// Service is a bookable offering (haircut, beard trim, ...).
type Service struct {
	ID              string    `gorm:"type:text;primaryKey" json:"id"`
	SiteKey         string    `gorm:"type:text;primaryKey" json:"-"`
	Name            string    `gorm:"type:text;not null" json:"name" binding:"omitempty,max=120"`
	Price           int       `gorm:"not null" json:"price" binding:"min=0"`
	DurationMinutes int       `json:"durationMinutes" binding:"min=0"`
	Description     string    `gorm:"type:text" json:"description"`
	Icon            string    `gorm:"type:text" json:"icon"`
	Active          bool      `json:"active"`
	Options         []string  `gorm:"type:jsonb;serializer:json" json:"options"`
	IsChild         bool      `json:"isChild"`
	NotForChildren  bool      `json:"notForChildren"`
	SortOrder       int       `gorm:"index" json:"-"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (Service) TableName() string { return "services" }

// Listed reports whether the row should be shown to visitors.
func (s Service) Listed() bool {
	return s.Active && s.Name != ""
}
