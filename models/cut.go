package models

import "time"

// Cut style categories used by the catalog screen.
const (
	CategoryStraight = "Liso / Ondulado"
	CategoryCurly    = "Crespo / Cacheado"
	CategoryGeneral  = "Geral"
)

// CutStyle is a hairstyle reference a visitor can point at while booking.
type CutStyle struct {
	ID            string    `gorm:"type:text;primaryKey" json:"id"`
	SiteKey       string    `gorm:"type:text;primaryKey" json:"-"`
	Name          string    `gorm:"type:text;not null" json:"name" binding:"omitempty,max=120"`
	TechnicalName string    `gorm:"type:text" json:"technicalName"`
	Category      string    `gorm:"type:text" json:"category" binding:"omitempty,oneof='Liso / Ondulado' 'Crespo / Cacheado' Geral"`
	ImageURL      string    `gorm:"type:text" json:"imageUrl"`
	Active        bool      `json:"active"`
	Options       []string  `gorm:"type:jsonb;serializer:json" json:"options"`
	SortOrder     int       `gorm:"index" json:"-"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (CutStyle) TableName() string { return "cuts" }

func (c CutStyle) Listed() bool {
	return c.Active && c.Name != ""
}
