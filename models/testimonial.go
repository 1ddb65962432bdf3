package models

import "time"

type Testimonial struct {
	ID         string    `gorm:"type:text;primaryKey" json:"id"`
	SiteKey    string    `gorm:"type:text;primaryKey" json:"-"`
	ClientName string    `gorm:"type:text" json:"clientName"`
	Comment    string    `gorm:"type:text" json:"comment"`
	Rating     int       `json:"rating" binding:"min=0,max=5"` // 1 to 5, 0 means unset
	Active     bool      `json:"active"`
	SortOrder  int       `gorm:"index" json:"-"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

func (Testimonial) TableName() string { return "testimonials" }

func (t Testimonial) Listed() bool {
	return t.Active && t.ClientName != ""
}
