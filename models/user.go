package models

import (
	"barbershop-backend/utils"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminUser is the single credential guarding the admin panel. The email is
// fixed by configuration; visitors of the panel only type the password.
type AdminUser struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SiteKey  string    `gorm:"type:text;uniqueIndex:idx_admin_site_email,priority:1;not null" json:"-"`
	Email    string    `gorm:"uniqueIndex:idx_admin_site_email,priority:2;not null" json:"email"`
	Password string    `gorm:"not null" json:"-"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (AdminUser) TableName() string { return "admin_users" }

// Initialize UUID and hash the password before creating
func (u *AdminUser) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
