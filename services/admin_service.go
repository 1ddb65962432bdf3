package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"barbershop-backend/models"
	"barbershop-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrAdminNotConfigured = errors.New("admin login not configured")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AdminAuth checks the admin panel password. The account email is fixed by
// configuration. With a database the account lives in admin_users, otherwise
// it is kept in memory.
type AdminAuth struct {
	db      *gorm.DB
	siteKey string
	email   string

	mu     sync.Mutex
	memory *models.AdminUser
}

// NewAdminAuth makes sure the configured admin account exists. An empty
// email or password leaves login disabled.
func NewAdminAuth(ctx context.Context, db *gorm.DB, siteKey, email, password string) (*AdminAuth, error) {
	a := &AdminAuth{db: db, siteKey: siteKey, email: strings.ToLower(strings.TrimSpace(email))}
	if a.email == "" || password == "" {
		return a, nil
	}

	if db == nil {
		hashed, err := utils.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		a.memory = &models.AdminUser{ID: uuid.New(), SiteKey: siteKey, Email: a.email, Password: hashed, CreatedAt: time.Now()}
		return a, nil
	}

	var user models.AdminUser
	err := db.WithContext(ctx).Where("site_key = ? AND email = ?", siteKey, a.email).First(&user).Error
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("look up admin user: %w", err)
	}
	user = models.AdminUser{SiteKey: siteKey, Email: a.email, Password: password}
	if err := db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create admin user: %w", err)
	}
	return a, nil
}

func (a *AdminAuth) Configured() bool {
	return a.email != "" && (a.db != nil || a.memory != nil)
}

func (a *AdminAuth) Email() string { return a.email }

// Authenticate checks password against the configured account and records
// the login time.
func (a *AdminAuth) Authenticate(ctx context.Context, password string) (*models.AdminUser, error) {
	if !a.Configured() {
		return nil, ErrAdminNotConfigured
	}
	now := time.Now()

	if a.db == nil {
		a.mu.Lock()
		defer a.mu.Unlock()
		if !utils.CheckPasswordHash(password, a.memory.Password) {
			return nil, ErrInvalidCredentials
		}
		a.memory.LastLogin = &now
		u := *a.memory
		return &u, nil
	}

	var user models.AdminUser
	err := a.db.WithContext(ctx).Where("site_key = ? AND email = ?", a.siteKey, a.email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("look up admin user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}
	if err := a.db.WithContext(ctx).Model(&user).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	user.LastLogin = &now
	return &user, nil
}
