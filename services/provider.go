// services/provider.go
package services

import (
	"context"
	"fmt"
	"strings"

	"barbershop-backend/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// Provider is the data gateway every screen reads from and the admin panel
// writes to. Get* return whole collections, inactive and blank rows included.
type Provider interface {
	GetSettings(ctx context.Context) (models.ShopSettings, error)
	SaveSettings(ctx context.Context, settings models.ShopSettings) error

	GetServices(ctx context.Context) ([]models.Service, error)
	SaveServices(ctx context.Context, services []models.Service) error

	GetCuts(ctx context.Context) ([]models.CutStyle, error)
	SaveCuts(ctx context.Context, cuts []models.CutStyle) error

	GetProducts(ctx context.Context) ([]models.Product, error)
	SaveProducts(ctx context.Context, products []models.Product) error

	GetTestimonials(ctx context.Context) ([]models.Testimonial, error)
	SaveTestimonials(ctx context.Context, testimonials []models.Testimonial) error
}

// NewProvider picks the backend for mode. Remote mode without a database
// falls back to the local provider.
func NewProvider(mode, siteKey string, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) (Provider, error) {
	switch mode {
	case ModeRemote, "":
		if db != nil {
			return NewGormProvider(db, siteKey, logger), nil
		}
		logger.Warn("remote provider selected but DB_URL is not set, falling back to local provider")
		fallthrough
	case ModeLocal:
		if rdb == nil {
			return nil, fmt.Errorf("local provider needs REDIS_URL")
		}
		return NewLocalProvider(rdb, siteKey, logger), nil
	default:
		return nil, fmt.Errorf("unknown provider mode: %s", mode)
	}
}

func ensureID(id string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return uuid.NewString()
}

func safeOptions(options []string) []string {
	if options == nil {
		return []string{}
	}
	return options
}

// normalize* stamp site key, ids and list order on rows before they are
// written, and fill the fields a blank admin row leaves empty.

func normalizeServices(siteKey string, in []models.Service) []models.Service {
	out := make([]models.Service, len(in))
	for i, s := range in {
		s.ID = ensureID(s.ID)
		s.SiteKey = siteKey
		s.SortOrder = i
		s.Options = safeOptions(s.Options)
		if s.DurationMinutes <= 0 {
			s.DurationMinutes = 30
		}
		if s.Icon == "" {
			s.Icon = "default"
		}
		out[i] = s
	}
	return out
}

func normalizeCuts(siteKey string, in []models.CutStyle) []models.CutStyle {
	out := make([]models.CutStyle, len(in))
	for i, c := range in {
		c.ID = ensureID(c.ID)
		c.SiteKey = siteKey
		c.SortOrder = i
		c.Options = safeOptions(c.Options)
		if c.Category == "" {
			c.Category = models.CategoryGeneral
		}
		out[i] = c
	}
	return out
}

func normalizeProducts(siteKey string, in []models.Product) []models.Product {
	out := make([]models.Product, len(in))
	for i, p := range in {
		p.ID = ensureID(p.ID)
		p.SiteKey = siteKey
		p.SortOrder = i
		p.Options = safeOptions(p.Options)
		out[i] = p
	}
	return out
}

func normalizeTestimonials(siteKey string, in []models.Testimonial) []models.Testimonial {
	out := make([]models.Testimonial, len(in))
	for i, t := range in {
		t.ID = ensureID(t.ID)
		t.SiteKey = siteKey
		t.SortOrder = i
		if t.Rating == 0 {
			t.Rating = 5
		}
		out[i] = t
	}
	return out
}

// missingIDs returns the existing ids absent from incoming. Those rows get
// soft-disabled instead of deleted.
func missingIDs(existing, incoming []string) []string {
	keep := make(map[string]struct{}, len(incoming))
	for _, id := range incoming {
		keep[id] = struct{}{}
	}
	var out []string
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}
