package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"barbershop-backend/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LocalProvider keeps each collection as one JSON document in redis. It is
// the fallback when no database is configured.
type LocalProvider struct {
	rdb     *redis.Client
	siteKey string
	logger  *zap.Logger
}

func NewLocalProvider(rdb *redis.Client, siteKey string, logger *zap.Logger) *LocalProvider {
	return &LocalProvider{rdb: rdb, siteKey: siteKey, logger: logger}
}

func (p *LocalProvider) key(collection string) string {
	return p.siteKey + ":" + collection
}

func loadDocument[T any](ctx context.Context, p *LocalProvider, collection string, fallback func() T) T {
	raw, err := p.rdb.Get(ctx, p.key(collection)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			p.logger.Warn("local read failed, serving defaults", zap.String("collection", collection), zap.Error(err))
		}
		return fallback()
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		p.logger.Warn("corrupt local document, serving defaults", zap.String("collection", collection), zap.Error(err))
		return fallback()
	}
	return out
}

func storeDocument(ctx context.Context, p *LocalProvider, collection string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}
	if err := p.rdb.Set(ctx, p.key(collection), raw, 0).Err(); err != nil {
		return fmt.Errorf("store %s: %w", collection, err)
	}
	return nil
}

func (p *LocalProvider) GetSettings(ctx context.Context) (models.ShopSettings, error) {
	return loadDocument(ctx, p, "settings", DefaultSettings), nil
}

func (p *LocalProvider) SaveSettings(ctx context.Context, settings models.ShopSettings) error {
	settings.SiteKey = p.siteKey
	return storeDocument(ctx, p, "settings", settings)
}

func (p *LocalProvider) GetServices(ctx context.Context) ([]models.Service, error) {
	return normalizeServices(p.siteKey, loadDocument(ctx, p, "services", DefaultServices)), nil
}

func (p *LocalProvider) SaveServices(ctx context.Context, services []models.Service) error {
	return storeDocument(ctx, p, "services", normalizeServices(p.siteKey, services))
}

func (p *LocalProvider) GetCuts(ctx context.Context) ([]models.CutStyle, error) {
	return normalizeCuts(p.siteKey, loadDocument(ctx, p, "cuts", DefaultCuts)), nil
}

func (p *LocalProvider) SaveCuts(ctx context.Context, cuts []models.CutStyle) error {
	return storeDocument(ctx, p, "cuts", normalizeCuts(p.siteKey, cuts))
}

func (p *LocalProvider) GetProducts(ctx context.Context) ([]models.Product, error) {
	return normalizeProducts(p.siteKey, loadDocument(ctx, p, "products", DefaultProducts)), nil
}

func (p *LocalProvider) SaveProducts(ctx context.Context, products []models.Product) error {
	return storeDocument(ctx, p, "products", normalizeProducts(p.siteKey, products))
}

func (p *LocalProvider) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	empty := func() []models.Testimonial { return []models.Testimonial{} }
	return normalizeTestimonials(p.siteKey, loadDocument(ctx, p, "testimonials", empty)), nil
}

func (p *LocalProvider) SaveTestimonials(ctx context.Context, testimonials []models.Testimonial) error {
	return storeDocument(ctx, p, "testimonials", normalizeTestimonials(p.siteKey, testimonials))
}
