// services/gorm_provider.go
package services

import (
	"context"
	"errors"
	"fmt"

	"barbershop-backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProvider keeps the catalog in postgres tables scoped by site key.
type GormProvider struct {
	db      *gorm.DB
	siteKey string
	logger  *zap.Logger
}

func NewGormProvider(db *gorm.DB, siteKey string, logger *zap.Logger) *GormProvider {
	return &GormProvider{db: db, siteKey: siteKey, logger: logger}
}

func (p *GormProvider) scoped(ctx context.Context) *gorm.DB {
	return p.db.WithContext(ctx).
		Where("site_key = ?", p.siteKey).
		Order("sort_order ASC NULLS LAST").
		Order("created_at ASC")
}

func (p *GormProvider) GetSettings(ctx context.Context) (models.ShopSettings, error) {
	var s models.ShopSettings
	err := p.db.WithContext(ctx).Where("site_key = ?", p.siteKey).First(&s).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			p.logger.Warn("getSettings failed, serving defaults", zap.Error(err))
		}
		return DefaultSettings(), nil
	}
	return s, nil
}

func (p *GormProvider) SaveSettings(ctx context.Context, settings models.ShopSettings) error {
	settings.SiteKey = p.siteKey
	err := p.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "site_key"}}, UpdateAll: true}).
		Create(&settings).Error
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func (p *GormProvider) GetServices(ctx context.Context) ([]models.Service, error) {
	var rows []models.Service
	if err := p.scoped(ctx).Find(&rows).Error; err != nil {
		p.logger.Warn("getServices failed, serving defaults", zap.Error(err))
		return DefaultServices(), nil
	}
	return normalizeServices(p.siteKey, rows), nil
}

func (p *GormProvider) SaveServices(ctx context.Context, services []models.Service) error {
	rows := normalizeServices(p.siteKey, services)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return upsertSafe(ctx, p.db, p.siteKey, &models.Service{}, rows, ids)
}

func (p *GormProvider) GetCuts(ctx context.Context) ([]models.CutStyle, error) {
	var rows []models.CutStyle
	if err := p.scoped(ctx).Find(&rows).Error; err != nil {
		p.logger.Warn("getCuts failed, serving defaults", zap.Error(err))
		return DefaultCuts(), nil
	}
	return normalizeCuts(p.siteKey, rows), nil
}

func (p *GormProvider) SaveCuts(ctx context.Context, cuts []models.CutStyle) error {
	rows := normalizeCuts(p.siteKey, cuts)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return upsertSafe(ctx, p.db, p.siteKey, &models.CutStyle{}, rows, ids)
}

func (p *GormProvider) GetProducts(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	if err := p.scoped(ctx).Find(&rows).Error; err != nil {
		p.logger.Warn("getProducts failed, serving defaults", zap.Error(err))
		return DefaultProducts(), nil
	}
	return normalizeProducts(p.siteKey, rows), nil
}

func (p *GormProvider) SaveProducts(ctx context.Context, products []models.Product) error {
	rows := normalizeProducts(p.siteKey, products)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return upsertSafe(ctx, p.db, p.siteKey, &models.Product{}, rows, ids)
}

func (p *GormProvider) GetTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var rows []models.Testimonial
	if err := p.scoped(ctx).Find(&rows).Error; err != nil {
		p.logger.Warn("getTestimonials failed", zap.Error(err))
		return []models.Testimonial{}, nil
	}
	return normalizeTestimonials(p.siteKey, rows), nil
}

func (p *GormProvider) SaveTestimonials(ctx context.Context, testimonials []models.Testimonial) error {
	rows := normalizeTestimonials(p.siteKey, testimonials)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return upsertSafe(ctx, p.db, p.siteKey, &models.Testimonial{}, rows, ids)
}

// SeedDefaults writes the default content when the site has no settings row
// yet, so a fresh install has something to show.
func (p *GormProvider) SeedDefaults(ctx context.Context) error {
	var count int64
	if err := p.db.WithContext(ctx).Model(&models.ShopSettings{}).Where("site_key = ?", p.siteKey).Count(&count).Error; err != nil {
		return fmt.Errorf("count settings: %w", err)
	}
	if count > 0 {
		return nil
	}
	p.logger.Info("seeding default content", zap.String("site_key", p.siteKey))
	if err := p.SaveSettings(ctx, DefaultSettings()); err != nil {
		return err
	}
	if err := p.SaveServices(ctx, DefaultServices()); err != nil {
		return err
	}
	if err := p.SaveCuts(ctx, DefaultCuts()); err != nil {
		return err
	}
	return p.SaveProducts(ctx, DefaultProducts())
}

// upsertSafe never hard-deletes: rows missing from the incoming list are
// set inactive, then the list is upserted on (site_key, id).
func upsertSafe[T any](ctx context.Context, db *gorm.DB, siteKey string, model any, rows []T, ids []string) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []string
		if err := tx.Model(model).Where("site_key = ?", siteKey).Pluck("id", &existing).Error; err != nil {
			return fmt.Errorf("list existing ids: %w", err)
		}
		if stale := missingIDs(existing, ids); len(stale) > 0 {
			if err := tx.Model(model).Where("site_key = ? AND id IN ?", siteKey, stale).Update("active", false).Error; err != nil {
				return fmt.Errorf("disable missing rows: %w", err)
			}
		}
		if len(rows) == 0 {
			return nil
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "site_key"}, {Name: "id"}},
			UpdateAll: true,
		}).Create(&rows).Error
		if err != nil {
			return fmt.Errorf("upsert rows: %w", err)
		}
		return nil
	})
}
