package controllers

import (
	"context"
	"net/http"

	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardOverview is the admin landing summary: how much of each
// collection is live, plus booking flows currently open.
type DashboardOverview struct {
	ShopName        string        `json:"shopName"`
	ProductsEnabled bool          `json:"productsEnabled"`
	ChildCutEnabled bool          `json:"childCutEnabled"`
	Services        CategoryCount `json:"services"`
	Cuts            CategoryCount `json:"cuts"`
	Products        CategoryCount `json:"products"`
	Testimonials    CategoryCount `json:"testimonials"`
	OpenBookings    int           `json:"openBookings"`
}

// CategoryCount separates rows shown on the site from the rest (inactive or
// blank slots).
type CategoryCount struct {
	Listed int `json:"listed"`
	Total  int `json:"total"`
}

type DashboardController struct {
	Provider services.Provider
	Sessions *services.SessionStore
	Logger   *zap.Logger
}

func countListed[T interface{ Listed() bool }](rows []T) CategoryCount {
	cc := CategoryCount{Total: len(rows)}
	for _, r := range rows {
		if r.Listed() {
			cc.Listed++
		}
	}
	return cc
}

func (dc *DashboardController) overview(ctx context.Context) (DashboardOverview, error) {
	settings, err := dc.Provider.GetSettings(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}
	svc, err := dc.Provider.GetServices(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}
	cuts, err := dc.Provider.GetCuts(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}
	products, err := dc.Provider.GetProducts(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}
	testimonials, err := dc.Provider.GetTestimonials(ctx)
	if err != nil {
		return DashboardOverview{}, err
	}

	return DashboardOverview{
		ShopName:        settings.Name,
		ProductsEnabled: settings.ProductsEnabled,
		ChildCutEnabled: settings.ChildCutEnabled,
		Services:        countListed(svc),
		Cuts:            countListed(cuts),
		Products:        countListed(products),
		Testimonials:    countListed(testimonials),
		OpenBookings:    dc.Sessions.Len(),
	}, nil
}

func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	overview, err := dc.overview(c.Request.Context())
	if err != nil {
		dc.Logger.Error("dashboard overview failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	c.JSON(http.StatusOK, overview)
}
