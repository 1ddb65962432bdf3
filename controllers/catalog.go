package controllers

import (
	"net/http"
	"strings"

	"barbershop-backend/booking"
	"barbershop-backend/models"
	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogController serves the public storefront: shop settings and the
// active rows of each collection.
type CatalogController struct {
	Provider services.Provider
	Handoff  services.HandoffStore
	Logger   *zap.Logger
}

func (cc *CatalogController) GetSettings(c *gin.Context) {
	settings, err := cc.Provider.GetSettings(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to load settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (cc *CatalogController) GetServices(c *gin.Context) {
	rows, err := cc.Provider.GetServices(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to load services", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}
	out := make([]models.Service, 0, len(rows))
	for _, s := range rows {
		if s.Listed() {
			out = append(out, s)
		}
	}
	c.JSON(http.StatusOK, out)
}

// listedCuts also drops cuts without a photo; the gallery has nothing to show
// for them.
func listedCuts(rows []models.CutStyle) []models.CutStyle {
	out := make([]models.CutStyle, 0, len(rows))
	for _, cut := range rows {
		if cut.Listed() && strings.TrimSpace(cut.ImageURL) != "" {
			out = append(out, cut)
		}
	}
	return out
}

func (cc *CatalogController) GetCuts(c *gin.Context) {
	rows, err := cc.Provider.GetCuts(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to load cuts", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cuts")
		return
	}
	c.JSON(http.StatusOK, listedCuts(rows))
}

func (cc *CatalogController) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()
	settings, err := cc.Provider.GetSettings(ctx)
	if err != nil {
		cc.Logger.Error("failed to load settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load products")
		return
	}
	if !settings.ProductsEnabled {
		c.JSON(http.StatusOK, []models.Product{})
		return
	}
	rows, err := cc.Provider.GetProducts(ctx)
	if err != nil {
		cc.Logger.Error("failed to load products", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load products")
		return
	}
	out := make([]models.Product, 0, len(rows))
	for _, p := range rows {
		if p.Listed() {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (cc *CatalogController) GetTestimonials(c *gin.Context) {
	rows, err := cc.Provider.GetTestimonials(c.Request.Context())
	if err != nil {
		cc.Logger.Error("failed to load testimonials", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load testimonials")
		return
	}
	out := make([]models.Testimonial, 0, len(rows))
	for _, t := range rows {
		if t.Listed() {
			out = append(out, t)
		}
	}
	c.JSON(http.StatusOK, out)
}

// SelectCut records the style the visitor picked in the gallery so the next
// booking session starts with it.
func (cc *CatalogController) SelectCut(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	rows, err := cc.Provider.GetCuts(ctx)
	if err != nil {
		cc.Logger.Error("failed to load cuts", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cuts")
		return
	}
	var found *models.CutStyle
	for _, cut := range listedCuts(rows) {
		if cut.ID == id {
			cut := cut
			found = &cut
			break
		}
	}
	if found == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Cut not found")
		return
	}

	sel := booking.Initial{ID: found.ID, Name: found.Name, TechnicalName: found.TechnicalName}
	visitor := visitorID(c)
	if err := cc.Handoff.Put(ctx, visitor, sel); err != nil {
		cc.Logger.Error("failed to store selected cut", zap.String("visitor", visitor), zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to store selection")
		return
	}
	c.JSON(http.StatusOK, gin.H{"selected": sel})
}
