package controllers

import (
	"net/http"

	"barbershop-backend/models"
	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminController edits the shop content. Every collection is saved whole,
// the way the panel submits it; rows left out are deactivated, never deleted.
type AdminController struct {
	Provider services.Provider
	Logger   *zap.Logger
}

func (ac *AdminController) GetSettings(c *gin.Context) {
	settings, err := ac.Provider.GetSettings(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ac *AdminController) UpdateSettings(c *gin.Context) {
	var input models.ShopSettings
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number, use the international format with country code")
		return
	}
	if err := ac.Provider.SaveSettings(c.Request.Context(), input); err != nil {
		ac.Logger.Error("failed to save settings", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save settings")
		return
	}
	ac.Logger.Info("settings updated")
	ac.GetSettings(c)
}

func (ac *AdminController) GetServices(c *gin.Context) {
	rows, err := ac.Provider.GetServices(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load services")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ac *AdminController) UpdateServices(c *gin.Context) {
	var input []models.Service
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ac.Provider.SaveServices(c.Request.Context(), input); err != nil {
		ac.Logger.Error("failed to save services", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save services")
		return
	}
	ac.Logger.Info("services updated", zap.Int("count", len(input)))
	ac.GetServices(c)
}

func (ac *AdminController) GetCuts(c *gin.Context) {
	rows, err := ac.Provider.GetCuts(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load cuts")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ac *AdminController) UpdateCuts(c *gin.Context) {
	var input []models.CutStyle
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ac.Provider.SaveCuts(c.Request.Context(), input); err != nil {
		ac.Logger.Error("failed to save cuts", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save cuts")
		return
	}
	ac.Logger.Info("cuts updated", zap.Int("count", len(input)))
	ac.GetCuts(c)
}

func (ac *AdminController) GetProducts(c *gin.Context) {
	rows, err := ac.Provider.GetProducts(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load products")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ac *AdminController) UpdateProducts(c *gin.Context) {
	var input []models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ac.Provider.SaveProducts(c.Request.Context(), input); err != nil {
		ac.Logger.Error("failed to save products", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save products")
		return
	}
	ac.Logger.Info("products updated", zap.Int("count", len(input)))
	ac.GetProducts(c)
}

func (ac *AdminController) GetTestimonials(c *gin.Context) {
	rows, err := ac.Provider.GetTestimonials(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to load testimonials")
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (ac *AdminController) UpdateTestimonials(c *gin.Context) {
	var input []models.Testimonial
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if err := ac.Provider.SaveTestimonials(c.Request.Context(), input); err != nil {
		ac.Logger.Error("failed to save testimonials", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save testimonials")
		return
	}
	ac.Logger.Info("testimonials updated", zap.Int("count", len(input)))
	ac.GetTestimonials(c)
}
