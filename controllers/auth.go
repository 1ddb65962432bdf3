package controllers

import (
	"errors"
	"net/http"
	"time"

	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginInput carries only the password; the admin email is fixed by
// configuration.
type LoginInput struct {
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Admin     *services.AdminAuth
	JWTSecret string
	JWTExpiry time.Duration
	SiteKey   string
	Logger    *zap.Logger
}

// controllers/auth.go
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := ac.Admin.Authenticate(c.Request.Context(), input.Password)
	switch {
	case errors.Is(err, services.ErrAdminNotConfigured):
		utils.RespondWithError(c, http.StatusServiceUnavailable, "Admin login not configured")
		return
	case errors.Is(err, services.ErrInvalidCredentials):
		ac.Logger.Info("admin login rejected", zap.String("ip", c.ClientIP()))
		utils.RespondWithError(c, http.StatusUnauthorized, "Senha incorreta")
		return
	case err != nil:
		ac.Logger.Error("admin login failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := utils.GenerateToken(ac.JWTSecret, user.ID.String(), ac.SiteKey, ac.JWTExpiry)
	if err != nil {
		ac.Logger.Error("token generation failed", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.SetCookie(
		utils.TokenCookie,
		token,
		int(ac.JWTExpiry.Seconds()),
		"/",
		"",
		true,
		true,
	)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(utils.TokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns the admin behind the current token.
func (ac *AuthController) Me(c *gin.Context) {
	userID, _ := c.Get("userId")
	c.JSON(http.StatusOK, gin.H{
		"id":      userID,
		"email":   ac.Admin.Email(),
		"siteKey": ac.SiteKey,
	})
}
