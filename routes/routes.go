package routes

import (
	"net/http"

	"barbershop-backend/config"
	"barbershop-backend/controllers"
	"barbershop-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Catalog *controllers.CatalogController
	Booking *controllers.BookingController
	Auth    *controllers.AuthController
	Admin   *controllers.AdminController
	Dash    *controllers.DashboardController
	Upload  *controllers.UploadController
	Metrics http.Handler
}

func SetupRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}

	requireAdmin := utils.AuthMiddleware(cfg.JWTSecret, cfg.SiteKey)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)

		auth.Use(requireAdmin)
		auth.GET("/me", h.Auth.Me)
	}

	api := r.Group("/api")
	{
		// Storefront
		api.GET("/settings", h.Catalog.GetSettings)
		api.GET("/services", h.Catalog.GetServices)
		api.GET("/cuts", h.Catalog.GetCuts)
		api.POST("/cuts/:id/select", h.Catalog.SelectCut)
		api.GET("/products", h.Catalog.GetProducts)
		api.GET("/testimonials", h.Catalog.GetTestimonials)

		// Booking wizard
		sessions := api.Group("/booking/sessions")
		{
			sessions.POST("", h.Booking.CreateSession)
			sessions.GET("/:id", h.Booking.GetSession)
			sessions.POST("/:id/actions", h.Booking.Act)
			sessions.POST("/:id/confirm", h.Booking.Confirm)
			sessions.DELETE("/:id", h.Booking.DeleteSession)
		}

		admin := api.Group("/admin", requireAdmin)
		{
			admin.GET("/dashboard", h.Dash.GetDashboardOverview)
			admin.GET("/settings", h.Admin.GetSettings)
			admin.PUT("/settings", h.Admin.UpdateSettings)
			admin.GET("/services", h.Admin.GetServices)
			admin.PUT("/services", h.Admin.UpdateServices)
			admin.GET("/cuts", h.Admin.GetCuts)
			admin.PUT("/cuts", h.Admin.UpdateCuts)
			admin.GET("/products", h.Admin.GetProducts)
			admin.PUT("/products", h.Admin.UpdateProducts)
			admin.GET("/testimonials", h.Admin.GetTestimonials)
			admin.PUT("/testimonials", h.Admin.UpdateTestimonials)

			admin.POST("/uploads/:folder", h.Upload.Upload)
			admin.DELETE("/uploads", h.Upload.Remove)
		}
	}

	return r
}
