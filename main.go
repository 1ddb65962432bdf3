package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barbershop-backend/config"
	"barbershop-backend/controllers"
	"barbershop-backend/routes"
	"barbershop-backend/services"
	"barbershop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := config.NewLogger(cfg.GinMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *gorm.DB
	if cfg.ProviderMode == services.ModeRemote {
		var err error
		if db, err = config.ConnectDB(cfg.DBURL); err != nil {
			return err
		}
	}

	rdb, err := config.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	provider, err := services.NewProvider(cfg.ProviderMode, cfg.SiteKey, db, rdb, logger)
	if err != nil {
		return err
	}
	if gp, ok := provider.(*services.GormProvider); ok {
		if err := gp.SeedDefaults(ctx); err != nil {
			logger.Warn("seeding default content failed", zap.Error(err))
		}
	}

	var handoff services.HandoffStore = services.NewMemoryHandoffStore()
	if rdb != nil {
		handoff = services.NewRedisHandoffStore(rdb, cfg.SiteKey)
	}

	sessions := services.NewSessionStore(cfg.BookingSessionTTL, logger)
	if err := sessions.StartSweeper("@every 5m"); err != nil {
		return fmt.Errorf("start session sweeper: %w", err)
	}
	defer sessions.Stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := services.NewBookingMetrics(reg)

	var notifier services.Notifier = services.NoopNotifier{}
	if cfg.TwilioEnabled() {
		tn := services.NewTwilioNotifier(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber, logger)
		defer tn.Wait()
		notifier = tn
	}

	var uploader services.ImageUploader
	if cu, err := services.NewCloudinaryUploader(cfg.CloudinaryURL, cfg.SiteKey); err == nil {
		uploader = cu
	} else if !errors.Is(err, services.ErrStorageUnavailable) {
		return err
	} else {
		logger.Warn("image uploads disabled, no Cloudinary credentials")
	}

	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET not set, generating one; admin sessions will not survive a restart")
		cfg.JWTSecret = utils.GenerateJWTSecret()
	}
	admin, err := services.NewAdminAuth(ctx, db, cfg.SiteKey, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		return err
	}
	if !admin.Configured() {
		logger.Warn("admin login disabled, set ADMIN_EMAIL and ADMIN_PASSWORD")
	}

	r := routes.SetupRouter(cfg, logger, routes.Handlers{
		Catalog: &controllers.CatalogController{Provider: provider, Handoff: handoff, Logger: logger},
		Booking: &controllers.BookingController{
			Provider:              provider,
			Handoff:               handoff,
			Sessions:              sessions,
			Metrics:               metrics,
			Notifier:              notifier,
			Logger:                logger,
			MessagingEndpoint:     cfg.MessagingEndpoint,
			EnforceChildCutToggle: cfg.EnforceChildCutToggle,
			Clock:                 time.Now,
		},
		Auth: &controllers.AuthController{
			Admin:     admin,
			JWTSecret: cfg.JWTSecret,
			JWTExpiry: cfg.JWTExpiry(),
			SiteKey:   cfg.SiteKey,
			Logger:    logger,
		},
		Admin:   &controllers.AdminController{Provider: provider, Logger: logger},
		Dash:    &controllers.DashboardController{Provider: provider, Sessions: sessions, Logger: logger},
		Upload:  &controllers.UploadController{Uploader: uploader, Logger: logger},
		Metrics: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	})
	printRoutes(r, logger)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("site_key", cfg.SiteKey), zap.String("provider", cfg.ProviderMode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func printRoutes(r *gin.Engine, logger *zap.Logger) {
	for _, route := range r.Routes() {
		logger.Debug("route", zap.String("method", route.Method), zap.String("path", route.Path))
	}
}
