package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"flyease/internal/config"
	"flyease/internal/database"
	"flyease/internal/domain"
	"flyease/internal/mailer"
	"flyease/internal/middleware"
	"flyease/internal/modules/admin"
	"flyease/internal/modules/auth"
	"flyease/internal/modules/booking"
	"flyease/internal/modules/catalog"
	"flyease/internal/modules/payment"
	"flyease/internal/modules/review"
	jwtsvc "flyease/internal/pkg/jwt"
	"flyease/internal/repository"
	"flyease/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := buildLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	kv := buildKV(cfg, logger)
	mail := buildMailer(cfg, logger)

	userRepo := repository.NewUserRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	guard := auth.NewLoginGuard(kv, auth.GuardConfig{
		FailWindow:    cfg.FailWindow,
		ShortLock:     cfg.ShortLock,
		LongLock:      cfg.LongLock,
		LockThreshold: cfg.LockThreshold,
	})
	authService := auth.NewService(userRepo, guard, j, logger)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(packageRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	gateway := payment.NewStripeGateway(cfg.StripeKey, cfg.CheckoutSuccessURL, cfg.CheckoutCancelURL, logger)

	rules := booking.DefaultPricingRules()
	rules.EarlyBirdDays = cfg.EarlyBirdDays
	rules.BulkTravelerMin = cfg.BulkTravelerMin

	flows := booking.NewFlowStore(kv, cfg.QuoteTTL)
	bookingService := booking.NewService(bookingRepo, packageRepo, flows, gateway, rules, cfg.Currency, logger)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo)
	paymentHandler := payment.NewHandler(paymentService)

	reviewService := review.NewService(reviewRepo, bookingRepo)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(bookingRepo, userRepo, packageRepo, mail, logger)
	adminHandler := admin.NewHandler(adminService)

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterProtectedRoutes(protected)
			paymentHandler.RegisterProtectedRoutes(protected)
			reviewHandler.RegisterProtectedRoutes(protected)

			staff := protected.Group("/staff")
			staff.Use(middleware.RequireRole(string(domain.RoleStaff), string(domain.RoleAdmin)))
			{
				adminHandler.RegisterStaffRoutes(staff)
			}

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.RequireRole(string(domain.RoleAdmin)))
			{
				adminHandler.RegisterAdminRoutes(adminGroup)
				catalogHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.String("env", cfg.AppEnv))
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(env string) (*zap.Logger, error) {
	if env == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// buildKV prefers Redis when configured and reachable, falling back to the
// in-process store so local development works with no extra services.
func buildKV(cfg *config.Config, logger *zap.Logger) store.KV {
	if cfg.RedisAddr == "" {
		logger.Info("REDIS_ADDR not set, using in-memory store")
		return store.NewMemoryKV()
	}

	rkv := store.NewRedisKV(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rkv.Ping(ctx); err != nil {
		logger.Warn("redis unreachable, using in-memory store", zap.Error(err))
		return store.NewMemoryKV()
	}

	logger.Info("using redis store", zap.String("addr", cfg.RedisAddr))
	return rkv
}

func buildMailer(cfg *config.Config, logger *zap.Logger) mailer.Mailer {
	if cfg.SMTPHost == "" {
		logger.Info("SMTP_HOST not set, emails will only be logged")
		return mailer.NewLogMailer(logger)
	}
	return mailer.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
}
