package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/clinicpass/clinic-api/internal/config"
	"github.com/clinicpass/clinic-api/internal/email"
	"github.com/clinicpass/clinic-api/internal/handler"
	adsHandler "github.com/clinicpass/clinic-api/internal/handler/ads"
	appointmentHandler "github.com/clinicpass/clinic-api/internal/handler/appointment"
	availabilityHandler "github.com/clinicpass/clinic-api/internal/handler/availability"
	clinicHandler "github.com/clinicpass/clinic-api/internal/handler/clinic"
	sessionHandler "github.com/clinicpass/clinic-api/internal/handler/session"
	tokenHandler "github.com/clinicpass/clinic-api/internal/handler/token"
	walletHandler "github.com/clinicpass/clinic-api/internal/handler/wallet"
	"github.com/clinicpass/clinic-api/internal/middleware"
	"github.com/clinicpass/clinic-api/internal/repository/postgres"
	redisrepo "github.com/clinicpass/clinic-api/internal/repository/redis"
	"github.com/clinicpass/clinic-api/internal/router"
	adsService "github.com/clinicpass/clinic-api/internal/service/ads"
	appointmentService "github.com/clinicpass/clinic-api/internal/service/appointment"
	availabilityService "github.com/clinicpass/clinic-api/internal/service/availability"
	clinicService "github.com/clinicpass/clinic-api/internal/service/clinic"
	sessionService "github.com/clinicpass/clinic-api/internal/service/session"
	tokenService "github.com/clinicpass/clinic-api/internal/service/token"
	walletService "github.com/clinicpass/clinic-api/internal/service/wallet"
	"github.com/clinicpass/clinic-api/pkg/auth"
	"github.com/clinicpass/clinic-api/pkg/logger"
	"github.com/clinicpass/clinic-api/pkg/metrics"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
	})
	log.Logger = *appLogger.Zerolog()

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	if dir := cfg.Database.MigrationsDir; dir != "" {
		if err := postgres.Migrate(context.Background(), db, dir); err != nil {
			log.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	sessionStore, err := redisrepo.NewSessionStore(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}

	// Initialize repositories
	clinicRepo := postgres.NewClinicRepository(db)
	serviceRepo := postgres.NewServiceRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	availabilityRepo := postgres.NewAvailabilityRepository(db)
	adRepo := postgres.NewAdRepository(db)
	financeRepo := postgres.NewFinanceRepository(db)

	var emailSvc email.Service = email.NoopService{}
	if cfg.SMTP.Host != "" {
		emailSvc = email.NewService(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	// Initialize services
	tokens := auth.NewSessionTokenService(cfg.Session.Secret, cfg.Session.Expiry())
	sessionSvc := sessionService.NewService(clinicRepo, sessionStore, tokens, cfg.Session.Expiry())
	tokenSvc := tokenService.NewService(appointmentRepo, serviceRepo, emailSvc)
	appointmentSvc := appointmentService.NewService(appointmentRepo, serviceRepo)
	availabilitySvc := availabilityService.NewService(availabilityRepo)
	adsSvc := adsService.NewService(adRepo)
	clinicSvc := clinicService.NewService(clinicRepo)
	walletSvc := walletService.NewService(financeRepo)

	// Initialize middleware and handlers
	sessionMw := middleware.NewSessionMiddleware(sessionSvc, tokens, sessionStore, cfg.Session.CacheTTL())
	m := metrics.New("clinic_api")

	h := handler.NewHandler(db)
	sessionH := sessionHandler.NewHandler(sessionSvc)
	tokenH := tokenHandler.NewHandler(tokenSvc, m)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	availabilityH := availabilityHandler.NewHandler(availabilitySvc)
	walletH := walletHandler.NewHandler(walletSvc)
	adsH := adsHandler.NewHandler(adsSvc)
	clinicH := clinicHandler.NewHandler(clinicSvc, serviceRepo)

	r := router.NewRouter(
		sessionMw,
		sessionH,
		tokenH,
		appointmentH,
		availabilityH,
		walletH,
		adsH,
		clinicH,
		h,
		router.Config{
			Timeout: cfg.Server.Timeout(),
			RateLimit: middleware.RateLimiterConfig{
				Rate:  rate.Limit(cfg.RateLimit.RequestsPerSecond),
				Burst: cfg.RateLimit.Burst,
			},
			CORS:    middleware.DefaultCORSConfig(),
			Metrics: m,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
