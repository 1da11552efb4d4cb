package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"techevents/config"
	_ "techevents/docs"
	"techevents/internal/adapters/auth"
	"techevents/internal/adapters/email"
	deliveryhttp "techevents/internal/delivery/http"
	"techevents/internal/delivery/http/controllers"
	"techevents/internal/repository/postgres"
	"techevents/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const (
	requestTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

// @title Tech Events API
// @version 1.0
// @description Discover tech events and register for them.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl, postgres.PoolConfig{
		MaxOpenConns: cfg.MaxOpenConns,
		MaxIdleConns: cfg.MaxIdleConns,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, logger); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)
	userRepo := postgres.NewUserRepository(db)

	if cfg.SeedDemoEvents {
		services.NewSeeder(eventRepo, logger).Seed(ctx)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
			Endpoint:        cfg.Email.SESEndpoint,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("configure mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	eventService := services.NewEventService(eventRepo, requestTimeout)
	attendeeService := services.NewAttendeeService(eventRepo, registrationRepo, userRepo, emailService, logger)
	userService := services.NewUserService(userRepo, auth.NewBcryptHasher(bcrypt.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)

	handler := deliveryhttp.NewRouter(deliveryhttp.Controllers{
		Events:    controllers.NewEventController(logger, eventService),
		Attendees: controllers.NewAttendeeController(logger, attendeeService),
		Auth:      controllers.NewAuthController(logger, userService),
		Users:     controllers.NewUserController(logger, userService),
	}, deliveryhttp.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		Logger:         logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
