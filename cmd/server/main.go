// @title           Uniboard Certificate API
// @version         1.0
// @description     Certificate verification and rendering service with demo request intake.

// @host      localhost:8080
// @BasePath  /

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"uniboard/config"
	_ "uniboard/docs"
	"uniboard/internal/adapters/email"
	"uniboard/internal/adapters/imagefetch"
	deliveryhttp "uniboard/internal/delivery/http"
	"uniboard/internal/delivery/http/controllers"
	"uniboard/internal/delivery/http/middleware"
	"uniboard/internal/render"
	"uniboard/internal/repository/postgres"
	"uniboard/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	certificates := postgres.NewCertificateRepository(db)
	templates := postgres.NewTemplateRepository(db)

	fonts, err := render.NewFontManager()
	if err != nil {
		logger.Error("failed to initialize fonts", "err", err)
		os.Exit(1)
	}
	images := imagefetch.New(nil)
	pipeline := render.NewPipeline(templates, images, fonts, logger, cfg.VerifyBaseURL)

	queue := services.NewEmailQueue(services.QueueSettings{
		MinDelayBetweenEmails: cfg.Email.MinDelayBetweenEmails,
		MaxEmailsPerMinute:    cfg.Email.MaxEmailsPerMinute,
		MaxEmailsPerHour:      cfg.Email.MaxEmailsPerHour,
	}, logger)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to initialize mailer", "err", err)
		os.Exit(1)
	}

	certificateService := services.NewCertificateService(certificates, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), queue, cfg.Email.AdminRecipients, logger)

	certificateController := controllers.NewCertificateController(logger, certificateService, pipeline)
	demoRequestController := controllers.NewDemoRequestController(logger, emailService)
	systemController := controllers.NewSystemController(logger, queue)

	mux := deliveryhttp.NewRouter(certificateController, demoRequestController, systemController)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}
}
