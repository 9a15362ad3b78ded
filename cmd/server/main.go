package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/config"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/handler"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/router"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/web"
)

func main() {
	config.LoadDotEnv()
	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabaseURL); err != nil {
		logger.Log.Errorf("failed to initialize database: %v", err)
		os.Exit(1)
	}

	if !cfg.SMTP.Configured() {
		logger.Log.Warn("SMTP is not configured; notification emails will fail")
	}

	api := handler.NewAPI(db.DB, handler.Options{
		Mailer:      service.NewSMTPMailer(cfg.SMTP),
		StaticFS:    web.Static(),
		SiteBaseURL: cfg.SiteBaseURL,
		Admin: handler.AdminCredentials{
			Username:     cfg.AdminUsername,
			PasswordHash: cfg.AdminPasswordHash,
		},
	})

	r := router.SetupRouter(api, router.Options{
		SessionSecret: cfg.SecretKey,
		SecureCookies: cfg.SecureCookies,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.InfoWithFields("server listening", logger.Fields{"addr": cfg.ListenAddr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("failed to run server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Errorf("server shutdown failed: %v", err)
	}
}
