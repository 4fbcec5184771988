package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobportal/api/internal/auth"
	"github.com/jobportal/api/internal/config"
	"github.com/jobportal/api/internal/handlers"
	"github.com/jobportal/api/internal/logger"
	"github.com/jobportal/api/internal/models"
	"github.com/jobportal/api/internal/notify"
	"github.com/jobportal/api/internal/services"
	"github.com/jobportal/api/internal/store"
	"github.com/jobportal/api/internal/upload"
)

func main() {
	// 1. Configuration (loads .env and optional config.yaml)
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// 2. Logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	if cfg.Server.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. Store with seed rows
	st := store.New(log)
	st.Seed()

	// 4. Notification dispatcher
	var sender notify.Sender = &notify.LogSender{Log: log}
	if cfg.Notifications.Provider == "ses" {
		sesSender, err := notify.NewSESSender(context.Background(),
			cfg.Notifications.SESRegion, cfg.Notifications.FromAddress)
		if err != nil {
			log.Warn("SES unavailable, falling back to log sender", zap.Error(err))
		} else {
			sender = sesSender
		}
	}
	dispatcher := notify.NewDispatcher(sender, log, cfg.Notifications.QueueSize)

	// 5. Uploads
	uploads, err := upload.NewSaver(cfg.Uploads.Dir, cfg.Uploads.MaxSizeMB, cfg.Uploads.PublicPath)
	if err != nil {
		log.Fatal("failed to prepare upload directory", zap.Error(err))
	}

	// 6. Services
	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())
	authService := services.NewAuthService(st, tokens, log)
	jobService := services.NewJobService(st, log)
	companyService := services.NewCompanyService(st, log)
	applicationService := services.NewApplicationService(st, dispatcher, log)
	contactService := services.NewContactService(st, dispatcher, log)

	// 7. Handlers
	prod := cfg.Server.Production()
	authHandler := handlers.NewAuthHandler(authService, log, prod)
	jobHandler := handlers.NewJobHandler(jobService, log, prod)
	companyHandler := handlers.NewCompanyHandler(companyService, uploads, log, prod)
	applicationHandler := handlers.NewApplicationHandler(applicationService, uploads, log, prod)
	contactHandler := handlers.NewContactHandler(contactService, log, prod)
	aboutHandler := handlers.NewAboutHandler()

	// 8. Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.FrontendURL}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.Static(cfg.Uploads.PublicPath, uploads.Dir())
	r.GET("/health", handlers.HealthCheck)

	// 9. Routes
	authenticated := auth.Authenticate(tokens, st)
	staffOnly := auth.RequireRole(models.RoleAdmin, models.RoleEmployer)
	adminOnly := auth.RequireRole(models.RoleAdmin)

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authenticated, authHandler.Me)
		}

		jobs := api.Group("/jobs")
		{
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
			jobs.POST("", authenticated, staffOnly, jobHandler.Create)
			jobs.PUT("/:id", authenticated, staffOnly, jobHandler.Update)
			jobs.DELETE("/:id", authenticated, staffOnly, jobHandler.Delete)
			jobs.GET("/my/jobs", authenticated, staffOnly, jobHandler.Mine)
		}

		companies := api.Group("/companies")
		{
			companies.GET("", companyHandler.List)
			companies.GET("/:id", companyHandler.Get)
			companies.POST("", authenticated, staffOnly, companyHandler.Create)
			companies.PUT("/:id", authenticated, staffOnly, companyHandler.Update)
			companies.DELETE("/:id", authenticated, staffOnly, companyHandler.Delete)
			companies.GET("/my/companies", authenticated, staffOnly, companyHandler.Mine)
		}

		applications := api.Group("/applications")
		{
			applications.POST("/:jobId", applicationHandler.Submit)
			applications.GET("", authenticated, adminOnly, applicationHandler.List)
			applications.GET("/my-jobs", authenticated, staffOnly, applicationHandler.ListMine)
			applications.GET("/stats/overview", authenticated, staffOnly, applicationHandler.Stats)
			applications.GET("/:id", authenticated, staffOnly, applicationHandler.Get)
			applications.PATCH("/:id/status", authenticated, staffOnly, applicationHandler.UpdateStatus)
		}

		contact := api.Group("/contact")
		{
			contact.POST("", contactHandler.Submit)
			contact.GET("", authenticated, adminOnly, contactHandler.List)
			contact.GET("/stats/overview", authenticated, adminOnly, contactHandler.Stats)
			contact.GET("/:id", authenticated, adminOnly, contactHandler.Get)
			contact.PATCH("/:id/status", authenticated, adminOnly, contactHandler.UpdateStatus)
			contact.DELETE("/:id", authenticated, adminOnly, contactHandler.Delete)
		}

		about := api.Group("/about")
		{
			about.GET("", aboutHandler.Index)
			about.GET("/stats", aboutHandler.Stats)
			about.GET("/team", aboutHandler.Team)
		}
	}

	// 10. Serve with graceful shutdown so the notification queue drains
	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting",
			zap.String("port", cfg.Server.Port),
			zap.String("environment", cfg.Server.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
	dispatcher.Close()
}
