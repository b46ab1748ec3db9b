package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/grandstage/stagecms/internal/config"
	"github.com/grandstage/stagecms/internal/handler"
	"github.com/grandstage/stagecms/internal/mailer"
	"github.com/grandstage/stagecms/internal/middleware"
	"github.com/grandstage/stagecms/internal/render"
	"github.com/grandstage/stagecms/internal/session"
	"github.com/grandstage/stagecms/internal/store"
	"github.com/grandstage/stagecms/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "StageCMS - theater promotion site with admin panel\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STAGECMS_SESSION_SECRET    Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STAGECMS_DB_PATH           SQLite database path (default: ./data/stagecms.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STAGECMS_SERVER_PORT       Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STAGECMS_ENV               Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  STAGECMS_DO_SEED           Seed default admin and content (default: true)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("stagecms %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	ctx := context.Background()
	if err := store.Seed(ctx, db, cfg.DoSeed); err != nil {
		return fmt.Errorf("seeding database: %w", err)
	}

	// Session manager
	sessionManager := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized")

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	// Handlers
	m := mailer.New()
	publicHandler := handler.NewPublicHandler(db, renderer, m)
	authHandler := handler.NewAuthHandler(db, renderer, sessionManager)
	adminHandler := handler.NewAdminHandler(db, renderer)
	contentHandler := handler.NewContentHandler(db, renderer)
	imageHandler := handler.NewImageHandler(db, renderer)
	videoHandler := handler.NewVideoHandler(db, renderer)
	settingsHandler := handler.NewSettingsHandler(db, renderer)
	credentialsHandler := handler.NewCredentialsHandler(db, renderer)
	submissionHandler := handler.NewSubmissionHandler(db, renderer)

	// Router
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))

	r.Use(sessionManager.LoadAndSave)

	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteRoot, publicHandler.Home)
		r.Get(handler.RouteAbout, publicHandler.About)
		r.Get(handler.RouteGallery, publicHandler.Gallery)
		r.Get(handler.RouteContact, publicHandler.Contact)
		r.Post(handler.RouteContact, publicHandler.ContactSubmit)
	})

	// Admin routes
	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(csrfMiddleware)

		r.Get("/login", authHandler.LoginForm)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(sessionManager))
			r.Use(middleware.LoadAdmin(sessionManager, db))

			r.Get("/", adminHandler.Dashboard)
			r.Get("/dashboard", adminHandler.Dashboard)
			r.Get("/logout", authHandler.Logout)
			r.Post("/logout", authHandler.Logout)

			r.Get("/content", contentHandler.Edit)
			r.Get("/content"+handler.RouteParamPageName, contentHandler.Edit)
			r.Post("/content", contentHandler.Update)
			r.Post("/content"+handler.RouteParamPageName, contentHandler.Update)

			r.Get("/images", imageHandler.List)
			r.Get("/images/add", imageHandler.New)
			r.Post("/images/add", imageHandler.Create)
			r.Get("/images/edit"+handler.RouteParamID, imageHandler.Edit)
			r.Post("/images/edit"+handler.RouteParamID, imageHandler.Update)
			r.Post("/images/delete"+handler.RouteParamID, imageHandler.Delete)

			r.Get("/videos", videoHandler.List)
			r.Get("/videos/add", videoHandler.New)
			r.Post("/videos/add", videoHandler.Create)
			r.Get("/videos/edit"+handler.RouteParamID, videoHandler.Edit)
			r.Post("/videos/edit"+handler.RouteParamID, videoHandler.Update)
			r.Post("/videos/delete"+handler.RouteParamID, videoHandler.Delete)

			r.Get("/settings", settingsHandler.Edit)
			r.Post("/settings", settingsHandler.Update)

			r.Get("/system-credentials", credentialsHandler.Edit)
			r.Post("/system-credentials", credentialsHandler.Update)

			r.Get("/contact-submissions", submissionHandler.List)
			r.Get("/contact-submissions"+handler.RouteParamID+"/mark-read", submissionHandler.MarkRead)
			r.Post("/contact-submissions"+handler.RouteParamID+"/mark-read", submissionHandler.MarkRead)
		})
	})

	// Static assets
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
