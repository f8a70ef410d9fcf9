package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/config"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/enrich"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/handlers"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/middleware"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/model"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/repository"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/service"
	"github.com/jakir-hossen-4928/langobridge-admin-api/internal/storage"
)

func main() {
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)
	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// Dependency injection.
	vocabRepo := repository.NewGormVocabularyRepository()
	resourceRepo := repository.NewGormResourceRepository()
	blogRepo := repository.NewGormBlogRepository()
	userRepo := repository.NewGormUserRepository()
	settingRepo := repository.NewGormSettingRepository()

	vocabCache := service.NewListCache[*model.Vocabulary]()
	resourceCache := service.NewListCache[*model.Resource]()
	blogCache := service.NewListCache[*model.Blog]()

	provider := newEnricher(logger)
	slog.Info("Enhancement provider selected", slog.String("provider", provider.Name()))

	vocabService := service.NewVocabularyService(db, vocabRepo, vocabCache, config.Cfg.App.FetchPageSize, logger)
	resourceService := service.NewResourceService(db, resourceRepo, resourceCache, config.Cfg.App.FetchPageSize, logger)
	blogService := service.NewBlogService(db, blogRepo, blogCache, config.Cfg.App.FetchPageSize, logger)
	enhanceService := service.NewEnhanceService(db, vocabRepo, provider, vocabCache, logger)
	authService := service.NewAuthService(db, userRepo, &config.Cfg, logger)
	practiceService := service.NewPracticeService(db, vocabRepo, config.Cfg.App.PracticeLimit, logger)
	settingService := service.NewSettingService(db, settingRepo, logger)
	uploader := storage.NewHTTPImageUploader(config.Cfg.Uploads.ImageHostURL, logger)

	vocabHandler := handlers.NewVocabularyHandler(vocabService, logger)
	resourceHandler := handlers.NewResourceHandler(resourceService, logger)
	blogHandler := handlers.NewBlogHandler(blogService, logger)
	enhanceHandler := handlers.NewEnhanceHandler(enhanceService, logger)
	authHandler := handlers.NewAuthHandler(authService, logger)
	practiceHandler := handlers.NewPracticeHandler(practiceService, logger)
	settingHandler := handlers.NewSettingHandler(settingService, logger)
	uploadHandler := handlers.NewUploadHandler(uploader, settingService, logger)

	// Router.
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Post("/auth/login", authHandler.PostLogin)

		// Protected routes.
		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuthMiddleware(&config.Cfg))

			r.Route("/vocabulary", func(r chi.Router) {
				r.Post("/", vocabHandler.PostVocabulary)
				r.Get("/", vocabHandler.GetVocabularyList)
				r.Post("/bulk", vocabHandler.PostVocabularyBulk)
				r.Get("/{vocab_id}", vocabHandler.GetVocabulary)
				r.Put("/{vocab_id}", vocabHandler.PutVocabulary)
				r.Delete("/{vocab_id}", vocabHandler.DeleteVocabulary)
			})

			r.Route("/resources", func(r chi.Router) {
				r.Post("/", resourceHandler.PostResource)
				r.Get("/", resourceHandler.GetResources)
				r.Get("/{resource_id}", resourceHandler.GetResource)
				r.Put("/{resource_id}", resourceHandler.PutResource)
				r.Delete("/{resource_id}", resourceHandler.DeleteResource)
			})

			r.Route("/blogs", func(r chi.Router) {
				r.Post("/", blogHandler.PostBlog)
				r.Get("/", blogHandler.GetBlogs)
				r.Get("/{blog_id}", blogHandler.GetBlog)
				r.Put("/{blog_id}", blogHandler.PutBlog)
				r.Delete("/{blog_id}", blogHandler.DeleteBlog)
			})

			r.Route("/enhance", func(r chi.Router) {
				r.Post("/batch", enhanceHandler.PostBatch)
				r.Post("/preview", enhanceHandler.PostPreview)
				r.Post("/apply", enhanceHandler.PostApply)
			})

			r.Get("/practice", practiceHandler.GetPracticeBatch)
			r.Post("/uploads/image", uploadHandler.PostImage)

			r.Route("/settings", func(r chi.Router) {
				r.Get("/image-api-key", settingHandler.GetImageAPIKey)
				r.Put("/image-api-key", settingHandler.PutImageAPIKey)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := sqlDB.PingContext(r.Context()); err != nil {
			slog.ErrorContext(r.Context(), "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	slog.Info("Server exiting")
}

// newLogger builds the application logger: tint in dev, JSON elsewhere.
func newLogger(tempLogger *slog.Logger) *slog.Logger {
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	return slog.New(handler)
}

// newEnricher picks the configured LLM provider.
func newEnricher(logger *slog.Logger) enrich.Enricher {
	switch strings.ToLower(config.Cfg.Providers.Default) {
	case "gemini":
		return enrich.NewGeminiProvider(config.Cfg.Providers.Gemini, logger)
	default:
		return enrich.NewOpenAIProvider(config.Cfg.Providers.OpenAI, logger)
	}
}
