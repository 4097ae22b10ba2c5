package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/resumatch/resumatch/internal/config"
	"github.com/resumatch/resumatch/internal/db"
	"github.com/resumatch/resumatch/internal/db/memory"
	dbRedis "github.com/resumatch/resumatch/internal/db/redis"
	"github.com/resumatch/resumatch/internal/domain"
	logpkg "github.com/resumatch/resumatch/internal/logger"
	"github.com/resumatch/resumatch/internal/metrics"
	"github.com/resumatch/resumatch/internal/repository/embcache"
	"github.com/resumatch/resumatch/internal/repository/ledger"
	"github.com/resumatch/resumatch/internal/skills"
	chiTransport "github.com/resumatch/resumatch/internal/transport/chi"
	"github.com/resumatch/resumatch/internal/transport/gemini"
	openaiEmb "github.com/resumatch/resumatch/internal/transport/openai"
	analyzeuc "github.com/resumatch/resumatch/internal/usecase/analyze"
	feedbackuc "github.com/resumatch/resumatch/internal/usecase/feedback"
	healthuc "github.com/resumatch/resumatch/internal/usecase/health"
	"github.com/resumatch/resumatch/internal/usecase/match"
	rankuc "github.com/resumatch/resumatch/internal/usecase/rank"
	recommenduc "github.com/resumatch/resumatch/internal/usecase/recommend"
	"github.com/resumatch/resumatch/internal/usecase/score"
	"github.com/resumatch/resumatch/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting resumatch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	// Create the ledger store based on driver
	var store db.Store
	switch cfg.Database.Driver {
	case "redis":
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Password: cfg.Database.Password,
		})
	case "memory":
		store = memory.NewStore()
	default:
		logger.Fatal("Unknown database driver", zap.String("driver", cfg.Database.Driver))
	}
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register Prometheus metrics explicitly (no init())
	metrics.RegisterEmbeddingMetrics()
	metrics.RegisterScoringMetrics()

	// Skill registry and recommendation catalog
	registry, err := skills.LoadRegistry(cfg.Scoring.VocabularyPath)
	if err != nil {
		logger.Fatal("Failed to load skill vocabulary", zap.Error(err))
	}
	catalog, err := recommenduc.LoadCatalog(cfg.Scoring.CatalogPath)
	if err != nil {
		logger.Fatal("Failed to load recommendation catalog", zap.Error(err))
	}
	recommendEng, err := recommenduc.NewEngine(catalog)
	if err != nil {
		logger.Fatal("Invalid recommendation catalog", zap.Error(err))
	}

	// A bad weight table is a startup failure, never silent renormalization.
	aggregator, err := score.NewAggregator(domain.Weights{
		domain.DimensionSkills:     cfg.Scoring.Weights.Skills,
		domain.DimensionExperience: cfg.Scoring.Weights.Experience,
		domain.DimensionProjects:   cfg.Scoring.Weights.Projects,
		domain.DimensionFormat:     cfg.Scoring.Weights.Format,
		domain.DimensionRole:       cfg.Scoring.Weights.Role,
	})
	if err != nil {
		logger.Fatal("Invalid weight table", zap.Error(err))
	}

	// Semantic matcher — optional, gated on the embedding API key
	var semantic *match.SemanticMatcher
	var embChecker healthuc.EmbeddingChecker
	if cfg.Embedding.APIKey != "" {
		base := openaiEmb.NewEmbedder(&openaiEmb.Config{
			APIKey:     cfg.Embedding.APIKey,
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
			Provider:   cfg.Embedding.Provider,
			Logger:     logger,
		})
		cached := embcache.New(base, store, metrics.EmbeddingCacheTotal, logger)
		semantic = match.NewSemanticMatcher(cached, cfg.Matching.SimilarityThreshold)
		embChecker = base
		logger.Info("Semantic matcher enabled",
			zap.String("provider", cfg.Embedding.Provider),
			zap.String("model", cfg.Embedding.Model),
			zap.Float64("threshold", cfg.Matching.SimilarityThreshold),
		)
	} else {
		logger.Warn("No embedding API key configured, matching is lexical-only")
	}
	matcher := match.New(semantic, time.Duration(cfg.Matching.SemanticTimeoutSec)*time.Second, logger)

	// Generative collaborator — optional, gated on the Gemini API key
	var generator feedbackuc.Generator
	if cfg.Gemini.APIKey != "" {
		gen, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Fatal("Failed to create Gemini client", zap.Error(err))
		}
		generator = gemini.NewCollaborator(gen, logger)
		logger.Info("Generative feedback enabled", zap.String("model", gen.Model()))
	} else {
		logger.Warn("No Gemini API key configured, feedback is deterministic-only")
	}

	// Repositories and use case services
	ledgerRepo := ledger.New(store)
	experience := score.NewExperienceScorer()
	roles := score.DefaultRoleTable()

	analyzeSvc := analyzeuc.New(registry, matcher, experience, roles, aggregator, ledgerRepo, logger)
	rankEng := rankuc.New(registry, experience, roles, aggregator, logger)
	feedbackSvc := feedbackuc.New(generator, logger)
	healthSvc := healthuc.New(store, embChecker)

	server := chiTransport.NewServer(
		analyzeSvc, rankEng, recommendEng, feedbackSvc, healthSvc,
		ledgerRepo, registry, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
