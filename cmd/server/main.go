package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bookworks/book-ingest-service/internal/api"
	"github.com/bookworks/book-ingest-service/internal/auth"
	"github.com/bookworks/book-ingest-service/internal/config"
	"github.com/bookworks/book-ingest-service/internal/ingest"
	"github.com/bookworks/book-ingest-service/internal/store"
	"github.com/bookworks/book-ingest-service/internal/textclean"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if os.Getenv("DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	logger := log.Logger

	cfg := config.Load()

	db := store.NewDB(cfg.DatabasePath)
	if err := db.Open(); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("opening database failed")
	}
	defer db.Close()

	books := store.NewBookService(db)
	cleaner := textclean.NewCleaner(cfg.PreprocessingEnabled, logger)
	ingestService := ingest.NewService(cfg.StorageDir, cfg.MaxPDFSizeBytes(), cleaner, logger)

	var jwtManager *auth.JWTManager
	if cfg.AuthEnabled() {
		jwtManager = auth.NewJWTManager(cfg.AuthSecret, cfg.TokenTTL)
	} else {
		logger.Warn().Msg("AUTH_SECRET not set, API endpoints are unauthenticated")
	}

	handler := api.NewHandler(ingestService, books, logger)
	router := api.NewRouter(handler, jwtManager, cfg.AuthEnabled(), logger)

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info().
		Str("addr", server.Addr).
		Bool("preprocessing", cfg.PreprocessingEnabled).
		Bool("auth", cfg.AuthEnabled()).
		Msg("server starting")
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
