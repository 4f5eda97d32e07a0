package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	"time"

	"quiz-platform/internal/config"
	"quiz-platform/internal/httpapi"
	"quiz-platform/internal/identity"
	"quiz-platform/internal/quiz"
	"quiz-platform/internal/result"
	"quiz-platform/internal/storage/sqlite"
)

func main() {
	cfg := config.Load()

	addr := flag.String("addr", cfg.Addr, "HTTP listen address")
	dbPath := flag.String("db", cfg.DBPath, "sqlite database path")
	flag.Parse()

	store, err := sqlite.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	tokens := identity.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	identitySvc := identity.NewService(store, tokens)
	quizSvc := quiz.NewService(store)
	resultSvc := result.NewService(store, store)

	server := &http.Server{
		Addr:              *addr,
		Handler:           httpapi.NewRouter(httpapi.NewAPI(identitySvc, quizSvc, resultSvc, tokens)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("quiz-server listening on %s (db=%s)", *addr, *dbPath)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}
