package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Yashwanthgowda1/backend-server/internal/config"
	"github.com/Yashwanthgowda1/backend-server/internal/routes"
	"github.com/Yashwanthgowda1/backend-server/internal/storage"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, using environment variables")
	}

	cfg := config.Load()

	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	// Requests against missing tables will fail until the schema is
	// fixed, but the process stays up so /health can report the state.
	if err := storage.Migrate(db); err != nil {
		log.Printf("warning: schema migration failed: %v", err)
	}

	r := routes.NewRouter(db, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("server running on port %s (prefix %q)", cfg.Port, cfg.PathPrefix)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	if err := storage.Close(db); err != nil {
		log.Printf("closing database: %v", err)
	}
}
