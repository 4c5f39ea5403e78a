package main

import (
	"Ensurance/cache"
	"Ensurance/config"
	"Ensurance/database"
	"Ensurance/insurance/models"
	"Ensurance/insurance/routes"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

func main() {
	cfg, err := config.Load("8080")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.InitDB(context.Background(), cfg.DBURL, models.AllModels()...)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := models.SeedConfigurableAmount(db); err != nil {
		log.Fatalf("failed to seed configurable amount: %v", err)
	}

	redisClient, err := database.InitializeRedis(cfg.RedisAddress)
	if err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	cacheInstance, err := cache.NewCache(redisClient)
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	handler := routes.SetupRoutes(cacheInstance, cfg, db)

	srv := &http.Server{
		Addr:           cfg.ListenAddress(),
		Handler:        handler,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
		IdleTimeout:    30 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		log.Printf("Starting insurance backend on %s", cfg.ListenAddress())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown handling
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}

	wg.Wait()
	log.Println("Server exited gracefully")
}
