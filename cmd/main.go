// @title NoctiMind Backend API
// @version 1.0
// @description NoctiMind Backend API for dream journaling and insights
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "NOCTIMIND_BACK-END/docs" // This is required for swagger
	"NOCTIMIND_BACK-END/internal/config"
	"NOCTIMIND_BACK-END/internal/embedding"
	"NOCTIMIND_BACK-END/internal/handlers"
	"NOCTIMIND_BACK-END/internal/llm"
	"NOCTIMIND_BACK-END/internal/routes"
	"NOCTIMIND_BACK-END/internal/speech"
	"NOCTIMIND_BACK-END/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		log.Fatalf("parse dsn: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "noctimind-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}
		// Explicit, idempotent schema setup; never an import-time side effect.
		if err := storage.InitSchema(ctx, pool); err != nil {
			log.Fatalf("init schema: %v", err)
		}
	}

	// --- Collaborators ---

	analyzer := llm.NewClient(&cfg.Groq)
	transcriber := speech.NewClient(&cfg.Groq)

	embedder, err := embedding.NewEngine(context.Background(), &cfg.Embedding)
	if err != nil {
		log.Fatalf("embedding engine: %v", err)
	}

	// --- HTTP Handlers ---

	users := storage.NewPostgresUserRepository(pool)
	dreams := storage.NewPostgresDreamRepository(pool)

	authHandler := handlers.NewAuthHandler(users, &cfg.JWT)
	dreamsHandler := handlers.NewDreamsHandler(dreams, analyzer, embedder, transcriber)
	insightsHandler := handlers.NewInsightsHandler(dreams)
	healthHandler := handlers.NewHealthHandler(pool)

	// Setup all routes
	routes.SetupRoutes(authHandler, dreamsHandler, insightsHandler, healthHandler, &cfg.JWT)

	// --- HTTP Server + Graceful Shutdown ---

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
