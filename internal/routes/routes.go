package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"NOCTIMIND_BACK-END/internal/config"
	"NOCTIMIND_BACK-END/internal/handlers"
	"NOCTIMIND_BACK-END/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	authHandler *handlers.AuthHandler,
	dreamsHandler *handlers.DreamsHandler,
	insightsHandler *handlers.InsightsHandler,
	healthHandler *handlers.HealthHandler,
	jwtCfg *config.JWTConfig,
) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/password-strength", authHandler.PasswordStrength)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.GetProfile, jwtCfg))

	// Dream routes. Exact patterns take precedence over the /api/dreams/
	// prefix, so transcribe and export never reach the item handler.
	http.HandleFunc("/api/dreams", middleware.AuthMiddleware(dreamsHandler.Collection, jwtCfg))
	http.HandleFunc("/api/dreams/", middleware.AuthMiddleware(dreamsHandler.Item, jwtCfg))
	http.HandleFunc("/api/dreams/transcribe", middleware.AuthMiddleware(dreamsHandler.Transcribe, jwtCfg))
	http.HandleFunc("/api/dreams/export", middleware.AuthMiddleware(dreamsHandler.Export, jwtCfg))

	// Insights routes
	http.HandleFunc("/api/insights/clusters", middleware.AuthMiddleware(insightsHandler.Clusters, jwtCfg))
	http.HandleFunc("/api/insights/emotions", middleware.AuthMiddleware(insightsHandler.Emotions, jwtCfg))
	http.HandleFunc("/api/insights/correlation", middleware.AuthMiddleware(insightsHandler.Correlation, jwtCfg))
	http.HandleFunc("/api/insights/feedback", middleware.AuthMiddleware(insightsHandler.Feedback, jwtCfg))

	// Swagger UI
	http.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("NoctiMind backend is running."))
}
