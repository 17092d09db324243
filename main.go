package main

import (
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/patrickmn/go-cache"
	"github.com/username/penjualan/backend/src/config"
	"github.com/username/penjualan/backend/src/gateway"
	"github.com/username/penjualan/backend/src/handlers"
	"github.com/username/penjualan/backend/src/logger"
	"github.com/username/penjualan/backend/src/services"
	"github.com/username/penjualan/backend/src/utils"
	"golang.org/x/time/rate"
)

var limiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 30)

func rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.L.Warn("Rate limit exceeded",
				"method", r.Method,
				"path", r.URL.Path,
				"remoteAddr", r.RemoteAddr)
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func main() {
	config.LoadConfig()
	logger.InitLogger(config.Cfg.LogLevel)
	logger.L.Info("Penjualan backend server starting...")

	logger.L.Info("Initializing list cache...", "ttl", config.Cfg.ListCacheTTL.String())
	listCache := cache.New(config.Cfg.ListCacheTTL, services.CacheCleanupInterval)

	logger.L.Info("Initializing webhook gateway...", "baseURL", config.Cfg.WebhookBaseURL)
	webhookClient := gateway.NewClient(config.Cfg.WebhookBaseURL)

	salesService := services.NewSalesService(webhookClient, listCache)
	salesHandler := handlers.NewSalesHandler(salesService)
	uploadHandler := handlers.NewUploadHandler(salesService)
	fileHandler := handlers.NewFileHandler(salesService)

	logger.L.Info("Configuring routes...")
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{config.Cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "If-None-Match"},
		ExposedHeaders:   []string{"ETag", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(rateLimitMiddleware)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Penjualan backend is running"})
	})

	r.Route("/api/sales", func(r chi.Router) {
		r.Get("/", salesHandler.HandleListSales)
		r.Post("/", salesHandler.HandleCreateSales)
		r.Patch("/{id}", salesHandler.HandleUpdateSales)
		r.Delete("/{id}", salesHandler.HandleDeleteSales)
		r.Post("/upload", uploadHandler.HandleUpload)
		r.Get("/export", fileHandler.HandleExport)
		r.Get("/template", fileHandler.HandleTemplate)
	})

	serverAddr := ":" + config.Cfg.Port
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.L.Info("Server starting", "address", serverAddr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.L.Error("Failed to start server", "error", err)
		stdlog.Fatalf("Failed to start server: %v", err)
	} else if err == http.ErrServerClosed {
		logger.L.Info("Server stopped gracefully.")
	}
}
