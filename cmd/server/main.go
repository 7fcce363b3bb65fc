package main

import (
	"database/sql"
	"net/http"
	"time"

	"marketplace-be/internal/config"
	"marketplace-be/internal/db"
	"marketplace-be/internal/logger"
	"marketplace-be/internal/middleware"
	"marketplace-be/internal/transport"
	"marketplace-be/internal/user"

	"go.uber.org/zap"
)

var (
	initDBFunc      = db.InitDB
	startServerFunc = func(addr string, handler http.Handler) error {
		srv := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		}
		return srv.ListenAndServe()
	}
)

func main() {
	if err := run(); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router, err := newServer(cfg, database)
	if err != nil {
		return err
	}

	logger.L().Info("🚀 Backend server running", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

// newServer builds the dependency graph for one database pool.
func newServer(cfg *config.Config, database *sql.DB) (http.Handler, error) {
	hasher, err := user.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	tokens := user.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := user.NewRepository(database)
	userSvc, err := user.NewService(userRepo, hasher, tokens)
	if err != nil {
		return nil, err
	}

	return setupRouter(cfg, transport.NewAuthHandler(userSvc), tokens), nil
}

func setupRouter(cfg *config.Config, authHandler *transport.AuthHandler, tokens middleware.TokenParser) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("🚀 Backend running"))
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/me", middleware.AuthMiddleware(tokens)(http.HandlerFunc(authHandler.Me)))

	var handler http.Handler = mux
	handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	handler = middleware.CORS(cfg.CORSOrigin)(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	return handler
}
