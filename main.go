package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/miniauth/backend/internal/config"
	"github.com/miniauth/backend/internal/db"
	"github.com/miniauth/backend/internal/handler"
	"github.com/miniauth/backend/internal/service"
)

// @title miniauth API
// @version 1.0
// @description Minimal authentication service: credential login, session token verification, user listing.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	ttl, err := time.ParseDuration(cfg.Auth.JWTTTL)
	if err != nil {
		log.Fatalf("invalid JWT_TTL: %v", err)
	}

	tokens, err := service.NewTokenService([]byte(cfg.Auth.JWTSecret), ttl)
	if err != nil {
		log.Fatalf("failed to init token service: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	store := &db.Postgres{Pool: pool}
	authSvc := service.NewAuthService(store, tokens)

	if err := authSvc.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	if err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword); err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	router := gin.Default()
	if len(cfg.Server.AllowedOrigins) > 0 {
		router.Use(handler.CORSMiddleware(cfg.Server.AllowedOrigins))
	}

	authHandler := handler.NewAuthHandler(authSvc)
	usersHandler := handler.NewUsersHandler(authSvc)

	router.GET("/health", handler.Health)
	router.GET("/openapi.json", handler.OpenAPIDoc)
	router.POST("/login", authHandler.Login)

	authed := router.Group("/", handler.AuthTokenMiddleware())
	authed.GET("/verify", authHandler.Verify)
	authed.GET("/users", usersHandler.ListUsers)

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
