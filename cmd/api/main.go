package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/craftcost/craftcost-backend/internal/config"
	"github.com/craftcost/craftcost-backend/internal/db"
	authmw "github.com/craftcost/craftcost-backend/internal/middleware"
	"github.com/craftcost/craftcost-backend/internal/migrations"
	"github.com/craftcost/craftcost-backend/internal/modules/auth"
	"github.com/craftcost/craftcost-backend/internal/modules/dashboard"
	"github.com/craftcost/craftcost-backend/internal/modules/product"
	"github.com/craftcost/craftcost-backend/internal/modules/user"
)

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if cfg.IsDev() {
		if err := migrations.Up(database, "migrations"); err != nil {
			log.Fatalf("failed to run database migrations: %v", err)
		}
	}

	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	protect := authmw.Protect(cfg.JWTSecret)

	userRepo := user.NewPostgresRepository(database)
	userService := user.NewService(userRepo)
	user.NewHandler(userService).RegisterRoutes(router, protect)

	authService := auth.NewService(userRepo, cfg.JWTSecret)
	auth.NewHandler(authService).RegisterRoutes(router)

	productRepo := product.NewPostgresRepository(database)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router, protect)

	dashboard.NewHandler(productService).RegisterRoutes(router, protect)

	addr := ":" + cfg.Port
	log.Printf("CraftCost API server starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
