package main

import (
	"context"
	"log"
	"os"

	"SweetOrderAPI/internal/cart"
	"SweetOrderAPI/internal/logging"
	"SweetOrderAPI/internal/repository"
	"SweetOrderAPI/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// newServer wires repositories, seed data, services and routes into an echo
// instance. Tests call it with a no-op logger to get a fresh server.
func newServer(logger *zap.Logger) (*echo.Echo, error) {
	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository()
	productRepo := repository.NewProductRepository()
	menuRepo := repository.NewMenuRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	orderRepo := repository.NewOrderRepository()
	addressRepo := repository.NewAddressRepository()

	if err := repository.Seed(context.Background(), logger, userRepo, productRepo, menuRepo); err != nil {
		return nil, err
	}

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	catalogSvc := services.NewCatalogService(productRepo, menuRepo)
	favoriteSvc := services.NewFavoriteService(favoriteRepo, productRepo)
	orderSvc := services.NewOrderService(orderRepo, productRepo)
	addressSvc := services.NewAddressService(addressRepo)
	cartSvc := services.NewCartService(cart.NewMemoryStore(), orderSvc, productRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerUserRoutes(api, authSvc)
	registerProductRoutes(api, catalogSvc)
	registerMenuRoutes(api, catalogSvc)
	registerFavoriteRoutes(api, favoriteSvc)
	registerOrderRoutes(api, orderSvc)
	registerAddressRoutes(api, addressSvc)
	registerCartRoutes(api, cartSvc)

	return e, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	logger := logging.NewLogger()
	defer logger.Sync()

	e, err := newServer(logger)
	if err != nil {
		logger.Fatal("server init failed", zap.Error(err))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("starting server", zap.String("port", port))
	e.Logger.Fatal(e.Start(":" + port))
}
