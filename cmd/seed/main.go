package main

import (
	"context"
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/nlefevre/gocommerce/config"
	"github.com/nlefevre/gocommerce/internal/domain/entity"
	repo "github.com/nlefevre/gocommerce/internal/domain/repository"
	"github.com/nlefevre/gocommerce/internal/infrastructure/postgres"
	"github.com/nlefevre/gocommerce/pkg/helpers"
)

// Seeds a demo account and a small catalog for local development.
// Running it twice is safe; existing rows are left alone.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		logger.WithError(err).Fatal("postgres connect failed")
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	carts := postgres.NewCartRepository(pool)
	wishlists := postgres.NewWishlistRepository(pool)
	categories := postgres.NewCategoryRepository(pool)
	products := postgres.NewProductRepository(pool)

	const demoEmail = "demo@example.com"
	if _, err := users.GetByEmail(ctx, demoEmail); errors.Is(err, repo.ErrNotFound) {
		hash, err := helpers.HashPassword("password123")
		if err != nil {
			logger.WithError(err).Fatal("hash failed")
		}
		u := &entity.User{Username: "demo", Email: demoEmail, PasswordHash: hash}
		if err := users.Create(ctx, u); err != nil {
			logger.WithError(err).Fatal("seed user failed")
		}
		if _, err := carts.CreateForUser(ctx, u.ID); err != nil {
			logger.WithError(err).Fatal("seed cart failed")
		}
		if _, err := wishlists.CreateForUser(ctx, u.ID); err != nil {
			logger.WithError(err).Fatal("seed wishlist failed")
		}
		logger.WithField("user_id", u.ID).Info("demo user created")
	} else if err != nil {
		logger.WithError(err).Fatal("user lookup failed")
	} else {
		logger.Info("demo user already present, skipping")
	}

	existing, err := categories.List(ctx)
	if err != nil {
		logger.WithError(err).Fatal("category list failed")
	}
	if len(existing) == 0 {
		electronics := &entity.Category{Name: "Electronics", Description: "Devices and accessories"}
		if err := categories.Create(ctx, electronics); err != nil {
			logger.WithError(err).Fatal("seed category failed")
		}
		audio := &entity.Category{Name: "Audio", Description: "Headphones and speakers", ParentID: &electronics.ID}
		if err := categories.Create(ctx, audio); err != nil {
			logger.WithError(err).Fatal("seed category failed")
		}
		logger.Info("categories created")
	}

	catalog, err := products.List(ctx)
	if err != nil {
		logger.WithError(err).Fatal("product list failed")
	}
	if len(catalog) == 0 {
		seed := []entity.Product{
			{Name: "Wireless Headphones", Description: "Over-ear, 30h battery", Price: decimal.RequireFromString("89.99"), StockQuantity: 120},
			{Name: "Mechanical Keyboard", Description: "Tenkeyless, brown switches", Price: decimal.RequireFromString("74.50"), StockQuantity: 45},
			{Name: "USB-C Hub", Description: "7-in-1 with HDMI", Price: decimal.RequireFromString("32.00"), StockQuantity: 200},
		}
		for i := range seed {
			if err := products.Create(ctx, &seed[i]); err != nil {
				logger.WithError(err).Fatal("seed product failed")
			}
		}
		logger.WithField("count", len(seed)).Info("products created")
	}

	logger.Info("seed complete")
}
