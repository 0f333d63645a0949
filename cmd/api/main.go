package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront-api/internal/config"
	"storefront-api/internal/db"
	"storefront-api/internal/httpserver"
	"storefront-api/internal/payment"
	addressrepo "storefront-api/internal/repository/address"
	cartrepo "storefront-api/internal/repository/cart"
	featurerepo "storefront-api/internal/repository/feature"
	orderrepo "storefront-api/internal/repository/order"
	productrepo "storefront-api/internal/repository/product"
	reviewrepo "storefront-api/internal/repository/review"
	tokenrepo "storefront-api/internal/repository/token"
	userrepo "storefront-api/internal/repository/user"
	addresssvc "storefront-api/internal/service/address"
	authsvc "storefront-api/internal/service/auth"
	cartsvc "storefront-api/internal/service/cart"
	catalogsvc "storefront-api/internal/service/catalog"
	checkoutsvc "storefront-api/internal/service/checkout"
	featuresvc "storefront-api/internal/service/feature"
	ordersvc "storefront-api/internal/service/order"
	reviewsvc "storefront-api/internal/service/review"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	addressRepo := addressrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	reviewRepo := reviewrepo.NewPostgres(dbpool)
	featureRepo := featurerepo.NewPostgres(dbpool)

	provider := payment.NewMock()

	deps := httpserver.Deps{
		Auth:     authsvc.New(userRepo, tokenRepo, cfg.TokenTTL),
		Catalog:  catalogsvc.New(productRepo),
		Cart:     cartsvc.New(cartRepo, productRepo),
		Checkout: checkoutsvc.New(cartRepo, addressRepo, orderRepo, provider, logger, cfg.Currency),
		Orders:   ordersvc.New(orderRepo),
		Address:  addresssvc.New(addressRepo),
		Reviews:  reviewsvc.New(reviewRepo, productRepo),
		Features: featuresvc.New(featureRepo),
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, deps, cfg.ClientOrigin)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
