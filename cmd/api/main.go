package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"shopstream/internal/config"
	"shopstream/internal/httpserver"
	cartrepo "shopstream/internal/repository/cart"
	catalogrepo "shopstream/internal/repository/catalog"
	cartsvc "shopstream/internal/service/cart"
	catalogsvc "shopstream/internal/service/catalog"
	creatorsvc "shopstream/internal/service/creator"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	cartRepo, err := cartrepo.New(cfg.StoreKind, cfg.DataDir)
	if err != nil {
		logger.Fatalf("init cart store: %v", err)
	}
	catalogRepo, err := catalogrepo.NewFile(cfg.CatalogPath)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}

	cartService := cartsvc.New(cartRepo)
	catalogService := catalogsvc.New(catalogRepo)
	creatorService := creatorsvc.New()

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		CartSvc:    cartService,
		CatalogSvc: catalogService,
		CreatorSvc: creatorService,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

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
