package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
	config "github.com/smartshop-tech/go-backend/internal/cfg"
	v1Http "github.com/smartshop-tech/go-backend/internal/delivery/v1/http"
	"github.com/smartshop-tech/go-backend/internal/infrastructure/dataset"
	"github.com/smartshop-tech/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/smartshop-tech/go-backend/internal/repository/pgdb/converter/generated"
	"github.com/smartshop-tech/go-backend/internal/repository/redis"
	redisConv "github.com/smartshop-tech/go-backend/internal/repository/redis/converter/generated"
	"github.com/smartshop-tech/go-backend/internal/usecase"
	"github.com/smartshop-tech/go-backend/pkg/clients"
	"github.com/smartshop-tech/go-backend/pkg/closer"
	"github.com/smartshop-tech/go-backend/pkg/e"
	"github.com/smartshop-tech/go-backend/pkg/logger"
	"github.com/smartshop-tech/go-backend/pkg/postgres"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	shutdownCloser := closer.New()

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	shutdownCloser.Add("postgres", func(ctx context.Context) error {
		db.Close()
		return nil
	})

	catConv := pgdbConv.NewCategoryConverterImpl()
	prConv := pgdbConv.NewProductConverterImpl()
	infoConv := redisConv.NewProductInfoConverterImpl()
	lineConv := redisConv.NewCartLineConverterImpl()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)
	categoryRepo := pgdb.NewCategoryRepo(db.Pool, catConv)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	shutdownCloser.Add("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, infoConv, cfg.Redis, logger)
	cartRepo := redis.NewCartRepo(redisClient, lineConv, logger)

	datasetInfra := dataset.NewFileInfrastructure(cfg.Catalog, logger)

	catalogUC := usecase.NewCatalogUC(
		productRepo,
		categoryRepo,
		cacheRepo,
		datasetInfra,
		db.Pool,
		logger,
	)

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	if err := catalogUC.Seed(seedCtx); err != nil {
		logger.Errorf(err, "failed to seed catalog")
		os.Exit(1)
	}

	cartStore := usecase.NewCartStore(cartRepo, cfg.Cart, logger)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 5*time.Second)
	cartStore.Load(loadCtx)
	loadCancel()
	shutdownCloser.Add("cart persistence", cartStore.WaitForPersistence)

	checkoutUC := usecase.NewCheckoutUC(cartStore, cfg.Checkout, logger)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC, cartStore, checkoutUC)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Errorf(err, "HTTP server shutdown error")
	} else {
		logger.Infof("HTTP server stopped")
	}

	if err := shutdownCloser.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	} else {
		logger.Infof("Application shutdown complete")
	}

	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
