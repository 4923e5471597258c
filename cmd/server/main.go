package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/iliyamo/cinema-ticket-booking/internal/catalog"
	"github.com/iliyamo/cinema-ticket-booking/internal/clock"
	"github.com/iliyamo/cinema-ticket-booking/internal/config"
	"github.com/iliyamo/cinema-ticket-booking/internal/database"
	"github.com/iliyamo/cinema-ticket-booking/internal/handler"
	"github.com/iliyamo/cinema-ticket-booking/internal/idgen"
	"github.com/iliyamo/cinema-ticket-booking/internal/logger"
	"github.com/iliyamo/cinema-ticket-booking/internal/middleware"
	"github.com/iliyamo/cinema-ticket-booking/internal/model"
	"github.com/iliyamo/cinema-ticket-booking/internal/queue"
	"github.com/iliyamo/cinema-ticket-booking/internal/registry"
	"github.com/iliyamo/cinema-ticket-booking/internal/repository"
	"github.com/iliyamo/cinema-ticket-booking/internal/reservation"
	"github.com/iliyamo/cinema-ticket-booking/internal/router"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	clk := clock.NewSystem()

	cinemas, err := loadCatalog(ctx, cfg, clk, log)
	if err != nil {
		return err
	}
	ix := catalog.Build(cinemas)
	log.Info("catalog ready",
		zap.Int("cinemas", len(ix.Cinemas())),
		zap.Strings("movies", ix.Movies()))

	customers := registry.New(idgen.NewSequence(0), clk, cfg.BcryptCost)
	reservations := reservation.NewService(idgen.NewSequence(0), clk, reservation.WithDirectory(customers))

	rdb, err := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if err != nil {
		log.Warn("redis unavailable; rate limit and cache disabled", zap.Error(err))
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var events handler.TicketPublisher
	if cfg.UseBroker() {
		pub, err := queue.Dial(cfg.AMQPURL, log)
		if err != nil {
			log.Warn("rabbitmq unavailable; ticket events disabled", zap.Error(err))
		} else {
			defer pub.Close()
			events = pub
		}
		consumer := &queue.Consumer{URL: cfg.AMQPURL, Dir: "logs", Log: log.Named("ticket-consumer")}
		go func() {
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("ticket consumer stopped", zap.Error(err))
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.RequestLogger(log))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, customers, clk))
	router.RegisterPublic(e, handler.NewPublicHandler(ix),
		middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterCustomer(e,
		handler.NewBookingHandler(ix, reservations, customers, events, log),
		cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb, log))

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("listening", zap.String("addr", addr), zap.String("env", cfg.Env))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

// loadCatalog reads upcoming shows from MySQL, or seeds the demo catalog
// when no database is configured.
func loadCatalog(ctx context.Context, cfg config.Config, clk clock.Clock, log *zap.Logger) ([]*model.Cinema, error) {
	if !cfg.UseDatabase() {
		log.Info("DB_HOST not set; using demo catalog")
		return catalog.Demo(idgen.NewSequence(0), clk.Now()), nil
	}
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return catalog.Load(ctx, repository.NewCatalogRepo(db), clk.Now())
}
