package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/storefront/internal/cart"
	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/checkout"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/db"
	"github.com/rogerio-castellano/storefront/internal/http/handlers"
	rl "github.com/rogerio-castellano/storefront/internal/http/rate_limiter"
	"github.com/rogerio-castellano/storefront/internal/http/router"
	"github.com/rogerio-castellano/storefront/internal/logging"
	"github.com/rogerio-castellano/storefront/internal/notify"
	"github.com/rogerio-castellano/storefront/internal/redissvc"
	"github.com/rogerio-castellano/storefront/internal/repo"
	"github.com/rogerio-castellano/storefront/internal/session"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// @title Storefront API
// @version 1.0
// @description Catalog browsing, session carts and simulated checkout over a third-party product catalog.
// @host localhost:8080
// @BasePath /
func main() {
	app := &cli.App{
		Name:  "storefront",
		Usage: "storefront backend: catalog, carts and checkout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a config file (yaml, json or toml)",
				EnvVars: []string{"STOREFRONT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "categories",
				Usage:  "print the catalog categories",
				Action: categories,
			},
		},
		DefaultCommand: "serve",
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return cfg, err
	}
	return cfg, logging.Setup(cfg.Log.Level, cfg.Log.Format)
}

func newCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.NewClient(catalog.Config{
		BaseURL:         cfg.Catalog.BaseURL,
		Timeout:         cfg.Catalog.Timeout,
		BreakerFailures: cfg.Catalog.BreakerFailures,
		BreakerTimeout:  cfg.Catalog.BreakerTimeout,
	})
}

func categories(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	list, err := newCatalogClient(cfg).GetCategories(c.Context)
	if err != nil {
		return errors.Wrapf(err, "could not reach catalog at %s", cfg.Catalog.BaseURL)
	}
	for _, category := range list {
		fmt.Println(category)
	}
	return nil
}

func serve(c *cli.Context) error {
	ctx := c.Context
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	var rdb *redis.Client
	var cartRepo repo.CartRepository = repo.NewInMemoryCartRepository()
	if cfg.Redis.Addr != "" {
		redisService, err := redissvc.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer redisService.Close()
		rdb = redisService.Rdb()
		cartRepo = repo.NewRedisCartRepository(rdb, cfg.Cart.TTL)
		log.Printf("✅ Redis connected at %s", cfg.Redis.Addr)
	}

	var orders repo.OrderRepository = repo.NewInMemoryOrderRepository()
	if cfg.Database.URL != "" {
		database, err := db.Connect(cfg.Database.URL)
		if err != nil {
			return errors.Wrap(err, "could not connect to database")
		}
		defer database.Close()
		if cfg.Database.Migrate {
			if err := db.Migrate(database); err != nil {
				return err
			}
		}
		orders = repo.NewPostgresOrderRepository(database)
		log.Println("✅ Postgres connected")
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.SMTP.Server != "" {
		smtpNotifier := notify.NewSMTPNotifier(notify.SMTPConfig{
			Server:       cfg.SMTP.Server,
			Port:         cfg.SMTP.Port,
			User:         cfg.SMTP.User,
			Password:     cfg.SMTP.Password,
			From:         cfg.SMTP.From,
			AuthDisabled: cfg.SMTP.AuthDisabled,
			SummaryTo:    cfg.SMTP.SummaryTo,
		}, rdb)
		go smtpNotifier.StartDailySummary(ctx)
		notifier = smtpNotifier
	}

	products := repo.NewCachedProductRepository(newCatalogClient(cfg), rdb, cfg.Catalog.CacheTTL)

	carts := cart.NewSessions(cartRepo)
	go carts.StartCleanupLoop(ctx, cfg.Cart.CleanupInterval, cfg.Cart.IdleEviction)

	limiter := rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.Idle)
	go limiter.StartVisitorCleanupLoop(ctx)

	issuer, err := session.NewIssuer(cfg.Session.Secret, cfg.Session.TTL)
	if err != nil {
		return err
	}
	if cfg.Session.Secret == "" {
		log.Warn("session.secret is not set: sessions will not survive a restart")
	}

	srv := handlers.NewServer(products, carts, checkout.NewService(orders, notifier, cfg.Checkout.ProcessingDelay), orders)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.NewRouter(srv, issuer, limiter),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("✅ Server running on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
