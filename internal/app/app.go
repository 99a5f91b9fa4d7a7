package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/CinemaDistrict/internal/config"
	"github.com/stpnv0/CinemaDistrict/internal/handler"
	"github.com/stpnv0/CinemaDistrict/internal/health"
	"github.com/stpnv0/CinemaDistrict/internal/middleware"
	"github.com/stpnv0/CinemaDistrict/internal/notification"
	"github.com/stpnv0/CinemaDistrict/internal/payment"
	"github.com/stpnv0/CinemaDistrict/internal/repository"
	"github.com/stpnv0/CinemaDistrict/internal/router"
	"github.com/stpnv0/CinemaDistrict/internal/scheduler"
	"github.com/stpnv0/CinemaDistrict/internal/seating"
	"github.com/stpnv0/CinemaDistrict/internal/service"
	"github.com/stpnv0/CinemaDistrict/internal/service/ports"
	"github.com/stpnv0/CinemaDistrict/internal/token"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	mongo      *repository.Mongo
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type storage struct {
	users  ports.UserRepo
	kv     ports.KVStore
	pinger health.Pinger
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"CinemaDistrict",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Auth.JWTSecret == config.DefaultJWTSecret && cfg.Gin.Mode == "release" {
		log.Warn("JWT_SECRET is not set, tokens are signed with the development fallback secret")
	}

	st, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*storage, error) {
	switch a.cfg.Storage.Driver {
	case config.StoragePostgres:
		if err := a.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
		return &storage{
			users:  repository.NewUserRepo(a.db),
			kv:     repository.NewPostgresKVStore(a.db),
			pinger: repository.NewPostgresPinger(a.db),
		}, nil

	default:
		if err := a.initMongo(); err != nil {
			return nil, fmt.Errorf("init mongo: %w", err)
		}
		return &storage{
			users:  repository.NewMongoUserRepo(a.mongo),
			kv:     repository.NewMongoKVStore(a.mongo),
			pinger: a.mongo,
		}, nil
	}
}

func (a *App) initMongo() error {
	m, err := repository.NewMongo(
		context.Background(),
		a.cfg.Mongo.URI,
		a.cfg.Mongo.Database,
		a.cfg.Mongo.ConnectTimeout,
	)
	if err != nil {
		return err
	}

	a.mongo = m
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongodb connected",
		logger.String("database", a.cfg.Mongo.Database),
	)

	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices(st *storage) error {
	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	tokens := token.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)
	gateway := payment.NewGateway(a.cfg.Payment.Delay, a.log)
	monitor := health.NewMonitor(st.pinger, a.cfg.Scheduler.PingTimeout)

	authService := service.NewAuthService(st.users, tokens, n, a.cfg.Auth.BcryptCost, a.log)
	checkoutService := service.NewCheckoutService(seating.Generate(seating.DefaultLayout()), gateway, n, a.log)
	ratingService := service.NewRatingService(st.kv, a.log)
	searchService := service.NewSearchService(st.kv)

	a.scheduler = scheduler.New(
		monitor,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(authService, checkoutService, ratingService, searchService, monitor, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.Auth(tokens),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.Origin),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if a.mongo != nil {
		if err := a.mongo.Close(shutdownCtx); err != nil {
			return fmt.Errorf("close mongo: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongodb connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
