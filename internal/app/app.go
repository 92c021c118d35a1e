package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/klimatr26/booking-hub/internal/clock"
	"github.com/klimatr26/booking-hub/internal/config"
	"github.com/klimatr26/booking-hub/internal/domain"
	"github.com/klimatr26/booking-hub/internal/handler"
	"github.com/klimatr26/booking-hub/internal/middleware"
	"github.com/klimatr26/booking-hub/internal/notification"
	"github.com/klimatr26/booking-hub/internal/orchestrator"
	"github.com/klimatr26/booking-hub/internal/paygate"
	"github.com/klimatr26/booking-hub/internal/provider"
	"github.com/klimatr26/booking-hub/internal/provider/httpgw"
	"github.com/klimatr26/booking-hub/internal/provider/sandbox"
	"github.com/klimatr26/booking-hub/internal/repository"
	"github.com/klimatr26/booking-hub/internal/resilience"
	"github.com/klimatr26/booking-hub/internal/router"
	"github.com/klimatr26/booking-hub/internal/scheduler"
	"github.com/klimatr26/booking-hub/internal/service"
	"github.com/klimatr26/booking-hub/internal/store"
	"github.com/klimatr26/booking-hub/internal/store/memory"
	"github.com/klimatr26/booking-hub/internal/store/postgres"
	"github.com/klimatr26/booking-hub/migrations"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const appName = "booking-hub"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	clock      clock.Clock
	db         *dbpg.DB
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg, clock: clock.NewSystem()}

	log, err := newLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if cfg.Storage.Driver == config.DriverPostgres {
		if err = runMigrations(cfg, log); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// Migrate applies pending migrations without building the rest of the app.
func Migrate(cfg *config.Config) error {
	log, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return runMigrations(cfg, log)
}

func newLogger(cfg *config.Config) (logger.Logger, error) {
	return logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
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
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

// newStore picks the collection backend for the configured storage driver.
func newStore[T store.Keyed[T]](a *App, collection string) store.Store[T] {
	if a.db != nil {
		return postgres.New[T](a.db, collection)
	}
	return memory.New[T]()
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(newStore[domain.User](a, "users"))
	reservationRepo := repository.NewReservationRepo(newStore[domain.Reservation](a, "reservations"))
	lineRepo := repository.NewReservationLineRepo(newStore[domain.ReservationLine](a, "reservation_lines"))
	paymentRepo := repository.NewPaymentRepo(newStore[domain.Payment](a, "payments"))
	holdRepo := repository.NewPreReservationRepo(newStore[domain.PreReservation](a, "pre_reservations"))
	cacheRepo := repository.NewServiceCacheRepo(newStore[domain.ServiceOffering](a, "service_cache"))

	limit, err := decimal.NewFromString(a.cfg.Payments.Limit)
	if err != nil {
		return fmt.Errorf("payments limit: %w", err)
	}

	registry, err := a.initProviders()
	if err != nil {
		return fmt.Errorf("init providers: %w", err)
	}

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	retry := resilience.Policy{
		Attempts:  a.cfg.Orchestrator.RetryAttempts,
		BaseDelay: a.cfg.Orchestrator.RetryBaseDelay,
	}

	userService := service.NewUserService(userRepo, a.clock)
	reservationService := service.NewReservationService(reservationRepo, lineRepo, paymentRepo, userRepo, a.clock, a.log)
	paymentService := service.NewPaymentService(paymentRepo, reservationRepo, paygate.NewSandbox(limit), retry, a.clock, a.log)

	orch := orchestrator.New(
		registry,
		cacheRepo,
		holdRepo,
		userRepo,
		reservationService,
		paymentService,
		n,
		a.clock,
		a.log,
		orchestrator.Options{
			Retry:              retry,
			MaxParallel:        a.cfg.Orchestrator.MaxParallel,
			DefaultHoldMinutes: a.cfg.Orchestrator.DefaultHoldMinutes,
		},
	)

	a.scheduler = scheduler.New(
		orch,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(orch, reservationService, paymentService, userService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
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

func (a *App) initProviders() (*provider.Registry, error) {
	entries, err := a.cfg.Providers.Entries()
	if err != nil {
		return nil, err
	}

	registry := provider.NewRegistry()
	for _, entry := range entries {
		var gw provider.Gateway
		switch entry.Kind {
		case config.KindHTTP:
			gw = httpgw.New(entry.Name, entry.Endpoint, a.cfg.Providers.TimeoutFor(entry))
		default:
			items := sandbox.Catalog(entry.Name, entry.Type, a.cfg.Providers.CityList(), a.cfg.Providers.Size)
			gw = sandbox.New(entry.Name, a.cfg.Payments.Currency, items).WithClock(a.clock.Now)
		}

		if err := registry.Register(entry.Name, entry.Type, entry.Enabled, gw); err != nil {
			return nil, err
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "provider registered",
			logger.String("provider", entry.Name),
			logger.String("type", string(entry.Type)),
			logger.String("kind", entry.Kind),
			logger.Any("enabled", entry.Enabled),
			logger.Duration("timeout", a.cfg.Providers.TimeoutFor(entry)),
		)
	}

	return registry, nil
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

// Sweep runs a single expiry pass and returns how many holds were expired.
func (a *App) Sweep(ctx context.Context) (int, error) {
	return a.scheduler.RunOnce(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	return nil
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

	if err := a.Close(); err != nil {
		return err
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func runMigrations(cfg *config.Config, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		return err
	}

	log.Info("migrations applied successfully")
	return nil
}
