// Package app wires the lock coordinator to the configured store and
// observability stack. It is shared by the HTTP service and the operator CLI.
package app

import (
	"context"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/document-lock/internal/domain/usecase/lock"
	"github.com/amirhossein-jamali/document-lock/internal/domain/usecase/transaction"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/id"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/telemetry"
	timeprovider "github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds the wired components
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	Clock        coreport.TimeProvider
	Registry     *prometheus.Registry
	Coordinator  *lock.Coordinator
	Transactions *transaction.TransactionManager
	Guard        *lock.Guard
	// DB is nil when locks are kept in process memory
	DB *database.Manager

	closers []func(context.Context) error
}

// Options tunes what New wires besides the coordinator
type Options struct {
	// Migrate runs schema migrations after connecting to PostgreSQL
	Migrate bool
	// Observability installs tracing and prometheus collectors
	Observability bool
}

// New builds the application from cfg
func New(ctx context.Context, cfg *config.Config, logger coreport.Logger, opts Options) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
		Clock:  timeprovider.NewRealTimeProvider(),
	}

	var lockMetrics coreport.LockMetrics = metrics.NoopMetrics{}
	if opts.Observability {
		shutdown, err := telemetry.SetupTracing(cfg.Telemetry.TracingEnabled, cfg.Telemetry.ServiceName)
		if err != nil {
			return nil, fmt.Errorf("setup tracing: %w", err)
		}
		a.closers = append(a.closers, shutdown)

		if cfg.Telemetry.MetricsEnabled {
			a.Registry = prometheus.NewRegistry()
			a.Registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			metrics.RegisterHTTPMetrics(a.Registry)
			lockMetrics = metrics.NewPrometheusMetrics(a.Registry)
		}
	}

	uow, err := a.openStore(ctx, opts)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	ids := id.NewUUIDGenerator()
	a.Transactions = transaction.NewTransactionManager(uow, ids, logger)
	a.Coordinator = lock.NewCoordinator(
		uow,
		a.Transactions,
		lock.NewRegistry(),
		ids,
		a.Clock,
		logger,
		lockMetrics,
		lockConfig(cfg.Lock),
	)
	a.Guard = lock.NewGuard(a.Coordinator, a.Transactions)

	return a, nil
}

func (a *App) openStore(ctx context.Context, opts Options) (persistence.UnitOfWork, error) {
	switch a.Config.Store.Driver {
	case config.StoreDriverMemory:
		a.Logger.Warn("Using in-process lock store, locks are lost on restart", nil)
		return memory.NewUnitOfWork(memory.NewStore(), a.Logger), nil

	case config.StoreDriverPostgres, "":
		manager := database.NewManager(database.CreateConfigFromViperConfig(a.Config), a.Logger, a.Clock)
		if _, err := manager.Connect(ctx); err != nil {
			return nil, err
		}
		a.DB = manager
		a.closers = append(a.closers, func(context.Context) error { return manager.Close() })

		if opts.Migrate {
			if err := manager.Migrate(ctx); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
		}
		if a.Registry != nil {
			if err := manager.RegisterMetrics(a.Registry); err != nil {
				a.Logger.Warn("Failed to register connection pool metrics", map[string]any{"error": err.Error()})
			}
		}
		return manager.CreateUnitOfWork(), nil

	default:
		return nil, fmt.Errorf("unsupported store driver: %s", a.Config.Store.Driver)
	}
}

// StoreName names the configured store for diagnostics
func (a *App) StoreName() string {
	if a.DB != nil {
		return config.StoreDriverPostgres
	}
	return config.StoreDriverMemory
}

// Ping checks the lock store; the in-process store is always reachable
func (a *App) Ping(ctx context.Context) error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Ping(ctx)
}

// Close releases resources in reverse order of acquisition
func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	if err := a.Logger.Flush(); err != nil {
		a.Logger.Debug("Logger flush failed", map[string]any{"error": err.Error()})
	}
	return errors.Join(errs...)
}

func lockConfig(c config.LockConfig) lock.Config {
	return lock.Config{
		AcquireMaxAttempts:      c.AcquireMaxAttempts,
		AcquireRetryInterval:    c.AcquireRetryInterval(),
		AcquireMaxRetryInterval: c.AcquireMaxRetryInterval(),
		AcquireTimeout:          c.AcquireTimeout(),
		ReleaseTimeout:          c.ReleaseTimeout(),
	}
}
