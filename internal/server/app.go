// Package server wires the auth server together: it opens the user store,
// builds the hasher, token store and AuthService, and runs the gRPC facade,
// the observability endpoint and the session sweeper until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gophauth/internal/cryptox"
	"github.com/dmitrijs2005/gophauth/internal/dbx"
	"github.com/dmitrijs2005/gophauth/internal/filex"
	"github.com/dmitrijs2005/gophauth/internal/logging"
	"github.com/dmitrijs2005/gophauth/internal/server/config"
	"github.com/dmitrijs2005/gophauth/internal/server/observability"
	"github.com/dmitrijs2005/gophauth/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophauth/internal/server/services"
	"github.com/dmitrijs2005/gophauth/internal/server/store"
	"github.com/dmitrijs2005/gophauth/internal/server/tokens"
	"github.com/dmitrijs2005/gophauth/internal/server/validation"
	"golang.org/x/sync/errgroup"

	gs "github.com/dmitrijs2005/gophauth/internal/server/grpc"
)

// userStore is what the App needs from a user store beyond the service
// contract: a readiness probe.
type userStore interface {
	services.UserStore
	Ping(ctx context.Context) error
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	users    userStore
	sessions *tokens.Store
	auth     *services.AuthService
	metrics  *observability.Server
	grpc     *gs.GRPCServer
	sweeper  *tokens.Sweeper
	closers  []io.Closer
}

// NewApp validates c and builds every component. The caller must call Close
// when NewApp succeeds.
func NewApp(ctx context.Context, c *config.Config, logOutput io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger, err := logging.New(c.LogFormat, c.LogLevel, logOutput)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	app := &App{config: c, logger: logger}

	if err := app.initUserStore(ctx); err != nil {
		app.Close()
		return nil, err
	}

	hasher, err := cryptox.NewHasher(c.HashParams(), c.PasswordPepper)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	app.sessions = tokens.NewStore(tokens.WithTTL(c.SessionTTL))
	app.sweeper = tokens.NewSweeper(app.sessions, c.SessionSweepInterval, logger)

	app.metrics = observability.NewServer(c.MetricsAddr, app.users.Ping, logger)
	observability.RegisterSessionGauge(app.metrics.Registry(), app.sessions.Len)

	opts := []services.Option{}
	if c.AuditLogFile != "" {
		audit, err := app.openAuditLog(c.AuditLogFile)
		if err != nil {
			app.Close()
			return nil, err
		}
		opts = append(opts, services.WithAuditLogger(audit))
	}

	app.auth = services.NewAuthService(
		app.users,
		app.sessions,
		observability.InstrumentHasher(hasher, app.metrics.Metrics()),
		logger,
		opts...,
	)

	app.grpc = gs.NewGRPCServer(c.EndpointAddrGRPC, logger, app.auth,
		gs.WithRules(validation.Rules{StrongPasswords: c.StrictPasswords}),
		gs.WithObserver(app.metrics.Metrics()),
	)

	return app, nil
}

func (app *App) initUserStore(ctx context.Context) error {
	if app.config.UseInMemoryStore {
		app.logger.Warn(ctx, "using in-memory user store, data is lost on exit")
		app.users = store.NewMemory()
		return nil
	}

	db, err := dbx.OpenPostgres(ctx, app.config.DatabaseDSN, dbx.PoolConfig{
		MaxOpenConns: app.config.DBMaxOpenConns,
		MaxIdleConns: app.config.DBMaxOpenConns,
	}, app.config.DBAcquireTimeout)
	if err != nil {
		return fmt.Errorf("db init error: %w", err)
	}
	app.db = db
	app.closers = append(app.closers, db)

	repos := repomanager.NewPostgresRepositoryManager()
	if err := repos.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	app.users = store.NewPostgres(db, repos, app.config.DBAcquireTimeout)
	return nil
}

func (app *App) openAuditLog(path string) (logging.Logger, error) {
	f, err := filex.OpenAppend(path)
	if err != nil {
		return nil, fmt.Errorf("audit log open error: %w", err)
	}
	app.closers = append(app.closers, f)
	audit, err := logging.New("json", "info", f)
	if err != nil {
		return nil, err
	}
	return audit.With("log", "audit"), nil
}

func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run serves until ctx is cancelled, a shutdown signal arrives or one of the
// components fails. It returns the first component error.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := app.initSignalHandler(ctx)
	defer stop()

	app.logger.Info(ctx, "Starting app...",
		"grpc_addr", app.config.EndpointAddrGRPC,
		"metrics_addr", app.config.MetricsAddr,
		"session_ttl", app.config.SessionTTL.String(),
		"in_memory", app.config.UseInMemoryStore,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return app.grpc.Run(ctx)
	})

	if app.config.MetricsAddr != "" {
		g.Go(func() error {
			return app.metrics.Run(ctx)
		})
	}

	g.Go(func() error {
		return app.sweeper.Run(ctx)
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "app stopped with error", logging.ErrorAttrs(err)...)
	} else {
		app.logger.Info(context.Background(), "app stopped")
	}
	return err
}

// Close releases the database pool and the audit log file.
func (app *App) Close() error {
	var errs []error
	for i := len(app.closers) - 1; i >= 0; i-- {
		if err := app.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	app.closers = nil
	return errors.Join(errs...)
}
