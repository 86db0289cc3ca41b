package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/placemarks-app/placemarks/internal/session/domain"
	sessioncache "github.com/placemarks-app/placemarks/internal/session/infra/cache"
	sessionsqlite "github.com/placemarks-app/placemarks/internal/session/infra/cache/sqlite"
	"github.com/placemarks-app/placemarks/pkg/clock"
	pkgcmd "github.com/placemarks-app/placemarks/pkg/cmd"
	"github.com/placemarks-app/placemarks/pkg/env"
	pkghttp "github.com/placemarks-app/placemarks/pkg/http"
	"github.com/placemarks-app/placemarks/pkg/lazy"
	"github.com/placemarks-app/placemarks/pkg/log"
	"github.com/placemarks-app/placemarks/pkg/message"
	"github.com/placemarks-app/placemarks/pkg/pulsar"
	pkgsql "github.com/placemarks-app/placemarks/pkg/sql"
)

var logLevelMap = map[string]log.Level{
	"disabled": log.LevelDisabled,
	"debug":    log.LevelDebug,
	"info":     log.LevelInfo,
	"warn":     log.LevelWarn,
	"error":    log.LevelError,
}

type InfrastructureContainer struct {
	Logger        lazy.Loader[log.Logger]
	Clock         clock.Clock
	DB            lazy.Loader[pkgsql.Database]
	DBMigrations  lazy.Loader[SQLMigrations]
	HTTPServer    lazy.Loader[pkghttp.Server]
	HTTPClient    lazy.Loader[pkghttp.Client]
	MessageBroker lazy.Loader[message.Broker]
	SessionStore  lazy.Loader[domain.Store]

	SessionSQLiteStore lazy.Loader[*sessionsqlite.Store]

	messageBrokerImpl lazy.Loader[*pulsar.MessageBroker]
}

func NewInfrastructureContainer(ctx context.Context) *InfrastructureContainer {
	// Missing .env is fine, the process environment wins either way.
	_ = godotenv.Load()

	systemClock := clock.New()
	logger := loggerProvider()
	db := sqlDatabaseProvider(logger)

	msgBrokerImpl := pulsarMessageBrokerProvider()
	sessionStoreImpl := sqliteSessionStoreProvider(systemClock)

	return &InfrastructureContainer{
		Logger:       logger,
		Clock:        systemClock,
		DB:           db,
		DBMigrations: sqlMigrationsProvider(ctx, db, logger),
		HTTPServer:   httpServerProvider(logger),
		HTTPClient:   httpClientProvider(logger),
		MessageBroker: lazy.New(func() (message.Broker, error) {
			return msgBrokerImpl.Load()
		}),
		SessionStore:       sessionStoreProvider(systemClock, sessionStoreImpl),
		SessionSQLiteStore: sessionStoreImpl,
		messageBrokerImpl:  msgBrokerImpl,
	}
}

func (i *InfrastructureContainer) Close(ctx context.Context) {
	if pkgcmd.HandleAppPanic(ctx, i.Logger.MustLoad()) {
		defer os.Exit(1)
	}

	i.messageBrokerImpl.IfLoaded(func(broker *pulsar.MessageBroker) { broker.Close() })
	i.SessionSQLiteStore.IfLoaded(func(store *sessionsqlite.Store) { _ = store.Close() })
	i.DB.IfLoaded(func(db pkgsql.Database) { db.Close(ctx) })
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel, ok := logLevelMap[env.ParseStringDefault("LOG_LEVEL", "info")]
		if !ok {
			logLevel = log.LevelInfo
		}

		return log.New(logLevel), nil
	})
}

func sqlDatabaseProvider(logger lazy.Loader[log.Logger]) lazy.Loader[pkgsql.Database] {
	return lazy.New(func() (pkgsql.Database, error) {
		config := &pkgsql.Config{
			DSN: pkgsql.DSN{
				User:     env.Must(env.ParseString("SQL_USER")),
				Password: env.Must(env.ParseString("SQL_PASSWORD")),
				Address:  env.Must(env.ParseString("SQL_ADDRESS")),
				Database: env.Must(env.ParseString("SQL_DATABASE")),
			},
			ConnectionTimeout:  env.ParseDurationDefault("SQL_CONNECTION_TIMEOUT", 0),
			MaxOpenConnections: env.ParseIntDefault("SQL_MAX_OPEN_CONNECTIONS", 0),
		}

		db, err := pkgsql.NewDatabase(config, logger.MustLoad())
		if err != nil {
			return nil, fmt.Errorf("open sql connection: %w", err)
		}
		return db, nil
	})
}

func sqlMigrationsProvider(
	ctx context.Context,
	db lazy.Loader[pkgsql.Database],
	logger lazy.Loader[log.Logger],
) lazy.Loader[SQLMigrations] {
	return lazy.New(func() (SQLMigrations, error) {
		return NewSQLMigrations(ctx, db.MustLoad(), logger.MustLoad()), nil
	})
}

func httpServerProvider(logger lazy.Loader[log.Logger]) lazy.Loader[pkghttp.Server] {
	return lazy.New(func() (pkghttp.Server, error) {
		return pkghttp.NewServer(
			env.ParseStringDefault("SERVICE_ADDRESS", pkghttp.DefaultServerAddress),
			pkghttp.WithHealthCheck(nil),
			pkghttp.WithPanicRecovery(logger.MustLoad()),
			pkghttp.WithLogging(logger.MustLoad()),
		), nil
	})
}

func httpClientProvider(logger lazy.Loader[log.Logger]) lazy.Loader[pkghttp.Client] {
	return lazy.New(func() (pkghttp.Client, error) {
		return pkghttp.NewClient(
			pkghttp.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}

func pulsarMessageBrokerProvider() lazy.Loader[*pulsar.MessageBroker] {
	return lazy.New(func() (*pulsar.MessageBroker, error) {
		config := &pulsar.Config{
			Address:           env.Must(env.ParseString("PULSAR_ADDRESS")),
			ConnectionTimeout: env.ParseDurationDefault("PULSAR_CONNECTION_TIMEOUT", 0),
		}

		messageBroker, err := pulsar.NewMessageBroker(config, log.New(log.LevelDisabled))
		if err != nil {
			return nil, fmt.Errorf("open pulsar connection: %w", err)
		}
		return messageBroker, nil
	})
}

func sqliteSessionStoreProvider(systemClock clock.Clock) lazy.Loader[*sessionsqlite.Store] {
	return lazy.New(func() (*sessionsqlite.Store, error) {
		path := env.ParseStringDefault("SESSION_SQLITE_PATH", "placemarks-session.db")
		store, err := sessionsqlite.NewStore(path, systemClock)
		if err != nil {
			return nil, fmt.Errorf("open session store: %w", err)
		}
		return store, nil
	})
}

func sessionStoreProvider(
	systemClock clock.Clock,
	sqliteStore lazy.Loader[*sessionsqlite.Store],
) lazy.Loader[domain.Store] {
	return lazy.New(func() (domain.Store, error) {
		if env.ParseBoolDefault("SESSION_STORE_IN_MEMORY", false) {
			return sessioncache.NewMemoryStore(systemClock), nil
		}
		return sqliteStore.Load()
	})
}
