// Package database owns the process-wide connection pool. It is opened once at
// startup, handed to the store as a *gorm.DB and closed on shutdown.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lightbnb/lightbnb/internal/config"
)

// DB is an open connection pool with a gorm session on top of it.
type DB struct {
	gorm  *gorm.DB
	sqlDB *sql.DB
	pool  *pgxpool.Pool
}

// Open connects to the Postgres database named by cfg.DatabaseURL through a
// pgx pool.
func Open(ctx context.Context, cfg config.Config) (*DB, error) {
	poolCfg, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig(cfg, os.Stderr))
	if err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}

	return &DB{gorm: gdb, sqlDB: sqlDB, pool: pool}, nil
}

// OpenDialector opens a gorm session over an arbitrary dialector, such as
// sqlite for local files and tests. MaxConns and MaxConnLifetime apply as
// they do for Open; MinConns only bounds the idle connections kept.
func OpenDialector(dialector gorm.Dialector, cfg config.Config) (*DB, error) {
	return openDialector(dialector, cfg, os.Stderr)
}

func openDialector(dialector gorm.Dialector, cfg config.Config, logOut io.Writer) (*DB, error) {
	gdb, err := gorm.Open(dialector, gormConfig(cfg, logOut))
	if err != nil {
		return nil, fmt.Errorf("failed to open gorm session: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if cfg.MaxConns > 0 {
		sqlDB.SetMaxOpenConns(int(cfg.MaxConns))
	}
	// database/sql has no minimum pool size. MinConns raises the idle cap
	// instead, so that many connections stay open once they have been used.
	if cfg.MinConns > 0 {
		sqlDB.SetMaxIdleConns(int(cfg.MinConns))
	}
	sqlDB.SetConnMaxLifetime(cfg.MaxConnLifetime)

	return &DB{gorm: gdb, sqlDB: sqlDB}, nil
}

// Gorm returns the session to inject into the store.
func (d *DB) Gorm() *gorm.DB {
	return d.gorm
}

// Close releases every connection. The DB must not be used afterwards.
func (d *DB) Close() error {
	err := d.sqlDB.Close()
	if d.pool != nil {
		d.pool.Close()
	}
	if err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}

func poolConfig(cfg config.Config) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MinConns = cfg.MinConns
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	// Prepared statements are cached per connection.
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheStatement
	poolCfg.ConnConfig.StatementCacheCapacity = 128
	return poolCfg, nil
}

func gormConfig(cfg config.Config, logOut io.Writer) *gorm.Config {
	return &gorm.Config{
		Logger:                 newLogger(cfg, logOut),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	}
}

func newLogger(cfg config.Config, out io.Writer) logger.Interface {
	return logger.New(log.New(out, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             cfg.SlowQueryThreshold,
		LogLevel:                  logLevel(cfg.LogLevel),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func logLevel(level string) logger.LogLevel {
	switch level {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
