package commands

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"

	"github.com/lightbnb/lightbnb/internal/config"
	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/store"
)

const sqliteScheme = "sqlite://"

// getDB opens the database named by DATABASE_URL. A sqlite:// URL opens a
// local sqlite file; anything else is handed to the Postgres pool.
func getDB(ctx context.Context) (*database.DB, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if path, ok := strings.CutPrefix(cfg.DatabaseURL, sqliteScheme); ok {
		return database.OpenDialector(sqlite.Open(sqliteDSN(path)), cfg)
	}
	return database.Open(ctx, cfg)
}

// sqliteDSN turns on foreign key enforcement, which sqlite leaves off per
// connection.
func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on"
}

// withStore runs fn against a store over a freshly opened pool and closes the
// pool afterwards.
func withStore(ctx context.Context, fn func(*store.Store) error) (rerr error) {
	db, err := getDB(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	return fn(store.New(db.Gorm()))
}

func formatRating(avg *float64) string {
	if avg == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *avg)
}
