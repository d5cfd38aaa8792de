package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/lightbnb/lightbnb/internal/model"
)

// Bootstrap creates the users, properties, reservations and property_reviews
// tables when they do not exist yet. Existing tables are left as they are.
func Bootstrap(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.Tables...); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}
