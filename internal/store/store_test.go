package store

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/lightbnb/lightbnb/internal/database"
	"github.com/lightbnb/lightbnb/internal/model"
)

var (
	testNow = time.Date(2026, time.October, 15, 12, 30, 0, 0, time.UTC)
	dbSeq   atomic.Int64
)

func testGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		TranslateError:         true,
		SkipDefaultTransaction: true,
	}
}

// setupTestDB opens a private in-memory sqlite database with the LightBnB
// tables created.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:store_test_%d?mode=memory&cache=shared&_foreign_keys=on", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), testGormConfig())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Bootstrap(context.Background(), db))
	return db
}

func setupTestStore(t *testing.T) (*Store, *gorm.DB) {
	db := setupTestDB(t)
	return New(db, WithClock(func() time.Time { return testNow })), db
}

// setupMockStore opens a postgres-dialect store over sqlmock.
func setupMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), testGormConfig())
	require.NoError(t, err)
	return New(db), mock
}

func dryRunPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB}), testGormConfig())
	require.NoError(t, err)
	return db.Session(&gorm.Session{DryRun: true})
}

func createUser(t *testing.T, db *gorm.DB, name, email string) model.User {
	t.Helper()
	u := model.User{Name: name, Email: email, Password: "$2a$10$FB/BOAVhpuLvpOREQVmvmezD4ED/.JBIDRh70tGevYzYzQgFId2u."}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func createProperty(t *testing.T, db *gorm.DB, ownerID int64, title, city string, cost int64) model.Property {
	t.Helper()
	p := model.Property{
		OwnerID:           ownerID,
		Title:             title,
		Description:       "description",
		ThumbnailPhotoURL: "https://images.example.com/thumb.jpg",
		CoverPhotoURL:     "https://images.example.com/cover.jpg",
		CostPerNight:      cost,
		ParkingSpaces:     1,
		NumberOfBathrooms: 1,
		NumberOfBedrooms:  2,
		Country:           "Canada",
		Street:            "1 Main St",
		City:              city,
		Province:          "BC",
		PostCode:          "V5K 0A1",
		Active:            true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func createReservation(t *testing.T, db *gorm.DB, guestID, propertyID int64, start, end string) model.Reservation {
	t.Helper()
	r := model.Reservation{
		GuestID:    guestID,
		PropertyID: propertyID,
		StartDate:  mustDate(t, start),
		EndDate:    mustDate(t, end),
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func createReview(t *testing.T, db *gorm.DB, guestID, propertyID, reservationID int64, rating int) {
	t.Helper()
	review := model.PropertyReview{
		GuestID:       guestID,
		PropertyID:    propertyID,
		ReservationID: reservationID,
		Rating:        rating,
		Message:       "stayed here",
	}
	require.NoError(t, db.Create(&review).Error)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}
