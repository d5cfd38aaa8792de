package store

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lightbnb/lightbnb/internal/model"
)

type reservationFixture struct {
	guest       model.User
	reviewed    model.Property
	unreviewed  model.Property
	older       model.Reservation
	newer       model.Reservation
	endsToday   model.Reservation
	upcoming    model.Reservation
	otherGuests model.Reservation
}

func seedReservations(t *testing.T, db *gorm.DB) reservationFixture {
	t.Helper()
	var f reservationFixture

	owner := createUser(t, db, "Owner", "owner@example.com")
	f.guest = createUser(t, db, "Guest", "guest@example.com")
	other := createUser(t, db, "Other", "other@example.com")

	f.reviewed = createProperty(t, db, owner.ID, "Speed lamp", "Vancouver", 93061)
	f.unreviewed = createProperty(t, db, owner.ID, "Blank corner", "Calgary", 85234)

	f.newer = createReservation(t, db, f.guest.ID, f.reviewed.ID, "2024-03-01", "2024-03-05")
	f.older = createReservation(t, db, f.guest.ID, f.unreviewed.ID, "2023-01-10", "2023-01-12")
	f.endsToday = createReservation(t, db, f.guest.ID, f.reviewed.ID, "2026-10-10", "2026-10-15")
	f.upcoming = createReservation(t, db, f.guest.ID, f.reviewed.ID, "2026-12-01", "2026-12-05")
	f.otherGuests = createReservation(t, db, other.ID, f.reviewed.ID, "2022-05-01", "2022-05-03")

	createReview(t, db, f.guest.ID, f.reviewed.ID, f.newer.ID, 4)
	createReview(t, db, other.ID, f.reviewed.ID, f.otherGuests.ID, 5)
	return f
}

func TestGetAllReservations_PastOnlyOldestFirst(t *testing.T) {
	s, db := setupTestStore(t)
	f := seedReservations(t, db)

	got, err := s.GetAllReservations(context.Background(), f.guest.ID, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, f.older.ID, got[0].ReservationID)
	assert.Equal(t, f.unreviewed.ID, got[0].ID)
	assert.Equal(t, "Blank corner", got[0].Title)
	assert.Nil(t, got[0].AverageRating)

	assert.Equal(t, f.newer.ID, got[1].ReservationID)
	assert.Equal(t, f.reviewed.ID, got[1].ID)
	assert.Equal(t, int64(93061), got[1].CostPerNight)
	require.NotNil(t, got[1].AverageRating)
	assert.InDelta(t, 4.5, *got[1].AverageRating, 1e-9)

	for _, r := range got {
		assert.Equal(t, f.guest.ID, r.GuestID)
		assert.True(t, r.EndDate.Before(model.Date(testNow)), "reservation %d ends %s", r.ReservationID, r.EndDate)
	}
	assert.True(t, got[0].StartDate.Equal(mustDate(t, "2023-01-10")))
	assert.True(t, got[1].EndDate.Equal(mustDate(t, "2024-03-05")))
}

func TestGetAllReservations_Limit(t *testing.T) {
	s, db := setupTestStore(t)
	f := seedReservations(t, db)

	got, err := s.GetAllReservations(context.Background(), f.guest.ID, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, f.older.ID, got[0].ReservationID)

	got, err = s.GetAllReservations(context.Background(), f.guest.ID, 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestGetAllReservations_DefaultLimitCaps(t *testing.T) {
	s, db := setupTestStore(t)
	owner := createUser(t, db, "Owner", "owner@example.com")
	guest := createUser(t, db, "Guest", "guest@example.com")
	p := createProperty(t, db, owner.ID, "Habit mix", "Halifax", 10000)
	for day := 1; day <= DefaultLimit+3; day++ {
		start := mustDate(t, "2025-01-01").AddDate(0, 0, day*3)
		r := model.Reservation{GuestID: guest.ID, PropertyID: p.ID, StartDate: start, EndDate: start.AddDate(0, 0, 2)}
		require.NoError(t, db.Create(&r).Error)
	}

	got, err := s.GetAllReservations(context.Background(), guest.ID, -1)
	require.NoError(t, err)
	require.Len(t, got, DefaultLimit)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].StartDate.Before(got[i].StartDate))
	}
}

func TestGetAllReservations_UnknownGuest(t *testing.T) {
	s, db := setupTestStore(t)
	seedReservations(t, db)

	got, err := s.GetAllReservations(context.Background(), 9999, 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReservation_RequiresExistingProperty(t *testing.T) {
	_, db := setupTestStore(t)
	guest := createUser(t, db, "Guest", "guest@example.com")

	err := db.Create(&model.Reservation{
		GuestID:    guest.ID,
		PropertyID: 404,
		StartDate:  mustDate(t, "2024-01-01"),
		EndDate:    mustDate(t, "2024-01-03"),
	}).Error
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestGetAllReservations_ClockDecidesWhatEnded(t *testing.T) {
	_, db := setupTestStore(t)
	f := seedReservations(t, db)

	later := New(db, WithClock(func() time.Time { return testNow.AddDate(0, 0, 1) }))
	got, err := later.GetAllReservations(context.Background(), f.guest.ID, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, f.endsToday.ID, got[2].ReservationID)
}

func TestPastReservationsQuery_PostgresClauseOrder(t *testing.T) {
	db := dryRunPostgres(t)

	var dest []model.PastReservation
	stmt := pastReservationsQuery(db, 1, model.Date(testNow), 5).Find(&dest).Statement
	sql := stmt.SQL.String()

	assertInOrder(t, sql, `FROM "reservations"`, "JOIN properties", "LEFT JOIN property_reviews", "WHERE", "GROUP BY", "ORDER BY", "LIMIT")
	assert.Contains(t, sql, "reservations.end_date < $2")
	require.GreaterOrEqual(t, len(stmt.Vars), 2)
	assert.Equal(t, int64(1), stmt.Vars[0])
	assert.Equal(t, model.Date(testNow), stmt.Vars[1])
}

func assertInOrder(t *testing.T, s string, parts ...string) {
	t.Helper()
	last := -1
	for _, p := range parts {
		idx := strings.Index(s, p)
		if !assert.GreaterOrEqual(t, idx, 0, "%q missing from %s", p, s) {
			return
		}
		assert.Greater(t, idx, last, "%q out of order in %s", p, s)
		last = idx
	}
}
