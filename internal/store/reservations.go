package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/lightbnb/lightbnb/internal/model"
)

const pastReservationColumns = `properties.*,
	reservations.id AS reservation_id,
	reservations.guest_id AS guest_id,
	reservations.start_date AS start_date,
	reservations.end_date AS end_date,
	CAST(AVG(property_reviews.rating) AS FLOAT) AS average_rating`

// GetAllReservations returns the guest's reservations that ended before
// today, oldest first, each with its property and the property's average
// rating.
func (s *Store) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.PastReservation, error) {
	reservations := make([]model.PastReservation, 0)
	q := pastReservationsQuery(s.db.WithContext(ctx), guestID, model.Date(s.now()), limit)
	if err := q.Scan(&reservations).Error; err != nil {
		return nil, classify("list reservations", err, nil)
	}
	return reservations, nil
}

func pastReservationsQuery(db *gorm.DB, guestID int64, today any, limit int) *gorm.DB {
	return db.Table("reservations").
		Select(pastReservationColumns).
		Joins("JOIN properties ON reservations.property_id = properties.id").
		Joins("LEFT JOIN property_reviews ON property_reviews.property_id = properties.id").
		Where("reservations.guest_id = ?", guestID).
		Where("reservations.end_date < ?", today).
		Group("properties.id, reservations.id").
		Order("reservations.start_date").
		Order("reservations.id").
		Limit(normalizeLimit(limit))
}
