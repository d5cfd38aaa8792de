package model

import "time"

// Reservation represents a guest's booking of a property. Dates are calendar
// dates; the time of day is always midnight UTC.
type Reservation struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	GuestID    int64     `gorm:"not null;index" json:"guest_id"`
	PropertyID int64     `gorm:"not null;index" json:"property_id"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null;check:end_date > start_date" json:"end_date"`

	Guest    *User     `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
	Property *Property `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Reservation) TableName() string {
	return "reservations"
}

// PastReservation is a finished reservation with the reserved property and
// the property's average rating.
type PastReservation struct {
	Property
	ReservationID int64     `gorm:"column:reservation_id" json:"reservation_id"`
	GuestID       int64     `gorm:"column:guest_id" json:"guest_id"`
	StartDate     time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate       time.Time `gorm:"column:end_date" json:"end_date"`
	AverageRating *float64  `gorm:"column:average_rating" json:"average_rating"`
}

// Date truncates t to its calendar date in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
