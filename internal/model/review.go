package model

// PropertyReview represents a guest's rating of a property after a stay.
type PropertyReview struct {
	ID            int64  `gorm:"primaryKey" json:"id"`
	GuestID       int64  `gorm:"not null;index" json:"guest_id"`
	PropertyID    int64  `gorm:"not null;index" json:"property_id"`
	ReservationID int64  `gorm:"not null;index" json:"reservation_id"`
	Rating        int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Message       string `gorm:"type:text" json:"message"`

	Guest       *User        `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
	Property    *Property    `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"-"`
	Reservation *Reservation `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"-"`
}

func (PropertyReview) TableName() string {
	return "property_reviews"
}
