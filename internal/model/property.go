package model

// Property represents a listed rental. CostPerNight is stored in the smallest
// currency unit.
type Property struct {
	ID                int64  `gorm:"primaryKey" json:"id"`
	OwnerID           int64  `gorm:"not null;index" json:"owner_id"`
	Title             string `gorm:"not null" json:"title"`
	Description       string `gorm:"type:text" json:"description"`
	ThumbnailPhotoURL string `gorm:"not null" json:"thumbnail_photo_url"`
	CoverPhotoURL     string `gorm:"not null" json:"cover_photo_url"`
	CostPerNight      int64  `gorm:"not null" json:"cost_per_night"`
	ParkingSpaces     int    `gorm:"not null" json:"parking_spaces"`
	NumberOfBathrooms int    `gorm:"not null" json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `gorm:"not null" json:"number_of_bedrooms"`
	Country           string `gorm:"not null" json:"country"`
	Street            string `gorm:"not null" json:"street"`
	City              string `gorm:"not null" json:"city"`
	Province          string `gorm:"not null" json:"province"`
	PostCode          string `gorm:"not null" json:"post_code"`
	Active            bool   `gorm:"not null" json:"active"`

	Owner *User `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Property) TableName() string {
	return "properties"
}

// NewProperty holds the fields an owner submits when listing a property.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

// PropertyListing is a property together with the average of its review
// ratings. AverageRating is nil for properties without reviews.
type PropertyListing struct {
	Property
	AverageRating *float64 `gorm:"column:average_rating" json:"average_rating"`
}
