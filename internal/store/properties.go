package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/lightbnb/lightbnb/internal/model"
)

// GetAllProperties returns up to limit properties matching opts, cheapest
// first, each with its average review rating.
func (s *Store) GetAllProperties(ctx context.Context, opts SearchOptions, limit int) ([]model.PropertyListing, error) {
	return s.SearchProperties(ctx, limit, opts.Filters()...)
}

// SearchProperties is GetAllProperties with an explicit filter list.
func (s *Store) SearchProperties(ctx context.Context, limit int, filters ...Filter) ([]model.PropertyListing, error) {
	listings := make([]model.PropertyListing, 0)
	if err := propertyQuery(s.db.WithContext(ctx), limit, filters).Scan(&listings).Error; err != nil {
		return nil, classify("search properties", err, nil)
	}
	return listings, nil
}

func propertyQuery(db *gorm.DB, limit int, filters []Filter) *gorm.DB {
	q := db.Model(&model.Property{}).
		Select("properties.*, CAST(AVG(property_reviews.rating) AS FLOAT) AS average_rating").
		Joins("LEFT JOIN property_reviews ON property_reviews.property_id = properties.id")
	for _, f := range filters {
		q = f.Apply(q)
	}
	return q.Group("properties.id").
		Order("properties.cost_per_night").
		Order("properties.id").
		Limit(normalizeLimit(limit))
}

// AddProperty lists a new, active property and returns the stored row.
func (s *Store) AddProperty(ctx context.Context, np model.NewProperty) (*model.Property, error) {
	property := model.Property{
		OwnerID:           np.OwnerID,
		Title:             np.Title,
		Description:       np.Description,
		ThumbnailPhotoURL: np.ThumbnailPhotoURL,
		CoverPhotoURL:     np.CoverPhotoURL,
		CostPerNight:      np.CostPerNight,
		ParkingSpaces:     np.ParkingSpaces,
		NumberOfBathrooms: np.NumberOfBathrooms,
		NumberOfBedrooms:  np.NumberOfBedrooms,
		Country:           np.Country,
		Street:            np.Street,
		City:              np.City,
		Province:          np.Province,
		PostCode:          np.PostCode,
		Active:            true,
	}
	if err := s.db.WithContext(ctx).Create(&property).Error; err != nil {
		return nil, classify("add property", err, nil)
	}
	return &property, nil
}
