package store

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Filter narrows a property search. Row filters become WHERE conditions and
// rating filters become HAVING conditions; the clause builder renders them in
// that order whatever order they are applied in.
type Filter interface {
	Apply(db *gorm.DB) *gorm.DB
	String() string
}

// CityContains matches properties whose city contains the text, ignoring case.
// Postgres folds case with ILIKE. Elsewhere both sides go through SQL LOWER,
// which on sqlite folds ASCII letters only.
type CityContains string

func (f CityContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(string(f)) + "%"
	if db.Dialector != nil && db.Dialector.Name() == "postgres" {
		return db.Where(`properties.city ILIKE ? ESCAPE '\'`, pattern)
	}
	return db.Where(`LOWER(properties.city) LIKE LOWER(?) ESCAPE '\'`, pattern)
}

func (f CityContains) String() string {
	return fmt.Sprintf("city contains %q", string(f))
}

// OwnedBy matches properties listed by one owner.
type OwnedBy int64

func (f OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("properties.owner_id = ?", int64(f))
}

func (f OwnedBy) String() string {
	return fmt.Sprintf("owner = %d", int64(f))
}

// MinCostPerNight keeps properties costing at least this much per night.
type MinCostPerNight int64

func (f MinCostPerNight) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("properties.cost_per_night >= ?", int64(f))
}

func (f MinCostPerNight) String() string {
	return fmt.Sprintf("cost per night >= %d", int64(f))
}

// MaxCostPerNight keeps properties costing at most this much per night.
type MaxCostPerNight int64

func (f MaxCostPerNight) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("properties.cost_per_night <= ?", int64(f))
}

func (f MaxCostPerNight) String() string {
	return fmt.Sprintf("cost per night <= %d", int64(f))
}

// MinAverageRating keeps properties whose reviews average at least this
// rating. Properties without reviews never match.
type MinAverageRating float64

func (f MinAverageRating) Apply(db *gorm.DB) *gorm.DB {
	return db.Having("AVG(property_reviews.rating) >= ?", float64(f))
}

func (f MinAverageRating) String() string {
	return fmt.Sprintf("average rating >= %g", float64(f))
}

// SearchOptions are the optional property search predicates. Unset fields
// do not filter.
type SearchOptions struct {
	City             string
	OwnerID          *int64
	MinPricePerNight *int64
	MaxPricePerNight *int64
	MinRating        *float64
}

// Filters converts the set options into filters.
func (o SearchOptions) Filters() []Filter {
	var filters []Filter
	if o.City != "" {
		filters = append(filters, CityContains(o.City))
	}
	if o.OwnerID != nil {
		filters = append(filters, OwnedBy(*o.OwnerID))
	}
	if o.MinPricePerNight != nil {
		filters = append(filters, MinCostPerNight(*o.MinPricePerNight))
	}
	if o.MaxPricePerNight != nil {
		filters = append(filters, MaxCostPerNight(*o.MaxPricePerNight))
	}
	if o.MinRating != nil {
		filters = append(filters, MinAverageRating(*o.MinRating))
	}
	return filters
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
