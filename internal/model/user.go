// Package model holds the LightBnB records as they are stored in the database,
// plus the read models returned by aggregated queries.
package model

// User represents a row in the users table
type User struct {
	ID       int64  `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// NewUser holds the fields accepted when registering a user.
type NewUser struct {
	Name     string
	Email    string
	Password string
}
