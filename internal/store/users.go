package store

import (
	"context"

	"github.com/lightbnb/lightbnb/internal/model"
)

// GetUserWithEmail returns the user registered with exactly this email.
func (s *Store) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, classify("get user by email", err, nil)
	}
	return &user, nil
}

// GetUserWithID returns the user with the given id.
func (s *Store) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, classify("get user by id", err, nil)
	}
	return &user, nil
}

// AddUser inserts a user and returns the stored row with its generated id.
// Email uniqueness is left to the database.
func (s *Store) AddUser(ctx context.Context, nu model.NewUser) (*model.User, error) {
	user := model.User{
		Name:     nu.Name,
		Email:    nu.Email,
		Password: nu.Password,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, classify("add user", err, ErrDuplicateEmail)
	}
	return &user, nil
}
