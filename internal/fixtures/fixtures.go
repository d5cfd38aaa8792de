// Package fixtures loads a JSON dataset of users and properties and inserts
// it through the store.
package fixtures

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lightbnb/lightbnb/internal/model"
	"github.com/lightbnb/lightbnb/internal/password"
	"github.com/lightbnb/lightbnb/internal/store"
)

// Dataset is the content of a fixtures file.
type Dataset struct {
	Users      []User     `json:"users"`
	Properties []Property `json:"properties"`
}

// User is a fixture user. Password may be plain text or a bcrypt hash.
type User struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Property is a fixture property owned by the user with OwnerEmail.
type Property struct {
	OwnerEmail string `json:"owner_email"`
	model.NewProperty
}

// Summary counts what Apply inserted.
type Summary struct {
	UsersAdded      int
	UsersExisting   int
	PropertiesAdded int
}

// Load reads and parses the fixtures file at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixtures document.
func Parse(data []byte) (*Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures: %w", err)
	}
	for i, p := range ds.Properties {
		if p.OwnerEmail == "" {
			return nil, fmt.Errorf("property %d (%q) has no owner_email", i, p.Title)
		}
	}
	return &ds, nil
}

// Apply inserts the dataset's users, then its properties. Users whose email
// is already registered are reused as owners instead of failing the run.
func Apply(ctx context.Context, s *store.Store, ds *Dataset) (Summary, error) {
	var sum Summary
	owners := make(map[string]int64, len(ds.Users))

	for _, u := range ds.Users {
		hashed, err := password.Hash(u.Password)
		if err != nil {
			return sum, err
		}
		added, err := s.AddUser(ctx, model.NewUser{Name: u.Name, Email: u.Email, Password: hashed})
		switch {
		case err == nil:
			owners[u.Email] = added.ID
			sum.UsersAdded++
		case errors.Is(err, store.ErrDuplicateEmail):
			existing, err := s.GetUserWithEmail(ctx, u.Email)
			if err != nil {
				return sum, fmt.Errorf("failed to load existing user %s: %w", u.Email, err)
			}
			owners[u.Email] = existing.ID
			sum.UsersExisting++
		default:
			return sum, fmt.Errorf("failed to add user %s: %w", u.Email, err)
		}
	}

	for _, p := range ds.Properties {
		ownerID, ok := owners[p.OwnerEmail]
		if !ok {
			owner, err := s.GetUserWithEmail(ctx, p.OwnerEmail)
			if err != nil {
				return sum, fmt.Errorf("failed to resolve owner %s of %q: %w", p.OwnerEmail, p.Title, err)
			}
			ownerID = owner.ID
			owners[p.OwnerEmail] = ownerID
		}

		np := p.NewProperty
		np.OwnerID = ownerID
		if _, err := s.AddProperty(ctx, np); err != nil {
			return sum, fmt.Errorf("failed to add property %q: %w", p.Title, err)
		}
		sum.PropertiesAdded++
	}

	return sum, nil
}
