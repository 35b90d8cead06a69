// store/store.go - User record persistence contract
package store

import (
	"context"
	"errors"

	"animalquiz/models"
)

var (
	// ErrAlreadyExists is returned when creating a record that is already present.
	ErrAlreadyExists = errors.New("user already exists")
	// ErrNotFound is returned for lookups of unknown identities.
	ErrNotFound = errors.New("user not found")
	// ErrUnavailable is returned when the backing store stays unreachable
	// after the bounded retry budget is spent.
	ErrUnavailable = errors.New("store unavailable")
)

// MutateFunc transforms a user record in place. It runs inside the store's
// per-identity critical section; it must not retain the record after return.
// A MutateFunc may be re-executed when the commit is retried, so it has to be
// a pure function of the record it receives.
type MutateFunc func(rec *models.UserRecord) error

// UserStore is the persistence contract for user records. Mutate serializes
// read-modify-write cycles per identity; operations on different identities
// proceed independently.
type UserStore interface {
	Create(ctx context.Context, rec *models.UserRecord) error
	Get(ctx context.Context, id string) (*models.UserRecord, error)
	GetByUsername(ctx context.Context, username string) (*models.UserRecord, error)
	Mutate(ctx context.Context, id string, fn MutateFunc) (*models.UserRecord, error)
	UpdateProfile(ctx context.Context, id, username string) (*models.UserRecord, error)
	Reset(ctx context.Context, id string) (*models.UserRecord, error)
	ListAll(ctx context.Context) ([]*models.UserRecord, error)
}
