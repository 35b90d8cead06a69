// store/gorm.go - PostgreSQL-backed user record store
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"animalquiz/catalog"
	"animalquiz/models"
)

const (
	mutateAttempts = 3
	mutateBackoff  = 50 * time.Millisecond
	mutateTimeout  = 3 * time.Second
)

// Gorm is the durable UserStore. Per-identity serialization comes from a
// SELECT ... FOR UPDATE row lock inside a transaction; transient failures are
// retried a bounded number of times with backoff.
type Gorm struct {
	db  *gorm.DB
	cat *catalog.Catalog
}

// NewGorm wraps an initialized gorm.DB. The connection must be opened with
// TranslateError so unique violations surface as gorm.ErrDuplicatedKey.
func NewGorm(db *gorm.DB, cat *catalog.Catalog) *Gorm {
	return &Gorm{db: db, cat: cat}
}

func (s *Gorm) Create(ctx context.Context, rec *models.UserRecord) error {
	err := s.db.WithContext(ctx).Create(rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrAlreadyExists
	}
	return err
}

func (s *Gorm) Get(ctx context.Context, id string) (*models.UserRecord, error) {
	var rec models.UserRecord
	err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *Gorm) GetByUsername(ctx context.Context, username string) (*models.UserRecord, error) {
	var rec models.UserRecord
	err := s.db.WithContext(ctx).First(&rec, "lower(username) = lower(?)", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// transformErr marks errors returned by the MutateFunc so they propagate to
// the caller unchanged instead of being retried as store failures.
type transformErr struct{ err error }

func (e transformErr) Error() string { return e.err.Error() }
func (e transformErr) Unwrap() error { return e.err }

func (s *Gorm) Mutate(ctx context.Context, id string, fn MutateFunc) (*models.UserRecord, error) {
	var out *models.UserRecord
	var lastErr error

	for attempt := 0; attempt < mutateAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(mutateBackoff << (attempt - 1))
		}

		attemptCtx, cancel := context.WithTimeout(ctx, mutateTimeout)
		err := s.db.WithContext(attemptCtx).Transaction(func(tx *gorm.DB) error {
			var rec models.UserRecord
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&rec, "id = ?", id).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrNotFound
				}
				return err
			}
			if err := fn(&rec); err != nil {
				return transformErr{err}
			}
			if err := tx.Save(&rec).Error; err != nil {
				return err
			}
			out = &rec
			return nil
		})
		cancel()

		if err == nil {
			return out, nil
		}
		var te transformErr
		if errors.As(err, &te) {
			return nil, te.err
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (s *Gorm) UpdateProfile(ctx context.Context, id, username string) (*models.UserRecord, error) {
	return s.Mutate(ctx, id, func(rec *models.UserRecord) error {
		rec.Username = username
		return nil
	})
}

func (s *Gorm) Reset(ctx context.Context, id string) (*models.UserRecord, error) {
	return s.Mutate(ctx, id, func(rec *models.UserRecord) error {
		rec.ResetGameData(s.cat.EmptyProgress())
		return nil
	})
}

func (s *Gorm) ListAll(ctx context.Context) ([]*models.UserRecord, error) {
	var recs []*models.UserRecord
	if err := s.db.WithContext(ctx).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
