// Package storage persists review records in Postgres.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	// import db drivers
	_ "github.com/lib/pq"

	"github.com/codelens/snippet-review/internal/core"
)

// Store defines the persistence operations for review records. Records are
// created once and never updated or deleted.
type Store interface {
	// CreateReview inserts a new record, assigning its id and creation
	// timestamp. The caller's record is updated in place.
	CreateReview(ctx context.Context, record *core.ReviewRecord) error

	// RecentReviews returns up to limit records, newest first.
	RecentReviews(ctx context.Context, limit int) ([]core.ReviewRecord, error)
}

type postgresStore struct {
	db *sqlx.DB
}

// NewStore creates a Postgres-backed Store.
func NewStore(db *sqlx.DB) Store {
	return &postgresStore{db: db}
}

// CreateReview inserts a new review record into the database.
func (s *postgresStore) CreateReview(ctx context.Context, record *core.ReviewRecord) error {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	query := `INSERT INTO reviews (id, filename, language, code, review_text, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := s.db.ExecContext(ctx, query,
		record.ID, record.Filename, record.Language, record.Code, record.ReviewText, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// RecentReviews retrieves the most recently created reviews.
func (s *postgresStore) RecentReviews(ctx context.Context, limit int) ([]core.ReviewRecord, error) {
	query := `
		SELECT id, filename, language, code, review_text, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1`

	records := []core.ReviewRecord{}
	if err := s.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return records, nil
}
