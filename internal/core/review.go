// Package core defines the data structures, interfaces, and error taxonomy
// shared by the service, storage, and HTTP layers. Keeping them here lets each
// layer depend on abstractions instead of concrete implementations.
package core

import (
	"context"
	"time"
)

// Placeholder values applied when a submission omits optional metadata.
const (
	DefaultFilename = "snippet"
	DefaultLanguage = "unspecified"
)

// NoResponseText is stored and returned when the model produces an empty response.
const NoResponseText = "[no response]"

// ReviewRecord pairs a submitted code snippet with its generated review text.
// Records are immutable once created; the store assigns ID and CreatedAt.
type ReviewRecord struct {
	ID         string    `db:"id" json:"id"`
	Filename   string    `db:"filename" json:"filename"`
	Language   string    `db:"language" json:"language"`
	Code       string    `db:"code" json:"code"`
	ReviewText string    `db:"review_text" json:"reviewText"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// SubmitRequest carries a snippet submitted for review. Filename and Language
// are optional and fall back to the default placeholders.
type SubmitRequest struct {
	Code     string
	Filename string
	Language string
}

// SubmitResult is returned after a snippet has been reviewed and stored.
type SubmitResult struct {
	ID         string
	ReviewText string
}

// Generator produces review text from a rendered prompt. Implementations wrap
// a concrete model provider and must be safe for concurrent use.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ReviewService defines the operations the HTTP layer and the CLI depend on.
type ReviewService interface {
	// SubmitReview validates the request, generates a review, and persists it
	// together with the original snippet. Generation and persistence succeed
	// or fail as a unit; a review is never returned without a stored record.
	SubmitReview(ctx context.Context, req SubmitRequest) (*SubmitResult, error)

	// ListRecentReviews returns the most recently created records, newest
	// first, capped at a fixed limit.
	ListRecentReviews(ctx context.Context) ([]ReviewRecord, error)
}
