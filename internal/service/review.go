// Package service implements the review submission and listing flow.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/codelens/snippet-review/internal/core"
	"github.com/codelens/snippet-review/internal/llm"
	"github.com/codelens/snippet-review/internal/storage"
)

// maxRecentReviews caps the number of records returned by ListRecentReviews.
const maxRecentReviews = 50

type reviewService struct {
	store     storage.Store
	generator core.Generator
	prompts   *llm.PromptManager
	logger    *slog.Logger
}

// New creates the review service with its injected collaborators.
func New(store storage.Store, generator core.Generator, prompts *llm.PromptManager, logger *slog.Logger) core.ReviewService {
	if store == nil {
		panic("store cannot be nil")
	}
	if generator == nil {
		panic("generator cannot be nil")
	}
	if prompts == nil {
		panic("prompt manager cannot be nil")
	}
	return &reviewService{
		store:     store,
		generator: generator,
		prompts:   prompts,
		logger:    logger,
	}
}

// SubmitReview validates the snippet, renders the review prompt, calls the
// model, and persists the result. Generation and persistence fail as a unit;
// there is no retry and no partial-success path.
func (s *reviewService) SubmitReview(ctx context.Context, req core.SubmitRequest) (*core.SubmitResult, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, core.ErrCodeRequired
	}

	filename := req.Filename
	if filename == "" {
		filename = core.DefaultFilename
	}
	language := req.Language
	if language == "" {
		language = core.DefaultLanguage
	}

	prompt, err := s.prompts.RenderCodeReview(req.Code, filename, language)
	if err != nil {
		return nil, fmt.Errorf("failed to render review prompt: %w", err)
	}

	s.logger.Info("requesting review from model",
		"filename", filename,
		"language", language,
		"code_bytes", len(req.Code))

	start := time.Now()
	reviewText, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, &core.UpstreamError{Err: err}
	}
	if strings.TrimSpace(reviewText) == "" {
		reviewText = core.NoResponseText
	}

	record := &core.ReviewRecord{
		Filename:   filename,
		Language:   language,
		Code:       req.Code,
		ReviewText: reviewText,
	}
	if err := s.store.CreateReview(ctx, record); err != nil {
		return nil, &core.PersistenceError{Err: err}
	}

	s.logger.Info("review stored",
		"id", record.ID,
		"filename", filename,
		"duration", time.Since(start))

	return &core.SubmitResult{ID: record.ID, ReviewText: reviewText}, nil
}

// ListRecentReviews returns the newest stored reviews, capped at 50.
func (s *reviewService) ListRecentReviews(ctx context.Context) ([]core.ReviewRecord, error) {
	records, err := s.store.RecentReviews(ctx, maxRecentReviews)
	if err != nil {
		return nil, &core.PersistenceError{Err: err}
	}
	return records, nil
}
