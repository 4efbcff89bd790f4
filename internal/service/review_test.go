package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codelens/snippet-review/internal/core"
	"github.com/codelens/snippet-review/internal/llm"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.response, nil
}

type fakeStore struct {
	err     error
	created []core.ReviewRecord
}

func (s *fakeStore) CreateReview(_ context.Context, record *core.ReviewRecord) error {
	if s.err != nil {
		return s.err
	}
	record.ID = "test-id"
	s.created = append(s.created, *record)
	return nil
}

func (s *fakeStore) RecentReviews(_ context.Context, limit int) ([]core.ReviewRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	records := make([]core.ReviewRecord, 0, limit)
	return records, nil
}

func newTestService(t *testing.T, gen *fakeGenerator, store *fakeStore) core.ReviewService {
	t.Helper()

	prompts, err := llm.NewPromptManager()
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	return New(store, gen, prompts, logger)
}

func TestSubmitReview(t *testing.T) {
	ctx := context.Background()

	t.Run("Success with explicit metadata", func(t *testing.T) {
		gen := &fakeGenerator{response: "Looks fine."}
		store := &fakeStore{}
		svc := newTestService(t, gen, store)

		result, err := svc.SubmitReview(ctx, core.SubmitRequest{
			Code:     "print('hi')",
			Filename: "a.py",
			Language: "python",
		})
		require.NoError(t, err)

		assert.Equal(t, "test-id", result.ID)
		assert.Equal(t, "Looks fine.", result.ReviewText)

		require.Len(t, store.created, 1)
		record := store.created[0]
		assert.Equal(t, "a.py", record.Filename)
		assert.Equal(t, "python", record.Language)
		assert.Equal(t, "print('hi')", record.Code)
		assert.Equal(t, "Looks fine.", record.ReviewText)

		require.Len(t, gen.prompts, 1)
		assert.Contains(t, gen.prompts[0], "print('hi')")
		assert.Contains(t, gen.prompts[0], "filename: a.py, language: python")
	})

	t.Run("Defaults applied when metadata omitted", func(t *testing.T) {
		gen := &fakeGenerator{response: "ok"}
		store := &fakeStore{}
		svc := newTestService(t, gen, store)

		_, err := svc.SubmitReview(ctx, core.SubmitRequest{Code: "x := 1"})
		require.NoError(t, err)

		require.Len(t, store.created, 1)
		assert.Equal(t, core.DefaultFilename, store.created[0].Filename)
		assert.Equal(t, core.DefaultLanguage, store.created[0].Language)
	})

	t.Run("Empty code rejected", func(t *testing.T) {
		gen := &fakeGenerator{response: "ok"}
		store := &fakeStore{}
		svc := newTestService(t, gen, store)

		for _, code := range []string{"", "   ", "\n\t  \n"} {
			_, err := svc.SubmitReview(ctx, core.SubmitRequest{Code: code})
			assert.ErrorIs(t, err, core.ErrCodeRequired)
		}
		assert.Empty(t, gen.prompts, "model must not be called for blank code")
		assert.Empty(t, store.created, "nothing must be persisted for blank code")
	})

	t.Run("Generator failure leaves no record", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		store := &fakeStore{}
		svc := newTestService(t, gen, store)

		_, err := svc.SubmitReview(ctx, core.SubmitRequest{Code: "x := 1"})

		var upstream *core.UpstreamError
		require.ErrorAs(t, err, &upstream)
		assert.ErrorContains(t, upstream.Err, "quota exceeded")
		assert.Empty(t, store.created)
	})

	t.Run("Store failure surfaces as persistence error", func(t *testing.T) {
		gen := &fakeGenerator{response: "ok"}
		store := &fakeStore{err: errors.New("connection refused")}
		svc := newTestService(t, gen, store)

		_, err := svc.SubmitReview(ctx, core.SubmitRequest{Code: "x := 1"})

		var persistence *core.PersistenceError
		require.ErrorAs(t, err, &persistence)
		var upstream *core.UpstreamError
		assert.False(t, errors.As(err, &upstream))
	})

	t.Run("Empty model response stored as placeholder", func(t *testing.T) {
		gen := &fakeGenerator{response: "  \n "}
		store := &fakeStore{}
		svc := newTestService(t, gen, store)

		result, err := svc.SubmitReview(ctx, core.SubmitRequest{Code: "x := 1"})
		require.NoError(t, err)

		assert.Equal(t, core.NoResponseText, result.ReviewText)
		require.Len(t, store.created, 1)
		assert.Equal(t, core.NoResponseText, store.created[0].ReviewText)
	})
}

func TestListRecentReviews(t *testing.T) {
	ctx := context.Background()

	t.Run("Store failure wrapped as persistence error", func(t *testing.T) {
		svc := newTestService(t, &fakeGenerator{}, &fakeStore{err: errors.New("down")})

		_, err := svc.ListRecentReviews(ctx)

		var persistence *core.PersistenceError
		assert.ErrorAs(t, err, &persistence)
	})

	t.Run("Empty store yields empty list", func(t *testing.T) {
		svc := newTestService(t, &fakeGenerator{}, &fakeStore{})

		records, err := svc.ListRecentReviews(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}
