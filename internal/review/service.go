package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"bookstand/internal/catalog"
	"bookstand/internal/platform/metrics"
	dErrors "bookstand/pkg/domain-errors"
	"bookstand/pkg/platform/sentinel"
)

// Service implements the review mutation protocol over the catalog store.
// The acting username always comes from the authorization gate, never from
// the request payload.
type Service struct {
	catalog catalog.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// NewService constructs a Service.
func NewService(store catalog.Store, opts ...Option) *Service {
	s := &Service{catalog: store, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Upsert creates or overwrites username's review of the given book. The write
// is idempotent per (isbn, username): repeating it leaves one entry with the
// latest text.
func (s *Service) Upsert(ctx context.Context, isbn, username, text string) (*UpsertResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "review text must not be empty")
	}

	reviews, err := s.catalog.UpsertReview(ctx, isbn, username, text)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("book with ISBN %s not found", isbn))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store review")
	}

	book, err := s.catalog.FindByISBN(ctx, isbn)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load book")
	}

	s.logger.InfoContext(ctx, "review upserted", "isbn", isbn, "username", username)
	s.metrics.IncrementReviewUpserts()

	return &UpsertResult{
		Message: fmt.Sprintf("review for %q by %s recorded", book.Title, username),
		Reviews: reviews,
	}, nil
}

// Get returns the reviews for a book. A book with zero reviews yields the
// distinguished no-reviews message; entries are sorted by username for stable
// output.
func (s *Service) Get(ctx context.Context, isbn string) (*GetResult, error) {
	reviews, err := s.catalog.Reviews(ctx, isbn)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("book with ISBN %s not found", isbn))
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load reviews")
	}

	if len(reviews) == 0 {
		return &GetResult{
			Message: "please consider reviewing this book, there are no reviews yet",
		}, nil
	}

	entries := make([]Entry, 0, len(reviews))
	for user, text := range reviews {
		entries = append(entries, Entry{User: user, ReviewText: text})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].User < entries[j].User })

	return &GetResult{Entries: entries}, nil
}
