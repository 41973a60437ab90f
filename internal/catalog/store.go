package catalog

import "context"

// Store is the book catalog. Reads dominate; the only mutation is the review
// upsert. Implementations return defensive copies so callers can never reach
// the shared maps.
type Store interface {
	// FindByISBN returns the book for an exact ISBN key, or sentinel.ErrNotFound.
	FindByISBN(ctx context.Context, isbn string) (Book, error)
	// List returns every book keyed by ISBN.
	List(ctx context.Context) (map[string]Book, error)
	// FindByAuthor returns all books whose author matches case-insensitively.
	// The match is exact after case folding, not a substring search.
	FindByAuthor(ctx context.Context, author string) ([]Book, error)
	// FindByTitle is FindByAuthor for titles.
	FindByTitle(ctx context.Context, title string) ([]Book, error)
	// UpsertReview sets the review text for username on the given book,
	// overwriting any prior value, and returns the updated reviews map.
	UpsertReview(ctx context.Context, isbn, username, text string) (map[string]string, error)
	// Reviews returns a copy of the reviews map for the given book.
	Reviews(ctx context.Context, isbn string) (map[string]string, error)
}
