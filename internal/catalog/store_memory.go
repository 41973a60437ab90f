package catalog

import (
	"context"
	"strings"
	"sync"

	"bookstand/pkg/platform/sentinel"
)

// InMemoryStore keeps the catalog lightweight and testable. It intentionally
// favors clarity over performance. Because the key set is fixed at
// construction, the lowercased author/title indexes are built once and never
// go stale.
type InMemoryStore struct {
	mu      sync.RWMutex
	books   map[string]Book
	byAuth  map[string][]string
	byTitle map[string][]string
}

// NewInMemoryStore builds a store over the given seed books. Review maps on
// the seed are copied so the caller's data stays untouched.
func NewInMemoryStore(seed []Book) *InMemoryStore {
	s := &InMemoryStore{
		books:   make(map[string]Book, len(seed)),
		byAuth:  make(map[string][]string),
		byTitle: make(map[string][]string),
	}
	for _, b := range seed {
		b.Reviews = copyReviews(b.Reviews)
		if b.Reviews == nil {
			b.Reviews = make(map[string]string)
		}
		s.books[b.ISBN] = b
		authKey := strings.ToLower(b.Author)
		titleKey := strings.ToLower(b.Title)
		s.byAuth[authKey] = append(s.byAuth[authKey], b.ISBN)
		s.byTitle[titleKey] = append(s.byTitle[titleKey], b.ISBN)
	}
	return s
}

func (s *InMemoryStore) FindByISBN(_ context.Context, isbn string) (Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[isbn]
	if !ok {
		return Book{}, sentinel.ErrNotFound
	}
	return s.copyBook(book), nil
}

func (s *InMemoryStore) List(_ context.Context) (map[string]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Book, len(s.books))
	for isbn, book := range s.books {
		out[isbn] = s.copyBook(book)
	}
	return out, nil
}

func (s *InMemoryStore) FindByAuthor(ctx context.Context, author string) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byAuth[strings.ToLower(author)]), nil
}

func (s *InMemoryStore) FindByTitle(ctx context.Context, title string) ([]Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byTitle[strings.ToLower(title)]), nil
}

func (s *InMemoryStore) UpsertReview(_ context.Context, isbn, username, text string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	book, ok := s.books[isbn]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	book.Reviews[username] = text
	return copyReviews(book.Reviews), nil
}

func (s *InMemoryStore) Reviews(_ context.Context, isbn string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	book, ok := s.books[isbn]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return copyReviews(book.Reviews), nil
}

// collect resolves ISBNs to book copies; callers hold at least a read lock.
func (s *InMemoryStore) collect(isbns []string) []Book {
	books := make([]Book, 0, len(isbns))
	for _, isbn := range isbns {
		books = append(books, s.copyBook(s.books[isbn]))
	}
	return books
}

func (s *InMemoryStore) copyBook(b Book) Book {
	b.Reviews = copyReviews(b.Reviews)
	return b
}

func copyReviews(reviews map[string]string) map[string]string {
	if reviews == nil {
		return nil
	}
	out := make(map[string]string, len(reviews))
	for user, text := range reviews {
		out[user] = text
	}
	return out
}
