package review

// Entry is one user's review of a book.
type Entry struct {
	User       string `json:"user"`
	ReviewText string `json:"reviewText"`
}

// UpsertResult confirms a review write and carries the book's full current
// reviews map.
type UpsertResult struct {
	Message string            `json:"message"`
	Reviews map[string]string `json:"reviews"`
}

// GetResult is the read side. Exactly one of Entries or Message is populated:
// a book with zero reviews yields the distinguished message rather than an
// empty list, so callers can tell "unreviewed" from "reviewed by nobody".
type GetResult struct {
	Entries []Entry `json:"reviews,omitempty"`
	Message string  `json:"message,omitempty"`
}
