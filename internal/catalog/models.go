package catalog

// Book is a catalog entry. The catalog is fixed-key: books are seeded at
// startup and never inserted or deleted afterwards. Reviews maps username to
// review text; the map grows in key count but individual values may be
// overwritten.
type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}
