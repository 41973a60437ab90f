package httptransport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	dErrors "bookstand/pkg/domain-errors"
	"bookstand/pkg/platform/httputil"
	"bookstand/pkg/platform/sentinel"
)

// handleListBooks renders the whole catalog pretty-printed, keyed by ISBN.
func (h *Handler) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := h.catalog.List(r.Context())
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list catalog"))
		return
	}

	httputil.WriteJSONIndent(w, http.StatusOK, books)
}

func (h *Handler) handleBookByISBN(w http.ResponseWriter, r *http.Request) {
	isbn := chi.URLParam(r, "isbn")

	book, err := h.catalog.FindByISBN(r.Context(), isbn)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("book with ISBN %s not found", isbn)))
			return
		}
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load book"))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, book)
}

func (h *Handler) handleBooksByAuthor(w http.ResponseWriter, r *http.Request) {
	author := chi.URLParam(r, "author")

	books, err := h.catalog.FindByAuthor(r.Context(), author)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search catalog"))
		return
	}
	if len(books) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no books found by author %q", author)))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, books)
}

func (h *Handler) handleBooksByTitle(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")

	books, err := h.catalog.FindByTitle(r.Context(), title)
	if err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInternal, "failed to search catalog"))
		return
	}
	if len(books) == 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, fmt.Sprintf("no books found with title %q", title)))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, books)
}
