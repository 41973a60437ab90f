package httptransport

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstand/internal/review"
	"bookstand/pkg/testutil"
)

func TestGetReviews(t *testing.T) {
	router := newTestRouter(t)

	t.Run("no reviews yet", func(t *testing.T) {
		rr := testutil.DoRequest(router, getRequest("/books/3/reviews"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		res := testutil.UnmarshalResponse[review.GetResult](t, rr)
		assert.Empty(t, res.Entries)
		assert.Equal(t, "please consider reviewing this book, there are no reviews yet", res.Message)
	})

	t.Run("unknown isbn", func(t *testing.T) {
		rr := testutil.DoRequest(router, getRequest("/books/999/reviews"))

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}

func TestUpsertReview(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "dave", "pw123")

	putReview := func(t *testing.T, isbn, bearer, text string) *http.Request {
		t.Helper()
		req := testutil.NewJSONRequest(t, http.MethodPut, "/books/"+isbn+"/reviews",
			map[string]string{"review": text})
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		return req
	}

	t.Run("requires token", func(t *testing.T) {
		rr := testutil.DoRequest(router, putReview(t, "1", "", "great read"))

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("rejects tampered token", func(t *testing.T) {
		rr := testutil.DoRequest(router, putReview(t, "1", token+"x", "great read"))

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("records review under token identity", func(t *testing.T) {
		rr := testutil.DoRequest(router, putReview(t, "1", token, "a classic"))

		testutil.AssertStatus(t, rr, http.StatusOK)
		res := testutil.UnmarshalResponse[review.UpsertResult](t, rr)
		assert.Contains(t, res.Message, "Things Fall Apart")
		assert.Contains(t, res.Message, "dave")
		assert.Equal(t, map[string]string{"dave": "a classic"}, res.Reviews)
	})

	t.Run("second write overwrites", func(t *testing.T) {
		rr := testutil.DoRequest(router, putReview(t, "1", token, "read it twice"))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = testutil.DoRequest(router, getRequest("/books/1/reviews"))
		testutil.AssertStatus(t, rr, http.StatusOK)
		res := testutil.UnmarshalResponse[review.GetResult](t, rr)
		require.Len(t, res.Entries, 1)
		assert.Equal(t, "dave", res.Entries[0].User)
		assert.Equal(t, "read it twice", res.Entries[0].ReviewText)
	})

	t.Run("reviews from two users coexist", func(t *testing.T) {
		other := registerAndLogin(t, router, "erin", "pw456")
		rr := testutil.DoRequest(router, putReview(t, "1", other, "not for me"))
		require.Equal(t, http.StatusOK, rr.Code)

		rr = testutil.DoRequest(router, getRequest("/books/1/reviews"))
		res := testutil.UnmarshalResponse[review.GetResult](t, rr)
		require.Len(t, res.Entries, 2)
		assert.Equal(t, "dave", res.Entries[0].User)
		assert.Equal(t, "erin", res.Entries[1].User)
	})

	t.Run("blank review rejected", func(t *testing.T) {
		rr := testutil.DoRequest(router, putReview(t, "1", token, "   "))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation")
	})

	t.Run("unknown isbn", func(t *testing.T) {
		rr := testutil.DoRequest(router, putReview(t, "999", token, "lost review"))

		testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
	})
}
