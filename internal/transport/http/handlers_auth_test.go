package httptransport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstand/internal/auth"
	"bookstand/internal/catalog"
	"bookstand/internal/identity"
	"bookstand/internal/platform/config"
	"bookstand/internal/review"
	"bookstand/pkg/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	tokens := auth.NewTokenService(config.Auth{
		SigningKey: "test-signing-key",
		Issuer:     "bookstand-test",
		TokenTTL:   time.Hour,
	})
	store := catalog.NewInMemoryStore(catalog.SeedBooks())

	authSvc := auth.NewService(identity.NewInMemoryUserStore(), tokens)
	reviewSvc := review.NewService(store)

	h := NewHandler(authSvc, reviewSvc, store, nil)
	return NewRouter(h, RouterConfig{TokenValidator: tokens})
}

// registerAndLogin drives the credential exchange end to end and returns a
// usable access token.
func registerAndLogin(t *testing.T, router http.Handler, username, password string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": password}

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/register", creds))
	require.Equal(t, http.StatusOK, rr.Code, "register failed: %s", rr.Body.String())

	rr = testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login", creds))
	require.Equal(t, http.StatusOK, rr.Code, "login failed: %s", rr.Body.String())

	res := testutil.UnmarshalResponse[auth.TokenResult](t, rr)
	require.NotEmpty(t, res.AccessToken)
	return res.AccessToken
}

func TestRegister(t *testing.T) {
	router := newTestRouter(t)

	t.Run("creates user", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/register",
			map[string]string{"username": "alice", "password": "s3cret"}))

		testutil.AssertStatus(t, rr, http.StatusOK)
		res := testutil.UnmarshalResponse[auth.RegisterResult](t, rr)
		assert.Equal(t, "user successfully registered, you can now login", res.Message)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/register",
			map[string]string{"username": "alice", "password": "other"}))

		testutil.AssertStatusAndError(t, rr, http.StatusConflict, "conflict")
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/register",
			map[string]string{"username": "bob"}))

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation")
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := httptestRequest(http.MethodPost, "/auth/register", "{not json")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
	})
}

func TestLogin(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/register",
		map[string]string{"username": "carol", "password": "pw123"}))
	require.Equal(t, http.StatusOK, rr.Code)

	t.Run("issues bearer token", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login",
			map[string]string{"username": "carol", "password": "pw123"}))

		testutil.AssertStatus(t, rr, http.StatusOK)
		res := testutil.UnmarshalResponse[auth.TokenResult](t, rr)
		assert.NotEmpty(t, res.AccessToken)
		assert.Equal(t, "Bearer", res.TokenType)
		assert.Equal(t, 3600, res.ExpiresIn)
	})

	t.Run("wrong password unauthorized", func(t *testing.T) {
		rr := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login",
			map[string]string{"username": "carol", "password": "wrong"}))

		testutil.AssertStatusAndError(t, rr, http.StatusUnauthorized, "unauthorized")
	})

	t.Run("unknown user gets identical error", func(t *testing.T) {
		wrongPw := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login",
			map[string]string{"username": "carol", "password": "wrong"}))
		ghost := testutil.DoRequest(router, testutil.NewJSONRequest(t, http.MethodPost, "/auth/login",
			map[string]string{"username": "nobody", "password": "wrong"}))

		assert.Equal(t, wrongPw.Code, ghost.Code)
		assert.Equal(t, wrongPw.Body.String(), ghost.Body.String())
	})
}

func httptestRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}
