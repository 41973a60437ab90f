package ratelimit

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"bookstand/internal/platform/config"
	dErrors "bookstand/pkg/domain-errors"
	"bookstand/pkg/platform/httputil"
)

// Limit throttles requests per client IP using the given store. When the
// store itself fails the middleware fails open: an unavailable throttle must
// not take the auth endpoints down with it.
func Limit(store BucketStore, cfg config.RateLimit, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled {
				next.ServeHTTP(w, r)
				return
			}

			res, err := store.Allow(r.Context(), clientIP(r), cfg.Limit, cfg.Window)
			if err != nil {
				logger.WarnContext(r.Context(), "rate limit check failed, allowing request", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

			if !res.Allowed {
				retryAfter := int(time.Until(res.ResetAt).Seconds()) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many attempts, slow down"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys buckets by remote address. Behind a proxy chi's RealIP
// middleware rewrites RemoteAddr before this runs.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
