package api

import (
	"net/http"

	"golang.org/x/time/rate"
)

// requestLimiter gates request admission for the throttle middleware.
type requestLimiter interface {
	Allow() bool
}

type tokenBucket struct {
	bucket *rate.Limiter
}

// newTokenBucket builds a requestLimiter backed by a token bucket. Non-positive
// arguments fall back to a minimal working limiter.
func newTokenBucket(rps float64, burst int) requestLimiter {
	if rps <= 0 {
		rps = 1
	}
	if burst <= 0 {
		burst = 1
	}

	return &tokenBucket{
		bucket: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (t *tokenBucket) Allow() bool {
	if t == nil || t.bucket == nil {
		return true
	}
	return t.bucket.Allow()
}

func throttleMiddleware(limiter requestLimiter, next http.Handler) http.Handler {
	if limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}
		writeError(w, http.StatusTooManyRequests, "Too many requests", "request rate exceeded, retry shortly")
	})
}
