package middleware

import (
	"errors"
	"libraryhub/config"
	"libraryhub/shared"
	"libraryhub/shared/cache"
	"libraryhub/shared/constant"
	"libraryhub/transport/http/response"
	"net/http"
	"strconv"
	"strings"
	"time"

	goCache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
)

// RateLimit caps requests per client (IP and user agent) inside a fixed window.
// With the redis driver the counter lives in the shared cache so every instance
// sees it; with the memory driver each instance keeps a token bucket per client.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !a.config.App.RateLimiter.Enable {
			return next
		}

		if a.config.Cache.Driver == config.CacheDriverMemory {
			return a.tokenBucket(next)
		}

		return a.fixedWindow(next)
	}
}

func (a *appMiddleware) fixedWindow(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		maxReqs := a.config.App.RateLimiter.MaxRequests
		windowSecs := a.config.App.RateLimiter.WindowSeconds

		cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

		var count int
		err := a.cache.Get(r.Context(), cacheKey, &count)

		if err != nil {
			if errors.Is(err, cache.Nil) {
				count = 1
			} else {
				// If cache fails, allow the request to continue
				next.ServeHTTP(w, r)

				return
			}
		} else {
			count++
		}

		if count > maxReqs {
			response.WithRequestLimitExceeded(w)

			return
		}

		err = a.cache.Save(r.Context(), cacheKey, count, windowSecs)
		if err != nil {
			// If cache save fails, allow the request to continue
			next.ServeHTTP(w, r)

			return
		}

		a.setLimitHeaders(w, maxReqs-count)

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) tokenBucket(next http.Handler) http.Handler {
	maxReqs := max(a.config.App.RateLimiter.MaxRequests, 1)
	window := time.Duration(max(a.config.App.RateLimiter.WindowSeconds, 1)) * time.Second
	every := rate.Every(window / time.Duration(maxReqs))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := shared.BuildCacheKey(cacheKeyRateLimit, a.getClientIP(r), a.getUA(r))

		var limiter *rate.Limiter
		if cached, ok := a.limiters.Get(key); ok {
			limiter, _ = cached.(*rate.Limiter)
		}

		if limiter == nil {
			limiter = rate.NewLimiter(every, maxReqs)
		}

		// Idle clients are evicted after a window without requests.
		a.limiters.Set(key, limiter, goCache.DefaultExpiration)

		if !limiter.Allow() {
			response.WithRequestLimitExceeded(w)

			return
		}

		a.setLimitHeaders(w, int(limiter.Tokens()))

		next.ServeHTTP(w, r)
	})
}

func (a *appMiddleware) setLimitHeaders(w http.ResponseWriter, remaining int) {
	w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(a.config.App.RateLimiter.MaxRequests))
	w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, remaining)))
	w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(a.config.App.RateLimiter.WindowSeconds))
}

func (a *appMiddleware) getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == "" {
		ua = "unknown"
	}

	return ua
}

func (a *appMiddleware) getClientIP(r *http.Request) string {
	// Check for X-Forwarded-For header first (most common proxy header)
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != "" {
		// X-Forwarded-For can contain multiple IPs, take the first one
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != "" {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
