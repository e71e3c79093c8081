package middleware

import (
	"time"

	"organizer/config"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware provides per-client rate limiters for the hot
// endpoints. Limits apply per remote IP and are enforced in memory, so each
// instance counts independently.
type RateLimitMiddleware struct {
	meRequests     int
	meWindow       time.Duration
	resendRequests int
	resendWindow   time.Duration
}

// NewRateLimitMiddleware creates the middleware from configuration,
// falling back to the configured defaults when the section is absent.
func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	rl := cfg.RateLimit

	return &RateLimitMiddleware{
		meRequests:     rl.MeRequests,
		meWindow:       rl.MeWindow,
		resendRequests: rl.ResendRequests,
		resendWindow:   rl.ResendWindow,
	}
}

// LimitMe throttles the current-user endpoint.
func (m *RateLimitMiddleware) LimitMe() echo.MiddlewareFunc {
	return limiter(m.meRequests, m.meWindow)
}

// LimitResend throttles confirmation-email resends.
func (m *RateLimitMiddleware) LimitResend() echo.MiddlewareFunc {
	return limiter(m.resendRequests, m.resendWindow)
}

func limiter(requests int, window time.Duration) echo.MiddlewareFunc {
	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Every(window / time.Duration(requests)),
				Burst:     requests,
				ExpiresIn: window,
			},
		),
	})
}
