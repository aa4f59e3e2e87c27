package http

import (
	"log/slog"
	"time"

	"github.com/go-chi/httprate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/unrolled/secure"
)

// DefaultTrackingRatePerMinute limits anonymous tracking lookups per client IP.
const DefaultTrackingRatePerMinute = 60

// Middleware is the stack shared by every route.
func Middleware(logger *slog.Logger) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		middleware.Recover(),
		middleware.RequestID(),
		middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
			LogMethod:    true,
			LogURI:       true,
			LogStatus:    true,
			LogLatency:   true,
			LogRequestID: true,
			LogError:     true,
			HandleError:  true,
			LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
				attrs := []any{
					"method", v.Method,
					"uri", v.URI,
					"status", v.Status,
					"latency", v.Latency,
					"request_id", v.RequestID,
				}
				if v.Error != nil {
					logger.WarnContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
					return nil
				}
				logger.InfoContext(c.Request().Context(), "request", attrs...)
				return nil
			},
		}),
	}
}

func publicMiddleware(ratePerMinute int) []echo.MiddlewareFunc {
	if ratePerMinute <= 0 {
		ratePerMinute = DefaultTrackingRatePerMinute
	}
	headers := secure.New(secure.Options{
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'none'",
	})
	return []echo.MiddlewareFunc{
		echo.WrapMiddleware(headers.Handler),
		echo.WrapMiddleware(httprate.LimitByIP(ratePerMinute, time.Minute)),
	}
}
