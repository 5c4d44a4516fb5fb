package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/ougirez/fishstats/internal/pkg/logger"
)

// ReadinessMiddleware answers 503 until the datasets have been published to the store.
func (svc *APIService) ReadinessMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !svc.store.Ready() {
			return constants.ErrNotReady
		}
		return next(ctx)
	}
}

// RequestIDMiddleware tags every request with an id and carries it into the logger context.
func (svc *APIService) RequestIDMiddleware() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(ctx echo.Context, id string) {
			req := ctx.Request()
			ctx.SetRequest(req.WithContext(logger.WithContext(req.Context(), constants.CtxKeyRequestID, id)))
		},
	})
}

func (svc *APIService) RequestLogMiddleware() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				logger.Warnf(ctx.Request().Context(), "%s %s -> %d in %s: %v", v.Method, v.URI, v.Status, v.Latency, v.Error)
				return nil
			}
			logger.Infof(ctx.Request().Context(), "%s %s -> %d in %s", v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	})
}
