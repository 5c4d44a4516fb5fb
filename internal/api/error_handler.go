package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/fishstats/internal/domain"
	"github.com/ougirez/fishstats/internal/pkg/constants"
	"github.com/ougirez/fishstats/internal/pkg/logger"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
	}

	if code >= http.StatusInternalServerError && code != http.StatusServiceUnavailable {
		logger.Error(c.Request().Context(), "request failed", "error", err, "path", c.Path())
		msg = constants.ErrInternal.Error()
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Success: false,
		Error:   msg,
		Code:    code,
	})
}
