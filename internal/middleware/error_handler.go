package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/privatechef/chef-events/internal/dto"
	"github.com/privatechef/chef-events/internal/service"
)

func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		_ = c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Message: "validation failed",
			Errors:  verr.Fields,
		})
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
