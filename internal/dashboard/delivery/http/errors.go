package http

import (
	"errors"
	"net/http"

	"golang-stock-sentiment/internal/dashboard/service"

	"github.com/labstack/echo/v4"
)

// errorJSON maps service errors to a status code and writes the error body.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrViewNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrNoTicker),
		errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrEmptyMessage):
		status = http.StatusBadRequest
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}
