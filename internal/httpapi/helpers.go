package httpapi

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func errorResponse(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

func badRequest(c echo.Context, message string) error {
	return errorResponse(c, http.StatusBadRequest, message)
}

func notFound(c echo.Context, resource string) error {
	return errorResponse(c, http.StatusNotFound, resource+" not found")
}

func internalError(c echo.Context, message string) error {
	return errorResponse(c, http.StatusInternalServerError, message)
}

func validateUUIDParam(c echo.Context, paramName string) (string, bool) {
	value := c.Param(paramName)
	if _, err := uuid.Parse(value); err != nil {
		badRequest(c, paramName+" must be a valid UUID")
		return "", false
	}
	return value, true
}

func parseIntQueryParam(c echo.Context, paramName string, defaultValue, minValue, maxValue int) int {
	valueStr := c.QueryParam(paramName)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil || value < minValue {
		return defaultValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

func requireField(c echo.Context, fieldName, value string) bool {
	if value == "" {
		badRequest(c, fieldName+" is required")
		return false
	}
	return true
}
