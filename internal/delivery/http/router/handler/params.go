package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// uuidParam parses a path parameter as a UUID.
func uuidParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}
