package handler

import (
	"net/http"
	"strconv"

	"storyhub/internal/delivery/http/response"
	"storyhub/internal/domain/service"
	"storyhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// MediaHandler serves uploaded media for buckets that have no public endpoint of their own.
type MediaHandler struct {
	store service.MediaStore
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(store service.MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// Serve streams the object named by the wildcard path.
func (h *MediaHandler) Serve(c echo.Context) error {
	key := c.Param("*")
	if key == "" {
		return response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found", "")
	}

	object, err := h.store.Open(c.Request().Context(), key)
	if err != nil {
		return errors.WithStack(err)
	}
	defer object.Close()

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, "public, max-age=86400, immutable")
	header.Set("X-Content-Type-Options", "nosniff")
	if object.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}

	return c.Stream(http.StatusOK, object.ContentType, object)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, "Service is healthy", response.Payload{"status": "ok"})
}
