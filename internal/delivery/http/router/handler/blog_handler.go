package handler

import (
	"net/http"

	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/delivery/http/response"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"
	"storyhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// BlogHandler handles blog HTTP requests
type BlogHandler struct {
	blogUC usecase.BlogUsecase
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(blogUC usecase.BlogUsecase) *BlogHandler {
	return &BlogHandler{blogUC: blogUC}
}

// List returns every blog, newest first.
func (h *BlogHandler) List(c echo.Context) error {
	blogs, err := h.blogUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Blogs fetched successfully"
	if len(blogs) == 0 {
		message = "No blogs yet"
	}

	return response.Success(c, http.StatusOK, message, response.Payload{
		"count": len(blogs),
		"blogs": blogs,
	})
}

// Get returns a single blog.
func (h *BlogHandler) Get(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	blog, err := h.blogUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Blog fetched successfully", response.Payload{"blog": blog})
}

// Create publishes a blog authored by the current user.
func (h *BlogHandler) Create(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input usecase.CreateBlogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	blog, err := h.blogUC.Create(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Blog created successfully", response.Payload{"blog": blog})
}

// Update edits a blog owned by the current user.
func (h *BlogHandler) Update(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	var input usecase.UpdateBlogInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid blog input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	blog, err := h.blogUC.Update(c.Request().Context(), user.ID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Blog updated successfully", response.Payload{"blog": blog})
}

// Delete removes a blog owned by the current user, with its comments.
func (h *BlogHandler) Delete(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	if err := h.blogUC.Delete(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Blog deleted successfully", nil)
}

// ShareQR renders a PNG QR code linking to the blog.
func (h *BlogHandler) ShareQR(c echo.Context) error {
	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	png, err := h.blogUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
