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

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentUC usecase.CommentUsecase
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentUC usecase.CommentUsecase) *CommentHandler {
	return &CommentHandler{commentUC: commentUC}
}

// List returns the comments of a blog. Public.
func (h *CommentHandler) List(c echo.Context) error {
	blogID, ok := uuidParam(c, "blogId")
	if !ok {
		return response.InvalidID(c, "blogId")
	}

	comments, err := h.commentUC.ListByBlog(c.Request().Context(), blogID)
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Comments found successfully"
	if len(comments) == 0 {
		message = "No comments yet"
	}

	return response.Success(c, http.StatusOK, message, response.Payload{
		"count":    len(comments),
		"comments": comments,
	})
}

// Create adds a comment by the current user to a blog.
func (h *CommentHandler) Create(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	blogID, ok := uuidParam(c, "blogId")
	if !ok {
		return response.InvalidID(c, "blogId")
	}

	var input usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	comment, err := h.commentUC.Create(c.Request().Context(), user.ID, blogID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, "Comment added successfully", response.Payload{"comment": comment})
}

// Update edits the current user's own comment.
func (h *CommentHandler) Update(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	var input usecase.CommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid comment input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	comment, err := h.commentUC.Update(c.Request().Context(), user.ID, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Comment updated successfully", response.Payload{"comment": comment})
}

// Delete removes the current user's own comment.
func (h *CommentHandler) Delete(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, ok := uuidParam(c, "id")
	if !ok {
		return response.InvalidID(c, "id")
	}

	if err := h.commentUC.Delete(c.Request().Context(), user.ID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Comment deleted successfully", nil)
}
