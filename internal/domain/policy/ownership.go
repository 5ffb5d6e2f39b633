// Package policy holds authorization rules shared by the resource use cases.
package policy

import (
	"context"

	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"

	"github.com/google/uuid"
)

// RequireOwner loads a resource and confirms the requester owns it.
//
// Loader errors are returned unchanged so NotFound keeps its status. When the
// owner differs, forbidden is returned; a nil forbidden falls back to ErrForbidden.
// The resource is returned so the caller can mutate and persist it.
func RequireOwner[T any](
	ctx context.Context,
	requester uuid.UUID,
	load func(ctx context.Context) (T, error),
	owner func(T) uuid.UUID,
	forbidden *domainerrors.BaseError,
) (T, error) {
	resource, err := load(ctx)
	if err != nil {
		var zero T

		return zero, err
	}

	if owner(resource) != requester {
		if forbidden == nil {
			forbidden = domainerrors.ErrForbidden
		}

		var zero T

		return zero, errors.WithStack(forbidden)
	}

	return resource, nil
}
