package domain

import (
	"context"

	"github.com/google/uuid"
)

type userIDKey struct{}

// SetUserID stores an already-resolved caller identity in the context.
// The engine never authenticates; the surrounding auth layer resolves the
// identity (or its absence) before the request reaches this module.
func SetUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFrom extracts the resolved caller identity, if any.
func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey{}).(uuid.UUID)
	return id, ok
}
