package server

import (
	"context"

	"github.com/google/uuid"
)

// profileKey is the context key for the authenticated profile id.
type profileKey struct{}

func withProfileID(ctx context.Context, profileID uuid.UUID) context.Context {
	return context.WithValue(ctx, profileKey{}, profileID)
}

// ProfileIDFromContext returns the authenticated profile id, or uuid.Nil
// if the request was not authenticated.
func ProfileIDFromContext(ctx context.Context) uuid.UUID {
	if v := ctx.Value(profileKey{}); v != nil {
		return v.(uuid.UUID)
	}
	return uuid.Nil
}
