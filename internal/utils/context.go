package utils

import (
	"context"

	"newsroom/models"
)

type contextKey string

// UserCtxKey is the context key under which the authenticated user is
// stored by the authentication middleware.
const UserCtxKey contextKey = "user"

// ContextWithUser returns a copy of ctx carrying the authenticated user.
func ContextWithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext extracts the authenticated user from ctx. The second
// return value reports whether a user was present.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}
