package utils

import "context"

type contextKey string

const UserIDKey contextKey = "user_id"

// SetUserContext stores the authenticated user's id (called by middleware).
func SetUserContext(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok
}
