package utils

import "context"

// SetUserContext sets the authenticated caller into context (called by middleware)
func SetUserContext(ctx context.Context, id uint, sessionID string, role string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, id)
	ctx = context.WithValue(ctx, SessionIDKey, sessionID)
	ctx = context.WithValue(ctx, UserRoleKey, role)
	return ctx
}

// GetUserIDFromContext retrieves userID safely
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(UserIDKey).(uint)
	return id, ok && id != 0
}

func GetSessionIDFromContext(ctx context.Context) string {
	sid, _ := ctx.Value(SessionIDKey).(string)
	return sid
}

func GetUserRoleFromContext(ctx context.Context) string {
	role, _ := ctx.Value(UserRoleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return GetUserRoleFromContext(ctx) == RoleAdmin
}

// SetAuthError records why a presented token was not accepted. The request
// still proceeds anonymously.
func SetAuthError(ctx context.Context, err error) context.Context {
	return context.WithValue(ctx, AuthErrorKey, err)
}

func GetAuthErrorFromContext(ctx context.Context) error {
	err, _ := ctx.Value(AuthErrorKey).(error)
	return err
}
