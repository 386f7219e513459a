package utils

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	SessionIDKey contextKey = "session_id"
	UserRoleKey  contextKey = "role"
)

const RoleAdmin = "ADMIN"

const AuthErrorKey contextKey = "auth_error"
