package user

import (
	"time"

	"taza-be/internal/address"
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID        uint
	Name      string
	Phone     string
	Email     *string
	Password  string
	Gender    *string
	Role      Role
	CreatedAt time.Time
}

type Profile struct {
	UserID      uint
	FullName    *string
	AvatarURL   *string
	Phone       *string
	Email       *string
	DateOfBirth *time.Time
	UpdatedAt   time.Time
}

type UpdateProfileParams struct {
	UserID      uint
	FullName    *string
	AvatarURL   *string
	Phone       *string
	Email       *string
	DateOfBirth *time.Time
}

// Session is the server-side record behind an access token. Its ID is the
// token's jti.
type Session struct {
	ID             string
	UserID         uint
	UserAgent      string
	IPAddress      string
	ExpiresAt      time.Time
	LastActivityAt time.Time
	RevokedAt      *time.Time
}

type SignUpInput struct {
	Name     string
	Phone    string
	Email    *string
	Password string
	Gender   *string
	Address  *address.CreateAddressInput

	UserAgent string
	IPAddress string
}

// SignInInput identifies the account by phone or email.
type SignInInput struct {
	Phone    string
	Email    string
	Password string

	UserAgent string
	IPAddress string
}

type AuthResult struct {
	User      *User
	Token     string
	ExpiresAt time.Time
}
