package user

import "time"

type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     *string   `json:"email,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProfileResponse struct {
	UserID      uint       `json:"userId"`
	FullName    *string    `json:"fullName,omitempty"`
	AvatarURL   *string    `json:"avatarUrl,omitempty"`
	Phone       *string    `json:"phone,omitempty"`
	Email       *string    `json:"email,omitempty"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

type AuthResponse struct {
	User      UserResponse `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Gender:    u.Gender,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		FullName:    p.FullName,
		AvatarURL:   p.AvatarURL,
		Phone:       p.Phone,
		Email:       p.Email,
		DateOfBirth: p.DateOfBirth,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToAuthResponse(r *AuthResult) AuthResponse {
	return AuthResponse{
		User:      ToUserResponse(r.User),
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
	}
}
