package user

import (
	"context"
	"errors"
	"strings"

	"taza-be/internal/address"
	"taza-be/internal/auth"
	"taza-be/internal/logger"
	"taza-be/internal/metrics"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error)
	SignIn(ctx context.Context, in SignInInput) (*AuthResult, error)
	SignOut(ctx context.Context, userID uint, sessionID string) error

	Me(ctx context.Context, userID uint) (*User, error)
	GetProfile(ctx context.Context, userID uint) (*Profile, error)
	UpdateProfile(ctx context.Context, p UpdateProfileParams) (*Profile, error)

	ValidateSession(ctx context.Context, sessionID string, userID uint) error
}

// AddressCreator is the slice of address.Service used at sign up.
type AddressCreator interface {
	Create(ctx context.Context, userID uint, input address.CreateAddressInput) (*address.Address, error)
}

type service struct {
	repo      Repository
	tokens    *auth.Manager
	addresses AddressCreator
	metrics   *metrics.Registry
}

func NewService(repo Repository, tokens *auth.Manager, addresses AddressCreator, reg *metrics.Registry) Service {
	return &service{repo: repo, tokens: tokens, addresses: addresses, metrics: reg}
}

func (s *service) SignUp(ctx context.Context, in SignUpInput) (*AuthResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "SignUp"),
	)

	in.Name = strings.TrimSpace(in.Name)
	in.Phone = utils.NormalizePhone(in.Phone)
	in.Email = utils.TrimPtr(in.Email)
	in.Gender = utils.TrimPtr(in.Gender)

	switch {
	case in.Name == "":
		return nil, ErrNameRequired
	case in.Phone == "":
		return nil, ErrPhoneRequired
	case in.Email != nil && !validEmail(*in.Email):
		return nil, ErrInvalidEmail
	case len(in.Password) < minPasswordLength:
		return nil, ErrWeakPassword
	}
	if in.Address != nil {
		if err := address.ValidateCreateInput(in.Address); err != nil {
			return nil, err
		}
	}

	hashed, err := hashPassword(in.Password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return nil, err
	}

	u := &User{
		Name:     in.Name,
		Phone:    in.Phone,
		Email:    in.Email,
		Password: hashed,
		Gender:   in.Gender,
		Role:     RoleUser,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		if !errors.Is(err, ErrPhoneExists) && !errors.Is(err, ErrEmailExists) {
			log.Error("failed to create user", zap.Error(err))
		}
		return nil, err
	}

	if in.Address != nil && s.addresses != nil {
		in.Address.SetAsDefault = true
		if _, err := s.addresses.Create(ctx, u.ID, *in.Address); err != nil {
			// the account exists; the address can be added later
			log.Warn("failed to save sign up address", zap.Uint("user_id", u.ID), zap.Error(err))
		}
	}

	res, err := s.startSession(ctx, u, in.UserAgent, in.IPAddress)
	if err != nil {
		return nil, err
	}

	s.logActivity(ctx, u.ID, "signup", nil)
	log.Info("sign up completed", zap.Uint("user_id", u.ID))
	return res, nil
}

func (s *service) SignIn(ctx context.Context, in SignInInput) (*AuthResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("service", "User"),
		zap.String("method", "SignIn"),
	)

	phone := utils.NormalizePhone(in.Phone)
	email := strings.TrimSpace(in.Email)

	var (
		u   *User
		err error
	)
	switch {
	case phone != "":
		u, err = s.repo.FindByPhone(ctx, phone)
	case email != "":
		u, err = s.repo.FindByEmail(ctx, email)
	default:
		return nil, ErrIdentityRequired
	}

	if errors.Is(err, ErrUserNotFound) {
		s.metrics.Inc(metrics.AuthFailures)
		log.Info("sign in for unknown account")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !passwordMatches(u.Password, in.Password) {
		s.metrics.Inc(metrics.AuthFailures)
		log.Info("password mismatch", zap.Uint("user_id", u.ID))
		return nil, ErrInvalidCredentials
	}

	res, err := s.startSession(ctx, u, in.UserAgent, in.IPAddress)
	if err != nil {
		return nil, err
	}

	s.metrics.Inc(metrics.AuthSignins)
	s.logActivity(ctx, u.ID, "signin", map[string]any{"user_agent": in.UserAgent})
	return res, nil
}

// startSession records a session row and issues a token bound to it.
func (s *service) startSession(ctx context.Context, u *User, userAgent, ip string) (*AuthResult, error) {
	sessionID := uuid.NewString()

	token, expiresAt, err := s.tokens.Issue(u.ID, string(u.Role), sessionID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to issue token", zap.Uint("user_id", u.ID), zap.Error(err))
		return nil, err
	}

	sess := &Session{
		ID:        sessionID,
		UserID:    u.ID,
		UserAgent: userAgent,
		IPAddress: ip,
		ExpiresAt: expiresAt,
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}

	return &AuthResult{User: u, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *service) SignOut(ctx context.Context, userID uint, sessionID string) error {
	if sessionID != "" {
		if err := s.repo.RevokeSession(ctx, sessionID, userID); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return err
		}
	}
	s.logActivity(ctx, userID, "signout", nil)
	return nil
}

func (s *service) Me(ctx context.Context, userID uint) (*User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) GetProfile(ctx context.Context, userID uint) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, p UpdateProfileParams) (*Profile, error) {
	p.FullName = utils.TrimPtr(p.FullName)
	p.AvatarURL = utils.TrimPtr(p.AvatarURL)
	p.Email = utils.TrimPtr(p.Email)
	if p.Phone != nil {
		phone := utils.NormalizePhone(*p.Phone)
		p.Phone = utils.TrimPtr(&phone)
	}
	if p.Email != nil && !validEmail(*p.Email) {
		return nil, ErrInvalidEmail
	}
	return s.repo.UpdateProfile(ctx, p)
}

// ValidateSession rejects unknown, foreign, revoked and expired sessions and
// records activity on the rest.
func (s *service) ValidateSession(ctx context.Context, sessionID string, userID uint) error {
	if sessionID == "" {
		return ErrSessionNotFound
	}

	sess, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if sess.UserID != userID {
		return ErrSessionNotFound
	}
	if sess.RevokedAt != nil {
		return ErrSessionRevoked
	}
	if !s.tokens.Now().Before(sess.ExpiresAt) {
		return ErrSessionExpired
	}

	if err := s.repo.TouchSession(ctx, sessionID); err != nil {
		logger.FromCtx(ctx).Warn("failed to touch session", zap.String("session_id", sessionID), zap.Error(err))
	}
	return nil
}

// logActivity never fails the caller.
func (s *service) logActivity(ctx context.Context, userID uint, action string, metadata map[string]any) {
	if err := s.repo.LogActivity(ctx, userID, action, metadata); err != nil {
		logger.FromCtx(ctx).Warn("failed to log activity",
			zap.Uint("user_id", userID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
