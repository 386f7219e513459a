package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"taza-be/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
)

const DefaultTTL = 30 * 24 * time.Hour

var (
	ErrMissingSecret = errors.New("JWT_SECRET is not set")
	ErrInvalidToken  = apperror.Auth("invalid token")
	ErrTokenExpired  = apperror.Auth("token expired")
)

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is what a verified token says about its bearer. SessionID is
// empty for legacy tokens.
type Identity struct {
	UserID    uint
	Role      string
	SessionID string
	IssuedAt  time.Time
	Legacy    bool
}

type Option func(*Manager)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLegacyTokens makes Verify accept the old base64 {userId,timestamp} tokens.
func WithLegacyTokens(accept bool) Option {
	return func(m *Manager) { m.acceptLegacy = accept }
}

// Manager issues and verifies HS256 access tokens. Expiry is absolute from
// issuance; using a token does not extend it.
type Manager struct {
	secret       []byte
	ttl          time.Duration
	now          func() time.Time
	acceptLegacy bool
}

func NewManager(secret string, ttl time.Duration, opts ...Option) (*Manager, error) {
	if secret == "" {
		return nil, ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	m := &Manager{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Now() time.Time { return m.now() }

// Issue signs a token for the user bound to sessionID (the jti claim).
func (m *Manager) Issue(userID uint, role, sessionID string) (string, time.Time, error) {
	issuedAt := m.now()
	expiresAt := issuedAt.Add(m.ttl)

	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature and age. It does not consult the session store.
func (m *Manager) Verify(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	if strings.Count(token, ".") != 2 {
		if !m.acceptLegacy {
			return nil, ErrInvalidToken
		}
		userID, issuedAt, err := DecodeLegacy(token, m.now(), m.ttl)
		if err != nil {
			return nil, err
		}
		return &Identity{UserID: userID, Role: "USER", IssuedAt: issuedAt, Legacy: true}, nil
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UserID == 0 || claims.IssuedAt == nil {
		return nil, ErrInvalidToken
	}

	issuedAt := claims.IssuedAt.Time
	if m.now().Sub(issuedAt) >= m.ttl {
		return nil, ErrTokenExpired
	}

	return &Identity{
		UserID:    claims.UserID,
		Role:      claims.Role,
		SessionID: claims.ID,
		IssuedAt:  issuedAt,
	}, nil
}
