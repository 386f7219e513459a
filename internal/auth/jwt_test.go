package auth

import (
	"testing"
	"time"

	"taza-be/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestManager(t *testing.T, clock *fakeClock, opts ...Option) *Manager {
	t.Helper()
	opts = append([]Option{WithClock(clock.Now)}, opts...)
	m, err := NewManager("test-secret", DefaultTTL, opts...)
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		_, err := NewManager("", time.Hour)
		assert.ErrorIs(t, err, ErrMissingSecret)
	})

	t.Run("DefaultTTL", func(t *testing.T) {
		m, err := NewManager("s", 0)
		require.NoError(t, err)
		assert.Equal(t, DefaultTTL, m.ttl)
	})
}

func TestManager_IssueVerify(t *testing.T) {
	issued := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issued}
	m := newTestManager(t, clock)

	token, expiresAt, err := m.Issue(7, "USER", "sess-1")
	require.NoError(t, err)
	assert.Equal(t, issued.Add(DefaultTTL), expiresAt)

	t.Run("AcceptedAt29Days", func(t *testing.T) {
		clock.t = issued.Add(29 * 24 * time.Hour)
		id, err := m.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), id.UserID)
		assert.Equal(t, "USER", id.Role)
		assert.Equal(t, "sess-1", id.SessionID)
		assert.False(t, id.Legacy)
	})

	t.Run("RejectedAt31Days", func(t *testing.T) {
		clock.t = issued.Add(31 * 24 * time.Hour)
		_, err := m.Verify(token)
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.Equal(t, apperror.KindAuth, apperror.KindOf(err))
	})

	t.Run("WrongSecret", func(t *testing.T) {
		clock.t = issued
		other, err := NewManager("other-secret", DefaultTTL, WithClock(clock.Now))
		require.NoError(t, err)
		_, err = other.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := m.Verify("a.b.c")
		assert.ErrorIs(t, err, ErrInvalidToken)

		_, err = m.Verify("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("RejectsNoneAlgorithm", func(t *testing.T) {
		clock.t = issued
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				IssuedAt:  jwt.NewNumericDate(issued),
				ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			},
		})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(s)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestManager_LegacyTokens(t *testing.T) {
	issued := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issued}
	legacy := EncodeLegacy(3, issued)

	t.Run("RejectedWhenDisabled", func(t *testing.T) {
		m := newTestManager(t, clock)
		_, err := m.Verify(legacy)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("AcceptedWhenEnabled", func(t *testing.T) {
		m := newTestManager(t, clock, WithLegacyTokens(true))
		clock.t = issued.Add(29 * 24 * time.Hour)
		id, err := m.Verify(legacy)
		require.NoError(t, err)
		assert.Equal(t, uint(3), id.UserID)
		assert.True(t, id.Legacy)
		assert.Empty(t, id.SessionID)
	})

	t.Run("ExpiredAfter30Days", func(t *testing.T) {
		m := newTestManager(t, clock, WithLegacyTokens(true))
		clock.t = issued.Add(31 * 24 * time.Hour)
		_, err := m.Verify(legacy)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestDecodeLegacy(t *testing.T) {
	now := time.Now()

	t.Run("RoundTrip", func(t *testing.T) {
		userID, issuedAt, err := DecodeLegacy(EncodeLegacy(9, now), now, DefaultTTL)
		require.NoError(t, err)
		assert.Equal(t, uint(9), userID)
		assert.Equal(t, now.UnixMilli(), issuedAt.UnixMilli())
	})

	t.Run("NotBase64", func(t *testing.T) {
		_, _, err := DecodeLegacy("%%%", now, DefaultTTL)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("MissingFields", func(t *testing.T) {
		_, _, err := DecodeLegacy("e30=", now, DefaultTTL) // {}
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("FutureTimestamp", func(t *testing.T) {
		_, _, err := DecodeLegacy(EncodeLegacy(9, now.Add(24*time.Hour)), now, DefaultTTL)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("SmallSkewAccepted", func(t *testing.T) {
		userID, _, err := DecodeLegacy(EncodeLegacy(9, now.Add(30*time.Second)), now, DefaultTTL)
		require.NoError(t, err)
		assert.Equal(t, uint(9), userID)
	})

	t.Run("Expired", func(t *testing.T) {
		_, _, err := DecodeLegacy(EncodeLegacy(9, now.Add(-DefaultTTL)), now, DefaultTTL)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}
