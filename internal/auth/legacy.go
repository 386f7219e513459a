package auth

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// legacyClockSkew bounds how far in the future a legacy timestamp may be.
const legacyClockSkew = time.Minute

type legacyPayload struct {
	UserID    uint  `json:"userId"`
	Timestamp int64 `json:"timestamp"`
}

// EncodeLegacy builds the old unsigned token: base64 of
// {"userId":<id>,"timestamp":<unix millis>}.
func EncodeLegacy(userID uint, issuedAt time.Time) string {
	raw, _ := json.Marshal(legacyPayload{UserID: userID, Timestamp: issuedAt.UnixMilli()})
	return base64.StdEncoding.EncodeToString(raw)
}

// DecodeLegacy parses an unsigned token and rejects it once it is ttl old
// or when it claims to be issued in the future.
// Nothing proves who minted it.
func DecodeLegacy(token string, now time.Time, ttl time.Duration) (uint, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return 0, time.Time{}, ErrInvalidToken
	}

	var p legacyPayload
	if err := json.Unmarshal(raw, &p); err != nil || p.UserID == 0 || p.Timestamp == 0 {
		return 0, time.Time{}, ErrInvalidToken
	}

	issuedAt := time.UnixMilli(p.Timestamp)
	if issuedAt.After(now.Add(legacyClockSkew)) {
		return 0, time.Time{}, ErrInvalidToken
	}
	if now.Sub(issuedAt) >= ttl {
		return 0, time.Time{}, ErrTokenExpired
	}
	return p.UserID, issuedAt, nil
}
