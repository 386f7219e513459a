package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	OrderNumberPrefix = "#TAZ"

	otpMin = 100000
	otpMax = 999999
)

// GenerateOrderNumber formats the human readable order number from the
// number of existing orders and a fixed offset.
func GenerateOrderNumber(existing, offset int) string {
	return fmt.Sprintf("%s%d", OrderNumberPrefix, existing+offset)
}

// GenerateOTP returns a 6 digit code drawn uniformly from [100000, 999999].
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}
