package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	// ErrInvalidCode is returned when a code is wrong, expired or was never issued.
	ErrInvalidCode = errors.New("otp: invalid or expired code")
	// ErrDelivery is returned when the code could not be handed to the SMS gateway.
	ErrDelivery = errors.New("otp: delivery failed")
)

// Sender issues and checks one-time codes for a normalized mobile number.
type Sender interface {
	Send(ctx context.Context, mobile string) error
	Verify(ctx context.Context, mobile string, code string) error
}

// generateCode returns a uniformly random decimal code of the given length.
func generateCode(length int) (string, error) {
	digits := make([]byte, length)
	for i := range digits {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		digits[i] = byte('0' + n.Int64())
	}
	return string(digits), nil
}
