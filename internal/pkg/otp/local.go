package otp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"
)

// maxAttempts wrong guesses burn the code.
const maxAttempts = 5

// LocalSender keeps bcrypt-hashed codes in Redis and writes the plain code to
// the log instead of sending an SMS. Meant for development and tests.
type LocalSender struct {
	client     *redis.Client
	codeLength int
	ttl        time.Duration
}

func NewLocalSender(client *redis.Client, codeLength int, ttl time.Duration) *LocalSender {
	return &LocalSender{client: client, codeLength: codeLength, ttl: ttl}
}

func codeKey(mobile string) string     { return "otp:code:" + mobile }
func attemptsKey(mobile string) string { return "otp:attempts:" + mobile }

// Send implements Sender. A new code replaces any pending one.
func (s *LocalSender) Send(ctx context.Context, mobile string) error {
	code, err := generateCode(s.codeLength)
	if err != nil {
		return fmt.Errorf("generate otp: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash otp: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, codeKey(mobile), hash, s.ttl)
	pipe.Del(ctx, attemptsKey(mobile))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%w: cache otp: %v", ErrDelivery, err)
	}

	slog.Info("OTP issued", "mobile", mobile, "code", code, "expires_in", s.ttl.String())
	return nil
}

// Verify implements Sender. A matching code is consumed.
func (s *LocalSender) Verify(ctx context.Context, mobile string, code string) error {
	hash, err := s.client.Get(ctx, codeKey(mobile)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrInvalidCode
		}
		return fmt.Errorf("read otp: %w", err)
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(code)) != nil {
		attempts, err := s.client.Incr(ctx, attemptsKey(mobile)).Result()
		if err != nil {
			return fmt.Errorf("count otp attempts: %w", err)
		}
		if attempts == 1 {
			s.client.Expire(ctx, attemptsKey(mobile), s.ttl)
		}
		if attempts >= maxAttempts {
			if err := s.client.Del(ctx, codeKey(mobile), attemptsKey(mobile)).Err(); err != nil {
				slog.Error("Failed to burn OTP after too many attempts", "mobile", mobile, "error", err)
			}
		}
		return ErrInvalidCode
	}

	if err := s.client.Del(ctx, codeKey(mobile), attemptsKey(mobile)).Err(); err != nil {
		slog.Error("Failed to delete OTP after verification", "mobile", mobile, "error", err)
	}
	return nil
}
