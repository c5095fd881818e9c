package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/constants"
	"github.com/Roastcoder/finonest-server-sub001/services/auth"
)

// consumeScript deletes the challenge only when the submitted code matches,
// in one atomic step. Two concurrent verifies against the same code cannot
// both observe a match.
// Returns -1 when no challenge exists, 0 on mismatch, 1 on consume.
var consumeScript = redis.NewScript(`
local code = redis.call("GET", KEYS[1])
if not code then
  return -1
end
if code ~= ARGV[1] then
  return 0
end
redis.call("DEL", KEYS[1])
redis.call("DEL", KEYS[2])
return 1
`)

// CreateChallenge stores an OTP challenge for the phone number. Any prior
// unconsumed challenge is overwritten, so only the latest code is valid,
// and the attempt counter restarts with the new challenge.
func (r *AuthRepo) CreateChallenge(ctx context.Context, phone, code string, ttl time.Duration) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, phone)
	attemptsKey := fmt.Sprintf(constants.KeyAuthOTPAttempts, phone)

	pipe := r.redisClient.Client.TxPipeline()
	pipe.Set(ctx, key, code, ttl)
	pipe.Del(ctx, attemptsKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store OTP challenge in Redis: %w", err)
	}

	return nil
}

// ConsumeChallenge atomically consumes the challenge when the code matches
func (r *AuthRepo) ConsumeChallenge(ctx context.Context, phone, code string) (auth.ConsumeResult, error) {
	key := fmt.Sprintf(constants.KeyAuthOTP, phone)
	attemptsKey := fmt.Sprintf(constants.KeyAuthOTPAttempts, phone)

	res, err := consumeScript.Run(ctx, r.redisClient.Client, []string{key, attemptsKey}, code).Int64()
	if err != nil {
		return auth.OTPNotFound, fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	switch res {
	case 1:
		return auth.OTPConsumed, nil
	case 0:
		return auth.OTPMismatch, nil
	default:
		return auth.OTPNotFound, nil
	}
}

// IncrAttempts increments the failed-attempt counter for the phone's
// current challenge. The counter expires with the challenge window so it
// never outlives the code it guards.
func (r *AuthRepo) IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int64, error) {
	attemptsKey := fmt.Sprintf(constants.KeyAuthOTPAttempts, phone)

	attempts, err := r.redisClient.Client.Incr(ctx, attemptsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment OTP attempts: %w", err)
	}

	if attempts == 1 {
		if err := r.redisClient.Client.Expire(ctx, attemptsKey, ttl).Err(); err != nil {
			return attempts, fmt.Errorf("failed to expire OTP attempts: %w", err)
		}
	}

	return attempts, nil
}

// DeleteChallenge invalidates the current challenge for the phone number
func (r *AuthRepo) DeleteChallenge(ctx context.Context, phone string) error {
	key := fmt.Sprintf(constants.KeyAuthOTP, phone)
	attemptsKey := fmt.Sprintf(constants.KeyAuthOTPAttempts, phone)

	if err := r.redisClient.Client.Del(ctx, key, attemptsKey).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP challenge: %w", err)
	}

	return nil
}
