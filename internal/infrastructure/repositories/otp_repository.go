package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/estospaces/realtysvc/domain"
)

// OTPRepositoryImpl implements domain.OTPRepository using Redis.
// Records are JSON under otp:<email>. The key TTL sits above the
// logical expiry inside the record so a stale code reads back as
// expired rather than missing.
type OTPRepositoryImpl struct {
	client *redis.Client
	prefix string
	grace  time.Duration
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(client *redis.Client) domain.OTPRepository {
	return &OTPRepositoryImpl{
		client: client,
		prefix: "otp:",
		grace:  time.Hour,
	}
}

// Save implements domain.OTPRepository. Overwrites any prior record
// for the email: last write wins, no multi-OTP queue.
func (r *OTPRepositoryImpl) Save(ctx context.Context, email string, otp *domain.OTP) error {
	key := r.prefix + email
	data, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal otp: %w", err)
	}

	ttl := time.Until(otp.ExpiresAt) + r.grace
	return r.client.Set(ctx, key, data, ttl).Err()
}

// Find implements domain.OTPRepository
func (r *OTPRepositoryImpl) Find(ctx context.Context, email string) (*domain.OTP, error) {
	key := r.prefix + email
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, domain.ErrOTPNotFound
		}
		return nil, err
	}

	var otp domain.OTP
	if err := json.Unmarshal([]byte(data), &otp); err != nil {
		return nil, domain.ErrOTPMalformed
	}
	if otp.Code == "" || otp.ExpiresAt.IsZero() {
		return nil, domain.ErrOTPMalformed
	}

	return &otp, nil
}

// Clear implements domain.OTPRepository. Consumes the record; a
// missing key is not an error.
func (r *OTPRepositoryImpl) Clear(ctx context.Context, email string) error {
	return r.client.Del(ctx, r.prefix+email).Err()
}
