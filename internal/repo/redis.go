package repo

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Redis struct{ C *redis.Client }

func NewRedis(addr string) *Redis {
	return &Redis{C: redis.NewClient(&redis.Options{Addr: addr})}
}

func (r *Redis) Ping(ctx context.Context) error { return r.C.Ping(ctx).Err() }
func (r *Redis) Close() error                   { return r.C.Close() }

// AllowOTPSend applies a fixed one-minute window per email for OTP dispatch.
// First hit creates the counter with a 60s expiry; the send is allowed while
// the counter stays within perMin.
func (r *Redis) AllowOTPSend(ctx context.Context, email string, perMin int) (bool, error) {
	key := "otp:rl:" + email
	n, err := r.C.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := r.C.Expire(ctx, key, time.Minute).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(perMin), nil
}
