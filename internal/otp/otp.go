package otp

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"

	"github.com/adilbekov/recipebox-api/internal/domain"
)

// Purpose scopes a code to one flow on the same user record.
type Purpose string

const (
	PurposeVerify Purpose = "verify"
	PurposeReset  Purpose = "reset"
)

const (
	VerifyTTL = 24 * time.Hour
	ResetTTL  = 15 * time.Minute
)

// TTL returns the validity window for a purpose.
func TTL(p Purpose) time.Duration {
	if p == PurposeReset {
		return ResetTTL
	}
	return VerifyTTL
}

// NewCode draws a uniform 6-digit decimal code in [100000, 999999].
func NewCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(100000+n.Int64(), 10), nil
}

// Issue generates a fresh code for the purpose and stamps it on the user
// record with absolute expiry now+ttl, overwriting any prior unconsumed code.
// Persisting the record and dispatching the notification are the caller's
// responsibility.
func Issue(u *domain.User, p Purpose, now time.Time) (string, error) {
	code, err := NewCode()
	if err != nil {
		return "", err
	}
	expiry := now.Add(TTL(p))
	switch p {
	case PurposeReset:
		u.ResetOTP = code
		u.ResetOTPExpireAt = expiry
	default:
		u.VerifyOTP = code
		u.VerifyOTPExpireAt = expiry
	}
	return code, nil
}

// Validate checks supplied against the pending code for the purpose.
// Ordering: no code pending, then expiry, then exact equality. On success the
// code and expiry are cleared (one-time use) and, for the verify purpose, the
// account is marked verified. The caller persists the mutated record.
func Validate(u *domain.User, p Purpose, supplied string, now time.Time) error {
	var code string
	var expiry time.Time
	switch p {
	case PurposeReset:
		code, expiry = u.ResetOTP, u.ResetOTPExpireAt
	default:
		code, expiry = u.VerifyOTP, u.VerifyOTPExpireAt
	}

	if code == "" {
		return domain.ErrOTPNotFound
	}
	if !now.Before(expiry) {
		return domain.ErrOTPExpired
	}
	if code != supplied {
		return domain.ErrOTPMismatch
	}

	switch p {
	case PurposeReset:
		u.ResetOTP = ""
		u.ResetOTPExpireAt = time.Time{}
	default:
		u.VerifyOTP = ""
		u.VerifyOTPExpireAt = time.Time{}
		u.IsVerified = true
	}
	return nil
}
