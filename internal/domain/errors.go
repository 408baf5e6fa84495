package domain

import "errors"

var (
	ErrMissingField    = errors.New("missing field")
	ErrConflict        = errors.New("already exists")
	ErrNotFound        = errors.New("not found")
	ErrBadCredential   = errors.New("bad credential")
	ErrPolicyViolation = errors.New("password policy violation")

	ErrOTPNotFound = errors.New("no otp pending")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("otp mismatch")

	ErrUnauthenticated = errors.New("unauthenticated")
	ErrInvalidClaim    = errors.New("invalid claim")
)
