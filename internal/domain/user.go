package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the account record. OTP state lives on the record itself: at most
// one active code per purpose, each reissue overwrites the previous one.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name"          json:"name"`
	Email        string             `bson:"email"         json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	IsVerified   bool               `bson:"is_verified"   json:"is_verified"`

	VerifyOTP         string    `bson:"verify_otp,omitempty"           json:"-"`
	VerifyOTPExpireAt time.Time `bson:"verify_otp_expire_at,omitempty" json:"-"`
	ResetOTP          string    `bson:"reset_otp,omitempty"            json:"-"`
	ResetOTPExpireAt  time.Time `bson:"reset_otp_expire_at,omitempty"  json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// PublicUser is the redacted projection served by the listing endpoint.
// A projection contract, not a security boundary.
type PublicUser struct {
	ID         primitive.ObjectID `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	IsVerified bool               `json:"is_verified"`
	CreatedAt  time.Time          `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}
