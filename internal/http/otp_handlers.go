package http

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adilbekov/recipebox-api/internal/otp"
	"github.com/adilbekov/recipebox-api/internal/security"
)

// SendVerifyOTP issues a verification code for the logged-in account.
// Already-verified accounts get a positive no-op answer.
func (h *Handler) SendVerifyOTP(c *gin.Context) {
	u := h.sessionUser(c)
	if u == nil {
		return
	}
	if u.IsVerified {
		respondOK(c, "Account already verified")
		return
	}
	if !h.allowOTPSend(c, u.Email) {
		return
	}

	code, err := otp.Issue(u, otp.PurposeVerify, time.Now().UTC())
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	ctx := c.Request.Context()
	if err := h.Users.UpdateUser(ctx, u); err != nil {
		respondFail(c, "Something went wrong")
		return
	}

	body := fmt.Sprintf("Your OTP is %s. Verify your account using this code.", code)
	if err := h.dispatchMail(ctx, "verify_otp", u.Email, "Account Verification OTP", body); err != nil {
		respondFail(c, "Failed to send OTP email")
		return
	}
	respondOK(c, "Verification OTP sent to your email")
}

// ResendVerifyOTP is SendVerifyOTP with the original's inverted polarity on
// the already-verified case.
func (h *Handler) ResendVerifyOTP(c *gin.Context) {
	u := h.sessionUser(c)
	if u == nil {
		return
	}
	if u.IsVerified {
		respondFail(c, "Account already verified")
		return
	}
	if !h.allowOTPSend(c, u.Email) {
		return
	}

	code, err := otp.Issue(u, otp.PurposeVerify, time.Now().UTC())
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	ctx := c.Request.Context()
	if err := h.Users.UpdateUser(ctx, u); err != nil {
		respondFail(c, "Something went wrong")
		return
	}

	body := fmt.Sprintf("Your new OTP is %s. It is valid for 24 hours.", code)
	if err := h.dispatchMail(ctx, "verify_otp", u.Email, "Resend OTP for Account Verification", body); err != nil {
		respondFail(c, "Failed to send OTP email")
		return
	}
	respondOK(c, "New OTP sent successfully")
}

type verifyAccountReq struct {
	OTP string `json:"otp"`
}

func (h *Handler) VerifyAccount(c *gin.Context) {
	var in verifyAccountReq
	if err := c.ShouldBindJSON(&in); err != nil || in.OTP == "" {
		respondFail(c, "Missing OTP")
		return
	}
	u := h.sessionUser(c)
	if u == nil {
		return
	}
	if err := otp.Validate(u, otp.PurposeVerify, in.OTP, time.Now().UTC()); err != nil {
		respondFail(c, otpMessage(err))
		return
	}
	if err := h.Users.UpdateUser(c.Request.Context(), u); err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	respondOK(c, "Email verified successfully")
}

type sendResetOTPReq struct {
	Email string `json:"email"`
}

// SendResetOTP has no already-verified guard: any existing user may always
// request a new reset code.
func (h *Handler) SendResetOTP(c *gin.Context) {
	var in sendResetOTPReq
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Email is required")
		return
	}
	email := normalizeEmail(in.Email)
	if email == "" {
		respondFail(c, "Email is required")
		return
	}

	ctx := c.Request.Context()
	u, err := h.Users.FindUserByEmail(ctx, email)
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	if u == nil {
		respondFail(c, "User not found")
		return
	}
	if !h.allowOTPSend(c, u.Email) {
		return
	}

	code, err := otp.Issue(u, otp.PurposeReset, time.Now().UTC())
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	if err := h.Users.UpdateUser(ctx, u); err != nil {
		respondFail(c, "Something went wrong")
		return
	}

	body := fmt.Sprintf("Your OTP for resetting your password is %s. It will expire in 15 minutes.", code)
	if err := h.dispatchMail(ctx, "reset_otp", u.Email, "Password Reset OTP", body); err != nil {
		respondFail(c, "Failed to send OTP email")
		return
	}
	respondOK(c, "OTP sent to your email for password reset")
}

type resetPasswordReq struct {
	Email    string `json:"email"`
	OTP      string `json:"otp"`
	Password string `json:"password"`
}

// ResetPassword validates the reset code, applies the password policy, and
// writes the new hash together with the cleared code in one update.
func (h *Handler) ResetPassword(c *gin.Context) {
	var in resetPasswordReq
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Email, OTP, and new password are required")
		return
	}
	email := normalizeEmail(in.Email)
	if email == "" || in.OTP == "" || in.Password == "" {
		respondFail(c, "Email, OTP, and new password are required")
		return
	}

	ctx := c.Request.Context()
	u, err := h.Users.FindUserByEmail(ctx, email)
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	if u == nil {
		respondFail(c, "User not found")
		return
	}

	if err := otp.Validate(u, otp.PurposeReset, in.OTP, time.Now().UTC()); err != nil {
		respondFail(c, otpMessage(err))
		return
	}
	if !security.ValidPassword(in.Password) {
		respondFail(c, passwordPolicyMessage)
		return
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	u.PasswordHash = hash
	if err := h.Users.UpdateUser(ctx, u); err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	respondOK(c, "Password has been reset successfully")
}
