package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adilbekov/recipebox-api/internal/domain"
)

// Every endpoint answers the same envelope: {success, message?, ...}.
// Logical failures keep HTTP 200; only the recipe listing uses 500.

const passwordPolicyMessage = "Password must be 8-20 characters with an uppercase letter, a lowercase letter, a digit and a symbol, and no spaces"

func respondOK(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

func respondFail(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": false, "message": msg})
}

func otpMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrOTPNotFound):
		return "No OTP pending"
	case errors.Is(err, domain.ErrOTPExpired):
		return "OTP expired"
	case errors.Is(err, domain.ErrOTPMismatch):
		return "Invalid OTP"
	}
	return "Something went wrong"
}
