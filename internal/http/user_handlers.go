package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adilbekov/recipebox-api/internal/domain"
)

// AllUserData lists every account with secret and OTP fields redacted.
// No pagination; acceptable while the caller count stays small.
func (h *Handler) AllUserData(c *gin.Context) {
	users, err := h.Users.ListUsers(c.Request.Context())
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(out), "users": out})
}

// UserData returns the profile of the session's account.
func (h *Handler) UserData(c *gin.Context) {
	u := h.sessionUser(c)
	if u == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"userData": gin.H{
			"name":              u.Name,
			"isAccountVerified": u.IsVerified,
		},
	})
}
