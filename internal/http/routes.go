package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Metrics())

	r.GET("/healthz", h.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := Auth(h.JWTSecret)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/sendverifyotp", requireAuth, h.SendVerifyOTP)
		auth.POST("/verifyaccount", requireAuth, h.VerifyAccount)
		auth.POST("/resendverifyotp", requireAuth, h.ResendVerifyOTP)
		auth.POST("/sendResetOtp", h.SendResetOTP)
		auth.POST("/resetPassword", h.ResetPassword)
		auth.GET("/alluserdata", h.AllUserData)
	}

	r.GET("/api/user/data", requireAuth, h.UserData)
	r.GET("/api/recipes", h.ListRecipes)

	return r
}
