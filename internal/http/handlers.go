package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adilbekov/recipebox-api/internal/domain"
	"github.com/adilbekov/recipebox-api/internal/log"
	"github.com/adilbekov/recipebox-api/internal/mail"
	"github.com/adilbekov/recipebox-api/internal/metrics"
	"github.com/adilbekov/recipebox-api/internal/queue"
	"github.com/adilbekov/recipebox-api/internal/security"
)

// UserStore is the account persistence surface the handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, u *domain.User) error
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	FindUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, u *domain.User) error
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type RecipeStore interface {
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
}

// RateLimiter caps OTP sends per email. A nil limiter means unlimited.
type RateLimiter interface {
	AllowOTPSend(ctx context.Context, email string, perMin int) (bool, error)
}

type Handler struct {
	Users           UserStore
	Recipes         RecipeStore
	Mailer          mail.Sender
	Events          queue.Publisher
	Exchange        string
	Limiter         RateLimiter
	RateLimitPerMin int
	JWTSecret       string
	Prod            bool
	Health          func(ctx context.Context) error
}

func NewHandler(users UserStore, recipes RecipeStore, mailer mail.Sender, events queue.Publisher,
	exchange string, limiter RateLimiter, rlPerMin int, jwtSecret string, prod bool) *Handler {
	return &Handler{
		Users:           users,
		Recipes:         recipes,
		Mailer:          mailer,
		Events:          events,
		Exchange:        exchange,
		Limiter:         limiter,
		RateLimitPerMin: rlPerMin,
		JWTSecret:       jwtSecret,
		Prod:            prod,
	}
}

const sessionCookie = "token"

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	if h.Prod {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(sessionCookie, token, int(security.SessionTTL.Seconds()), "/", "", h.Prod, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	if h.Prod {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", h.Prod, true)
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (h *Handler) dispatchMail(ctx context.Context, kind, to, subject, body string) error {
	err := h.Mailer.Send(ctx, to, subject, body)
	outcome := "ok"
	if err != nil {
		outcome = "error"
		log.Errorf("mail dispatch %s to=%s: %v", kind, to, err)
	}
	metrics.MailDispatched.WithLabelValues(kind, outcome).Inc()
	return err
}

// allowOTPSend enforces the per-email window for OTP-bearing endpoints and
// writes the refusal itself. A limiter outage never blocks the flow.
func (h *Handler) allowOTPSend(c *gin.Context, email string) bool {
	if h.Limiter == nil || h.RateLimitPerMin <= 0 {
		return true
	}
	ok, err := h.Limiter.AllowOTPSend(c.Request.Context(), email, h.RateLimitPerMin)
	if err != nil {
		log.Errorf("otp rate limiter: %v", err)
		return true
	}
	if !ok {
		respondFail(c, "Too many OTP requests, try again later")
		return false
	}
	return true
}

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var in registerReq
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Missing details")
		return
	}
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		respondFail(c, "Missing details")
		return
	}
	if !security.ValidPassword(in.Password) {
		respondFail(c, passwordPolicyMessage)
		return
	}

	ctx := c.Request.Context()
	if u, _ := h.Users.FindUserByEmail(ctx, email); u != nil {
		respondFail(c, "User already exists")
		return
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	u := &domain.User{Name: name, Email: email, PasswordHash: hash}
	if err := h.Users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			respondFail(c, "User already exists")
			return
		}
		respondFail(c, "Something went wrong")
		return
	}

	tok, err := security.MakeSession(h.JWTSecret, u.ID.Hex())
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	h.setSessionCookie(c, tok)

	go func(ev queue.UserRegistered, reqID string) {
		_ = h.Events.Publish(context.Background(), h.Exchange, queue.KeyUserRegistered, ev, reqID)
	}(queue.UserRegistered{UserID: u.ID, Email: u.Email, Name: u.Name}, c.GetString(requestIDKey))

	// welcome mail failure does not undo the registration; the user record
	// and the session cookie stay in place
	body := fmt.Sprintf("Your account has been created with email ID: %s", email)
	if err := h.dispatchMail(ctx, "welcome", email, "Welcome!", body); err != nil {
		respondFail(c, "Failed to send welcome email")
		return
	}

	respondOK(c, "User registered successfully")
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var in loginReq
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFail(c, "Email and password required")
		return
	}
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		respondFail(c, "Email and password required")
		return
	}

	u, err := h.Users.FindUserByEmail(c.Request.Context(), email)
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	if u == nil {
		respondFail(c, "Invalid email")
		return
	}
	if !security.CheckPassword(u.PasswordHash, in.Password) {
		respondFail(c, "Invalid password")
		return
	}

	tok, err := security.MakeSession(h.JWTSecret, u.ID.Hex())
	if err != nil {
		respondFail(c, "Something went wrong")
		return
	}
	h.setSessionCookie(c, tok)
	respondOK(c, "Login successful")
}

func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	respondOK(c, "Logged out successfully")
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.Health != nil {
		if err := h.Health(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// sessionUser resolves the authenticated user from the uid the middleware
// stored. Writes the failure response itself when it returns nil.
func (h *Handler) sessionUser(c *gin.Context) *domain.User {
	u, err := h.Users.FindUserByID(c.Request.Context(), c.GetString(authUIDKey))
	if err != nil {
		respondFail(c, "Something went wrong")
		return nil
	}
	if u == nil {
		respondFail(c, "User not found")
		return nil
	}
	return u
}
