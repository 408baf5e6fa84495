package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adilbekov/recipebox-api/internal/domain"
	api "github.com/adilbekov/recipebox-api/internal/http"
	"github.com/adilbekov/recipebox-api/internal/queue"
)

// memStore is an in-memory UserStore with the same copy-out semantics as the
// Mongo repo: callers mutate their own copy and persist it via UpdateUser.
type memStore struct {
	mu   sync.Mutex
	byID map[string]domain.User
}

func newMemStore() *memStore {
	return &memStore{byID: map[string]domain.User{}}
}

func (s *memStore) CreateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.byID {
		if e.Email == u.Email {
			return domain.ErrConflict
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	s.byID[u.ID.Hex()] = *u
	return nil
}

func (s *memStore) FindUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.byID {
		if e.Email == email {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memStore) FindUserByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return nil, nil
	}
	cp := e
	return &cp, nil
}

func (s *memStore) UpdateUser(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[u.ID.Hex()]; !ok {
		return domain.ErrNotFound
	}
	s.byID[u.ID.Hex()] = *u
	return nil
}

func (s *memStore) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.User, 0, len(s.byID))
	for _, e := range s.byID {
		out = append(out, e)
	}
	return out, nil
}

// mutate edits the stored record in place, for expiry manipulation in tests.
func (s *memStore) mutate(t *testing.T, email string, fn func(*domain.User)) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, e := range s.byID {
		if e.Email == email {
			fn(&e)
			s.byID[id] = e
			return
		}
	}
	t.Fatalf("mutate: no user %s", email)
}

type memRecipes struct {
	items []domain.Recipe
	err   error
}

func (r *memRecipes) ListRecipes(context.Context) ([]domain.Recipe, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]domain.Recipe, 0, len(r.items))
	out = append(out, r.items...)
	return out, nil
}

type sentMail struct {
	To, Subject, Body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	fail bool
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

var otpRe = regexp.MustCompile(`\d{6}`)

// lastCode extracts the 6-digit code from the most recent mail.
func (m *recordingMailer) lastCode(t *testing.T) string {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.sent) == 0 {
		t.Fatal("no mail sent")
	}
	code := otpRe.FindString(m.sent[len(m.sent)-1].Body)
	if code == "" {
		t.Fatalf("no OTP in mail body %q", m.sent[len(m.sent)-1].Body)
	}
	return code
}

type fixedLimiter struct {
	mu     sync.Mutex
	counts map[string]int
}

func (l *fixedLimiter) AllowOTPSend(_ context.Context, email string, perMin int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts == nil {
		l.counts = map[string]int{}
	}
	l.counts[email]++
	return l.counts[email] <= perMin, nil
}

const testSecret = "test_secret"

type testEnv struct {
	Store   *memStore
	Recipes *memRecipes
	Mail    *recordingMailer
	Handler *api.Handler
	Router  *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	recipes := &memRecipes{}
	mailer := &recordingMailer{}

	h := api.NewHandler(store, recipes, mailer, queue.NewNoop(), "accounts.events",
		nil, 0, testSecret, false)
	r := api.NewRouter(h)

	return &testEnv{Store: store, Recipes: recipes, Mail: mailer, Handler: h, Router: r}
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("bad envelope: %v; body=%s", err, w.Body.String())
	}
	return env
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" && c.Value != "" {
			return c
		}
	}
	t.Fatalf("no session cookie in response; headers=%v", w.Header())
	return nil
}

// register creates an account and returns its session cookie.
func (e *testEnv) register(t *testing.T, name, email, password string) *http.Cookie {
	t.Helper()
	w := e.do(t, "POST", "/api/auth/register",
		`{"name":"`+name+`","email":"`+email+`","password":"`+password+`"}`)
	if env := decode(t, w); !env.Success {
		t.Fatalf("register failed: %s", env.Message)
	}
	return sessionCookie(t, w)
}
