package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"topology/internal/database"
	"topology/internal/entity"
	"topology/internal/repository"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func newTestUsers(t *testing.T) *repository.UserRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "topology.db"))
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return repository.NewUserRepository(db)
}

func loginCookies(t *testing.T, manager *Manager, email, password string) []*http.Cookie {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	w := httptest.NewRecorder()
	if _, err := manager.Login(w, r, email, password); err != nil {
		t.Fatalf("login: %v", err)
	}
	return w.Result().Cookies()
}

func TestLoginAndCurrent(t *testing.T) {
	users := newTestUsers(t)
	manager := NewManager(testKey, users)

	cookies := loginCookies(t, manager, "admin@topology.edu", "admin")
	if len(cookies) == 0 {
		t.Fatal("login did not set a session cookie")
	}

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}

	user, ok := manager.Current(r)
	if !ok {
		t.Fatal("expected a logged-in user")
	}
	if user.Email != "admin@topology.edu" || user.Role != entity.RoleAdmin {
		t.Fatalf("restored user = %+v", user)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	manager := NewManager(testKey, newTestUsers(t))

	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	w := httptest.NewRecorder()
	if _, err := manager.Login(w, r, "admin@topology.edu", "wrong"); !errors.Is(err, repository.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if len(w.Result().Cookies()) != 0 {
		t.Fatal("failed login must not set a cookie")
	}
}

// The session lives in the cookie: a fresh manager with the same key,
// as after a server restart, still restores the identity.
func TestSessionSurvivesRestart(t *testing.T) {
	users := newTestUsers(t)
	manager := NewManager(testKey, users)

	cookies := loginCookies(t, manager, "student@topology.edu", "student")

	restarted := NewManager(testKey, users)
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}

	user, ok := restarted.Current(r)
	if !ok {
		t.Fatal("expected the session to survive a restart")
	}
	if user.ID != "u_student" {
		t.Fatalf("restored user = %s, want u_student", user.ID)
	}
}

func TestTamperedCookieReadsAsLoggedOut(t *testing.T) {
	manager := NewManager(testKey, newTestUsers(t))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: "app-session", Value: "garbage"})

	if _, ok := manager.Current(r); ok {
		t.Fatal("tampered cookie must read as logged out")
	}
}

func TestCurrentWithoutCookie(t *testing.T) {
	manager := NewManager(testKey, newTestUsers(t))

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if _, ok := manager.Current(r); ok {
		t.Fatal("expected logged out without a cookie")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	users := newTestUsers(t)
	manager := NewManager(testKey, users)

	loginCookies(t, manager, "admin@topology.edu", "admin")

	r := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	w := httptest.NewRecorder()
	manager.Logout(w, r)

	cleared := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range w.Result().Cookies() {
		cleared.AddCookie(c)
	}
	if _, ok := manager.Current(cleared); ok {
		t.Fatal("expected logged out after logout")
	}
}

// A session for an account that has since been deleted reads as logged
// out instead of resurrecting the old identity.
func TestCurrentDeletedAccount(t *testing.T) {
	users := newTestUsers(t)
	manager := NewManager(testKey, users)

	cookies := loginCookies(t, manager, "teacher@topology.edu", "teacher")

	if err := users.Delete("u_teacher"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	if _, ok := manager.Current(r); ok {
		t.Fatal("deleted account must read as logged out")
	}
}
