package session

import (
	"net/http"

	"github.com/gorilla/sessions"

	"topology/internal/entity"
	"topology/internal/repository"
)

const sessionName = "app-session"

// Manager owns the logged-in identity. The identity lives in a signed
// cookie, so it survives restarts and is never touched by document
// saves.
type Manager struct {
	store *sessions.CookieStore
	users *repository.UserRepository
}

func NewManager(key []byte, users *repository.UserRepository) *Manager {
	return &Manager{
		store: sessions.NewCookieStore(key),
		users: users,
	}
}

// Login authenticates the credentials and persists the identity into
// the session cookie.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, email, password string) (entity.User, error) {
	user, err := m.users.Authenticate(email, password)
	if err != nil {
		return entity.User{}, err
	}

	session, _ := m.store.Get(r, sessionName)
	session.Values["user_id"] = user.ID
	session.Values["role"] = string(user.Role)
	if err := session.Save(r, w); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Logout clears the session cookie.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) {
	session, _ := m.store.Get(r, sessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)
}

// Current restores the logged-in user for a request. A corrupt or
// tampered cookie, or an identity whose account no longer exists, reads
// as logged out.
func (m *Manager) Current(r *http.Request) (entity.User, bool) {
	session, err := m.store.Get(r, sessionName)
	if err != nil {
		return entity.User{}, false
	}

	userID, ok := session.Values["user_id"].(string)
	if !ok || userID == "" {
		return entity.User{}, false
	}

	user, err := m.users.Get(userID)
	if err != nil {
		return entity.User{}, false
	}
	return user, true
}
