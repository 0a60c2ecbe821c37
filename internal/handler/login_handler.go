package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"topology/internal/entity"
	"topology/internal/session"
)

type LoginHandler struct {
	sessions *session.Manager
	tmpl     *template.Template
}

func NewLoginHandler(sessions *session.Manager) *LoginHandler {
	return &LoginHandler{
		sessions: sessions,
		tmpl:     parseTemplate("internal/templates/login.html"),
	}
}

func (h *LoginHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.sessions.Current(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	data := pageData("Login", entity.User{}, false)
	data["Error"] = r.URL.Query().Get("error")
	data["Email"] = r.URL.Query().Get("email")
	h.tmpl.Execute(w, data)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.LoginPage(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	if email == "" || password == "" {
		http.Redirect(w, r, "/login?error=empty_fields&email="+url.QueryEscape(email), http.StatusSeeOther)
		return
	}

	user, err := h.sessions.Login(w, r, email, password)
	if err != nil {
		slog.Info("rejected login", "email", email)
		http.Redirect(w, r, "/login?error=invalid_credentials&email="+url.QueryEscape(email), http.StatusSeeOther)
		return
	}

	slog.Info("login", "user", user.ID, "role", user.Role)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Logout(w, r)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
