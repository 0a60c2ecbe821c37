package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"topology/internal/access"
	"topology/internal/entity"
	"topology/internal/repository"
	"topology/internal/session"
)

type AccountHandler struct {
	sessions *session.Manager
	users    *repository.UserRepository
	tmpl     *template.Template
}

func NewAccountHandler(sessions *session.Manager, users *repository.UserRepository) *AccountHandler {
	return &AccountHandler{
		sessions: sessions,
		users:    users,
		tmpl:     parseTemplate("internal/templates/accounts.html"),
	}
}

// Accounts dispatches the shared /accounts route: POST registers an
// account, anything else renders the page.
func (h *AccountHandler) Accounts(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.Create(w, r)
		return
	}
	h.List(w, r)
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := h.sessions.Current(r)

	data := pageData("Accounts", user, loggedIn)
	data["Users"] = h.users.List()
	data["Error"] = r.URL.Query().Get("error")

	h.tmpl.Execute(w, data)
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}
	user, _ := h.sessions.Current(r)
	if !access.CanManageAccounts(user.Role) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	fields := entity.UserFields{
		Name:     strings.TrimSpace(r.FormValue("name")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		Role:     entity.Role(r.FormValue("role")),
	}

	if _, err := h.users.Add(fields); err != nil {
		var validation *entity.ValidationError
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			http.Redirect(w, r, "/accounts?error=email+exists", http.StatusSeeOther)
		case errors.As(err, &validation):
			http.Redirect(w, r, "/accounts?error="+url.QueryEscape(validation.Error()), http.StatusSeeOther)
		default:
			slog.Error("create account", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}

func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/accounts", http.StatusSeeOther)
		return
	}
	user, _ := h.sessions.Current(r)
	if !access.CanManageAccounts(user.Role) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if err := h.users.Delete(r.FormValue("id")); err != nil {
		switch {
		case errors.Is(err, repository.ErrAdminAccount):
			http.Redirect(w, r, "/accounts?error=admin+accounts+cannot+be+removed", http.StatusSeeOther)
		case errors.Is(err, repository.ErrNotFound):
			http.Redirect(w, r, "/accounts?error=account+not+found", http.StatusSeeOther)
		default:
			slog.Error("delete account", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/accounts", http.StatusSeeOther)
}
