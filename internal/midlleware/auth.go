package middleware

import (
	"net/http"
	"strings"

	"topology/internal/access"
	"topology/internal/session"
)

// RequireAuth redirects anonymous requests on protected paths to the
// login page.
func RequireAuth(manager *session.Manager) func(http.Handler) http.Handler {
	publicPaths := []string{
		"/",
		"/login",
		"/auth/login",
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			for _, publicPath := range publicPaths {
				if path == publicPath {
					next.ServeHTTP(w, r)
					return
				}
			}
			if strings.HasPrefix(path, "/static/") {
				next.ServeHTTP(w, r)
				return
			}

			if _, ok := manager.Current(r); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireSection gates a page on the access policy for the current
// role. Logged-in users without access land back on the dashboard.
func RequireSection(manager *session.Manager, section access.Section) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := manager.Current(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if !access.Visible(user.Role, section) {
				http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
