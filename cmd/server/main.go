package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"topology/internal/access"
	"topology/internal/config"
	"topology/internal/database"
	"topology/internal/handler"
	middleware "topology/internal/midlleware"
	"topology/internal/repository"
	"topology/internal/session"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	if err := database.InitDB(cfg.DatabasePath); err != nil {
		slog.Error("init database", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB()

	studentRepo := repository.NewStudentRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	paymentRepo := repository.NewPaymentRepository(database.DB)

	sessions := session.NewManager(cfg.SessionKey, userRepo)

	loginHandler := handler.NewLoginHandler(sessions)
	dashboardHandler := handler.NewDashboardHandler(sessions, studentRepo, userRepo, paymentRepo)
	studentHandler := handler.NewStudentHandler(sessions, studentRepo)
	paymentHandler := handler.NewPaymentHandler(sessions, studentRepo, paymentRepo)
	accountHandler := handler.NewAccountHandler(sessions, userRepo)
	profileHandler := handler.NewProfileHandler(sessions, studentRepo, paymentRepo)

	gate := func(section access.Section, h http.HandlerFunc) http.Handler {
		return middleware.RequireSection(sessions, section)(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if _, ok := sessions.Current(r); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	mux.HandleFunc("/login", loginHandler.LoginPage)
	mux.HandleFunc("/auth/login", loginHandler.Login)
	mux.HandleFunc("/auth/logout", loginHandler.Logout)

	mux.Handle("/dashboard", gate(access.SectionDashboard, dashboardHandler.Dashboard))
	mux.Handle("/students", gate(access.SectionStudents, studentHandler.List))
	mux.Handle("/students/save", gate(access.SectionStudents, studentHandler.Save))
	mux.Handle("/students/delete", gate(access.SectionStudents, studentHandler.Delete))
	mux.Handle("/payments", gate(access.SectionPayments, paymentHandler.Payments))
	mux.Handle("/accounts", gate(access.SectionAccounts, accountHandler.Accounts))
	mux.Handle("/accounts/delete", gate(access.SectionAccounts, accountHandler.Delete))
	mux.Handle("/profile", gate(access.SectionProfile, profileHandler.Profile))

	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	slog.Info("server listening", "addr", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, middleware.RequireAuth(sessions)(mux)); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
