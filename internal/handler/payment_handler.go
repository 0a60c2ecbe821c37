package handler

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"topology/internal/access"
	"topology/internal/entity"
	"topology/internal/repository"
	"topology/internal/session"
)

type PaymentHandler struct {
	sessions *session.Manager
	students *repository.StudentRepository
	payments *repository.PaymentRepository
	tmpl     *template.Template
}

func NewPaymentHandler(sessions *session.Manager, students *repository.StudentRepository, payments *repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{
		sessions: sessions,
		students: students,
		payments: payments,
		tmpl:     parseTemplate("internal/templates/payments.html"),
	}
}

// Payments dispatches the shared /payments route: POST records a
// payment, anything else renders the page.
func (h *PaymentHandler) Payments(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		h.Create(w, r)
		return
	}
	h.List(w, r)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := h.sessions.Current(r)

	data := pageData("Payments", user, loggedIn)
	data["Students"] = h.students.List()
	data["Payments"] = newestFirst(h.payments.List())
	data["Error"] = r.URL.Query().Get("error")

	h.tmpl.Execute(w, data)
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/payments", http.StatusSeeOther)
		return
	}
	user, _ := h.sessions.Current(r)
	if !access.CanRecordPayment(user.Role) {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("amount")), 64)
	if err != nil {
		http.Redirect(w, r, "/payments?error=invalid+amount", http.StatusSeeOther)
		return
	}

	fields := entity.PaymentFields{
		StudentID: r.FormValue("studentId"),
		Amount:    amount,
		Method:    strings.TrimSpace(r.FormValue("method")),
	}

	if _, err := h.payments.Add(fields); err != nil {
		var validation *entity.ValidationError
		switch {
		case errors.Is(err, repository.ErrStudentNotFound):
			http.Redirect(w, r, "/payments?error=select+a+student", http.StatusSeeOther)
		case errors.As(err, &validation):
			http.Redirect(w, r, "/payments?error="+url.QueryEscape(validation.Error()), http.StatusSeeOther)
		default:
			slog.Error("record payment", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	http.Redirect(w, r, "/payments", http.StatusSeeOther)
}

func newestFirst(payments []entity.Payment) []entity.Payment {
	reversed := make([]entity.Payment, 0, len(payments))
	for i := len(payments) - 1; i >= 0; i-- {
		reversed = append(reversed, payments[i])
	}
	return reversed
}
