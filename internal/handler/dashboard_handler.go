package handler

import (
	"html/template"
	"net/http"
	"time"

	"topology/internal/entity"
	"topology/internal/repository"
	"topology/internal/session"
)

const chartMonths = 6

type DashboardHandler struct {
	sessions *session.Manager
	students *repository.StudentRepository
	users    *repository.UserRepository
	payments *repository.PaymentRepository
	tmpl     *template.Template
}

func NewDashboardHandler(sessions *session.Manager, students *repository.StudentRepository, users *repository.UserRepository, payments *repository.PaymentRepository) *DashboardHandler {
	return &DashboardHandler{
		sessions: sessions,
		students: students,
		users:    users,
		payments: payments,
		tmpl:     parseTemplate("internal/templates/dashboard.html"),
	}
}

type chartBar struct {
	Label  string
	Total  float64
	Height int
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := h.sessions.Current(r)

	students := h.students.List()

	data := pageData("Dashboard", user, loggedIn)
	data["StudentCount"] = len(students)
	data["UserCount"] = len(h.users.List())
	data["PaymentsTotal"] = h.payments.Total()
	data["RecentStudents"] = recentStudents(students, 5)
	data["Chart"] = chartBars(h.payments.MonthlyTotals(time.Now(), chartMonths))

	h.tmpl.Execute(w, data)
}

// recentStudents returns the latest n students, newest first.
func recentStudents(students []entity.Student, n int) []entity.Student {
	recent := make([]entity.Student, 0, n)
	for i := len(students) - 1; i >= 0 && len(recent) < n; i-- {
		recent = append(recent, students[i])
	}
	return recent
}

func chartBars(totals []repository.MonthTotal) []chartBar {
	max := 1.0
	for _, t := range totals {
		if t.Total > max {
			max = t.Total
		}
	}

	bars := make([]chartBar, 0, len(totals))
	for _, t := range totals {
		bars = append(bars, chartBar{
			Label:  t.Label,
			Total:  t.Total,
			Height: int(t.Total / max * 100),
		})
	}
	return bars
}
