package handler

import (
	"html/template"
	"net/http"

	"topology/internal/entity"
	"topology/internal/repository"
	"topology/internal/session"
)

// ProfileHandler shows a student their own record and payments,
// read-only.
type ProfileHandler struct {
	sessions *session.Manager
	students *repository.StudentRepository
	payments *repository.PaymentRepository
	tmpl     *template.Template
}

func NewProfileHandler(sessions *session.Manager, students *repository.StudentRepository, payments *repository.PaymentRepository) *ProfileHandler {
	return &ProfileHandler{
		sessions: sessions,
		students: students,
		payments: payments,
		tmpl:     parseTemplate("internal/templates/profile.html"),
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := h.sessions.Current(r)

	data := pageData("Profile", user, loggedIn)

	if user.Role != entity.RoleStudent {
		data["Message"] = "Profile is available for students only"
		h.tmpl.Execute(w, data)
		return
	}

	student, err := h.students.Get(user.StudentID)
	if err != nil {
		data["Message"] = "No student profile found"
		h.tmpl.Execute(w, data)
		return
	}

	data["Student"] = student
	data["Payments"] = newestFirst(h.payments.ListByStudent(student.ID))
	h.tmpl.Execute(w, data)
}
