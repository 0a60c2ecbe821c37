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

type StudentHandler struct {
	sessions *session.Manager
	students *repository.StudentRepository
	tmpl     *template.Template
}

func NewStudentHandler(sessions *session.Manager, students *repository.StudentRepository) *StudentHandler {
	return &StudentHandler{
		sessions: sessions,
		students: students,
		tmpl:     parseTemplate("internal/templates/students.html"),
	}
}

func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	user, loggedIn := h.sessions.Current(r)
	query := r.URL.Query().Get("q")

	data := pageData("Students", user, loggedIn)
	data["Students"] = h.students.Search(query)
	data["Query"] = query
	data["Error"] = r.URL.Query().Get("error")

	// ?edit=<id> prefills the form for that student.
	if editID := r.URL.Query().Get("edit"); editID != "" {
		if student, err := h.students.Get(editID); err == nil {
			data["Editing"] = student
		}
	}

	h.tmpl.Execute(w, data)
}

// Save creates a student, or updates one when the form carries an id.
func (h *StudentHandler) Save(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/students", http.StatusSeeOther)
		return
	}
	user, _ := h.sessions.Current(r)
	if !access.CanManageStudents(user.Role) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	fields := entity.StudentFields{
		FullName: strings.TrimSpace(r.FormValue("fullName")),
		Course:   strings.TrimSpace(r.FormValue("course")),
		Phone:    strings.TrimSpace(r.FormValue("phone")),
	}

	id := r.FormValue("id")
	var err error
	if id == "" {
		_, err = h.students.Add(fields)
	} else {
		err = h.students.Update(id, fields)
	}

	if err != nil {
		redirectStudentsError(w, r, err)
		return
	}
	http.Redirect(w, r, "/students", http.StatusSeeOther)
}

func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/students", http.StatusSeeOther)
		return
	}
	user, _ := h.sessions.Current(r)
	if !access.CanManageStudents(user.Role) {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	if err := h.students.Delete(r.FormValue("id")); err != nil {
		redirectStudentsError(w, r, err)
		return
	}
	http.Redirect(w, r, "/students", http.StatusSeeOther)
}

func redirectStudentsError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *entity.ValidationError
	switch {
	case errors.As(err, &validation):
		http.Redirect(w, r, "/students?error="+url.QueryEscape(validation.Error()), http.StatusSeeOther)
	case errors.Is(err, repository.ErrNotFound):
		http.Redirect(w, r, "/students?error=student+not+found", http.StatusSeeOther)
	default:
		slog.Error("save student", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
