package handler

import (
	"html/template"
	"path/filepath"
	"strconv"
	"time"

	"topology/internal/access"
	"topology/internal/entity"
)

var templateFuncs = template.FuncMap{
	"currency": func(amount float64) string {
		return "ETB " + strconv.FormatFloat(amount, 'f', -1, 64)
	},
	"datetime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04")
	},
	"date": func(t time.Time) string {
		return t.Format("2006-01-02")
	},
}

func parseTemplate(file string) *template.Template {
	return template.Must(template.New(filepath.Base(file)).Funcs(templateFuncs).ParseFiles(file))
}

// pageData carries the fields every page template expects: the title,
// the current user and the nav sections their role may see.
func pageData(title string, user entity.User, loggedIn bool) map[string]interface{} {
	role := entity.Role("")
	if loggedIn {
		role = user.Role
	}
	return map[string]interface{}{
		"Title":    title,
		"User":     user,
		"LoggedIn": loggedIn,
		"Sections": access.Sections(role),
	}
}
