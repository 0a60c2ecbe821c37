package entity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	StudentID    string `json:"studentId,omitempty"`
}

// PasswordMatches compares a candidate password against the stored hash.
// bcrypt does the constant-time comparison.
func (u User) PasswordMatches(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// UserFields is the validated input for creating a user account.
// StudentID is only meaningful for the student role and links the
// account to its student record.
type UserFields struct {
	Name      string
	Email     string
	Password  string
	Role      Role
	StudentID string
}

func (f UserFields) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if !strings.Contains(f.Email, "@") {
		return &ValidationError{Field: "email", Message: "must be an email address"}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Message: "must not be empty"}
	}
	if !f.Role.Valid() {
		return &ValidationError{Field: "role", Message: "unknown role " + string(f.Role)}
	}
	return nil
}
