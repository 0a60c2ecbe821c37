package entity

import "strings"

type Student struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Course   string `json:"course"`
	Phone    string `json:"phone"`
}

// StudentFields is the validated input for creating or updating a
// student record.
type StudentFields struct {
	FullName string
	Course   string
	Phone    string
}

func (f StudentFields) Validate() error {
	if strings.TrimSpace(f.FullName) == "" {
		return &ValidationError{Field: "fullName", Message: "must not be empty"}
	}
	if strings.TrimSpace(f.Course) == "" {
		return &ValidationError{Field: "course", Message: "must not be empty"}
	}
	if strings.TrimSpace(f.Phone) == "" {
		return &ValidationError{Field: "phone", Message: "must not be empty"}
	}
	return nil
}
