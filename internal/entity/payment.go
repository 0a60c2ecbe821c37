package entity

import (
	"strings"
	"time"
)

// Payment records one payment by a student. StudentName is a snapshot
// of the student's full name at the time the payment was recorded.
type Payment struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Date        time.Time `json:"date"`
}

type PaymentFields struct {
	StudentID string
	Amount    float64
	Method    string
}

func (f PaymentFields) Validate() error {
	if strings.TrimSpace(f.StudentID) == "" {
		return &ValidationError{Field: "studentId", Message: "must not be empty"}
	}
	if f.Amount < 0 {
		return &ValidationError{Field: "amount", Message: "must not be negative"}
	}
	if strings.TrimSpace(f.Method) == "" {
		return &ValidationError{Field: "method", Message: "must not be empty"}
	}
	return nil
}
