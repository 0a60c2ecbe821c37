package repository

import "errors"

var (
	// ErrNotFound indicates an update or delete of a missing record.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail rejects a new account whose email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrStudentNotFound rejects a payment for an unknown student.
	ErrStudentNotFound = errors.New("student not found")

	// ErrInvalidCredentials rejects a login attempt.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAdminAccount rejects removal of an admin account.
	ErrAdminAccount = errors.New("admin accounts cannot be removed")
)
