package repository

import (
	"strings"

	"go.etcd.io/bbolt"

	"topology/internal/entity"
)

type StudentRepository struct {
	docs *DocumentRepository
}

func NewStudentRepository(db *bbolt.DB) *StudentRepository {
	return &StudentRepository{docs: NewDocumentRepository(db)}
}

// Add validates the fields, assigns a fresh id and persists the new
// student.
func (r *StudentRepository) Add(fields entity.StudentFields) (entity.Student, error) {
	if err := fields.Validate(); err != nil {
		return entity.Student{}, err
	}

	doc := r.docs.Load()
	student := entity.Student{
		ID:       entity.NewID("s"),
		FullName: fields.FullName,
		Course:   fields.Course,
		Phone:    fields.Phone,
	}
	doc.Students = append(doc.Students, student)

	if err := r.docs.Save(doc); err != nil {
		return entity.Student{}, err
	}
	return student, nil
}

// Update mutates the student in place, keeping its id and any payment
// references intact.
func (r *StudentRepository) Update(id string, fields entity.StudentFields) error {
	if err := fields.Validate(); err != nil {
		return err
	}

	doc := r.docs.Load()
	for i := range doc.Students {
		if doc.Students[i].ID != id {
			continue
		}
		doc.Students[i].FullName = fields.FullName
		doc.Students[i].Course = fields.Course
		doc.Students[i].Phone = fields.Phone
		return r.docs.Save(doc)
	}
	return ErrNotFound
}

// Delete removes the student and cascades to every payment referencing
// it.
func (r *StudentRepository) Delete(id string) error {
	doc := r.docs.Load()

	students := make([]entity.Student, 0, len(doc.Students))
	found := false
	for _, student := range doc.Students {
		if student.ID == id {
			found = true
			continue
		}
		students = append(students, student)
	}
	if !found {
		return ErrNotFound
	}
	doc.Students = students

	payments := make([]entity.Payment, 0, len(doc.Payments))
	for _, payment := range doc.Payments {
		if payment.StudentID != id {
			payments = append(payments, payment)
		}
	}
	doc.Payments = payments

	return r.docs.Save(doc)
}

func (r *StudentRepository) Get(id string) (entity.Student, error) {
	for _, student := range r.docs.Load().Students {
		if student.ID == id {
			return student, nil
		}
	}
	return entity.Student{}, ErrNotFound
}

func (r *StudentRepository) List() []entity.Student {
	return r.docs.Load().Students
}

// Search filters students by full name or course, case-insensitively.
// An empty query returns everyone.
func (r *StudentRepository) Search(query string) []entity.Student {
	query = strings.ToLower(strings.TrimSpace(query))
	students := r.docs.Load().Students
	if query == "" {
		return students
	}

	matches := make([]entity.Student, 0, len(students))
	for _, student := range students {
		if strings.Contains(strings.ToLower(student.FullName), query) ||
			strings.Contains(strings.ToLower(student.Course), query) {
			matches = append(matches, student)
		}
	}
	return matches
}
