package repository

import (
	"time"

	"go.etcd.io/bbolt"

	"topology/internal/entity"
)

type PaymentRepository struct {
	docs *DocumentRepository
}

func NewPaymentRepository(db *bbolt.DB) *PaymentRepository {
	return &PaymentRepository{docs: NewDocumentRepository(db)}
}

// Add records a payment for an existing student, snapshotting the
// student's current full name into the record.
func (r *PaymentRepository) Add(fields entity.PaymentFields) (entity.Payment, error) {
	if err := fields.Validate(); err != nil {
		return entity.Payment{}, err
	}

	doc := r.docs.Load()
	var student *entity.Student
	for i := range doc.Students {
		if doc.Students[i].ID == fields.StudentID {
			student = &doc.Students[i]
			break
		}
	}
	if student == nil {
		return entity.Payment{}, ErrStudentNotFound
	}

	payment := entity.Payment{
		ID:          entity.NewID("p"),
		StudentID:   student.ID,
		StudentName: student.FullName,
		Amount:      fields.Amount,
		Method:      fields.Method,
		Date:        time.Now(),
	}
	doc.Payments = append(doc.Payments, payment)

	if err := r.docs.Save(doc); err != nil {
		return entity.Payment{}, err
	}
	return payment, nil
}

func (r *PaymentRepository) List() []entity.Payment {
	return r.docs.Load().Payments
}

func (r *PaymentRepository) ListByStudent(studentID string) []entity.Payment {
	payments := make([]entity.Payment, 0)
	for _, payment := range r.docs.Load().Payments {
		if payment.StudentID == studentID {
			payments = append(payments, payment)
		}
	}
	return payments
}

func (r *PaymentRepository) Total() float64 {
	var total float64
	for _, payment := range r.docs.Load().Payments {
		total += payment.Amount
	}
	return total
}

// MonthTotal is one bar of the dashboard chart.
type MonthTotal struct {
	Month time.Time
	Label string
	Total float64
}

// MonthlyTotals sums payments per calendar month for the trailing
// months up to now, oldest first. Months without payments stay at zero.
func (r *PaymentRepository) MonthlyTotals(now time.Time, months int) []MonthTotal {
	totals := make([]MonthTotal, 0, months)
	index := make(map[string]int, months)
	for i := months - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		index[month.Format("2006-01")] = len(totals)
		totals = append(totals, MonthTotal{Month: month, Label: month.Format("Jan")})
	}

	for _, payment := range r.docs.Load().Payments {
		key := payment.Date.In(now.Location()).Format("2006-01")
		if i, ok := index[key]; ok {
			totals[i].Total += payment.Amount
		}
	}
	return totals
}
