package entity

import "time"

// Document is the whole persisted state: every load and save moves it
// as one unit.
type Document struct {
	Users    []User    `json:"users"`
	Students []Student `json:"students"`
	Payments []Payment `json:"payments"`
}

// DefaultDocument is the seed state used when nothing has been
// persisted yet: one account per role, one student linked to the
// student account, and one payment for that student.
func DefaultDocument(now time.Time) Document {
	adminHash, _ := HashPassword("admin")
	teacherHash, _ := HashPassword("teacher")
	studentHash, _ := HashPassword("student")

	return Document{
		Users: []User{
			{ID: "u_admin", Name: "Admin", Email: "admin@topology.edu", PasswordHash: adminHash, Role: RoleAdmin},
			{ID: "u_teacher", Name: "Teacher", Email: "teacher@topology.edu", PasswordHash: teacherHash, Role: RoleTeacher},
			{ID: "u_student", Name: "Student", Email: "student@topology.edu", PasswordHash: studentHash, Role: RoleStudent, StudentID: "s_default"},
		},
		Students: []Student{
			{ID: "s_default", FullName: "Default Student", Course: "Intro to IT", Phone: "0911000000"},
		},
		Payments: []Payment{
			{ID: "p_default", StudentID: "s_default", StudentName: "Default Student", Amount: 1500, Method: "cash", Date: now},
		},
	}
}
