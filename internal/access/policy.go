// Package access maps roles to the sections they may see and the
// mutations they may perform. Pure lookups, no state.
package access

import "topology/internal/entity"

type Section string

const (
	SectionLogin     Section = "login"
	SectionDashboard Section = "dashboard"
	SectionStudents  Section = "students"
	SectionPayments  Section = "payments"
	SectionAccounts  Section = "accounts"
	SectionProfile   Section = "profile"
)

// Sections lists the sections navigable by a role, in nav order. The
// empty role is a logged-out visitor, who only sees the login page; an
// unrecognized role sees nothing.
func Sections(role entity.Role) []Section {
	switch role {
	case entity.RoleAdmin:
		return []Section{SectionDashboard, SectionStudents, SectionPayments, SectionAccounts}
	case entity.RoleTeacher:
		return []Section{SectionDashboard, SectionStudents, SectionPayments}
	case entity.RoleStudent:
		return []Section{SectionDashboard, SectionPayments, SectionProfile}
	case "":
		return []Section{SectionLogin}
	default:
		return nil
	}
}

func Visible(role entity.Role, section Section) bool {
	for _, s := range Sections(role) {
		if s == section {
			return true
		}
	}
	return false
}

// CanManageStudents reports whether the role may create, edit or delete
// student records.
func CanManageStudents(role entity.Role) bool {
	return role == entity.RoleAdmin || role == entity.RoleTeacher
}

// CanManageAccounts reports whether the role may create or remove user
// accounts. Admin accounts themselves are never removable.
func CanManageAccounts(role entity.Role) bool {
	return role == entity.RoleAdmin
}

// CanRecordPayment reports whether the role may record a payment for an
// existing student.
func CanRecordPayment(role entity.Role) bool {
	return role.Valid()
}
