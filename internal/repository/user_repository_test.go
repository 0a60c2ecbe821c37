package repository

import (
	"errors"
	"testing"

	"topology/internal/entity"
)

func TestUserAdd(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	added, err := users.Add(entity.UserFields{Name: "Sara", Email: "sara@topology.edu", Password: "secret", Role: entity.RoleTeacher})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.PasswordHash == "secret" {
		t.Fatal("password stored in plaintext")
	}
	if !added.PasswordMatches("secret") {
		t.Fatal("stored hash does not match the password")
	}

	loaded, err := users.Get(added.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if loaded.Email != "sara@topology.edu" || loaded.Role != entity.RoleTeacher {
		t.Fatalf("loaded = %+v", loaded)
	}
}

func TestUserAddDuplicateEmail(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	before := len(users.List())
	// The seed already registers admin@topology.edu.
	_, err := users.Add(entity.UserFields{Name: "Imposter", Email: "admin@topology.edu", Password: "pw", Role: entity.RoleTeacher})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(users.List()) != before {
		t.Fatal("rejected add must not change the collection")
	}
}

func TestUserDeleteAdminRejected(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	before := len(users.List())
	if err := users.Delete("u_admin"); !errors.Is(err, ErrAdminAccount) {
		t.Fatalf("expected ErrAdminAccount, got %v", err)
	}
	if len(users.List()) != before {
		t.Fatal("admin delete must not change the collection")
	}
}

func TestUserDelete(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	if err := users.Delete("u_teacher"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := users.Get("u_teacher"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted user still present: %v", err)
	}

	if err := users.Delete("u_missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserAuthenticate(t *testing.T) {
	users := NewUserRepository(newTestDB(t))

	user, err := users.Authenticate("admin@topology.edu", "admin")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Role != entity.RoleAdmin {
		t.Fatalf("role = %s, want admin", user.Role)
	}

	if _, err := users.Authenticate("admin@topology.edu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := users.Authenticate("nobody@topology.edu", "admin"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
	// Email matching is exact and case-sensitive.
	if _, err := users.Authenticate("ADMIN@topology.edu", "admin"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("case-shifted email: expected ErrInvalidCredentials, got %v", err)
	}
}
