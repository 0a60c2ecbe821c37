package repository

import (
	"go.etcd.io/bbolt"

	"topology/internal/entity"
)

type UserRepository struct {
	docs *DocumentRepository
}

func NewUserRepository(db *bbolt.DB) *UserRepository {
	return &UserRepository{docs: NewDocumentRepository(db)}
}

// Add validates the fields, rejects duplicate emails and persists the
// new account with its password hashed.
func (r *UserRepository) Add(fields entity.UserFields) (entity.User, error) {
	if err := fields.Validate(); err != nil {
		return entity.User{}, err
	}

	doc := r.docs.Load()
	for _, user := range doc.Users {
		if user.Email == fields.Email {
			return entity.User{}, ErrDuplicateEmail
		}
	}

	hash, err := entity.HashPassword(fields.Password)
	if err != nil {
		return entity.User{}, err
	}

	user := entity.User{
		ID:           entity.NewID("u"),
		Name:         fields.Name,
		Email:        fields.Email,
		PasswordHash: hash,
		Role:         fields.Role,
		StudentID:    fields.StudentID,
	}
	doc.Users = append(doc.Users, user)

	if err := r.docs.Save(doc); err != nil {
		return entity.User{}, err
	}
	return user, nil
}

// Delete removes an account. Admin accounts are never removable.
func (r *UserRepository) Delete(id string) error {
	doc := r.docs.Load()
	for i, user := range doc.Users {
		if user.ID != id {
			continue
		}
		if user.Role == entity.RoleAdmin {
			return ErrAdminAccount
		}
		doc.Users = append(doc.Users[:i], doc.Users[i+1:]...)
		return r.docs.Save(doc)
	}
	return ErrNotFound
}

// Authenticate looks up the account by exact email match and compares
// the password against the stored hash.
func (r *UserRepository) Authenticate(email, password string) (entity.User, error) {
	for _, user := range r.docs.Load().Users {
		if user.Email == email && user.PasswordMatches(password) {
			return user, nil
		}
	}
	return entity.User{}, ErrInvalidCredentials
}

func (r *UserRepository) Get(id string) (entity.User, error) {
	for _, user := range r.docs.Load().Users {
		if user.ID == id {
			return user, nil
		}
	}
	return entity.User{}, ErrNotFound
}

func (r *UserRepository) List() []entity.User {
	return r.docs.Load().Users
}
