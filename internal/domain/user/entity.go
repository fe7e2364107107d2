package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Email is unique across the platform; uniqueness itself is
// enforced by the store, the domain only validates shape.
type User struct {
	id        uuid.UUID
	name      Name
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name Name, email Email) *User {
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}
}

func ReconstructUser(id uuid.UUID, name Name, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() Name           { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// Identity implements identity.Identifiable.
func (u *User) Identity() uuid.UUID { return u.id }
