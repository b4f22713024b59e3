package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("user name is required")
	ErrInvalidEmail = errors.New("invalid email address")
)

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	at := strings.Index(trimmed, "@")
	if at <= 0 || at == len(trimmed)-1 {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// User entity. Exists so the directory the booking engine consults is real;
// no credentials are held here, identity arrives from the gateway.
type User struct {
	id        uuid.UUID
	name      string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name string, email Email) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &User{
		id:    uuid.New(),
		name:  name,
		email: email,
	}, nil
}

func ReconstructUser(id uuid.UUID, name string, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ApplyPatch(name, email *string) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		u.name = trimmed
	}
	if email != nil {
		parsed, err := NewEmail(*email)
		if err != nil {
			return err
		}
		u.email = parsed
	}
	return nil
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
