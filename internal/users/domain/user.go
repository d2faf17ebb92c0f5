package domain

import (
	"errors"
	"strings"
)

var (
	ErrEmptyName     = errors.New("name is required")
	ErrEmptyEmail    = errors.New("email is required")
	ErrInvalidEmail  = errors.New("email must contain '@'")
	ErrEmptyPassword = errors.New("password is required")
)

// User represents a record in the users table. Phone and Picture are
// nullable columns, hence pointers.
type User struct {
	ID       int64
	Name     string
	Email    string
	Phone    *string
	Password string
	Picture  *string
	IsActive bool
}

// NewUser builds a user ensuring required invariants. The id is assigned
// by the storage layer on insert and stays zero until then.
func NewUser(name, email, password string) (*User, error) {
	user := &User{IsActive: true}
	if err := user.SetName(name); err != nil {
		return nil, err
	}
	if err := user.SetEmail(email); err != nil {
		return nil, err
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	return user, nil
}

// SetName trims and validates the display name.
func (u *User) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	u.Name = name
	return nil
}

// SetEmail trims and validates the email address. Uniqueness is not
// enforced at this layer.
func (u *User) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	u.Email = email
	return nil
}

// SetPassword validates the password is present.
func (u *User) SetPassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	u.Password = password
	return nil
}

// SetPhone stores an optional phone number; empty input clears it.
func (u *User) SetPhone(phone *string) {
	u.Phone = normalizeOptional(phone)
}

// SetPicture stores an optional picture URL; empty input clears it.
func (u *User) SetPicture(picture *string) {
	u.Picture = normalizeOptional(picture)
}

// Validate re-applies core invariants for persistence.
func (u *User) Validate() error {
	if err := u.SetName(u.Name); err != nil {
		return err
	}
	if err := u.SetEmail(u.Email); err != nil {
		return err
	}
	return u.SetPassword(u.Password)
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
