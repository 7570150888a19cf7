package domain

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingFields is shown verbatim on the login form.
var ErrMissingFields = errors.New("please fill in all fields")

type Credentials struct {
	Email    string
	Password string
}

func (c Credentials) Validate() error {
	if strings.TrimSpace(c.Email) == "" || c.Password == "" {
		return ErrMissingFields
	}
	return nil
}

// Account is the signed-in identity. There is no password check behind it.
type Account struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	SignedInAt time.Time `json:"signed_in_at"`
}

// DisplayName falls back to the local part of the email.
func (a Account) DisplayName() string {
	if strings.TrimSpace(a.Name) != "" {
		return a.Name
	}
	local, _, _ := strings.Cut(a.Email, "@")
	return local
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
