// Package customer holds a plain mutable record that uses ddd.Email.
// A Customer is an entity: it is identified by its ID, not by its attributes.
package customer

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-leo/valueobject/ddd"
)

var _ ddd.Entity[*Customer, uuid.UUID] = (*Customer)(nil)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     ddd.Email
	BirthDate time.Time
	Phone     string
}

// New returns a customer with a freshly generated random ID.
func New(name string, email ddd.Email, birthDate time.Time, phone string) *Customer {
	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		BirthDate: birthDate,
		Phone:     phone,
	}
}

func (c *Customer) SameIdentityAs(other *Customer) bool {
	if c == nil || other == nil {
		return false
	}
	return c.ID == other.ID
}

func (c *Customer) Identity() uuid.UUID {
	return c.ID
}

// ChangeEmail replaces the email with a new value built from raw.
// The customer is left untouched if raw is invalid.
func (c *Customer) ChangeEmail(raw string, opts ...ddd.EmailOption) error {
	email, err := ddd.NewEmail(raw, opts...)
	if err != nil {
		return err
	}
	c.Email = email
	return nil
}
