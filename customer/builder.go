package customer

import (
	"time"

	"github.com/go-leo/valueobject/builder"
	"github.com/go-leo/valueobject/ddd"
)

var _ builder.Builder[*Customer] = (*Builder)(nil)

// Builder collects the fields of a Customer; the email is validated by Build.
type Builder struct {
	name      string
	email     string
	birthDate time.Time
	phone     string
	opts      []ddd.EmailOption
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Email sets the raw address and the options it is validated with.
func (b *Builder) Email(raw string, opts ...ddd.EmailOption) *Builder {
	b.email = raw
	b.opts = opts
	return b
}

func (b *Builder) BirthDate(t time.Time) *Builder {
	b.birthDate = t
	return b
}

func (b *Builder) Phone(phone string) *Builder {
	b.phone = phone
	return b
}

// Build returns a new Customer, or the email's validation error.
func (b *Builder) Build() (*Customer, error) {
	email, err := ddd.NewEmail(b.email, b.opts...)
	if err != nil {
		return nil, err
	}
	return New(b.name, email, b.birthDate, b.phone), nil
}
