package ddd

import "github.com/go-leo/valueobject/factory"

// EmailMaxLength is the longest address NewEmail accepts, in characters.
const EmailMaxLength = 50

// Email is a validated email address. The zero value is not a valid address;
// use NewEmail.
type Email struct {
	value string
}

type emailOption struct {
	Rules []Rule
}

func newEmailOption(opts ...EmailOption) *emailOption {
	o := &emailOption{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// EmailOption configures NewEmail.
type EmailOption func(*emailOption)

// WithFormat adds a format rule checked after the built-in ones.
// No format is enforced unless one is given, see SyntaxRule.
func WithFormat(rules ...Rule) EmailOption {
	return func(o *emailOption) {
		o.Rules = append(o.Rules, rules...)
	}
}

// NewEmail validates raw and returns it as an Email.
// The error matches ErrInvalidArgument.
func NewEmail(raw string, opts ...EmailOption) (Email, error) {
	o := newEmailOption(opts...)
	rules := append([]Rule{NotBlank(), MaxLength(EmailMaxLength)}, o.Rules...)
	if err := check("email", raw, rules...); err != nil {
		return Email{}, err
	}
	return Email{value: raw}, nil
}

// EmailFactory returns a factory building emails with the given options.
func EmailFactory(opts ...EmailOption) factory.Factory[Email, string] {
	return factory.Func[Email, string](func(raw string) (Email, error) {
		return NewEmail(raw, opts...)
	})
}

// MustEmail is like NewEmail but panics if raw is invalid.
func MustEmail(raw string, opts ...EmailOption) Email {
	e, err := NewEmail(raw, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Value return the address.
func (e Email) Value() string {
	return e.value
}

// String return the address.
func (e Email) String() string {
	return e.value
}

// AtomicValues return the address as the only atomic value.
func (e Email) AtomicValues() []any {
	return []any{e.value}
}

// Equals return true if other is an Email holding the same address.
func (e Email) Equals(other ValueObject) bool {
	return Equal(e, other)
}

// Hash return the hash of the address, see Hash.
func (e Email) Hash() uint64 {
	return Hash(e)
}
