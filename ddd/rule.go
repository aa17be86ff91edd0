package ddd

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Rule is a specification over a raw string plus the message reported when it is not satisfied.
type Rule struct {
	Specification[string]
	Reason string
}

// NewRule wraps spec with the reason reported on failure.
func NewRule(spec Specification[string], reason string) Rule {
	return Rule{Specification: spec, Reason: reason}
}

// NotBlank rejects empty and whitespace-only input.
func NotBlank() Rule {
	return NewRule(
		NewSpecification(func(s string) bool { return strings.TrimSpace(s) != "" }),
		"must not be empty or whitespace",
	)
}

// MaxLength rejects input longer than n characters.
func MaxLength(n int) Rule {
	return NewRule(
		NewSpecification(func(s string) bool { return utf8.RuneCountInString(s) <= n }),
		"must be at most "+strconv.Itoa(n)+" characters long",
	)
}

var validate = validator.New()

// SyntaxRule checks the address syntax with validator's "email" tag.
func SyntaxRule() Rule {
	return NewRule(
		NewSpecification(func(s string) bool { return validate.Var(s, "email") == nil }),
		"must be a valid email",
	)
}

// check returns an *ArgumentError for the first rule raw does not satisfy.
func check(name, raw string, rules ...Rule) error {
	for _, rule := range rules {
		if !rule.IsSatisfiedBy(raw) {
			return &ArgumentError{Name: name, Value: raw, Reason: rule.Reason}
		}
	}
	return nil
}
