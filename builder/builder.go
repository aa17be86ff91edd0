package builder

// Builder assembles a T step by step; Build reports the first invalid step.
type Builder[T any] interface {
	Build() (T, error)
}
