package factory

// Factory creates a T from a raw parameter and rejects parameters it cannot build from.
type Factory[T any, P any] interface {
	Create(param P) (T, error)
}

// The Func type is an adapter to allow the use of ordinary functions as Factory.
type Func[T any, P any] func(param P) (T, error)

// Create call f(param).
func (f Func[T, P]) Create(param P) (T, error) {
	return f(param)
}
