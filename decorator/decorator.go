package decorator

// Decorator wraps an object, adding behaviour before or after the calls it forwards.
type Decorator[T any] interface {
	// Decorate wraps the underlying obj.
	Decorate(obj T) T
}

// The Func type is an adapter to allow the use of ordinary functions as Decorator.
type Func[T any] func(obj T) T

// Decorate call f(obj).
func (f Func[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates obj so that decorators[0] is the outermost layer.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		obj = decorators[i].Decorate(obj)
	}
	return obj
}
