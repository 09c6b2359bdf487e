package options

// Option configures a value of type T. Options are applied in order and the
// first failing option stops the chain.
type Option[T any] interface {
	apply(T) error
}

// Func adapts a plain function to the Option interface.
type Func[T any] struct {
	fn func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.fn(target)
}

// New wraps fn, which may reject the value it is given, as an Option.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{fn: fn}
}

// NoError wraps fn as an Option that always succeeds.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		fn: func(target T) error {
			fn(target)
			return nil
		},
	}
}

// Apply applies opts to target in order.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// Build starts from defaults, applies opts and finally runs validate on the result.
// validate may be nil.
func Build[T any](defaults T, validate func(T) error, opts ...Option[T]) (T, error) {
	if err := Apply(defaults, opts...); err != nil {
		var zero T
		return zero, err
	}
	if validate != nil {
		if err := validate(defaults); err != nil {
			var zero T
			return zero, err
		}
	}

	return defaults, nil
}
