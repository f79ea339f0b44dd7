package query

// Option holds a request parameter that may be absent.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether the value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Match calls some or none depending on presence. Both branches are required.
func Match[T, R any](o Option[T], some func(T) R, none func() R) R {
	if o.ok {
		return some(o.value)
	}
	return none()
}

// NonEmpty turns an empty string into None.
func NonEmpty(s string) Option[string] {
	if s == "" {
		return None[string]()
	}
	return Some(s)
}
