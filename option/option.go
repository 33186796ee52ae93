package option

// Option holds a value that may be absent. An absent value is distinct from a
// present zero value.
type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

// FromMatch returns Some(value) when matched is set and None otherwise.
func FromMatch[T any](value T, matched bool) Option[T] {
	if !matched {
		return None[T]()
	}
	return Some(value)
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}
