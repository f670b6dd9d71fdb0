package usecase

// Result holds the outcome of a call whose failure is tolerated
type Result[T any] struct {
	Value T
	Err   error
}

// Attempt runs fn and captures its outcome
func Attempt[T any](fn func() (T, error)) Result[T] {
	value, err := fn()
	return Result[T]{Value: value, Err: err}
}

// Ok reports whether the call succeeded
func (r Result[T]) Ok() bool {
	return r.Err == nil
}

// Or returns the value, or fallback when the call failed
func (r Result[T]) Or(fallback T) T {
	if r.Err != nil {
		return fallback
	}
	return r.Value
}
