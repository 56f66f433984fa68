package kaonavi

import "errors"

// Result is the two-branch outcome every directory operation returns:
// a success carrying data, or a failure carrying the error. There is
// no partial-success branch.
type Result[T any] struct {
	data T
	err  error
}

func OK[T any](data T) Result[T] { return Result[T]{data: data} }

func Fail[T any](err error) Result[T] { return Result[T]{err: err} }

func (r Result[T]) IsSuccess() bool { return r.err == nil }

func (r Result[T]) Data() T { return r.data }

func (r Result[T]) Err() error { return r.err }

// ErrorMessages extracts the user-visible error list. An upstream
// error payload is passed through verbatim; anything else becomes a
// single-element list.
func (r Result[T]) ErrorMessages() []string {
	if r.err == nil {
		return nil
	}
	var upstream *UpstreamError
	if errors.As(r.err, &upstream) && len(upstream.Errors) > 0 {
		return upstream.Errors
	}
	return []string{r.err.Error()}
}
