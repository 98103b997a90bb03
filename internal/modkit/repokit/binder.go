package repokit

import perr "chargemap/internal/platform/errors"

// Binder builds a repo over a Queryer, so one repo type serves both the pool and a tx
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a function to Binder
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }

// Bind binds b to q, or reports the named repo as unavailable when q is nil
func Bind[T any](name string, b Binder[T], q Queryer) (T, error) {
	if q == nil {
		var zero T
		return zero, perr.Newf(perr.ErrorCodeUnavailable, "%s: no postgres handle", name)
	}
	return b.Bind(q), nil
}
