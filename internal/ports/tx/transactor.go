package tx

import "context"

// Transactor ejecuta fn como una unidad atómica contra la persistencia.
// El ctx que recibe fn es el que deben usar los repos dentro del scope.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// TransactorFunc adapta una función a Transactor.
type TransactorFunc func(ctx context.Context, fn func(ctx context.Context) error) error

func (f TransactorFunc) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return f(ctx, fn)
}

// None corre fn sin transacción. Útil en tests.
var None Transactor = TransactorFunc(func(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
})
