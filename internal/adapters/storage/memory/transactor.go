package memory

import (
	"context"
	"sync"

	"vet-clinic-records/internal/ports/tx"
)

type txKey struct{}

// Transactor serializa los scopes de escritura: un check-then-write a la vez.
// No hay rollback; los services dejan la única escritura al final del scope.
type Transactor struct {
	mu sync.Mutex
}

var _ tx.Transactor = (*Transactor)(nil)

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	// scope anidado: ya tenemos el lock
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	return fn(context.WithValue(ctx, txKey{}, true))
}
