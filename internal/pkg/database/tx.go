package database

import "context"

// TxManager runs fn atomically. Multi-row operations (leave
// application, payroll generation) run inside one transaction so a
// partial failure leaves no partial state. The Postgres implementation
// carries the open transaction through the context; repositories pick
// it up instead of the pool. The in-memory implementation used by
// service tests simply serializes callers.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
