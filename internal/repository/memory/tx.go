package memory

import (
	"context"
	"sync"
)

// TxManager serializes multi-step operations. Map stores have no
// rollback, so atomicity in tests comes from mutual exclusion.
type TxManager struct {
	mu sync.Mutex
}

func NewTxManager() *TxManager {
	return &TxManager{}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
