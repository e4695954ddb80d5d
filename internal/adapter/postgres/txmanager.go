package postgres

import (
	"context"
	"fmt"
)

// TxManager runs callbacks inside a transaction carried by the context.
// Nested RunInTx calls open an independent transaction and are not supported.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a Read Committed transaction. It commits when fn
// returns nil, rolls back on error, and rolls back then re-panics on panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
