package tr

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/smartshop-tech/go-backend/pkg/e"
)

type txCtxKey struct{}

// CtxWithTx кладёт транзакцию в контекст для передачи репозиториям
func CtxWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txCtxKey{}, tx)
}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}
