package pgdb

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier — минимальный интерфейс чтения, которому удовлетворяют
// *pgxpool.Pool и pgxmock в тестах.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
