package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstração mínima de execução de consultas, satisfeita por
// *pgxpool.Pool, *pgxpool.Conn e pgx.Tx. Os repositórios recebem Querier
// para poderem rodar tanto sobre o pool quanto sobre uma conexão dedicada.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
