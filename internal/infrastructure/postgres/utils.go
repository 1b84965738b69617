package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier abstrai pool e transação (ambos satisfazem esta interface).
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// isUniqueViolation verifica se um erro é violação de constraint única (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// toColumn converte o nome de campo do schema (camelCase) para o nome da
// coluna (snake_case): tradeName -> trade_name, dueDate -> due_date.
func toColumn(field string) string {
	var b strings.Builder
	for _, r := range field {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// searchFilter monta a cláusula de busca por substring case-insensitive
// combinada com OR sobre os campos de busca declarados no schema. O padrão
// ILIKE é sempre o parâmetro $1.
func searchFilter(fields []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = toColumn(f) + " ILIKE $1"
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// likePattern envolve o termo de busca em wildcards de substring.
func likePattern(search string) string {
	return "%" + search + "%"
}
