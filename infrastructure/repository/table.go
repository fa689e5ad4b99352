package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
)

// As tabelas brutas são criadas na primeira escrita e removidas quando
// uma substituição recebe zero linhas. "Tabela inexistente" significa
// portanto "nunca populada", e todo leitor a interpreta como vazia.

const undefinedTableCode = "42P01"

// Lotes de inserção limitados para não estourar o máximo de
// parâmetros do driver.
const insertChunkSize = 500

func isUndefinedTable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == undefinedTableCode
	}
	return false
}

func tableExists(ctx context.Context, conn *postgres.Connection, table string) (bool, error) {
	var regclass sql.NullString
	err := conn.QueryRowContext(ctx, "SELECT to_regclass($1)", table).Scan(&regclass)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar existência da tabela '%s': %w", table, err)
	}
	return regclass.Valid, nil
}

func dropTable(ctx context.Context, conn *postgres.Connection, table string) error {
	if _, err := conn.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
		return fmt.Errorf("erro ao remover a tabela '%s': %w", table, err)
	}
	return nil
}

func deleteAll(ctx context.Context, q postgres.Queryer, table string) error {
	query, args, err := squirrel.Delete(table).PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao limpar a tabela '%s': %w", table, err)
	}
	return nil
}

func insertRows(ctx context.Context, q postgres.Queryer, table string, columns []string, rows [][]any) error {
	for start := 0; start < len(rows); start += insertChunkSize {
		end := start + insertChunkSize
		if end > len(rows) {
			end = len(rows)
		}

		builder := squirrel.
			Insert(table).
			Columns(columns...).
			PlaceholderFormat(squirrel.Dollar)
		for _, row := range rows[start:end] {
			builder = builder.Values(row...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir na tabela '%s': %w", table, err)
		}
	}
	return nil
}

func deleteByKeys(ctx context.Context, conn *postgres.Connection, table, keyColumn string, keys []string) error {
	if len(keys) == 0 {
		return nil
	}

	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{keyColumn: keys}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := conn.ExecContext(ctx, query, args...); err != nil {
		if isUndefinedTable(err) {
			return nil
		}
		return fmt.Errorf("erro ao remover chaves da tabela '%s': %w", table, err)
	}
	return nil
}
