package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const suppliersTable = "fornecedores"

const suppliersTableDDL = `
	CREATE TABLE IF NOT EXISTS fornecedores (
		codigo        TEXT PRIMARY KEY,
		razao_social  TEXT,
		nome_fantasia TEXT,
		cnpj          TEXT
	)`

var suppliersColumns = []string{"codigo", "razao_social", "nome_fantasia", "cnpj"}

type SuppliersRepository interface {
	ReplaceAll(ctx context.Context, suppliers []domain.SupplierDimension) error
	AppendAll(ctx context.Context, suppliers []domain.SupplierDimension) error
	DeleteByKeys(ctx context.Context, keys []string) error
	ListAll(ctx context.Context) ([]domain.SupplierDimension, error)
	Exists(ctx context.Context) (bool, error)
}

type suppliersRepository struct {
	conn *postgres.Connection
}

func NewSuppliersRepository(conn *postgres.Connection) SuppliersRepository {
	return &suppliersRepository{conn: conn}
}

func (r *suppliersRepository) ReplaceAll(ctx context.Context, suppliers []domain.SupplierDimension) error {
	if len(suppliers) == 0 {
		return dropTable(ctx, r.conn, suppliersTable)
	}

	if _, err := r.conn.ExecContext(ctx, suppliersTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", suppliersTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, suppliersTable); err != nil {
			return err
		}
		return insertRows(ctx, tx, suppliersTable, suppliersColumns, suppliersValues(suppliers))
	})
}

func (r *suppliersRepository) AppendAll(ctx context.Context, suppliers []domain.SupplierDimension) error {
	if len(suppliers) == 0 {
		return nil
	}

	if _, err := r.conn.ExecContext(ctx, suppliersTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", suppliersTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertRows(ctx, tx, suppliersTable, suppliersColumns, suppliersValues(suppliers))
	})
}

func (r *suppliersRepository) DeleteByKeys(ctx context.Context, keys []string) error {
	return deleteByKeys(ctx, r.conn, suppliersTable, "codigo", keys)
}

func (r *suppliersRepository) ListAll(ctx context.Context) ([]domain.SupplierDimension, error) {
	query, _, err := squirrel.
		Select(suppliersColumns...).
		From(suppliersTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler a tabela '%s': %w", suppliersTable, err)
	}
	defer rows.Close()

	suppliers := make([]domain.SupplierDimension, 0)
	for rows.Next() {
		var supplier domain.SupplierDimension
		err := rows.Scan(
			&supplier.Codigo,
			&supplier.RazaoSocial,
			&supplier.NomeFantasia,
			&supplier.CNPJ,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear fornecedor: %w", err)
		}
		suppliers = append(suppliers, supplier)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return suppliers, nil
}

func (r *suppliersRepository) Exists(ctx context.Context) (bool, error) {
	return tableExists(ctx, r.conn, suppliersTable)
}

func suppliersValues(suppliers []domain.SupplierDimension) [][]any {
	values := make([][]any, 0, len(suppliers))
	for _, supplier := range suppliers {
		values = append(values, []any{
			supplier.Codigo,
			supplier.RazaoSocial,
			supplier.NomeFantasia,
			supplier.CNPJ,
		})
	}
	return values
}
