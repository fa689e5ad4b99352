package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const sellersTable = "vendedores"

const sellersTableDDL = `
	CREATE TABLE IF NOT EXISTS vendedores (
		codigo TEXT PRIMARY KEY,
		nome   TEXT,
		ativo  BOOLEAN NOT NULL DEFAULT TRUE
	)`

var sellersColumns = []string{"codigo", "nome", "ativo"}

// SellersRepository não tem escrita incremental: a lista de vendedores
// é leve e sempre substituída por inteiro.
type SellersRepository interface {
	ReplaceAll(ctx context.Context, sellers []domain.SellerDimension) error
	ListAll(ctx context.Context) ([]domain.SellerDimension, error)
	Exists(ctx context.Context) (bool, error)
}

type sellersRepository struct {
	conn *postgres.Connection
}

func NewSellersRepository(conn *postgres.Connection) SellersRepository {
	return &sellersRepository{conn: conn}
}

func (r *sellersRepository) ReplaceAll(ctx context.Context, sellers []domain.SellerDimension) error {
	if len(sellers) == 0 {
		return dropTable(ctx, r.conn, sellersTable)
	}

	if _, err := r.conn.ExecContext(ctx, sellersTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", sellersTable, err)
	}

	values := make([][]any, 0, len(sellers))
	for _, seller := range sellers {
		values = append(values, []any{seller.Codigo, seller.Nome, seller.Ativo})
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, sellersTable); err != nil {
			return err
		}
		return insertRows(ctx, tx, sellersTable, sellersColumns, values)
	})
}

func (r *sellersRepository) ListAll(ctx context.Context) ([]domain.SellerDimension, error) {
	query, _, err := squirrel.
		Select(sellersColumns...).
		From(sellersTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler a tabela '%s': %w", sellersTable, err)
	}
	defer rows.Close()

	sellers := make([]domain.SellerDimension, 0)
	for rows.Next() {
		var seller domain.SellerDimension
		if err := rows.Scan(&seller.Codigo, &seller.Nome, &seller.Ativo); err != nil {
			return nil, fmt.Errorf("erro ao escanear vendedor: %w", err)
		}
		sellers = append(sellers, seller)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sellers, nil
}

func (r *sellersRepository) Exists(ctx context.Context) (bool, error) {
	return tableExists(ctx, r.conn, sellersTable)
}
