package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const productsTable = "produtos"

const productsTableDDL = `
	CREATE TABLE IF NOT EXISTS produtos (
		codigo             TEXT PRIMARY KEY,
		nome               TEXT,
		nome_grupo         TEXT,
		nome_categoria     TEXT,
		preco_venda        DOUBLE PRECISION NOT NULL DEFAULT 0,
		quantidade_estoque DOUBLE PRECISION NOT NULL DEFAULT 0
	)`

var productsColumns = []string{
	"codigo",
	"nome",
	"nome_grupo",
	"nome_categoria",
	"preco_venda",
	"quantidade_estoque",
}

type ProductsRepository interface {
	ReplaceAll(ctx context.Context, products []domain.ProductDimension) error
	AppendAll(ctx context.Context, products []domain.ProductDimension) error
	DeleteByKeys(ctx context.Context, keys []string) error
	ListAll(ctx context.Context) ([]domain.ProductDimension, error)
	Exists(ctx context.Context) (bool, error)
}

type productsRepository struct {
	conn *postgres.Connection
}

func NewProductsRepository(conn *postgres.Connection) ProductsRepository {
	return &productsRepository{conn: conn}
}

func (r *productsRepository) ReplaceAll(ctx context.Context, products []domain.ProductDimension) error {
	if len(products) == 0 {
		return dropTable(ctx, r.conn, productsTable)
	}

	if _, err := r.conn.ExecContext(ctx, productsTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", productsTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, productsTable); err != nil {
			return err
		}
		return insertRows(ctx, tx, productsTable, productsColumns, productsValues(products))
	})
}

func (r *productsRepository) AppendAll(ctx context.Context, products []domain.ProductDimension) error {
	if len(products) == 0 {
		return nil
	}

	if _, err := r.conn.ExecContext(ctx, productsTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", productsTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertRows(ctx, tx, productsTable, productsColumns, productsValues(products))
	})
}

func (r *productsRepository) DeleteByKeys(ctx context.Context, keys []string) error {
	return deleteByKeys(ctx, r.conn, productsTable, "codigo", keys)
}

func (r *productsRepository) ListAll(ctx context.Context) ([]domain.ProductDimension, error) {
	query, _, err := squirrel.
		Select(productsColumns...).
		From(productsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler a tabela '%s': %w", productsTable, err)
	}
	defer rows.Close()

	products := make([]domain.ProductDimension, 0)
	for rows.Next() {
		var product domain.ProductDimension

		err := rows.Scan(
			&product.Codigo,
			&product.Nome,
			&product.NomeGrupo,
			&product.NomeCategoria,
			&product.PrecoVenda,
			&product.QuantidadeEstoque,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productsRepository) Exists(ctx context.Context) (bool, error) {
	return tableExists(ctx, r.conn, productsTable)
}

func productsValues(products []domain.ProductDimension) [][]any {
	values := make([][]any, 0, len(products))
	for _, product := range products {
		values = append(values, []any{
			product.Codigo,
			product.Nome,
			product.NomeGrupo,
			product.NomeCategoria,
			product.PrecoVenda,
			product.QuantidadeEstoque,
		})
	}
	return values
}
