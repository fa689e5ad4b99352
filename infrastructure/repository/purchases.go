package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const purchasesTable = "compras"

const purchasesTableDDL = `
	CREATE TABLE IF NOT EXISTS compras (
		numero_nota_fiscal TEXT PRIMARY KEY,
		data_entrada       TEXT,
		codigo_fornecedor  TEXT,
		valor_total        DOUBLE PRECISION NOT NULL DEFAULT 0,
		itens              TEXT
	)`

var purchasesColumns = []string{
	"numero_nota_fiscal",
	"data_entrada",
	"codigo_fornecedor",
	"valor_total",
	"itens",
}

type PurchasesRepository interface {
	ReplaceAll(ctx context.Context, records []domain.PurchaseRecord) error
	AppendAll(ctx context.Context, records []domain.PurchaseRecord) error
	DeleteByKeys(ctx context.Context, keys []string) error
	ListAll(ctx context.Context) ([]domain.PurchaseRecord, error)
	Exists(ctx context.Context) (bool, error)
}

type purchasesRepository struct {
	conn *postgres.Connection
}

func NewPurchasesRepository(conn *postgres.Connection) PurchasesRepository {
	return &purchasesRepository{conn: conn}
}

func (r *purchasesRepository) ReplaceAll(ctx context.Context, records []domain.PurchaseRecord) error {
	if len(records) == 0 {
		return dropTable(ctx, r.conn, purchasesTable)
	}

	if _, err := r.conn.ExecContext(ctx, purchasesTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", purchasesTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, purchasesTable); err != nil {
			return err
		}
		return insertRows(ctx, tx, purchasesTable, purchasesColumns, purchasesValues(records))
	})
}

func (r *purchasesRepository) AppendAll(ctx context.Context, records []domain.PurchaseRecord) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := r.conn.ExecContext(ctx, purchasesTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", purchasesTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertRows(ctx, tx, purchasesTable, purchasesColumns, purchasesValues(records))
	})
}

func (r *purchasesRepository) DeleteByKeys(ctx context.Context, keys []string) error {
	return deleteByKeys(ctx, r.conn, purchasesTable, "numero_nota_fiscal", keys)
}

func (r *purchasesRepository) ListAll(ctx context.Context) ([]domain.PurchaseRecord, error) {
	query, _, err := squirrel.
		Select(purchasesColumns...).
		From(purchasesTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler a tabela '%s': %w", purchasesTable, err)
	}
	defer rows.Close()

	records := make([]domain.PurchaseRecord, 0)
	for rows.Next() {
		var rec domain.PurchaseRecord
		var itens sql.NullString

		err := rows.Scan(
			&rec.NumeroNotaFiscal,
			&rec.DataEntrada,
			&rec.CodigoFornecedor,
			&rec.ValorTotal,
			&itens,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear compra: %w", err)
		}

		rec.Itens = textToRaw(itens)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *purchasesRepository) Exists(ctx context.Context) (bool, error) {
	return tableExists(ctx, r.conn, purchasesTable)
}

func purchasesValues(records []domain.PurchaseRecord) [][]any {
	values := make([][]any, 0, len(records))
	for _, rec := range records {
		values = append(values, []any{
			rec.NumeroNotaFiscal,
			rec.DataEntrada,
			rec.CodigoFornecedor,
			rec.ValorTotal,
			rawToText(rec.Itens),
		})
	}
	return values
}
