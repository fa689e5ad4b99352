package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const salesTable = "vendas"

const salesTableDDL = `
	CREATE TABLE IF NOT EXISTS vendas (
		numero_nota         TEXT PRIMARY KEY,
		data_emissao        TEXT,
		status              TEXT,
		codigo_vendedor     TEXT,
		entrega             BOOLEAN NOT NULL DEFAULT FALSE,
		valor_total_custo   DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total_bruto   DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total_liquido DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total         DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_desconto      DOUBLE PRECISION NOT NULL DEFAULT 0,
		quantidade_produtos DOUBLE PRECISION NOT NULL DEFAULT 0,
		itens               TEXT,
		condicao_pagamento  TEXT
	)`

var salesColumns = []string{
	"numero_nota",
	"data_emissao",
	"status",
	"codigo_vendedor",
	"entrega",
	"valor_total_custo",
	"valor_total_bruto",
	"valor_total_liquido",
	"valor_total",
	"valor_desconto",
	"quantidade_produtos",
	"itens",
	"condicao_pagamento",
}

type SalesRepository interface {
	ReplaceAll(ctx context.Context, records []domain.SalesRecord) error
	AppendAll(ctx context.Context, records []domain.SalesRecord) error
	DeleteByKeys(ctx context.Context, keys []string) error
	ListAll(ctx context.Context) ([]domain.SalesRecord, error)
	Exists(ctx context.Context) (bool, error)
}

type salesRepository struct {
	conn *postgres.Connection
}

func NewSalesRepository(conn *postgres.Connection) SalesRepository {
	return &salesRepository{conn: conn}
}

func (r *salesRepository) ReplaceAll(ctx context.Context, records []domain.SalesRecord) error {
	if len(records) == 0 {
		return dropTable(ctx, r.conn, salesTable)
	}

	if _, err := r.conn.ExecContext(ctx, salesTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", salesTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, salesTable); err != nil {
			return err
		}
		return insertRows(ctx, tx, salesTable, salesColumns, salesValues(records))
	})
}

func (r *salesRepository) AppendAll(ctx context.Context, records []domain.SalesRecord) error {
	if len(records) == 0 {
		return nil
	}

	if _, err := r.conn.ExecContext(ctx, salesTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", salesTable, err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertRows(ctx, tx, salesTable, salesColumns, salesValues(records))
	})
}

func (r *salesRepository) DeleteByKeys(ctx context.Context, keys []string) error {
	return deleteByKeys(ctx, r.conn, salesTable, "numero_nota", keys)
}

func (r *salesRepository) ListAll(ctx context.Context) ([]domain.SalesRecord, error) {
	query, _, err := squirrel.
		Select(salesColumns...).
		From(salesTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler a tabela '%s': %w", salesTable, err)
	}
	defer rows.Close()

	records := make([]domain.SalesRecord, 0)
	for rows.Next() {
		record, err := scanSalesRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *salesRepository) Exists(ctx context.Context) (bool, error) {
	return tableExists(ctx, r.conn, salesTable)
}

func salesValues(records []domain.SalesRecord) [][]any {
	values := make([][]any, 0, len(records))
	for _, rec := range records {
		values = append(values, []any{
			rec.NumeroNota,
			rec.DataEmissao,
			rec.Status,
			rec.CodigoVendedor,
			rec.Entrega,
			rec.ValorTotalCusto,
			rec.ValorTotalBruto,
			rec.ValorTotalLiquido,
			rec.ValorTotal,
			rec.ValorDesconto,
			rec.QuantidadeProdutos,
			rawToText(rec.Itens),
			rawToText(rec.CondicaoPagamento),
		})
	}
	return values
}

func scanSalesRecord(rows *sql.Rows) (domain.SalesRecord, error) {
	var rec domain.SalesRecord
	var itens, condicao sql.NullString

	err := rows.Scan(
		&rec.NumeroNota,
		&rec.DataEmissao,
		&rec.Status,
		&rec.CodigoVendedor,
		&rec.Entrega,
		&rec.ValorTotalCusto,
		&rec.ValorTotalBruto,
		&rec.ValorTotalLiquido,
		&rec.ValorTotal,
		&rec.ValorDesconto,
		&rec.QuantidadeProdutos,
		&itens,
		&condicao,
	)
	if err != nil {
		return rec, err
	}

	rec.Itens = textToRaw(itens)
	rec.CondicaoPagamento = textToRaw(condicao)
	return rec, nil
}

// rawToText converte o campo embutido serializado para a coluna TEXT,
// preservando NULL para ausência.
func rawToText(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func textToRaw(value sql.NullString) json.RawMessage {
	if !value.Valid || value.String == "" {
		return nil
	}
	return json.RawMessage(value.String)
}
