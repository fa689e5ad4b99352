package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sgf-sync-api/infrastructure/database/postgres"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

const factsTable = "vendas_processadas"

const factsTableDDL = `
	CREATE TABLE IF NOT EXISTS vendas_processadas (
		numero_nota             TEXT,
		data_emissao            TEXT,
		status_venda            TEXT,
		codigo_vendedor         TEXT,
		nome_vendedor           TEXT,
		codigo_produto          TEXT,
		nome_produto            TEXT,
		nome_grupo              TEXT,
		nome_categoria          TEXT,
		condicao_pagamento_nome TEXT,
		entrega                 TEXT,
		quantidade              DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_unitario          DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total_item        DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total_custo       DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total_bruto       DOUBLE PRECISION NOT NULL DEFAULT 0,
		valor_total_liquido     DOUBLE PRECISION NOT NULL DEFAULT 0,
		quantidade_produtos     DOUBLE PRECISION NOT NULL DEFAULT 0
	)`

var factsColumns = []string{
	"numero_nota",
	"data_emissao",
	"status_venda",
	"codigo_vendedor",
	"nome_vendedor",
	"codigo_produto",
	"nome_produto",
	"nome_grupo",
	"nome_categoria",
	"condicao_pagamento_nome",
	"entrega",
	"quantidade",
	"valor_unitario",
	"valor_total_item",
	"valor_total_custo",
	"valor_total_bruto",
	"valor_total_liquido",
	"quantidade_produtos",
}

// FactsRepository persiste a tabela analítica. Só há substituição
// integral: cada enriquecimento reescreve a tabela do zero.
type FactsRepository interface {
	ReplaceAll(ctx context.Context, facts []domain.AnalyticalFact) error
	ListAll(ctx context.Context) ([]domain.AnalyticalFact, error)
}

type factsRepository struct {
	conn *postgres.Connection
}

func NewFactsRepository(conn *postgres.Connection) FactsRepository {
	return &factsRepository{conn: conn}
}

func (r *factsRepository) ReplaceAll(ctx context.Context, facts []domain.AnalyticalFact) error {
	if len(facts) == 0 {
		return dropTable(ctx, r.conn, factsTable)
	}

	if _, err := r.conn.ExecContext(ctx, factsTableDDL); err != nil {
		return fmt.Errorf("erro ao criar a tabela '%s': %w", factsTable, err)
	}

	values := make([][]any, 0, len(facts))
	for _, fact := range facts {
		values = append(values, []any{
			fact.NumeroNota,
			fact.DataEmissao,
			fact.StatusVenda,
			fact.CodigoVendedor,
			fact.NomeVendedor,
			fact.CodigoProduto,
			fact.NomeProduto,
			fact.NomeGrupo,
			fact.NomeCategoria,
			fact.CondicaoPagamentoNome,
			fact.Entrega,
			fact.Quantidade,
			fact.ValorUnitario,
			fact.ValorTotalItem,
			fact.ValorTotalCusto,
			fact.ValorTotalBruto,
			fact.ValorTotalLiquido,
			fact.QuantidadeProdutos,
		})
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := deleteAll(ctx, tx, factsTable); err != nil {
			return err
		}
		return insertRows(ctx, tx, factsTable, factsColumns, values)
	})
}

func (r *factsRepository) ListAll(ctx context.Context) ([]domain.AnalyticalFact, error) {
	query, _, err := squirrel.
		Select(factsColumns...).
		From(factsTable).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query)
	if err != nil {
		if isUndefinedTable(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao ler a tabela '%s': %w", factsTable, err)
	}
	defer rows.Close()

	facts := make([]domain.AnalyticalFact, 0)
	for rows.Next() {
		var fact domain.AnalyticalFact
		err := rows.Scan(
			&fact.NumeroNota,
			&fact.DataEmissao,
			&fact.StatusVenda,
			&fact.CodigoVendedor,
			&fact.NomeVendedor,
			&fact.CodigoProduto,
			&fact.NomeProduto,
			&fact.NomeGrupo,
			&fact.NomeCategoria,
			&fact.CondicaoPagamentoNome,
			&fact.Entrega,
			&fact.Quantidade,
			&fact.ValorUnitario,
			&fact.ValorTotalItem,
			&fact.ValorTotalCusto,
			&fact.ValorTotalBruto,
			&fact.ValorTotalLiquido,
			&fact.QuantidadeProdutos,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear venda processada: %w", err)
		}
		facts = append(facts, fact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}
