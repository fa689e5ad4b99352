package trier

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

type productPayload struct {
	Codigo            FlexString `json:"codigo"`
	Nome              FlexString `json:"nome"`
	NomeGrupo         FlexString `json:"nomeGrupo"`
	NomeCategoria     FlexString `json:"nomeCategoria"`
	PrecoVenda        FlexFloat  `json:"precoVenda"`
	QuantidadeEstoque FlexFloat  `json:"quantidadeEstoque"`
}

func (p productPayload) toDomain() domain.ProductDimension {
	return domain.ProductDimension{
		Codigo:            p.Codigo.String(),
		Nome:              p.Nome.String(),
		NomeGrupo:         p.NomeGrupo.String(),
		NomeCategoria:     p.NomeCategoria.String(),
		PrecoVenda:        p.PrecoVenda.Float64(),
		QuantidadeEstoque: p.QuantidadeEstoque.Float64(),
	}
}

type stockPayload struct {
	CodigoProduto     FlexString `json:"codigoProduto"`
	QuantidadeEstoque FlexFloat  `json:"quantidadeEstoque"`
}

func (i *integrator) GetAllProducts(ctx context.Context) ([]domain.ProductDimension, error) {
	records, err := i.client.FetchAllPages(ctx, endpointAllProducts, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o catálogo de produtos: %w", err)
	}

	payloads := decodeRecords[productPayload](records, endpointAllProducts)
	products := make([]domain.ProductDimension, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, payload.toDomain())
	}

	return products, nil
}

func (i *integrator) GetChangedProducts(ctx context.Context, day time.Time) ([]domain.ProductDimension, error) {
	records, err := i.client.FetchAllPages(ctx, endpointChangedProducts, periodParams(day, day))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar produtos alterados: %w", err)
	}

	payloads := decodeRecords[productPayload](records, endpointChangedProducts)
	products := make([]domain.ProductDimension, 0, len(payloads))
	for _, payload := range payloads {
		products = append(products, payload.toDomain())
	}

	return products, nil
}

func (i *integrator) GetStockMovements(ctx context.Context, day time.Time) ([]domain.StockMovement, error) {
	records, err := i.client.FetchAllPages(ctx, endpointStockMovements, periodParams(day, day))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar movimentações de estoque: %w", err)
	}

	payloads := decodeRecords[stockPayload](records, endpointStockMovements)
	movements := make([]domain.StockMovement, 0, len(payloads))
	for _, payload := range payloads {
		movements = append(movements, domain.StockMovement{
			CodigoProduto:     payload.CodigoProduto.String(),
			QuantidadeEstoque: payload.QuantidadeEstoque.Float64(),
		})
	}

	return movements, nil
}
