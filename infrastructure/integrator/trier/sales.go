package trier

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

type salePayload struct {
	NumeroNota         FlexString      `json:"numeroNota"`
	DataEmissao        FlexString      `json:"dataEmissao"`
	Status             FlexString      `json:"status"`
	CodigoVendedor     FlexString      `json:"codigoVendedor"`
	Entrega            FlexBool        `json:"entrega"`
	ValorTotalCusto    FlexFloat       `json:"valorTotalCusto"`
	ValorTotalBruto    FlexFloat       `json:"valorTotalBruto"`
	ValorTotalLiquido  FlexFloat       `json:"valorTotalLiquido"`
	ValorTotal         FlexFloat       `json:"valorTotal"`
	ValorDesconto      FlexFloat       `json:"valorDesconto"`
	QuantidadeProdutos FlexFloat       `json:"quantidadeProdutos"`
	Itens              json.RawMessage `json:"itens"`
	CondicaoPagamento  json.RawMessage `json:"condicaoPagamento"`
}

func (p salePayload) toDomain() domain.SalesRecord {
	return domain.SalesRecord{
		NumeroNota:         p.NumeroNota.String(),
		DataEmissao:        p.DataEmissao.String(),
		Status:             p.Status.String(),
		CodigoVendedor:     p.CodigoVendedor.String(),
		Entrega:            p.Entrega.Bool(),
		ValorTotalCusto:    p.ValorTotalCusto.Float64(),
		ValorTotalBruto:    p.ValorTotalBruto.Float64(),
		ValorTotalLiquido:  p.ValorTotalLiquido.Float64(),
		ValorTotal:         p.ValorTotal.Float64(),
		ValorDesconto:      p.ValorDesconto.Float64(),
		QuantidadeProdutos: p.QuantidadeProdutos.Float64(),
		Itens:              p.Itens,
		CondicaoPagamento:  p.CondicaoPagamento,
	}
}

type cancellationPayload struct {
	salePayload
	TipoCancelamento FlexString `json:"tipoCancelamento"`
}

func (i *integrator) GetChangedSales(ctx context.Context, start, end time.Time) ([]domain.SalesRecord, error) {
	records, err := i.client.FetchAllPages(ctx, endpointChangedSales, periodParams(start, end))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar vendas alteradas: %w", err)
	}

	payloads := decodeRecords[salePayload](records, endpointChangedSales)
	sales := make([]domain.SalesRecord, 0, len(payloads))
	for _, payload := range payloads {
		sales = append(sales, payload.toDomain())
	}

	return sales, nil
}

func (i *integrator) GetSaleCancellations(ctx context.Context, start, end time.Time) ([]domain.CancellationEvent, error) {
	params := url.Values{
		"dataEmissaoInicial": []string{start.Format(dateLayout)},
		"dataEmissaoFinal":   []string{end.Format(dateLayout)},
	}

	records, err := i.client.FetchAllPages(ctx, endpointSaleCancellations, params)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar cancelamentos de vendas: %w", err)
	}

	payloads := decodeRecords[cancellationPayload](records, endpointSaleCancellations)
	events := make([]domain.CancellationEvent, 0, len(payloads))
	for _, payload := range payloads {
		events = append(events, domain.CancellationEvent{
			SalesRecord:      payload.salePayload.toDomain(),
			TipoCancelamento: payload.TipoCancelamento.String(),
		})
	}

	return events, nil
}
