package trier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

type purchasePayload struct {
	NumeroNotaFiscal FlexString      `json:"numeroNotaFiscal"`
	DataEntrada      FlexString      `json:"dataEntrada"`
	CodigoFornecedor FlexString      `json:"codigoFornecedor"`
	ValorTotal       FlexFloat       `json:"valorTotal"`
	Itens            json.RawMessage `json:"itens"`
}

func (i *integrator) GetChangedPurchases(ctx context.Context, start, end time.Time) ([]domain.PurchaseRecord, error) {
	records, err := i.client.FetchAllPages(ctx, endpointChangedPurchases, periodParams(start, end))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar compras alteradas: %w", err)
	}

	payloads := decodeRecords[purchasePayload](records, endpointChangedPurchases)
	purchases := make([]domain.PurchaseRecord, 0, len(payloads))
	for _, payload := range payloads {
		purchases = append(purchases, domain.PurchaseRecord{
			NumeroNotaFiscal: payload.NumeroNotaFiscal.String(),
			DataEntrada:      payload.DataEntrada.String(),
			CodigoFornecedor: payload.CodigoFornecedor.String(),
			ValorTotal:       payload.ValorTotal.Float64(),
			Itens:            payload.Itens,
		})
	}

	return purchases, nil
}
