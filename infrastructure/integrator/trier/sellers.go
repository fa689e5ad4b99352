package trier

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

type sellerPayload struct {
	Codigo FlexString `json:"codigo"`
	Nome   FlexString `json:"nome"`
	Ativo  FlexBool   `json:"ativo"`
}

func (i *integrator) GetAllSellers(ctx context.Context) ([]domain.SellerDimension, error) {
	records, err := i.client.FetchAllPages(ctx, endpointAllSellers, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o cadastro de vendedores: %w", err)
	}

	payloads := decodeRecords[sellerPayload](records, endpointAllSellers)
	sellers := make([]domain.SellerDimension, 0, len(payloads))
	for _, payload := range payloads {
		sellers = append(sellers, domain.SellerDimension{
			Codigo: payload.Codigo.String(),
			Nome:   payload.Nome.String(),
			Ativo:  payload.Ativo.Bool(),
		})
	}

	return sellers, nil
}
