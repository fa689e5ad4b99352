package trier

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

type supplierPayload struct {
	Codigo       FlexString `json:"codigo"`
	RazaoSocial  FlexString `json:"razaoSocial"`
	NomeFantasia FlexString `json:"nomeFantasia"`
	CNPJ         FlexString `json:"cnpj"`
}

func (p supplierPayload) toDomain() domain.SupplierDimension {
	return domain.SupplierDimension{
		Codigo:       p.Codigo.String(),
		RazaoSocial:  p.RazaoSocial.String(),
		NomeFantasia: p.NomeFantasia.String(),
		CNPJ:         p.CNPJ.String(),
	}
}

func (i *integrator) GetAllSuppliers(ctx context.Context) ([]domain.SupplierDimension, error) {
	records, err := i.client.FetchAllPages(ctx, endpointAllSuppliers, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar o cadastro de fornecedores: %w", err)
	}

	payloads := decodeRecords[supplierPayload](records, endpointAllSuppliers)
	suppliers := make([]domain.SupplierDimension, 0, len(payloads))
	for _, payload := range payloads {
		suppliers = append(suppliers, payload.toDomain())
	}

	return suppliers, nil
}

func (i *integrator) GetChangedSuppliers(ctx context.Context, day time.Time) ([]domain.SupplierDimension, error) {
	records, err := i.client.FetchAllPages(ctx, endpointChangedSuppliers, periodParams(day, day))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar fornecedores alterados: %w", err)
	}

	payloads := decodeRecords[supplierPayload](records, endpointChangedSuppliers)
	suppliers := make([]domain.SupplierDimension, 0, len(payloads))
	for _, payload := range payloads {
		suppliers = append(suppliers, payload.toDomain())
	}

	return suppliers, nil
}
