package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

func TestMerge_DevolucaoInverteSinaisESubstituiABase(t *testing.T) {
	base := []domain.SalesRecord{
		{NumeroNota: "100", ValorTotalLiquido: 50.0, ValorTotal: 60.0, QuantidadeProdutos: 2},
	}
	events := []domain.CancellationEvent{
		{
			SalesRecord: domain.SalesRecord{
				NumeroNota:         "100",
				ValorTotalCusto:    20.0,
				ValorTotalBruto:    55.0,
				ValorTotalLiquido:  50.0,
				ValorTotal:         60.0,
				ValorDesconto:      5.0,
				QuantidadeProdutos: 2,
			},
			TipoCancelamento: domain.CancellationReturn,
		},
	}

	merged := Merge(base, events)
	require.Len(t, merged, 1)

	sale := merged[0]
	assert.Equal(t, domain.SaleStatusReturned, sale.Status)
	assert.Equal(t, -20.0, sale.ValorTotalCusto)
	assert.Equal(t, -55.0, sale.ValorTotalBruto)
	assert.Equal(t, -50.0, sale.ValorTotalLiquido)
	assert.Equal(t, -60.0, sale.ValorTotal)
	assert.Equal(t, -5.0, sale.ValorDesconto)
	assert.Equal(t, -2.0, sale.QuantidadeProdutos)
}

func TestMerge_ExclusaoApenasMarcaOStatus(t *testing.T) {
	base := []domain.SalesRecord{
		{NumeroNota: "200", ValorTotalLiquido: 80.0},
	}
	events := []domain.CancellationEvent{
		{
			SalesRecord:      domain.SalesRecord{NumeroNota: "200", ValorTotalLiquido: 80.0},
			TipoCancelamento: domain.CancellationDeletion,
		},
	}

	merged := Merge(base, events)
	require.Len(t, merged, 1)
	assert.Equal(t, domain.SaleStatusDeleted, merged[0].Status)
	assert.Equal(t, 80.0, merged[0].ValorTotalLiquido)
}

func TestMerge_ExclusaoPrevaleceSobreDevolucaoDaMesmaNota(t *testing.T) {
	events := []domain.CancellationEvent{
		{
			SalesRecord:      domain.SalesRecord{NumeroNota: "300", ValorTotalLiquido: 30.0},
			TipoCancelamento: domain.CancellationReturn,
		},
		{
			SalesRecord:      domain.SalesRecord{NumeroNota: "300", ValorTotalLiquido: 30.0},
			TipoCancelamento: domain.CancellationDeletion,
		},
	}

	merged := Merge(nil, events)
	require.Len(t, merged, 1)
	assert.Equal(t, domain.SaleStatusDeleted, merged[0].Status)
}

func TestMerge_StatusVazioViraOK(t *testing.T) {
	merged := Merge([]domain.SalesRecord{{NumeroNota: "400"}}, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, domain.SaleStatusOK, merged[0].Status)
}

func TestMerge_NotasDistintasSaoPreservadas(t *testing.T) {
	base := []domain.SalesRecord{
		{NumeroNota: "1", Status: domain.SaleStatusOK},
		{NumeroNota: "2", Status: domain.SaleStatusOK},
	}
	events := []domain.CancellationEvent{
		{
			SalesRecord:      domain.SalesRecord{NumeroNota: "3"},
			TipoCancelamento: domain.CancellationReturn,
		},
	}

	merged := Merge(base, events)
	assert.Len(t, merged, 3)
}

func TestDedupeLast_MantemUltimaOcorrenciaEAOrdem(t *testing.T) {
	items := []string{"a", "b", "a", "c", "b"}

	deduped := DedupeLast(items, func(s string) string { return s })

	assert.Equal(t, []string{"a", "c", "b"}, deduped)
}
