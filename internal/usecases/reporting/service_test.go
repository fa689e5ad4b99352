package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sgf-sync-api/internal/config"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestProcessedSales_SegundaLeituraDentroDoTTLNaoVaiAoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	facts := mocks.NewMockFactsRepository(ctrl)

	current := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	svc := &service{
		cfg:   config.Reporting{CacheTTL: 5 * time.Minute},
		facts: facts,
		now:   func() time.Time { return current },
	}

	rows := []domain.AnalyticalFact{{NumeroNota: "100"}}
	facts.EXPECT().ListAll(gomock.Any()).Return(rows, nil).Times(1)

	first, err := svc.ProcessedSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, first)

	current = current.Add(4 * time.Minute)

	second, err := svc.ProcessedSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, second)
}

func TestProcessedSales_CacheExpiradoRenovaNoBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	facts := mocks.NewMockFactsRepository(ctrl)

	current := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	svc := &service{
		cfg:   config.Reporting{CacheTTL: 5 * time.Minute},
		facts: facts,
		now:   func() time.Time { return current },
	}

	stale := []domain.AnalyticalFact{{NumeroNota: "100"}}
	fresh := []domain.AnalyticalFact{{NumeroNota: "100"}, {NumeroNota: "101"}}

	gomock.InOrder(
		facts.EXPECT().ListAll(gomock.Any()).Return(stale, nil),
		facts.EXPECT().ListAll(gomock.Any()).Return(fresh, nil),
	)

	_, err := svc.ProcessedSales(context.Background())
	require.NoError(t, err)

	current = current.Add(6 * time.Minute)

	rows, err := svc.ProcessedSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, rows)
}

func TestProcessedSales_FalhaNoBancoNaoEnvenenaOCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	facts := mocks.NewMockFactsRepository(ctrl)

	current := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	svc := &service{
		cfg:   config.Reporting{CacheTTL: 5 * time.Minute},
		facts: facts,
		now:   func() time.Time { return current },
	}

	rows := []domain.AnalyticalFact{{NumeroNota: "100"}}
	gomock.InOrder(
		facts.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("conexão recusada")),
		facts.EXPECT().ListAll(gomock.Any()).Return(rows, nil),
	)

	_, err := svc.ProcessedSales(context.Background())
	require.Error(t, err)

	got, err := svc.ProcessedSales(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestSuppliers_CadaTabelaTemCacheProprio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sellers := mocks.NewMockSellersRepository(ctrl)
	suppliers := mocks.NewMockSuppliersRepository(ctrl)

	current := time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	svc := &service{
		cfg:       config.Reporting{CacheTTL: 5 * time.Minute},
		sellers:   sellers,
		suppliers: suppliers,
		now:       func() time.Time { return current },
	}

	sellers.EXPECT().ListAll(gomock.Any()).Return([]domain.SellerDimension{{Codigo: "7"}}, nil).Times(1)
	suppliers.EXPECT().ListAll(gomock.Any()).Return([]domain.SupplierDimension{{Codigo: "F1"}}, nil).Times(1)

	_, err := svc.Sellers(context.Background())
	require.NoError(t, err)

	got, err := svc.Suppliers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "F1", got[0].Codigo)
}
