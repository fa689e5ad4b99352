package syncing

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	triermocks "github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier/mocks"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSyncSales_RemoveVersoesAntigasEGravaConsolidadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	salesRepo := mocks.NewMockSalesRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		sales:      salesRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetChangedSales(gomock.Any(), fixedNow(), fixedNow()).
		Return([]domain.SalesRecord{{NumeroNota: "1", ValorTotalLiquido: 40}}, nil)
	integrator.EXPECT().
		GetSaleCancellations(gomock.Any(), fixedNow(), fixedNow()).
		Return([]domain.CancellationEvent{
			{
				SalesRecord:      domain.SalesRecord{NumeroNota: "2", ValorTotalLiquido: 15},
				TipoCancelamento: domain.CancellationReturn,
			},
		}, nil)

	salesRepo.EXPECT().DeleteByKeys(gomock.Any(), []string{"1", "2"}).Return(nil)

	var appended []domain.SalesRecord
	salesRepo.EXPECT().
		AppendAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.SalesRecord) error {
			appended = records
			return nil
		})

	require.NoError(t, service.SyncSales(context.Background()))

	require.Len(t, appended, 2)
	assert.Equal(t, domain.SaleStatusOK, appended[0].Status)
	assert.Equal(t, domain.SaleStatusReturned, appended[1].Status)
	assert.Equal(t, -15.0, appended[1].ValorTotalLiquido)
}

// memSalesTable simula a tabela de vendas com a mesma restrição de
// chave primária do banco: inserir uma nota já existente falha, então
// a escrita repetida só funciona se a remoção prévia aconteceu.
type memSalesTable struct {
	rows map[string]domain.SalesRecord
}

func newMemSalesTable() *memSalesTable {
	return &memSalesTable{rows: make(map[string]domain.SalesRecord)}
}

func (m *memSalesTable) ReplaceAll(_ context.Context, records []domain.SalesRecord) error {
	m.rows = make(map[string]domain.SalesRecord, len(records))
	for _, record := range records {
		m.rows[record.NumeroNota] = record
	}
	return nil
}

func (m *memSalesTable) AppendAll(_ context.Context, records []domain.SalesRecord) error {
	for _, record := range records {
		if _, exists := m.rows[record.NumeroNota]; exists {
			return fmt.Errorf("nota duplicada: %s", record.NumeroNota)
		}
		m.rows[record.NumeroNota] = record
	}
	return nil
}

func (m *memSalesTable) DeleteByKeys(_ context.Context, keys []string) error {
	for _, key := range keys {
		delete(m.rows, key)
	}
	return nil
}

func (m *memSalesTable) ListAll(context.Context) ([]domain.SalesRecord, error) {
	records := make([]domain.SalesRecord, 0, len(m.rows))
	for _, record := range m.rows {
		records = append(records, record)
	}
	return records, nil
}

func (m *memSalesTable) Exists(context.Context) (bool, error) {
	return len(m.rows) > 0, nil
}

func (m *memSalesTable) snapshot() map[string]domain.SalesRecord {
	copied := make(map[string]domain.SalesRecord, len(m.rows))
	for key, record := range m.rows {
		copied[key] = record
	}
	return copied
}

func TestSyncSales_ExecucaoRepetidaProduzAMesmaTabela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	table := newMemSalesTable()

	service := &incrementalService{
		integrator: integrator,
		sales:      table,
		now:        fixedNow,
	}

	changed := []domain.SalesRecord{
		{NumeroNota: "1", ValorTotalLiquido: 40},
		{NumeroNota: "2", ValorTotalLiquido: 15},
	}
	cancellations := []domain.CancellationEvent{
		{
			SalesRecord:      domain.SalesRecord{NumeroNota: "2", ValorTotalLiquido: 15},
			TipoCancelamento: domain.CancellationReturn,
		},
	}

	integrator.EXPECT().
		GetChangedSales(gomock.Any(), fixedNow(), fixedNow()).
		Return(changed, nil).
		Times(2)
	integrator.EXPECT().
		GetSaleCancellations(gomock.Any(), fixedNow(), fixedNow()).
		Return(cancellations, nil).
		Times(2)

	require.NoError(t, service.SyncSales(context.Background()))
	afterFirstRun := table.snapshot()
	require.Len(t, afterFirstRun, 2)

	require.NoError(t, service.SyncSales(context.Background()))
	assert.Equal(t, afterFirstRun, table.snapshot())
}

func TestSyncSales_EventoComTipoDesconhecidoAindaRemoveAVersaoAntiga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	salesRepo := mocks.NewMockSalesRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		sales:      salesRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetChangedSales(gomock.Any(), fixedNow(), fixedNow()).
		Return(nil, nil)
	integrator.EXPECT().
		GetSaleCancellations(gomock.Any(), fixedNow(), fixedNow()).
		Return([]domain.CancellationEvent{
			{
				SalesRecord:      domain.SalesRecord{NumeroNota: "9", ValorTotalLiquido: 10},
				TipoCancelamento: "X",
			},
		}, nil)

	salesRepo.EXPECT().DeleteByKeys(gomock.Any(), []string{"9"}).Return(nil)
	salesRepo.EXPECT().AppendAll(gomock.Any(), gomock.Len(0)).Return(nil)

	require.NoError(t, service.SyncSales(context.Background()))
}

func TestSyncSales_SemNovidadesNaoTocaOBanco(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	salesRepo := mocks.NewMockSalesRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		sales:      salesRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().GetChangedSales(gomock.Any(), fixedNow(), fixedNow()).Return(nil, nil)
	integrator.EXPECT().GetSaleCancellations(gomock.Any(), fixedNow(), fixedNow()).Return(nil, nil)

	require.NoError(t, service.SyncSales(context.Background()))
}

func TestSyncSales_FalhaNasVendasPropagaErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	salesRepo := mocks.NewMockSalesRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		sales:      salesRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetChangedSales(gomock.Any(), fixedNow(), fixedNow()).
		Return(nil, errors.New("gateway indisponível"))

	require.Error(t, service.SyncSales(context.Background()))
}

func TestSyncPurchases_AtualizaApenasNotasAfetadas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	purchasesRepo := mocks.NewMockPurchasesRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		purchases:  purchasesRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetChangedPurchases(gomock.Any(), fixedNow(), fixedNow()).
		Return([]domain.PurchaseRecord{
			{NumeroNotaFiscal: "N1", ValorTotal: 10},
			{NumeroNotaFiscal: "N1", ValorTotal: 12},
		}, nil)

	purchasesRepo.EXPECT().DeleteByKeys(gomock.Any(), []string{"N1"}).Return(nil)

	var appended []domain.PurchaseRecord
	purchasesRepo.EXPECT().
		AppendAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, records []domain.PurchaseRecord) error {
			appended = records
			return nil
		})

	require.NoError(t, service.SyncPurchases(context.Background()))

	require.Len(t, appended, 1)
	assert.Equal(t, 12.0, appended[0].ValorTotal)
}

func TestSyncProducts_MesclaMantendoAVersaoMaisRecente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	productsRepo := mocks.NewMockProductsRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		products:   productsRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetChangedProducts(gomock.Any(), fixedNow()).
		Return([]domain.ProductDimension{{Codigo: "P1", Nome: "Produto 1 v2"}}, nil)
	productsRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]domain.ProductDimension{
			{Codigo: "P1", Nome: "Produto 1"},
			{Codigo: "P2", Nome: "Produto 2"},
		}, nil)

	var saved []domain.ProductDimension
	productsRepo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, products []domain.ProductDimension) error {
			saved = products
			return nil
		})

	require.NoError(t, service.SyncProducts(context.Background()))

	require.Len(t, saved, 2)
	assert.Equal(t, "P2", saved[0].Codigo)
	assert.Equal(t, "Produto 1 v2", saved[1].Nome)
}

func TestSyncStock_AtualizaApenasAQuantidadeEmEstoque(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	productsRepo := mocks.NewMockProductsRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		products:   productsRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetStockMovements(gomock.Any(), fixedNow()).
		Return([]domain.StockMovement{
			{CodigoProduto: "P1", QuantidadeEstoque: 10},
			{CodigoProduto: "P9", QuantidadeEstoque: 7}, // fora do catálogo, ignorado
		}, nil)
	productsRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]domain.ProductDimension{
			{Codigo: "P1", Nome: "Produto 1", QuantidadeEstoque: 5},
			{Codigo: "P2", Nome: "Produto 2", QuantidadeEstoque: 3},
		}, nil)

	var saved []domain.ProductDimension
	productsRepo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, products []domain.ProductDimension) error {
			saved = products
			return nil
		})

	require.NoError(t, service.SyncStock(context.Background()))

	require.Len(t, saved, 2)
	assert.Equal(t, 10.0, saved[0].QuantidadeEstoque)
	assert.Equal(t, "Produto 1", saved[0].Nome)
	assert.Equal(t, 3.0, saved[1].QuantidadeEstoque)
}

func TestSyncStock_CatalogoVazioNaoEscreve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	productsRepo := mocks.NewMockProductsRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		products:   productsRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetStockMovements(gomock.Any(), fixedNow()).
		Return([]domain.StockMovement{{CodigoProduto: "P1", QuantidadeEstoque: 10}}, nil)
	productsRepo.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	require.NoError(t, service.SyncStock(context.Background()))
}

func TestRefreshSellers_SubstituiOCadastroCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	sellersRepo := mocks.NewMockSellersRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		sellers:    sellersRepo,
		now:        fixedNow,
	}

	sellers := []domain.SellerDimension{{Codigo: "7", Nome: "Maria", Ativo: true}}
	integrator.EXPECT().GetAllSellers(gomock.Any()).Return(sellers, nil)
	sellersRepo.EXPECT().ReplaceAll(gomock.Any(), sellers).Return(nil)

	require.NoError(t, service.RefreshSellers(context.Background()))
}

func TestSyncSuppliers_MesclaPorCodigo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	integrator := triermocks.NewMockIntegrator(ctrl)
	suppliersRepo := mocks.NewMockSuppliersRepository(ctrl)

	service := &incrementalService{
		integrator: integrator,
		suppliers:  suppliersRepo,
		now:        fixedNow,
	}

	integrator.EXPECT().
		GetChangedSuppliers(gomock.Any(), fixedNow()).
		Return([]domain.SupplierDimension{{Codigo: "F1", RazaoSocial: "Fornecedor 1 Ltda"}}, nil)
	suppliersRepo.EXPECT().
		ListAll(gomock.Any()).
		Return([]domain.SupplierDimension{{Codigo: "F1", RazaoSocial: "Fornecedor 1"}}, nil)

	var saved []domain.SupplierDimension
	suppliersRepo.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, suppliers []domain.SupplierDimension) error {
			saved = suppliers
			return nil
		})

	require.NoError(t, service.SyncSuppliers(context.Background()))

	require.Len(t, saved, 1)
	assert.Equal(t, "Fornecedor 1 Ltda", saved[0].RazaoSocial)
}
