package enriching

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newServiceWithMocks(ctrl *gomock.Controller) (Service, *mocks.MockSalesRepository, *mocks.MockSellersRepository, *mocks.MockProductsRepository, *mocks.MockFactsRepository) {
	sales := mocks.NewMockSalesRepository(ctrl)
	sellers := mocks.NewMockSellersRepository(ctrl)
	products := mocks.NewMockProductsRepository(ctrl)
	facts := mocks.NewMockFactsRepository(ctrl)

	return NewService(sales, sellers, products, facts), sales, sellers, products, facts
}

func expectSources(sales *mocks.MockSalesRepository, sellers *mocks.MockSellersRepository, products *mocks.MockProductsRepository) {
	sales.EXPECT().Exists(gomock.Any()).Return(true, nil)
	sellers.EXPECT().Exists(gomock.Any()).Return(true, nil)
	products.EXPECT().Exists(gomock.Any()).Return(true, nil)
}

func TestRebuild_ExplodeVendaPorItemComDimensoes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sales, sellers, products, facts := newServiceWithMocks(ctrl)

	items := json.RawMessage(`[
		{"codigoProduto": "P1", "quantidade": 2, "valorUnitario": 10.006, "valorTotalItem": 20.012},
		{"codigoProduto": "P9", "quantidade": 1, "valorUnitario": 5, "valorTotalItem": 5}
	]`)
	condition := json.RawMessage(`{"codigo": "1", "nome": "À VISTA"}`)

	sales.EXPECT().ListAll(gomock.Any()).Return([]domain.SalesRecord{
		{
			NumeroNota:        "100",
			DataEmissao:       "2025-10-01",
			CodigoVendedor:    "7",
			Entrega:           true,
			ValorTotalLiquido: 25.004,
			Itens:             items,
			CondicaoPagamento: condition,
		},
	}, nil)
	sellers.EXPECT().ListAll(gomock.Any()).Return([]domain.SellerDimension{
		{Codigo: "7", Nome: "Maria"},
	}, nil)
	products.EXPECT().ListAll(gomock.Any()).Return([]domain.ProductDimension{
		{Codigo: "P1", Nome: "Produto 1", NomeGrupo: "Grupo A", NomeCategoria: "Categoria A"},
	}, nil)
	expectSources(sales, sellers, products)

	var saved []domain.AnalyticalFact
	facts.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []domain.AnalyticalFact) error {
			saved = rows
			return nil
		})

	require.NoError(t, service.Rebuild(context.Background()))

	require.Len(t, saved, 2)

	first := saved[0]
	assert.Equal(t, "100", first.NumeroNota)
	assert.Equal(t, domain.SaleStatusOK, first.StatusVenda)
	assert.Equal(t, "Maria", first.NomeVendedor)
	assert.Equal(t, "Produto 1", first.NomeProduto)
	assert.Equal(t, "Grupo A", first.NomeGrupo)
	assert.Equal(t, "À VISTA", first.CondicaoPagamentoNome)
	assert.Equal(t, domain.DeliveryFlagTrue, first.Entrega)
	assert.Equal(t, 10.01, first.ValorUnitario)
	assert.Equal(t, 25.0, first.ValorTotalLiquido)

	second := saved[1]
	assert.Equal(t, domain.ProductNotFound, second.NomeProduto)
	assert.Equal(t, domain.GroupNotFound, second.NomeGrupo)
	assert.Equal(t, domain.CategoryNotFound, second.NomeCategoria)
}

func TestRebuild_DevolucaoEntraComValoresNegativos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sales, sellers, products, facts := newServiceWithMocks(ctrl)

	sales.EXPECT().ListAll(gomock.Any()).Return([]domain.SalesRecord{
		{
			NumeroNota:         "200",
			Status:             domain.SaleStatusReturned,
			ValorTotalCusto:    30,
			ValorTotalBruto:    -50,
			ValorTotalLiquido:  50,
			QuantidadeProdutos: 2,
		},
	}, nil)
	sellers.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	expectSources(sales, sellers, products)

	var saved []domain.AnalyticalFact
	facts.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []domain.AnalyticalFact) error {
			saved = rows
			return nil
		})

	require.NoError(t, service.Rebuild(context.Background()))

	require.Len(t, saved, 1)
	assert.Equal(t, domain.SaleStatusReturned, saved[0].StatusVenda)
	assert.Equal(t, -30.0, saved[0].ValorTotalCusto)
	assert.Equal(t, -50.0, saved[0].ValorTotalBruto)
	assert.Equal(t, -50.0, saved[0].ValorTotalLiquido)
	assert.Equal(t, -2.0, saved[0].QuantidadeProdutos)
}

func TestRebuild_VendaSemItensGeraUmaLinhaComSentinelas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sales, sellers, products, facts := newServiceWithMocks(ctrl)

	sales.EXPECT().ListAll(gomock.Any()).Return([]domain.SalesRecord{
		{NumeroNota: "300", CodigoVendedor: "99", ValorTotalLiquido: 80},
	}, nil)
	sellers.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	expectSources(sales, sellers, products)

	var saved []domain.AnalyticalFact
	facts.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []domain.AnalyticalFact) error {
			saved = rows
			return nil
		})

	require.NoError(t, service.Rebuild(context.Background()))

	require.Len(t, saved, 1)
	assert.Equal(t, domain.SellerNotFound, saved[0].NomeVendedor)
	assert.Equal(t, domain.ProductNotFound, saved[0].NomeProduto)
	assert.Equal(t, domain.CategoryNotFound, saved[0].NomeCategoria)
	assert.Equal(t, domain.DeliveryFlagFalse, saved[0].Entrega)
	assert.Equal(t, 80.0, saved[0].ValorTotalLiquido)
}

func TestRebuild_ItensIlegiveisTratadosComoVendaSemItens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sales, sellers, products, facts := newServiceWithMocks(ctrl)

	sales.EXPECT().ListAll(gomock.Any()).Return([]domain.SalesRecord{
		{NumeroNota: "400", Itens: json.RawMessage(`"não é uma lista"`)},
	}, nil)
	sellers.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	expectSources(sales, sellers, products)

	var saved []domain.AnalyticalFact
	facts.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rows []domain.AnalyticalFact) error {
			saved = rows
			return nil
		})

	require.NoError(t, service.Rebuild(context.Background()))

	require.Len(t, saved, 1)
	assert.Equal(t, "400", saved[0].NumeroNota)
	assert.Equal(t, domain.ProductNotFound, saved[0].NomeProduto)
}

func TestRebuild_VendasVaziasDerrubamATabelaAnalitica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sales, sellers, products, facts := newServiceWithMocks(ctrl)

	sales.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	sellers.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	expectSources(sales, sellers, products)

	facts.EXPECT().ReplaceAll(gomock.Any(), gomock.Nil()).Return(nil)

	require.NoError(t, service.Rebuild(context.Background()))
}

func TestRebuild_TabelaBrutaInexistenteAbortaSemErro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, sales, sellers, products, _ := newServiceWithMocks(ctrl)

	sales.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	sellers.EXPECT().ListAll(gomock.Any()).Return(nil, nil)
	products.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

	sales.EXPECT().Exists(gomock.Any()).Return(true, nil)
	sellers.EXPECT().Exists(gomock.Any()).Return(false, nil)

	require.NoError(t, service.Rebuild(context.Background()))
}
