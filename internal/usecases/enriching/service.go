// Package enriching materializa a tabela analítica 'vendas_processadas'
// a partir das tabelas brutas: explode cada venda por item e junta as
// dimensões de vendedor e produto.
package enriching

import (
	"context"
	"fmt"
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
	"github.com/vfg2006/sgf-sync-api/pkg/utils"
)

type Service interface {
	Rebuild(ctx context.Context) error
}

type service struct {
	sales    repository.SalesRepository
	sellers  repository.SellersRepository
	products repository.ProductsRepository
	facts    repository.FactsRepository
}

func NewService(
	sales repository.SalesRepository,
	sellers repository.SellersRepository,
	products repository.ProductsRepository,
	facts repository.FactsRepository,
) Service {
	return &service{
		sales:    sales,
		sellers:  sellers,
		products: products,
		facts:    facts,
	}
}

// Rebuild reconstrói a tabela analítica do zero. As três tabelas
// brutas precisam existir; vendas vazias derrubam a tabela analítica
// para o painel não exibir dados obsoletos.
func (s *service) Rebuild(ctx context.Context) error {
	logrus.Info("Iniciando o reprocessamento dos dados para análise")

	sales, err := s.sales.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar a tabela de vendas: %w", err)
	}
	sellers, err := s.sellers.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar a tabela de vendedores: %w", err)
	}
	products, err := s.products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar a tabela de produtos: %w", err)
	}

	missing, err := s.missingSources(ctx)
	if err != nil {
		return err
	}
	if missing != "" {
		logrus.WithField("table", missing).Warn("Tabela bruta inexistente, abortando o processamento analítico")
		return nil
	}

	if len(sales) == 0 {
		logrus.Info("Tabela de vendas está vazia, nada a processar")
		return s.facts.ReplaceAll(ctx, nil)
	}

	sellerNames := make(map[string]string, len(sellers))
	for _, seller := range sellers {
		sellerNames[seller.Codigo] = seller.Nome
	}
	productsByCode := make(map[string]domain.ProductDimension, len(products))
	for _, product := range products {
		productsByCode[product.Codigo] = product
	}

	facts := make([]domain.AnalyticalFact, 0, len(sales))
	for _, sale := range sales {
		facts = append(facts, explodeSale(sale, sellerNames, productsByCode)...)
	}

	if err := s.facts.ReplaceAll(ctx, facts); err != nil {
		return fmt.Errorf("erro ao salvar a tabela analítica: %w", err)
	}

	logrus.WithField("rows", len(facts)).Info("Tabela 'vendas_processadas' atualizada")

	return nil
}

// missingSources devolve o nome da primeira tabela bruta que ainda não
// foi populada, ou vazio quando as três existem.
func (s *service) missingSources(ctx context.Context) (string, error) {
	sources := []struct {
		name   string
		exists func(context.Context) (bool, error)
	}{
		{"vendas", s.sales.Exists},
		{"vendedores", s.sellers.Exists},
		{"produtos", s.products.Exists},
	}

	for _, source := range sources {
		exists, err := source.exists(ctx)
		if err != nil {
			return "", fmt.Errorf("erro ao verificar a tabela %s: %w", source.name, err)
		}
		if !exists {
			return source.name, nil
		}
	}

	return "", nil
}

// explodeSale converte uma venda em uma linha analítica por item. Uma
// venda sem itens, ou com o campo de itens ilegível, ainda gera uma
// linha com as colunas de item vazias para não sumir dos totais.
func explodeSale(sale domain.SalesRecord, sellerNames map[string]string, productsByCode map[string]domain.ProductDimension) []domain.AnalyticalFact {
	items := decodeItems(sale)

	status := sale.Status
	if status == "" {
		status = domain.SaleStatusOK
	}

	sellerName, ok := sellerNames[sale.CodigoVendedor]
	if !ok || sellerName == "" {
		sellerName = domain.SellerNotFound
	}

	delivery := domain.DeliveryFlagFalse
	if sale.Entrega {
		delivery = domain.DeliveryFlagTrue
	}

	base := domain.AnalyticalFact{
		NumeroNota:            sale.NumeroNota,
		DataEmissao:           sale.DataEmissao,
		StatusVenda:           status,
		CodigoVendedor:        sale.CodigoVendedor,
		NomeVendedor:          sellerName,
		CondicaoPagamentoNome: paymentConditionName(sale),
		Entrega:               delivery,
		ValorTotalCusto:       utils.RoundWithTwoDecimalPlace(sale.ValorTotalCusto),
		ValorTotalBruto:       utils.RoundWithTwoDecimalPlace(sale.ValorTotalBruto),
		ValorTotalLiquido:     utils.RoundWithTwoDecimalPlace(sale.ValorTotalLiquido),
		QuantidadeProdutos:    sale.QuantidadeProdutos,
	}

	// Devoluções entram sempre negativas para as somas do painel.
	if status == domain.SaleStatusReturned {
		base.ValorTotalCusto = -math.Abs(base.ValorTotalCusto)
		base.ValorTotalBruto = -math.Abs(base.ValorTotalBruto)
		base.ValorTotalLiquido = -math.Abs(base.ValorTotalLiquido)
		base.QuantidadeProdutos = -math.Abs(base.QuantidadeProdutos)
	}

	if len(items) == 0 {
		fact := base
		fact.NomeProduto = domain.ProductNotFound
		fact.NomeGrupo = domain.GroupNotFound
		fact.NomeCategoria = domain.CategoryNotFound
		return []domain.AnalyticalFact{fact}
	}

	facts := make([]domain.AnalyticalFact, 0, len(items))
	for _, item := range items {
		fact := base
		fact.CodigoProduto = item.CodigoProduto
		fact.Quantidade = item.Quantidade
		fact.ValorUnitario = utils.RoundWithTwoDecimalPlace(item.ValorUnitario)
		fact.ValorTotalItem = utils.RoundWithTwoDecimalPlace(item.ValorTotalItem)

		if product, ok := productsByCode[item.CodigoProduto]; ok {
			fact.NomeProduto = product.Nome
			fact.NomeGrupo = product.NomeGrupo
			fact.NomeCategoria = product.NomeCategoria
		}
		if fact.NomeProduto == "" {
			fact.NomeProduto = domain.ProductNotFound
		}
		if fact.NomeGrupo == "" {
			fact.NomeGrupo = domain.GroupNotFound
		}
		if fact.NomeCategoria == "" {
			fact.NomeCategoria = domain.CategoryNotFound
		}

		facts = append(facts, fact)
	}

	return facts
}

func decodeItems(sale domain.SalesRecord) []domain.SaleItem {
	if len(sale.Itens) == 0 {
		return nil
	}

	var items []domain.SaleItem
	if err := jsoniter.Unmarshal(sale.Itens, &items); err != nil {
		logrus.WithFields(logrus.Fields{
			"numero_nota": sale.NumeroNota,
		}).WithError(err).Warn("Campo de itens ilegível, venda tratada como sem itens")
		return nil
	}

	return items
}

func paymentConditionName(sale domain.SalesRecord) string {
	if len(sale.CondicaoPagamento) == 0 {
		return ""
	}

	var condition domain.PaymentCondition
	if err := jsoniter.Unmarshal(sale.CondicaoPagamento, &condition); err != nil {
		return ""
	}

	return condition.Nome
}
