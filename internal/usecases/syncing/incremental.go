package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/reconciling"
)

type IncrementalService interface {
	SyncSales(ctx context.Context) error
	SyncPurchases(ctx context.Context) error
	SyncProducts(ctx context.Context) error
	SyncStock(ctx context.Context) error
	RefreshSellers(ctx context.Context) error
	SyncSuppliers(ctx context.Context) error
}

type incrementalService struct {
	integrator trier.Integrator
	sales      repository.SalesRepository
	purchases  repository.PurchasesRepository
	products   repository.ProductsRepository
	sellers    repository.SellersRepository
	suppliers  repository.SuppliersRepository
	now        func() time.Time
}

func NewIncrementalService(
	integrator trier.Integrator,
	sales repository.SalesRepository,
	purchases repository.PurchasesRepository,
	products repository.ProductsRepository,
	sellers repository.SellersRepository,
	suppliers repository.SuppliersRepository,
) IncrementalService {
	return &incrementalService{
		integrator: integrator,
		sales:      sales,
		purchases:  purchases,
		products:   products,
		sellers:    sellers,
		suppliers:  suppliers,
		now:        time.Now,
	}
}

// SyncSales busca as vendas criadas, alteradas ou canceladas no dia
// corrente. As versões antigas das notas afetadas são removidas e as
// versões consolidadas entram no lugar, sem reescrever a tabela toda.
func (s *incrementalService) SyncSales(ctx context.Context) error {
	today := s.now()

	changed, err := s.integrator.GetChangedSales(ctx, today, today)
	if err != nil {
		return fmt.Errorf("erro ao buscar as vendas do dia: %w", err)
	}

	cancellations, err := s.integrator.GetSaleCancellations(ctx, today, today)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao buscar cancelamentos do dia, seguindo sem eventos")
		cancellations = nil
	}

	if len(changed) == 0 && len(cancellations) == 0 {
		logrus.Info("Nenhuma venda nova, alterada ou cancelada para processar")
		return nil
	}

	merged := reconciling.Merge(changed, cancellations)

	// A remoção cobre toda nota presente na resposta do dia: um evento
	// com tipo de cancelamento desconhecido não entra na consolidação,
	// mas a versão antiga da nota ainda sai da tabela.
	seen := make(map[string]struct{}, len(changed)+len(cancellations))
	keys := make([]string, 0, len(changed)+len(cancellations))
	collect := func(numeroNota string) {
		if _, ok := seen[numeroNota]; ok {
			return
		}
		seen[numeroNota] = struct{}{}
		keys = append(keys, numeroNota)
	}
	for _, sale := range changed {
		collect(sale.NumeroNota)
	}
	for _, event := range cancellations {
		collect(event.NumeroNota)
	}

	if err := s.sales.DeleteByKeys(ctx, keys); err != nil {
		return fmt.Errorf("erro ao remover as versões antigas das vendas: %w", err)
	}
	if err := s.sales.AppendAll(ctx, merged); err != nil {
		return fmt.Errorf("erro ao gravar as vendas atualizadas: %w", err)
	}

	logrus.WithField("records", len(merged)).Info("Vendas do dia sincronizadas")

	return nil
}

// SyncPurchases aplica às notas de compra a mesma atualização pontual
// das vendas, sem a etapa de cancelamentos.
func (s *incrementalService) SyncPurchases(ctx context.Context) error {
	today := s.now()

	changed, err := s.integrator.GetChangedPurchases(ctx, today, today)
	if err != nil {
		return fmt.Errorf("erro ao buscar as compras do dia: %w", err)
	}
	if len(changed) == 0 {
		logrus.Info("Nenhuma compra nova ou alterada para processar")
		return nil
	}

	deduped := reconciling.DedupeLast(changed, func(purchase domain.PurchaseRecord) string {
		return purchase.NumeroNotaFiscal
	})

	keys := make([]string, 0, len(deduped))
	for _, purchase := range deduped {
		keys = append(keys, purchase.NumeroNotaFiscal)
	}

	if err := s.purchases.DeleteByKeys(ctx, keys); err != nil {
		return fmt.Errorf("erro ao remover as versões antigas das compras: %w", err)
	}
	if err := s.purchases.AppendAll(ctx, deduped); err != nil {
		return fmt.Errorf("erro ao gravar as compras atualizadas: %w", err)
	}

	logrus.WithField("records", len(deduped)).Info("Compras do dia sincronizadas")

	return nil
}

// SyncProducts mescla os produtos alterados no dia com o catálogo
// local, mantendo a versão mais recente de cada código.
func (s *incrementalService) SyncProducts(ctx context.Context) error {
	today := s.now()

	changed, err := s.integrator.GetChangedProducts(ctx, today)
	if err != nil {
		return fmt.Errorf("erro ao buscar os produtos alterados: %w", err)
	}
	if len(changed) == 0 {
		logrus.Info("Nenhum produto alterado para sincronizar")
		return nil
	}

	existing, err := s.products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar o catálogo de produtos: %w", err)
	}

	merged := reconciling.DedupeLast(append(existing, changed...), func(product domain.ProductDimension) string {
		return product.Codigo
	})

	if err := s.products.ReplaceAll(ctx, merged); err != nil {
		return fmt.Errorf("erro ao salvar o catálogo de produtos: %w", err)
	}

	logrus.WithField("changed", len(changed)).Info("Produtos sincronizados")

	return nil
}

// SyncStock aplica os saldos de estoque do dia sobre o catálogo de
// produtos. Apenas a quantidade em estoque muda; movimentos de códigos
// fora do catálogo são ignorados.
func (s *incrementalService) SyncStock(ctx context.Context) error {
	today := s.now()

	movements, err := s.integrator.GetStockMovements(ctx, today)
	if err != nil {
		return fmt.Errorf("erro ao buscar as movimentações de estoque: %w", err)
	}
	if len(movements) == 0 {
		logrus.Info("Nenhuma alteração de estoque para sincronizar")
		return nil
	}

	products, err := s.products.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar o catálogo de produtos: %w", err)
	}
	if len(products) == 0 {
		logrus.Warn("Catálogo de produtos vazio, execute a carga de produtos antes de atualizar o estoque")
		return nil
	}

	balances := make(map[string]float64, len(movements))
	for _, movement := range movements {
		balances[movement.CodigoProduto] = movement.QuantidadeEstoque
	}

	for index, product := range products {
		if balance, ok := balances[product.Codigo]; ok {
			products[index].QuantidadeEstoque = balance
		}
	}

	if err := s.products.ReplaceAll(ctx, products); err != nil {
		return fmt.Errorf("erro ao salvar o catálogo com o estoque atualizado: %w", err)
	}

	logrus.WithField("movements", len(movements)).Info("Estoque sincronizado")

	return nil
}

// RefreshSellers substitui o cadastro de vendedores pela lista
// completa do gateway. O cadastro é pequeno, então a troca integral é
// mais simples que um diff.
func (s *incrementalService) RefreshSellers(ctx context.Context) error {
	sellers, err := s.integrator.GetAllSellers(ctx)
	if err != nil {
		return fmt.Errorf("erro ao buscar o cadastro de vendedores: %w", err)
	}

	if err := s.sellers.ReplaceAll(ctx, sellers); err != nil {
		return fmt.Errorf("erro ao salvar o cadastro de vendedores: %w", err)
	}

	logrus.WithField("sellers", len(sellers)).Info("Cadastro de vendedores atualizado")

	return nil
}

// SyncSuppliers mescla os fornecedores alterados no dia com o cadastro
// local, mantendo a versão mais recente de cada código.
func (s *incrementalService) SyncSuppliers(ctx context.Context) error {
	today := s.now()

	changed, err := s.integrator.GetChangedSuppliers(ctx, today)
	if err != nil {
		return fmt.Errorf("erro ao buscar os fornecedores alterados: %w", err)
	}
	if len(changed) == 0 {
		logrus.Info("Nenhum fornecedor novo ou alterado para processar")
		return nil
	}

	existing, err := s.suppliers.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar o cadastro de fornecedores: %w", err)
	}

	merged := reconciling.DedupeLast(append(existing, changed...), func(supplier domain.SupplierDimension) string {
		return supplier.Codigo
	})

	if err := s.suppliers.ReplaceAll(ctx, merged); err != nil {
		return fmt.Errorf("erro ao salvar o cadastro de fornecedores: %w", err)
	}

	logrus.WithField("changed", len(changed)).Info("Fornecedores sincronizados")

	return nil
}
