package syncing

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/enriching"
)

type BootstrapService interface {
	InitialLoad(ctx context.Context) error
}

type bootstrapService struct {
	integrator  trier.Integrator
	backfill    BackfillService
	incremental IncrementalService
	enricher    enriching.Service
	sales       repository.SalesRepository
	purchases   repository.PurchasesRepository
	products    repository.ProductsRepository
	sellers     repository.SellersRepository
	suppliers   repository.SuppliersRepository
}

func NewBootstrapService(
	integrator trier.Integrator,
	backfill BackfillService,
	incremental IncrementalService,
	enricher enriching.Service,
	sales repository.SalesRepository,
	purchases repository.PurchasesRepository,
	products repository.ProductsRepository,
	sellers repository.SellersRepository,
	suppliers repository.SuppliersRepository,
) BootstrapService {
	return &bootstrapService{
		integrator:  integrator,
		backfill:    backfill,
		incremental: incremental,
		enricher:    enricher,
		sales:       sales,
		purchases:   purchases,
		products:    products,
		sellers:     sellers,
		suppliers:   suppliers,
	}
}

// InitialLoad executa as cargas pendentes na subida do serviço. Cada
// etapa verifica se a tabela correspondente já existe e só carrega o
// que falta; uma etapa que falha não impede as demais, pois a próxima
// subida ou o agendador retomam de onde parou.
func (s *bootstrapService) InitialLoad(ctx context.Context) error {
	logrus.Info("Verificando se a carga de dados inicial é necessária")

	if err := s.loadProducts(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga inicial de produtos")
	}
	if err := s.loadSellers(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga inicial de vendedores")
	}
	if err := s.loadSuppliers(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga inicial de fornecedores")
	}

	if err := s.loadSalesHistory(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga histórica de vendas")
	}
	if err := s.loadPurchasesHistory(ctx); err != nil {
		logrus.WithError(err).Error("Falha na carga histórica de compras")
	}

	logrus.Info("Verificação da carga inicial concluída")

	return nil
}

func (s *bootstrapService) loadProducts(ctx context.Context) error {
	exists, err := s.products.Exists(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar a tabela de produtos: %w", err)
	}
	if exists {
		return nil
	}

	logrus.Info("Realizando carga inicial completa de produtos")

	products, err := s.integrator.GetAllProducts(ctx)
	if err != nil {
		return fmt.Errorf("erro ao buscar o catálogo de produtos: %w", err)
	}

	return s.products.ReplaceAll(ctx, products)
}

func (s *bootstrapService) loadSellers(ctx context.Context) error {
	exists, err := s.sellers.Exists(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar a tabela de vendedores: %w", err)
	}
	if exists {
		return nil
	}

	return s.incremental.RefreshSellers(ctx)
}

func (s *bootstrapService) loadSuppliers(ctx context.Context) error {
	exists, err := s.suppliers.Exists(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar a tabela de fornecedores: %w", err)
	}
	if exists {
		return nil
	}

	logrus.Info("Realizando carga inicial de fornecedores")

	suppliers, err := s.integrator.GetAllSuppliers(ctx)
	if err != nil {
		return fmt.Errorf("erro ao buscar o cadastro de fornecedores: %w", err)
	}

	return s.suppliers.ReplaceAll(ctx, suppliers)
}

func (s *bootstrapService) loadSalesHistory(ctx context.Context) error {
	exists, err := s.sales.Exists(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar a tabela de vendas: %w", err)
	}
	if exists {
		return nil
	}

	if err := s.backfill.BackfillSales(ctx); err != nil {
		return err
	}

	// A tabela analítica nasce junto com o histórico para o painel não
	// ficar vazio até o primeiro ciclo do agendador.
	if err := s.enricher.Rebuild(ctx); err != nil {
		logrus.WithError(err).Error("Falha ao processar os dados analíticos após a carga histórica")
	}

	return nil
}

func (s *bootstrapService) loadPurchasesHistory(ctx context.Context) error {
	exists, err := s.purchases.Exists(ctx)
	if err != nil {
		return fmt.Errorf("erro ao verificar a tabela de compras: %w", err)
	}
	if exists {
		return nil
	}

	return s.backfill.BackfillPurchases(ctx)
}
