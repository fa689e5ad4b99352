// Package reporting expõe leituras das tabelas consolidadas para o
// painel, com um cache de curta duração por tabela para as consultas
// repetidas não irem ao banco a cada requisição.
package reporting

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository"
	"github.com/vfg2006/sgf-sync-api/internal/config"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

type Service interface {
	ProcessedSales(ctx context.Context) ([]domain.AnalyticalFact, error)
	Purchases(ctx context.Context) ([]domain.PurchaseRecord, error)
	Products(ctx context.Context) ([]domain.ProductDimension, error)
	Sellers(ctx context.Context) ([]domain.SellerDimension, error)
	Suppliers(ctx context.Context) ([]domain.SupplierDimension, error)
}

type cacheEntry[T any] struct {
	mu        sync.Mutex
	rows      []T
	fetchedAt time.Time
}

// get devolve as linhas do cache quando ainda válidas, senão busca no
// repositório e renova o carimbo.
func (c *cacheEntry[T]) get(ctx context.Context, ttl time.Duration, now func() time.Time, fetch func(context.Context) ([]T, error)) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && now().Sub(c.fetchedAt) < ttl {
		return c.rows, nil
	}

	rows, err := fetch(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar a tabela para o relatório")
	}

	c.rows = rows
	c.fetchedAt = now()

	return rows, nil
}

type service struct {
	cfg       config.Reporting
	facts     repository.FactsRepository
	purchases repository.PurchasesRepository
	products  repository.ProductsRepository
	sellers   repository.SellersRepository
	suppliers repository.SuppliersRepository
	now       func() time.Time

	factsCache     cacheEntry[domain.AnalyticalFact]
	purchasesCache cacheEntry[domain.PurchaseRecord]
	productsCache  cacheEntry[domain.ProductDimension]
	sellersCache   cacheEntry[domain.SellerDimension]
	suppliersCache cacheEntry[domain.SupplierDimension]
}

func NewService(
	cfg config.Reporting,
	facts repository.FactsRepository,
	purchases repository.PurchasesRepository,
	products repository.ProductsRepository,
	sellers repository.SellersRepository,
	suppliers repository.SuppliersRepository,
) Service {
	return &service{
		cfg:       cfg,
		facts:     facts,
		purchases: purchases,
		products:  products,
		sellers:   sellers,
		suppliers: suppliers,
		now:       time.Now,
	}
}

func (s *service) ProcessedSales(ctx context.Context) ([]domain.AnalyticalFact, error) {
	return s.factsCache.get(ctx, s.cfg.CacheTTL, s.now, s.facts.ListAll)
}

func (s *service) Purchases(ctx context.Context) ([]domain.PurchaseRecord, error) {
	return s.purchasesCache.get(ctx, s.cfg.CacheTTL, s.now, s.purchases.ListAll)
}

func (s *service) Products(ctx context.Context) ([]domain.ProductDimension, error) {
	return s.productsCache.get(ctx, s.cfg.CacheTTL, s.now, s.products.ListAll)
}

func (s *service) Sellers(ctx context.Context) ([]domain.SellerDimension, error) {
	return s.sellersCache.get(ctx, s.cfg.CacheTTL, s.now, s.sellers.ListAll)
}

func (s *service) Suppliers(ctx context.Context) ([]domain.SupplierDimension, error) {
	return s.suppliersCache.get(ctx, s.cfg.CacheTTL, s.now, s.suppliers.ListAll)
}
