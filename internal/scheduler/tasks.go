package scheduler

import (
	"context"

	"github.com/vfg2006/sgf-sync-api/internal/config"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/enriching"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/syncing"
)

// Nomes das tarefas do ciclo contínuo, usados também pelo disparo
// manual via API.
const (
	TaskSales     = "vendas"
	TaskProducts  = "produtos"
	TaskStock     = "estoque"
	TaskSellers   = "vendedores"
	TaskPurchases = "compras"
	TaskSuppliers = "fornecedores"
)

// DefaultTasks monta o ciclo padrão de sincronização. A tarefa de
// vendas reprocessa a tabela analítica logo após sincronizar, para o
// painel refletir o dia corrente sem esperar outro ciclo.
func DefaultTasks(cfg config.Sync, incremental syncing.IncrementalService, enricher enriching.Service) []Task {
	return []Task{
		{
			Name:     TaskSales,
			Interval: cfg.SalesInterval,
			Run: func(ctx context.Context) error {
				if err := incremental.SyncSales(ctx); err != nil {
					return err
				}
				return enricher.Rebuild(ctx)
			},
		},
		{
			Name:     TaskProducts,
			Interval: cfg.ProductsInterval,
			Run:      incremental.SyncProducts,
		},
		{
			Name:     TaskStock,
			Interval: cfg.StockInterval,
			Run:      incremental.SyncStock,
		},
		{
			Name:     TaskSellers,
			Interval: cfg.SellersInterval,
			Run:      incremental.RefreshSellers,
		},
		{
			Name:     TaskPurchases,
			Interval: cfg.PurchasesInterval,
			Run:      incremental.SyncPurchases,
		},
		{
			Name:     TaskSuppliers,
			Interval: cfg.SuppliersInterval,
			Run:      incremental.SyncSuppliers,
		},
	}
}
