// Package syncing orquestra a movimentação de dados entre o gateway
// Trier SGF e o banco local: cargas históricas por janelas com
// checkpoint, atualizações incrementais do dia e a carga inicial das
// dimensões.
package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier"
	"github.com/vfg2006/sgf-sync-api/infrastructure/repository"
	"github.com/vfg2006/sgf-sync-api/internal/config"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/reconciling"
)

// Identificadores das tarefas retomáveis na tabela de checkpoints.
const (
	TaskBackfillSales     = "carga_historica_vendas"
	TaskBackfillPurchases = "carga_historica_compras"
)

const dateLayout = "2006-01-02"

type BackfillService interface {
	BackfillSales(ctx context.Context) error
	BackfillPurchases(ctx context.Context) error
}

type backfillService struct {
	cfg         config.Sync
	integrator  trier.Integrator
	sales       repository.SalesRepository
	purchases   repository.PurchasesRepository
	checkpoints repository.CheckpointRepository
	now         func() time.Time
}

func NewBackfillService(
	cfg config.Sync,
	integrator trier.Integrator,
	sales repository.SalesRepository,
	purchases repository.PurchasesRepository,
	checkpoints repository.CheckpointRepository,
) BackfillService {
	return &backfillService{
		cfg:         cfg,
		integrator:  integrator,
		sales:       sales,
		purchases:   purchases,
		checkpoints: checkpoints,
		now:         time.Now,
	}
}

// BackfillSales percorre o histórico de vendas em janelas de dias
// fixas desde a data inicial configurada, ou desde o checkpoint quando
// uma execução anterior foi interrompida. Cada janela concluída grava
// o checkpoint com a data de INÍCIO da janela, de modo que a retomada
// recomeça exatamente na janela seguinte.
func (s *backfillService) BackfillSales(ctx context.Context) error {
	windowStart, err := s.resumeDate(ctx, TaskBackfillSales)
	if err != nil {
		return err
	}

	// O fim do histórico é congelado aqui: janelas novas que surgirem
	// durante uma carga longa ficam para a sincronização incremental.
	end := s.now()

	accumulated, err := s.sales.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar as vendas existentes: %w", err)
	}

	for !windowStart.After(end) {
		windowEnd := windowStart.AddDate(0, 0, s.cfg.WindowDays-1)
		if windowEnd.After(end) {
			windowEnd = end
		}

		logrus.WithFields(logrus.Fields{
			"task":         TaskBackfillSales,
			"window_start": windowStart.Format(dateLayout),
			"window_end":   windowEnd.Format(dateLayout),
		}).Info("Processando janela de vendas")

		batch, err := s.fetchSalesWindow(ctx, windowStart, windowEnd)
		if err != nil {
			return err
		}

		if len(batch) > 0 {
			accumulated = reconciling.DedupeLast(append(accumulated, batch...), func(sale domain.SalesRecord) string {
				return sale.NumeroNota
			})
			if err := s.sales.ReplaceAll(ctx, accumulated); err != nil {
				return fmt.Errorf("erro ao salvar a janela de vendas: %w", err)
			}
		} else {
			logrus.Info("Nenhuma venda nova para salvar nesta janela")
		}

		if err := s.checkpoints.Save(ctx, TaskBackfillSales, windowStart.Format(dateLayout)); err != nil {
			return fmt.Errorf("erro ao salvar o checkpoint da janela: %w", err)
		}

		windowStart = windowStart.AddDate(0, 0, s.cfg.WindowDays)
	}

	logrus.WithField("task", TaskBackfillSales).Info("Carga histórica de vendas concluída")

	return s.checkpoints.Clear(ctx, TaskBackfillSales)
}

// fetchSalesWindow busca as vendas e os cancelamentos de uma janela e
// devolve o lote já consolidado. Uma falha nas vendas aborta a janela;
// uma falha nos cancelamentos é tolerada e tratada como janela sem
// eventos, pois a próxima passagem pelo período os recupera.
func (s *backfillService) fetchSalesWindow(ctx context.Context, start, end time.Time) ([]domain.SalesRecord, error) {
	sales, err := s.integrator.GetChangedSales(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as vendas da janela: %w", err)
	}

	cancellations, err := s.integrator.GetSaleCancellations(ctx, start, end)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao buscar cancelamentos da janela, seguindo sem eventos")
		cancellations = nil
	}

	return reconciling.Merge(sales, cancellations), nil
}

// BackfillPurchases espelha a carga histórica de vendas para as notas
// de compra, sem a etapa de cancelamentos.
func (s *backfillService) BackfillPurchases(ctx context.Context) error {
	windowStart, err := s.resumeDate(ctx, TaskBackfillPurchases)
	if err != nil {
		return err
	}

	end := s.now()

	accumulated, err := s.purchases.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("erro ao carregar as compras existentes: %w", err)
	}

	for !windowStart.After(end) {
		windowEnd := windowStart.AddDate(0, 0, s.cfg.WindowDays-1)
		if windowEnd.After(end) {
			windowEnd = end
		}

		logrus.WithFields(logrus.Fields{
			"task":         TaskBackfillPurchases,
			"window_start": windowStart.Format(dateLayout),
			"window_end":   windowEnd.Format(dateLayout),
		}).Info("Processando janela de compras")

		batch, err := s.integrator.GetChangedPurchases(ctx, windowStart, windowEnd)
		if err != nil {
			return fmt.Errorf("erro ao buscar as compras da janela: %w", err)
		}

		if len(batch) > 0 {
			accumulated = reconciling.DedupeLast(append(accumulated, batch...), func(purchase domain.PurchaseRecord) string {
				return purchase.NumeroNotaFiscal
			})
			if err := s.purchases.ReplaceAll(ctx, accumulated); err != nil {
				return fmt.Errorf("erro ao salvar a janela de compras: %w", err)
			}
		} else {
			logrus.Info("Nenhuma compra encontrada para a janela")
		}

		if err := s.checkpoints.Save(ctx, TaskBackfillPurchases, windowStart.Format(dateLayout)); err != nil {
			return fmt.Errorf("erro ao salvar o checkpoint da janela: %w", err)
		}

		windowStart = windowStart.AddDate(0, 0, s.cfg.WindowDays)
	}

	logrus.WithField("task", TaskBackfillPurchases).Info("Carga histórica de compras concluída")

	return s.checkpoints.Clear(ctx, TaskBackfillPurchases)
}

// resumeDate resolve a primeira janela pendente de uma tarefa: a data
// histórica configurada quando não há checkpoint, ou a janela seguinte
// à última concluída.
func (s *backfillService) resumeDate(ctx context.Context, taskID string) (time.Time, error) {
	checkpoint, err := s.checkpoints.Load(ctx, taskID)
	if err != nil {
		return time.Time{}, fmt.Errorf("erro ao carregar o checkpoint da tarefa: %w", err)
	}

	start, err := time.Parse(dateLayout, s.cfg.HistoricalStartDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("erro ao interpretar a data inicial do histórico: %w", err)
	}

	if checkpoint == nil {
		return start, nil
	}

	last, err := time.Parse(dateLayout, checkpoint.LastCompletedDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("erro ao interpretar a data do checkpoint: %w", err)
	}

	return last.AddDate(0, 0, s.cfg.WindowDays), nil
}
