// Package reconciling consolida o lote de vendas de um período com os
// eventos de cancelamento do mesmo período, produzindo uma visão final
// com uma linha por nota.
package reconciling

import (
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

// Merge aplica os eventos de cancelamento sobre o lote base de vendas.
//
// Devoluções (tipo "D") entram como linhas de estorno: os valores e a
// quantidade trocam de sinal e o status vira DEVOLUÇÃO. Exclusões
// (tipo "E") entram com o status Excluída. A ordem de precedência é
// base, devoluções e exclusões: quando a mesma nota aparece mais de
// uma vez, vale a última ocorrência.
func Merge(base []domain.SalesRecord, events []domain.CancellationEvent) []domain.SalesRecord {
	merged := make([]domain.SalesRecord, 0, len(base)+len(events))

	for _, sale := range base {
		if sale.Status == "" {
			sale.Status = domain.SaleStatusOK
		}
		merged = append(merged, sale)
	}

	for _, event := range events {
		if event.TipoCancelamento != domain.CancellationReturn {
			continue
		}
		merged = append(merged, asReturn(event.SalesRecord))
	}

	for _, event := range events {
		if event.TipoCancelamento != domain.CancellationDeletion {
			continue
		}
		record := event.SalesRecord
		record.Status = domain.SaleStatusDeleted
		merged = append(merged, record)
	}

	return DedupeLast(merged, func(sale domain.SalesRecord) string {
		return sale.NumeroNota
	})
}

func asReturn(sale domain.SalesRecord) domain.SalesRecord {
	sale.Status = domain.SaleStatusReturned
	sale.ValorTotalCusto = -sale.ValorTotalCusto
	sale.ValorTotalBruto = -sale.ValorTotalBruto
	sale.ValorTotalLiquido = -sale.ValorTotalLiquido
	sale.ValorTotal = -sale.ValorTotal
	sale.ValorDesconto = -sale.ValorDesconto
	sale.QuantidadeProdutos = -sale.QuantidadeProdutos

	return sale
}

// DedupeLast remove duplicatas mantendo a última ocorrência de cada
// chave e preservando a ordem relativa das entradas sobreviventes.
func DedupeLast[T any](items []T, key func(T) string) []T {
	last := make(map[string]int, len(items))
	for index, item := range items {
		last[key(item)] = index
	}

	deduped := make([]T, 0, len(last))
	for index, item := range items {
		if last[key(item)] == index {
			deduped = append(deduped, item)
		}
	}

	return deduped
}
