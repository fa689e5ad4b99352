package handler

import (
	"context"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/internal/usecases/reporting"
	"github.com/vfg2006/sgf-sync-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetProcessedSales devolve a tabela analítica consumida pelo painel.
func GetProcessedSales(service reporting.Service) http.HandlerFunc {
	return reportHandler("vendas_processadas", func(ctx context.Context) (any, error) {
		return service.ProcessedSales(ctx)
	})
}

func GetPurchases(service reporting.Service) http.HandlerFunc {
	return reportHandler("compras", func(ctx context.Context) (any, error) {
		return service.Purchases(ctx)
	})
}

func GetProducts(service reporting.Service) http.HandlerFunc {
	return reportHandler("produtos", func(ctx context.Context) (any, error) {
		return service.Products(ctx)
	})
}

func GetSellers(service reporting.Service) http.HandlerFunc {
	return reportHandler("vendedores", func(ctx context.Context) (any, error) {
		return service.Sellers(ctx)
	})
}

func GetSuppliers(service reporting.Service) http.HandlerFunc {
	return reportHandler("fornecedores", func(ctx context.Context) (any, error) {
		return service.Suppliers(ctx)
	})
}

func reportHandler(table string, fetch func(ctx context.Context) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := fetch(r.Context())
		if err != nil {
			logrus.WithField("table", table).WithError(err).Error("Erro ao carregar o relatório")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao carregar o relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(rows); err != nil {
			logrus.WithField("table", table).WithError(err).Warn("Erro ao escrever a resposta do relatório")
		}
	}
}
