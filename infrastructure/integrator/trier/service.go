package trier

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sgf-sync-api/infrastructure/integrator/trier/trierclient"
	"github.com/vfg2006/sgf-sync-api/internal/domain"
)

// Endpoints de integração do gateway Trier SGF.
const (
	endpointChangedSales      = "/rest/integracao/venda/obter-alterados-v1"
	endpointSaleCancellations = "/rest/integracao/venda/cancelamento/obter-todos-v1"
	endpointChangedPurchases  = "/rest/integracao/compra/obter-alterados-v1"
	endpointAllProducts       = "/rest/integracao/produto/obter-todos-v1"
	endpointChangedProducts   = "/rest/integracao/produto/obter-alterados-v1"
	endpointStockMovements    = "/rest/integracao/estoque/obter-alterados-v1"
	endpointAllSellers        = "/rest/integracao/vendedor/obter-todos-v1"
	endpointAllSuppliers      = "/rest/integracao/fornecedor/obter-todos-v1"
	endpointChangedSuppliers  = "/rest/integracao/fornecedor/obter-alterados-v1"
)

const dateLayout = "2006-01-02"

type Integrator interface {
	GetChangedSales(ctx context.Context, start, end time.Time) ([]domain.SalesRecord, error)
	GetSaleCancellations(ctx context.Context, start, end time.Time) ([]domain.CancellationEvent, error)
	GetChangedPurchases(ctx context.Context, start, end time.Time) ([]domain.PurchaseRecord, error)
	GetAllProducts(ctx context.Context) ([]domain.ProductDimension, error)
	GetChangedProducts(ctx context.Context, day time.Time) ([]domain.ProductDimension, error)
	GetStockMovements(ctx context.Context, day time.Time) ([]domain.StockMovement, error)
	GetAllSellers(ctx context.Context) ([]domain.SellerDimension, error)
	GetAllSuppliers(ctx context.Context) ([]domain.SupplierDimension, error)
	GetChangedSuppliers(ctx context.Context, day time.Time) ([]domain.SupplierDimension, error)
}

type integrator struct {
	client trierclient.Client
}

func NewIntegrator(client trierclient.Client) Integrator {
	return &integrator{client: client}
}

func periodParams(start, end time.Time) url.Values {
	return url.Values{
		"dataInicial": []string{start.Format(dateLayout)},
		"dataFinal":   []string{end.Format(dateLayout)},
	}
}

// decodeRecords converte os registros brutos de uma resposta paginada.
// Um registro que não decodifica é registrado e descartado em vez de
// derrubar o lote inteiro.
func decodeRecords[T any](records []json.RawMessage, endpoint string) []T {
	decoded := make([]T, 0, len(records))
	for _, raw := range records {
		var item T
		if err := jsoniter.Unmarshal(raw, &item); err != nil {
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
			}).WithError(err).Warn("Registro inválido descartado")
			continue
		}
		decoded = append(decoded, item)
	}

	return decoded
}
