package domain

import "encoding/json"

// Status de uma venda após a reconciliação.
const (
	SaleStatusOK       = "OK"
	SaleStatusReturned = "DEVOLUÇÃO"
	SaleStatusDeleted  = "Excluída"
)

// Tipos de cancelamento reportados pelo gateway.
const (
	CancellationReturn   = "D"
	CancellationDeletion = "E"
)

// SalesRecord é uma nota de venda como mantida na tabela bruta 'vendas'.
// A chave natural é NumeroNota; eventos posteriores com a mesma chave
// substituem o registro inteiro, nunca parte dele.
type SalesRecord struct {
	NumeroNota         string  `json:"numeroNota"`
	DataEmissao        string  `json:"dataEmissao"`
	Status             string  `json:"status,omitempty"`
	CodigoVendedor     string  `json:"codigoVendedor,omitempty"`
	Entrega            bool    `json:"entrega,omitempty"`
	ValorTotalCusto    float64 `json:"valorTotalCusto,omitempty"`
	ValorTotalBruto    float64 `json:"valorTotalBruto,omitempty"`
	ValorTotalLiquido  float64 `json:"valorTotalLiquido,omitempty"`
	ValorTotal         float64 `json:"valorTotal,omitempty"`
	ValorDesconto      float64 `json:"valorDesconto,omitempty"`
	QuantidadeProdutos float64 `json:"quantidadeProdutos,omitempty"`

	// Estruturas embutidas, mantidas serializadas até a fronteira de
	// persistência. O pipeline de enriquecimento as decodifica.
	Itens             json.RawMessage `json:"itens,omitempty"`
	CondicaoPagamento json.RawMessage `json:"condicaoPagamento,omitempty"`
}

// CancellationEvent é um evento de cancelamento ou devolução vindo do
// endpoint de cancelamentos. Não é persistido isoladamente; é consumido
// apenas pela reconciliação, que o converte em um SalesRecord.
type CancellationEvent struct {
	SalesRecord
	TipoCancelamento string `json:"tipoCancelamento"`
}

// SaleItem é um item de venda embutido no campo serializado Itens.
type SaleItem struct {
	CodigoProduto  string  `json:"codigoProduto"`
	CodigoVendedor string  `json:"codigoVendedor,omitempty"`
	Quantidade     float64 `json:"quantidade,omitempty"`
	ValorUnitario  float64 `json:"valorUnitario,omitempty"`
	ValorTotalItem float64 `json:"valorTotalItem,omitempty"`
}

// PaymentCondition é a condição de pagamento embutida na venda.
type PaymentCondition struct {
	Codigo string `json:"codigo,omitempty"`
	Nome   string `json:"nome,omitempty"`
}
