package domain

import "encoding/json"

// PurchaseRecord é uma nota de compra da tabela bruta 'compras'.
// A chave natural é NumeroNotaFiscal.
type PurchaseRecord struct {
	NumeroNotaFiscal string          `json:"numeroNotaFiscal"`
	DataEntrada      string          `json:"dataEntrada,omitempty"`
	CodigoFornecedor string          `json:"codigoFornecedor,omitempty"`
	ValorTotal       float64         `json:"valorTotal,omitempty"`
	Itens            json.RawMessage `json:"itens,omitempty"`
}
