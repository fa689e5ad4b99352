package domain

// SellerDimension é um vendedor da tabela de referência 'vendedores',
// chaveado por Codigo.
type SellerDimension struct {
	Codigo string `json:"codigo"`
	Nome   string `json:"nome,omitempty"`
	Ativo  bool   `json:"ativo,omitempty"`
}
