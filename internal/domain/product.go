package domain

// ProductDimension é um produto da tabela de referência 'produtos',
// chaveado por Codigo. A quantidade de estoque é o único campo
// atualizado isoladamente, pela sincronização de estoque.
type ProductDimension struct {
	Codigo            string  `json:"codigo"`
	Nome              string  `json:"nome,omitempty"`
	NomeGrupo         string  `json:"nomeGrupo,omitempty"`
	NomeCategoria     string  `json:"nomeCategoria,omitempty"`
	PrecoVenda        float64 `json:"precoVenda,omitempty"`
	QuantidadeEstoque float64 `json:"quantidadeEstoque,omitempty"`
}

// StockMovement é uma alteração de estoque reportada pelo gateway.
// Consumida apenas pela sincronização de estoque; não é persistida.
type StockMovement struct {
	CodigoProduto     string  `json:"codigoProduto"`
	QuantidadeEstoque float64 `json:"quantidadeEstoque"`
}
