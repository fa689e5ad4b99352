package domain

// SupplierDimension é um fornecedor da tabela de referência
// 'fornecedores', chaveado por Codigo.
type SupplierDimension struct {
	Codigo       string `json:"codigo"`
	RazaoSocial  string `json:"razaoSocial,omitempty"`
	NomeFantasia string `json:"nomeFantasia,omitempty"`
	CNPJ         string `json:"cnpj,omitempty"`
}
