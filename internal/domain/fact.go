package domain

// Rótulos usados quando uma junção não encontra a dimensão.
const (
	SellerNotFound    = "Não encontrado"
	ProductNotFound   = "Não encontrado"
	GroupNotFound     = "Não encontrado"
	CategoryNotFound  = "Sem Categoria"
	DeliveryFlagTrue  = "SIM"
	DeliveryFlagFalse = "NÃO"
)

// AnalyticalFact é uma linha da tabela analítica 'vendas_processadas':
// uma venda explodida por item, enriquecida com as dimensões de
// vendedor e produto. Reconstruída por inteiro a cada enriquecimento,
// não tem identidade própria.
type AnalyticalFact struct {
	NumeroNota            string  `json:"numeroNota"`
	DataEmissao           string  `json:"dataEmissao"`
	StatusVenda           string  `json:"statusVenda"`
	CodigoVendedor        string  `json:"codigoVendedor"`
	NomeVendedor          string  `json:"nomeVendedor"`
	CodigoProduto         string  `json:"codigoProduto"`
	NomeProduto           string  `json:"nomeProduto"`
	NomeGrupo             string  `json:"nomeGrupo"`
	NomeCategoria         string  `json:"nomeCategoria"`
	CondicaoPagamentoNome string  `json:"condicaoPagamentoNome"`
	Entrega               string  `json:"entrega"`
	Quantidade            float64 `json:"quantidade"`
	ValorUnitario         float64 `json:"valorUnitario"`
	ValorTotalItem        float64 `json:"valorTotalItem"`
	ValorTotalCusto       float64 `json:"valorTotalCusto"`
	ValorTotalBruto       float64 `json:"valorTotalBruto"`
	ValorTotalLiquido     float64 `json:"valorTotalLiquido"`
	QuantidadeProdutos    float64 `json:"quantidadeProdutos"`
}
