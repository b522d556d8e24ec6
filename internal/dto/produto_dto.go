package dto

import "github.com/shopspring/decimal"

type CriarProdutoRequest struct {
	CodigoBarras  string          `json:"codigo_barras"  validate:"required"`
	Referencia    string          `json:"referencia"`
	Descricao     string          `json:"descricao"      validate:"required"`
	Genero        string          `json:"genero"         validate:"omitempty,oneof=menino menina unissex"`
	Marca         string          `json:"marca"`
	Tamanho       string          `json:"tamanho"`
	Preco         decimal.Decimal `json:"preco"          validate:"required"`
	Quantidade    int             `json:"quantidade"     validate:"min=0"`
	EstoqueMinimo int             `json:"estoque_minimo" validate:"min=0"`
}

type AtualizarProdutoRequest struct {
	Referencia    *string          `json:"referencia"`
	Descricao     *string          `json:"descricao"`
	Genero        *string          `json:"genero" validate:"omitempty,oneof=menino menina unissex"`
	Marca         *string          `json:"marca"`
	Tamanho       *string          `json:"tamanho"`
	Preco         *decimal.Decimal `json:"preco"`
	EstoqueMinimo *int             `json:"estoque_minimo" validate:"omitempty,min=0"`
}

// ProdutoFilter é vinculado da query string de GET /v1/produtos.
// Termo busca em codigo_barras, referencia e descricao (parcial, sem caixa).
type ProdutoFilter struct {
	Termo             string `form:"termo"`
	ApenasDisponiveis bool   `form:"apenas_disponiveis,default=true"`
}

type ProdutoResponse struct {
	ID            string          `json:"id"`
	CodigoBarras  string          `json:"codigo_barras"`
	Referencia    string          `json:"referencia"`
	Descricao     string          `json:"descricao"`
	Genero        string          `json:"genero"`
	Marca         string          `json:"marca"`
	Tamanho       string          `json:"tamanho"`
	Preco         decimal.Decimal `json:"preco"`
	Quantidade    int             `json:"quantidade"`
	EstoqueMinimo int             `json:"estoque_minimo"`
}
