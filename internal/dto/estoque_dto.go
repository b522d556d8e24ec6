package dto

import "github.com/shopspring/decimal"

type MovimentacaoRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Tipo       string `json:"tipo"       validate:"required,oneof=entrada saida ajuste"`
	Quantidade int    `json:"quantidade" validate:"required"`
	Observacao string `json:"observacao"`
}

type MovimentacaoFilter struct {
	ProdutoID string `form:"produto_id"`
	Inicio    string `form:"inicio"`
	Fim       string `form:"fim"`
	Tipo      string `form:"tipo"`
}

type MovimentacaoResponse struct {
	ID                 string `json:"id"`
	ProdutoID          string `json:"produto_id"`
	Produto            string `json:"produto,omitempty"`
	Tipo               string `json:"tipo"`
	Quantidade         int    `json:"quantidade"`
	QuantidadeAnterior int    `json:"quantidade_anterior"`
	QuantidadeNova     int    `json:"quantidade_nova"`
	Observacao         string `json:"observacao"`
	CreatedAt          string `json:"created_at"`
}

type AlertaEstoqueResponse struct {
	ProdutoID     string `json:"produto_id"`
	Descricao     string `json:"descricao"`
	Referencia    string `json:"referencia"`
	Quantidade    int    `json:"quantidade"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}

type ValorEstoqueResponse struct {
	ValorTotal decimal.Decimal `json:"valor_total"`
}

type ProdutoSemMovimentacaoResponse struct {
	ProdutoID          string  `json:"produto_id"`
	Descricao          string  `json:"descricao"`
	Quantidade         int     `json:"quantidade"`
	UltimaMovimentacao *string `json:"ultima_movimentacao"` // nil = nunca movimentou
}
