package dto

import "github.com/shopspring/decimal"

type TotalPorFormaPagamento struct {
	Forma string          `json:"forma"`
	Valor decimal.Decimal `json:"valor"`
}

type RelatorioVendasResponse struct {
	Inicio            string                   `json:"inicio"`
	Fim               string                   `json:"fim"`
	TotalVendas       int64                    `json:"total_vendas"`
	Faturamento       decimal.Decimal          `json:"faturamento"`
	DescontoTotal     decimal.Decimal          `json:"desconto_total"`
	TicketMedio       decimal.Decimal          `json:"ticket_medio"`
	PorFormaPagamento []TotalPorFormaPagamento `json:"por_forma_pagamento"`
}

type ProdutoMaisVendido struct {
	ProdutoID       string          `json:"produto_id"`
	Descricao       string          `json:"descricao"`
	QuantidadeTotal int             `json:"quantidade_total"`
	ValorTotal      decimal.Decimal `json:"valor_total"`
}

type VendasPorVendedor struct {
	UsuarioID   string          `json:"usuario_id"`
	Vendedor    string          `json:"vendedor"`
	TotalVendas int64           `json:"total_vendas"`
	Faturamento decimal.Decimal `json:"faturamento"`
}
