package dto

import "github.com/shopspring/decimal"

type CriarClienteRequest struct {
	Nome     string  `json:"nome" validate:"required,min=2"`
	CPF      *string `json:"cpf"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}

type AtualizarClienteRequest struct {
	Nome     *string `json:"nome" validate:"omitempty,min=2"`
	CPF      *string `json:"cpf"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}

type ClienteResponse struct {
	ID       string  `json:"id"`
	Nome     string  `json:"nome"`
	CPF      *string `json:"cpf"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
	Endereco *string `json:"endereco"`
}

// HistoricoComprasResponse resume as compras de um cliente.
type HistoricoComprasResponse struct {
	Cliente      ClienteResponse `json:"cliente"`
	TotalCompras int64           `json:"total_compras"`
	ValorTotal   decimal.Decimal `json:"valor_total"`
	Vendas       []VendaResponse `json:"vendas"`
}
