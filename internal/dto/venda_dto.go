package dto

import "github.com/shopspring/decimal"

// ─── Requests ────────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  string `json:"produto_id" validate:"required,uuid"`
	Quantidade int    `json:"quantidade" validate:"required,min=1"`
}

// PagamentoRequest carrega uma forma de pagamento. Os campos condicionais
// (Parcelas, ValorRecebido, Troco) são validados por forma no serviço:
// parcelas só para cartão de crédito, recebido/troco só para dinheiro.
type PagamentoRequest struct {
	Forma         string           `json:"forma"          validate:"required,oneof=dinheiro cartao_credito cartao_debito pix"`
	Valor         decimal.Decimal  `json:"valor"          validate:"required"`
	Parcelas      *int             `json:"parcelas"       validate:"omitempty,min=1,max=12"`
	ValorRecebido *decimal.Decimal `json:"valor_recebido" validate:"omitempty"`
	Troco         *decimal.Decimal `json:"troco"          validate:"omitempty"`
}

type FinalizarVendaRequest struct {
	Itens []ItemVendaRequest `json:"itens" validate:"required,min=1,dive"`
	// No máximo um dos dois descontos pode ser informado.
	DescontoPercentual *decimal.Decimal   `json:"desconto_percentual"`
	DescontoValor      *decimal.Decimal   `json:"desconto_valor"`
	Pagamentos         []PagamentoRequest `json:"pagamentos" validate:"required,min=1,dive"`
	ClienteID          *string            `json:"cliente_id" validate:"omitempty,uuid"`
}

type CancelarVendaRequest struct {
	Motivo string `json:"motivo" validate:"required,min=5"`
}

// VendaFilter é vinculado da query string de GET /v1/vendas.
type VendaFilter struct {
	Inicio    string `form:"inicio"` // ISO date; vazio = sem limite
	Fim       string `form:"fim"`
	UsuarioID string `form:"usuario_id"`
	ClienteID string `form:"cliente_id"`
	Status    string `form:"status"` // finalizada | cancelada | vazio = todas
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=50"`
}

// ─── Responses ───────────────────────────────────────────────────────────────

type VendaCriadaResponse struct {
	ID       string `json:"id"`
	Mensagem string `json:"mensagem"`
}

type ItemVendaResponse struct {
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type VendaResponse struct {
	ID                 string              `json:"id"`
	Subtotal           decimal.Decimal     `json:"subtotal"`
	DescontoPercentual decimal.Decimal     `json:"desconto_percentual"`
	DescontoValor      decimal.Decimal     `json:"desconto_valor"`
	ValorFinal         decimal.Decimal     `json:"valor_final"`
	Status             string              `json:"status"`
	Vendedor           string              `json:"vendedor,omitempty"`
	Cliente            string              `json:"cliente,omitempty"`
	Itens              []ItemVendaResponse `json:"itens"`
	Pagamentos         []PagamentoRequest  `json:"pagamentos"`
	CreatedAt          string              `json:"created_at"`
}

type VendaListResponse struct {
	Data  []VendaResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Comprovante (projeção de leitura, sem I/O) ─────────────────────────────

type ComprovanteCliente struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

type ComprovanteItem struct {
	Descricao     string          `json:"descricao"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type ComprovantePagamento struct {
	Forma         string           `json:"forma"`
	Valor         decimal.Decimal  `json:"valor"`
	Parcelas      *int             `json:"parcelas,omitempty"`
	ValorRecebido *decimal.Decimal `json:"valor_recebido,omitempty"`
	Troco         *decimal.Decimal `json:"troco,omitempty"`
}

type ComprovanteResponse struct {
	NumeroVenda        string                 `json:"numero_venda"`
	DataHora           string                 `json:"data_hora"`
	Cliente            *ComprovanteCliente    `json:"cliente"`
	Vendedor           string                 `json:"vendedor"`
	Itens              []ComprovanteItem      `json:"itens"`
	Subtotal           decimal.Decimal        `json:"subtotal"`
	DescontoPercentual decimal.Decimal        `json:"desconto_percentual"`
	DescontoValor      decimal.Decimal        `json:"desconto_valor"`
	DescontoTotal      decimal.Decimal        `json:"desconto_total"`
	ValorFinal         decimal.Decimal        `json:"valor_final"`
	Pagamentos         []ComprovantePagamento `json:"pagamentos"`
	Status             string                 `json:"status"`
}
