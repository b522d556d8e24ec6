package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status possíveis de uma venda. Não existe estado intermediário: a venda só
// é gravada quando finalizada, e cancelamento é o único caminho de saída.
const (
	VendaFinalizada = "finalizada"
	VendaCancelada  = "cancelada"
)

// Venda é o cabeçalho da transação. Itens e pagamentos são gravados em
// chamadas separadas; um cabeçalho pode existir temporariamente sem filhos
// quando a gravação falha no meio (falha parcial reportada ao chamador).
type Venda struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Subtotal           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DescontoPercentual decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DescontoValor      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	ValorFinal         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	UsuarioID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClienteID          *uuid.UUID      `gorm:"type:uuid;index"`
	Status             string          `gorm:"type:varchar(20);not null;default:finalizada"`
	MotivoCancelamento *string
	CanceladoPor       *uuid.UUID `gorm:"type:uuid"`
	CanceladoEm        *time.Time
	CreatedAt          time.Time

	Itens      []ItemVenda      `gorm:"foreignKey:VendaID"`
	Pagamentos []PagamentoVenda `gorm:"foreignKey:VendaID"`
	Cliente    *Cliente         `gorm:"foreignKey:ClienteID"`
	Usuario    *Usuario         `gorm:"foreignKey:UsuarioID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda congela descrição implícita (via ProdutoID) e preço praticado no
// momento da venda.
type ItemVenda struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProdutoID     uuid.UUID       `gorm:"type:uuid;not null"`
	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }

// PagamentoVenda é uma forma de pagamento da venda (pode haver várias).
// Parcelas só para cartão de crédito; ValorRecebido/Troco só para dinheiro.
type PagamentoVenda struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	VendaID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	Forma         string           `gorm:"type:varchar(20);not null"`
	Valor         decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Parcelas      *int
	ValorRecebido *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Troco         *decimal.Decimal `gorm:"type:decimal(10,2)"`
}

func (PagamentoVenda) TableName() string { return "pagamentos_venda" }
