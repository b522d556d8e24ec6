package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Produto é uma peça de roupa infantil do catálogo da loja.
// Quantidade é o estoque corrente; toda alteração dela passa pelo serviço de
// estoque, que grava a movimentação correspondente na mesma transação.
type Produto struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CodigoBarras  string    `gorm:"uniqueIndex;not null"`
	Referencia    string
	Descricao     string          `gorm:"not null"`
	Genero        string          `gorm:"type:varchar(20)"`
	Marca         string
	Tamanho       string          `gorm:"type:varchar(10)"`
	Preco         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantidade    int             `gorm:"not null;default:0"`
	EstoqueMinimo int             `gorm:"not null;default:5"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Produto) TableName() string { return "produtos" }
