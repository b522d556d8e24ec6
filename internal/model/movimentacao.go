package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de movimentação de estoque.
const (
	MovEntrada = "entrada"
	MovSaida   = "saida"
	MovAjuste  = "ajuste"
)

// MovimentacaoEstoque é uma linha do livro-razão de estoque. Registra o
// estado antes e depois para permitir auditoria sem reconstruir o histórico.
// Linhas nunca são alteradas nem apagadas.
type MovimentacaoEstoque struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProdutoID          uuid.UUID `gorm:"type:uuid;not null;index"`
	Tipo               string    `gorm:"type:varchar(10);not null"`
	Quantidade         int       `gorm:"not null"`
	QuantidadeAnterior int       `gorm:"not null"`
	QuantidadeNova     int       `gorm:"not null"`
	Observacao         string
	UsuarioID          uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt          time.Time

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (MovimentacaoEstoque) TableName() string { return "movimentacoes_estoque" }
