package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente cadastrado para vinculação opcional às vendas.
// CPF é armazenado sem máscara (11 dígitos) e é único quando presente.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome      string    `gorm:"not null"`
	CPF       *string   `gorm:"type:varchar(11);uniqueIndex"`
	Telefone  *string
	Email     *string
	Endereco  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
