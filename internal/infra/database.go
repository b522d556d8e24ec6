package infra

import (
	"fmt"

	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase abre a conexão GORM com Postgres e cria/atualiza o schema via
// AutoMigrate.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations aplica o AutoMigrate de todos os modelos.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Produto{},
		&model.Usuario{},
		&model.Cliente{},
		&model.Venda{},
		&model.ItemVenda{},
		&model.PagamentoVenda{},
		&model.MovimentacaoEstoque{},
	)
}
