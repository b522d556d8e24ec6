package repository

import (
	"context"
	"errors"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MovimentacaoRepository persiste o livro-razão do estoque.
// Movimentações nunca são alteradas ou apagadas; estornos geram novas linhas.
type MovimentacaoRepository interface {
	// CreateTx grava a movimentação dentro da mesma transação que ajusta a
	// quantidade do produto (a única atomicidade que o sistema oferece).
	CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error
	List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, error)
	// UltimaPorProduto retorna a data da movimentação mais recente do produto,
	// ou nil se ele nunca movimentou.
	UltimaPorProduto(ctx context.Context, produtoID uuid.UUID) (*time.Time, error)
}

type movimentacaoRepo struct{ db *gorm.DB }

func NewMovimentacaoRepository(db *gorm.DB) MovimentacaoRepository {
	return &movimentacaoRepo{db: db}
}

func (r *movimentacaoRepo) CreateTx(tx *gorm.DB, m *model.MovimentacaoEstoque) error {
	return tx.Create(m).Error
}

func (r *movimentacaoRepo) List(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, error) {
	var movs []model.MovimentacaoEstoque

	q := r.db.WithContext(ctx).Model(&model.MovimentacaoEstoque{})
	if filter.ProdutoID != "" {
		q = q.Where("produto_id = ?", filter.ProdutoID)
	}
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", filter.Tipo)
	}
	if filter.Inicio != "" {
		q = q.Where("created_at >= ?", filter.Inicio)
	}
	if filter.Fim != "" {
		q = q.Where("created_at <= ?", filter.Fim)
	}

	err := q.Preload("Produto").Order("created_at DESC").Find(&movs).Error
	return movs, err
}

func (r *movimentacaoRepo) UltimaPorProduto(ctx context.Context, produtoID uuid.UUID) (*time.Time, error) {
	var m model.MovimentacaoEstoque
	err := r.db.WithContext(ctx).
		Where("produto_id = ?", produtoID).
		Order("created_at DESC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m.CreatedAt, nil
}
