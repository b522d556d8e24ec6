package repository

import (
	"context"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProdutoRepository define o contrato de acesso a produtos.
// Os serviços dependem desta interface, não da implementação GORM,
// o que permite testes unitários com stubs em memória.
type ProdutoRepository interface {
	Create(ctx context.Context, p *model.Produto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error)
	// Buscar procura por código de barras, referência ou descrição (parcial,
	// case-insensitive). apenasDisponiveis filtra quantidade > 0.
	Buscar(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error)
	ListAll(ctx context.Context) ([]model.Produto, error)
	Update(ctx context.Context, p *model.Produto) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AjustarQuantidadeTx soma delta a quantidade dentro da transação tx.
	// Chamado exclusivamente pelo serviço de estoque, nunca diretamente.
	AjustarQuantidadeTx(tx *gorm.DB, id uuid.UUID, delta int) error

	// DB expõe o *gorm.DB para abertura de transações no serviço de estoque.
	DB() *gorm.DB
}

type produtoRepo struct{ db *gorm.DB }

func NewProdutoRepository(db *gorm.DB) ProdutoRepository { return &produtoRepo{db: db} }

func (r *produtoRepo) DB() *gorm.DB { return r.db }

func (r *produtoRepo) Create(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *produtoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) FindByCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error) {
	var p model.Produto
	err := r.db.WithContext(ctx).Where("codigo_barras = ?", codigo).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *produtoRepo) Buscar(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	var produtos []model.Produto

	q := r.db.WithContext(ctx).Model(&model.Produto{})
	if filter.Termo != "" {
		termo := "%" + filter.Termo + "%"
		q = q.Where("codigo_barras ILIKE ? OR referencia ILIKE ? OR descricao ILIKE ?", termo, termo, termo)
	}
	if filter.ApenasDisponiveis {
		q = q.Where("quantidade > 0")
	}

	err := q.Order("descricao ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) ListAll(ctx context.Context) ([]model.Produto, error) {
	var produtos []model.Produto
	err := r.db.WithContext(ctx).Order("descricao ASC").Find(&produtos).Error
	return produtos, err
}

func (r *produtoRepo) Update(ctx context.Context, p *model.Produto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *produtoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Produto{}, id).Error
}

func (r *produtoRepo) AjustarQuantidadeTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Produto{}).Where("id = ?", id).
		Update("quantidade", gorm.Expr("quantidade + ?", delta)).Error
}
