package repository

import (
	"context"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VendaRepository persiste vendas. Cabeçalho, itens e pagamentos são gravados
// em chamadas independentes: o armazenamento remoto não oferece transação
// multi-chamada, e o serviço de vendas reporta falhas parciais explicitamente
// em vez de simular rollback.
type VendaRepository interface {
	// Create grava apenas o cabeçalho e preenche v.ID.
	Create(ctx context.Context, v *model.Venda) error
	InserirItens(ctx context.Context, vendaID uuid.UUID, itens []model.ItemVenda) error
	InserirPagamentos(ctx context.Context, vendaID uuid.UUID, pagamentos []model.PagamentoVenda) error
	// FindCompletaByID carrega a venda com itens (+produto), pagamentos,
	// cliente e vendedor.
	FindCompletaByID(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	MarcarCancelada(ctx context.Context, id uuid.UUID, motivo string, usuarioID uuid.UUID) error
	List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)
}

type vendaRepo struct{ db *gorm.DB }

func NewVendaRepository(db *gorm.DB) VendaRepository { return &vendaRepo{db: db} }

func (r *vendaRepo) Create(ctx context.Context, v *model.Venda) error {
	// Omit associations: itens e pagamentos são inseridos depois, em chamadas
	// próprias, para manter a semântica de falha parcial observável.
	return r.db.WithContext(ctx).Omit("Itens", "Pagamentos", "Cliente", "Usuario").Create(v).Error
}

func (r *vendaRepo) InserirItens(ctx context.Context, vendaID uuid.UUID, itens []model.ItemVenda) error {
	for i := range itens {
		itens[i].VendaID = vendaID
	}
	return r.db.WithContext(ctx).Create(&itens).Error
}

func (r *vendaRepo) InserirPagamentos(ctx context.Context, vendaID uuid.UUID, pagamentos []model.PagamentoVenda) error {
	for i := range pagamentos {
		pagamentos[i].VendaID = vendaID
	}
	return r.db.WithContext(ctx).Create(&pagamentos).Error
}

func (r *vendaRepo) FindCompletaByID(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	var v model.Venda
	err := r.db.WithContext(ctx).
		Preload("Itens.Produto").
		Preload("Pagamentos").
		Preload("Cliente").
		Preload("Usuario").
		First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vendaRepo) MarcarCancelada(ctx context.Context, id uuid.UUID, motivo string, usuarioID uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&model.Venda{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":              model.VendaCancelada,
		"motivo_cancelamento": motivo,
		"cancelado_por":       usuarioID,
		"cancelado_em":        now,
	}).Error
}

func (r *vendaRepo) List(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	var vendas []model.Venda
	var total int64

	q := r.db.WithContext(ctx).Model(&model.Venda{})
	if filter.Inicio != "" {
		q = q.Where("created_at >= ?", filter.Inicio)
	}
	if filter.Fim != "" {
		q = q.Where("created_at <= ?", filter.Fim)
	}
	if filter.UsuarioID != "" {
		q = q.Where("usuario_id = ?", filter.UsuarioID)
	}
	if filter.ClienteID != "" {
		q = q.Where("cliente_id = ?", filter.ClienteID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := q.Preload("Itens.Produto").Preload("Pagamentos").Preload("Usuario").
		Order("created_at DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&vendas).Error
	return vendas, total, err
}
