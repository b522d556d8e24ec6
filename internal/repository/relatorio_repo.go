package repository

import (
	"context"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// RelatorioRepository concentra as consultas agregadas do lado de leitura.
// Só considera vendas finalizadas; canceladas ficam de fora de faturamento.
type RelatorioRepository interface {
	ResumoVendas(ctx context.Context, inicio, fim string) (total int64, faturamento, desconto decimal.Decimal, err error)
	TotaisPorFormaPagamento(ctx context.Context, inicio, fim string) ([]dto.TotalPorFormaPagamento, error)
	ProdutosMaisVendidos(ctx context.Context, inicio, fim string, limite int) ([]dto.ProdutoMaisVendido, error)
	VendasPorVendedor(ctx context.Context, inicio, fim string) ([]dto.VendasPorVendedor, error)
}

type relatorioRepo struct{ db *gorm.DB }

func NewRelatorioRepository(db *gorm.DB) RelatorioRepository { return &relatorioRepo{db: db} }

func (r *relatorioRepo) vendasNoPeriodo(ctx context.Context, inicio, fim string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&model.Venda{}).Where("status = ?", model.VendaFinalizada)
	if inicio != "" {
		q = q.Where("created_at >= ?", inicio)
	}
	if fim != "" {
		q = q.Where("created_at <= ?", fim)
	}
	return q
}

func (r *relatorioRepo) ResumoVendas(ctx context.Context, inicio, fim string) (int64, decimal.Decimal, decimal.Decimal, error) {
	var row struct {
		Total       int64
		Faturamento decimal.Decimal
		Desconto    decimal.Decimal
	}
	err := r.vendasNoPeriodo(ctx, inicio, fim).
		Select(`COUNT(*) AS total,
			COALESCE(SUM(valor_final), 0) AS faturamento,
			COALESCE(SUM(subtotal - valor_final), 0) AS desconto`).
		Scan(&row).Error
	return row.Total, row.Faturamento, row.Desconto, err
}

func (r *relatorioRepo) TotaisPorFormaPagamento(ctx context.Context, inicio, fim string) ([]dto.TotalPorFormaPagamento, error) {
	var rows []dto.TotalPorFormaPagamento
	q := r.db.WithContext(ctx).
		Table("pagamentos_venda pv").
		Joins("JOIN vendas v ON v.id = pv.venda_id").
		Where("v.status = ?", model.VendaFinalizada)
	if inicio != "" {
		q = q.Where("v.created_at >= ?", inicio)
	}
	if fim != "" {
		q = q.Where("v.created_at <= ?", fim)
	}
	err := q.Select("pv.forma AS forma, COALESCE(SUM(pv.valor), 0) AS valor").
		Group("pv.forma").
		Order("valor DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) ProdutosMaisVendidos(ctx context.Context, inicio, fim string, limite int) ([]dto.ProdutoMaisVendido, error) {
	var rows []dto.ProdutoMaisVendido
	q := r.db.WithContext(ctx).
		Table("itens_venda iv").
		Joins("JOIN vendas v ON v.id = iv.venda_id").
		Joins("JOIN produtos p ON p.id = iv.produto_id").
		Where("v.status = ?", model.VendaFinalizada)
	if inicio != "" {
		q = q.Where("v.created_at >= ?", inicio)
	}
	if fim != "" {
		q = q.Where("v.created_at <= ?", fim)
	}
	err := q.Select(`iv.produto_id AS produto_id, p.descricao AS descricao,
			SUM(iv.quantidade) AS quantidade_total,
			COALESCE(SUM(iv.subtotal), 0) AS valor_total`).
		Group("iv.produto_id, p.descricao").
		Order("quantidade_total DESC").
		Limit(limite).
		Scan(&rows).Error
	return rows, err
}

func (r *relatorioRepo) VendasPorVendedor(ctx context.Context, inicio, fim string) ([]dto.VendasPorVendedor, error) {
	var rows []dto.VendasPorVendedor
	q := r.vendasNoPeriodo(ctx, inicio, fim)
	err := q.
		Joins("JOIN usuarios u ON u.id = vendas.usuario_id").
		Select(`vendas.usuario_id AS usuario_id, u.nome AS vendedor,
			COUNT(*) AS total_vendas,
			COALESCE(SUM(vendas.valor_final), 0) AS faturamento`).
		Group("vendas.usuario_id, u.nome").
		Order("faturamento DESC").
		Scan(&rows).Error
	return rows, err
}
