package service

import (
	"context"
	"errors"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ─── Stubs em memória ────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	produtos  map[uuid.UUID]*model.Produto
	findCalls int
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{produtos: make(map[uuid.UUID]*model.Produto)}
}

func (r *stubProdutoRepo) add(p *model.Produto) *model.Produto {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.EstoqueMinimo == 0 {
		p.EstoqueMinimo = 5
	}
	r.produtos[p.ID] = p
	return p
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	r.add(p)
	return nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Produto, error) {
	r.findCalls++
	p, ok := r.produtos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *p
	return &copia, nil
}

func (r *stubProdutoRepo) FindByCodigoBarras(_ context.Context, codigo string) (*model.Produto, error) {
	for _, p := range r.produtos {
		if p.CodigoBarras == codigo {
			copia := *p
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProdutoRepo) Buscar(_ context.Context, _ dto.ProdutoFilter) ([]model.Produto, error) {
	return r.listAll(), nil
}

func (r *stubProdutoRepo) ListAll(_ context.Context) ([]model.Produto, error) {
	return r.listAll(), nil
}

func (r *stubProdutoRepo) listAll() []model.Produto {
	out := make([]model.Produto, 0, len(r.produtos))
	for _, p := range r.produtos {
		out = append(out, *p)
	}
	return out
}

func (r *stubProdutoRepo) Update(_ context.Context, p *model.Produto) error {
	r.produtos[p.ID] = p
	return nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.produtos, id)
	return nil
}

func (r *stubProdutoRepo) AjustarQuantidadeTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.produtos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Quantidade += delta
	return nil
}

func (r *stubProdutoRepo) DB() *gorm.DB { return nil }

var _ repository.ProdutoRepository = (*stubProdutoRepo)(nil)

type stubMovimentacaoRepo struct {
	movs []model.MovimentacaoEstoque
	// falhaPorProduto injeta erro no CreateTx do produto indicado.
	falhaPorProduto map[uuid.UUID]error
}

func newStubMovimentacaoRepo() *stubMovimentacaoRepo {
	return &stubMovimentacaoRepo{falhaPorProduto: make(map[uuid.UUID]error)}
}

func (r *stubMovimentacaoRepo) CreateTx(_ *gorm.DB, m *model.MovimentacaoEstoque) error {
	if err, ok := r.falhaPorProduto[m.ProdutoID]; ok {
		return err
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now()
	r.movs = append(r.movs, *m)
	return nil
}

func (r *stubMovimentacaoRepo) List(_ context.Context, _ dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, error) {
	return r.movs, nil
}

func (r *stubMovimentacaoRepo) UltimaPorProduto(_ context.Context, produtoID uuid.UUID) (*time.Time, error) {
	var ultima *time.Time
	for i := range r.movs {
		if r.movs[i].ProdutoID == produtoID {
			if ultima == nil || r.movs[i].CreatedAt.After(*ultima) {
				t := r.movs[i].CreatedAt
				ultima = &t
			}
		}
	}
	return ultima, nil
}

var _ repository.MovimentacaoRepository = (*stubMovimentacaoRepo)(nil)

type stubVendaRepo struct {
	vendas map[uuid.UUID]*model.Venda
	// produtos simula o Preload("Itens.Produto") do repositório real.
	produtos *stubProdutoRepo

	errCriar      error
	errItens      error
	errPagamentos error
	errCancelar   error
}

func newStubVendaRepo() *stubVendaRepo {
	return &stubVendaRepo{vendas: make(map[uuid.UUID]*model.Venda)}
}

func (r *stubVendaRepo) Create(_ context.Context, v *model.Venda) error {
	if r.errCriar != nil {
		return r.errCriar
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	v.CreatedAt = time.Now()
	r.vendas[v.ID] = v
	return nil
}

func (r *stubVendaRepo) InserirItens(_ context.Context, vendaID uuid.UUID, itens []model.ItemVenda) error {
	if r.errItens != nil {
		return r.errItens
	}
	v, ok := r.vendas[vendaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range itens {
		itens[i].VendaID = vendaID
	}
	v.Itens = itens
	return nil
}

func (r *stubVendaRepo) InserirPagamentos(_ context.Context, vendaID uuid.UUID, pagamentos []model.PagamentoVenda) error {
	if r.errPagamentos != nil {
		return r.errPagamentos
	}
	v, ok := r.vendas[vendaID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range pagamentos {
		pagamentos[i].VendaID = vendaID
	}
	v.Pagamentos = pagamentos
	return nil
}

func (r *stubVendaRepo) FindCompletaByID(_ context.Context, id uuid.UUID) (*model.Venda, error) {
	v, ok := r.vendas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copia := *v
	if r.produtos != nil {
		copia.Itens = make([]model.ItemVenda, len(v.Itens))
		copy(copia.Itens, v.Itens)
		for i := range copia.Itens {
			if p, ok := r.produtos.produtos[copia.Itens[i].ProdutoID]; ok {
				produto := *p
				copia.Itens[i].Produto = &produto
			}
		}
	}
	return &copia, nil
}

func (r *stubVendaRepo) MarcarCancelada(_ context.Context, id uuid.UUID, motivo string, usuarioID uuid.UUID) error {
	if r.errCancelar != nil {
		return r.errCancelar
	}
	v, ok := r.vendas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	now := time.Now()
	v.Status = model.VendaCancelada
	v.MotivoCancelamento = &motivo
	v.CanceladoPor = &usuarioID
	v.CanceladoEm = &now
	return nil
}

func (r *stubVendaRepo) List(_ context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	out := make([]model.Venda, 0, len(r.vendas))
	for _, v := range r.vendas {
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if filter.ClienteID != "" && (v.ClienteID == nil || v.ClienteID.String() != filter.ClienteID) {
			continue
		}
		out = append(out, *v)
	}
	return out, int64(len(out)), nil
}

var _ repository.VendaRepository = (*stubVendaRepo)(nil)

type stubPublicadorAlertas struct {
	alertas []AlertaEstoqueBaixo
	err     error
}

func (s *stubPublicadorAlertas) PublicarAlertaEstoque(_ context.Context, a AlertaEstoqueBaixo) error {
	if s.err != nil {
		return s.err
	}
	s.alertas = append(s.alertas, a)
	return nil
}

var _ PublicadorAlertas = (*stubPublicadorAlertas)(nil)

// ─── Fábricas ────────────────────────────────────────────────────────────────

func buildEstoqueSvc() (EstoqueService, *stubProdutoRepo, *stubMovimentacaoRepo, *stubPublicadorAlertas) {
	produtos := newStubProdutoRepo()
	movs := newStubMovimentacaoRepo()
	alertas := &stubPublicadorAlertas{}
	svc := NewEstoqueService(produtos, movs, alertas, zerolog.Nop())
	return svc, produtos, movs, alertas
}

func buildVendaSvc() (VendaService, *stubVendaRepo, *stubProdutoRepo, *stubMovimentacaoRepo) {
	produtos := newStubProdutoRepo()
	movs := newStubMovimentacaoRepo()
	estoque := NewEstoqueService(produtos, movs, nil, zerolog.Nop())
	vendas := newStubVendaRepo()
	vendas.produtos = produtos
	svc := NewVendaService(vendas, produtos, estoque, zerolog.Nop())
	return svc, vendas, produtos, movs
}

var errBanco = errors.New("erro simulado de banco")
