package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AlertaEstoqueBaixo é publicado na fila quando uma saída ou ajuste deixa o
// produto no nível mínimo ou abaixo dele.
type AlertaEstoqueBaixo struct {
	ProdutoID     uuid.UUID `json:"produto_id"`
	Descricao     string    `json:"descricao"`
	Quantidade    int       `json:"quantidade"`
	EstoqueMinimo int       `json:"estoque_minimo"`
}

// PublicadorAlertas abstrai a fila de alertas (Redis em produção).
type PublicadorAlertas interface {
	PublicarAlertaEstoque(ctx context.Context, alerta AlertaEstoqueBaixo) error
}

// EstoqueService é o único caminho de escrita para a quantidade de um
// produto. Cada alteração grava a linha correspondente no livro-razão dentro
// da mesma transação.
type EstoqueService interface {
	// RegistrarMovimentacao aplica uma movimentação e grava a linha de
	// auditoria. Para "entrada" e "saida", quantidade é o delta (positivo);
	// para "ajuste", quantidade é o novo total absoluto.
	RegistrarMovimentacao(ctx context.Context, produtoID uuid.UUID, tipo string, quantidade int, observacao string, usuarioID uuid.UUID) (*model.MovimentacaoEstoque, error)
	ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, error)
	// VerificarEstoqueBaixo lista produtos com quantidade ≤ estoque mínimo.
	VerificarEstoqueBaixo(ctx context.Context) ([]dto.AlertaEstoqueResponse, error)
	// ValorTotalEstoque soma preço × quantidade de todo o catálogo.
	ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error)
	// ProdutosSemMovimentacao lista produtos parados há mais de `dias` dias
	// (ou que nunca movimentaram) e que ainda têm estoque.
	ProdutosSemMovimentacao(ctx context.Context, dias int) ([]dto.ProdutoSemMovimentacaoResponse, error)
}

type estoqueService struct {
	produtos      repository.ProdutoRepository
	movimentacoes repository.MovimentacaoRepository
	alertas       PublicadorAlertas
	log           zerolog.Logger
}

func NewEstoqueService(
	produtos repository.ProdutoRepository,
	movimentacoes repository.MovimentacaoRepository,
	alertas PublicadorAlertas,
	log zerolog.Logger,
) EstoqueService {
	return &estoqueService{
		produtos:      produtos,
		movimentacoes: movimentacoes,
		alertas:       alertas,
		log:           log,
	}
}

// runTx executa fn dentro de uma transação. Com db nil (testes unitários com
// stubs em memória) fn roda direto, sem transação.
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *estoqueService) RegistrarMovimentacao(ctx context.Context, produtoID uuid.UUID, tipo string, quantidade int, observacao string, usuarioID uuid.UUID) (*model.MovimentacaoEstoque, error) {
	p, err := s.produtos.FindByID(ctx, produtoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}

	anterior := p.Quantidade
	var nova int

	switch tipo {
	case model.MovEntrada:
		if quantidade <= 0 {
			return nil, ErrQuantidadeInvalida
		}
		nova = anterior + quantidade
	case model.MovSaida:
		if quantidade <= 0 {
			return nil, ErrQuantidadeInvalida
		}
		if quantidade > anterior {
			return nil, &EstoqueInsuficienteError{Problemas: []string{
				fmt.Sprintf("Produto %s: estoque insuficiente. Disponível: %d, Solicitado: %d",
					p.Descricao, anterior, quantidade),
			}}
		}
		nova = anterior - quantidade
	case model.MovAjuste:
		if quantidade < 0 {
			return nil, ErrQuantidadeInvalida
		}
		nova = quantidade
	default:
		return nil, fmt.Errorf("tipo de movimentação inválido: %s", tipo)
	}

	mov := &model.MovimentacaoEstoque{
		ProdutoID:          produtoID,
		Tipo:               tipo,
		Quantidade:         quantidade,
		QuantidadeAnterior: anterior,
		QuantidadeNova:     nova,
		Observacao:         observacao,
		UsuarioID:          usuarioID,
	}

	err = runTx(ctx, s.produtos.DB(), func(tx *gorm.DB) error {
		if err := s.movimentacoes.CreateTx(tx, mov); err != nil {
			return err
		}
		return s.produtos.AjustarQuantidadeTx(tx, produtoID, nova-anterior)
	})
	if err != nil {
		return nil, err
	}

	if nova <= p.EstoqueMinimo && nova < anterior {
		s.publicarAlerta(ctx, p, nova)
	}
	return mov, nil
}

// publicarAlerta é melhor-esforço: falha na fila não desfaz a movimentação.
func (s *estoqueService) publicarAlerta(ctx context.Context, p *model.Produto, quantidade int) {
	if s.alertas == nil {
		return
	}
	alerta := AlertaEstoqueBaixo{
		ProdutoID:     p.ID,
		Descricao:     p.Descricao,
		Quantidade:    quantidade,
		EstoqueMinimo: p.EstoqueMinimo,
	}
	if err := s.alertas.PublicarAlertaEstoque(ctx, alerta); err != nil {
		s.log.Warn().Err(err).
			Str("produto_id", p.ID.String()).
			Msg("falha ao publicar alerta de estoque baixo")
	}
}

func (s *estoqueService) ListarMovimentacoes(ctx context.Context, filter dto.MovimentacaoFilter) ([]model.MovimentacaoEstoque, error) {
	return s.movimentacoes.List(ctx, filter)
}

func (s *estoqueService) VerificarEstoqueBaixo(ctx context.Context) ([]dto.AlertaEstoqueResponse, error) {
	produtos, err := s.produtos.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	alertas := make([]dto.AlertaEstoqueResponse, 0)
	for _, p := range produtos {
		if p.Quantidade <= p.EstoqueMinimo {
			alertas = append(alertas, dto.AlertaEstoqueResponse{
				ProdutoID:     p.ID.String(),
				Descricao:     p.Descricao,
				Referencia:    p.Referencia,
				Quantidade:    p.Quantidade,
				EstoqueMinimo: p.EstoqueMinimo,
			})
		}
	}
	return alertas, nil
}

func (s *estoqueService) ValorTotalEstoque(ctx context.Context) (decimal.Decimal, error) {
	produtos, err := s.produtos.ListAll(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range produtos {
		total = total.Add(p.Preco.Mul(decimal.NewFromInt(int64(p.Quantidade))))
	}
	return total, nil
}

func (s *estoqueService) ProdutosSemMovimentacao(ctx context.Context, dias int) ([]dto.ProdutoSemMovimentacaoResponse, error) {
	if dias <= 0 {
		dias = 30
	}
	corte := time.Now().AddDate(0, 0, -dias)

	produtos, err := s.produtos.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	parados := make([]dto.ProdutoSemMovimentacaoResponse, 0)
	for _, p := range produtos {
		if p.Quantidade == 0 {
			continue
		}
		ultima, err := s.movimentacoes.UltimaPorProduto(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		if ultima != nil && ultima.After(corte) {
			continue
		}

		item := dto.ProdutoSemMovimentacaoResponse{
			ProdutoID:  p.ID.String(),
			Descricao:  p.Descricao,
			Quantidade: p.Quantidade,
		}
		if ultima != nil {
			s := ultima.Format(time.RFC3339)
			item.UltimaMovimentacao = &s
		}
		parados = append(parados, item)
	}
	return parados, nil
}
