package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// VendaService implementa o ciclo de vida da venda: finalização em etapas
// ordenadas com falha parcial explícita, cancelamento com estorno de estoque
// e projeção de comprovante.
type VendaService interface {
	NovoCarrinho() *Carrinho
	// Finalizar grava a venda do carrinho. Em caso de sucesso o carrinho é
	// esvaziado e o id da venda retornado. Falhas de validação acontecem antes
	// de qualquer escrita; falhas de persistência são tipadas conforme o que
	// já ficou gravado (ver errors.go).
	Finalizar(ctx context.Context, carrinho *Carrinho, pagamentos []dto.PagamentoRequest, clienteID *uuid.UUID, usuarioID uuid.UUID) (uuid.UUID, error)
	// Cancelar marca a venda como cancelada e devolve os itens ao estoque.
	// O estorno continua mesmo quando um produto falha; as falhas são
	// agregadas num PersistenciaParcialError.
	Cancelar(ctx context.Context, vendaID uuid.UUID, motivo string, usuarioID uuid.UUID) error
	Buscar(ctx context.Context, id uuid.UUID) (*model.Venda, error)
	Listar(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error)
	Comprovante(ctx context.Context, id uuid.UUID) (*dto.ComprovanteResponse, error)
}

type vendaService struct {
	vendas   repository.VendaRepository
	produtos repository.ProdutoRepository
	estoque  EstoqueService
	log      zerolog.Logger
}

func NewVendaService(
	vendas repository.VendaRepository,
	produtos repository.ProdutoRepository,
	estoque EstoqueService,
	log zerolog.Logger,
) VendaService {
	return &vendaService{
		vendas:   vendas,
		produtos: produtos,
		estoque:  estoque,
		log:      log,
	}
}

func (s *vendaService) NovoCarrinho() *Carrinho {
	return NewCarrinho(s.produtos)
}

func (s *vendaService) Finalizar(ctx context.Context, carrinho *Carrinho, pagamentos []dto.PagamentoRequest, clienteID *uuid.UUID, usuarioID uuid.UUID) (uuid.UUID, error) {
	// Validações primeiro: nenhuma escrita acontece antes de todas passarem.
	if carrinho.Vazio() {
		return uuid.Nil, ErrCarrinhoVazio
	}

	if ok, problemas := carrinho.ValidarDisponibilidade(ctx); !ok {
		return uuid.Nil, &EstoqueInsuficienteError{Problemas: problemas}
	}

	if err := ValidarPagamentosVenda(pagamentos, carrinho.Total()); err != nil {
		return uuid.Nil, err
	}

	venda := &model.Venda{
		Subtotal:           carrinho.Subtotal(),
		DescontoPercentual: carrinho.DescontoPercentual(),
		DescontoValor:      carrinho.DescontoValor(),
		ValorFinal:         carrinho.Total(),
		UsuarioID:          usuarioID,
		ClienteID:          clienteID,
		Status:             model.VendaFinalizada,
	}

	// Cabeçalho primeiro. Se falhar aqui, nada ficou gravado.
	if err := s.vendas.Create(ctx, venda); err != nil {
		s.log.Error().Err(err).Msg("falha ao gravar cabeçalho da venda")
		return uuid.Nil, &PersistenciaError{Etapa: "venda", Err: err}
	}

	// A partir deste ponto existe um registro durável: qualquer falha vira
	// PersistenciaParcialError com o id da venda para conciliação.
	itens := make([]model.ItemVenda, 0, len(carrinho.Itens()))
	for _, item := range carrinho.Itens() {
		itens = append(itens, model.ItemVenda{
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal(),
		})
	}
	if err := s.vendas.InserirItens(ctx, venda.ID, itens); err != nil {
		s.log.Error().Err(err).Str("venda_id", venda.ID.String()).Msg("falha ao gravar itens da venda")
		return uuid.Nil, &PersistenciaParcialError{VendaID: venda.ID, Etapa: "itens", Detalhe: err.Error()}
	}

	registros := make([]model.PagamentoVenda, 0, len(pagamentos))
	for _, p := range pagamentos {
		registros = append(registros, model.PagamentoVenda{
			Forma:         p.Forma,
			Valor:         p.Valor,
			Parcelas:      p.Parcelas,
			ValorRecebido: p.ValorRecebido,
			Troco:         p.Troco,
		})
	}
	if err := s.vendas.InserirPagamentos(ctx, venda.ID, registros); err != nil {
		s.log.Error().Err(err).Str("venda_id", venda.ID.String()).Msg("falha ao gravar pagamentos da venda")
		return uuid.Nil, &PersistenciaParcialError{VendaID: venda.ID, Etapa: "pagamentos", Detalhe: err.Error()}
	}

	// Baixa de estoque por produto, na ordem do carrinho. A primeira falha
	// interrompe o laço: produtos anteriores já foram baixados, os seguintes
	// não. O erro nomeia o produto que falhou.
	observacao := fmt.Sprintf("Venda %s", venda.ID)
	for _, item := range carrinho.Itens() {
		_, err := s.estoque.RegistrarMovimentacao(ctx, item.ProdutoID, model.MovSaida, item.Quantidade, observacao, usuarioID)
		if err != nil {
			s.log.Error().Err(err).
				Str("venda_id", venda.ID.String()).
				Str("produto_id", item.ProdutoID.String()).
				Msg("falha na baixa de estoque")
			return uuid.Nil, &PersistenciaParcialError{
				VendaID: venda.ID,
				Etapa:   "baixa de estoque",
				Detalhe: fmt.Sprintf("produto %s: %v", item.Descricao, err),
			}
		}
	}

	carrinho.Limpar()
	s.log.Info().
		Str("venda_id", venda.ID.String()).
		Str("valor_final", venda.ValorFinal.StringFixed(2)).
		Msg("venda finalizada")
	return venda.ID, nil
}

func (s *vendaService) Cancelar(ctx context.Context, vendaID uuid.UUID, motivo string, usuarioID uuid.UUID) error {
	venda, err := s.vendas.FindCompletaByID(ctx, vendaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVendaNaoEncontrada
		}
		return err
	}
	if venda.Status == model.VendaCancelada {
		return ErrVendaJaCancelada
	}

	// Marca cancelada antes do estorno: se falhar aqui, nada mudou e a
	// operação pode ser repetida.
	if err := s.vendas.MarcarCancelada(ctx, vendaID, motivo, usuarioID); err != nil {
		s.log.Error().Err(err).Str("venda_id", vendaID.String()).Msg("falha ao marcar venda cancelada")
		return &PersistenciaError{Etapa: "cancelamento da venda", Err: err}
	}

	// Estorno item a item. Diferente da finalização, o laço continua após
	// falhas: devolver o máximo possível ao estoque vale mais que parar cedo.
	observacao := fmt.Sprintf("Cancelamento da venda %s - %s", vendaID, motivo)
	var falhas []string
	for _, item := range venda.Itens {
		_, err := s.estoque.RegistrarMovimentacao(ctx, item.ProdutoID, model.MovEntrada, item.Quantidade, observacao, usuarioID)
		if err != nil {
			descricao := item.ProdutoID.String()
			if item.Produto != nil {
				descricao = item.Produto.Descricao
			}
			s.log.Error().Err(err).
				Str("venda_id", vendaID.String()).
				Str("produto_id", item.ProdutoID.String()).
				Msg("falha no estorno de estoque")
			falhas = append(falhas, fmt.Sprintf("produto %s: %v", descricao, err))
		}
	}
	if len(falhas) > 0 {
		return &PersistenciaParcialError{
			VendaID: vendaID,
			Etapa:   "estorno de estoque",
			Detalhe: strings.Join(falhas, "; "),
		}
	}

	s.log.Info().Str("venda_id", vendaID.String()).Msg("venda cancelada")
	return nil
}

func (s *vendaService) Buscar(ctx context.Context, id uuid.UUID) (*model.Venda, error) {
	venda, err := s.vendas.FindCompletaByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVendaNaoEncontrada
		}
		return nil, err
	}
	return venda, nil
}

func (s *vendaService) Listar(ctx context.Context, filter dto.VendaFilter) ([]model.Venda, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 200 {
		filter.Limit = 50
	}
	return s.vendas.List(ctx, filter)
}

func (s *vendaService) Comprovante(ctx context.Context, id uuid.UUID) (*dto.ComprovanteResponse, error) {
	venda, err := s.Buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	return GerarComprovante(venda), nil
}
