package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCodigoBarrasDuplicado = errors.New("já existe produto com este código de barras")

// ProdutoService cobre o cadastro do catálogo. A quantidade em estoque nunca
// é alterada por aqui; isso é papel do serviço de estoque, que audita cada
// mudança no livro-razão.
type ProdutoService interface {
	Criar(ctx context.Context, req dto.CriarProdutoRequest, usuarioID uuid.UUID) (*model.Produto, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error)
	BuscarPorCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error)
	Buscar(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*model.Produto, error)
	Remover(ctx context.Context, id uuid.UUID) error
}

type produtoService struct {
	produtos repository.ProdutoRepository
	estoque  EstoqueService
}

func NewProdutoService(produtos repository.ProdutoRepository, estoque EstoqueService) ProdutoService {
	return &produtoService{produtos: produtos, estoque: estoque}
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest, usuarioID uuid.UUID) (*model.Produto, error) {
	existente, err := s.produtos.FindByCodigoBarras(ctx, req.CodigoBarras)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, ErrCodigoBarrasDuplicado
	}

	p := &model.Produto{
		CodigoBarras:  req.CodigoBarras,
		Referencia:    req.Referencia,
		Descricao:     req.Descricao,
		Genero:        req.Genero,
		Marca:         req.Marca,
		Tamanho:       req.Tamanho,
		Preco:         req.Preco,
		EstoqueMinimo: req.EstoqueMinimo,
	}
	if err := s.produtos.Create(ctx, p); err != nil {
		return nil, err
	}

	// O estoque inicial entra como movimentação de entrada, não como campo do
	// cadastro, para nascer já auditado.
	if req.Quantidade > 0 {
		_, err := s.estoque.RegistrarMovimentacao(ctx, p.ID, model.MovEntrada, req.Quantidade,
			fmt.Sprintf("Estoque inicial do produto %s", p.CodigoBarras), usuarioID)
		if err != nil {
			return nil, err
		}
		p.Quantidade = req.Quantidade
	}
	return p, nil
}

func (s *produtoService) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Produto, error) {
	p, err := s.produtos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *produtoService) BuscarPorCodigoBarras(ctx context.Context, codigo string) (*model.Produto, error) {
	p, err := s.produtos.FindByCodigoBarras(ctx, codigo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProdutoNaoEncontrado
		}
		return nil, err
	}
	return p, nil
}

func (s *produtoService) Buscar(ctx context.Context, filter dto.ProdutoFilter) ([]model.Produto, error) {
	return s.produtos.Buscar(ctx, filter)
}

func (s *produtoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarProdutoRequest) (*model.Produto, error) {
	p, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Referencia != nil {
		p.Referencia = *req.Referencia
	}
	if req.Descricao != nil {
		p.Descricao = *req.Descricao
	}
	if req.Genero != nil {
		p.Genero = *req.Genero
	}
	if req.Marca != nil {
		p.Marca = *req.Marca
	}
	if req.Tamanho != nil {
		p.Tamanho = *req.Tamanho
	}
	if req.Preco != nil {
		if req.Preco.IsNegative() {
			return nil, errors.New("preço não pode ser negativo")
		}
		p.Preco = *req.Preco
	}
	if req.EstoqueMinimo != nil {
		p.EstoqueMinimo = *req.EstoqueMinimo
	}

	if err := s.produtos.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *produtoService) Remover(ctx context.Context, id uuid.UUID) error {
	if _, err := s.BuscarPorID(ctx, id); err != nil {
		return err
	}
	return s.produtos.Delete(ctx, id)
}
