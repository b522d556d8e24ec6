package service

import (
	"context"
	"errors"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrCPFInvalido          = errors.New("CPF inválido")
	ErrCPFDuplicado         = errors.New("já existe cliente com este CPF")
	ErrEmailInvalido        = errors.New("e-mail inválido")
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*model.Cliente, error)
	BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error)
	Buscar(ctx context.Context, termo string) ([]model.Cliente, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*model.Cliente, error)
	// HistoricoCompras lista as vendas finalizadas do cliente com totais.
	HistoricoCompras(ctx context.Context, id uuid.UUID) (*model.Cliente, []model.Venda, error)
}

type clienteService struct {
	clientes repository.ClienteRepository
	vendas   repository.VendaRepository
}

func NewClienteService(clientes repository.ClienteRepository, vendas repository.VendaRepository) ClienteService {
	return &clienteService{clientes: clientes, vendas: vendas}
}

// validarCPFUnico normaliza, valida os dígitos verificadores e garante que
// nenhum outro cliente usa o mesmo CPF. Devolve o CPF sem máscara.
func (s *clienteService) validarCPFUnico(ctx context.Context, cpf string, ignorar *uuid.UUID) (string, error) {
	normalizado := NormalizarCPF(cpf)
	if !ValidarCPF(normalizado) {
		return "", ErrCPFInvalido
	}

	existente, err := s.clientes.FindByCPF(ctx, normalizado)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", err
	}
	if existente != nil && (ignorar == nil || existente.ID != *ignorar) {
		return "", ErrCPFDuplicado
	}
	return normalizado, nil
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*model.Cliente, error) {
	c := &model.Cliente{
		Nome:     req.Nome,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
	}

	if req.CPF != nil && *req.CPF != "" {
		cpf, err := s.validarCPFUnico(ctx, *req.CPF, nil)
		if err != nil {
			return nil, err
		}
		c.CPF = &cpf
	}
	if req.Email != nil && *req.Email != "" {
		if !ValidarEmail(*req.Email) {
			return nil, ErrEmailInvalido
		}
		c.Email = req.Email
	}

	if err := s.clientes.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) BuscarPorID(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClienteNaoEncontrado
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Buscar(ctx context.Context, termo string) ([]model.Cliente, error) {
	return s.clientes.Buscar(ctx, termo)
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*model.Cliente, error) {
	c, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		c.Nome = *req.Nome
	}
	if req.CPF != nil {
		if *req.CPF == "" {
			c.CPF = nil
		} else {
			cpf, err := s.validarCPFUnico(ctx, *req.CPF, &id)
			if err != nil {
				return nil, err
			}
			c.CPF = &cpf
		}
	}
	if req.Email != nil {
		if *req.Email != "" && !ValidarEmail(*req.Email) {
			return nil, ErrEmailInvalido
		}
		c.Email = req.Email
	}
	if req.Telefone != nil {
		c.Telefone = req.Telefone
	}
	if req.Endereco != nil {
		c.Endereco = req.Endereco
	}

	if err := s.clientes.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *clienteService) HistoricoCompras(ctx context.Context, id uuid.UUID) (*model.Cliente, []model.Venda, error) {
	c, err := s.BuscarPorID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	vendas, _, err := s.vendas.List(ctx, dto.VendaFilter{
		ClienteID: id.String(),
		Status:    model.VendaFinalizada,
		Page:      1,
		Limit:     200,
	})
	if err != nil {
		return nil, nil, err
	}
	return c, vendas, nil
}
