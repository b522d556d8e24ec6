package service

import (
	"context"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/shopspring/decimal"
)

// RelatorioService agrega os números de vendas num período. Só responde
// JSON; formatação para tela ou exportação fica fora daqui.
type RelatorioService interface {
	ResumoVendas(ctx context.Context, inicio, fim string) (*dto.RelatorioVendasResponse, error)
	ProdutosMaisVendidos(ctx context.Context, inicio, fim string, limite int) ([]dto.ProdutoMaisVendido, error)
	VendasPorVendedor(ctx context.Context, inicio, fim string) ([]dto.VendasPorVendedor, error)
}

type relatorioService struct {
	relatorios repository.RelatorioRepository
}

func NewRelatorioService(relatorios repository.RelatorioRepository) RelatorioService {
	return &relatorioService{relatorios: relatorios}
}

func (s *relatorioService) ResumoVendas(ctx context.Context, inicio, fim string) (*dto.RelatorioVendasResponse, error) {
	total, faturamento, desconto, err := s.relatorios.ResumoVendas(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}

	ticketMedio := decimal.Zero
	if total > 0 {
		ticketMedio = faturamento.Div(decimal.NewFromInt(total)).Round(2)
	}

	porForma, err := s.relatorios.TotaisPorFormaPagamento(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}

	return &dto.RelatorioVendasResponse{
		Inicio:            inicio,
		Fim:               fim,
		TotalVendas:       total,
		Faturamento:       faturamento,
		DescontoTotal:     desconto,
		TicketMedio:       ticketMedio,
		PorFormaPagamento: porForma,
	}, nil
}

func (s *relatorioService) ProdutosMaisVendidos(ctx context.Context, inicio, fim string, limite int) ([]dto.ProdutoMaisVendido, error) {
	if limite <= 0 || limite > 100 {
		limite = 10
	}
	return s.relatorios.ProdutosMaisVendidos(ctx, inicio, fim, limite)
}

func (s *relatorioService) VendasPorVendedor(ctx context.Context, inicio, fim string) ([]dto.VendasPorVendedor, error) {
	return s.relatorios.VendasPorVendedor(ctx, inicio, fim)
}
