package service

import (
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
)

// GerarComprovante projeta a venda carregada num comprovante serializável.
// Função pura: não faz I/O nem formata para impressão. A apresentação
// (tela, impressora térmica) fica com o consumidor do JSON.
func GerarComprovante(v *model.Venda) *dto.ComprovanteResponse {
	c := &dto.ComprovanteResponse{
		NumeroVenda:        v.ID.String(),
		DataHora:           v.CreatedAt.Format(time.RFC3339),
		Subtotal:           v.Subtotal,
		DescontoPercentual: v.DescontoPercentual,
		DescontoValor:      v.DescontoValor,
		DescontoTotal:      v.Subtotal.Sub(v.ValorFinal),
		ValorFinal:         v.ValorFinal,
		Status:             v.Status,
	}

	if v.Usuario != nil {
		c.Vendedor = v.Usuario.Nome
	}

	if v.Cliente != nil {
		cliente := &dto.ComprovanteCliente{Nome: v.Cliente.Nome}
		if v.Cliente.CPF != nil {
			cliente.CPF = *v.Cliente.CPF
		}
		if v.Cliente.Telefone != nil {
			cliente.Telefone = *v.Cliente.Telefone
		}
		c.Cliente = cliente
	}

	c.Itens = make([]dto.ComprovanteItem, 0, len(v.Itens))
	for _, item := range v.Itens {
		descricao := item.ProdutoID.String()
		if item.Produto != nil {
			descricao = item.Produto.Descricao
		}
		c.Itens = append(c.Itens, dto.ComprovanteItem{
			Descricao:     descricao,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}

	c.Pagamentos = make([]dto.ComprovantePagamento, 0, len(v.Pagamentos))
	for _, p := range v.Pagamentos {
		c.Pagamentos = append(c.Pagamentos, dto.ComprovantePagamento{
			Forma:         p.Forma,
			Valor:         p.Valor,
			Parcelas:      p.Parcelas,
			ValorRecebido: p.ValorRecebido,
			Troco:         p.Troco,
		})
	}

	return c
}
