package service

import (
	"testing"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendaCompleta() *model.Venda {
	cpf := "52998224725"
	telefone := "11988887777"
	parcelas := 3
	recebido := dec("50.00")
	troco := dec("5.00")

	return &model.Venda{
		ID:                 uuid.New(),
		Subtotal:           dec("150.00"),
		DescontoPercentual: dec("10"),
		ValorFinal:         dec("135.00"),
		Status:             model.VendaFinalizada,
		CreatedAt:          time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC),
		Usuario:            &model.Usuario{Nome: "Ana Souza"},
		Cliente:            &model.Cliente{Nome: "Carla Lima", CPF: &cpf, Telefone: &telefone},
		Itens: []model.ItemVenda{
			{
				ProdutoID:     uuid.New(),
				Produto:       &model.Produto{Descricao: "Vestido Festa"},
				Quantidade:    2,
				PrecoUnitario: dec("50.00"),
				Subtotal:      dec("100.00"),
			},
			{
				ProdutoID:     uuid.New(),
				Produto:       &model.Produto{Descricao: "Sapatilha"},
				Quantidade:    1,
				PrecoUnitario: dec("50.00"),
				Subtotal:      dec("50.00"),
			},
		},
		Pagamentos: []model.PagamentoVenda{
			{Forma: FormaCartaoCredito, Valor: dec("90.00"), Parcelas: &parcelas},
			{Forma: FormaDinheiro, Valor: dec("45.00"), ValorRecebido: &recebido, Troco: &troco},
		},
	}
}

func TestGerarComprovante(t *testing.T) {
	venda := vendaCompleta()
	c := GerarComprovante(venda)

	assert.Equal(t, venda.ID.String(), c.NumeroVenda)
	assert.Equal(t, "2025-03-15T14:30:00Z", c.DataHora)
	assert.Equal(t, "Ana Souza", c.Vendedor)
	assert.Equal(t, model.VendaFinalizada, c.Status)

	require.NotNil(t, c.Cliente)
	assert.Equal(t, "Carla Lima", c.Cliente.Nome)
	assert.Equal(t, "52998224725", c.Cliente.CPF)

	assert.True(t, c.Subtotal.Equal(dec("150.00")))
	assert.True(t, c.DescontoTotal.Equal(dec("15.00")))
	assert.True(t, c.ValorFinal.Equal(dec("135.00")))

	require.Len(t, c.Itens, 2)
	assert.Equal(t, "Vestido Festa", c.Itens[0].Descricao)
	assert.Equal(t, 2, c.Itens[0].Quantidade)
	assert.True(t, c.Itens[0].Subtotal.Equal(dec("100.00")))

	require.Len(t, c.Pagamentos, 2)
	assert.Equal(t, FormaCartaoCredito, c.Pagamentos[0].Forma)
	require.NotNil(t, c.Pagamentos[0].Parcelas)
	assert.Equal(t, 3, *c.Pagamentos[0].Parcelas)
	require.NotNil(t, c.Pagamentos[1].Troco)
	assert.True(t, c.Pagamentos[1].Troco.Equal(dec("5.00")))
}

func TestGerarComprovanteSemCliente(t *testing.T) {
	venda := vendaCompleta()
	venda.Cliente = nil

	c := GerarComprovante(venda)
	assert.Nil(t, c.Cliente)
	assert.Len(t, c.Itens, 2)
}

func TestGerarComprovanteVendaCancelada(t *testing.T) {
	venda := vendaCompleta()
	venda.Status = model.VendaCancelada

	c := GerarComprovante(venda)
	assert.Equal(t, model.VendaCancelada, c.Status)
}

func TestGerarComprovanteProdutoSemPreload(t *testing.T) {
	venda := vendaCompleta()
	venda.Itens[0].Produto = nil

	// Sem o produto carregado, a linha mostra o id em vez da descrição.
	c := GerarComprovante(venda)
	assert.Equal(t, venda.Itens[0].ProdutoID.String(), c.Itens[0].Descricao)
}
