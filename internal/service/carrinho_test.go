package service

import (
	"context"
	"testing"

	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func novoCarrinhoComProduto(t *testing.T, preco string, estoque int) (*Carrinho, *stubProdutoRepo, *model.Produto) {
	t.Helper()
	repo := newStubProdutoRepo()
	p := repo.add(&model.Produto{
		CodigoBarras: "7891234560001",
		Descricao:    "Camiseta Dino",
		Preco:        dec(preco),
		Quantidade:   estoque,
	})
	return NewCarrinho(repo), repo, p
}

func TestCarrinhoAdicionarProduto(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "29.90", 10)

	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 2))
	require.Len(t, carrinho.Itens(), 1)
	assert.True(t, carrinho.Subtotal().Equal(dec("59.80")))

	// Mesmo produto de novo soma quantidade em vez de criar outra linha.
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 1))
	require.Len(t, carrinho.Itens(), 1)
	assert.Equal(t, 3, carrinho.Itens()[0].Quantidade)
}

func TestCarrinhoAdicionarProdutoInexistente(t *testing.T) {
	carrinho, _, _ := novoCarrinhoComProduto(t, "29.90", 10)

	err := carrinho.AdicionarProduto(context.Background(), uuid.New(), 1)
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)
	assert.True(t, carrinho.Vazio())
}

func TestCarrinhoAdicionarAlemDoEstoque(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "29.90", 3)

	var estoqueErr *EstoqueInsuficienteError
	err := carrinho.AdicionarProduto(ctx, p.ID, 4)
	require.ErrorAs(t, err, &estoqueErr)
	assert.True(t, carrinho.Vazio())

	// Acumular até passar do estoque também falha, sem alterar a linha.
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 2))
	err = carrinho.AdicionarProduto(ctx, p.ID, 2)
	require.ErrorAs(t, err, &estoqueErr)
	assert.Equal(t, 2, carrinho.Itens()[0].Quantidade)
}

func TestCarrinhoQuantidadeInvalida(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "10.00", 5)

	assert.ErrorIs(t, carrinho.AdicionarProduto(ctx, p.ID, 0), ErrQuantidadeInvalida)
	assert.ErrorIs(t, carrinho.AdicionarProduto(ctx, p.ID, -1), ErrQuantidadeInvalida)

	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 1))
	assert.ErrorIs(t, carrinho.AtualizarQuantidade(p.ID, 0), ErrQuantidadeInvalida)
}

func TestCarrinhoRemoverProduto(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "10.00", 5)

	assert.ErrorIs(t, carrinho.RemoverProduto(p.ID), ErrItemNaoEncontrado)

	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 2))
	require.NoError(t, carrinho.RemoverProduto(p.ID))
	assert.True(t, carrinho.Vazio())
	assert.True(t, carrinho.Subtotal().IsZero())
}

func TestCarrinhoDescontoPercentual(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "50.00", 10)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 2))

	require.NoError(t, carrinho.AplicarDescontoPercentual(dec("10")))
	assert.True(t, carrinho.Desconto().Equal(dec("10.00")))
	assert.True(t, carrinho.Total().Equal(dec("90.00")))

	// Fora de faixa não altera o estado.
	assert.ErrorIs(t, carrinho.AplicarDescontoPercentual(dec("101")), ErrDescontoInvalido)
	assert.ErrorIs(t, carrinho.AplicarDescontoPercentual(dec("-1")), ErrDescontoInvalido)
	assert.True(t, carrinho.Total().Equal(dec("90.00")))
}

func TestCarrinhoDescontoValor(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "50.00", 10)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 2))

	require.NoError(t, carrinho.AplicarDescontoValor(dec("15.50")))
	assert.True(t, carrinho.Total().Equal(dec("84.50")))

	assert.ErrorIs(t, carrinho.AplicarDescontoValor(dec("100.01")), ErrDescontoInvalido)
	assert.ErrorIs(t, carrinho.AplicarDescontoValor(dec("-5")), ErrDescontoInvalido)
}

func TestCarrinhoDescontosSaoExclusivos(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "100.00", 10)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 1))

	require.NoError(t, carrinho.AplicarDescontoPercentual(dec("10")))
	require.NoError(t, carrinho.AplicarDescontoValor(dec("30.00")))

	// O desconto em valor substituiu o percentual.
	assert.True(t, carrinho.DescontoPercentual().IsZero())
	assert.True(t, carrinho.Total().Equal(dec("70.00")))

	require.NoError(t, carrinho.AplicarDescontoPercentual(dec("50")))
	assert.True(t, carrinho.DescontoValor().IsZero())
	assert.True(t, carrinho.Total().Equal(dec("50.00")))

	carrinho.RemoverDesconto()
	assert.True(t, carrinho.Total().Equal(dec("100.00")))
}

func TestCarrinhoTotalNuncaNegativo(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "100.00", 10)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 1))
	require.NoError(t, carrinho.AplicarDescontoValor(dec("100.00")))

	assert.True(t, carrinho.Total().IsZero())
	assert.False(t, carrinho.Total().IsNegative())
}

func TestCarrinhoLimpar(t *testing.T) {
	ctx := context.Background()
	carrinho, _, p := novoCarrinhoComProduto(t, "10.00", 5)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 2))
	require.NoError(t, carrinho.AplicarDescontoPercentual(dec("10")))

	carrinho.Limpar()
	assert.True(t, carrinho.Vazio())
	assert.True(t, carrinho.Desconto().IsZero())
	assert.True(t, carrinho.Total().IsZero())
}

func TestCarrinhoValidarDisponibilidade(t *testing.T) {
	ctx := context.Background()
	carrinho, repo, p := novoCarrinhoComProduto(t, "10.00", 5)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 4))

	ok, problemas := carrinho.ValidarDisponibilidade(ctx)
	assert.True(t, ok)
	assert.Empty(t, problemas)

	// Outro caixa vendeu no meio tempo: estoque caiu abaixo do carrinho.
	repo.produtos[p.ID].Quantidade = 2
	ok, problemas = carrinho.ValidarDisponibilidade(ctx)
	assert.False(t, ok)
	require.Len(t, problemas, 1)
	assert.Contains(t, problemas[0], "Camiseta Dino")
	assert.Contains(t, problemas[0], "Disponível: 2")
	assert.Contains(t, problemas[0], "Solicitado: 4")

	// A linha do carrinho teve o estoque conhecido atualizado, não a quantidade.
	assert.Equal(t, 4, carrinho.Itens()[0].Quantidade)
	assert.Equal(t, 2, carrinho.Itens()[0].EstoqueDisponivel)
}

func TestCarrinhoValidarDisponibilidadeProdutoSumiu(t *testing.T) {
	ctx := context.Background()
	carrinho, repo, p := novoCarrinhoComProduto(t, "10.00", 5)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 1))

	delete(repo.produtos, p.ID)
	ok, problemas := carrinho.ValidarDisponibilidade(ctx)
	assert.False(t, ok)
	require.Len(t, problemas, 1)
	assert.Contains(t, problemas[0], "não encontrado")
}

func TestCarrinhoVazioDisponibilidadeOk(t *testing.T) {
	carrinho, _, _ := novoCarrinhoComProduto(t, "10.00", 5)
	ok, problemas := carrinho.ValidarDisponibilidade(context.Background())
	assert.True(t, ok)
	assert.Nil(t, problemas)
}

func TestCarrinhoPrecoCongelado(t *testing.T) {
	ctx := context.Background()
	carrinho, repo, p := novoCarrinhoComProduto(t, "29.90", 10)
	require.NoError(t, carrinho.AdicionarProduto(ctx, p.ID, 1))

	// Reajuste de preço depois do produto entrar no carrinho não muda a linha.
	repo.produtos[p.ID].Preco = dec("39.90")
	assert.True(t, carrinho.Subtotal().Equal(dec("29.90")))
}
