package service

import (
	"context"
	"testing"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrarMovimentacaoEntrada(t *testing.T) {
	ctx := context.Background()
	svc, produtos, movs, _ := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Calça Jogger", Preco: dec("40.00"), Quantidade: 2, EstoqueMinimo: 5})
	usuarioID := uuid.New()

	mov, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovEntrada, 10, "reposição do fornecedor", usuarioID)
	require.NoError(t, err)

	assert.Equal(t, 2, mov.QuantidadeAnterior)
	assert.Equal(t, 12, mov.QuantidadeNova)
	assert.Equal(t, usuarioID, mov.UsuarioID)
	assert.Equal(t, 12, produtos.produtos[p.ID].Quantidade)
	require.Len(t, movs.movs, 1)
}

func TestRegistrarMovimentacaoSaida(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, _ := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Boné Aba Reta", Preco: dec("25.00"), Quantidade: 10})

	mov, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, 3, "", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 7, mov.QuantidadeNova)
	assert.Equal(t, 7, produtos.produtos[p.ID].Quantidade)
}

func TestRegistrarMovimentacaoSaidaSemEstoque(t *testing.T) {
	ctx := context.Background()
	svc, produtos, movs, _ := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Luva Tricô", Preco: dec("15.00"), Quantidade: 2})

	var estoqueErr *EstoqueInsuficienteError
	_, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, 3, "", uuid.New())
	require.ErrorAs(t, err, &estoqueErr)
	assert.Contains(t, estoqueErr.Problemas[0], "Luva Tricô")

	// Nada muda em caso de reprovação.
	assert.Equal(t, 2, produtos.produtos[p.ID].Quantidade)
	assert.Empty(t, movs.movs)
}

func TestRegistrarMovimentacaoAjuste(t *testing.T) {
	ctx := context.Background()
	svc, produtos, movs, _ := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Touca Pompom", Preco: dec("18.00"), Quantidade: 9, EstoqueMinimo: 2})

	// Ajuste é absoluto: a contagem física encontrou 4 peças.
	mov, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovAjuste, 4, "inventário anual", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 9, mov.QuantidadeAnterior)
	assert.Equal(t, 4, mov.QuantidadeNova)
	assert.Equal(t, 4, produtos.produtos[p.ID].Quantidade)
	require.Len(t, movs.movs, 1)
}

func TestRegistrarMovimentacaoValidacoes(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, _ := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Cachecol", Preco: dec("22.00"), Quantidade: 5})

	_, err := svc.RegistrarMovimentacao(ctx, uuid.New(), model.MovEntrada, 1, "", uuid.New())
	assert.ErrorIs(t, err, ErrProdutoNaoEncontrado)

	_, err = svc.RegistrarMovimentacao(ctx, p.ID, model.MovEntrada, 0, "", uuid.New())
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)

	_, err = svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, -2, "", uuid.New())
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)

	_, err = svc.RegistrarMovimentacao(ctx, p.ID, model.MovAjuste, -1, "", uuid.New())
	assert.ErrorIs(t, err, ErrQuantidadeInvalida)

	_, err = svc.RegistrarMovimentacao(ctx, p.ID, "transferencia", 1, "", uuid.New())
	assert.Error(t, err)
}

func TestAlertaPublicadoQuandoSaidaCruzaMinimo(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, alertas := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Shorts Praia", Preco: dec("30.00"), Quantidade: 7, EstoqueMinimo: 5})

	// 7 → 6: ainda acima do mínimo, sem alerta.
	_, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, 1, "", uuid.New())
	require.NoError(t, err)
	assert.Empty(t, alertas.alertas)

	// 6 → 4: cruzou o mínimo, alerta publicado.
	_, err = svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, 2, "", uuid.New())
	require.NoError(t, err)
	require.Len(t, alertas.alertas, 1)
	assert.Equal(t, p.ID, alertas.alertas[0].ProdutoID)
	assert.Equal(t, 4, alertas.alertas[0].Quantidade)
	assert.Equal(t, 5, alertas.alertas[0].EstoqueMinimo)
}

func TestAlertaNaoPublicadoEmEntrada(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, alertas := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Sandália", Preco: dec("35.00"), Quantidade: 1, EstoqueMinimo: 5})

	// Entrada que ainda deixa abaixo do mínimo não dispara alerta.
	// O alerta é sobre queda, não sobre o nível em si.
	_, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovEntrada, 2, "", uuid.New())
	require.NoError(t, err)
	assert.Empty(t, alertas.alertas)
}

func TestFalhaNaFilaNaoDesfazMovimentacao(t *testing.T) {
	ctx := context.Background()
	produtos := newStubProdutoRepo()
	movs := newStubMovimentacaoRepo()
	alertas := &stubPublicadorAlertas{err: errBanco}
	svc := NewEstoqueService(produtos, movs, alertas, zerolog.Nop())

	p := produtos.add(&model.Produto{Descricao: "Body Liso", Preco: dec("12.00"), Quantidade: 5, EstoqueMinimo: 5})

	_, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, 1, "", uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 4, produtos.produtos[p.ID].Quantidade)
	require.Len(t, movs.movs, 1)
}

func TestVerificarEstoqueBaixo(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, _ := buildEstoqueSvc()
	baixo := produtos.add(&model.Produto{Descricao: "Regata", Referencia: "RG-01", Preco: dec("15.00"), Quantidade: 2, EstoqueMinimo: 5})
	produtos.add(&model.Produto{Descricao: "Calça", Preco: dec("45.00"), Quantidade: 20, EstoqueMinimo: 5})

	alertas, err := svc.VerificarEstoqueBaixo(ctx)
	require.NoError(t, err)
	require.Len(t, alertas, 1)
	assert.Equal(t, baixo.ID.String(), alertas[0].ProdutoID)
	assert.Equal(t, "RG-01", alertas[0].Referencia)
}

func TestValorTotalEstoque(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, _ := buildEstoqueSvc()
	produtos.add(&model.Produto{Descricao: "A", Preco: dec("10.00"), Quantidade: 3})
	produtos.add(&model.Produto{Descricao: "B", Preco: dec("2.50"), Quantidade: 4})

	total, err := svc.ValorTotalEstoque(ctx)
	require.NoError(t, err)
	assert.True(t, total.Equal(dec("40.00")))
}

func TestProdutosSemMovimentacao(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, _ := buildEstoqueSvc()
	parado := produtos.add(&model.Produto{Descricao: "Colete", Preco: dec("55.00"), Quantidade: 3})
	produtos.add(&model.Produto{Descricao: "Zerado", Preco: dec("9.00"), Quantidade: 0})
	ativo := produtos.add(&model.Produto{Descricao: "Mochila", Preco: dec("80.00"), Quantidade: 6})

	// Só o produto ativo movimentou recentemente.
	_, err := svc.RegistrarMovimentacao(ctx, ativo.ID, model.MovSaida, 1, "", uuid.New())
	require.NoError(t, err)

	parados, err := svc.ProdutosSemMovimentacao(ctx, 30)
	require.NoError(t, err)
	require.Len(t, parados, 1)
	assert.Equal(t, parado.ID.String(), parados[0].ProdutoID)
	assert.Nil(t, parados[0].UltimaMovimentacao)
}

func TestListarMovimentacoes(t *testing.T) {
	ctx := context.Background()
	svc, produtos, _, _ := buildEstoqueSvc()
	p := produtos.add(&model.Produto{Descricao: "Pantufa", Preco: dec("20.00"), Quantidade: 10})

	_, err := svc.RegistrarMovimentacao(ctx, p.ID, model.MovSaida, 2, "", uuid.New())
	require.NoError(t, err)
	_, err = svc.RegistrarMovimentacao(ctx, p.ID, model.MovEntrada, 5, "", uuid.New())
	require.NoError(t, err)

	lista, err := svc.ListarMovimentacoes(ctx, dto.MovimentacaoFilter{})
	require.NoError(t, err)
	assert.Len(t, lista, 2)
}
