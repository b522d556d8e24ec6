package service

import (
	"testing"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagamento(forma, valor string) dto.PagamentoRequest {
	return dto.PagamentoRequest{Forma: forma, Valor: dec(valor)}
}

func TestValidarPagamentoFormas(t *testing.T) {
	for _, forma := range []string{FormaDinheiro, FormaCartaoCredito, FormaCartaoDebito, FormaPix} {
		assert.NoError(t, ValidarPagamento(pagamento(forma, "10.00")), forma)
	}

	var pagErr *PagamentoInvalidoError
	err := ValidarPagamento(pagamento("cheque", "10.00"))
	require.ErrorAs(t, err, &pagErr)
	assert.Contains(t, pagErr.Motivo, "cheque")
}

func TestValidarPagamentoValorPositivo(t *testing.T) {
	var pagErr *PagamentoInvalidoError
	assert.ErrorAs(t, ValidarPagamento(pagamento(FormaPix, "0")), &pagErr)
	assert.ErrorAs(t, ValidarPagamento(pagamento(FormaPix, "-1.00")), &pagErr)
}

func TestValidarPagamentoParcelas(t *testing.T) {
	umaParcela, doze, treze, zero := 1, 12, 13, 0

	p := pagamento(FormaCartaoCredito, "120.00")
	p.Parcelas = &umaParcela
	assert.NoError(t, ValidarPagamento(p))
	p.Parcelas = &doze
	assert.NoError(t, ValidarPagamento(p))

	var pagErr *PagamentoInvalidoError
	p.Parcelas = &treze
	assert.ErrorAs(t, ValidarPagamento(p), &pagErr)
	p.Parcelas = &zero
	assert.ErrorAs(t, ValidarPagamento(p), &pagErr)

	// Parcelas em forma que não é cartão de crédito.
	debito := pagamento(FormaCartaoDebito, "120.00")
	debito.Parcelas = &umaParcela
	assert.ErrorAs(t, ValidarPagamento(debito), &pagErr)
}

func TestValidarPagamentoDinheiroTroco(t *testing.T) {
	recebido := dec("100.00")
	troco := dec("40.00")
	p := pagamento(FormaDinheiro, "60.00")
	p.ValorRecebido = &recebido
	p.Troco = &troco
	assert.NoError(t, ValidarPagamento(p))

	var pagErr *PagamentoInvalidoError
	trocoErrado := dec("50.00")
	p.Troco = &trocoErrado
	assert.ErrorAs(t, ValidarPagamento(p), &pagErr)

	recebidoInsuficiente := dec("50.00")
	p2 := pagamento(FormaDinheiro, "60.00")
	p2.ValorRecebido = &recebidoInsuficiente
	assert.ErrorAs(t, ValidarPagamento(p2), &pagErr)

	// Recebido/troco em pix não faz sentido.
	pix := pagamento(FormaPix, "60.00")
	pix.ValorRecebido = &recebido
	assert.ErrorAs(t, ValidarPagamento(pix), &pagErr)
}

func TestValidarPagamentosVendaSomaExata(t *testing.T) {
	total := dec("60.00")
	err := ValidarPagamentosVenda([]dto.PagamentoRequest{
		pagamento(FormaDinheiro, "20.00"),
		pagamento(FormaPix, "40.00"),
	}, total)
	assert.NoError(t, err)
}

func TestValidarPagamentosVendaToleranciaDeCentavo(t *testing.T) {
	total := dec("60.00")

	// Um centavo inteiro de diferença reprova.
	var pagErr *PagamentoInvalidoError
	err := ValidarPagamentosVenda([]dto.PagamentoRequest{pagamento(FormaPix, "59.99")}, total)
	require.ErrorAs(t, err, &pagErr)
	assert.Contains(t, pagErr.Motivo, "59.99")
	assert.Contains(t, pagErr.Motivo, "60.00")

	// Fração de centavo (rateio de parcelas) passa.
	err = ValidarPagamentosVenda([]dto.PagamentoRequest{pagamento(FormaPix, "59.995")}, total)
	assert.NoError(t, err)
	err = ValidarPagamentosVenda([]dto.PagamentoRequest{pagamento(FormaPix, "60.005")}, total)
	assert.NoError(t, err)
}

func TestValidarPagamentosVendaListaVazia(t *testing.T) {
	var pagErr *PagamentoInvalidoError
	err := ValidarPagamentosVenda(nil, dec("10.00"))
	assert.ErrorAs(t, err, &pagErr)
}

func TestValidarPagamentosVendaPropagaErroIndividual(t *testing.T) {
	var pagErr *PagamentoInvalidoError
	err := ValidarPagamentosVenda([]dto.PagamentoRequest{
		pagamento(FormaPix, "30.00"),
		pagamento("vale", "30.00"),
	}, dec("60.00"))
	assert.ErrorAs(t, err, &pagErr)
}

func TestValidarDesconto(t *testing.T) {
	subtotal := dec("100.00")
	dezPorCento := dec("10")
	trinta := dec("30.00")
	acima := dec("100.01")
	negativo := dec("-5")
	centoEUm := dec("101")

	assert.NoError(t, ValidarDesconto(&dezPorCento, nil, subtotal))
	assert.NoError(t, ValidarDesconto(nil, &trinta, subtotal))
	assert.NoError(t, ValidarDesconto(nil, nil, subtotal))

	assert.ErrorIs(t, ValidarDesconto(&dezPorCento, &trinta, subtotal), ErrDescontoInvalido)
	assert.ErrorIs(t, ValidarDesconto(&centoEUm, nil, subtotal), ErrDescontoInvalido)
	assert.ErrorIs(t, ValidarDesconto(&negativo, nil, subtotal), ErrDescontoInvalido)
	assert.ErrorIs(t, ValidarDesconto(nil, &acima, subtotal), ErrDescontoInvalido)
	assert.ErrorIs(t, ValidarDesconto(nil, &negativo, subtotal), ErrDescontoInvalido)
}

func TestValidarCPF(t *testing.T) {
	// CPFs com dígitos verificadores corretos.
	assert.True(t, ValidarCPF("52998224725"))
	assert.True(t, ValidarCPF("529.982.247-25"))

	assert.False(t, ValidarCPF("52998224724"))  // dígito verificador errado
	assert.False(t, ValidarCPF("11111111111"))  // sequência repetida
	assert.False(t, ValidarCPF("123"))          // curto demais
	assert.False(t, ValidarCPF(""))             // vazio
	assert.False(t, ValidarCPF("529982247256")) // longo demais
}

func TestNormalizarCPF(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizarCPF("529.982.247-25"))
	assert.Equal(t, "52998224725", NormalizarCPF("52998224725"))
}

func TestValidarEmail(t *testing.T) {
	assert.True(t, ValidarEmail("maria@dekids.com.br"))
	assert.True(t, ValidarEmail("joao.silva+loja@gmail.com"))

	assert.False(t, ValidarEmail("sem-arroba.com"))
	assert.False(t, ValidarEmail("duas@@arrobas.com"))
	assert.False(t, ValidarEmail("sem-dominio@"))
	assert.False(t, ValidarEmail(""))
}
