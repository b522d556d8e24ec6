package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flavyo560/Controle-de-estoque/internal/dto"

	"github.com/shopspring/decimal"
)

// Formas de pagamento aceitas no caixa.
const (
	FormaDinheiro      = "dinheiro"
	FormaCartaoCredito = "cartao_credito"
	FormaCartaoDebito  = "cartao_debito"
	FormaPix           = "pix"
)

const (
	MinParcelas = 1
	MaxParcelas = 12
)

var formasValidas = map[string]bool{
	FormaDinheiro:      true,
	FormaCartaoCredito: true,
	FormaCartaoDebito:  true,
	FormaPix:           true,
}

// toleranciaPagamento é o limite de divergência aceito entre a soma dos
// pagamentos e o total da venda. A comparação é estrita (diferença < 0.01):
// um centavo inteiro de diferença já reprova, frações de centavo vindas de
// rateio de parcelas passam.
var toleranciaPagamento = decimal.New(1, -2)

// ValidarPagamento valida um pagamento isolado: forma conhecida, valor
// positivo e regras condicionais por forma (parcelas só em cartão de
// crédito, recebido/troco coerentes em dinheiro).
func ValidarPagamento(p dto.PagamentoRequest) error {
	if !formasValidas[p.Forma] {
		return &PagamentoInvalidoError{Motivo: fmt.Sprintf("forma de pagamento inválida: %s", p.Forma)}
	}
	if !p.Valor.IsPositive() {
		return &PagamentoInvalidoError{Motivo: "valor do pagamento deve ser maior que zero"}
	}

	if p.Parcelas != nil {
		if p.Forma != FormaCartaoCredito {
			return &PagamentoInvalidoError{Motivo: "parcelamento só é permitido para cartão de crédito"}
		}
		if *p.Parcelas < MinParcelas || *p.Parcelas > MaxParcelas {
			return &PagamentoInvalidoError{
				Motivo: fmt.Sprintf("número de parcelas deve estar entre %d e %d", MinParcelas, MaxParcelas),
			}
		}
	}

	if p.Forma == FormaDinheiro && p.ValorRecebido != nil {
		if p.ValorRecebido.LessThan(p.Valor) {
			return &PagamentoInvalidoError{Motivo: "valor recebido é menor que o valor do pagamento"}
		}
		if p.Troco != nil {
			esperado := p.ValorRecebido.Sub(p.Valor)
			if !p.Troco.Sub(esperado).Abs().LessThan(toleranciaPagamento) {
				return &PagamentoInvalidoError{
					Motivo: fmt.Sprintf("troco informado (%s) difere do esperado (%s)",
						p.Troco.StringFixed(2), esperado.StringFixed(2)),
				}
			}
		}
	}
	if p.Forma != FormaDinheiro && (p.ValorRecebido != nil || p.Troco != nil) {
		return &PagamentoInvalidoError{Motivo: "valor recebido e troco só se aplicam a pagamento em dinheiro"}
	}

	return nil
}

// ValidarPagamentosVenda valida a lista completa de pagamentos de uma venda:
// pelo menos um pagamento, cada um válido individualmente e soma batendo com
// o total da venda dentro da tolerância de centavo.
func ValidarPagamentosVenda(pagamentos []dto.PagamentoRequest, total decimal.Decimal) error {
	if len(pagamentos) == 0 {
		return &PagamentoInvalidoError{Motivo: "informe pelo menos uma forma de pagamento"}
	}

	soma := decimal.Zero
	for _, p := range pagamentos {
		if err := ValidarPagamento(p); err != nil {
			return err
		}
		soma = soma.Add(p.Valor)
	}

	if !soma.Sub(total).Abs().LessThan(toleranciaPagamento) {
		return &PagamentoInvalidoError{
			Motivo: fmt.Sprintf("soma dos pagamentos (R$ %s) difere do total da venda (R$ %s)",
				soma.StringFixed(2), total.StringFixed(2)),
		}
	}
	return nil
}

// ValidarDesconto reprova pedidos que informem os dois tipos de desconto ao
// mesmo tempo ou valores fora de faixa.
func ValidarDesconto(percentual, valor *decimal.Decimal, subtotal decimal.Decimal) error {
	if percentual != nil && valor != nil && percentual.IsPositive() && valor.IsPositive() {
		return fmt.Errorf("%w: informe desconto percentual ou em valor, não ambos", ErrDescontoInvalido)
	}
	if percentual != nil {
		if percentual.IsNegative() || percentual.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%w: percentual deve estar entre 0 e 100", ErrDescontoInvalido)
		}
	}
	if valor != nil {
		if valor.IsNegative() {
			return fmt.Errorf("%w: desconto não pode ser negativo", ErrDescontoInvalido)
		}
		if valor.GreaterThan(subtotal) {
			return fmt.Errorf("%w: desconto não pode exceder o total do carrinho", ErrDescontoInvalido)
		}
	}
	return nil
}

var naoDigitos = regexp.MustCompile(`\D`)

// ValidarCPF confere os 11 dígitos e os dois dígitos verificadores do CPF.
// Aceita o número com ou sem máscara (pontos e traço).
func ValidarCPF(cpf string) bool {
	digitos := naoDigitos.ReplaceAllString(cpf, "")
	if len(digitos) != 11 {
		return false
	}
	// Sequências repetidas (000..., 111...) passam na conta mas são inválidas.
	if strings.Count(digitos, string(digitos[0])) == 11 {
		return false
	}

	dv := func(base string, pesoInicial int) int {
		soma := 0
		for i, r := range base {
			soma += int(r-'0') * (pesoInicial - i)
		}
		resto := soma % 11
		if resto < 2 {
			return 0
		}
		return 11 - resto
	}

	if dv(digitos[:9], 10) != int(digitos[9]-'0') {
		return false
	}
	return dv(digitos[:10], 11) == int(digitos[10]-'0')
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidarEmail faz uma checagem sintática simples de e-mail.
func ValidarEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// NormalizarCPF remove a máscara, deixando só os 11 dígitos.
func NormalizarCPF(cpf string) string {
	return naoDigitos.ReplaceAllString(cpf, "")
}
