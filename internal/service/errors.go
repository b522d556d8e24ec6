package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Taxonomia de erros do ciclo de venda. A severidade cresce na ordem:
// validação (nada persistido) < cabeçalho não gravado (nada persistido) <
// filhos não gravados (cabeçalho órfão) < baixa de estoque incompleta
// (cabeçalho órfão + estoque divergente). Cada nível é distinguível via
// errors.Is / errors.As para que o chamador saiba o que conciliar.
var (
	ErrCarrinhoVazio        = errors.New("carrinho está vazio, adicione produtos antes de finalizar a venda")
	ErrProdutoNaoEncontrado = errors.New("produto não encontrado")
	ErrItemNaoEncontrado    = errors.New("item não está no carrinho")
	ErrVendaNaoEncontrada   = errors.New("venda não encontrada")
	ErrVendaJaCancelada     = errors.New("venda já está cancelada")
	ErrQuantidadeInvalida   = errors.New("quantidade deve ser maior que zero")
	ErrDescontoInvalido     = errors.New("desconto inválido")
)

// EstoqueInsuficienteError agrega as linhas do carrinho reprovadas na
// verificação de disponibilidade. Nada foi persistido quando ele é devolvido.
type EstoqueInsuficienteError struct {
	Problemas []string
}

func (e *EstoqueInsuficienteError) Error() string {
	return "estoque insuficiente: " + strings.Join(e.Problemas, "; ")
}

// PagamentoInvalidoError cobre qualquer reprovação na validação de pagamentos
// (forma desconhecida, parcelas fora de faixa, soma divergente do total).
type PagamentoInvalidoError struct {
	Motivo string
}

func (e *PagamentoInvalidoError) Error() string {
	return "erro na validação de pagamentos: " + e.Motivo
}

// PersistenciaError indica falha antes de qualquer registro durável: o
// cabeçalho da venda não foi gravado e nada precisa ser conciliado.
type PersistenciaError struct {
	Etapa string
	Err   error
}

func (e *PersistenciaError) Error() string {
	return fmt.Sprintf("erro ao registrar %s no banco de dados, tente novamente", e.Etapa)
}

func (e *PersistenciaError) Unwrap() error { return e.Err }

// PersistenciaParcialError é o estado mais grave: existe um registro durável
// (o cabeçalho da venda, ou a venda já marcada como cancelada) mas filhos ou
// baixas de estoque ficaram incompletos. Carrega o id da venda para permitir
// conciliação manual.
type PersistenciaParcialError struct {
	VendaID uuid.UUID
	Etapa   string
	Detalhe string
}

func (e *PersistenciaParcialError) Error() string {
	msg := fmt.Sprintf("venda %s incompleta: falha em %s", e.VendaID, e.Etapa)
	if e.Detalhe != "" {
		msg += ": " + e.Detalhe
	}
	return msg
}
