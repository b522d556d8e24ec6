package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/flavyo560/Controle-de-estoque/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemCarrinho é uma linha do carrinho. Descrição, preço e estoque são
// fotografias do momento em que o produto entrou no carrinho; só o estoque
// é atualizado pela verificação de disponibilidade.
type ItemCarrinho struct {
	ProdutoID         uuid.UUID
	Descricao         string
	Quantidade        int
	PrecoUnitario     decimal.Decimal
	EstoqueDisponivel int
}

// Subtotal retorna quantidade × preço unitário.
func (i ItemCarrinho) Subtotal() decimal.Decimal {
	return i.PrecoUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}

// Carrinho agrega os produtos selecionados durante um atendimento.
// Vive apenas em memória, pertence a um único caixa e nunca é persistido:
// é zerado após a finalização da venda ou por Limpar().
//
// Invariantes: no máximo um dos dois descontos é diferente de zero por vez,
// e o total nunca fica negativo (piso em zero).
type Carrinho struct {
	itens              []ItemCarrinho
	descontoPercentual decimal.Decimal
	descontoValor      decimal.Decimal

	produtos repository.ProdutoRepository
}

func NewCarrinho(produtos repository.ProdutoRepository) *Carrinho {
	return &Carrinho{produtos: produtos}
}

// AdicionarProduto busca preço e estoque atuais do produto e o adiciona ao
// carrinho, somando à quantidade existente se o produto já estiver nele.
// Falha sem alterar nada se o produto não existir ou se a quantidade
// resultante exceder o estoque disponível.
func (c *Carrinho) AdicionarProduto(ctx context.Context, produtoID uuid.UUID, quantidade int) error {
	if quantidade <= 0 {
		return ErrQuantidadeInvalida
	}

	p, err := c.produtos.FindByID(ctx, produtoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProdutoNaoEncontrado
		}
		return err
	}

	for idx := range c.itens {
		if c.itens[idx].ProdutoID == produtoID {
			nova := c.itens[idx].Quantidade + quantidade
			if nova > p.Quantidade {
				return &EstoqueInsuficienteError{Problemas: []string{
					fmt.Sprintf("Produto %s: estoque insuficiente. Disponível: %d, Solicitado: %d",
						p.Descricao, p.Quantidade, nova),
				}}
			}
			c.itens[idx].Quantidade = nova
			return nil
		}
	}

	if quantidade > p.Quantidade {
		return &EstoqueInsuficienteError{Problemas: []string{
			fmt.Sprintf("Produto %s: estoque insuficiente. Disponível: %d, Solicitado: %d",
				p.Descricao, p.Quantidade, quantidade),
		}}
	}

	c.itens = append(c.itens, ItemCarrinho{
		ProdutoID:         produtoID,
		Descricao:         p.Descricao,
		Quantidade:        quantidade,
		PrecoUnitario:     p.Preco,
		EstoqueDisponivel: p.Quantidade,
	})
	return nil
}

// RemoverProduto tira a linha do carrinho; ErrItemNaoEncontrado se ausente.
func (c *Carrinho) RemoverProduto(produtoID uuid.UUID) error {
	for idx := range c.itens {
		if c.itens[idx].ProdutoID == produtoID {
			c.itens = append(c.itens[:idx], c.itens[idx+1:]...)
			return nil
		}
	}
	return ErrItemNaoEncontrado
}

// AtualizarQuantidade substitui a quantidade de uma linha, validando contra
// o estoque conhecido pela linha (sem nova consulta ao banco).
func (c *Carrinho) AtualizarQuantidade(produtoID uuid.UUID, quantidade int) error {
	for idx := range c.itens {
		if c.itens[idx].ProdutoID == produtoID {
			if quantidade <= 0 {
				return ErrQuantidadeInvalida
			}
			if quantidade > c.itens[idx].EstoqueDisponivel {
				return &EstoqueInsuficienteError{Problemas: []string{
					fmt.Sprintf("Produto %s: estoque insuficiente. Disponível: %d, Solicitado: %d",
						c.itens[idx].Descricao, c.itens[idx].EstoqueDisponivel, quantidade),
				}}
			}
			c.itens[idx].Quantidade = quantidade
			return nil
		}
	}
	return ErrItemNaoEncontrado
}

// Subtotal soma os subtotais de todas as linhas; zero para carrinho vazio.
func (c *Carrinho) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.itens {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Desconto calcula o valor do desconto aplicado. Desconto em valor fixo tem
// prioridade sobre o percentual quando ambos estiverem definidos.
func (c *Carrinho) Desconto() decimal.Decimal {
	if c.descontoValor.IsPositive() {
		return c.descontoValor
	}
	if c.descontoPercentual.IsPositive() {
		return c.Subtotal().Mul(c.descontoPercentual).Div(decimal.NewFromInt(100))
	}
	return decimal.Zero
}

// Total retorna subtotal − desconto, nunca negativo.
func (c *Carrinho) Total() decimal.Decimal {
	total := c.Subtotal().Sub(c.Desconto())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// AplicarDescontoPercentual valida 0 ≤ p ≤ 100 e aplica o percentual,
// zerando qualquer desconto em valor (só um tipo de desconto por vez).
// Uma chamada reprovada não altera o estado do carrinho.
func (c *Carrinho) AplicarDescontoPercentual(p decimal.Decimal) error {
	cem := decimal.NewFromInt(100)
	if p.IsNegative() || p.GreaterThan(cem) {
		return fmt.Errorf("%w: percentual deve estar entre 0 e 100", ErrDescontoInvalido)
	}
	// Pela fórmula o resultado nunca fica negativo, mas a regra é validada
	// mesmo assim.
	desconto := c.Subtotal().Mul(p).Div(cem)
	if c.Subtotal().Sub(desconto).IsNegative() {
		return fmt.Errorf("%w: desconto resulta em valor negativo", ErrDescontoInvalido)
	}
	c.descontoPercentual = p
	c.descontoValor = decimal.Zero
	return nil
}

// AplicarDescontoValor valida 0 ≤ v ≤ subtotal e aplica o valor fixo,
// zerando qualquer desconto percentual.
func (c *Carrinho) AplicarDescontoValor(v decimal.Decimal) error {
	if v.IsNegative() {
		return fmt.Errorf("%w: desconto não pode ser negativo", ErrDescontoInvalido)
	}
	if v.GreaterThan(c.Subtotal()) {
		return fmt.Errorf("%w: desconto não pode exceder o total do carrinho", ErrDescontoInvalido)
	}
	c.descontoValor = v
	c.descontoPercentual = decimal.Zero
	return nil
}

// RemoverDesconto zera os dois campos de desconto.
func (c *Carrinho) RemoverDesconto() {
	c.descontoPercentual = decimal.Zero
	c.descontoValor = decimal.Zero
}

// Limpar esvazia o carrinho e zera os descontos, preparando uma nova venda.
func (c *Carrinho) Limpar() {
	c.itens = nil
	c.descontoPercentual = decimal.Zero
	c.descontoValor = decimal.Zero
}

// Itens devolve uma cópia das linhas do carrinho.
func (c *Carrinho) Itens() []ItemCarrinho {
	out := make([]ItemCarrinho, len(c.itens))
	copy(out, c.itens)
	return out
}

func (c *Carrinho) Vazio() bool { return len(c.itens) == 0 }

// DescontoPercentual e DescontoValor expõem os campos aplicados para o
// registro da venda.
func (c *Carrinho) DescontoPercentual() decimal.Decimal { return c.descontoPercentual }
func (c *Carrinho) DescontoValor() decimal.Decimal      { return c.descontoValor }

// ValidarDisponibilidade reconsulta o estoque atual de cada linha e devolve
// (tudo_ok, problemas). É a checagem de pré-voo executada imediatamente antes
// de finalizar: não altera quantidades, apenas atualiza o estoque conhecido
// de cada linha. Erros de consulta viram mensagens, nunca pânico.
func (c *Carrinho) ValidarDisponibilidade(ctx context.Context) (bool, []string) {
	if len(c.itens) == 0 {
		return true, nil
	}

	var problemas []string
	for idx := range c.itens {
		item := &c.itens[idx]
		p, err := c.produtos.FindByID(ctx, item.ProdutoID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				problemas = append(problemas,
					fmt.Sprintf("Produto %s: não encontrado no banco de dados", item.Descricao))
			} else {
				problemas = append(problemas,
					fmt.Sprintf("Produto %s: erro ao validar disponibilidade: %v", item.Descricao, err))
			}
			continue
		}

		item.EstoqueDisponivel = p.Quantidade
		if item.Quantidade > p.Quantidade {
			problemas = append(problemas,
				fmt.Sprintf("Produto %s: estoque insuficiente. Disponível: %d, Solicitado: %d",
					p.Descricao, p.Quantidade, item.Quantidade))
		}
	}

	return len(problemas) == 0, problemas
}
