package handler

import (
	"net/http"
	"strconv"

	"github.com/flavyo560/Controle-de-estoque/internal/apierror"
	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/gin-gonic/gin"
)

type RelatoriosHandler struct{ svc service.RelatorioService }

func NewRelatoriosHandler(svc service.RelatorioService) *RelatoriosHandler {
	return &RelatoriosHandler{svc: svc}
}

// ResumoVendas godoc
// @Summary      Resumo de vendas do período
// @Description  Totais, faturamento, descontos, ticket médio e quebra por forma de pagamento. Só vendas finalizadas.
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        inicio query string false "Data inicial"
// @Param        fim    query string false "Data final"
// @Success      200 {object} dto.RelatorioVendasResponse
// @Router       /v1/relatorios/vendas [get]
func (h *RelatoriosHandler) ResumoVendas(c *gin.Context) {
	resumo, err := h.svc.ResumoVendas(c.Request.Context(), c.Query("inicio"), c.Query("fim"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório de vendas"))
		return
	}
	c.JSON(http.StatusOK, resumo)
}

// ProdutosMaisVendidos godoc
// @Summary      Produtos mais vendidos
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        inicio query string false "Data inicial"
// @Param        fim    query string false "Data final"
// @Param        limite query int    false "Quantidade de produtos (default 10)"
// @Success      200 {array} dto.ProdutoMaisVendido
// @Router       /v1/relatorios/produtos-mais-vendidos [get]
func (h *RelatoriosHandler) ProdutosMaisVendidos(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "10"))
	produtos, err := h.svc.ProdutosMaisVendidos(c.Request.Context(), c.Query("inicio"), c.Query("fim"), limite)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório"))
		return
	}
	c.JSON(http.StatusOK, produtos)
}

// VendasPorVendedor godoc
// @Summary      Vendas por vendedor
// @Tags         relatorios
// @Produce      json
// @Security     BearerAuth
// @Param        inicio query string false "Data inicial"
// @Param        fim    query string false "Data final"
// @Success      200 {array} dto.VendasPorVendedor
// @Router       /v1/relatorios/vendas-por-vendedor [get]
func (h *RelatoriosHandler) VendasPorVendedor(c *gin.Context) {
	vendedores, err := h.svc.VendasPorVendedor(c.Request.Context(), c.Query("inicio"), c.Query("fim"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao gerar relatório"))
		return
	}
	c.JSON(http.StatusOK, vendedores)
}
