package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/flavyo560/Controle-de-estoque/internal/apierror"
	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/middleware"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// RegistrarMovimentacao godoc
// @Summary      Registrar movimentação de estoque
// @Description  Entrada, saída ou ajuste manual. Grava a linha de auditoria na mesma transação que altera a quantidade.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.MovimentacaoRequest true "Movimentação"
// @Success      201  {object} dto.MovimentacaoResponse
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/estoque/movimentacoes [post]
func (h *EstoqueHandler) RegistrarMovimentacao(c *gin.Context) {
	var req dto.MovimentacaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	produtoID, err := uuid.Parse(req.ProdutoID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("produto_id inválido"))
		return
	}

	mov, err := h.svc.RegistrarMovimentacao(c.Request.Context(), produtoID, req.Tipo,
		req.Quantidade, req.Observacao, middleware.UsuarioID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toMovimentacaoResponse(mov))
}

// ListarMovimentacoes godoc
// @Summary      Listar movimentações
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id query string false "Filtrar por produto"
// @Param        tipo       query string false "entrada | saida | ajuste"
// @Param        inicio     query string false "Data inicial"
// @Param        fim        query string false "Data final"
// @Success      200 {array} dto.MovimentacaoResponse
// @Router       /v1/estoque/movimentacoes [get]
func (h *EstoqueHandler) ListarMovimentacoes(c *gin.Context) {
	var filter dto.MovimentacaoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	movs, err := h.svc.ListarMovimentacoes(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar movimentações"))
		return
	}
	resp := make([]dto.MovimentacaoResponse, 0, len(movs))
	for i := range movs {
		resp = append(resp, toMovimentacaoResponse(&movs[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas godoc
// @Summary      Produtos com estoque baixo
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.AlertaEstoqueResponse
// @Router       /v1/estoque/alertas [get]
func (h *EstoqueHandler) Alertas(c *gin.Context) {
	alertas, err := h.svc.VerificarEstoqueBaixo(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao verificar estoque"))
		return
	}
	c.JSON(http.StatusOK, alertas)
}

// ValorTotal godoc
// @Summary      Valor total do estoque
// @Description  Soma preço × quantidade de todo o catálogo.
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ValorEstoqueResponse
// @Router       /v1/estoque/valor-total [get]
func (h *EstoqueHandler) ValorTotal(c *gin.Context) {
	total, err := h.svc.ValorTotalEstoque(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao calcular valor do estoque"))
		return
	}
	c.JSON(http.StatusOK, dto.ValorEstoqueResponse{ValorTotal: total})
}

// SemMovimentacao godoc
// @Summary      Produtos parados
// @Description  Produtos com estoque que não movimentam há N dias (default 30).
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Param        dias query int false "Dias sem movimentação"
// @Success      200 {array} dto.ProdutoSemMovimentacaoResponse
// @Router       /v1/estoque/sem-movimentacao [get]
func (h *EstoqueHandler) SemMovimentacao(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "30"))
	parados, err := h.svc.ProdutosSemMovimentacao(c.Request.Context(), dias)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar produtos parados"))
		return
	}
	c.JSON(http.StatusOK, parados)
}

func toMovimentacaoResponse(m *model.MovimentacaoEstoque) dto.MovimentacaoResponse {
	resp := dto.MovimentacaoResponse{
		ID:                 m.ID.String(),
		ProdutoID:          m.ProdutoID.String(),
		Tipo:               m.Tipo,
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		Observacao:         m.Observacao,
		CreatedAt:          m.CreatedAt.Format(time.RFC3339),
	}
	if m.Produto != nil {
		resp.Produto = m.Produto.Descricao
	}
	return resp
}
