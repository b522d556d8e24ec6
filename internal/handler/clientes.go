package handler

import (
	"net/http"

	"github.com/flavyo560/Controle-de-estoque/internal/apierror"
	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarClienteRequest true "Dados do cliente"
// @Success      201  {object} dto.ClienteResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toClienteResponse(cliente))
}

// Buscar godoc
// @Summary      Buscar clientes
// @Description  Busca por nome, CPF ou telefone (parcial).
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        termo query string false "Termo de busca"
// @Success      200 {array} dto.ClienteResponse
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Buscar(c *gin.Context) {
	clientes, err := h.svc.Buscar(c.Request.Context(), c.Query("termo"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao buscar clientes"))
		return
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, toClienteResponse(&clientes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorID godoc
// @Summary      Detalhar cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      200 {object} dto.ClienteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) BuscarPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	cliente, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// Atualizar godoc
// @Summary      Atualizar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID do cliente"
// @Param        body body dto.AtualizarClienteRequest true "Campos a alterar"
// @Success      200  {object} dto.ClienteResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id} [put]
func (h *ClientesHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cliente, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toClienteResponse(cliente))
}

// Historico godoc
// @Summary      Histórico de compras do cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do cliente"
// @Success      200 {object} dto.HistoricoComprasResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clientes/{id}/historico [get]
func (h *ClientesHandler) Historico(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	cliente, vendas, err := h.svc.HistoricoCompras(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.HistoricoComprasResponse{
		Cliente:      toClienteResponse(cliente),
		TotalCompras: int64(len(vendas)),
		ValorTotal:   decimal.Zero,
		Vendas:       make([]dto.VendaResponse, 0, len(vendas)),
	}
	for i := range vendas {
		resp.ValorTotal = resp.ValorTotal.Add(vendas[i].ValorFinal)
		resp.Vendas = append(resp.Vendas, toVendaResponse(&vendas[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func toClienteResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:       c.ID.String(),
		Nome:     c.Nome,
		CPF:      c.CPF,
		Telefone: c.Telefone,
		Email:    c.Email,
		Endereco: c.Endereco,
	}
}
