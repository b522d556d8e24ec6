package handler

import (
	"net/http"

	"github.com/flavyo560/Controle-de-estoque/internal/apierror"
	"github.com/flavyo560/Controle-de-estoque/internal/dto"
	"github.com/flavyo560/Controle-de-estoque/internal/middleware"
	"github.com/flavyo560/Controle-de-estoque/internal/model"
	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// Finalizar godoc
// @Summary      Finalizar uma venda
// @Description  Monta o carrinho, valida estoque e pagamentos, grava a venda e baixa o estoque. Falhas parciais devolvem o id da venda para conciliação.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.FinalizarVendaRequest true "Itens, descontos e pagamentos"
// @Success      201  {object} dto.VendaCriadaResponse
// @Failure      400  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Failure      500  {object} apierror.APIError
// @Router       /v1/vendas [post]
func (h *VendasHandler) Finalizar(c *gin.Context) {
	var req dto.FinalizarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := middleware.UsuarioID(c)
	ctx := c.Request.Context()

	carrinho := h.svc.NovoCarrinho()
	for _, item := range req.Itens {
		produtoID, err := uuid.Parse(item.ProdutoID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("produto_id inválido: "+item.ProdutoID))
			return
		}
		if err := carrinho.AdicionarProduto(ctx, produtoID, item.Quantidade); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := service.ValidarDesconto(req.DescontoPercentual, req.DescontoValor, carrinho.Subtotal()); err != nil {
		respondError(c, err)
		return
	}
	if req.DescontoPercentual != nil && req.DescontoPercentual.IsPositive() {
		if err := carrinho.AplicarDescontoPercentual(*req.DescontoPercentual); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.DescontoValor != nil && req.DescontoValor.IsPositive() {
		if err := carrinho.AplicarDescontoValor(*req.DescontoValor); err != nil {
			respondError(c, err)
			return
		}
	}

	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("cliente_id inválido"))
			return
		}
		clienteID = &id
	}

	vendaID, err := h.svc.Finalizar(ctx, carrinho, req.Pagamentos, clienteID, usuarioID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.VendaCriadaResponse{
		ID:       vendaID.String(),
		Mensagem: "Venda finalizada com sucesso",
	})
}

// Cancelar godoc
// @Summary      Cancelar venda
// @Description  Marca a venda como cancelada e devolve os itens ao estoque.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                   true "UUID da venda"
// @Param        body body dto.CancelarVendaRequest true "Motivo do cancelamento"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Failure      409  {object} apierror.APIError
// @Router       /v1/vendas/{id} [delete]
func (h *VendasHandler) Cancelar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.CancelarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	usuarioID := middleware.UsuarioID(c)

	if err := h.svc.Cancelar(c.Request.Context(), id, req.Motivo, usuarioID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Listar godoc
// @Summary      Listar vendas
// @Description  Lista paginada, filtrável por período, vendedor, cliente e status.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.VendaListResponse
// @Router       /v1/vendas [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	var filter dto.VendaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	vendas, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar vendas"))
		return
	}

	data := make([]dto.VendaResponse, 0, len(vendas))
	for i := range vendas {
		data = append(data, toVendaResponse(&vendas[i]))
	}
	c.JSON(http.StatusOK, dto.VendaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	})
}

// Buscar godoc
// @Summary      Detalhar venda
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200 {object} dto.VendaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/vendas/{id} [get]
func (h *VendasHandler) Buscar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	venda, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	resp := toVendaResponse(venda)
	c.JSON(http.StatusOK, resp)
}

// Comprovante godoc
// @Summary      Comprovante da venda
// @Description  Projeção JSON do comprovante; a formatação fica com o cliente.
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da venda"
// @Success      200 {object} dto.ComprovanteResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/vendas/{id}/comprovante [get]
func (h *VendasHandler) Comprovante(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	comprovante, err := h.svc.Comprovante(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comprovante)
}

func toVendaResponse(v *model.Venda) dto.VendaResponse {
	resp := dto.VendaResponse{
		ID:                 v.ID.String(),
		Subtotal:           v.Subtotal,
		DescontoPercentual: v.DescontoPercentual,
		DescontoValor:      v.DescontoValor,
		ValorFinal:         v.ValorFinal,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if v.Usuario != nil {
		resp.Vendedor = v.Usuario.Nome
	}
	if v.Cliente != nil {
		resp.Cliente = v.Cliente.Nome
	}

	resp.Itens = make([]dto.ItemVendaResponse, 0, len(v.Itens))
	for _, item := range v.Itens {
		descricao := item.ProdutoID.String()
		if item.Produto != nil {
			descricao = item.Produto.Descricao
		}
		resp.Itens = append(resp.Itens, dto.ItemVendaResponse{
			Produto:       descricao,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal,
		})
	}

	resp.Pagamentos = make([]dto.PagamentoRequest, 0, len(v.Pagamentos))
	for _, p := range v.Pagamentos {
		resp.Pagamentos = append(resp.Pagamentos, dto.PagamentoRequest{
			Forma:         p.Forma,
			Valor:         p.Valor,
			Parcelas:      p.Parcelas,
			ValorRecebido: p.ValorRecebido,
			Troco:         p.Troco,
		})
	}
	return resp
}
