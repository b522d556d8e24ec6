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

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarProdutoRequest true "Dados do produto"
// @Success      201  {object} dto.ProdutoResponse
// @Failure      409  {object} apierror.APIError
// @Router       /v1/produtos [post]
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Criar(c.Request.Context(), req, middleware.UsuarioID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProdutoResponse(p))
}

// Listar godoc
// @Summary      Buscar produtos
// @Description  Busca por código de barras, referência ou descrição (parcial).
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        termo               query string false "Termo de busca"
// @Param        apenas_disponiveis  query bool   false "Só produtos com estoque (default true)"
// @Success      200 {array} dto.ProdutoResponse
// @Router       /v1/produtos [get]
func (h *ProdutosHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	produtos, err := h.svc.Buscar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao buscar produtos"))
		return
	}
	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for i := range produtos {
		resp = append(resp, toProdutoResponse(&produtos[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarPorID godoc
// @Summary      Detalhar produto
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/{id} [get]
func (h *ProdutosHandler) BuscarPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	p, err := h.svc.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProdutoResponse(p))
}

// BuscarPorCodigoBarras godoc
// @Summary      Buscar produto pelo código de barras
// @Description  Consulta direta do leitor de código de barras do caixa.
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        codigo path string true "Código de barras"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/codigo/{codigo} [get]
func (h *ProdutosHandler) BuscarPorCodigoBarras(c *gin.Context) {
	p, err := h.svc.BuscarPorCodigoBarras(c.Request.Context(), c.Param("codigo"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProdutoResponse(p))
}

// Atualizar godoc
// @Summary      Atualizar produto
// @Description  Atualiza cadastro; a quantidade em estoque só muda via movimentações.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                      true "UUID do produto"
// @Param        body body dto.AtualizarProdutoRequest true "Campos a alterar"
// @Success      200  {object} dto.ProdutoResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/produtos/{id} [put]
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProdutoResponse(p))
}

// Remover godoc
// @Summary      Remover produto
// @Tags         produtos
// @Security     BearerAuth
// @Param        id path string true "UUID do produto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/produtos/{id} [delete]
func (h *ProdutosHandler) Remover(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Remover(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toProdutoResponse(p *model.Produto) dto.ProdutoResponse {
	return dto.ProdutoResponse{
		ID:            p.ID.String(),
		CodigoBarras:  p.CodigoBarras,
		Referencia:    p.Referencia,
		Descricao:     p.Descricao,
		Genero:        p.Genero,
		Marca:         p.Marca,
		Tamanho:       p.Tamanho,
		Preco:         p.Preco,
		Quantidade:    p.Quantidade,
		EstoqueMinimo: p.EstoqueMinimo,
	}
}
