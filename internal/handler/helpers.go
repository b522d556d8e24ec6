package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/flavyo560/Controle-de-estoque/internal/apierror"
	"github.com/flavyo560/Controle-de-estoque/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Registra decimal.Decimal como numérico para as tags min/gt/required
	// funcionarem sem pânico ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate faz o bind do corpo JSON e roda as tags do validator.
// Devolve false já tendo escrito a resposta de erro.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// respondError traduz a taxonomia de erros dos serviços para HTTP.
// Falhas parciais devolvem 500 com o id da venda para conciliação.
func respondError(c *gin.Context, err error) {
	var (
		estoqueErr   *service.EstoqueInsuficienteError
		pagamentoErr *service.PagamentoInvalidoError
		persistErr   *service.PersistenciaError
		parcialErr   *service.PersistenciaParcialError
	)

	switch {
	case errors.Is(err, service.ErrProdutoNaoEncontrado),
		errors.Is(err, service.ErrVendaNaoEncontrada),
		errors.Is(err, service.ErrClienteNaoEncontrado),
		errors.Is(err, service.ErrItemNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))

	case errors.Is(err, service.ErrVendaJaCancelada),
		errors.Is(err, service.ErrCodigoBarrasDuplicado),
		errors.Is(err, service.ErrCPFDuplicado):
		c.JSON(http.StatusConflict, apierror.New(err.Error()))

	case errors.As(err, &estoqueErr):
		c.JSON(http.StatusConflict, apierror.New(estoqueErr.Error()))

	case errors.As(err, &pagamentoErr),
		errors.Is(err, service.ErrCarrinhoVazio),
		errors.Is(err, service.ErrQuantidadeInvalida),
		errors.Is(err, service.ErrDescontoInvalido),
		errors.Is(err, service.ErrCPFInvalido),
		errors.Is(err, service.ErrEmailInvalido):
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))

	case errors.As(err, &parcialErr):
		c.JSON(http.StatusInternalServerError,
			apierror.NewComVenda(parcialErr.Error(), parcialErr.VendaID.String()))

	case errors.As(err, &persistErr):
		c.JSON(http.StatusInternalServerError, apierror.New(persistErr.Error()))

	default:
		c.JSON(http.StatusInternalServerError, apierror.New("Erro interno do servidor"))
	}
}
