package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey é a chave do id da requisição no contexto Gin.
const RequestIDKey = "request_id"

// RequestID propaga o X-Request-ID do cliente ou gera um novo UUID.
// O id aparece em todas as linhas de log da requisição e volta no header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
