// Package apierror fornece a estrutura padrão de erro da API.
// Todo erro 4xx/5xx devolvido ao cliente passa por aqui para manter o
// formato consistente e nunca vazar detalhes internos (stack traces, SQL).
package apierror

// APIError é o envelope canônico de erro HTTP.
type APIError struct {
	Detail string `json:"detail"`
	// VendaID é preenchido quando uma venda ficou em estado parcial e o
	// operador precisa conciliar manualmente.
	VendaID string `json:"venda_id,omitempty"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

func NewComVenda(msg, vendaID string) *APIError {
	return &APIError{Detail: msg, VendaID: vendaID}
}

// ValidationError agrupa erros de campo.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Erro de validação", Fields: fields}
}
