package googleadsdomain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorResponse representa a estrutura de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    int           `json:"code"`
	Message string        `json:"message"`
	Status  string        `json:"status"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Type   string         `json:"@type,omitempty"`
	Errors []FailureError `json:"errors,omitempty"`
}

// FailureError traz o código detalhado na forma {"<categoria>": "<valor>"}
type FailureError struct {
	ErrorCode map[string]string `json:"errorCode"`
	Message   string            `json:"message"`
}

// HasErrorCode verifica se algum erro detalhado tem o valor informado, em qualquer categoria
func (e *ErrorResponse) HasErrorCode(value string) bool {
	for _, detail := range e.Error.Details {
		for _, failure := range detail.Errors {
			for _, code := range failure.ErrorCode {
				if code == value {
					return true
				}
			}
		}
	}
	return false
}

// APIError é o erro retornado pelo cliente para respostas não 2xx
type APIError struct {
	StatusCode int
	Response   ErrorResponse
	Raw        string
}

func (e *APIError) Error() string {
	if e.Response.Error.Message != "" {
		return fmt.Sprintf("google ads %d: %s", e.StatusCode, e.Response.Error.Message)
	}
	return fmt.Sprintf("google ads %d: %s", e.StatusCode, e.Raw)
}

// IsDuplicateInvitation indica que o gerente já convidou este cliente
func (e *APIError) IsDuplicateInvitation() bool {
	return e.Response.HasErrorCode("ALREADY_INVITED_BY_THIS_MANAGER") ||
		e.Response.HasErrorCode("DUPLICATE_CHILD_FOUND")
}

// IsDeveloperTokenNotApproved indica token de desenvolvedor de teste usado contra conta de produção
func (e *APIError) IsDeveloperTokenNotApproved() bool {
	return e.Response.HasErrorCode("DEVELOPER_TOKEN_NOT_APPROVED") ||
		strings.Contains(e.Response.Error.Message, "DEVELOPER_TOKEN_NOT_APPROVED")
}

// AsAPIError extrai o APIError da cadeia de erros
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
