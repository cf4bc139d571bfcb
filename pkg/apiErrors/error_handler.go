package apiErrors

import (
	"errors"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro do núcleo de publicidade
const (
	// Configuração
	ErrConfiguration      = "CONFIGURATION_ERROR"
	ErrMissingCredentials = "MISSING_CREDENTIALS"

	// Ciclo de vida de tokens
	ErrTokenExchangeFailed = "TOKEN_EXCHANGE_FAILED"
	ErrTokenRefreshFailed  = "TOKEN_REFRESH_FAILED"
	ErrTokenExpired        = "TOKEN_EXPIRED"
	ErrNetwork             = "NETWORK_ERROR"

	// Vínculo com a conta gerente
	ErrTestAccount                = "TEST_ACCOUNT"
	ErrTestTokenProductionAccount = "TEST_TOKEN_PRODUCTION_ACCOUNT"
	ErrReactivateFailed           = "REACTIVATE_FAILED"
	ErrLinkCanceledPermanently    = "LINK_CANCELED_PERMANENTLY"
	ErrLinkNotFound               = "LINK_NOT_FOUND"
	ErrInvitationFailed           = "INVITATION_FAILED"
	ErrAcceptFailed               = "ACCEPT_FAILED"

	// Campanhas
	ErrCampaignCreation              = "CAMPAIGN_CREATION_ERROR"
	ErrComprehensiveCampaignCreation = "COMPREHENSIVE_CAMPAIGN_CREATION_ERROR"
	ErrInvalidCustomerID             = "INVALID_CUSTOMER_ID"

	// Orquestrador
	ErrUnsupportedPlatform = "UNSUPPORTED_PLATFORM"
	ErrConnection          = "CONNECTION_ERROR"
	ErrFetchConnections    = "FETCH_CONNECTIONS_ERROR"
	ErrFetchCampaigns      = "FETCH_CAMPAIGNS_ERROR"
	ErrAnalytics           = "ANALYTICS_ERROR"
	ErrParse               = "PARSE_ERROR"
	ErrAPI                 = "API_ERROR"

	// Superfície HTTP
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidToken        = "AUTH_006"
	ErrNotFound            = "NOT_FOUND"
	ErrMethodNotAllowed    = "METHOD_NOT_ALLOWED"
	ErrInternalServer      = "SRV_001"
	ErrDatabaseOperation   = "SRV_002"
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrConfiguration:                 http.StatusServiceUnavailable,
	ErrMissingCredentials:            http.StatusServiceUnavailable,
	ErrTokenExchangeFailed:           http.StatusBadGateway,
	ErrTokenRefreshFailed:            http.StatusBadGateway,
	ErrTokenExpired:                  http.StatusUnauthorized,
	ErrNetwork:                       http.StatusServiceUnavailable,
	ErrTestAccount:                   http.StatusConflict,
	ErrTestTokenProductionAccount:    http.StatusConflict,
	ErrReactivateFailed:              http.StatusConflict,
	ErrLinkCanceledPermanently:       http.StatusConflict,
	ErrLinkNotFound:                  http.StatusNotFound,
	ErrInvitationFailed:              http.StatusBadGateway,
	ErrAcceptFailed:                  http.StatusBadGateway,
	ErrCampaignCreation:              http.StatusBadGateway,
	ErrComprehensiveCampaignCreation: http.StatusUnprocessableEntity,
	ErrInvalidCustomerID:             http.StatusBadRequest,
	ErrUnsupportedPlatform:           http.StatusBadRequest,
	ErrConnection:                    http.StatusBadGateway,
	ErrFetchConnections:              http.StatusInternalServerError,
	ErrFetchCampaigns:                http.StatusInternalServerError,
	ErrAnalytics:                     http.StatusInternalServerError,
	ErrParse:                         http.StatusBadGateway,
	ErrAPI:                           http.StatusBadGateway,
	ErrInvalidRequest:                http.StatusBadRequest,
	ErrMissingRequiredData:           http.StatusBadRequest,
	ErrInvalidToken:                  http.StatusUnauthorized,
	ErrNotFound:                      http.StatusNotFound,
	ErrMethodNotAllowed:              http.StatusMethodNotAllowed,
	ErrInternalServer:                http.StatusInternalServerError,
	ErrDatabaseOperation:             http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code     string `json:"code"`
	Message  string `json:"message,omitempty"`
	Platform string `json:"platform,omitempty"`
	Details  any    `json:"details,omitempty"`
}

// CoreError é o erro com código usado entre as camadas do núcleo
type CoreError struct {
	Err      error
	Code     string
	Platform string
	Message  string
}

func (e *CoreError) Error() string {
	switch {
	case e.Err != nil && e.Message != "":
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Message
	}
}

func (e *CoreError) Unwrap() error {
	return e.Err
}

// New cria um CoreError sem erro de origem
func New(code, message string) *CoreError {
	return &CoreError{Code: code, Message: message}
}

// Wrap envolve um erro existente com um código
func Wrap(err error, code, message string) *CoreError {
	return &CoreError{Err: err, Code: code, Message: message}
}

// WithPlatform retorna uma cópia do erro associada a uma plataforma
func (e *CoreError) WithPlatform(platform string) *CoreError {
	cp := *e
	cp.Platform = platform
	return &cp
}

// CodeOf extrai o código do primeiro CoreError da cadeia, ou fallback
func CodeOf(err error, fallback string) string {
	var coreErr *CoreError
	if errors.As(err, &coreErr) && coreErr.Code != "" {
		return coreErr.Code
	}
	return fallback
}

// HasCode informa se algum CoreError da cadeia tem o código
func HasCode(err error, code string) bool {
	for err != nil {
		var coreErr *CoreError
		if !errors.As(err, &coreErr) {
			return false
		}
		if coreErr.Code == code {
			return true
		}
		err = coreErr.Err
	}
	return false
}

// StatusFor retorna o status HTTP de um código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var coreErr *CoreError
	if errors.As(err, &coreErr) {
		return APIError{
			Code:     CodeOf(err, code),
			Message:  err.Error(),
			Platform: coreErr.Platform,
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
