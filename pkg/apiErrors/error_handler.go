package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos estáveis consumidos pelo painel web
const (
	// Autenticação
	ErrInvalidCredentials    = "AUTH_001"
	ErrUserDisabled          = "AUTH_002"
	ErrUserNotFound          = "AUTH_003"
	ErrInvalidToken          = "AUTH_006"
	ErrExpiredToken          = "AUTH_007"
	ErrInsufficientPrivilege = "AUTH_008"

	// Validação
	ErrInvalidRequest      = "VAL_001"
	ErrMissingRequiredData = "VAL_002"
	ErrInvalidFormat       = "VAL_003"

	// Recursos e comparações
	ErrResourceNotFound = "RES_001"
	ErrStaleRequest     = "RES_002" // carga substituída por outra mais recente do mesmo visualizador

	// Servidor e integrações
	ErrInternalServer    = "SRV_001"
	ErrDatabaseOperation = "SRV_002"
	ErrExternalService   = "SRV_003" // Meta, Gemini, SendGrid ou WhatsApp responderam com erro
	ErrCommunication     = "SRV_004" // integração indisponível ou circuito aberto
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrUserDisabled:          http.StatusForbidden,
	ErrUserNotFound:          http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrResourceNotFound:      http.StatusNotFound,
	ErrStaleRequest:          http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// StatusFor devolve o status HTTP do código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	if status, ok := httpStatusMap[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// CodedError é implementado pelos erros dos casos de uso que já conhecem seu código de API
type CodedError interface {
	error
	APICode() string
}

// DetailedError expõe detalhes extras no corpo da resposta, como a conta envolvida
type DetailedError interface {
	APIDetails() any
}

// APIError é o corpo de toda resposta de erro
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// WriteCodedError escreve err com o código que ele carrega. Devolve false quando err
// não carrega código, deixando o fallback para quem chamou.
func WriteCodedError(w http.ResponseWriter, err error) bool {
	var coded CodedError
	if !errors.As(err, &coded) {
		return false
	}

	var details any
	if detailed, ok := coded.(DetailedError); ok {
		details = detailed.APIDetails()
	}

	WriteError(w, coded.APICode(), coded.Error(), details)
	return true
}
