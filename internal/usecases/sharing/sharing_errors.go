package sharing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest   = errors.New("requisição inválida")
	ErrResourceNotFound = errors.New("recurso não encontrado")
	ErrDatabase         = errors.New("erro ao acessar recursos compartilhados")
	ErrGenerateID       = errors.New("erro ao gerar identificador do recurso")
	ErrSendFailed       = errors.New("falha no envio")
)

// SharingError carrega o código de API junto com o erro base
type SharingError struct {
	Err     error
	Code    string
	Details string
}

func (e *SharingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SharingError) Unwrap() error {
	return e.Err
}

func (e *SharingError) APICode() string {
	return e.Code
}

func NewSharingError(err error, code string, details string) *SharingError {
	return &SharingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
