package analyzing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest  = errors.New("requisição de análise inválida")
	ErrPromptNotFound  = errors.New("prompt não encontrado")
	ErrGeminiFailure   = errors.New("falha ao gerar análise")
	ErrDatabase        = errors.New("erro ao consultar prompt")
	ErrSerializingData = errors.New("erro ao serializar dados para análise")
)

// AnalysisError carrega o código de API junto com o erro base
type AnalysisError struct {
	Err     error
	Code    string
	Details string
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

func (e *AnalysisError) APICode() string {
	return e.Code
}

func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
