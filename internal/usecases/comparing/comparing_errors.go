package comparing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest  = errors.New("parâmetros de comparação inválidos")
	ErrStaleLoad       = errors.New("carga substituída por uma mais recente")
	ErrLoadFailed      = errors.New("falha ao carregar os dados da comparação")
	ErrSnapshotMissing = errors.New("nenhuma comparação carregada para esta conta")
	ErrDatabase        = errors.New("erro ao acessar o banco de dados")
	ErrInvalidRange    = errors.New("intervalo de datas inválido")
)

// ComparisonError carrega o código da API junto com o erro base
type ComparisonError struct {
	Err     error
	Code    string
	Details string
}

func (e *ComparisonError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ComparisonError) Unwrap() error {
	return e.Err
}

func (e *ComparisonError) APICode() string {
	return e.Code
}

func NewComparisonError(err error, code string, details string) *ComparisonError {
	return &ComparisonError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
