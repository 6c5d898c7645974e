package account

import (
	"errors"
	"fmt"
)

var (
	ErrAccountIDRequired = errors.New("id da conta obrigatório")
	ErrAccountNotFound   = errors.New("conta de anúncios não encontrada")
	ErrInvalidStatus     = errors.New("status de conta inválido")
	ErrMetaIntegration   = errors.New("erro ao listar contas na Meta")
	ErrDatabaseOperation = errors.New("erro ao acessar contas no banco de dados")
	ErrUpdateAccount     = errors.New("erro ao atualizar conta")
	ErrFetchAccounts     = errors.New("erro ao listar contas")
)

// AccountError devolve a conta envolvida nos detalhes da resposta
type AccountError struct {
	Err       error
	Code      string
	AccountID string
	Details   string
}

func (e *AccountError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Details)
}

func (e *AccountError) Unwrap() error   { return e.Err }
func (e *AccountError) APICode() string { return e.Code }

func (e *AccountError) APIDetails() any {
	if e.AccountID == "" {
		return nil
	}
	return map[string]string{"account_id": e.AccountID}
}

func NewAccountError(err error, code string, details string) *AccountError {
	return &AccountError{Err: err, Code: code, Details: details}
}

func NewAccountErrorWithID(err error, code string, accountID string, details string) *AccountError {
	return &AccountError{Err: err, Code: code, AccountID: accountID, Details: details}
}
