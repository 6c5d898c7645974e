package metadomain

// ErrorResponse é o envelope {"error": {...}} das respostas de erro da Graph API
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

const codeInvalidToken = 190

// subcódigos de OAuthException para sessão invalidada, senha trocada e token expirado
var tokenSubcodes = map[int]bool{460: true, 463: true, 467: true}

// limites por app, por usuário, por conta de anúncio e de BUC
var rateLimitCodes = map[int]bool{4: true, 17: true, 32: true, 613: true, 80000: true, 80003: true, 80004: true}

func (e *ErrorResponse) IsTokenExpired() bool {
	if e.Error.Code == codeInvalidToken {
		return true
	}
	return e.Error.Type == "OAuthException" && tokenSubcodes[e.Error.ErrorSubcode]
}

func (e *ErrorResponse) IsRateLimited() bool {
	return rateLimitCodes[e.Error.Code]
}
