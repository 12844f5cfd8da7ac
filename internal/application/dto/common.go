package dto

// ErrorResponse corpo de erro HTTP. Campos enumera campos obrigatórios ausentes
// (criação de produto); Details carrega a mensagem raiz em erros 500.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Campos  []string `json:"campos,omitempty"`
	Details string   `json:"details,omitempty"`
}

// MensagemResponse corpo de sucesso sem recurso (deletes).
type MensagemResponse struct {
	Mensagem string `json:"mensagem"`
}
