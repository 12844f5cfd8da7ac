package dto

import "time"

// CadastroRequest entrada para criar um usuário.
type CadastroRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Senha string `json:"senha" validate:"required"`
}

// UpdateUsuarioRequest entrada para update parcial de usuário.
type UpdateUsuarioRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email" validate:"omitempty,email"`
	Senha *string `json:"senha"`
}

// UsuarioResponse saída de um usuário; nunca inclui o hash da senha.
type UsuarioResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioEnvelope recurso + mensagem para mutações.
type UsuarioEnvelope struct {
	Mensagem string          `json:"mensagem"`
	Usuario  UsuarioResponse `json:"usuario"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Mensagem string          `json:"mensagem"`
	Token    string          `json:"token"`
	Usuario  UsuarioResponse `json:"usuario"`
}
