package dto

import "time"

// CreateFornecedorRequest entrada para criar um fornecedor.
// Email, Telefone e Endereco são opcionais.
type CreateFornecedorRequest struct {
	Nome     string  `json:"nome" validate:"required,min=1,max=100"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	CNPJ     string  `json:"cnpj" validate:"required"`
}

// UpdateFornecedorRequest entrada para update parcial de fornecedor.
type UpdateFornecedorRequest struct {
	Nome     *string `json:"nome"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	CNPJ     *string `json:"cnpj"`
}

// FornecedorResponse saída de um fornecedor.
type FornecedorResponse struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome"`
	Email     *string   `json:"email"`
	Telefone  *string   `json:"telefone"`
	Endereco  *string   `json:"endereco"`
	CNPJ      string    `json:"cnpj"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FornecedorEnvelope recurso + mensagem para mutações.
type FornecedorEnvelope struct {
	Mensagem   string             `json:"mensagem"`
	Fornecedor FornecedorResponse `json:"fornecedor"`
}
