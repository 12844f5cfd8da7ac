package entity

import "time"

// Fornecedor representa um fornecedor de produtos.
// Email, Telefone e Endereco são opcionais (colunas anuláveis).
type Fornecedor struct {
	ID        int64
	Nome      string
	Email     *string
	Telefone  *string
	Endereco  *string
	CNPJ      string // identificador fiscal, único
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FornecedorPatch campos opcionais de um update parcial; nil significa "não tocar".
type FornecedorPatch struct {
	Nome     *string
	Email    *string
	Telefone *string
	Endereco *string
	CNPJ     *string
}

// Vazio indica que nenhum campo foi fornecido.
func (p FornecedorPatch) Vazio() bool {
	return p.Nome == nil && p.Email == nil && p.Telefone == nil && p.Endereco == nil && p.CNPJ == nil
}
