package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProdutoRequest entrada para criar um produto.
// Preco, Quantidade e FornecedorID usam ponteiros para distinguir "ausente" de zero.
type CreateProdutoRequest struct {
	Nome         string           `json:"nome" validate:"required,min=1,max=100"`
	Descricao    *string          `json:"descricao"`
	Preco        *decimal.Decimal `json:"preco" validate:"required"`
	Quantidade   *int             `json:"quantidade" validate:"required"`
	Categoria    string           `json:"categoria" validate:"required"`
	FornecedorID *int64           `json:"fornecedor_id" validate:"required"`
}

// UpdateProdutoRequest entrada para update parcial de produto.
type UpdateProdutoRequest struct {
	Nome         *string          `json:"nome"`
	Descricao    *string          `json:"descricao"`
	Preco        *decimal.Decimal `json:"preco"`
	Quantidade   *int             `json:"quantidade"`
	Categoria    *string          `json:"categoria"`
	FornecedorID *int64           `json:"fornecedor_id"`
}

// UpdateQuantidadeRequest ajuste de estoque. Operacao: "adicionar", "remover" ou
// qualquer outro valor (inclusive ausente) define a quantidade diretamente.
type UpdateQuantidadeRequest struct {
	Quantidade *int   `json:"quantidade"`
	Operacao   string `json:"operacao"`
}

// FornecedorResumo campos do fornecedor aninhados em um produto (visão desnormalizada).
type FornecedorResumo struct {
	ID       int64   `json:"id"`
	Nome     string  `json:"nome"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
	Endereco *string `json:"endereco"`
	CNPJ     string  `json:"cnpj"`
}

// ProdutoResponse saída de um produto. Fornecedor só aparece nas leituras com join
// e quando o fornecedor_id resolve para uma linha existente.
type ProdutoResponse struct {
	ID           int64             `json:"id"`
	Nome         string            `json:"nome"`
	Descricao    *string           `json:"descricao"`
	Preco        decimal.Decimal   `json:"preco"`
	Quantidade   int               `json:"quantidade"`
	Categoria    string            `json:"categoria"`
	FornecedorID int64             `json:"fornecedor_id"`
	Fornecedor   *FornecedorResumo `json:"fornecedor,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ProdutoEnvelope recurso + mensagem para mutações.
type ProdutoEnvelope struct {
	Mensagem string          `json:"mensagem"`
	Produto  ProdutoResponse `json:"produto"`
}
