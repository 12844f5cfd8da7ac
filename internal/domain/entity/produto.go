package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do estoque. Preco usa NUMERIC via shopspring/decimal
// para evitar erros de ponto flutuante; Quantidade nunca fica negativa.
type Produto struct {
	ID           int64
	Nome         string
	Descricao    *string
	Preco        decimal.Decimal
	Quantidade   int
	Categoria    string
	FornecedorID int64
	Fornecedor   *Fornecedor // preenchido apenas nas leituras com join; nil se o FK não resolver
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProdutoPatch campos opcionais de um update parcial; nil significa "não tocar".
type ProdutoPatch struct {
	Nome         *string
	Descricao    *string
	Preco        *decimal.Decimal
	Quantidade   *int
	Categoria    *string
	FornecedorID *int64
}

// Vazio indica que nenhum campo foi fornecido.
func (p ProdutoPatch) Vazio() bool {
	return p.Nome == nil && p.Descricao == nil && p.Preco == nil &&
		p.Quantidade == nil && p.Categoria == nil && p.FornecedorID == nil
}
