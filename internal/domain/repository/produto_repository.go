package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// ProdutoRepository define a porta de persistência para Produto (DIP).
// As leituras fazem LEFT JOIN com fornecedores e preenchem Produto.Fornecedor
// apenas quando o fornecedor_id resolve para uma linha existente.
type ProdutoRepository interface {
	Create(p *entity.Produto) error // preenche ID e timestamps via RETURNING; não faz join
	FindByID(id int64) (*entity.Produto, error)
	FindAll() ([]*entity.Produto, error)
	FindByCategoria(categoria string) ([]*entity.Produto, error)
	Update(id int64, patch entity.ProdutoPatch) (*entity.Produto, error) // nil se não existir
	// UpdateQuantidade é o update dedicado de uma única coluna usado pelo ajuste de estoque.
	UpdateQuantidade(id int64, quantidade int) (*entity.Produto, error)
	Delete(id int64) (bool, error)
}
