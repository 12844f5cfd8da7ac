package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// FornecedorRepository define a porta de persistência para Fornecedor (DIP).
type FornecedorRepository interface {
	Create(f *entity.Fornecedor) error // preenche ID e timestamps via RETURNING
	FindByID(id int64) (*entity.Fornecedor, error)
	FindByCNPJ(cnpj string) (*entity.Fornecedor, error)
	FindAll() ([]*entity.Fornecedor, error)
	Update(id int64, patch entity.FornecedorPatch) (*entity.Fornecedor, error) // nil se não existir
	Delete(id int64) (bool, error)
}
