package usecase

import (
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// FornecedorUseCase casos de uso CRUD para fornecedores.
type FornecedorUseCase struct {
	repo repository.FornecedorRepository
}

// NewFornecedorUseCase constrói o caso de uso.
func NewFornecedorUseCase(repo repository.FornecedorRepository) *FornecedorUseCase {
	return &FornecedorUseCase{repo: repo}
}

// Create cria um fornecedor. Devolve ErrCNPJJaCadastrado se o CNPJ já existir;
// a constraint UNIQUE do banco cobre a corrida entre a checagem e o insert.
func (uc *FornecedorUseCase) Create(in dto.CreateFornecedorRequest) (*dto.FornecedorResponse, error) {
	existing, _ := uc.repo.FindByCNPJ(in.CNPJ)
	if existing != nil {
		return nil, domain.ErrCNPJJaCadastrado
	}
	f := &entity.Fornecedor{
		Nome:     in.Nome,
		Email:    in.Email,
		Telefone: in.Telefone,
		Endereco: in.Endereco,
		CNPJ:     in.CNPJ,
	}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// List devolve todos os fornecedores ordenados por id.
func (uc *FornecedorUseCase) List() ([]dto.FornecedorResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.FornecedorResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFornecedorResponse(f))
	}
	return items, nil
}

// GetByID devolve um fornecedor por id; nil se não existir.
func (uc *FornecedorUseCase) GetByID(id int64) (*dto.FornecedorResponse, error) {
	f, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Update aplica um update parcial. Um CNPJ que colida com OUTRO fornecedor
// devolve ErrCNPJJaCadastrado; reenviar o próprio CNPJ é permitido.
func (uc *FornecedorUseCase) Update(id int64, in dto.UpdateFornecedorRequest) (*dto.FornecedorResponse, error) {
	if in.CNPJ != nil {
		existing, _ := uc.repo.FindByCNPJ(*in.CNPJ)
		if existing != nil && existing.ID != id {
			return nil, domain.ErrCNPJJaCadastrado
		}
	}
	f, err := uc.repo.Update(id, entity.FornecedorPatch{
		Nome:     in.Nome,
		Email:    in.Email,
		Telefone: in.Telefone,
		Endereco: in.Endereco,
		CNPJ:     in.CNPJ,
	})
	if err != nil {
		return nil, err
	}
	return toFornecedorResponse(f), nil
}

// Delete remove um fornecedor; devolve false se nenhuma linha foi removida.
// Produtos que referenciam o fornecedor não são bloqueados nem apagados em cascata.
func (uc *FornecedorUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}

func toFornecedorResponse(f *entity.Fornecedor) *dto.FornecedorResponse {
	if f == nil {
		return nil
	}
	return &dto.FornecedorResponse{
		ID:        f.ID,
		Nome:      f.Nome,
		Email:     f.Email,
		Telefone:  f.Telefone,
		Endereco:  f.Endereco,
		CNPJ:      f.CNPJ,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
