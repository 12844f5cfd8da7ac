package usecase

import (
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

// Operações aceitas pelo ajuste de estoque. Qualquer outro valor
// (inclusive a ausência de operacao) define a quantidade diretamente.
const (
	OperacaoAdicionar = "adicionar"
	OperacaoRemover   = "remover"
)

// ProdutoUseCase casos de uso CRUD para produtos, incluindo o ajuste de estoque.
// Depende também do repositório de fornecedores para validar o fornecedor_id.
type ProdutoUseCase struct {
	produtos     repository.ProdutoRepository
	fornecedores repository.FornecedorRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(produtos repository.ProdutoRepository, fornecedores repository.FornecedorRepository) *ProdutoUseCase {
	return &ProdutoUseCase{produtos: produtos, fornecedores: fornecedores}
}

// Create cria um produto. O fornecedor referenciado precisa existir.
func (uc *ProdutoUseCase) Create(in dto.CreateProdutoRequest) (*dto.ProdutoResponse, error) {
	fornecedor, err := uc.fornecedores.FindByID(*in.FornecedorID)
	if err != nil {
		return nil, err
	}
	if fornecedor == nil {
		return nil, domain.ErrFornecedorNaoEncontrado
	}
	p := &entity.Produto{
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		Preco:        *in.Preco,
		Quantidade:   *in.Quantidade,
		Categoria:    in.Categoria,
		FornecedorID: *in.FornecedorID,
	}
	if err := uc.produtos.Create(p); err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// List devolve os produtos ordenados por id; categoria não vazia filtra por igualdade exata.
func (uc *ProdutoUseCase) List(categoria string) ([]dto.ProdutoResponse, error) {
	var (
		list []*entity.Produto
		err  error
	)
	if categoria != "" {
		list, err = uc.produtos.FindByCategoria(categoria)
	} else {
		list, err = uc.produtos.FindAll()
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProdutoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProdutoResponse(p))
	}
	return items, nil
}

// GetByID devolve um produto por id; nil se não existir.
func (uc *ProdutoUseCase) GetByID(id int64) (*dto.ProdutoResponse, error) {
	p, err := uc.produtos.FindByID(id)
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Update aplica um update parcial. Um novo fornecedor_id é revalidado;
// mudanças nos demais campos não disparam revalidação.
func (uc *ProdutoUseCase) Update(id int64, in dto.UpdateProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.FornecedorID != nil {
		fornecedor, err := uc.fornecedores.FindByID(*in.FornecedorID)
		if err != nil {
			return nil, err
		}
		if fornecedor == nil {
			return nil, domain.ErrFornecedorNaoEncontrado
		}
	}
	p, err := uc.produtos.Update(id, entity.ProdutoPatch{
		Nome:         in.Nome,
		Descricao:    in.Descricao,
		Preco:        in.Preco,
		Quantidade:   in.Quantidade,
		Categoria:    in.Categoria,
		FornecedorID: in.FornecedorID,
	})
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// UpdateQuantidade ajusta o estoque conforme a operação:
// "adicionar" soma, "remover" subtrai (rejeitando saldo negativo),
// qualquer outro valor define a quantidade diretamente. O resultado é
// revalidado contra o invariante de não-negatividade em todos os casos.
func (uc *ProdutoUseCase) UpdateQuantidade(id int64, quantidade int, operacao string) (*dto.ProdutoResponse, error) {
	atual, err := uc.produtos.FindByID(id)
	if err != nil {
		return nil, err
	}
	if atual == nil {
		return nil, nil
	}

	var nova int
	switch operacao {
	case OperacaoAdicionar:
		nova = atual.Quantidade + quantidade
	case OperacaoRemover:
		nova = atual.Quantidade - quantidade
		if nova < 0 {
			return nil, domain.ErrEstoqueInsuficiente
		}
	default:
		nova = quantidade
	}
	if nova < 0 {
		return nil, domain.ErrQuantidadeNegativa
	}

	p, err := uc.produtos.UpdateQuantidade(id, nova)
	if err != nil {
		return nil, err
	}
	return toProdutoResponse(p), nil
}

// Delete remove um produto; devolve false se nenhuma linha foi removida.
func (uc *ProdutoUseCase) Delete(id int64) (bool, error) {
	return uc.produtos.Delete(id)
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProdutoResponse{
		ID:           p.ID,
		Nome:         p.Nome,
		Descricao:    p.Descricao,
		Preco:        p.Preco,
		Quantidade:   p.Quantidade,
		Categoria:    p.Categoria,
		FornecedorID: p.FornecedorID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.Fornecedor != nil {
		out.Fornecedor = &dto.FornecedorResumo{
			ID:       p.Fornecedor.ID,
			Nome:     p.Fornecedor.Nome,
			Email:    p.Fornecedor.Email,
			Telefone: p.Fornecedor.Telefone,
			Endereco: p.Fornecedor.Endereco,
			CNPJ:     p.Fornecedor.CNPJ,
		}
	}
	return out
}
