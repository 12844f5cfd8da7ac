package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoCols = "id, nome, descricao, preco, quantidade, categoria, fornecedor_id, created_at, updated_at"

// Leituras fazem LEFT JOIN com fornecedores: a visão desnormalizada aninha os
// campos do fornecedor apenas quando o fornecedor_id resolve para uma linha.
const produtoJoinQuery = `
	SELECT p.id, p.nome, p.descricao, p.preco, p.quantidade, p.categoria, p.fornecedor_id,
	       p.created_at, p.updated_at,
	       f.id, f.nome, f.email, f.telefone, f.endereco, f.cnpj
	FROM produtos p
	LEFT JOIN fornecedores f ON f.id = p.fornecedor_id`

// ProdutoRepo implementação da porta ProdutoRepository sobre PostgreSQL.
type ProdutoRepo struct {
	pool *pgxpool.Pool
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
func NewProdutoRepository(pool *pgxpool.Pool) *ProdutoRepo {
	return &ProdutoRepo{pool: pool}
}

// scanProdutoJoin lê uma linha do join; as colunas do fornecedor chegam nulas
// quando o FK não resolve.
func scanProdutoJoin(row pgx.Row) (*entity.Produto, error) {
	var (
		p         entity.Produto
		fID       *int64
		fNome     *string
		fEmail    *string
		fTelefone *string
		fEndereco *string
		fCNPJ     *string
	)
	err := row.Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Quantidade, &p.Categoria, &p.FornecedorID,
		&p.CreatedAt, &p.UpdatedAt,
		&fID, &fNome, &fEmail, &fTelefone, &fEndereco, &fCNPJ,
	)
	if err != nil {
		return nil, err
	}
	if fID != nil {
		p.Fornecedor = &entity.Fornecedor{
			ID:       *fID,
			Nome:     *fNome,
			Email:    fEmail,
			Telefone: fTelefone,
			Endereco: fEndereco,
			CNPJ:     *fCNPJ,
		}
	}
	return &p, nil
}

// Create persiste um novo produto e preenche ID e timestamps.
// Não faz join: a resposta de criação não aninha o fornecedor.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (nome, descricao, preco, quantidade, categoria, fornecedor_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		p.Nome, p.Descricao, p.Preco, p.Quantidade, p.Categoria, p.FornecedorID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// FindByID busca um produto por id com o fornecedor aninhado quando existir.
func (r *ProdutoRepo) FindByID(id int64) (*entity.Produto, error) {
	query := produtoJoinQuery + ` WHERE p.id = $1`
	p, err := scanProdutoJoin(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto by id: %w", err)
	}
	return p, nil
}

// FindAll lista todos os produtos ordenados por id, com fornecedores aninhados.
func (r *ProdutoRepo) FindAll() ([]*entity.Produto, error) {
	return r.queryList(produtoJoinQuery + ` ORDER BY p.id`)
}

// FindByCategoria filtra o join por igualdade exata de categoria.
func (r *ProdutoRepo) FindByCategoria(categoria string) ([]*entity.Produto, error) {
	return r.queryList(produtoJoinQuery+` WHERE p.categoria = $1 ORDER BY p.id`, categoria)
}

func (r *ProdutoRepo) queryList(query string, args ...any) ([]*entity.Produto, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProdutoJoin(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update aplica um update parcial via changeset e rebusca o registro com join.
// Patch vazio é um no-op que apenas rebusca o registro.
func (r *ProdutoRepo) Update(id int64, patch entity.ProdutoPatch) (*entity.Produto, error) {
	if patch.Vazio() {
		return r.FindByID(id)
	}
	var cs changeset
	if patch.Nome != nil {
		cs.set("nome", *patch.Nome)
	}
	if patch.Descricao != nil {
		cs.set("descricao", *patch.Descricao)
	}
	if patch.Preco != nil {
		cs.set("preco", *patch.Preco)
	}
	if patch.Quantidade != nil {
		cs.set("quantidade", *patch.Quantidade)
	}
	if patch.Categoria != nil {
		cs.set("categoria", *patch.Categoria)
	}
	if patch.FornecedorID != nil {
		cs.set("fornecedor_id", *patch.FornecedorID)
	}
	clause, args := cs.clause()
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE produtos SET %s WHERE id = $%d`, clause, len(args))

	tag, err := r.pool.Exec(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("update produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, nil
	}
	return r.FindByID(id)
}

// UpdateQuantidade é o update dedicado da coluna quantidade (ajuste de estoque).
// Devolve o produto sem o fornecedor aninhado, como nas criações.
func (r *ProdutoRepo) UpdateQuantidade(id int64, quantidade int) (*entity.Produto, error) {
	query := fmt.Sprintf(`
		UPDATE produtos SET quantidade = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
		RETURNING %s`, produtoCols)
	var p entity.Produto
	err := r.pool.QueryRow(context.Background(), query, quantidade, id).Scan(
		&p.ID, &p.Nome, &p.Descricao, &p.Preco, &p.Quantidade, &p.Categoria, &p.FornecedorID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update quantidade: %w", err)
	}
	return &p, nil
}

// Delete remove um produto por id e informa se alguma linha foi removida.
func (r *ProdutoRepo) Delete(id int64) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete produto: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
