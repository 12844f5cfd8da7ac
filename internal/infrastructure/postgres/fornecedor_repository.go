package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
)

var _ repository.FornecedorRepository = (*FornecedorRepo)(nil)

const fornecedorCols = "id, nome, email, telefone, endereco, cnpj, created_at, updated_at"

// FornecedorRepo implementação da porta FornecedorRepository sobre PostgreSQL.
type FornecedorRepo struct {
	pool *pgxpool.Pool
}

// NewFornecedorRepository constrói o adaptador de persistência para fornecedores.
func NewFornecedorRepository(pool *pgxpool.Pool) *FornecedorRepo {
	return &FornecedorRepo{pool: pool}
}

func scanFornecedor(row pgx.Row) (*entity.Fornecedor, error) {
	var f entity.Fornecedor
	err := row.Scan(&f.ID, &f.Nome, &f.Email, &f.Telefone, &f.Endereco, &f.CNPJ, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Create persiste um novo fornecedor e preenche ID e timestamps.
func (r *FornecedorRepo) Create(f *entity.Fornecedor) error {
	query := `
		INSERT INTO fornecedores (nome, email, telefone, endereco, cnpj)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query,
		f.Nome, f.Email, f.Telefone, f.Endereco, f.CNPJ,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrCNPJJaCadastrado
		}
		return fmt.Errorf("insert fornecedor: %w", err)
	}
	return nil
}

// FindByID busca um fornecedor por id.
func (r *FornecedorRepo) FindByID(id int64) (*entity.Fornecedor, error) {
	query := fmt.Sprintf(`SELECT %s FROM fornecedores WHERE id = $1`, fornecedorCols)
	f, err := scanFornecedor(r.pool.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor by id: %w", err)
	}
	return f, nil
}

// FindByCNPJ busca um fornecedor pelo CNPJ (chave única).
func (r *FornecedorRepo) FindByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	query := fmt.Sprintf(`SELECT %s FROM fornecedores WHERE cnpj = $1`, fornecedorCols)
	f, err := scanFornecedor(r.pool.QueryRow(context.Background(), query, cnpj))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fornecedor by cnpj: %w", err)
	}
	return f, nil
}

// FindAll lista todos os fornecedores ordenados por id.
func (r *FornecedorRepo) FindAll() ([]*entity.Fornecedor, error) {
	query := fmt.Sprintf(`SELECT %s FROM fornecedores ORDER BY id`, fornecedorCols)
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list fornecedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Fornecedor
	for rows.Next() {
		var f entity.Fornecedor
		if err := rows.Scan(&f.ID, &f.Nome, &f.Email, &f.Telefone, &f.Endereco, &f.CNPJ, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan fornecedor: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Update aplica um update parcial via changeset e devolve o registro atualizado.
// Patch vazio é um no-op que apenas rebusca o registro.
func (r *FornecedorRepo) Update(id int64, patch entity.FornecedorPatch) (*entity.Fornecedor, error) {
	if patch.Vazio() {
		return r.FindByID(id)
	}
	var cs changeset
	if patch.Nome != nil {
		cs.set("nome", *patch.Nome)
	}
	if patch.Email != nil {
		cs.set("email", *patch.Email)
	}
	if patch.Telefone != nil {
		cs.set("telefone", *patch.Telefone)
	}
	if patch.Endereco != nil {
		cs.set("endereco", *patch.Endereco)
	}
	if patch.CNPJ != nil {
		cs.set("cnpj", *patch.CNPJ)
	}
	clause, args := cs.clause()
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE fornecedores SET %s WHERE id = $%d
		RETURNING %s`, clause, len(args), fornecedorCols)

	f, err := scanFornecedor(r.pool.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrCNPJJaCadastrado
		}
		return nil, fmt.Errorf("update fornecedor: %w", err)
	}
	return f, nil
}

// Delete remove um fornecedor por id e informa se alguma linha foi removida.
func (r *FornecedorRepo) Delete(id int64) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM fornecedores WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete fornecedor: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
