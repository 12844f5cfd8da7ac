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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação da porta UsuarioRepository sobre PostgreSQL.
// Dono exclusivo do SQL da tabela usuarios.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste um novo usuário (senha já hasheada) e preenche ID e timestamps.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nome, email, senha)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(context.Background(), query, u.Nome, u.Email, u.SenhaHash).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByEmail busca um usuário por email, incluindo o hash da senha (login).
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, senha, created_at, updated_at
		FROM usuarios WHERE email = $1 LIMIT 1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, email).
		Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by email: %w", err)
	}
	return &u, nil
}

// FindByID busca um usuário por id, sem o hash da senha.
func (r *UsuarioRepo) FindByID(id int64) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, created_at, updated_at
		FROM usuarios WHERE id = $1`
	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, id).
		Scan(&u.ID, &u.Nome, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario by id: %w", err)
	}
	return &u, nil
}

// FindAll lista todos os usuários ordenados por id, sem hashes.
func (r *UsuarioRepo) FindAll() ([]*entity.Usuario, error) {
	query := `
		SELECT id, nome, email, created_at, updated_at
		FROM usuarios ORDER BY id`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Update aplica um update parcial via changeset e devolve o registro atualizado
// sem o hash. Patch vazio é um no-op que apenas rebusca o registro.
func (r *UsuarioRepo) Update(id int64, patch entity.UsuarioPatch) (*entity.Usuario, error) {
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
	if patch.SenhaHash != nil {
		cs.set("senha", *patch.SenhaHash)
	}
	clause, args := cs.clause()
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE usuarios SET %s WHERE id = $%d
		RETURNING id, nome, email, created_at, updated_at`, clause, len(args))

	var u entity.Usuario
	err := r.pool.QueryRow(context.Background(), query, args...).
		Scan(&u.ID, &u.Nome, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailJaCadastrado
		}
		return nil, fmt.Errorf("update usuario: %w", err)
	}
	return &u, nil
}

// Delete remove um usuário por id e informa se alguma linha foi removida.
func (r *UsuarioRepo) Delete(id int64) (bool, error) {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete usuario: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
