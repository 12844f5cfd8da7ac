package repository

import "github.com/seu-usuario/estoque-api/internal/domain/entity"

// UsuarioRepository define a porta de persistência para Usuario (DIP).
// As leituras por id e listagens nunca carregam o hash da senha;
// FindByEmail carrega, pois o login precisa comparar o hash.
type UsuarioRepository interface {
	Create(u *entity.Usuario) error // preenche ID e timestamps via RETURNING
	FindByEmail(email string) (*entity.Usuario, error)
	FindByID(id int64) (*entity.Usuario, error)
	FindAll() ([]*entity.Usuario, error)
	Update(id int64, patch entity.UsuarioPatch) (*entity.Usuario, error) // nil se não existir
	Delete(id int64) (bool, error)
}
