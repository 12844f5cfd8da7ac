package usecase

import (
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UsuarioUseCase casos de uso CRUD para usuários (cadastro e login vivem em auth).
type UsuarioUseCase struct {
	repo repository.UsuarioRepository
}

// NewUsuarioUseCase constrói o caso de uso.
func NewUsuarioUseCase(repo repository.UsuarioRepository) *UsuarioUseCase {
	return &UsuarioUseCase{repo: repo}
}

// List devolve todos os usuários ordenados por id, sem hashes.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	list, err := uc.repo.FindAll()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UsuarioResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *auth.ToUsuarioResponse(u))
	}
	return items, nil
}

// GetByID devolve um usuário por id; nil se não existir.
func (uc *UsuarioUseCase) GetByID(id int64) (*dto.UsuarioResponse, error) {
	u, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// Update aplica um update parcial. Se uma nova senha for fornecida,
// ela é re-hasheada antes de persistir. Devolve nil se o usuário não existir.
func (uc *UsuarioUseCase) Update(id int64, in dto.UpdateUsuarioRequest) (*dto.UsuarioResponse, error) {
	patch := entity.UsuarioPatch{
		Nome:  in.Nome,
		Email: in.Email,
	}
	if in.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		patch.SenhaHash = &h
	}
	u, err := uc.repo.Update(id, patch)
	if err != nil {
		return nil, err
	}
	return auth.ToUsuarioResponse(u), nil
}

// Delete remove um usuário; devolve false se nenhuma linha foi removida.
func (uc *UsuarioUseCase) Delete(id int64) (bool, error) {
	return uc.repo.Delete(id)
}
