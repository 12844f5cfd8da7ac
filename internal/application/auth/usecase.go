package auth

import (
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	"github.com/seu-usuario/estoque-api/internal/domain/repository"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuração para emissão de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Cadastro cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailJaCadastrado se o email já existir. A constraint UNIQUE do
// banco é o backstop real da corrida entre a checagem e o insert.
func (uc *AuthUseCase) Cadastro(in dto.CadastroRequest) (*dto.UsuarioResponse, error) {
	existing, _ := uc.usuarios.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &entity.Usuario{
		Nome:      in.Nome,
		Email:     in.Email,
		SenhaHash: string(hash),
	}
	if err := uc.usuarios.Create(u); err != nil {
		return nil, err
	}
	return ToUsuarioResponse(u), nil
}

// Login verifica email/senha e emite um JWT. Email desconhecido e senha
// incorreta devolvem o mesmo erro, sem distinguir os dois casos.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (string, *dto.UsuarioResponse, error) {
	u, err := uc.usuarios.FindByEmail(in.Email)
	if err != nil {
		return "", nil, err
	}
	if u == nil {
		return "", nil, domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(in.Senha)); err != nil {
		return "", nil, domain.ErrCredenciaisInvalidas
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", nil, err
	}
	return token, ToUsuarioResponse(u), nil
}

// ToUsuarioResponse converte a entidade para a resposta da API (sem o hash).
func ToUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
