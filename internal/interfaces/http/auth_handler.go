package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// AuthHandler maneja cadastro e login (rotas públicas).
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler constrói o handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Cadastro godoc
// @Summary      Cadastrar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CadastroRequest  true  "nome, email, senha"
// @Success      201   {object}  dto.UsuarioEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/usuarios/cadastro [post]
func (h *AuthHandler) Cadastro(c *fiber.Ctx) error {
	var in dto.CadastroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome, email e senha são obrigatórios"})
	}
	out, err := h.uc.Cadastro(in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailJaCadastrado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "email já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao criar usuário", Details: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UsuarioEnvelope{
		Mensagem: "Usuário criado com sucesso",
		Usuario:  *out,
	})
}

// Login godoc
// @Summary      Autenticar usuário
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, senha"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/usuarios/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Email == "" || in.Senha == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email e senha são obrigatórios"})
	}
	token, usuario, err := h.uc.Login(in)
	if err != nil {
		// Email desconhecido e senha incorreta respondem o mesmo corpo.
		if errors.Is(err, domain.ErrCredenciaisInvalidas) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciais inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao fazer login", Details: err.Error()})
	}
	return c.JSON(dto.LoginResponse{
		Mensagem: "Login realizado com sucesso",
		Token:    token,
		Usuario:  *usuario,
	})
}
