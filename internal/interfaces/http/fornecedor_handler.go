package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// FornecedorHandler maneja as rotas de fornecedores (todas protegidas).
type FornecedorHandler struct {
	uc *usecase.FornecedorUseCase
}

// NewFornecedorHandler constrói o handler.
func NewFornecedorHandler(uc *usecase.FornecedorUseCase) *FornecedorHandler {
	return &FornecedorHandler{uc: uc}
}

// Create godoc
// @Summary      Criar fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFornecedorRequest  true  "dados do fornecedor"
// @Success      201   {object}  dto.FornecedorEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/fornecedores [post]
func (h *FornecedorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" || in.CNPJ == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "nome e CNPJ são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrCNPJJaCadastrado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CNPJ_EXISTS", Message: "CNPJ já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao criar fornecedor", Details: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FornecedorEnvelope{
		Mensagem:   "Fornecedor criado com sucesso",
		Fornecedor: *out,
	})
}

// List godoc
// @Summary      Listar fornecedores
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FornecedorResponse
// @Router       /api/fornecedores [get]
func (h *FornecedorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar fornecedores", Details: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter fornecedor por ID
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID do fornecedor"
// @Success      200  {object}  dto.FornecedorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [get]
func (h *FornecedorHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar fornecedor", Details: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar fornecedor (parcial)
// @Tags         fornecedores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do fornecedor"
// @Param        body  body  dto.UpdateFornecedorRequest  true  "campos a alterar"
// @Success      200   {object}  dto.FornecedorEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [put]
func (h *FornecedorHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	var in dto.UpdateFornecedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrCNPJJaCadastrado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "CNPJ_EXISTS", Message: "CNPJ já cadastrado para outro fornecedor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao atualizar fornecedor", Details: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
	}
	return c.JSON(dto.FornecedorEnvelope{
		Mensagem:   "Fornecedor atualizado com sucesso",
		Fornecedor: *out,
	})
}

// Delete godoc
// @Summary      Remover fornecedor
// @Tags         fornecedores
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID do fornecedor"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fornecedores/{id} [delete]
func (h *FornecedorHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao deletar fornecedor", Details: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fornecedor não encontrado"})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Fornecedor deletado com sucesso"})
}
