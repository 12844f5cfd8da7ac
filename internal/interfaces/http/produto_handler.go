package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
)

// ProdutoHandler maneja as rotas de produtos (todas protegidas).
type ProdutoHandler struct {
	uc *usecase.ProdutoUseCase
}

// NewProdutoHandler constrói o handler.
func NewProdutoHandler(uc *usecase.ProdutoUseCase) *ProdutoHandler {
	return &ProdutoHandler{uc: uc}
}

// camposFaltando enumera os campos obrigatórios ausentes na criação,
// cada um reportado individualmente na resposta.
func camposFaltando(in dto.CreateProdutoRequest) []string {
	var campos []string
	if in.Nome == "" {
		campos = append(campos, "nome")
	}
	if in.Preco == nil {
		campos = append(campos, "preco")
	}
	if in.Quantidade == nil {
		campos = append(campos, "quantidade")
	}
	if in.Categoria == "" {
		campos = append(campos, "categoria")
	}
	if in.FornecedorID == nil || *in.FornecedorID == 0 {
		campos = append(campos, "fornecedor_id")
	}
	return campos
}

// Create godoc
// @Summary      Criar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProdutoRequest  true  "dados do produto"
// @Success      201   {object}  dto.ProdutoEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if campos := camposFaltando(in); len(campos) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION",
			Message: fmt.Sprintf("os seguintes campos são obrigatórios: %s", strings.Join(campos, ", ")),
			Campos:  campos,
		})
	}
	if in.Preco.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "preço não pode ser negativo"})
	}
	if *in.Quantidade < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade não pode ser negativa"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrFornecedorNaoEncontrado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FORNECEDOR_NOT_FOUND", Message: "fornecedor não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao criar produto", Details: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProdutoEnvelope{
		Mensagem: "Produto criado com sucesso",
		Produto:  *out,
	})
}

// List godoc
// @Summary      Listar produtos
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        categoria  query  string  false  "filtra por categoria (igualdade exata)"
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("categoria"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar produtos", Details: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao buscar produto", Details: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar produto (parcial)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.UpdateProdutoRequest  true  "campos a alterar"
// @Success      200   {object}  dto.ProdutoEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	var in dto.UpdateProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Preco != nil && in.Preco.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "preço não pode ser negativo"})
	}
	if in.Quantidade != nil && *in.Quantidade < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade não pode ser negativa"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrFornecedorNaoEncontrado) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FORNECEDOR_NOT_FOUND", Message: "fornecedor não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao atualizar produto", Details: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(dto.ProdutoEnvelope{
		Mensagem: "Produto atualizado com sucesso",
		Produto:  *out,
	})
}

// Delete godoc
// @Summary      Remover produto
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID do produto"
// @Success      200  {object}  dto.MensagemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao deletar produto", Details: err.Error()})
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(dto.MensagemResponse{Mensagem: "Produto deletado com sucesso"})
}

// UpdateQuantidade godoc
// @Summary      Ajustar quantidade em estoque
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID do produto"
// @Param        body  body  dto.UpdateQuantidadeRequest  true  "quantidade e operacao (adicionar|remover|definir)"
// @Success      200   {object}  dto.ProdutoEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/quantidade [patch]
func (h *ProdutoHandler) UpdateQuantidade(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "ID inválido"})
	}
	var in dto.UpdateQuantidadeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Quantidade == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade é obrigatória"})
	}
	out, err := h.uc.UpdateQuantidade(id, *in.Quantidade, in.Operacao)
	if err != nil {
		if errors.Is(err, domain.ErrEstoqueInsuficiente) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ESTOQUE_INSUFICIENTE", Message: "quantidade insuficiente em estoque"})
		}
		if errors.Is(err, domain.ErrQuantidadeNegativa) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantidade não pode ser negativa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao atualizar quantidade", Details: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(dto.ProdutoEnvelope{
		Mensagem: "Quantidade atualizada com sucesso",
		Produto:  *out,
	})
}
