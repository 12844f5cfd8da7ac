package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UsuarioUC    *usecase.UsuarioUseCase
	FornecedorUC *usecase.FornecedorUseCase
	ProdutoUC    *usecase.ProdutoUseCase
	JWTSecret    string
}

// Router registra as rotas da API. Cadastro e login são públicos;
// todo o resto exige Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)

	// Usuários: cadastro e login públicos, demais rotas protegidas
	usuarios := api.Group("/usuarios")
	authHandler := NewAuthHandler(deps.AuthUC)
	usuarios.Post("/cadastro", authHandler.Cadastro)
	usuarios.Post("/login", authHandler.Login)

	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", authMW, usuarioHandler.List)
	usuarios.Get("/:id", authMW, usuarioHandler.GetByID)
	usuarios.Put("/:id", authMW, usuarioHandler.Update)
	usuarios.Delete("/:id", authMW, usuarioHandler.Delete)

	// Fornecedores (protegido)
	fornecedores := api.Group("/fornecedores", authMW)
	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores.Post("/", fornecedorHandler.Create)
	fornecedores.Get("/", fornecedorHandler.List)
	fornecedores.Get("/:id", fornecedorHandler.GetByID)
	fornecedores.Put("/:id", fornecedorHandler.Update)
	fornecedores.Delete("/:id", fornecedorHandler.Delete)

	// Produtos (protegido)
	produtos := api.Group("/produtos", authMW)
	produtoHandler := NewProdutoHandler(deps.ProdutoUC)
	produtos.Post("/", produtoHandler.Create)
	produtos.Get("/", produtoHandler.List)
	produtos.Get("/:id", produtoHandler.GetByID)
	produtos.Put("/:id", produtoHandler.Update)
	produtos.Delete("/:id", produtoHandler.Delete)
	produtos.Patch("/:id/quantidade", produtoHandler.UpdateQuantidade)
}
