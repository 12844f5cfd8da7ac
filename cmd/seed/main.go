// Seed de desenvolvimento: cria um usuário demo, fornecedores e produtos
// através dos próprios casos de uso, para subir um ambiente local utilizável.
// Reexecutar é seguro: duplicados são ignorados.
package main

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/dto"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/infrastructure/postgres"
	"github.com/seu-usuario/estoque-api/pkg/config"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

func ptr[T any](v T) *T { return &v }

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("configuração do PostgreSQL")
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("conexão com o banco de dados")
	}
	postgres.EnsureSchema(ctx, pool, log)

	usuarioRepo := postgres.NewUsuarioRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo, fornecedorRepo)

	if _, err := authUC.Cadastro(dto.CadastroRequest{
		Nome:  "Admin",
		Email: "admin@example.com",
		Senha: "admin123",
	}); err != nil && !errors.Is(err, domain.ErrEmailJaCadastrado) {
		log.Fatal().Err(err).Msg("seed usuário")
	}

	fornecedores := []dto.CreateFornecedorRequest{
		{Nome: "Ferragens Silva", CNPJ: "11222333000144", Email: ptr("contato@ferragens-silva.example"), Telefone: ptr("11999990000")},
		{Nome: "Distribuidora Ouro Verde", CNPJ: "55666777000188", Endereco: ptr("Av. Central, 1200 - São Paulo")},
	}
	ids := make([]int64, 0, len(fornecedores))
	for _, in := range fornecedores {
		f, err := fornecedorUC.Create(in)
		if err != nil {
			if errors.Is(err, domain.ErrCNPJJaCadastrado) {
				existing, _ := fornecedorRepo.FindByCNPJ(in.CNPJ)
				if existing != nil {
					ids = append(ids, existing.ID)
				}
				continue
			}
			log.Fatal().Err(err).Msg("seed fornecedor")
		}
		ids = append(ids, f.ID)
	}

	// Produtos não têm chave natural única; só semeia em banco vazio.
	existentes, err := produtoRepo.FindAll()
	if err != nil {
		log.Fatal().Err(err).Msg("seed produtos")
	}
	if len(existentes) == 0 && len(ids) >= 2 {
		produtos := []dto.CreateProdutoRequest{
			{Nome: "Parafuso sextavado M8", Preco: ptr(decimal.RequireFromString("0.35")), Quantidade: ptr(5000), Categoria: "fixacao", FornecedorID: &ids[0]},
			{Nome: "Furadeira de impacto 650W", Descricao: ptr("220V, mandril 13mm"), Preco: ptr(decimal.RequireFromString("289.90")), Quantidade: ptr(12), Categoria: "ferramentas", FornecedorID: &ids[0]},
			{Nome: "Luva de segurança", Preco: ptr(decimal.RequireFromString("8.50")), Quantidade: ptr(300), Categoria: "epi", FornecedorID: &ids[1]},
		}
		for _, in := range produtos {
			if _, err := produtoUC.Create(in); err != nil {
				log.Warn().Err(err).Str("produto", in.Nome).Msg("seed produto")
			}
		}
	}

	log.Info().Msg("seed concluído")
}
