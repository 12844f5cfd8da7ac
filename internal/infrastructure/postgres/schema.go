package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/seu-usuario/estoque-api/pkg/logger"
)

// produtos.fornecedor_id não tem constraint de FK: a exclusão de um fornecedor
// nunca bloqueia nem apaga produtos em cascata; as leituras com join apenas
// deixam de aninhar o fornecedor quando o id não resolve mais.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		senha VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS fornecedores (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		email VARCHAR(100),
		telefone VARCHAR(20),
		endereco TEXT,
		cnpj VARCHAR(20) NOT NULL UNIQUE,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS produtos (
		id SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		descricao TEXT,
		preco NUMERIC(10,2) NOT NULL,
		quantidade INTEGER NOT NULL,
		categoria VARCHAR(50) NOT NULL,
		fornecedor_id INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

// EnsureSchema aplica o schema de forma idempotente na inicialização.
// Falhas são logadas e não derrubam o processo: o listener sobe mesmo assim
// e as requisições reportam o erro de backend normalmente.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Warn().Err(err).Msg("falha ao aplicar schema")
			return
		}
	}
	log.Info().Msg("schema verificado")
}
