package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado           = errors.New("recurso não encontrado")
	ErrEmailJaCadastrado       = errors.New("email já cadastrado")
	ErrCNPJJaCadastrado        = errors.New("CNPJ já cadastrado")
	ErrFornecedorNaoEncontrado = errors.New("fornecedor não encontrado")
	ErrCredenciaisInvalidas    = errors.New("credenciais inválidas")
	ErrEstoqueInsuficiente     = errors.New("quantidade insuficiente em estoque")
	ErrQuantidadeNegativa      = errors.New("quantidade não pode ser negativa")
	ErrPrecoNegativo           = errors.New("preço não pode ser negativo")
)
