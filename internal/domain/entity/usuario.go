package entity

import "time"

// Usuario representa um usuário do sistema.
type Usuario struct {
	ID        int64
	Nome      string
	Email     string
	SenhaHash string // bcrypt hash, nunca em claro no domínio após persistir
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UsuarioPatch campos opcionais de um update parcial; nil significa "não tocar".
// SenhaHash já chega hasheada pela camada de aplicação.
type UsuarioPatch struct {
	Nome      *string
	Email     *string
	SenhaHash *string
}

// Vazio indica que nenhum campo foi fornecido.
func (p UsuarioPatch) Vazio() bool {
	return p.Nome == nil && p.Email == nil && p.SenhaHash == nil
}
