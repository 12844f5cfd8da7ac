package postgres

import (
	"fmt"
	"strings"
)

// changeset acumula pares (coluna, valor) na ordem em que os campos opcionais
// de um update parcial são inspecionados. A ordem é determinística, o que
// mantém o SQL gerado estável e testável.
type changeset struct {
	cols []string
	args []any
}

func (cs *changeset) set(col string, val any) {
	cs.cols = append(cs.cols, col)
	cs.args = append(cs.args, val)
}

func (cs *changeset) empty() bool { return len(cs.cols) == 0 }

// clause renderiza "col1 = $1, col2 = $2, ..., updated_at = CURRENT_TIMESTAMP"
// e devolve os argumentos na mesma ordem. Qualquer mudança de campo carimba
// o updated_at junto.
func (cs *changeset) clause() (string, []any) {
	parts := make([]string, 0, len(cs.cols)+1)
	for i, col := range cs.cols {
		parts = append(parts, fmt.Sprintf("%s = $%d", col, i+1))
	}
	parts = append(parts, "updated_at = CURRENT_TIMESTAMP")
	return strings.Join(parts, ", "), cs.args
}
