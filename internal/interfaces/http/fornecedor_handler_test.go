package http_test

import (
	nethttp "net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFornecedor_Create(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)

	status, body := env.request(t, nethttp.MethodPost, "/api/fornecedores", token, map[string]any{
		"nome":     "Ferragens Silva",
		"cnpj":     "11222333000144",
		"email":    "contato@ferragens.example",
		"telefone": "11999990000",
	})
	require.Equal(t, nethttp.StatusCreated, status)
	assert.Equal(t, "Fornecedor criado com sucesso", body["mensagem"])

	fornecedor := body["fornecedor"].(map[string]any)
	assert.Equal(t, "Ferragens Silva", fornecedor["nome"])
	assert.Equal(t, "11222333000144", fornecedor["cnpj"])
	assert.Equal(t, "contato@ferragens.example", fornecedor["email"])
	assert.Nil(t, fornecedor["endereco"])
	assert.NotZero(t, fornecedor["id"])
}

func TestFornecedor_CreateSemCNPJ(t *testing.T) {
	env := newTestApp(t)

	status, body := env.request(t, nethttp.MethodPost, "/api/fornecedores", env.token(t), map[string]any{
		"nome": "Sem CNPJ",
	})
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", body["code"])
}

func TestFornecedor_CNPJDuplicado(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")

	status, body := env.request(t, nethttp.MethodPost, "/api/fornecedores", token, map[string]any{
		"nome": "Clone",
		"cnpj": "11222333000144",
	})
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, "CNPJ_EXISTS", body["code"])
}

func TestFornecedor_GetPorID(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	id := env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")

	status, body := env.request(t, nethttp.MethodGet, "/api/fornecedores/1", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, float64(id), body["id"])
	assert.Equal(t, "Ferragens Silva", body["nome"])

	status, body = env.request(t, nethttp.MethodGet, "/api/fornecedores/999", token, nil)
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])

	status, body = env.request(t, nethttp.MethodGet, "/api/fornecedores/xyz", token, nil)
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID", body["code"])
}

func TestFornecedor_UpdateParcial(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")

	status, body := env.request(t, nethttp.MethodPut, "/api/fornecedores/1", token, map[string]any{
		"telefone": "1133334444",
	})
	require.Equal(t, nethttp.StatusOK, status)
	fornecedor := body["fornecedor"].(map[string]any)
	assert.Equal(t, "1133334444", fornecedor["telefone"])
	assert.Equal(t, "Ferragens Silva", fornecedor["nome"])
	assert.Equal(t, "11222333000144", fornecedor["cnpj"])
}

// Reenviar o próprio CNPJ é permitido; o CNPJ de outro fornecedor, não.
func TestFornecedor_UpdateCNPJ(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")
	env.criaFornecedor(t, token, "Ouro Verde", "55666777000188")

	status, _ := env.request(t, nethttp.MethodPut, "/api/fornecedores/1", token, map[string]any{
		"cnpj": "11222333000144",
		"nome": "Ferragens Silva Ltda",
	})
	assert.Equal(t, nethttp.StatusOK, status)

	status, body := env.request(t, nethttp.MethodPut, "/api/fornecedores/2", token, map[string]any{
		"cnpj": "11222333000144",
	})
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, "CNPJ_EXISTS", body["code"])
}

func TestFornecedor_UpdateInexistente(t *testing.T) {
	env := newTestApp(t)

	status, body := env.request(t, nethttp.MethodPut, "/api/fornecedores/999", env.token(t), map[string]any{
		"nome": "Fantasma",
	})
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestFornecedor_Delete(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")

	status, body := env.request(t, nethttp.MethodDelete, "/api/fornecedores/1", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "Fornecedor deletado com sucesso", body["mensagem"])

	status, _ = env.request(t, nethttp.MethodDelete, "/api/fornecedores/1", token, nil)
	assert.Equal(t, nethttp.StatusNotFound, status)
}

// Deletar o fornecedor não apaga nem bloqueia os produtos que o referenciam;
// as leituras passam a omitir o fornecedor aninhado.
func TestFornecedor_DeleteNaoCascateiaParaProdutos(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	fid := env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")
	env.criaProduto(t, token, fid, "Parafuso M8", "fixacao", 100)

	status, _ := env.request(t, nethttp.MethodDelete, "/api/fornecedores/1", token, nil)
	require.Equal(t, nethttp.StatusOK, status)

	status, body := env.request(t, nethttp.MethodGet, "/api/produtos/1", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, float64(fid), body["fornecedor_id"])
	assert.NotContains(t, body, "fornecedor")
}

func TestFornecedor_List(t *testing.T) {
	env := newTestApp(t)
	token := env.token(t)
	env.criaFornecedor(t, token, "Ferragens Silva", "11222333000144")
	env.criaFornecedor(t, token, "Ouro Verde", "55666777000188")

	status, list := env.requestList(t, nethttp.MethodGet, "/api/fornecedores", token, nil)
	require.Equal(t, nethttp.StatusOK, status)
	require.Len(t, list, 2)
	assert.Equal(t, "Ferragens Silva", list[0]["nome"])
	assert.Equal(t, "Ouro Verde", list[1]["nome"])
}
