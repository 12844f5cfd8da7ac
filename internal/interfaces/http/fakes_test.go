package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/estoque-api/internal/application/auth"
	"github.com/seu-usuario/estoque-api/internal/application/usecase"
	"github.com/seu-usuario/estoque-api/internal/domain"
	"github.com/seu-usuario/estoque-api/internal/domain/entity"
	ihttp "github.com/seu-usuario/estoque-api/internal/interfaces/http"
	"github.com/seu-usuario/estoque-api/pkg/jwt"
)

const testJWTSecret = "segredo-de-teste"

// Repositórios em memória com a mesma semântica observável dos repositórios
// Postgres: leituras devolvem nil para id inexistente, unicidade de email e
// CNPJ vira erro de domínio, e as leituras de produto fazem o "join" com o
// fornecedor quando o fornecedor_id resolve.

type fakeUsuarioRepo struct {
	seq   int64
	store map[int64]*entity.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{store: map[int64]*entity.Usuario{}}
}

func (r *fakeUsuarioRepo) Create(u *entity.Usuario) error {
	for _, e := range r.store {
		if e.Email == u.Email {
			return domain.ErrEmailJaCadastrado
		}
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.store[u.ID] = &cp
	return nil
}

// FindByEmail carrega o hash da senha; as demais leituras não.
func (r *fakeUsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.store {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindByID(id int64) (*entity.Usuario, error) {
	u, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	cp.SenhaHash = ""
	return &cp, nil
}

func (r *fakeUsuarioRepo) FindAll() ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.store))
	for _, u := range r.store {
		cp := *u
		cp.SenhaHash = ""
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeUsuarioRepo) Update(id int64, patch entity.UsuarioPatch) (*entity.Usuario, error) {
	u, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	if patch.Email != nil {
		for oid, other := range r.store {
			if oid != id && other.Email == *patch.Email {
				return nil, domain.ErrEmailJaCadastrado
			}
		}
		u.Email = *patch.Email
	}
	if patch.Nome != nil {
		u.Nome = *patch.Nome
	}
	if patch.SenhaHash != nil {
		u.SenhaHash = *patch.SenhaHash
	}
	u.UpdatedAt = time.Now()
	cp := *u
	cp.SenhaHash = ""
	return &cp, nil
}

func (r *fakeUsuarioRepo) Delete(id int64) (bool, error) {
	if _, ok := r.store[id]; !ok {
		return false, nil
	}
	delete(r.store, id)
	return true, nil
}

type fakeFornecedorRepo struct {
	seq   int64
	store map[int64]*entity.Fornecedor
}

func newFakeFornecedorRepo() *fakeFornecedorRepo {
	return &fakeFornecedorRepo{store: map[int64]*entity.Fornecedor{}}
}

func (r *fakeFornecedorRepo) Create(f *entity.Fornecedor) error {
	for _, e := range r.store {
		if e.CNPJ == f.CNPJ {
			return domain.ErrCNPJJaCadastrado
		}
	}
	r.seq++
	f.ID = r.seq
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt
	cp := *f
	r.store[f.ID] = &cp
	return nil
}

func (r *fakeFornecedorRepo) FindByID(id int64) (*entity.Fornecedor, error) {
	f, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *fakeFornecedorRepo) FindByCNPJ(cnpj string) (*entity.Fornecedor, error) {
	for _, f := range r.store {
		if f.CNPJ == cnpj {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeFornecedorRepo) FindAll() ([]*entity.Fornecedor, error) {
	out := make([]*entity.Fornecedor, 0, len(r.store))
	for _, f := range r.store {
		cp := *f
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeFornecedorRepo) Update(id int64, patch entity.FornecedorPatch) (*entity.Fornecedor, error) {
	f, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	if patch.CNPJ != nil {
		for oid, other := range r.store {
			if oid != id && other.CNPJ == *patch.CNPJ {
				return nil, domain.ErrCNPJJaCadastrado
			}
		}
		f.CNPJ = *patch.CNPJ
	}
	if patch.Nome != nil {
		f.Nome = *patch.Nome
	}
	if patch.Email != nil {
		f.Email = patch.Email
	}
	if patch.Telefone != nil {
		f.Telefone = patch.Telefone
	}
	if patch.Endereco != nil {
		f.Endereco = patch.Endereco
	}
	f.UpdatedAt = time.Now()
	cp := *f
	return &cp, nil
}

func (r *fakeFornecedorRepo) Delete(id int64) (bool, error) {
	if _, ok := r.store[id]; !ok {
		return false, nil
	}
	delete(r.store, id)
	return true, nil
}

// fakeProdutoRepo resolve o fornecedor aninhado nas leituras, como o LEFT JOIN
// faz no banco. Create e UpdateQuantidade devolvem o produto sem o aninhado.
type fakeProdutoRepo struct {
	seq          int64
	store        map[int64]*entity.Produto
	fornecedores *fakeFornecedorRepo
}

func newFakeProdutoRepo(fornecedores *fakeFornecedorRepo) *fakeProdutoRepo {
	return &fakeProdutoRepo{store: map[int64]*entity.Produto{}, fornecedores: fornecedores}
}

func (r *fakeProdutoRepo) withJoin(p *entity.Produto) *entity.Produto {
	cp := *p
	if f, ok := r.fornecedores.store[cp.FornecedorID]; ok {
		fc := *f
		cp.Fornecedor = &fc
	} else {
		cp.Fornecedor = nil
	}
	return &cp
}

func (r *fakeProdutoRepo) Create(p *entity.Produto) error {
	r.seq++
	p.ID = r.seq
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	cp.Fornecedor = nil
	r.store[p.ID] = &cp
	return nil
}

func (r *fakeProdutoRepo) FindByID(id int64) (*entity.Produto, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	return r.withJoin(p), nil
}

func (r *fakeProdutoRepo) FindAll() ([]*entity.Produto, error) {
	out := make([]*entity.Produto, 0, len(r.store))
	for _, p := range r.store {
		out = append(out, r.withJoin(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProdutoRepo) FindByCategoria(categoria string) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range r.store {
		if p.Categoria == categoria {
			out = append(out, r.withJoin(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeProdutoRepo) Update(id int64, patch entity.ProdutoPatch) (*entity.Produto, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	if patch.Nome != nil {
		p.Nome = *patch.Nome
	}
	if patch.Descricao != nil {
		p.Descricao = patch.Descricao
	}
	if patch.Preco != nil {
		p.Preco = *patch.Preco
	}
	if patch.Quantidade != nil {
		p.Quantidade = *patch.Quantidade
	}
	if patch.Categoria != nil {
		p.Categoria = *patch.Categoria
	}
	if patch.FornecedorID != nil {
		p.FornecedorID = *patch.FornecedorID
	}
	p.UpdatedAt = time.Now()
	return r.withJoin(p), nil
}

func (r *fakeProdutoRepo) UpdateQuantidade(id int64, quantidade int) (*entity.Produto, error) {
	p, ok := r.store[id]
	if !ok {
		return nil, nil
	}
	p.Quantidade = quantidade
	p.UpdatedAt = time.Now()
	cp := *p
	cp.Fornecedor = nil
	return &cp, nil
}

func (r *fakeProdutoRepo) Delete(id int64) (bool, error) {
	if _, ok := r.store[id]; !ok {
		return false, nil
	}
	delete(r.store, id)
	return true, nil
}

type testEnv struct {
	app          *fiber.App
	usuarios     *fakeUsuarioRepo
	fornecedores *fakeFornecedorRepo
	produtos     *fakeProdutoRepo
}

// newTestApp monta a aplicação com os casos de uso reais sobre os
// repositórios em memória.
func newTestApp(t *testing.T) *testEnv {
	t.Helper()
	usuarios := newFakeUsuarioRepo()
	fornecedores := newFakeFornecedorRepo()
	produtos := newFakeProdutoRepo(fornecedores)

	app := fiber.New()
	ihttp.Router(app, ihttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(usuarios, auth.JWTConfig{
			Secret:     testJWTSecret,
			ExpMinutes: 60,
			Issuer:     "estoque-api-test",
		}),
		UsuarioUC:    usecase.NewUsuarioUseCase(usuarios),
		FornecedorUC: usecase.NewFornecedorUseCase(fornecedores),
		ProdutoUC:    usecase.NewProdutoUseCase(produtos, fornecedores),
		JWTSecret:    testJWTSecret,
	})
	return &testEnv{app: app, usuarios: usuarios, fornecedores: fornecedores, produtos: produtos}
}

// token emite um JWT válido sem passar pelo fluxo de login.
func (e *testEnv) token(t *testing.T) string {
	t.Helper()
	tok, err := jwt.Generate(testJWTSecret, 1, "teste@example.com", "estoque-api-test", 60)
	require.NoError(t, err)
	return tok
}

// request executa uma requisição JSON contra a aplicação e devolve o status
// e o corpo decodificado (nil quando o corpo está vazio).
func (e *testEnv) request(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	status, raw := e.requestRaw(t, method, path, token, body)
	if len(raw) == 0 {
		return status, nil
	}
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "corpo: %s", raw)
	return status, decoded
}

// requestList é como request, para respostas que são arrays JSON.
func (e *testEnv) requestList(t *testing.T, method, path, token string, body any) (int, []map[string]any) {
	t.Helper()
	status, raw := e.requestRaw(t, method, path, token, body)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded), "corpo: %s", raw)
	return status, decoded
}

func (e *testEnv) requestRaw(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// criaFornecedor cadastra um fornecedor via API e devolve seu id.
func (e *testEnv) criaFornecedor(t *testing.T, token, nome, cnpj string) int64 {
	t.Helper()
	status, body := e.request(t, nethttp.MethodPost, "/api/fornecedores", token, map[string]any{
		"nome": nome,
		"cnpj": cnpj,
	})
	require.Equal(t, nethttp.StatusCreated, status)
	fornecedor := body["fornecedor"].(map[string]any)
	return int64(fornecedor["id"].(float64))
}

// criaProduto cadastra um produto via API e devolve seu id.
func (e *testEnv) criaProduto(t *testing.T, token string, fornecedorID int64, nome, categoria string, quantidade int) int64 {
	t.Helper()
	status, body := e.request(t, nethttp.MethodPost, "/api/produtos", token, map[string]any{
		"nome":          nome,
		"preco":         19.90,
		"quantidade":    quantidade,
		"categoria":     categoria,
		"fornecedor_id": fornecedorID,
	})
	require.Equal(t, nethttp.StatusCreated, status)
	produto := body["produto"].(map[string]any)
	return int64(produto["id"].(float64))
}
