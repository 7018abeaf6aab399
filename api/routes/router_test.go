package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/angelmondragon/tienda-backend/api/controllers"
	"github.com/angelmondragon/tienda-backend/internal/auth"
	"github.com/angelmondragon/tienda-backend/internal/categories"
	"github.com/angelmondragon/tienda-backend/internal/media"
	"github.com/angelmondragon/tienda-backend/internal/products"
	"github.com/angelmondragon/tienda-backend/internal/receipts"
	"github.com/angelmondragon/tienda-backend/internal/users"
	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/db/dbtest"
	"github.com/angelmondragon/tienda-backend/pkg/logger"
	"github.com/angelmondragon/tienda-backend/pkg/metrics"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00\x90wS\xde")

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		App: config.AppConfig{Env: "test"},
		JWT: config.JWTConfig{Secret: "test-secret", Issuer: "tienda", ExpirationMinutes: 480},
		Password: config.PasswordConfig{
			ArgonMemoryKB:    8 * 1024,
			ArgonTime:        1,
			ArgonParallelism: 1,
			ArgonSaltLen:     16,
			ArgonKeyLen:      32,
		},
		Media:      config.MediaConfig{UploadDir: t.TempDir(), MaxUploadMB: 1},
		Categories: config.CategoriesConfig{Defaults: []string{"Tortas Cuadradas", "Postres Individuales"}, CascadePolicy: config.CascadePolicyProceed},
		CORS:       config.CORSConfig{AllowedOrigins: []string{"*"}},
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func usersRouter(t *testing.T, cfg *config.Config) http.Handler {
	t.Helper()
	conn := dbtest.New(t)
	repo := users.NewRepository(conn)
	userSvc, err := users.NewService(users.ServiceParams{Repo: repo, PasswordConfig: cfg.Password})
	require.NoError(t, err)
	authSvc, err := auth.NewService(auth.ServiceParams{UserRepo: repo, JWTConfig: cfg.JWT, PasswordConfig: cfg.Password})
	require.NoError(t, err)
	return NewServiceRouter(Options{Config: cfg, Logger: logger.Nop(), Service: "users"}, Users(cfg, userSvc, authSvc, nil, logger.Nop()))
}

func TestUsersRegisterLoginAndList(t *testing.T) {
	cfg := testConfig(t)
	h := usersRouter(t, cfg)

	rec, env := do(t, h, http.MethodPost, "/usuarios/register", `{"nombre":"Ana","email":"Ana@Example.com","password":"secreto123","fecha_nacimiento":"1990-05-17"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, string(env.Data), "password")
	assert.NotContains(t, string(env.Data), "secreto123")

	rec, env = do(t, h, http.MethodPost, "/usuarios/register", `{"nombre":"Otra","email":"ana@example.com","password":"otra"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)

	rec, env = do(t, h, http.MethodPost, "/usuarios/login", `{"email":"ana@example.com","password":"secreto123"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login auth.LoginResponse
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	require.NotNil(t, login.Usuario)
	assert.Equal(t, "Ana", *login.Usuario.Nombre)

	rec, env = do(t, h, http.MethodGet, "/usuarios", "", "Authorization", "Bearer "+login.Token)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []users.UserDTO
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "ana@example.com", list[0].Email)

	rec, _ = do(t, h, http.MethodGet, "/usuarios/1", "", "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, h, http.MethodGet, "/usuarios/99", "", "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = do(t, h, http.MethodGet, "/usuarios/abc", "", "Authorization", "Bearer "+login.Token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	sig := strings.LastIndex(login.Token, ".") + 1
	swap := "A"
	if login.Token[sig] == 'A' {
		swap = "B"
	}
	tampered := login.Token[:sig] + swap + login.Token[sig+1:]
	rec, _ = do(t, h, http.MethodGet, "/usuarios", "", "Authorization", "Bearer "+tampered)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/usuarios", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	cfg := testConfig(t)
	h := usersRouter(t, cfg)

	rec, _ := do(t, h, http.MethodPost, "/usuarios/register", `{"email":"luis@example.com","password":"correcta"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPass, _ := do(t, h, http.MethodPost, "/usuarios/login", `{"email":"luis@example.com","password":"incorrecta"}`)
	unknown, _ := do(t, h, http.MethodPost, "/usuarios/login", `{"email":"nadie@example.com","password":"incorrecta"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestWriteEndpointsIgnoreExtraKeys(t *testing.T) {
	cfg := testConfig(t)
	h := usersRouter(t, cfg)
	rec, env := do(t, h, http.MethodPost, "/usuarios/register", `{"email":"sofia@example.com","password":"clave123","confirmPassword":"clave123","aceptaTerminos":true}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotContains(t, string(env.Data), "confirmPassword")

	boletas, _ := receiptsRouters(t, cfg)
	rec, _ = do(t, boletas, http.MethodPost, "/boletas", `{"comprador":{"nombre":"Sofía","email":"sofia@example.com"},"productos":[{"id":1,"nombre":"Torta","precio":45000,"cantidad":1}],"total":45000,"estado":"pagado"}`)
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func productsRouter(t *testing.T, cfg *config.Config) (http.Handler, *gorm.DB) {
	t.Helper()
	conn := dbtest.New(t)
	storage, err := media.NewLocalStorage(cfg.Media, "http://localhost:4003")
	require.NoError(t, err)
	svc, err := products.NewService(products.ServiceParams{Repo: products.NewRepository(conn), Images: storage})
	require.NoError(t, err)
	return NewServiceRouter(Options{Config: cfg, Service: "products"}, Products(cfg, svc, storage, nil)), conn
}

func TestProductsCoerceFormValues(t *testing.T) {
	cfg := testConfig(t)
	h, _ := productsRouter(t, cfg)

	rec, env := do(t, h, http.MethodPost, "/productos", `{"nombre":"Torta de Chocolate","en_oferta":"1","stock":"50","precio":"45000","categoria":"Tortas Cuadradas"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created products.ProductDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.True(t, created.EnOferta)
	assert.Equal(t, 50, created.Stock)
	assert.Nil(t, created.PrecioOferta)
	assert.Contains(t, string(env.Data), `"precio":45000`)

	rec, env = do(t, h, http.MethodPost, "/productos", `{"nombre":"Mala","precio":"mucho"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)

	rec, _ = do(t, h, http.MethodPut, "/productos/999", `{"stock":3}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = do(t, h, http.MethodPut, "/productos/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/productos/categoria/Tortas%20Cuadradas", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var byCat []products.ProductDTO
	require.NoError(t, json.Unmarshal(env.Data, &byCat))
	assert.Len(t, byCat, 1)

	rec, env = do(t, h, http.MethodDelete, "/productos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":1}`, string(env.Data))
	rec, env = do(t, h, http.MethodDelete, "/productos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":0}`, string(env.Data))
}

func TestProductsMultipartUploadIsServed(t *testing.T) {
	cfg := testConfig(t)
	h, _ := productsRouter(t, cfg)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("nombre", "Kuchen de Nuez"))
	require.NoError(t, mw.WriteField("en_oferta", "TRUE"))
	require.NoError(t, mw.WriteField("imagen", "https://cdn.example.com/ignored.png"))
	part, err := mw.CreateFormFile("imagen", "kuchen nuez.png")
	require.NoError(t, err)
	_, _ = part.Write(pngHeader)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/productos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	var created products.ProductDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotNil(t, created.Imagen)
	assert.True(t, created.EnOferta)
	assert.True(t, strings.HasPrefix(*created.Imagen, "http://localhost:4003/uploads/"), *created.Imagen)

	path := strings.TrimPrefix(*created.Imagen, "http://localhost:4003")
	fileRec := httptest.NewRecorder()
	h.ServeHTTP(fileRec, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, fileRec.Code)
	assert.Equal(t, pngHeader, fileRec.Body.Bytes())

	listing := httptest.NewRecorder()
	h.ServeHTTP(listing, httptest.NewRequest(http.MethodGet, "/uploads/", nil))
	assert.Equal(t, http.StatusNotFound, listing.Code)
}

func TestProductsRejectsNonImageUpload(t *testing.T) {
	cfg := testConfig(t)
	h, _ := productsRouter(t, cfg)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("nombre", "Script"))
	part, err := mw.CreateFormFile("imagen", "evil.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("#!/bin/sh\necho hi\n"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/productos", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func categoriesRouter(t *testing.T, cfg *config.Config, conn *gorm.DB, reg *prometheus.Registry) http.Handler {
	t.Helper()
	svc, err := categories.NewService(categories.ServiceParams{
		Repo:     categories.NewRepository(conn),
		Products: products.NewRepository(conn),
		Config:   cfg.Categories,
		Metrics:  metrics.NewSagaMetrics(reg),
	})
	require.NoError(t, err)
	return NewServiceRouter(Options{Config: cfg, Service: "categories", Registry: reg}, Categories(svc, nil))
}

func TestCategoriesSeedAndCascadeDelete(t *testing.T) {
	cfg := testConfig(t)
	productsH, conn := productsRouter(t, cfg)
	h := categoriesRouter(t, cfg, conn, prometheus.NewRegistry())

	first, env1 := do(t, h, http.MethodPost, "/categorias/seed", "")
	second, env2 := do(t, h, http.MethodPost, "/categorias/seed", "")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, string(env1.Data), string(env2.Data))
	assert.JSONEq(t, `["Postres Individuales","Tortas Cuadradas"]`, string(env2.Data))

	rec, _ := do(t, productsH, http.MethodPost, "/productos", `{"nombre":"Torta","categoria":"Tortas Cuadradas"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/categorias", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []categories.CategoryDTO
	require.NoError(t, json.Unmarshal(env.Data, &list))
	var target int64
	for _, c := range list {
		if c.Nombre == "Tortas Cuadradas" {
			target = c.ID
		}
	}
	require.NotZero(t, target)

	rec, env = do(t, h, http.MethodDelete, "/categorias/"+strconv.FormatInt(target, 10), "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result categories.DeleteResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, int64(1), result.ProductsCleared)
	assert.Nil(t, result.CleanupError)

	rec, env = do(t, productsH, http.MethodGet, "/productos/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"categoria":null`)

	rec, _ = do(t, h, http.MethodPost, "/categorias", `{"nombre":"Tortas Cuadradas"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	rec, _ = do(t, h, http.MethodPost, "/categorias", `{"nombre":"Tortas Cuadradas"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec, _ = do(t, h, http.MethodDelete, "/categorias/9999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsEndpointExposesRequestCounters(t *testing.T) {
	cfg := testConfig(t)
	reg := prometheus.NewRegistry()
	h := categoriesRouter(t, cfg, dbtest.New(t), reg)

	do(t, h, http.MethodGet, "/categorias/nombres", "")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/categorias/nombres",service="categories",status="200"} 1`)
}

func receiptsRouters(t *testing.T, cfg *config.Config) (http.Handler, http.Handler) {
	t.Helper()
	client := dbtest.NewClient(t)
	svc, err := receipts.NewService(receipts.ServiceParams{Repo: receipts.NewRepository(client.DB()), TxRunner: client})
	require.NoError(t, err)
	return NewServiceRouter(Options{Config: cfg, Service: "receipts"}, Receipts(svc, nil)),
		NewServiceRouter(Options{Config: cfg, Service: "receipt-detail"}, ReceiptDetail(svc, nil))
}

func TestReceiptsCreateAndLookup(t *testing.T) {
	cfg := testConfig(t)
	h, detail := receiptsRouters(t, cfg)

	rec, env := do(t, h, http.MethodPost, "/boletas", `{"comprador":{"nombre":"Ana","email":"ana@example.com"},"productos":[],"usuario_id":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)

	rec, env = do(t, h, http.MethodPost, "/boletas", `{"comprador":"{\"nombre\":\"Ana\",\"email\":\"ana@example.com\"}","productos":[{"id":1,"nombre":"Torta","precio":45000,"cantidad":1}],"total":45000,"usuario_id":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created receipts.ReceiptDTO
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.NumeroCompra)

	rec, env = do(t, h, http.MethodGet, "/boletas/numero/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got receipts.ReceiptDTO
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, created.ID, got.ID)

	rec, _ = do(t, detail, http.MethodGet, "/detalle/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, detail, http.MethodGet, "/detalle/2", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = do(t, detail, http.MethodPost, "/detalle", `{}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/boletas/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []receipts.ReceiptDTO
	require.NoError(t, json.Unmarshal(env.Data, &mine))
	assert.Len(t, mine, 1)

	rec, env = do(t, h, http.MethodDelete, "/boletas/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":1}`, string(env.Data))
	rec, env = do(t, h, http.MethodDelete, "/boletas/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"deleted":0}`, string(env.Data))
}

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestHealthProbes(t *testing.T) {
	cfg := testConfig(t)
	client := dbtest.NewClient(t)

	ready := NewServiceRouter(Options{Config: cfg, Service: "users", Ready: map[string]controllers.Pinger{"db": client}}, nil)
	rec, _ := do(t, ready, http.MethodGet, "/health/live", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = do(t, ready, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	broken := NewServiceRouter(Options{Config: cfg, Service: "users", Ready: map[string]controllers.Pinger{"redis": failingPinger{}}}, nil)
	rec, env := do(t, broken, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "connection refused", env.Error.Details["redis"])
}

func TestAPIDocsServed(t *testing.T) {
	h := NewServiceRouter(Options{Config: testConfig(t), Service: "users"}, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api-docs/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/boletas/numero/{numeroCompra}"`)
	assert.Contains(t, rec.Body.String(), `"#/definitions/types.SuccessEnvelope"`)
	assert.Contains(t, rec.Body.String(), `"#/definitions/models.Buyer"`)
}

func TestUnknownRouteUsesErrorEnvelope(t *testing.T) {
	h := NewServiceRouter(Options{Config: testConfig(t), Service: "users"}, nil)
	rec, env := do(t, h, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
