package receipts

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/angelmondragon/tienda-backend/pkg/db/dbtest"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var fixedNow = time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	client := dbtest.NewClient(t)
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(client.DB()),
		TxRunner: client,
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return svc
}

func decodeRequest(t *testing.T, body string) CreateReceiptRequest {
	t.Helper()
	var req CreateReceiptRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

const validBody = `{
	"comprador": {"nombre": "Ana Pérez", "email": "ana@example.com", "direccion": "Av. Siempre Viva 123"},
	"productos": [{"id": 1, "nombre": "Torta Cuadrada de Chocolate", "precio": 45000, "cantidad": 2}],
	"total": "90000",
	"usuario_id": 7
}`

func TestCreateAssignsSequentialPurchaseNumbers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, decodeRequest(t, validBody))
	require.NoError(t, err)
	second, err := svc.Create(ctx, decodeRequest(t, validBody))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.NumeroCompra)
	assert.Equal(t, int64(2), second.NumeroCompra)
	assert.True(t, first.Total.Equal(decimal.NewFromInt(90000)))
	assert.True(t, fixedNow.Equal(first.Fecha))
	require.NotNil(t, first.UsuarioID)
	assert.Equal(t, int64(7), *first.UsuarioID)

	got, err := svc.GetByPurchaseNumber(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, "ana@example.com", got.Comprador.Email)
	require.Len(t, got.Productos, 1)
	assert.JSONEq(t, `{"id": 1, "nombre": "Torta Cuadrada de Chocolate", "precio": 45000, "cantidad": 2}`, string(got.Productos[0]))
}

func TestCreateAcceptsStringEncodedDocuments(t *testing.T) {
	svc := newTestService(t)
	body := `{
		"comprador": "{\"nombre\":\"Luis\",\"email\":\"luis@example.com\"}",
		"productos": "[{\"id\":\"TC001\",\"nombre\":\"Torta\",\"precio\":\"12990.50\",\"cantidad\":1}]",
		"fecha": "2024-12-24"
	}`
	created, err := svc.Create(context.Background(), decodeRequest(t, body))
	require.NoError(t, err)
	assert.Equal(t, "Luis", created.Comprador.Nombre)
	assert.True(t, created.Total.IsZero())
	assert.Nil(t, created.UsuarioID)
	assert.Equal(t, "2024-12-24", created.Fecha.Format("2006-01-02"))
	assert.JSONEq(t, `{"id":"TC001","nombre":"Torta","precio":"12990.50","cantidad":1}`, string(created.Productos[0]))
}

func TestCreateKeepsLineItemsAsSent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	body := `{
		"comprador": {"nombre": "Ana", "email": "ana@example.com"},
		"productos": [{"id": 3, "nombre": "Pie de Limón", "precio": 12000, "cantidad": "2", "imagen": "http://localhost:4003/uploads/pie.png"}]
	}`
	created, err := svc.Create(ctx, decodeRequest(t, body))
	require.NoError(t, err)

	got, err := svc.GetByPurchaseNumber(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	require.Len(t, got.Productos, 1)
	assert.JSONEq(t, `{"id": 3, "nombre": "Pie de Limón", "precio": 12000, "cantidad": "2", "imagen": "http://localhost:4003/uploads/pie.png"}`, string(got.Productos[0]))
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(t)
	cases := map[string]string{
		"empty productos":     `{"comprador": {"nombre": "A", "email": "a@b.cl"}, "productos": []}`,
		"missing productos":   `{"comprador": {"nombre": "A", "email": "a@b.cl"}}`,
		"productos not array": `{"comprador": {"nombre": "A", "email": "a@b.cl"}, "productos": {"id": 1}}`,
		"malformed text":      `{"comprador": {"nombre": "A", "email": "a@b.cl"}, "productos": "[{oops"}`,
		"buyer without email": `{"comprador": {"nombre": "A"}, "productos": [{"id": 1, "cantidad": 1}]}`,
		"missing buyer":       `{"productos": [{"id": 1, "cantidad": 1}]}`,
		"scalar line item":    `{"comprador": {"nombre": "A", "email": "a@b.cl"}, "productos": [1, 2]}`,
		"bad fecha":           `{"comprador": {"nombre": "A", "email": "a@b.cl"}, "productos": [{"id": 1}], "fecha": "ayer"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), decodeRequest(t, body))
			require.Error(t, err)
			assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "got %v", err)
		})
	}

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListByUserAndDelete(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.Create(ctx, decodeRequest(t, validBody))
		require.NoError(t, err)
	}
	other := `{"comprador": {"nombre": "B", "email": "b@b.cl"}, "productos": [{"id": 3, "cantidad": 1}], "usuario_id": "8"}`
	_, err := svc.Create(ctx, decodeRequest(t, other))
	require.NoError(t, err)

	mine, err := svc.ListByUser(ctx, "7")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	none, err := svc.ListByUser(ctx, "not-a-number")
	require.NoError(t, err)
	assert.Empty(t, none)

	res, err := svc.DeleteByUser(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Deleted)

	res, err = svc.DeleteByUser(ctx, "7")
	require.NoError(t, err)
	assert.Zero(t, res.Deleted)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, int64(3), all[0].NumeroCompra)
}

func TestGetByPurchaseNumberNotFound(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.GetByPurchaseNumber(context.Background(), "999")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestConcurrentCreatesNeverReuseNumbers(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	const workers = 8
	req := decodeRequest(t, validBody)
	numbers := make(chan int64, workers)
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			created, err := svc.Create(gctx, req)
			if err != nil {
				return err
			}
			numbers <- created.NumeroCompra
			return nil
		})
	}
	require.NoError(t, g.Wait())
	close(numbers)

	seen := map[int64]bool{}
	for n := range numbers {
		assert.False(t, seen[n], "duplicate numero_compra %d", n)
		seen[n] = true
	}
	assert.Len(t, seen, workers)
}

func TestCoerceKey(t *testing.T) {
	assert.Equal(t, int64(42), CoerceKey("42"))
	assert.Equal(t, int64(42), CoerceKey(" 42 "))
	assert.Equal(t, "abc", CoerceKey("abc"))
	assert.Equal(t, "4.5", CoerceKey("4.5"))
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.Error(t, err)
}
