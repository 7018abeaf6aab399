package users

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/db/dbtest"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/angelmondragon/tienda-backend/pkg/security"
	"github.com/angelmondragon/tienda-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPasswordCfg = config.PasswordConfig{
	ArgonMemoryKB:    8 * 1024,
	ArgonTime:        1,
	ArgonParallelism: 1,
	ArgonSaltLen:     16,
	ArgonKeyLen:      32,
}

func newTestService(t *testing.T) (Service, *Repository) {
	t.Helper()
	repo := NewRepository(dbtest.New(t))
	svc, err := NewService(ServiceParams{Repo: repo, PasswordConfig: testPasswordCfg})
	require.NoError(t, err)
	return svc, repo
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	created, err := svc.Register(ctx, RegisterRequest{
		Nombre:          "  Ana ",
		Apellidos:       "",
		Email:           " Ana@Duoc.CL ",
		Password:        "secreto",
		FechaNacimiento: "1999-04-12",
		Region:          "Metropolitana",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, "ana@duoc.cl", created.Email)
	require.NotNil(t, created.Nombre)
	assert.Equal(t, "Ana", *created.Nombre)
	assert.Nil(t, created.Apellidos)
	assert.Equal(t, models.DefaultUserType, created.TipoUsuario)
	require.NotNil(t, created.FechaNacimiento)
	assert.Equal(t, "1999-04-12", *created.FechaNacimiento)
	assert.JSONEq(t, `[]`, string(created.HistorialCompras))

	stored, err := repo.FindByEmail(ctx, "ana@duoc.cl")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto", stored.Password)
	ok, err := security.VerifyPassword("secreto", stored.Password)
	require.NoError(t, err)
	assert.True(t, ok)

	body, err := json.Marshal(created)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "password")
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterRequest{Email: "dup@duoc.cl", Password: "uno", Nombre: "Primero"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterRequest{Email: "DUP@duoc.cl", Password: "dos", Nombre: "Segundo"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Nombre)
	assert.Equal(t, "Primero", *stored.Nombre)
	ok, err := security.VerifyPassword("uno", stored.Password)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterRequest{Email: "a@b.cl"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.Register(ctx, RegisterRequest{Email: "   ", Password: "x"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.Register(ctx, RegisterRequest{Email: "a@b.cl", Password: "x", FechaNacimiento: "12/04/1999"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	var history types.EmbeddedJSON
	require.NoError(t, json.Unmarshal([]byte(`{"not":"array"}`), &history))
	_, err = svc.Register(ctx, RegisterRequest{Email: "a@b.cl", Password: "x", HistorialCompras: history})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestRegisterKeepsHistoryArray(t *testing.T) {
	svc, _ := newTestService(t)

	var history types.EmbeddedJSON
	require.NoError(t, json.Unmarshal([]byte(`"[{\"numero_compra\":1}]"`), &history))

	created, err := svc.Register(context.Background(), RegisterRequest{
		Email:            "hist@duoc.cl",
		Password:         "x",
		TipoUsuario:      "admin",
		HistorialCompras: history,
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", created.TipoUsuario)
	assert.JSONEq(t, `[{"numero_compra":1}]`, string(created.HistorialCompras))
}

func TestListAndGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Register(ctx, RegisterRequest{Email: "a@duoc.cl", Password: "x"})
	require.NoError(t, err)
	_, err = svc.Register(ctx, RegisterRequest{Email: "b@duoc.cl", Password: "x"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a@duoc.cl", list[0].Email)
	assert.Equal(t, "b@duoc.cl", list[1].Email)

	got, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.Email, got.Email)

	_, err = svc.Get(ctx, 9999)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestNewServiceRequiresRepo(t *testing.T) {
	_, err := NewService(ServiceParams{})
	assert.Error(t, err)
}
