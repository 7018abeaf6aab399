package categories

import (
	"context"
	"errors"
	"testing"

	"github.com/angelmondragon/tienda-backend/internal/products"
	"github.com/angelmondragon/tienda-backend/pkg/config"
	"github.com/angelmondragon/tienda-backend/pkg/db/dbtest"
	"github.com/angelmondragon/tienda-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/tienda-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testDefaults = []string{"Tortas Cuadradas", "Tortas Circulares", "Postres Individuales", " Tortas Cuadradas ", ""}

type failingCleaner struct{ calls int }

func (f *failingCleaner) ClearCategory(context.Context, string) (int64, error) {
	f.calls++
	return 0, errors.New("productos table locked")
}

type recordingMetrics struct{ steps []string }

func (r *recordingMetrics) IncStepFailure(saga, step, policy string) {
	r.steps = append(r.steps, saga+"/"+step+"/"+policy)
}

func newTestService(t *testing.T, policy string, cleaner productCleaner, metrics sagaMetrics) (Service, *gorm.DB) {
	t.Helper()
	conn := dbtest.New(t)
	if cleaner == nil {
		cleaner = products.NewRepository(conn)
	}
	svc, err := NewService(ServiceParams{
		Repo:     NewRepository(conn),
		Products: cleaner,
		Config:   config.CategoriesConfig{Defaults: testDefaults, CascadePolicy: policy},
		Metrics:  metrics,
	})
	require.NoError(t, err)
	return svc, conn
}

func TestCreateAndConflict(t *testing.T) {
	svc, _ := newTestService(t, config.CascadePolicyProceed, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "  Productos Veganos ")
	require.NoError(t, err)
	assert.Equal(t, "Productos Veganos", created.Nombre)

	_, err = svc.Create(ctx, "Productos Veganos")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	_, err = svc.Create(ctx, "   ")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t, config.CascadePolicyProceed, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Tortas Circulares")
	require.NoError(t, err)

	first, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)
	second, err := svc.SeedDefaults(ctx)
	require.NoError(t, err)

	expected := []string{"Postres Individuales", "Tortas Circulares", "Tortas Cuadradas"}
	assert.Equal(t, expected, first)
	assert.Equal(t, first, second)
}

func TestListSortedByName(t *testing.T) {
	svc, _ := newTestService(t, config.CascadePolicyProceed, nil, nil)
	ctx := context.Background()

	for _, name := range []string{"Zeta", "Alfa", "Media"} {
		_, err := svc.Create(ctx, name)
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alfa", list[0].Nombre)
	assert.Equal(t, "Zeta", list[2].Nombre)

	names, err := svc.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alfa", "Media", "Zeta"}, names)
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService(t, config.CascadePolicyProceed, nil, nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, "Alfa")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "Beta")
	require.NoError(t, err)

	renamed, err := svc.Update(ctx, a.ID, " Gamma ")
	require.NoError(t, err)
	assert.Equal(t, "Gamma", renamed.Nombre)

	_, err = svc.Update(ctx, a.ID, "Beta")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	_, err = svc.Update(ctx, 9999, "Delta")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	_, err = svc.Update(ctx, a.ID, "")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestDeleteClearsProductsAndAllowsRecreate(t *testing.T) {
	svc, conn := newTestService(t, config.CascadePolicyProceed, nil, nil)
	ctx := context.Background()

	category, err := svc.Create(ctx, "Tortas Especiales")
	require.NoError(t, err)

	name := "Tortas Especiales"
	other := "Otra"
	for _, p := range []*models.Product{
		{Nombre: "Torta Boda", Categoria: &name},
		{Nombre: "Torta Cumple", Categoria: &name},
		{Nombre: "Galleta", Categoria: &other},
	} {
		require.NoError(t, conn.Create(p).Error)
	}

	result, err := svc.Delete(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.ProductsCleared)
	assert.Nil(t, result.CleanupError)
	assert.Equal(t, "Tortas Especiales", result.Deleted.Nombre)

	var remaining int64
	require.NoError(t, conn.Model(&models.Product{}).Where("categoria = ?", name).Count(&remaining).Error)
	assert.Zero(t, remaining)
	var untouched int64
	require.NoError(t, conn.Model(&models.Product{}).Where("categoria = ?", other).Count(&untouched).Error)
	assert.Equal(t, int64(1), untouched)

	names, err := svc.ListNames(ctx)
	require.NoError(t, err)
	assert.NotContains(t, names, "Tortas Especiales")

	_, err = svc.Create(ctx, "Tortas Especiales")
	assert.NoError(t, err)

	_, err = svc.Delete(ctx, category.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestDeleteProceedPolicyReportsCleanupError(t *testing.T) {
	cleaner := &failingCleaner{}
	metrics := &recordingMetrics{}
	svc, _ := newTestService(t, config.CascadePolicyProceed, cleaner, metrics)
	ctx := context.Background()

	category, err := svc.Create(ctx, "Alfa")
	require.NoError(t, err)

	result, err := svc.Delete(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, result.CleanupError)
	assert.Contains(t, *result.CleanupError, "locked")
	assert.Equal(t, []string{"category_delete/clear_products/proceed"}, metrics.steps)

	names, err := svc.ListNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDeleteAbortPolicyKeepsCategory(t *testing.T) {
	cleaner := &failingCleaner{}
	metrics := &recordingMetrics{}
	svc, _ := newTestService(t, config.CascadePolicyAbort, cleaner, metrics)
	ctx := context.Background()

	category, err := svc.Create(ctx, "Alfa")
	require.NoError(t, err)

	_, err = svc.Delete(ctx, category.ID)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
	assert.Equal(t, []string{"category_delete/clear_products/abort"}, metrics.steps)

	names, err := svc.ListNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alfa"}, names)
}

func TestNewServiceValidatesPolicy(t *testing.T) {
	conn := dbtest.New(t)
	_, err := NewService(ServiceParams{
		Repo:     NewRepository(conn),
		Products: products.NewRepository(conn),
		Config:   config.CategoriesConfig{CascadePolicy: "retry"},
	})
	assert.Error(t, err)

	_, err = NewService(ServiceParams{Repo: NewRepository(conn)})
	assert.Error(t, err)
}
