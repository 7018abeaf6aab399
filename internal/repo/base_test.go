package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type row struct {
	ID    int
	Owner string
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, conn.AutoMigrate(&row{}))
	return conn
}

type ctxKey struct{}

func TestBaseDBBindsContext(t *testing.T) {
	conn := newTestDB(t)
	base := NewBase(conn)

	ctx := context.WithValue(context.Background(), ctxKey{}, "value")
	scoped := base.DB(ctx)
	require.NotNil(t, scoped.Statement)
	assert.Equal(t, ctx, scoped.Statement.Context)

	assert.Same(t, conn, base.DB(nil))
}

func TestWithTxRebindsToTransaction(t *testing.T) {
	conn := newTestDB(t)
	base := NewBase(conn)
	ctx := context.Background()

	err := conn.Transaction(func(tx *gorm.DB) error {
		txBase := base.WithTx(tx)
		return txBase.DB(ctx).Create(&row{Owner: "a"}).Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, base.DB(ctx).Model(&row{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAffected(t *testing.T) {
	conn := newTestDB(t)
	ctx := context.Background()
	require.NoError(t, conn.Create(&[]row{{Owner: "a"}, {Owner: "a"}, {Owner: "b"}}).Error)

	n, err := Affected(conn.WithContext(ctx).Where("owner = ?", "a").Delete(&row{}))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = Affected(conn.WithContext(ctx).Where("owner = ?", "zzz").Delete(&row{}))
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = Affected(conn.WithContext(ctx).Exec("DELETE FROM missing"))
	assert.Error(t, err)
}
