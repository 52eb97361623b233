package dao

import (
	"path/filepath"
	"testing"

	"github.com/wilove/vaulten-sync-service/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestDB(t *testing.T) *Dao {
	t.Helper()

	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "dao_test.db"),
	})
	require.NoError(t, err)
	return New(db, zap.NewNop())
}

func TestUseWithMigrateCreatesTableOnce(t *testing.T) {
	d := newTestDB(t)

	d.UseWithMigrate("VaultEntry")
	assert.True(t, d.db.Migrator().HasTable(model.VaultEntry{}))

	// 第二次使用不再触发迁移
	d.UseWithMigrate("VaultEntry")
	_, ok := d.migrated["VaultEntry"]
	assert.True(t, ok)
}

func TestUseWithMigrateLogsFailureAndRetries(t *testing.T) {
	db, err := NewDBEngineWithConfig(DatabaseConfig{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "dao_fail_test.db"),
	})
	require.NoError(t, err)

	// 关闭底层连接使迁移必然失败
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	core, logs := observer.New(zap.ErrorLevel)
	d := New(db, zap.New(core))

	d.UseWithMigrate("User")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "auto migrate failed", logs.All()[0].Message)

	// Failure is not marked done, the next use retries
	// 失败不标记完成，下次使用会重试
	_, ok := d.migrated["User"]
	assert.False(t, ok)
	d.UseWithMigrate("User")
	assert.Equal(t, 2, logs.Len())
}
