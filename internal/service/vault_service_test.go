package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/wilove/vaulten-sync-service/internal/dao"
	"github.com/wilove/vaulten-sync-service/internal/domain"
	"github.com/wilove/vaulten-sync-service/internal/dto"
	"github.com/wilove/vaulten-sync-service/pkg/cipher"
	"github.com/wilove/vaulten-sync-service/pkg/code"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestEntryRepo(t *testing.T) domain.EntryRepository {
	t.Helper()

	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type: "sqlite",
		Path: filepath.Join(t.TempDir(), "vault_test.db"),
	})
	require.NoError(t, err)

	return dao.NewEntryRepository(dao.New(db, zap.NewNop()))
}

func newTestCipher(t *testing.T, seed byte) *cipher.Cipher {
	t.Helper()

	key := make([]byte, cipher.KeySize)
	for i := range key {
		key[i] = seed
	}
	c, err := cipher.New(key)
	require.NoError(t, err)
	return c
}

func newTestVaultService(t *testing.T) (VaultService, domain.EntryRepository) {
	t.Helper()

	repo := newTestEntryRepo(t)
	svc := NewVaultService(repo, newTestCipher(t, 0x42), zap.NewNop())
	return svc, repo
}

func TestVaultService_CreateReturnsPlaintext(t *testing.T) {
	svc, repo := newTestVaultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{
		Name:     "github",
		Username: "alice",
		Password: "s3cret",
		URL:      "https://github.com",
		Notes:    "work account",
		Type:     "login",
		Category: "dev",
	})
	require.NoError(t, err)

	assert.NotZero(t, created.ID)
	assert.Equal(t, int64(1), created.UID)
	assert.Equal(t, "s3cret", created.Password)
	assert.Equal(t, "work account", created.Notes)
	assert.NotZero(t, created.UpdatedTimestamp)

	// At rest the secret fields are ciphertext
	// 落库后敏感字段是密文
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NotEqual(t, "work account", stored.Notes)
	assert.Equal(t, "github", stored.Name)
}

func TestVaultService_CreateDefaultsType(t *testing.T) {
	svc, _ := newTestVaultService(t)

	created, err := svc.Create(context.Background(), 1, &dto.EntryCreateRequest{Name: "untyped"})
	require.NoError(t, err)
	assert.Equal(t, domain.EntryTypeLogin, created.Type)
}

func TestVaultService_GetReturnsPlaintext(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{
		Name:     "mail",
		Password: "p@ss",
		Notes:    "личная почта",
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "p@ss", got.Password)
	assert.Equal(t, "личная почта", got.Notes)
}

func TestVaultService_GetNotFound(t *testing.T) {
	svc, _ := newTestVaultService(t)

	_, err := svc.Get(context.Background(), 999, 1)
	assert.ErrorIs(t, err, code.ErrorVaultEntryNotFound)
}

func TestVaultService_CrossOwnerAccessDenied(t *testing.T) {
	svc, repo := newTestVaultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{Name: "mine", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, created.ID, 2)
	assert.ErrorIs(t, err, code.ErrorVaultAccessDenied)

	_, err = svc.Update(ctx, created.ID, 2, &dto.EntryUpdateRequest{Name: "stolen"})
	assert.ErrorIs(t, err, code.ErrorVaultAccessDenied)

	err = svc.Delete(ctx, created.ID, 2)
	assert.ErrorIs(t, err, code.ErrorVaultAccessDenied)

	// The record is unchanged after the denied operations
	// 被拒绝的操作之后记录保持不变
	stored, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", stored.Name)
	assert.Equal(t, int64(1), stored.UID)
}

func TestVaultService_UpdateReplacesFieldsKeepsIdentity(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{
		Name:     "old-name",
		Username: "old-user",
		Password: "old-pass",
		Notes:    "old-notes",
		Category: "old-cat",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, 1, &dto.EntryUpdateRequest{
		Name:     "new-name",
		Username: "new-user",
		Password: "new-pass",
		URL:      "https://new.example",
		Notes:    "new-notes",
		Type:     "note",
		Category: "new-cat",
	})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.UID, updated.UID)
	assert.Equal(t, created.CreatedAt.Unix(), updated.CreatedAt.Unix())
	assert.Equal(t, "new-name", updated.Name)
	assert.Equal(t, "new-pass", updated.Password)
	assert.Equal(t, "new-notes", updated.Notes)
	assert.Equal(t, "note", updated.Type)
	assert.GreaterOrEqual(t, updated.UpdatedTimestamp, created.UpdatedTimestamp)

	got, err := svc.Get(ctx, created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "new-pass", got.Password)
}

func TestVaultService_DeleteThenGone(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{Name: "temp"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID, 1))

	_, err = svc.Get(ctx, created.ID, 1)
	assert.ErrorIs(t, err, code.ErrorVaultEntryNotFound)

	err = svc.Delete(ctx, created.ID, 1)
	assert.ErrorIs(t, err, code.ErrorVaultEntryNotFound)
}

func TestVaultService_List(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		_, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{Name: name, Password: "pw-" + name})
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, 2, &dto.EntryCreateRequest{Name: "other"})
	require.NoError(t, err)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "pw-a", list[0].Password)
}

func TestVaultService_SyncSince(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{Name: "one"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, &dto.EntryCreateRequest{Name: "two"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, &dto.EntryCreateRequest{Name: "foreign"})
	require.NoError(t, err)

	// since <= 0 returns everything the caller owns
	// since <= 0 返回调用者拥有的全部条目
	full, err := svc.SyncSince(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, full.UpdatedEntries, 2)
	assert.Positive(t, full.ServerTime)

	// nothing changed after the watermark
	// 水位之后没有变化
	empty, err := svc.SyncSince(ctx, 1, full.ServerTime)
	require.NoError(t, err)
	assert.Empty(t, empty.UpdatedEntries)

	// modify one entry, only it comes back
	// 修改一个条目后只有它被返回
	_, err = svc.Update(ctx, first.ID, 1, &dto.EntryUpdateRequest{Name: "one-renamed"})
	require.NoError(t, err)

	delta, err := svc.SyncSince(ctx, 1, full.ServerTime)
	require.NoError(t, err)
	require.Len(t, delta.UpdatedEntries, 1)
	assert.Equal(t, "one-renamed", delta.UpdatedEntries[0].Name)
}

func TestVaultService_SyncStrictlyGreater(t *testing.T) {
	svc, _ := newTestVaultService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{Name: "edge"})
	require.NoError(t, err)

	// since equal to the record's own timestamp excludes it
	// since 等于记录自身时间戳时不返回该记录
	delta, err := svc.SyncSince(ctx, 1, created.UpdatedTimestamp)
	require.NoError(t, err)
	assert.Empty(t, delta.UpdatedEntries)
}

func TestVaultService_ConcurrentCreate(t *testing.T) {
	// 单连接让 sqlite 串行处理写入，goroutine 层面仍然并发
	db, err := dao.NewDBEngineWithConfig(dao.DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "vault_concurrent_test.db"),
		MaxOpenConns: 1,
	})
	require.NoError(t, err)

	repo := dao.NewEntryRepository(dao.New(db, zap.NewNop()))
	svc := NewVaultService(repo, newTestCipher(t, 0x42), zap.NewNop())
	ctx := context.Background()

	const workers = 8
	ids := make(chan int64, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			created, err := svc.Create(ctx, 1, &dto.EntryCreateRequest{
				Name:     fmt.Sprintf("entry-%d", n),
				Password: "pw",
			})
			if assert.NoError(t, err) {
				ids <- created.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	// Every create gets its own id
	// 每次创建都得到独立的 id
	seen := make(map[int64]struct{})
	for id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
	require.Len(t, seen, workers)

	list, err := svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, workers)

	// UpdatedTimestamp 是毫秒精度，并发写入可能落在同一毫秒，
	// 增量同步靠严格大于比较工作，不要求时间戳互不相同
	full, err := svc.SyncSince(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, full.UpdatedEntries, workers)
}

func TestVaultService_WrongKeySurfacesCryptoError(t *testing.T) {
	repo := newTestEntryRepo(t)
	ctx := context.Background()

	sealSvc := NewVaultService(repo, newTestCipher(t, 0x01), zap.NewNop())
	created, err := sealSvc.Create(ctx, 1, &dto.EntryCreateRequest{Name: "x", Password: "pw"})
	require.NoError(t, err)

	openSvc := NewVaultService(repo, newTestCipher(t, 0x02), zap.NewNop())
	_, err = openSvc.Get(ctx, created.ID, 1)
	assert.ErrorIs(t, err, code.ErrorVaultCrypto)
}
