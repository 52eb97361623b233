package dao

import (
	"context"
	"time"

	"github.com/wilove/vaulten-sync-service/internal/domain"
	"github.com/wilove/vaulten-sync-service/internal/model"
	"github.com/wilove/vaulten-sync-service/pkg/timex"

	"gorm.io/gorm"
)

// entryRepository 实现 domain.EntryRepository 接口
type entryRepository struct {
	dao *Dao
	tx  *gorm.DB // 非空时所有操作走该事务
}

var _ domain.EntryRepository = (*entryRepository)(nil)

// NewEntryRepository 创建 EntryRepository 实例
func NewEntryRepository(dao *Dao) domain.EntryRepository {
	return &entryRepository{dao: dao}
}

// db 获取条目表连接（首次使用时迁移）
func (r *entryRepository) db(ctx context.Context) *gorm.DB {
	if r.tx != nil {
		return r.tx.WithContext(ctx)
	}
	return r.dao.UseWithMigrate("VaultEntry").WithContext(ctx)
}

// toDomain 将数据库模型转换为领域模型
func (r *entryRepository) toDomain(m *model.VaultEntry) *domain.VaultEntry {
	if m == nil {
		return nil
	}
	return &domain.VaultEntry{
		ID:               m.ID,
		UID:              m.UID,
		Name:             m.Name,
		Username:         m.Username,
		Password:         m.Password,
		URL:              m.URL,
		Notes:            m.Notes,
		Type:             m.Type,
		Category:         m.Category,
		UpdatedTimestamp: m.UpdatedTimestamp,
		CreatedAt:        time.Time(m.CreatedAt),
		UpdatedAt:        time.Time(m.UpdatedAt),
	}
}

// toModel 将领域模型转换为数据库模型
func (r *entryRepository) toModel(entry *domain.VaultEntry) *model.VaultEntry {
	if entry == nil {
		return nil
	}
	return &model.VaultEntry{
		ID:               entry.ID,
		UID:              entry.UID,
		Name:             entry.Name,
		Username:         entry.Username,
		Password:         entry.Password,
		URL:              entry.URL,
		Notes:            entry.Notes,
		Type:             entry.Type,
		Category:         entry.Category,
		UpdatedTimestamp: entry.UpdatedTimestamp,
		CreatedAt:        timex.Time(entry.CreatedAt),
		UpdatedAt:        timex.Time(entry.UpdatedAt),
	}
}

func (r *entryRepository) toDomainList(ms []*model.VaultEntry) []*domain.VaultEntry {
	list := make([]*domain.VaultEntry, 0, len(ms))
	for _, m := range ms {
		list = append(list, r.toDomain(m))
	}
	return list
}

// GetByID 根据ID获取条目
func (r *entryRepository) GetByID(ctx context.Context, id int64) (*domain.VaultEntry, error) {
	var m model.VaultEntry
	err := r.db(ctx).Where("id = ?", id).First(&m).Error
	if err != nil {
		return nil, err
	}
	return r.toDomain(&m), nil
}

// ListByUID 获取用户的全部条目
func (r *entryRepository) ListByUID(ctx context.Context, uid int64) ([]*domain.VaultEntry, error) {
	var ms []*model.VaultEntry
	err := r.db(ctx).Where("uid = ?", uid).Order("id ASC").Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// ListModifiedSince 获取用户在 sinceMs 之后修改的条目（严格大于）
func (r *entryRepository) ListModifiedSince(ctx context.Context, uid int64, sinceMs int64) ([]*domain.VaultEntry, error) {
	var ms []*model.VaultEntry
	err := r.db(ctx).
		Where("uid = ? AND updated_timestamp > ?", uid, sinceMs).
		Order("updated_timestamp ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainList(ms), nil
}

// Create 创建条目，时间戳由仓储填充
func (r *entryRepository) Create(ctx context.Context, entry *domain.VaultEntry) (*domain.VaultEntry, error) {
	m := r.toModel(entry)
	now := timex.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	m.UpdatedTimestamp = now.UnixMilli()

	if err := r.db(ctx).Create(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Save 保存条目，时间戳由仓储刷新
func (r *entryRepository) Save(ctx context.Context, entry *domain.VaultEntry) (*domain.VaultEntry, error) {
	m := r.toModel(entry)
	now := timex.Now()
	m.UpdatedAt = now
	m.UpdatedTimestamp = now.UnixMilli()

	if err := r.db(ctx).Save(m).Error; err != nil {
		return nil, err
	}
	return r.toDomain(m), nil
}

// Delete 物理删除条目
func (r *entryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db(ctx).Where("id = ?", id).Delete(&model.VaultEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Transaction 在一个 gorm 事务内执行 fn，fn 收到事务范围的仓储
func (r *entryRepository) Transaction(ctx context.Context, fn func(repo domain.EntryRepository) error) error {
	db := r.dao.UseWithMigrate("VaultEntry")
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&entryRepository{dao: r.dao, tx: tx})
	})
}
