// Package domain 定义领域模型和接口
package domain

import "context"

// UserRepository 用户仓储接口
type UserRepository interface {
	// GetByUID 根据UID获取用户
	GetByUID(ctx context.Context, uid int64) (*User, error)

	// GetByEmail 根据邮箱获取用户
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByUsername 根据用户名获取用户
	GetByUsername(ctx context.Context, username string) (*User, error)

	// Create 创建用户
	Create(ctx context.Context, user *User) (*User, error)

	// UpdatePassword 更新用户密码
	UpdatePassword(ctx context.Context, password string, uid int64) error
}

// EntryRepository 保险库条目仓储接口
type EntryRepository interface {
	// GetByID 根据ID获取条目
	GetByID(ctx context.Context, id int64) (*VaultEntry, error)

	// ListByUID 获取用户的全部条目
	ListByUID(ctx context.Context, uid int64) ([]*VaultEntry, error)

	// ListModifiedSince 获取用户在 sinceMs 之后修改的条目（严格大于）
	ListModifiedSince(ctx context.Context, uid int64, sinceMs int64) ([]*VaultEntry, error)

	// Create 创建条目，仓储负责填充时间戳
	Create(ctx context.Context, entry *VaultEntry) (*VaultEntry, error)

	// Save 保存条目，仓储负责刷新时间戳
	Save(ctx context.Context, entry *VaultEntry) (*VaultEntry, error)

	// Delete 物理删除条目
	Delete(ctx context.Context, id int64) error

	// Transaction 在一个事务内执行 fn，fn 收到事务范围的仓储
	Transaction(ctx context.Context, fn func(repo EntryRepository) error) error
}
