package domain

import "time"

// Entry type constants // 条目类型常量
const (
	EntryTypeLogin    = "login"
	EntryTypeNote     = "note"
	EntryTypeCard     = "card"
	EntryTypeIdentity = "identity"
)

// VaultEntry 保险库条目领域模型
// Password 和 Notes 在引擎边界上始终是明文，落库前由引擎加密
type VaultEntry struct {
	ID               int64
	UID              int64
	Name             string
	Username         string
	Password         string
	URL              string
	Notes            string
	Type             string
	Category         string
	UpdatedTimestamp int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EncryptedFields 返回需要静态加密的字段指针映射
// 选择性加密由数据驱动，避免散落的分支
func (e *VaultEntry) EncryptedFields() map[string]*string {
	return map[string]*string{
		"password": &e.Password,
		"notes":    &e.Notes,
	}
}

// IsOwnedBy 判断条目是否属于指定用户
func (e *VaultEntry) IsOwnedBy(uid int64) bool {
	return e.UID == uid
}
