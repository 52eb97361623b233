package model

import (
	"github.com/wilove/vaulten-sync-service/pkg/timex"
)

const TableNameVaultEntry = "vault_entry"

// VaultEntry mapped from table <vault_entry>
// password and notes hold ciphertext at rest
// password 和 notes 落库时为密文
type VaultEntry struct {
	ID               int64      `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	UID              int64      `gorm:"column:uid;not null;index:idx_uid;index:idx_uid_updated,priority:1" json:"uid"`
	Name             string     `gorm:"column:name;not null" json:"name"`
	Username         string     `gorm:"column:username" json:"username"`
	Password         string     `gorm:"column:password" json:"password"`
	URL              string     `gorm:"column:url" json:"url"`
	Notes            string     `gorm:"column:notes" json:"notes"`
	Type             string     `gorm:"column:type;not null;default:login" json:"type"`
	Category         string     `gorm:"column:category" json:"category"`
	UpdatedTimestamp int64      `gorm:"column:updated_timestamp;not null;default:0;index:idx_uid_updated,priority:2" json:"updatedTimestamp"`
	UpdatedAt        timex.Time `gorm:"column:updated_at" json:"updatedAt"`
	CreatedAt        timex.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName VaultEntry's table name
func (*VaultEntry) TableName() string {
	return TableNameVaultEntry
}
