package model

import (
	"github.com/wilove/vaulten-sync-service/pkg/timex"
)

const TableNameUser = "user"

// User mapped from table <user>
type User struct {
	UID       int64      `gorm:"column:uid;primaryKey;autoIncrement:true" json:"uid"`
	Email     string     `gorm:"column:email;not null;index:idx_email" json:"email"`
	Username  string     `gorm:"column:username;not null;index:idx_username" json:"username"`
	Password  string     `gorm:"column:password;not null" json:"password"`
	Avatar    string     `gorm:"column:avatar" json:"avatar"`
	IsDeleted int64      `gorm:"column:is_deleted;not null;default:0" json:"isDeleted"`
	UpdatedAt timex.Time `gorm:"column:updated_at" json:"updatedAt"`
	CreatedAt timex.Time `gorm:"column:created_at" json:"createdAt"`
	DeletedAt timex.Time `gorm:"column:deleted_at" json:"deletedAt"`
}

// TableName User's table name
func (*User) TableName() string {
	return TableNameUser
}
