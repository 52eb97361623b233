package model

import (
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB, key string) error {
	switch key {

	case "User":
		return db.AutoMigrate(User{})

	case "VaultEntry":
		return db.AutoMigrate(VaultEntry{})
	}
	return nil
}
