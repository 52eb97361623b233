// Package service 实现业务逻辑层
package service

// UserConfig 用户相关配置
type UserConfig struct {
	RegisterIsEnable bool `yaml:"register-is-enable" default:"true"`
}

// ServiceConfig 业务层配置
type ServiceConfig struct {
	User UserConfig `yaml:"user"`
}
