package util

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 固定的 bcrypt 代价因子
const bcryptCost = 10

// GeneratePasswordHash hashes a plaintext password with bcrypt
// GeneratePasswordHash 使用 bcrypt 对明文密码进行哈希
func GeneratePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasswordHash reports whether the plaintext password matches the stored hash
// CheckPasswordHash 校验明文密码与存储的哈希是否匹配
func CheckPasswordHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
