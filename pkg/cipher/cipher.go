// Package cipher provides AES-256-GCM sealing for vault entry fields
// Package cipher 提供保险库条目字段的 AES-256-GCM 加密
package cipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// KeySize AES-256 key length in bytes // AES-256 密钥字节长度
const KeySize = 32

// NonceSize GCM nonce length in bytes // GCM 随机数字节长度
const NonceSize = 12

var (
	// ErrKeySize 密钥长度错误
	ErrKeySize = errors.New("cipher: key must be exactly 32 bytes")
	// ErrCipherOpen 密文解密失败（解码错误、截断或认证失败）
	ErrCipherOpen = errors.New("cipher: unable to open ciphertext")
)

// Cipher seals and opens strings with AES-256-GCM
// Immutable after construction, safe for concurrent use
// Cipher 使用 AES-256-GCM 加解密字符串
// 构造后不可变，可并发使用
type Cipher struct {
	aead cipher.AEAD
}

// New creates a Cipher from a raw 32-byte key
// New 从 32 字节原始密钥创建 Cipher
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Cipher{aead: aead}, nil
}

// NewFromBase64 creates a Cipher from a base64 encoded key
// NewFromBase64 从 base64 编码的密钥创建 Cipher
func NewFromBase64(encodedKey string) (*Cipher, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, err
	}
	return New(key)
}

// Seal encrypts plaintext and returns base64(nonce || ciphertext || tag)
// Empty input passes through as empty output with no crypto performed
// Seal 加密明文并返回 base64(nonce || 密文 || tag)
// 空输入直接返回空输出，不执行加密
func (c *Cipher) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// GCM appends the auth tag to the ciphertext
	// GCM 会将认证标签附加在密文之后
	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Open decrypts a blob produced by Seal
// Any decode failure, truncation or tag mismatch returns ErrCipherOpen
// Open 解密 Seal 生成的密文
// 解码失败、截断或认证失败统一返回 ErrCipherOpen
func (c *Cipher) Open(blob string) (string, error) {
	if blob == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return "", ErrCipherOpen
	}
	if len(raw) < NonceSize+c.aead.Overhead() {
		return "", ErrCipherOpen
	}

	nonce, ciphertext := raw[:NonceSize], raw[NonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrCipherOpen
	}
	return string(plaintext), nil
}
