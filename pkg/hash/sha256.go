package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	stdhash "hash"
)

// SHA256 计算SHA-256哈希，返回32字节摘要
func SHA256(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// SHA256Hex 计算SHA-256哈希并返回小写十六进制字符串
func SHA256Hex(data []byte) string {
	return hex.EncodeToString(SHA256(data))
}

// DoubleSHA256 计算双重SHA-256哈希
func DoubleSHA256(data []byte) []byte {
	first := sha256.Sum256(data)
	second := sha256.Sum256(first[:])
	return second[:]
}

// HMACSHA256 计算HMAC-SHA256消息认证码
// HMAC构造对任意长度的key做填充或哈希处理，不会失败。
func HMACSHA256(key []byte, data []byte) []byte {
	m := hmac.New(sha256.New, key)
	m.Write(data)
	return m.Sum(nil)
}

// SHA256Hasher SHA-256流式哈希计算器
// 底层引擎的Sum不改变内部状态、Reset恢复初始状态（HMAC模式下保留密钥），
// 因此无需额外保存构造时的状态快照。
type SHA256Hasher struct {
	inner stdhash.Hash
}

var _ StreamHasher = (*SHA256Hasher)(nil)

// NewSHA256Hasher 创建一个新的SHA256Hasher实例
func NewSHA256Hasher() *SHA256Hasher {
	return &SHA256Hasher{
		inner: sha256.New(),
	}
}

// NewHMACSHA256Hasher 创建一个HMAC-SHA256流式计算器，key可为任意长度
func NewHMACSHA256Hasher(key []byte) *SHA256Hasher {
	return &SHA256Hasher{
		inner: hmac.New(sha256.New, key),
	}
}

// Update 写入数据到哈希计算器，空输入为空操作
func (h *SHA256Hasher) Update(data []byte) {
	h.inner.Write(data)
}

// Write 实现io.Writer，err恒为nil
func (h *SHA256Hasher) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Finalize 计算当前已写入数据的摘要，不消耗内部状态
func (h *SHA256Hasher) Finalize() []byte {
	return h.inner.Sum(nil)
}

// Reset 恢复到构造后的初始状态，丢弃所有已写入数据
func (h *SHA256Hasher) Reset() {
	h.inner.Reset()
}

// Digest 取出最终摘要，调用后实例不应再被使用
func (h *SHA256Hasher) Digest() []byte {
	return h.inner.Sum(nil)
}

// DigestHex 取出最终摘要的十六进制字符串，调用后实例不应再被使用
func (h *SHA256Hasher) DigestHex() string {
	return hex.EncodeToString(h.inner.Sum(nil))
}
