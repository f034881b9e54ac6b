// Package hash 提供BLAKE3与SHA-256的一次性哈希、MAC以及流式哈希计算功能
// 一次性函数无共享状态，可安全并发调用；流式计算器实例不支持并发写入。
package hash

import (
	"crypto/subtle"
	"errors"
	"io"
)

// Size 两种算法的摘要长度均为32字节
const Size = 32

// ErrInvalidKeyLength BLAKE3密钥模式要求密钥长度必须为32字节
var ErrInvalidKeyLength = errors.New("key must be exactly 32 bytes")

// StreamHasher 流式哈希计算器的统一操作集合
// Update可以任意分块多次调用，结果与一次性输入完整数据相同。
// Finalize不会消耗内部状态，之后仍可继续Update。
// Reset将状态恢复到构造后的初始状态，如有密钥则保留密钥。
// Digest与DigestHex为单次取值，调用后实例不应再被使用。
type StreamHasher interface {
	io.Writer

	Update(data []byte)
	Finalize() []byte
	Reset()
	Digest() []byte
	DigestHex() string
}

// Equal 在常量时间内比较两个摘要是否相等，防止时序攻击
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
