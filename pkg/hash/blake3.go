package hash

import (
	"encoding/hex"

	"lukechampine.com/blake3"
)

// Blake3 计算BLAKE3-256哈希，返回32字节摘要
func Blake3(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

// Blake3Hex 计算BLAKE3-256哈希并返回小写十六进制字符串
func Blake3Hex(data []byte) string {
	return hex.EncodeToString(Blake3(data))
}

// DoubleBlake3 对第一次哈希的原始摘要字节再做一次哈希
func DoubleBlake3(data []byte) []byte {
	return Blake3(Blake3(data))
}

// Blake3MAC 使用BLAKE3密钥模式计算消息认证码
// key长度必须为32字节，否则返回ErrInvalidKeyLength。
func Blake3MAC(key []byte, data []byte) ([]byte, error) {
	if len(key) != Size {
		return nil, ErrInvalidKeyLength
	}

	h := blake3.New(Size, key)
	h.Write(data)
	return h.Sum(nil), nil
}

// Blake3Hasher BLAKE3流式哈希计算器
type Blake3Hasher struct {
	inner *blake3.Hasher
}

var _ StreamHasher = (*Blake3Hasher)(nil)

// NewBlake3Hasher 创建一个新的无密钥Blake3Hasher实例
func NewBlake3Hasher() *Blake3Hasher {
	return &Blake3Hasher{
		inner: blake3.New(Size, nil),
	}
}

// NewKeyedBlake3Hasher 创建一个带密钥的Blake3Hasher实例
// key长度必须为32字节，否则返回ErrInvalidKeyLength，不会创建实例。
func NewKeyedBlake3Hasher(key []byte) (*Blake3Hasher, error) {
	if len(key) != Size {
		return nil, ErrInvalidKeyLength
	}

	return &Blake3Hasher{
		inner: blake3.New(Size, key),
	}, nil
}

// Update 写入数据到哈希计算器，空输入为空操作
func (h *Blake3Hasher) Update(data []byte) {
	h.inner.Write(data)
}

// Write 实现io.Writer，err恒为nil
func (h *Blake3Hasher) Write(p []byte) (int, error) {
	return h.inner.Write(p)
}

// Finalize 计算当前已写入数据的摘要，不消耗内部状态
// 之后继续Update会在已有数据的基础上累积。
func (h *Blake3Hasher) Finalize() []byte {
	return h.inner.Sum(nil)
}

// Reset 恢复到构造后的初始状态，丢弃所有已写入数据
// 引擎原生支持重置，密钥在内部保留。
func (h *Blake3Hasher) Reset() {
	h.inner.Reset()
}

// Digest 取出最终摘要，调用后实例不应再被使用
func (h *Blake3Hasher) Digest() []byte {
	return h.inner.Sum(nil)
}

// DigestHex 取出最终摘要的十六进制字符串，调用后实例不应再被使用
func (h *Blake3Hasher) DigestHex() string {
	return hex.EncodeToString(h.inner.Sum(nil))
}
