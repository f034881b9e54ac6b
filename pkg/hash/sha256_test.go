package hash_test

import (
	"encoding/hex"
	"testing"

	"github.com/lokvist/digestkit/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256KnownVectors(t *testing.T) {
	// NIST测试向量
	testCases := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"empty", []byte{}, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", []byte("abc"), "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"two blocks", []byte("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq"), "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, hex.EncodeToString(hash.SHA256(tc.input)))
			assert.Equal(t, tc.expected, hash.SHA256Hex(tc.input))
		})
	}
}

func TestDoubleSHA256(t *testing.T) {
	result := hash.DoubleSHA256([]byte("abc"))
	assert.Equal(t, "4f8b42c22dd3729b519ba6f68d2da7cc5b2d606d05daed5ad5128cc03e6c6358", hex.EncodeToString(result))

	assert.Equal(t, hash.SHA256(hash.SHA256([]byte("abc"))), result)
}

func TestHMACSHA256(t *testing.T) {
	// RFC 4231测试向量
	key1, err := hex.DecodeString("0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		key      []byte
		data     []byte
		expected string
	}{
		{"case 1", key1, []byte("Hi There"), "b0344c61d8db38535ca8afceaf0bf12b881dc200c9833da726e9376c2e32cff7"},
		{"case 2", []byte("Jefe"), []byte("what do ya want for nothing?"), "5bdcc146bf60754e6a042426089575c75a003f089d2739839dec58b964ec3843"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, hex.EncodeToString(hash.HMACSHA256(tc.key, tc.data)))
		})
	}
}

func TestSHA256HasherStreaming(t *testing.T) {
	data := []byte("hello world")
	oneshot := hash.SHA256(data)

	h := hash.NewSHA256Hasher()
	h.Update([]byte("hello"))
	h.Update([]byte(" "))
	h.Update([]byte("world"))
	assert.Equal(t, oneshot, h.Finalize())
}

func TestSHA256HasherByteByByte(t *testing.T) {
	data := []byte("byte by byte")
	oneshot := hash.SHA256(data)

	h := hash.NewSHA256Hasher()
	for _, b := range data {
		h.Update([]byte{b})
	}
	assert.Equal(t, oneshot, h.Finalize())
}

func TestSHA256HasherFinalizeDoesNotConsume(t *testing.T) {
	h := hash.NewSHA256Hasher()
	h.Update([]byte("abc"))

	h1 := h.Finalize()
	h2 := h.Finalize()
	assert.Equal(t, h1, h2)

	h.Update([]byte("def"))
	h3 := h.Finalize()
	assert.NotEqual(t, h1, h3)
	assert.Equal(t, hash.SHA256([]byte("abcdef")), h3)
}

func TestSHA256HasherEmptyEqualsOneshotEmpty(t *testing.T) {
	h := hash.NewSHA256Hasher()
	assert.Equal(t, hash.SHA256(nil), h.Finalize())
}

func TestSHA256HasherReset(t *testing.T) {
	h := hash.NewSHA256Hasher()
	h.Update([]byte("garbage"))
	h.Reset()
	h.Update([]byte("abc"))
	assert.Equal(t, hash.SHA256([]byte("abc")), h.Finalize())
}

func TestSHA256HasherDigest(t *testing.T) {
	h1 := hash.NewSHA256Hasher()
	h1.Update([]byte("abc"))
	finalized := h1.Finalize()

	h2 := hash.NewSHA256Hasher()
	h2.Update([]byte("abc"))
	assert.Equal(t, finalized, h2.Digest())

	h3 := hash.NewSHA256Hasher()
	h3.Update([]byte("abc"))
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h3.DigestHex())
}

func TestHMACSHA256Hasher(t *testing.T) {
	key := []byte("Jefe")
	data := []byte("what do ya want for nothing?")
	oneshot := hash.HMACSHA256(key, data)

	h := hash.NewHMACSHA256Hasher(key)
	h.Update(data[:8])
	h.Update(data[8:])
	assert.Equal(t, oneshot, h.Finalize())
}

func TestHMACSHA256HasherResetKeepsKey(t *testing.T) {
	key := []byte("Jefe")
	data := []byte("what do ya want for nothing?")

	h := hash.NewHMACSHA256Hasher(key)
	h.Update([]byte("garbage"))
	h.Reset()
	h.Update(data)
	assert.Equal(t, hash.HMACSHA256(key, data), h.Finalize())
}

func BenchmarkSHA256(b *testing.B) {
	data := []byte("benchmark data for SHA256 testing with sufficient length to be meaningful")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hash.SHA256(data)
	}
}

func BenchmarkDoubleSHA256(b *testing.B) {
	data := []byte("benchmark data for DoubleSHA256 testing with sufficient length to be meaningful")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		hash.DoubleSHA256(data)
	}
}
