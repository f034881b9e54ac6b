package hash_test

import (
	"io"
	"strings"
	"testing"

	"github.com/lokvist/digestkit/pkg/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexOutputShape(t *testing.T) {
	inputs := [][]byte{nil, []byte("abc"), []byte("hello world")}

	for _, input := range inputs {
		for _, h := range []string{hash.SHA256Hex(input), hash.Blake3Hex(input)} {
			assert.Len(t, h, 64)
			assert.Equal(t, strings.ToLower(h), h)
			assert.False(t, strings.HasPrefix(h, "0x"))
		}
	}
}

func TestEqual(t *testing.T) {
	a := hash.SHA256([]byte("abc"))
	b := hash.SHA256([]byte("abc"))
	c := hash.SHA256([]byte("abd"))

	assert.True(t, hash.Equal(a, b))
	assert.False(t, hash.Equal(a, c))
	assert.False(t, hash.Equal(a, a[:16]))
}

func TestStreamHasherAsWriter(t *testing.T) {
	// io.Writer适配，供io.Copy等使用
	hashers := []hash.StreamHasher{
		hash.NewBlake3Hasher(),
		hash.NewSHA256Hasher(),
	}

	for _, h := range hashers {
		n, err := io.Copy(h, strings.NewReader("hello world"))
		require.NoError(t, err)
		assert.Equal(t, int64(11), n)
		assert.Len(t, h.Finalize(), hash.Size)
	}

	assert.Equal(t, hash.Blake3([]byte("hello world")), hashers[0].Finalize())
	assert.Equal(t, hash.SHA256([]byte("hello world")), hashers[1].Finalize())
}
