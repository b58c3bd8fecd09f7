package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingRoundTrip(t *testing.T) {
	vec := []float32{0.125, -1.5, 0, 3.1415927, 1e-8}
	blob := EncodeEmbedding(vec)
	require.Len(t, blob, 4*len(vec))

	got := DecodeEmbedding(blob)
	assert.Equal(t, vec, got, "decoded vector must match bit-for-bit")
}

func TestEncodeEmbedding_EmptyIsNil(t *testing.T) {
	assert.Nil(t, EncodeEmbedding(nil))
	assert.Nil(t, EncodeEmbedding([]float32{}))
}

func TestDecodeEmbedding_RejectsRaggedBlobs(t *testing.T) {
	assert.Nil(t, DecodeEmbedding(nil))
	assert.Nil(t, DecodeEmbedding([]byte{1, 2, 3}))
	assert.Nil(t, DecodeEmbedding([]byte{1, 2, 3, 4, 5}))
}
