package storage

import (
	"encoding/binary"
	"math"
)

// EncodeEmbedding packs a vector as little-endian float32 bytes, the layout
// the history and clustering reads decode with DecodeEmbedding. A nil or
// empty vector encodes to nil so the column stays NULL.
func EncodeEmbedding(vec []float32) []byte {
	if len(vec) == 0 {
		return nil
	}
	buf := make([]byte, 4*len(vec))
	for i, v := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// DecodeEmbedding unpacks a little-endian float32 blob. Blobs whose length is
// not a multiple of 4 are treated as absent rather than corrupting a read.
func DecodeEmbedding(blob []byte) []float32 {
	if len(blob) == 0 || len(blob)%4 != 0 {
		return nil
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return vec
}
