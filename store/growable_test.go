package store_test

import (
	"testing"

	"github.com/kaitai-io/runtime-go/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrowableSink_GrowsOnWrite(t *testing.T) {
	s := store.NewGrowableSink()
	assert.EqualValues(t, 0, s.Size())

	require.NoError(t, s.WriteN([]byte("hello")))
	assert.EqualValues(t, 5, s.Size())
	assert.Equal(t, []byte("hello"), s.Bytes())
}

func TestGrowableSink_SeekPastEndZeroFills(t *testing.T) {
	s := store.NewGrowableSink()
	require.NoError(t, s.Seek(3))
	require.NoError(t, s.WriteN([]byte{0xFF}))

	assert.Equal(t, []byte{0, 0, 0, 0xFF}, s.Bytes())
}

func TestGrowableSink_ReadIsUnsupported(t *testing.T) {
	s := store.NewGrowableSink()
	_, err := s.ReadN(1)
	assert.ErrorIs(t, err, store.ErrUnsupported)
}
