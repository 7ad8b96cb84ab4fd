package kaitaistream_test

import (
	"testing"

	ks "github.com/kaitai-io/runtime-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixedPrimitives_Scenario1 checks scenario 1.
func TestFixedPrimitives_Scenario1(t *testing.T) {
	s := ks.FromBytes([]byte("12345"))

	v1, err := s.ReadS1()
	require.NoError(t, err)
	assert.EqualValues(t, 0x31, v1)

	v2, err := s.ReadS1()
	require.NoError(t, err)
	assert.EqualValues(t, 0x32, v2)

	v3, err := s.ReadS2be()
	require.NoError(t, err)
	assert.EqualValues(t, 0x3334, v3)

	_, err = s.ReadS2be()
	assert.ErrorIs(t, err, ks.ErrEndOfStream)

	_, err = s.ReadBytes(6)
	assert.ErrorIs(t, err, ks.ErrEndOfStream)
}

// TestSubstream_Scenario2 checks scenario 2.
func TestSubstream_Scenario2(t *testing.T) {
	parent := ks.FromBytes([]byte("12345"))

	require.NoError(t, parent.Seek(1))
	sub, err := parent.Substream(3)
	require.NoError(t, err)
	assert.EqualValues(t, 4, parent.Pos())

	b, err := sub.ReadS1()
	require.NoError(t, err)
	assert.EqualValues(t, '2', b)

	b, err = sub.ReadS1()
	require.NoError(t, err)
	assert.EqualValues(t, '3', b)

	b, err = parent.ReadS1()
	require.NoError(t, err)
	assert.EqualValues(t, '5', b)
	assert.EqualValues(t, 5, parent.Pos())

	b, err = sub.ReadS1()
	require.NoError(t, err)
	assert.EqualValues(t, '4', b)

	_, err = sub.ReadS1()
	assert.ErrorIs(t, err, ks.ErrEndOfStream)
	assert.True(t, sub.IsEOF())
}

// TestSubstream_Invariants checks the generic substream invariants beyond
// the literal scenario above.
func TestSubstream_Invariants(t *testing.T) {
	parent := ks.FromBytes(make([]byte, 10))
	sub, err := parent.Substream(4)
	require.NoError(t, err)
	assert.EqualValues(t, 4, sub.Size())
	assert.EqualValues(t, 0, sub.Pos())
	assert.EqualValues(t, 4, parent.Pos())
}

func TestReadBytesTerm_Scenario5(t *testing.T) {
	s := ks.FromBytes([]byte{0x61, 0x62, 0x63, 0x00, 0x64})
	got, err := s.ReadBytesTerm(0x00, false, true, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0x62, 0x63}, got)
	assert.EqualValues(t, 4, s.Pos())
}

func TestReadBytesTerm_NoConsumeLeavesPosAtTerminator(t *testing.T) {
	s := ks.FromBytes([]byte{0x61, 0x62, 0x00, 0x63})
	got, err := s.ReadBytesTerm(0x00, false, false, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0x62}, got)
	assert.EqualValues(t, 2, s.Pos())
}

func TestReadBytesTermMulti_Scenario6(t *testing.T) {
	s := ks.FromBytes([]byte{0x61, 0x0D, 0x0A, 0x62, 0x0D, 0x0A})
	got, err := s.ReadBytesTermMulti([]byte{0x0D, 0x0A}, false, true, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61}, got)
	assert.EqualValues(t, 3, s.Pos())
}

func TestReadBytesTermMulti_EOFMidPatternIncludesPartial(t *testing.T) {
	// The trailing 0x0D never completes the CRLF pattern before EOF; the
	// partial bytes read so far are still returned.
	s := ks.FromBytes([]byte{0x61, 0x62, 0x0D})
	got, err := s.ReadBytesTermMulti([]byte{0x0D, 0x0A}, false, true, false)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x61, 0x62, 0x0D}, got)
}

func TestReadBytesTermMulti_EOFMidPatternErrorsWhenRequested(t *testing.T) {
	s := ks.FromBytes([]byte{0x61, 0x0D})
	_, err := s.ReadBytesTermMulti([]byte{0x0D, 0x0A}, false, true, true)
	assert.ErrorIs(t, err, ks.ErrEndOfStream)
}

func TestEnsureFixedContents(t *testing.T) {
	s := ks.FromBytes([]byte("MAGIC!!!"))
	got, err := s.EnsureFixedContents([]byte("MAGIC"))
	require.NoError(t, err)
	assert.Equal(t, []byte("MAGIC"), got)

	s2 := ks.FromBytes([]byte("NOPE!!!"))
	_, err = s2.EnsureFixedContents([]byte("MAGIC"))
	var ufc *ks.UnexpectedFixedContentError
	require.ErrorAs(t, err, &ufc)
	assert.Equal(t, []byte("MAGIC"), ufc.Expected)
}

func TestPrimitiveRoundTrip(t *testing.T) {
	sink := ks.WithCapacity(8)
	require.NoError(t, sink.WriteU4be(0xDEADBEEF))
	require.NoError(t, sink.WriteS4le(-12345))

	data, err := sink.ToByteArray()
	require.NoError(t, err)

	src := ks.FromBytes(data)
	u, err := src.ReadU4be()
	require.NoError(t, err)
	assert.EqualValues(t, 0xDEADBEEF, u)

	i, err := src.ReadS4le()
	require.NoError(t, err)
	assert.EqualValues(t, -12345, i)
}

func TestReadBytesFull(t *testing.T) {
	s := ks.FromBytes([]byte("abcdef"))
	require.NoError(t, s.Seek(2))
	got, err := s.ReadBytesFull()
	require.NoError(t, err)
	assert.Equal(t, []byte("cdef"), got)
	assert.True(t, s.IsEOF())
}

func TestClose_FlushesPendingBitsAsPaddedByte(t *testing.T) {
	// A clean close with pending bit residue succeeds and emits the
	// zero-padded partial byte.
	sink := ks.FromByteList()
	require.NoError(t, sink.WriteBitsIntBe(3, 0b101))
	require.NoError(t, sink.Close())

	data, err := sink.ToByteArray()
	require.NoError(t, err)
	assert.Equal(t, []byte{0b10100000}, data)
}

func TestFromFile_RoundTrip(t *testing.T) {
	path := t.TempDir() + "/x.bin"
	s, err := ks.FromFile(path)
	require.NoError(t, err)
	require.NoError(t, s.WriteBytes([]byte("hello file")))
	require.NoError(t, s.Seek(0))
	got, err := s.ReadBytes(10)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello file"), got)
	require.NoError(t, s.Close())
}
