package kaitaistream

import (
	"bytes"
	"compress/zlib"
	"io"
)

// ProcessXor XORs every byte of data with the scalar key.
func ProcessXor(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key
	}
	return out
}

// ProcessXorKey XORs every byte of data with a repeating key, the key
// index cycling through len(key).
func ProcessXorKey(data []byte, key []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}

// ProcessRotateLeft circularly rotates each byte of data left by amount
// bits. groupSize must be 1; any other value raises
// ErrUnsupportedOperation.
func ProcessRotateLeft(data []byte, amount, groupSize int) ([]byte, error) {
	if groupSize != 1 {
		return nil, ErrUnsupportedOperation.withMessage("rotate: groupSize must be 1")
	}
	shift := uint(((amount % 8) + 8) % 8)
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = byte((uint(b)<<shift | uint(b)>>(8-shift)) & 0xFF)
	}
	return out, nil
}

// ProcessZlib inflates zlib-compressed data.
func ProcessZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, ErrIO.wrap(err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrIO.wrap(err)
	}
	return out, nil
}

// UnprocessZlib deflates data into zlib-compressed form, checking the
// writer's Close error as well as its Write error since a short flush on
// Close is how a zlib.Writer reports certain failures.
func UnprocessZlib(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)

	_, writeErr := w.Write(data)
	closeErr := w.Close()

	if writeErr != nil {
		return nil, ErrIO.wrap(writeErr)
	}
	if closeErr != nil {
		return nil, ErrIO.wrap(closeErr)
	}
	return buf.Bytes(), nil
}

// BytesStripRight removes trailing bytes equal to pad.
func BytesStripRight(data []byte, pad byte) []byte {
	end := len(data)
	for end > 0 && data[end-1] == pad {
		end--
	}
	return data[:end]
}

// BytesTerminate truncates data at the first occurrence of term, including
// it in the result iff includeTerm. If term isn't found, data is returned
// unchanged.
func BytesTerminate(data []byte, term byte, includeTerm bool) []byte {
	idx := bytes.IndexByte(data, term)
	if idx < 0 {
		return data
	}
	if includeTerm {
		return data[:idx+1]
	}
	return data[:idx]
}

// BytesTerminateMulti is BytesTerminate generalized to a multi-byte
// terminator. An empty term returns an empty slice.
func BytesTerminateMulti(data []byte, term []byte, includeTerm bool) []byte {
	if len(term) == 0 {
		return []byte{}
	}
	idx := bytes.Index(data, term)
	if idx < 0 {
		return data
	}
	if includeTerm {
		return data[:idx+len(term)]
	}
	return data[:idx]
}

// ByteArrayCompare performs an unsigned lexicographic comparison of a and
// b, returning -1, 0, or 1.
func ByteArrayCompare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// ByteArrayMin scans b and returns its minimum unsigned byte value (0-255).
// Panics on an empty slice, matching the undefined minimum of an empty scan.
func ByteArrayMin(b []byte) int {
	min := int(b[0])
	for _, v := range b[1:] {
		if int(v) < min {
			min = int(v)
		}
	}
	return min
}

// ByteArrayMax scans b and returns its maximum unsigned byte value (0-255).
// Panics on an empty slice, matching the undefined maximum of an empty scan.
func ByteArrayMax(b []byte) int {
	max := int(b[0])
	for _, v := range b[1:] {
		if int(v) > max {
			max = int(v)
		}
	}
	return max
}

// ByteArrayIndexOf scans data and returns the index of the first byte equal
// to b, or -1 if it isn't present.
func ByteArrayIndexOf(data []byte, b byte) int {
	return bytes.IndexByte(data, b)
}

// Mod computes the Euclidean modulo of a by b. b must be positive;
// otherwise it raises ErrArithmetic.
func Mod(a, b int64) (int64, error) {
	if b <= 0 {
		return 0, ErrArithmetic.withMessage("modulo divisor must be positive")
	}
	m := a % b
	if m < 0 {
		m += b
	}
	return m, nil
}
