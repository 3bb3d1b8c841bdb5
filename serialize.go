package unifiedmap

import (
	"encoding/binary"
	"encoding/gob"
	"io"
)

// WriteBinary writes m in the package's portable binary form: a 4-byte
// big-endian entry count, a 4-byte IEEE-754 load factor, then each live
// entry as a gob-encoded key followed by a gob-encoded value. The format
// carries size and load factor ahead of the data so ReadBinary can
// pre-size the table instead of growing it one rehash at a time.
func (m *Map[K, V]) WriteBinary(w io.Writer) error {
	if err := binary.Write(w, binary.BigEndian, int32(m.occupied)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, float32(m.loadFactor)); err != nil {
		return err
	}
	enc := gob.NewEncoder(w)
	it := m.EntryIterator()
	for it.HasNext() {
		k, v := it.Next()
		if err := enc.Encode(&k); err != nil {
			return err
		}
		if err := enc.Encode(&v); err != nil {
			return err
		}
	}
	return nil
}

// ReadBinary reads the form WriteBinary produces, returning a freshly
// constructed map. opts configures the result the same way New's do.
func ReadBinary[K comparable, V any](r io.Reader, opts ...Option[K, V]) (*Map[K, V], error) {
	var size int32
	if err := binary.Read(r, binary.BigEndian, &size); err != nil {
		return nil, err
	}
	var loadFactor float32
	if err := binary.Read(r, binary.BigEndian, &loadFactor); err != nil {
		return nil, err
	}
	m := NewWithCapacityAndLoad[K, V](int(size), float64(loadFactor), opts...)
	dec := gob.NewDecoder(r)
	for i := int32(0); i < size; i++ {
		var k K
		var v V
		if err := dec.Decode(&k); err != nil {
			return nil, err
		}
		if err := dec.Decode(&v); err != nil {
			return nil, err
		}
		m.Put(k, v)
	}
	return m, nil
}

// GobEncode implements gob.GobEncoder by delegating to WriteBinary, so a
// *Map can be embedded as a field of another gob-encoded struct.
func (m *Map[K, V]) GobEncode() ([]byte, error) {
	var buf gobBuffer
	if err := m.WriteBinary(&buf); err != nil {
		return nil, err
	}
	return buf.data, nil
}

// GobDecode implements gob.GobDecoder, the inverse of GobEncode.
func (m *Map[K, V]) GobDecode(data []byte) error {
	decoded, err := ReadBinary[K, V](&gobBuffer{data: data})
	if err != nil {
		return err
	}
	*m = *decoded
	return nil
}

// gobBuffer is a minimal io.Writer/io.Reader over a byte slice, avoiding a
// bytes.Buffer import for what GobEncode/GobDecode need.
type gobBuffer struct {
	data []byte
	pos  int
}

func (b *gobBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *gobBuffer) Read(p []byte) (int, error) {
	if b.pos >= len(b.data) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:])
	b.pos += n
	return n, nil
}
