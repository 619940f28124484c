package wire

import (
	"encoding/binary"
	"sort"
)

// Writer accumulates a message body (or a whole framed packet) one field
// at a time. Integers are always big-endian; see §4.1.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer ready to accept a Code followed by
// its fields.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 32)}
}

// Bytes returns the accumulated body. The slice is owned by the caller.
func (w *Writer) Bytes() []byte { return w.buf }

// WriteCode appends the four-byte message code verbatim.
func (w *Writer) WriteCode(c Code) {
	w.buf = append(w.buf, []byte(c)...)
}

// WriteRaw appends already-encoded bytes verbatim, bypassing Schema.
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteInt encodes v as a big-endian two's-complement integer of the
// given byte width (1, 2, or 4).
func (w *Writer) WriteInt(width int, v int64) {
	switch width {
	case 1:
		w.buf = append(w.buf, byte(v))
	case 2:
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(v))
		w.buf = append(w.buf, b[:]...)
	case 4:
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v))
		w.buf = append(w.buf, b[:]...)
	default:
		panic("wire: unsupported FIX_VAL width")
	}
}

// WriteFixedString encodes s as exactly width bytes: its UTF-8 bytes,
// truncated at width and right-padded with NUL to fill the rest.
func (w *Writer) WriteFixedString(width int, s string) {
	b := make([]byte, width)
	copy(b, s) // copy() truncates automatically when len(s) > width
	w.buf = append(w.buf, b...)
}

// WriteVarString encodes a 4-byte big-endian length followed by the
// UTF-8 bytes of s.
func (w *Writer) WriteVarString(s string) {
	w.WriteInt(4, int64(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteVarStringList encodes a 4-byte count followed by that many
// VAR_STR elements, used for LSYN's language list and DDRG's file list.
func (w *Writer) WriteVarStringList(items []string) {
	w.WriteInt(4, int64(len(items)))
	for _, s := range items {
		w.WriteVarString(s)
	}
}

// WriteOptionMap encodes DSOP's option map as a 4-byte count followed by
// that many (VAR_STR key, 4-byte value) pairs. Keys are written in
// sorted order so pack() is deterministic for a given map.
func (w *Writer) WriteOptionMap(m map[string]int32) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w.WriteInt(4, int64(len(keys)))
	for _, k := range keys {
		w.WriteVarString(k)
		w.WriteInt(4, int64(m[k]))
	}
}
