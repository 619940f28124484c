package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFixedStringPadsAndTruncates(t *testing.T) {
	w := NewWriter()
	w.WriteFixedString(7, "Synergy")
	require.Equal(t, []byte("Synergy"), w.Bytes())

	w2 := NewWriter()
	w2.WriteFixedString(7, "Syn")
	require.Equal(t, []byte("Syn\x00\x00\x00\x00"), w2.Bytes())

	r := NewReader([]byte("Syn\x00\x00\x00\x00"))
	s, err := r.ReadFixedString(7)
	require.NoError(t, err)
	require.Equal(t, "Syn", s)
}

func TestVarStringEmpty(t *testing.T) {
	w := NewWriter()
	w.WriteVarString("")
	require.Equal(t, []byte{0, 0, 0, 0}, w.Bytes())

	r := NewReader([]byte{0, 0, 0, 0})
	s, err := r.ReadVarString()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestHandshakeRoundTrip(t *testing.T) {
	hello := Hello{ProtocolName: HelloProtocolName, Major: 1, Minor: 6}
	body := PackHello(hello)
	require.Equal(t, []byte("Synergy\x00\x01\x00\x06"), body)

	got, err := UnpackHello(body)
	require.NoError(t, err)
	require.Equal(t, hello, got)

	hb := HelloBack{ProtocolName: "Synergy", Major: 1, Minor: 6, ClientName: "Pynergy"}
	hbBody := PackHelloBack(hb)
	require.Equal(t, []byte("Synergy\x00\x01\x00\x06\x00\x00\x00\x07Pynergy"), hbBody)
}

func TestShortBodyError(t *testing.T) {
	r := NewReader([]byte{1, 2})
	_, err := r.ReadInt(4, false)
	require.ErrorIs(t, err, ErrShortBody)
}

func TestBadEncodingError(t *testing.T) {
	r := NewReader([]byte{0xff, 0xfe})
	_, err := r.ReadFixedString(2)
	require.ErrorIs(t, err, ErrBadEncoding)
}

func TestUnknownCodeIsNotAnError(t *testing.T) {
	body := []byte("ZZZZ\x01\x02\x03")
	msg, err := Unpack(body)
	require.NoError(t, err)
	unk, ok := msg.(UnknownCode)
	require.True(t, ok)
	require.Equal(t, Code("ZZZZ"), unk.Code)
	require.Equal(t, []byte{1, 2, 3}, unk.Body)
}

func TestCINNRoundTrip(t *testing.T) {
	in := &CINN{EntryX: 100, EntryY: 200, Sequence: 1, ModMask: 0}
	body := Pack(in)

	out, err := Unpack(body)
	require.NoError(t, err)
	got, ok := out.(*CINN)
	require.True(t, ok)
	require.Equal(t, in, got)
}

func TestDMWMRoundTripKeepsMagnitude(t *testing.T) {
	in := &DMWM{XDelta: 3, YDelta: -2}
	body := Pack(in)
	out, err := Unpack(body)
	require.NoError(t, err)
	got := out.(*DMWM)
	require.Equal(t, int16(3), got.XDelta)
	require.Equal(t, int16(-2), got.YDelta)
}

func TestLSYNRoundTripEmptyAndNonEmpty(t *testing.T) {
	for _, langs := range [][]string{nil, {}, {"en", "fr", "de"}} {
		in := &LSYN{Languages: langs}
		body := Pack(in)
		out, err := Unpack(body)
		require.NoError(t, err)
		got := out.(*LSYN)
		require.Equal(t, len(langs), len(got.Languages))
		for i := range langs {
			require.Equal(t, langs[i], got.Languages[i])
		}
	}
}

func TestDSOPRoundTrip(t *testing.T) {
	in := &DSOP{Options: map[string]int32{"rate": 20, "heartbeat": 5000}}
	body := Pack(in)
	out, err := Unpack(body)
	require.NoError(t, err)
	got := out.(*DSOP)
	require.Equal(t, in.Options, got.Options)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	body := Pack(&CALV{})
	framed := Envelope(body)
	require.Len(t, framed, LengthPrefixWidth+len(body))
	require.Equal(t, uint32(len(body)), PeekLength(framed))
}

// Property: any int16 packed through a CINN-like FIX_VAL(2, signed) field
// round-trips exactly, including negative and boundary values.
func TestRapidSignedInt16RoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		v := rapid.Int16().Draw(rt, "v")
		w := NewWriter()
		w.WriteInt(2, int64(v))
		r := NewReader(w.Bytes())
		got, err := r.ReadInt(2, true)
		require.NoError(rt, err)
		require.Equal(rt, int64(v), got)
	})
}

// Property: any alphanumeric string no longer than the declared width
// round-trips through WriteFixedString/ReadFixedString with its NUL
// padding stripped back off.
func TestRapidFixedStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		width := rapid.IntRange(1, 32).Draw(rt, "width")
		s := rapid.StringMatching(`[a-zA-Z0-9]{0,}`).
			Filter(func(s string) bool { return len(s) <= width }).
			Draw(rt, "s")

		w := NewWriter()
		w.WriteFixedString(width, s)
		r := NewReader(w.Bytes())
		got, err := r.ReadFixedString(width)
		require.NoError(rt, err)
		require.Equal(rt, s, got)
	})
}

// Property: VAR_STR round-trips any valid UTF-8 string of arbitrary
// length.
func TestRapidVarStringRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		s := rapid.String().Draw(rt, "s")
		w := NewWriter()
		w.WriteVarString(s)
		r := NewReader(w.Bytes())
		got, err := r.ReadVarString()
		require.NoError(rt, err)
		require.Equal(rt, s, got)
	})
}
