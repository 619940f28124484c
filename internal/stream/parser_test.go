package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"vizsla/internal/wire"
)

func TestNextMsgIncompleteReturnsNil(t *testing.T) {
	p := New()
	p.Feed([]byte{0, 0, 0})
	msg, err := p.NextMsg()
	require.NoError(t, err)
	require.Nil(t, msg)
}

func TestNextMsgCompleteFrame(t *testing.T) {
	p := New()
	p.Feed(wire.Envelope(wire.Pack(&wire.CALV{})))
	msg, err := p.NextMsg()
	require.NoError(t, err)
	_, ok := msg.(*wire.CALV)
	require.True(t, ok)
}

func TestNextMsgFragmentedByteAtATime(t *testing.T) {
	p := New()
	framed := wire.Envelope(wire.Pack(&wire.CINN{EntryX: 100, EntryY: 200, Sequence: 1}))

	var got any
	for i, b := range framed {
		p.Feed([]byte{b})
		msg, err := p.NextMsg()
		require.NoError(t, err)
		if i < len(framed)-1 {
			require.Nil(t, msg)
		} else {
			got = msg
		}
	}
	cinn, ok := got.(*wire.CINN)
	require.True(t, ok)
	require.Equal(t, int16(100), cinn.EntryX)
	require.Equal(t, int16(200), cinn.EntryY)
}

func TestNextMsgTwoFramesInOneFeed(t *testing.T) {
	p := New()
	framed := append(wire.Envelope(wire.Pack(&wire.CALV{})), wire.Envelope(wire.Pack(&wire.COUT{}))...)
	p.Feed(framed)

	first, err := p.NextMsg()
	require.NoError(t, err)
	_, ok := first.(*wire.CALV)
	require.True(t, ok)

	second, err := p.NextMsg()
	require.NoError(t, err)
	_, ok = second.(*wire.COUT)
	require.True(t, ok)

	third, err := p.NextMsg()
	require.NoError(t, err)
	require.Nil(t, third)
}

func TestNextHandshakeMsgMatch(t *testing.T) {
	p := New()
	body := wire.PackHello(wire.Hello{ProtocolName: wire.HelloProtocolName, Major: 1, Minor: 6})
	p.Feed(wire.Envelope(body))

	got, err := p.NextHandshakeMsg(wire.HelloProtocolName)
	require.NoError(t, err)
	require.NotNil(t, got)

	hello, err := wire.UnpackHello(got)
	require.NoError(t, err)
	require.Equal(t, uint16(1), hello.Major)
	require.Equal(t, uint16(6), hello.Minor)
}

func TestNextHandshakeMsgMismatch(t *testing.T) {
	p := New()
	p.Feed(wire.Envelope(wire.Pack(&wire.CALV{})))
	_, err := p.NextHandshakeMsg(wire.HelloProtocolName)
	require.ErrorIs(t, err, ErrHandshakeMismatch)
}

func TestNextHandshakeMsgIncomplete(t *testing.T) {
	p := New()
	p.Feed([]byte{0, 0, 0})
	got, err := p.NextHandshakeMsg(wire.HelloProtocolName)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCompactionPreservesUnreadTail(t *testing.T) {
	p := New()
	for i := 0; i < 100; i++ {
		p.Feed(wire.Envelope(wire.Pack(&wire.CALV{})))
	}
	p.Feed(wire.Envelope(wire.Pack(&wire.COUT{})))

	for i := 0; i < 100; i++ {
		msg, err := p.NextMsg()
		require.NoError(t, err)
		_, ok := msg.(*wire.CALV)
		require.True(t, ok)
	}
	last, err := p.NextMsg()
	require.NoError(t, err)
	_, ok := last.(*wire.COUT)
	require.True(t, ok)
}

// Property: splitting one well-formed frame into arbitrary chunks and
// feeding them in order always yields exactly one message once the
// last chunk lands, regardless of split points (§8 scenario 6).
func TestRapidArbitraryFragmentationYieldsOneMessage(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		seq := rapid.Uint32().Draw(rt, "seq")
		framed := wire.Envelope(wire.Pack(&wire.CINN{EntryX: 1, EntryY: 2, Sequence: seq}))

		nCuts := rapid.IntRange(0, len(framed)-1).Draw(rt, "nCuts")
		cuts := make(map[int]bool, nCuts)
		for i := 0; i < nCuts; i++ {
			cuts[rapid.IntRange(1, len(framed)-1).Draw(rt, "cut")] = true
		}

		p := New()
		emitted := 0
		start := 0
		for i := 1; i <= len(framed); i++ {
			if i != len(framed) && !cuts[i] {
				continue
			}
			p.Feed(framed[start:i])
			start = i
			for {
				msg, err := p.NextMsg()
				require.NoError(rt, err)
				if msg == nil {
					break
				}
				emitted++
				cinn := msg.(*wire.CINN)
				require.Equal(rt, seq, cinn.Sequence)
			}
		}
		require.Equal(rt, 1, emitted)
	})
}
