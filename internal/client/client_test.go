package client

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"vizsla/internal/device/devicetest"
	"vizsla/internal/wire"
)

func newTestLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// TestHandshakeScenario1 covers spec §8 scenario 1: the server's Hello
// and the exact bytes of the client's HelloBack reply (protocol name,
// echoed version, length-prefixed client name; 0x16 body bytes).
func TestHandshakeScenario1(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()

	dev := devicetest.New(1920, 1080)
	c := New(clientConn, "Pynergy", dev, dev, dev, newTestLogger())

	helloBytes := []byte("\x00\x00\x00\x0bSynergy\x00\x01\x00\x06")
	errCh := make(chan error, 1)
	go func() { errCh <- c.Handshake(context.Background()) }()

	_, err := serverConn.Write(helloBytes)
	require.NoError(t, err)

	got := make([]byte, 64)
	serverConn.SetReadDeadline(time.Now().Add(time.Second))
	n, err := serverConn.Read(got)
	require.NoError(t, err)

	expected := []byte("\x00\x00\x00\x16Synergy\x00\x01\x00\x06\x00\x00\x00\x07Pynergy")
	require.Equal(t, expected, got[:n])

	require.NoError(t, <-errCh)
	require.Equal(t, Connected, c.State())
}

// TestRunFeedsMessagesInWireOrder drives a dispatcher-free Run loop:
// a raw CALV frame written by the server must reach submit as a
// decoded *wire.CALV.
func TestRunFeedsMessagesInWireOrder(t *testing.T) {
	serverConn, clientConn := net.Pipe()
	defer serverConn.Close()

	dev := devicetest.New(1920, 1080)
	c := New(clientConn, "vizsla", dev, dev, dev, newTestLogger())
	c.SetState(Active)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var received []any
	done := make(chan error, 1)
	go func() {
		done <- c.Run(ctx, func(msg any) { received = append(received, msg) })
	}()

	frame := wire.Envelope(wire.Pack(&wire.CALV{}))
	_, err := serverConn.Write(frame)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(received) == 1 }, time.Second, time.Millisecond)
	_, ok := received[0].(*wire.CALV)
	require.True(t, ok)

	cancel()
	<-done
}
