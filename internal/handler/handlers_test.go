package handler

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"vizsla/internal/client"
	"vizsla/internal/device/devicetest"
	"vizsla/internal/dispatch"
	"vizsla/internal/wire"
)

func newTestLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func newHarness(t *testing.T, absMouseMove bool, mouseMoveThresholdMs, mousePosSyncFreq uint32) (*client.Client, *Handlers, net.Conn) {
	t.Helper()
	serverConn, clientConn := net.Pipe()
	t.Cleanup(func() { serverConn.Close() })

	dev := devicetest.New(1920, 1080)
	c := client.New(clientConn, "vizsla", dev, dev, dev, newTestLogger())
	h := New(c, newTestLogger(), absMouseMove, mouseMoveThresholdMs, mousePosSyncFreq)
	return c, h, serverConn
}

// invoke looks up the Table entry for code and runs it directly,
// bypassing the dispatcher — enough to assert a single handler's
// behavior without a running worker goroutine.
func invoke(t *testing.T, h *Handlers, code string, msg any) error {
	t.Helper()
	handler, ok := h.Table()[code]
	require.True(t, ok, "no handler registered for %s", code)
	return handler(context.Background(), msg)
}

// TestEnterKeyLeaveScenario reproduces spec §8 scenario 2: CINN enters
// the screen and activates injection, a key press/release round-trips
// through the keyboard device, and COUT deactivates and releases.
func TestEnterKeyLeaveScenario(t *testing.T) {
	c, h, _ := newHarness(t, true, 5, 10)
	dev := c.Keyboard.(*devicetest.Device)

	require.NoError(t, invoke(t, h, wire.CodeCinn.String(), &wire.CINN{
		EntryX: 100, EntryY: 200, ModMask: 0,
	}))
	require.Equal(t, client.Active, c.State())

	require.NoError(t, invoke(t, h, wire.CodeDkdn.String(), &wire.DKDN{KeyButton: 97}))
	require.NoError(t, invoke(t, h, wire.CodeDkup.String(), &wire.DKUP{KeyButton: 97}))
	require.NoError(t, invoke(t, h, wire.CodeCout.String(), &wire.COUT{}))
	require.Equal(t, client.Connected, c.State())

	require.Contains(t, dev.Trace, "send_key(KEY_A, true)")
	require.Contains(t, dev.Trace, "send_key(KEY_A, false)")
	require.Contains(t, dev.Trace, "release_all_key")
}

// TestDMMVThrottlesAndFlushes checks §4.7's smoothing behavior: a move
// arriving inside the threshold window is not emitted immediately, and
// the deferred flush emits it later.
func TestDMMVThrottlesAndFlushes(t *testing.T) {
	c, h, _ := newHarness(t, true, 1000, 10)
	dev := c.Mouse.(*devicetest.Device)
	h.SetSubmit(func(msg any) {
		go func() {
			handler, ok := h.Table()[dmmvFlushKey]
			require.True(t, ok)
			_ = handler(context.Background(), msg)
		}()
	})
	c.SetState(client.Active)

	require.NoError(t, invoke(t, h, wire.CodeDmmv.String(), &wire.DMMV{X: 10, Y: 10}))
	before := len(dev.Trace)
	require.NoError(t, invoke(t, h, wire.CodeDmmv.String(), &wire.DMMV{X: 20, Y: 20}))
	require.Equal(t, before, len(dev.Trace), "throttled move must not emit immediately")

	require.Eventually(t, func() bool {
		return len(dev.Trace) > before
	}, time.Second, 5*time.Millisecond)
}

// TestCALVEchoesBack reproduces §8 scenario 3: a keep-alive is echoed
// verbatim over the wire.
func TestCALVEchoesBack(t *testing.T) {
	c, h, serverConn := newHarness(t, true, 5, 10)
	c.SetState(client.Connected)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background(), func(any) {}) }()
	t.Cleanup(func() {
		serverConn.Close()
		<-done
	})

	require.NoError(t, invoke(t, h, wire.CodeCalv.String(), &wire.CALV{}))

	buf := make([]byte, 16)
	serverConn.SetReadDeadline(time.Now().Add(time.Second))
	n, err := serverConn.Read(buf)
	require.NoError(t, err)
	require.Equal(t, wire.Envelope(wire.Pack(&wire.CALV{})), buf[:n])
}

// TestQINFRepliesWithDINF reproduces §8 scenario 4: a screen info query
// is answered with the client's current size and logical position.
func TestQINFRepliesWithDINF(t *testing.T) {
	c, h, serverConn := newHarness(t, true, 5, 10)
	c.SetState(client.Connected)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background(), func(any) {}) }()
	t.Cleanup(func() {
		serverConn.Close()
		<-done
	})

	require.NoError(t, invoke(t, h, wire.CodeQinf.String(), &wire.QINF{}))

	buf := make([]byte, 64)
	serverConn.SetReadDeadline(time.Now().Add(time.Second))
	n, err := serverConn.Read(buf)
	require.NoError(t, err)

	expected := wire.Envelope(wire.Pack(&wire.DINF{
		Left: 0, Top: 0, W: 1920, H: 1080, Warp: 0, MouseX: 0, MouseY: 0,
	}))
	require.Equal(t, expected, buf[:n])
}

// TestGateSuppressesInjectionUnlessActive checks §4.7's gating rule:
// DKDN is dropped while the client is merely Connected.
func TestGateSuppressesInjectionUnlessActive(t *testing.T) {
	c, h, _ := newHarness(t, true, 5, 10)
	dev := c.Keyboard.(*devicetest.Device)
	c.SetState(client.Connected)

	require.NoError(t, invoke(t, h, wire.CodeDkdn.String(), &wire.DKDN{KeyButton: 97}))
	require.Empty(t, dev.Trace)
}

// TestDispatchOrderThroughHandlerTable wires the Table into a real
// Dispatcher and asserts handler invocation preserves submit order.
func TestDispatchOrderThroughHandlerTable(t *testing.T) {
	c, h, _ := newHarness(t, true, 5, 10)
	c.SetState(client.Active)
	dev := c.Keyboard.(*devicetest.Device)

	d := dispatch.New(h.Table(), 16, newTestLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := d.Run(ctx)

	d.Submit(&wire.DKDN{KeyButton: 97})
	d.Submit(&wire.DKUP{KeyButton: 97})

	require.Eventually(t, func() bool { return len(dev.Trace) >= 4 }, time.Second, 5*time.Millisecond)
	require.Equal(t, []string{"send_key(KEY_A, true)", "syn", "send_key(KEY_A, false)", "syn"}, dev.Trace)

	cancel()
	<-runDone
}
