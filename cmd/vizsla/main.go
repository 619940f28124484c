// Command vizsla is a Synergy/Deskflow client: it dials a server,
// performs the protocol handshake, and injects the keyboard and mouse
// events it receives into the local Linux input stack via uinput
// (spec §4.5, §4.7).
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vizsla/internal/client"
	"vizsla/internal/config"
	"vizsla/internal/device/uinputdev"
	"vizsla/internal/dispatch"
	"vizsla/internal/handler"
	"vizsla/internal/logging"
	"vizsla/internal/wire"
)

const dialTimeout = 10 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	flags, err := config.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.Server == "" {
		fmt.Fprintln(os.Stderr, "vizsla: no server given, pass -s/--server or set it in the config file")
		return 1
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dev, err := uinputdev.Open(cfg.ClientName, cfg.ScreenWidth, cfg.ScreenHeight)
	if err != nil {
		logger.Error("open uinput device", "error", err, "category", "DeviceError")
		return 1
	}
	defer dev.Close()

	if lines, err := uinputdev.DescribeInputDevices(); err != nil {
		logger.Warn("describe input devices", "error", err)
	} else {
		for _, line := range lines {
			logger.Debug("input device", "device", line)
		}
	}

	addr := net.JoinHostPort(cfg.Server, fmt.Sprintf("%d", cfg.Port))
	logger.Info("dialing server", "address", addr)
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		logger.Error("dial server", "error", err, "category", "IoError")
		return 1
	}

	c := client.New(conn, cfg.ClientName, dev, dev, dev, logger)

	if err := c.Handshake(ctx); err != nil {
		logger.Error("handshake failed", "error", err, "category", "HandshakeMismatch")
		_ = conn.Close()
		return 1
	}
	logger.Info("handshake complete", "state", c.State())

	h := handler.New(c, logger, cfg.AbsMouseMove, cfg.MouseMoveThreshold, cfg.MousePosSyncFreq)
	d := dispatch.New(h.Table(), 256, logger)
	h.SetSubmit(d.Submit)

	// runCtx is cancelled as soon as either the dispatcher reaches a
	// Stop or the connection loop ends, so the other side's blocking
	// conn.Read unblocks immediately instead of waiting on the peer
	// (§7: a terminal protocol message must trigger clean shutdown on
	// its own, not depend on the server also dropping the socket).
	runCtx, cancelRun := context.WithCancel(ctx)
	defer cancelRun()

	dispatchDone := d.Run(runCtx)

	runErrCh := make(chan error, 1)
	go func() { runErrCh <- c.Run(runCtx, d.Submit) }()

	var dispatchErr, runErr error
	select {
	case dispatchErr = <-dispatchDone:
		cancelRun()
		runErr = <-runErrCh
	case runErr = <-runErrCh:
		cancelRun()
		dispatchErr = <-dispatchDone
	}

	c.Stop()

	// Anything dispatchDone yields besides a ProtocolStop is context
	// cancellation plumbing (either the outer signal context or the
	// cancelRun triggered above), not a reportable error — dispatch.Run
	// only ever returns ctx.Err() or a Stop's wrapped error.
	var protocolStop *client.ProtocolStop
	if errors.As(dispatchErr, &protocolStop) {
		if protocolStop.Code == wire.CodeCbye.String() {
			logger.Info("session ended", "code", protocolStop.Code, "category", "ProtocolStop")
			return 0
		}
		logger.Error("session ended", "error", dispatchErr, "category", "ProtocolStop")
		return 1
	}

	if runErr != nil {
		logger.Error("connection loop ended", "error", runErr, "category", "IoError")
		return 1
	}

	logger.Info("shutdown complete")
	return 0
}
