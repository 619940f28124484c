// Package handler implements the per-code handlers of spec §4.7: one
// function per wire message type, invoked by the dispatcher's single
// worker with a Client reference passed explicitly rather than stored
// (§9 "cyclic handler/client reference").
package handler

import (
	"context"

	"github.com/charmbracelet/log"

	"vizsla/internal/client"
	"vizsla/internal/dispatch"
	"vizsla/internal/keymap"
	"vizsla/internal/wire"
)

// lifecycleCodes is the set of codes that must still fire handlers outside
// ACTIVE — the lifecycle set from §4.7. Everything else is a no-op
// unless the client is Active.
var lifecycleCodes = map[string]struct{}{
	wire.CodeCinn.String(): {},
	wire.CodeCout.String(): {},
	wire.CodeCalv.String(): {},
	wire.CodeCbye.String(): {},
	wire.CodeQinf.String(): {},
	wire.CodeDinf.String(): {},
	wire.CodeEicv.String(): {},
	wire.CodeEbad.String(): {},
	wire.CodeEbsy.String(): {},
	wire.CodeEunk.String(): {},
}

// Handlers bundles the client reference and the DMMV smoothing state
// that must persist across invocations (§9). It is constructed once
// per connection and its methods are registered into a dispatch.Table.
type Handlers struct {
	c      *client.Client
	logger *log.Logger

	absMouseMove       bool
	mouseMoveThreshold uint32
	mousePosSyncFreq   uint32

	mmv    mmvState
	submit func(any)
}

// New returns a Handlers bound to c, configured from the given
// smoothing parameters (§4.7, §6.3).
func New(c *client.Client, logger *log.Logger, absMouseMove bool, mouseMoveThresholdMs, mousePosSyncFreq uint32) *Handlers {
	return &Handlers{
		c:                  c,
		logger:             logger,
		absMouseMove:       absMouseMove,
		mouseMoveThreshold: mouseMoveThresholdMs,
		mousePosSyncFreq:   mousePosSyncFreq,
	}
}

// Table builds the static code -> handler map the dispatcher looks up
// by (§4.6 "handler lookup"). Registered once at startup.
func (h *Handlers) Table() dispatch.Table {
	return dispatch.Table{
		wire.CodeCinn.String(): h.gate(wire.CodeCinn.String(), h.onCINN),
		wire.CodeCout.String(): h.gate(wire.CodeCout.String(), h.onCOUT),
		wire.CodeCalv.String(): h.gate(wire.CodeCalv.String(), h.onCALV),
		wire.CodeCbye.String(): h.gate(wire.CodeCbye.String(), h.onTerminal),
		wire.CodeEbad.String(): h.gate(wire.CodeEbad.String(), h.onTerminal),
		wire.CodeEbsy.String(): h.gate(wire.CodeEbsy.String(), h.onTerminal),
		wire.CodeEunk.String(): h.gate(wire.CodeEunk.String(), h.onTerminal),
		wire.CodeEicv.String(): h.gate(wire.CodeEicv.String(), h.onEICV),
		wire.CodeQinf.String(): h.gate(wire.CodeQinf.String(), h.onQINF),
		wire.CodeDinf.String(): h.gate(wire.CodeDinf.String(), h.onDINF),

		wire.CodeDkdn.String(): h.gate(wire.CodeDkdn.String(), h.onDKDN),
		wire.CodeDkup.String(): h.gate(wire.CodeDkup.String(), h.onDKUP),
		wire.CodeDkrp.String(): h.gate(wire.CodeDkrp.String(), h.onDKRP),
		wire.CodeDkdl.String(): h.gate(wire.CodeDkdl.String(), h.onDKDL),

		wire.CodeDmdn.String(): h.gate(wire.CodeDmdn.String(), h.onDMDN),
		wire.CodeDmup.String(): h.gate(wire.CodeDmup.String(), h.onDMUP),
		wire.CodeDmmv.String(): h.gate(wire.CodeDmmv.String(), h.onDMMV),
		wire.CodeDmrm.String(): h.gate(wire.CodeDmrm.String(), h.onDMRM),
		wire.CodeDmwm.String(): h.gate(wire.CodeDmwm.String(), h.onDMWM),
		dmmvFlushKey:           h.gate(dmmvFlushKey, h.onDMMVFlush),

		wire.CodeDclp.String(): h.gate(wire.CodeDclp.String(), h.onLogOnly),
		wire.CodeDdrg.String(): h.gate(wire.CodeDdrg.String(), h.onLogOnly),
		wire.CodeDftr.String(): h.gate(wire.CodeDftr.String(), h.onLogOnly),
		wire.CodeLsyn.String(): h.gate(wire.CodeLsyn.String(), h.onLogOnly),
		wire.CodeSecn.String(): h.gate(wire.CodeSecn.String(), h.onLogOnly),
		wire.CodeDsop.String(): h.gate(wire.CodeDsop.String(), h.onLogOnly),
		wire.CodeCclp.String(): h.gate(wire.CodeCclp.String(), h.onLogOnly),
		wire.CodeCrop.String(): h.gate(wire.CodeCrop.String(), h.onLogOnly),
		wire.CodeCnop.String(): h.gate(wire.CodeCnop.String(), h.onLogOnly),
		wire.CodeCsec.String(): h.gate(wire.CodeCsec.String(), h.onLogOnly),

		dispatch.DefaultCode: h.onUnhandled,
	}
}

// gate wraps a handler so it's a no-op unless the client is Active,
// except for the lifecycle set which always fires (§4.7).
func (h *Handlers) gate(code string, next dispatch.Handler) dispatch.Handler {
	_, always := lifecycleCodes[code]
	return func(ctx context.Context, msg any) error {
		if !always && !h.c.IsActive() {
			return nil
		}
		return next(ctx, msg)
	}
}

func (h *Handlers) onUnhandled(_ context.Context, msg any) error {
	h.logger.Warn("dropping message with no registered handler", "message", msg)
	return nil
}

func (h *Handlers) onLogOnly(_ context.Context, msg any) error {
	h.logger.Info("received informational message", "message", msg)
	return nil
}

// keyEventFields abstracts over DKDN/DKUP/DKRP/DKDL, which share
// key_id/key_button but differ in the rest of their payload.
type keyEventFields struct {
	keyID uint32
	code  string
}

func (h *Handlers) injectKey(kf keyEventFields, pressed bool) error {
	hid, ok := keymap.SynergyToHID(kf.keyID)
	if !ok {
		h.logger.Warn("unmapped synergy key id", "key_id", kf.keyID, "code", kf.code)
		return nil
	}
	ecode, ok := keymap.HidToEcode(hid)
	if !ok {
		h.logger.Warn("unmapped HID usage", "hid", hid, "code", kf.code)
		return nil
	}
	if err := h.c.Keyboard.SendKey(ecode, pressed); err != nil {
		h.logger.Error("send_key failed", "error", err, "category", "DeviceError")
		return nil
	}
	return h.c.Keyboard.Syn()
}

func (h *Handlers) onDKDN(_ context.Context, msg any) error {
	m := msg.(*wire.DKDN)
	return h.injectKey(keyEventFields{keyID: uint32(m.KeyButton), code: "DKDN"}, true)
}

func (h *Handlers) onDKUP(_ context.Context, msg any) error {
	m := msg.(*wire.DKUP)
	return h.injectKey(keyEventFields{keyID: uint32(m.KeyButton), code: "DKUP"}, false)
}

func (h *Handlers) onDKRP(_ context.Context, msg any) error {
	m := msg.(*wire.DKRP)
	hid, ok := keymap.SynergyToHID(uint32(m.KeyButton))
	if !ok {
		return nil
	}
	ecode, ok := keymap.HidToEcode(hid)
	if !ok {
		return nil
	}
	if _, alreadyPressed := h.c.Keyboard.PressedKeys()[ecode]; alreadyPressed {
		return nil
	}
	return h.injectKey(keyEventFields{keyID: uint32(m.KeyButton), code: "DKRP"}, true)
}

func (h *Handlers) onDKDL(_ context.Context, msg any) error {
	m := msg.(*wire.DKDL)
	return h.injectKey(keyEventFields{keyID: uint32(m.KeyButton), code: "DKDL"}, true)
}

// mouseButtonKeyID forms the synergy key id a mouse-button-as-key
// event would carry: (button << 8) | 0xAA (§4.7).
func mouseButtonKeyID(button uint8) uint32 {
	return uint32(button)<<8 | 0xAA
}

func (h *Handlers) injectButton(button uint8, pressed bool) error {
	hid, ok := keymap.SynergyToHID(mouseButtonKeyID(button))
	if !ok {
		return nil
	}
	ecode, ok := keymap.HidToEcodeButton(hid)
	if !ok {
		return nil
	}
	if err := h.c.Mouse.SendButton(ecode, pressed); err != nil {
		h.logger.Error("send_button failed", "error", err, "category", "DeviceError")
		return nil
	}
	return h.c.Mouse.Syn()
}

func (h *Handlers) onDMDN(_ context.Context, msg any) error {
	m := msg.(*wire.DMDN)
	return h.injectButton(m.Button, true)
}

func (h *Handlers) onDMUP(_ context.Context, msg any) error {
	m := msg.(*wire.DMUP)
	return h.injectButton(m.Button, false)
}

func (h *Handlers) onDMRM(_ context.Context, msg any) error {
	m := msg.(*wire.DMRM)
	if err := h.c.Mouse.MoveRelative(m.DX, m.DY); err != nil {
		h.logger.Error("move_relative failed", "error", err, "category", "DeviceError")
		return nil
	}
	return h.c.Mouse.Syn()
}

func (h *Handlers) onDMWM(_ context.Context, msg any) error {
	m := msg.(*wire.DMWM)
	if m.XDelta == 0 && m.YDelta == 0 {
		return nil
	}
	if m.YDelta != 0 {
		if err := h.c.Mouse.WheelRelative(sign(m.YDelta)); err != nil {
			h.logger.Error("wheel_relative failed", "error", err, "category", "DeviceError")
		}
	}
	if m.XDelta != 0 {
		if err := h.c.Mouse.HWheelRelative(sign(m.XDelta)); err != nil {
			h.logger.Error("hwheel_relative failed", "error", err, "category", "DeviceError")
		}
	}
	return h.c.Mouse.Syn()
}

func sign(v int16) int16 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

func (h *Handlers) onCINN(_ context.Context, msg any) error {
	m := msg.(*wire.CINN)
	if err := h.c.Mouse.MoveAbsolute(m.EntryX, m.EntryY); err != nil {
		h.logger.Error("move_absolute failed", "error", err, "category", "DeviceError")
	} else if err := h.c.Mouse.Syn(); err != nil {
		h.logger.Error("syn failed", "error", err, "category", "DeviceError")
	}

	if setter, ok := h.c.Context.(interface{ SetLogicalPos(x, y int16) }); ok {
		setter.SetLogicalPos(m.EntryX, m.EntryY)
	}

	h.c.SetState(client.Active)

	if err := h.c.Keyboard.SyncModifiers(m.ModMask); err != nil {
		h.logger.Error("sync_modifiers failed", "error", err, "category", "DeviceError")
		return nil
	}
	return h.c.Keyboard.Syn()
}

func (h *Handlers) onCOUT(_ context.Context, _ any) error {
	h.c.SetState(client.Connected)
	if err := h.c.Keyboard.ReleaseAllKeys(); err != nil {
		h.logger.Error("release_all_key failed", "error", err, "category", "DeviceError")
	}
	if err := h.c.Mouse.ReleaseAllButtons(); err != nil {
		h.logger.Error("release_all_button failed", "error", err, "category", "DeviceError")
	}
	if err := h.c.Keyboard.Syn(); err != nil {
		return nil
	}
	return h.c.Mouse.Syn()
}

func (h *Handlers) onCALV(_ context.Context, _ any) error {
	h.c.SendMessage(&wire.CALV{})
	return nil
}

func (h *Handlers) onTerminal(_ context.Context, msg any) error {
	code := codeOf(msg)
	h.logger.Warn("terminal protocol message received", "code", code, "category", "ProtocolStop")
	return &dispatch.Stop{Err: &client.ProtocolStop{Code: code}}
}

func (h *Handlers) onEICV(_ context.Context, msg any) error {
	m := msg.(*wire.EICV)
	h.logger.Error("incompatible protocol version", "major", m.Major, "minor", m.Minor, "category", "ProtocolStop")
	return &dispatch.Stop{Err: &client.ProtocolStop{
		Code:   wire.CodeEicv.String(),
		Reason: "incompatible protocol version",
	}}
}

func (h *Handlers) onQINF(_ context.Context, _ any) error {
	if err := h.c.Context.UpdateScreenInfo(); err != nil {
		h.logger.Error("update_screen_info failed", "error", err, "category", "DeviceError")
	}
	if err := h.c.Context.SyncLogicalToReal(); err != nil {
		h.logger.Error("sync_logical_to_real failed", "error", err, "category", "DeviceError")
	}

	w, hh := h.c.Context.ScreenSize()
	x, y := h.c.Context.LogicalPos()
	h.c.SendMessage(&wire.DINF{
		Left: 0, Top: 0,
		W: w, H: hh,
		Warp:   0,
		MouseX: x, MouseY: y,
	})
	return nil
}

func (h *Handlers) onDINF(_ context.Context, _ any) error {
	h.c.SendMessage(&wire.CIAK{})
	return nil
}

func codeOf(msg any) string {
	if m, ok := msg.(wire.Message); ok {
		return m.Code().String()
	}
	return "unknown"
}
