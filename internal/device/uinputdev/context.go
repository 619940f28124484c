package uinputdev

// ScreenSize returns the dimensions recorded at Open time.
func (d *Device) ScreenSize() (w, h uint16) {
	return d.screenW, d.screenH
}

// LogicalPos returns the last position the client believes the
// server-side cursor occupies.
func (d *Device) LogicalPos() (x, y int16) {
	return d.logicalX, d.logicalY
}

// UpdateScreenInfo is a no-op: a uinput node has no notion of the
// compositor's output geometry, and this client is given its screen
// size at startup (config.ScreenWidth/ScreenHeight) rather than
// querying for it.
func (d *Device) UpdateScreenInfo() error {
	return nil
}

// SyncLogicalToReal is a no-op: /dev/uinput is write-only, so this
// client has no channel to read back the compositor's real cursor
// position. LogicalPos is instead kept in sync purely from the
// server's own CINN/DMMV/DMRM stream.
func (d *Device) SyncLogicalToReal() error {
	return nil
}

// CalculateRelativeMove returns the delta from the current LogicalPos
// to (x, y), updates LogicalPos to (x, y), and returns (0, 0) if
// LogicalPos was never initialized (§4.3 position context).
func (d *Device) CalculateRelativeMove(x, y int16) (dx, dy int16) {
	if !d.haveLogicalPos {
		d.haveLogicalPos = true
		d.logicalX, d.logicalY = x, y
		return 0, 0
	}
	dx = x - d.logicalX
	dy = y - d.logicalY
	d.logicalX, d.logicalY = x, y
	return dx, dy
}

// SetLogicalPos forces LogicalPos, used by the CINN handler on screen
// entry (§4.6).
func (d *Device) SetLogicalPos(x, y int16) {
	d.haveLogicalPos = true
	d.logicalX, d.logicalY = x, y
}
