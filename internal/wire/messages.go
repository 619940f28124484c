package wire

// Hello and HelloBack are exchanged before any other message and never
// carry a four-byte Code — Hello's body begins directly with the
// FIX_STR(7) protocol name "Synergy" (see code.go and §8 scenario 1).
// They are therefore packed/unpacked by dedicated functions rather than
// through the Code registry.

// Hello is the server's opening frame.
type Hello struct {
	ProtocolName string
	Major        uint16
	Minor        uint16
}

// PackHello encodes h without a length prefix.
func PackHello(h Hello) []byte {
	w := NewWriter()
	w.WriteFixedString(len(HelloProtocolName), h.ProtocolName)
	w.WriteInt(2, int64(h.Major))
	w.WriteInt(2, int64(h.Minor))
	return w.Bytes()
}

// UnpackHello decodes a Hello body.
func UnpackHello(body []byte) (Hello, error) {
	r := NewReader(body)
	var h Hello
	name, err := r.ReadFixedString(len(HelloProtocolName))
	if err != nil {
		return Hello{}, err
	}
	h.ProtocolName = name
	major, err := r.ReadInt(2, false)
	if err != nil {
		return Hello{}, err
	}
	h.Major = uint16(major)
	minor, err := r.ReadInt(2, false)
	if err != nil {
		return Hello{}, err
	}
	h.Minor = uint16(minor)
	return h, nil
}

// HelloBack is the client's handshake reply.
type HelloBack struct {
	ProtocolName string
	Major        uint16
	Minor        uint16
	ClientName   string
}

// PackHelloBack encodes hb without a length prefix.
func PackHelloBack(hb HelloBack) []byte {
	w := NewWriter()
	w.WriteFixedString(len(HelloProtocolName), hb.ProtocolName)
	w.WriteInt(2, int64(hb.Major))
	w.WriteInt(2, int64(hb.Minor))
	w.WriteVarString(hb.ClientName)
	return w.Bytes()
}

// --- Regular (Code-prefixed) messages, §6.1 ---

// CALV is the bidirectional keepalive; the client echoes whatever it
// receives.
type CALV struct{}

func (CALV) Code() Code                { return CodeCalv }
func (CALV) PackFields(*Writer)        {}
func (*CALV) UnpackFields(*Reader) error { return nil }

// CBYE notifies the client the server is closing the connection.
type CBYE struct{}

func (CBYE) Code() Code                { return CodeCbye }
func (CBYE) PackFields(*Writer)        {}
func (*CBYE) UnpackFields(*Reader) error { return nil }

// CINN enters the client's screen.
type CINN struct {
	EntryX   int16
	EntryY   int16
	Sequence uint32
	ModMask  uint16
}

func (m *CINN) schema() Schema {
	return Schema{
		Int(2, true, &m.EntryX),
		Int(2, true, &m.EntryY),
		Int(4, false, &m.Sequence),
		Int(2, false, &m.ModMask),
	}
}

func (CINN) Code() Code                   { return CodeCinn }
func (m *CINN) PackFields(w *Writer)       { packSchema(w, m.schema()) }
func (m *CINN) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// COUT leaves the client's screen.
type COUT struct{}

func (COUT) Code() Code                { return CodeCout }
func (COUT) PackFields(*Writer)        {}
func (*COUT) UnpackFields(*Reader) error { return nil }

// CIAK acknowledges a DINF the server sent unsolicited.
type CIAK struct{}

func (CIAK) Code() Code                { return CodeCiak }
func (CIAK) PackFields(*Writer)        {}
func (*CIAK) UnpackFields(*Reader) error { return nil }

// CNOP, CROP and CSEC carry no payload this core acts on; they are
// logged and otherwise ignored (§4.6).
type CNOP struct{}

func (CNOP) Code() Code                { return CodeCnop }
func (CNOP) PackFields(*Writer)        {}
func (*CNOP) UnpackFields(*Reader) error { return nil }

type CROP struct{}

func (CROP) Code() Code                { return CodeCrop }
func (CROP) PackFields(*Writer)        {}
func (*CROP) UnpackFields(*Reader) error { return nil }

type CSEC struct {
	Payload string
}

func (m *CSEC) schema() Schema                { return Schema{VarStr(&m.Payload)} }
func (CSEC) Code() Code                       { return CodeCsec }
func (m *CSEC) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *CSEC) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// CCLP notifies the client of a clipboard grab on a numbered clipboard.
type CCLP struct {
	ClipboardID uint8
	Sequence    uint32
}

func (m *CCLP) schema() Schema {
	return Schema{Int(1, false, &m.ClipboardID), Int(4, false, &m.Sequence)}
}
func (CCLP) Code() Code                       { return CodeCclp }
func (m *CCLP) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *CCLP) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DKDN is a key-down event.
type DKDN struct {
	KeyID     uint16
	ModMask   uint16
	KeyButton uint16
}

func (m *DKDN) schema() Schema {
	return Schema{Int(2, false, &m.KeyID), Int(2, false, &m.ModMask), Int(2, false, &m.KeyButton)}
}
func (DKDN) Code() Code                       { return CodeDkdn }
func (m *DKDN) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DKDN) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DKUP is a key-up event.
type DKUP struct {
	KeyID       uint16
	ModMask     uint16
	RepeatCount uint16
	KeyButton   uint16
}

func (m *DKUP) schema() Schema {
	return Schema{
		Int(2, false, &m.KeyID),
		Int(2, false, &m.ModMask),
		Int(2, false, &m.RepeatCount),
		Int(2, false, &m.KeyButton),
	}
}
func (DKUP) Code() Code                       { return CodeDkup }
func (m *DKUP) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DKUP) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DKRP is an auto-repeat key event.
type DKRP struct {
	KeyID       uint16
	ModMask     uint16
	RepeatCount uint16
	KeyButton   uint16
	Language    string
}

func (m *DKRP) schema() Schema {
	return Schema{
		Int(2, false, &m.KeyID),
		Int(2, false, &m.ModMask),
		Int(2, false, &m.RepeatCount),
		Int(2, false, &m.KeyButton),
		VarStr(&m.Language),
	}
}
func (DKRP) Code() Code                       { return CodeDkrp }
func (m *DKRP) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DKRP) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DKDL is a key-down event with an explicit language tag.
type DKDL struct {
	KeyID     uint16
	ModMask   uint16
	KeyButton uint16
	Language  string
}

func (m *DKDL) schema() Schema {
	return Schema{
		Int(2, false, &m.KeyID),
		Int(2, false, &m.ModMask),
		Int(2, false, &m.KeyButton),
		VarStr(&m.Language),
	}
}
func (DKDL) Code() Code                       { return CodeDkdl }
func (m *DKDL) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DKDL) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DMDN is a mouse-button-down event.
type DMDN struct{ Button uint8 }

func (m *DMDN) schema() Schema                { return Schema{Int(1, false, &m.Button)} }
func (DMDN) Code() Code                       { return CodeDmdn }
func (m *DMDN) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DMDN) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DMUP is a mouse-button-up event.
type DMUP struct{ Button uint8 }

func (m *DMUP) schema() Schema                { return Schema{Int(1, false, &m.Button)} }
func (DMUP) Code() Code                       { return CodeDmup }
func (m *DMUP) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DMUP) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DMMV is an absolute mouse-move event.
type DMMV struct {
	X int16
	Y int16
}

func (m *DMMV) schema() Schema                { return Schema{Int(2, true, &m.X), Int(2, true, &m.Y)} }
func (DMMV) Code() Code                       { return CodeDmmv }
func (m *DMMV) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DMMV) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DMRM is a relative mouse-move event.
type DMRM struct {
	DX int16
	DY int16
}

func (m *DMRM) schema() Schema                { return Schema{Int(2, true, &m.DX), Int(2, true, &m.DY)} }
func (DMRM) Code() Code                       { return CodeDmrm }
func (m *DMRM) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DMRM) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DMWM is a wheel-move event, in ticks.
type DMWM struct {
	XDelta int16
	YDelta int16
}

func (m *DMWM) schema() Schema {
	return Schema{Int(2, true, &m.XDelta), Int(2, true, &m.YDelta)}
}
func (DMWM) Code() Code                       { return CodeDmwm }
func (m *DMWM) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DMWM) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DINF reports the client's screen geometry and mouse position; this
// client sends it in reply to QINF, and answers a DINF received from
// the server with CIAK.
type DINF struct {
	Left    int16
	Top     int16
	W       uint16
	H       uint16
	Warp    uint16
	MouseX  int16
	MouseY  int16
}

func (m *DINF) schema() Schema {
	return Schema{
		Int(2, true, &m.Left),
		Int(2, true, &m.Top),
		Int(2, false, &m.W),
		Int(2, false, &m.H),
		Int(2, false, &m.Warp),
		Int(2, true, &m.MouseX),
		Int(2, true, &m.MouseY),
	}
}
func (DINF) Code() Code                       { return CodeDinf }
func (m *DINF) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DINF) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// QINF asks the client to report its screen info via DINF.
type QINF struct{}

func (QINF) Code() Code                { return CodeQinf }
func (QINF) PackFields(*Writer)        {}
func (*QINF) UnpackFields(*Reader) error { return nil }

// EBAD, EBSY, EUNK are terminal protocol errors carrying no payload.
type EBAD struct{}

func (EBAD) Code() Code                { return CodeEbad }
func (EBAD) PackFields(*Writer)        {}
func (*EBAD) UnpackFields(*Reader) error { return nil }

type EBSY struct{}

func (EBSY) Code() Code                { return CodeEbsy }
func (EBSY) PackFields(*Writer)        {}
func (*EBSY) UnpackFields(*Reader) error { return nil }

type EUNK struct{}

func (EUNK) Code() Code                { return CodeEunk }
func (EUNK) PackFields(*Writer)        {}
func (*EUNK) UnpackFields(*Reader) error { return nil }

// EICV reports an incompatible protocol version and is terminal.
type EICV struct {
	Major uint16
	Minor uint16
}

func (m *EICV) schema() Schema {
	return Schema{Int(2, false, &m.Major), Int(2, false, &m.Minor)}
}
func (EICV) Code() Code                       { return CodeEicv }
func (m *EICV) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *EICV) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// LSYN carries the server's spell-check language list. Its body is a
// VAR_LIST, which Schema has no instruction for, so it hand-rolls
// PackFields/UnpackFields instead of using Schema.
type LSYN struct {
	Languages []string
}

func (LSYN) Code() Code { return CodeLsyn }

func (m *LSYN) PackFields(w *Writer) { w.WriteVarStringList(m.Languages) }

func (m *LSYN) UnpackFields(r *Reader) error {
	items, err := r.ReadVarStringList()
	if err != nil {
		return err
	}
	m.Languages = items
	return nil
}

// DCLP is a clipboard-data payload, opaque to this core beyond logging.
type DCLP struct {
	ClipboardID uint8
	Sequence    uint32
	Data        string
}

func (m *DCLP) schema() Schema {
	return Schema{Int(1, false, &m.ClipboardID), Int(4, false, &m.Sequence), VarStr(&m.Data)}
}
func (DCLP) Code() Code                       { return CodeDclp }
func (m *DCLP) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DCLP) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DDRG carries a drag-and-drop file list, opaque to this core beyond
// logging. Hand-rolled for the same reason as LSYN.
type DDRG struct {
	Files []string
}

func (DDRG) Code() Code { return CodeDdrg }

func (m *DDRG) PackFields(w *Writer) { w.WriteVarStringList(m.Files) }

func (m *DDRG) UnpackFields(r *Reader) error {
	items, err := r.ReadVarStringList()
	if err != nil {
		return err
	}
	m.Files = items
	return nil
}

// DFTR is a file-transfer chunk, opaque to this core beyond logging.
type DFTR struct {
	Data string
}

func (m *DFTR) schema() Schema                { return Schema{VarStr(&m.Data)} }
func (DFTR) Code() Code                       { return CodeDftr }
func (m *DFTR) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *DFTR) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// SECN is a secure-input notification, opaque to this core beyond
// logging.
type SECN struct {
	App string
}

func (m *SECN) schema() Schema                { return Schema{VarStr(&m.App)} }
func (SECN) Code() Code                       { return CodeSecn }
func (m *SECN) PackFields(w *Writer)          { packSchema(w, m.schema()) }
func (m *SECN) UnpackFields(r *Reader) error { return unpackSchema(r, m.schema()) }

// DSOP carries the server's option map (repeat rate, heartbeat
// interval, and similar), opaque to this core beyond logging.
// Hand-rolled for the same reason as LSYN.
type DSOP struct {
	Options map[string]int32
}

func (DSOP) Code() Code { return CodeDsop }

func (m *DSOP) PackFields(w *Writer) { w.WriteOptionMap(m.Options) }

func (m *DSOP) UnpackFields(r *Reader) error {
	opts, err := r.ReadOptionMap()
	if err != nil {
		return err
	}
	m.Options = opts
	return nil
}

func init() {
	Register(CodeCalv, func() Message { return &CALV{} })
	Register(CodeCbye, func() Message { return &CBYE{} })
	Register(CodeCinn, func() Message { return &CINN{} })
	Register(CodeCout, func() Message { return &COUT{} })
	Register(CodeCiak, func() Message { return &CIAK{} })
	Register(CodeCnop, func() Message { return &CNOP{} })
	Register(CodeCrop, func() Message { return &CROP{} })
	Register(CodeCsec, func() Message { return &CSEC{} })
	Register(CodeCclp, func() Message { return &CCLP{} })

	Register(CodeDkdn, func() Message { return &DKDN{} })
	Register(CodeDkup, func() Message { return &DKUP{} })
	Register(CodeDkrp, func() Message { return &DKRP{} })
	Register(CodeDkdl, func() Message { return &DKDL{} })

	Register(CodeDmdn, func() Message { return &DMDN{} })
	Register(CodeDmup, func() Message { return &DMUP{} })
	Register(CodeDmmv, func() Message { return &DMMV{} })
	Register(CodeDmrm, func() Message { return &DMRM{} })
	Register(CodeDmwm, func() Message { return &DMWM{} })

	Register(CodeDinf, func() Message { return &DINF{} })
	Register(CodeQinf, func() Message { return &QINF{} })

	Register(CodeEbad, func() Message { return &EBAD{} })
	Register(CodeEbsy, func() Message { return &EBSY{} })
	Register(CodeEunk, func() Message { return &EUNK{} })
	Register(CodeEicv, func() Message { return &EICV{} })

	Register(CodeLsyn, func() Message { return &LSYN{} })
	Register(CodeDclp, func() Message { return &DCLP{} })
	Register(CodeDdrg, func() Message { return &DDRG{} })
	Register(CodeDftr, func() Message { return &DFTR{} })
	Register(CodeSecn, func() Message { return &SECN{} })
	Register(CodeDsop, func() Message { return &DSOP{} })
}
