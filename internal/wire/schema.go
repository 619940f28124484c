package wire

// FieldKind tags one instruction in a message's Schema. See §3/§4.1.
type FieldKind int

const (
	KindFixVal FieldKind = iota
	KindFixStr
	KindVarStr
)

// Field is one declarative (kind, width, accessor) instruction. A
// message type builds its Schema once, from its own struct fields, via
// the Int/FixStr/VarStr constructors below — there is no reflection over
// struct tags; the instruction list and the accessor closures are
// written down explicitly by each message type's schema() method.
type Field struct {
	Kind   FieldKind
	Width  int // FIX_VAL: 1, 2, or 4; FIX_STR: declared width. Unused for VAR_STR.
	Signed bool

	getInt func() int64
	setInt func(int64)
	getStr func() string
	setStr func(string)
}

// Int declares a FIX_VAL field backed by *ptr, whose on-wire width is
// width bytes and whose interpretation is signed or unsigned.
func Int[T ~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32](width int, signed bool, ptr *T) Field {
	return Field{
		Kind:   KindFixVal,
		Width:  width,
		Signed: signed,
		getInt: func() int64 { return int64(*ptr) },
		setInt: func(v int64) { *ptr = T(v) },
	}
}

// FixStr declares a FIX_STR(width) field backed by *ptr.
func FixStr(width int, ptr *string) Field {
	return Field{
		Kind:   KindFixStr,
		Width:  width,
		getStr: func() string { return *ptr },
		setStr: func(v string) { *ptr = v },
	}
}

// VarStr declares a VAR_STR field backed by *ptr.
func VarStr(ptr *string) Field {
	return Field{
		Kind:   KindVarStr,
		getStr: func() string { return *ptr },
		setStr: func(v string) { *ptr = v },
	}
}

// Schema is the ordered instruction list for one message type, derived
// once (by convention, in that type's schema() method) and never
// mutated afterward.
type Schema []Field

// packSchema writes every field of s, in order, to w.
func packSchema(w *Writer, s Schema) {
	for _, f := range s {
		switch f.Kind {
		case KindFixVal:
			w.WriteInt(f.Width, f.getInt())
		case KindFixStr:
			w.WriteFixedString(f.Width, f.getStr())
		case KindVarStr:
			w.WriteVarString(f.getStr())
		}
	}
}

// unpackSchema reads every field of s, in order, from r, writing
// decoded values back through each Field's accessor.
func unpackSchema(r *Reader, s Schema) error {
	for _, f := range s {
		switch f.Kind {
		case KindFixVal:
			v, err := r.ReadInt(f.Width, f.Signed)
			if err != nil {
				return err
			}
			f.setInt(v)
		case KindFixStr:
			v, err := r.ReadFixedString(f.Width)
			if err != nil {
				return err
			}
			f.setStr(v)
		case KindVarStr:
			v, err := r.ReadVarString()
			if err != nil {
				return err
			}
			f.setStr(v)
		}
	}
	return nil
}
