package dynamic

import (
	"fmt"
	"math/big"
)

// AnySink is the reference Sink: it builds a plain Go value tree (nil,
// bool, the fixed-width number types, string, []byte, []any, or
// map[string]any) out of whatever Reserialize drives it through — the Go
// analogue of reserializing into serde_json::Value, useful on its own for
// inspecting postwire-encoded bytes without a matching Go type, and as the
// test fixture for the rest of this package.
//
// Struct values and enum values with a payload land as map[string]any
// (field/variant name to value), and a unit variant lands as its bare name
// string — the "structs and enums are maps" shape of the lossy strategy;
// pair AnySink with Lossless only if the caller specifically wants interned
// key strings in the result.
type AnySink struct {
	stack  []*frame
	result any
}

type frameKind int

const (
	frameSeq frameKind = iota
	frameTuple
	frameMap
	frameStruct
	frameOption
)

type frame struct {
	kind    frameKind
	seq     []any
	obj     map[string]any
	key     any
	hasKey  bool
	pending string // field/variant name awaiting its value
}

// NewAnySink returns an empty AnySink ready to be driven by Reserialize.
func NewAnySink() *AnySink { return &AnySink{} }

// Value returns the fully-assembled tree after Reserialize returns.
func (s *AnySink) Value() any { return s.result }

func (s *AnySink) emit(v any) error {
	if len(s.stack) == 0 {
		s.result = v
		return nil
	}
	top := s.stack[len(s.stack)-1]
	switch top.kind {
	case frameSeq, frameTuple:
		top.seq = append(top.seq, v)
	case frameMap:
		if !top.hasKey {
			top.key = v
			top.hasKey = true
		} else {
			top.obj[fmt.Sprint(top.key)] = v
			top.hasKey = false
		}
	case frameStruct:
		top.obj[top.pending] = v
	case frameOption:
		top.seq = append(top.seq, v) // at most one element
	}
	return nil
}

func (s *AnySink) Bool(v bool) error      { return s.emit(v) }
func (s *AnySink) I8(v int8) error        { return s.emit(v) }
func (s *AnySink) U8(v uint8) error       { return s.emit(v) }
func (s *AnySink) I16(v int16) error      { return s.emit(v) }
func (s *AnySink) U16(v uint16) error     { return s.emit(v) }
func (s *AnySink) I32(v int32) error      { return s.emit(v) }
func (s *AnySink) U32(v uint32) error     { return s.emit(v) }
func (s *AnySink) I64(v int64) error      { return s.emit(v) }
func (s *AnySink) U64(v uint64) error     { return s.emit(v) }
func (s *AnySink) I128(v *big.Int) error  { return s.emit(new(big.Int).Set(v)) }
func (s *AnySink) U128(v *big.Int) error  { return s.emit(new(big.Int).Set(v)) }
func (s *AnySink) Usize(v uint64) error   { return s.emit(v) }
func (s *AnySink) Isize(v int64) error    { return s.emit(v) }
func (s *AnySink) F32(v float32) error    { return s.emit(v) }
func (s *AnySink) F64(v float64) error    { return s.emit(v) }
func (s *AnySink) Char(v rune) error      { return s.emit(v) }
func (s *AnySink) Str(v string) error     { return s.emit(v) }
func (s *AnySink) Bytes(v []byte) error   { out := make([]byte, len(v)); copy(out, v); return s.emit(out) }
func (s *AnySink) Unit() error            { return s.emit(nil) }

func (s *AnySink) BeginOption(some bool) error {
	if !some {
		return s.emit(nil)
	}
	s.push(&frame{kind: frameOption})
	return nil
}

func (s *AnySink) EndOption() error {
	f := s.pop()
	if len(f.seq) == 0 {
		return s.emit(nil)
	}
	return s.emit(f.seq[0])
}

func (s *AnySink) BeginSeq(n int) error {
	s.push(&frame{kind: frameSeq, seq: make([]any, 0, n)})
	return nil
}

func (s *AnySink) EndSeq() error {
	f := s.pop()
	return s.emit(f.seq)
}

func (s *AnySink) BeginTuple(n int) error {
	s.push(&frame{kind: frameTuple, seq: make([]any, 0, n)})
	return nil
}

func (s *AnySink) EndTuple() error {
	f := s.pop()
	return s.emit(f.seq)
}

func (s *AnySink) BeginMap(n int) error {
	s.push(&frame{kind: frameMap, obj: make(map[string]any, n)})
	return nil
}

func (s *AnySink) MapKey() error   { return nil }
func (s *AnySink) MapValue() error { return nil }

func (s *AnySink) EndMap() error {
	f := s.pop()
	return s.emit(f.obj)
}

func (s *AnySink) BeginStruct(name string, n int) error {
	s.push(&frame{kind: frameStruct, obj: make(map[string]any, n)})
	return nil
}

func (s *AnySink) StructField(name string) error {
	s.stack[len(s.stack)-1].pending = name
	return nil
}

func (s *AnySink) EndStruct() error {
	f := s.pop()
	return s.emit(f.obj)
}

func (s *AnySink) BeginEnum(name string, variantIndex uint32, variantName string) error {
	s.push(&frame{kind: frameStruct, obj: make(map[string]any, 1), pending: variantName})
	return nil
}

func (s *AnySink) EndEnum() error {
	f := s.pop()
	return s.emit(map[string]any{f.pending: f.obj[f.pending]})
}

// UnitEnum reserializes a payload-less variant as its bare name string,
// not a one-entry map — the lossy-strategy shape for a unit variant.
func (s *AnySink) UnitEnum(name string, variantIndex uint32, variantName string) error {
	return s.emit(variantName)
}

func (s *AnySink) push(f *frame) { s.stack = append(s.stack, f) }

func (s *AnySink) pop() *frame {
	f := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return f
}
