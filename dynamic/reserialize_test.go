package dynamic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kungfusheep/postwire"
	"github.com/kungfusheep/postwire/schema"
)

func encodeFixture(t *testing.T, build func(s *postwire.Serializer) error) []byte {
	t.Helper()
	var buf postwire.Growable
	s := postwire.NewSerializer(&buf)
	if err := build(s); err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := s.Finalize()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	return out
}

func TestReserializeStruct(t *testing.T) {
	ty := schema.FromStatic(schema.StructOf("Point", schema.StructData(
		schema.F("x", schema.Primitive("i32", schema.I32)),
		schema.F("y", schema.Primitive("i32", schema.I32)),
	)))

	wire := encodeFixture(t, func(s *postwire.Serializer) error {
		if err := s.I32(7); err != nil {
			return err
		}
		return s.I32(-3)
	})

	sink := NewAnySink()
	d := postwire.NewDeserializer(postwire.NewSliceSource(wire))
	if err := Reserialize(d, ty, sink, Lossy{}); err != nil {
		t.Fatalf("reserialize: %v", err)
	}

	want := map[string]any{"x": int32(7), "y": int32(-3)}
	if !reflect.DeepEqual(sink.Value(), want) {
		t.Fatalf("got %#v want %#v", sink.Value(), want)
	}
}

func TestReserializeEnumNewtype(t *testing.T) {
	foo := schema.StructOf("Foo", schema.StructData(schema.F("a", schema.Primitive("u32", schema.U32))))
	bar := schema.FromStatic(schema.EnumOf("Bar",
		schema.V("A", schema.UnitData()),
		schema.V("B", schema.NewtypeData(foo)),
	))

	wire := encodeFixture(t, func(s *postwire.Serializer) error {
		if err := s.VariantIndex(1); err != nil {
			return err
		}
		return s.U32(42)
	})

	sink := NewAnySink()
	d := postwire.NewDeserializer(postwire.NewSliceSource(wire))
	if err := Reserialize(d, bar, sink, Lossy{}); err != nil {
		t.Fatalf("reserialize: %v", err)
	}

	want := map[string]any{"B": map[string]any{"a": uint32(42)}}
	if !reflect.DeepEqual(sink.Value(), want) {
		t.Fatalf("got %#v want %#v", sink.Value(), want)
	}
}

func TestReserializeUnitVariant(t *testing.T) {
	bar := schema.FromStatic(schema.EnumOf("Bar",
		schema.V("A", schema.UnitData()),
		schema.V("B", schema.UnitData()),
	))

	wire := encodeFixture(t, func(s *postwire.Serializer) error {
		return s.VariantIndex(0)
	})

	sink := NewAnySink()
	d := postwire.NewDeserializer(postwire.NewSliceSource(wire))
	if err := Reserialize(d, bar, sink, Lossy{}); err != nil {
		t.Fatalf("reserialize: %v", err)
	}

	want := "A"
	if !reflect.DeepEqual(sink.Value(), want) {
		t.Fatalf("got %#v want %#v", sink.Value(), want)
	}
}

func TestReserializeSeqAndOption(t *testing.T) {
	ty := schema.FromStatic(schema.SeqOf("s", schema.OptionOf("o", schema.Primitive("u8", schema.U8))))

	wire := encodeFixture(t, func(s *postwire.Serializer) error {
		if err := s.SeqLen(2); err != nil {
			return err
		}
		if err := s.OptionNone(); err != nil {
			return err
		}
		if err := s.OptionSome(); err != nil {
			return err
		}
		return s.U8(9)
	})

	sink := NewAnySink()
	d := postwire.NewDeserializer(postwire.NewSliceSource(wire))
	if err := Reserialize(d, ty, sink, Lossy{}); err != nil {
		t.Fatalf("reserialize: %v", err)
	}

	want := []any{nil, uint8(9)}
	if !reflect.DeepEqual(sink.Value(), want) {
		t.Fatalf("got %#v want %#v", sink.Value(), want)
	}
}

func TestReserializeMap(t *testing.T) {
	ty := schema.FromStatic(schema.MapOf("m", schema.Primitive("String", schema.String), schema.Primitive("u8", schema.U8)))

	wire := encodeFixture(t, func(s *postwire.Serializer) error {
		if err := s.MapLen(1); err != nil {
			return err
		}
		if err := s.Str("k"); err != nil {
			return err
		}
		return s.U8(1)
	})

	sink := NewAnySink()
	d := postwire.NewDeserializer(postwire.NewSliceSource(wire))
	if err := Reserialize(d, ty, sink, Lossy{}); err != nil {
		t.Fatalf("reserialize: %v", err)
	}

	want := map[string]any{"k": uint8(1)}
	if !reflect.DeepEqual(sink.Value(), want) {
		t.Fatalf("got %#v want %#v", sink.Value(), want)
	}
}

func TestReserializeBadDiscriminantIsDecodeSide(t *testing.T) {
	bar := schema.FromStatic(schema.EnumOf("Bar", schema.V("A", schema.UnitData())))
	wire := encodeFixture(t, func(s *postwire.Serializer) error {
		return s.VariantIndex(99)
	})

	sink := NewAnySink()
	d := postwire.NewDeserializer(postwire.NewSliceSource(wire))
	err := Reserialize(d, bar, sink, Lossy{})
	if err == nil {
		t.Fatal("expected an error for an out-of-range discriminant")
	}
	var rerr *Error
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *dynamic.Error, got %T: %v", err, err)
	}
	if rerr.Side != SideDecode {
		t.Fatalf("expected SideDecode, got %v", rerr.Side)
	}
}
