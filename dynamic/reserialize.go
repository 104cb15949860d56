// Package dynamic reserializes postwire-encoded bytes into an arbitrary
// external format, driven only by a runtime schema.OwnedNamedType — no Go
// type ever needs to exist for the value being read. This is the dynamic
// reserializer spec.md calls for: postcard-dyn's reserialize module,
// generalized past its one Rust-specific wrinkle (serde's `&'static str`
// requirement on struct/field/variant names forces a lossy/lossless split
// there; Go's Sink interface takes a plain string, so that split survives
// here only as the Strategy naming hook in strategy.go, not as two
// different reserialization code paths).
package dynamic

import (
	"fmt"
	"strconv"

	"github.com/kungfusheep/postwire"
	"github.com/kungfusheep/postwire/schema"
)

// Reserialize reads one value shaped like ty out of d and replays it into
// sink, using strat to resolve struct/field/variant names. It is the
// read-the-schema-not-a-Go-type counterpart to Encoder[T]/Decoder[T]: the
// schema is the only source of truth about what bytes come next.
func Reserialize(d *postwire.Deserializer, ty *schema.OwnedNamedType, sink Sink, strat Strategy) error {
	return reserializeType(d, ty, sink, strat)
}

func reserializeType(d *postwire.Deserializer, nt *schema.OwnedNamedType, sink Sink, strat Strategy) error {
	t := nt.Type
	switch t.Kind {
	case schema.Bool:
		v, err := d.Bool()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Bool(v))
	case schema.I8:
		v, err := d.I8()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.I8(v))
	case schema.U8:
		v, err := d.U8()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.U8(v))
	case schema.I16:
		v, err := d.I16()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.I16(v))
	case schema.U16:
		v, err := d.U16()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.U16(v))
	case schema.I32:
		v, err := d.I32()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.I32(v))
	case schema.U32:
		v, err := d.U32()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.U32(v))
	case schema.I64:
		v, err := d.I64()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.I64(v))
	case schema.U64:
		v, err := d.U64()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.U64(v))
	case schema.I128:
		v, err := d.I128()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.I128(v))
	case schema.U128:
		v, err := d.U128()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.U128(v))
	case schema.Usize:
		v, err := d.Usize()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Usize(v))
	case schema.Isize:
		v, err := d.Isize()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Isize(v))
	case schema.F32:
		v, err := d.F32()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.F32(v))
	case schema.F64:
		v, err := d.F64()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.F64(v))
	case schema.Char:
		v, err := d.Char()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Char(v))
	case schema.String:
		v, err := d.StrTemp()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Str(v))
	case schema.ByteArray:
		v, err := d.BytesTemp()
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Bytes(v))
	case schema.Unit:
		return sinkErr(sink.Unit())
	case schema.KindSchema:
		v, err := schema.Decode(d)
		if err != nil {
			return decodeErr(err)
		}
		return sinkErr(sink.Str(schema.Pretty(v)))
	case schema.Option:
		some, err := d.OptionTag()
		if err != nil {
			return decodeErr(err)
		}
		if err := sinkErr(sink.BeginOption(some)); err != nil {
			return err
		}
		if !some {
			return nil
		}
		if err := reserializeType(d, t.Inner, sink, strat); err != nil {
			return err
		}
		return sinkErr(sink.EndOption())
	case schema.Seq:
		n, err := d.SeqLen()
		if err != nil {
			return decodeErr(err)
		}
		if err := sinkErr(sink.BeginSeq(n)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := reserializeType(d, t.Inner, sink, strat); err != nil {
				return err
			}
		}
		return sinkErr(sink.EndSeq())
	case schema.Array:
		if err := sinkErr(sink.BeginSeq(t.Count)); err != nil {
			return err
		}
		for i := 0; i < t.Count; i++ {
			if err := reserializeType(d, t.Item, sink, strat); err != nil {
				return err
			}
		}
		return sinkErr(sink.EndSeq())
	case schema.Tuple:
		if err := sinkErr(sink.BeginTuple(len(t.Elems))); err != nil {
			return err
		}
		for _, e := range t.Elems {
			if err := reserializeType(d, e, sink, strat); err != nil {
				return err
			}
		}
		return sinkErr(sink.EndTuple())
	case schema.Map:
		n, err := d.MapLen()
		if err != nil {
			return decodeErr(err)
		}
		if err := sinkErr(sink.BeginMap(n)); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := sinkErr(sink.MapKey()); err != nil {
				return err
			}
			if err := reserializeType(d, t.Key, sink, strat); err != nil {
				return err
			}
			if err := sinkErr(sink.MapValue()); err != nil {
				return err
			}
			if err := reserializeType(d, t.Val, sink, strat); err != nil {
				return err
			}
		}
		return sinkErr(sink.EndMap())
	case schema.Struct:
		return reserializeStructData(d, strat.StructName(nt.Name), t.Data, sink, strat)
	case schema.Enum:
		idx, err := d.VariantIndex(len(t.Variants))
		if err != nil {
			return decodeErr(err)
		}
		v := t.Variants[idx]
		return reserializeVariant(d, nt.Name, idx, v, sink, strat)
	default:
		return decodeErr(fmt.Errorf("dynamic: unhandled schema kind %v", t.Kind))
	}
}

func reserializeStructData(d *postwire.Deserializer, name string, data *schema.OwnedData, sink Sink, strat Strategy) error {
	switch data.Kind {
	case schema.DataUnit:
		if err := sinkErr(sink.BeginStruct(name, 0)); err != nil {
			return err
		}
		return sinkErr(sink.EndStruct())
	case schema.DataNewtype:
		if err := sinkErr(sink.BeginStruct(name, 1)); err != nil {
			return err
		}
		if err := sinkErr(sink.StructField(strat.FieldName("0"))); err != nil {
			return err
		}
		if err := reserializeType(d, data.Inner, sink, strat); err != nil {
			return err
		}
		return sinkErr(sink.EndStruct())
	case schema.DataTuple:
		if err := sinkErr(sink.BeginStruct(name, len(data.Elems))); err != nil {
			return err
		}
		for i, e := range data.Elems {
			if err := sinkErr(sink.StructField(strat.FieldName(strconv.Itoa(i)))); err != nil {
				return err
			}
			if err := reserializeType(d, e, sink, strat); err != nil {
				return err
			}
		}
		return sinkErr(sink.EndStruct())
	case schema.DataStruct:
		if err := sinkErr(sink.BeginStruct(name, len(data.Fields))); err != nil {
			return err
		}
		for _, f := range data.Fields {
			if err := sinkErr(sink.StructField(strat.FieldName(f.Name))); err != nil {
				return err
			}
			if err := reserializeType(d, f.Type, sink, strat); err != nil {
				return err
			}
		}
		return sinkErr(sink.EndStruct())
	default:
		return sinkErr(sink.EndStruct())
	}
}

func reserializeVariant(d *postwire.Deserializer, typeName string, idx uint32, v *schema.OwnedVariant, sink Sink, strat Strategy) error {
	name := strat.VariantName(v.Name)
	if v.Data.Kind == schema.DataUnit {
		return sinkErr(sink.UnitEnum(typeName, idx, name))
	}
	if err := sinkErr(sink.BeginEnum(typeName, idx, name)); err != nil {
		return err
	}
	switch v.Data.Kind {
	case schema.DataNewtype:
		if err := reserializeType(d, v.Data.Inner, sink, strat); err != nil {
			return err
		}
	case schema.DataTuple:
		if err := sinkErr(sink.BeginTuple(len(v.Data.Elems))); err != nil {
			return err
		}
		for _, e := range v.Data.Elems {
			if err := reserializeType(d, e, sink, strat); err != nil {
				return err
			}
		}
		if err := sinkErr(sink.EndTuple()); err != nil {
			return err
		}
	case schema.DataStruct:
		if err := sinkErr(sink.BeginStruct(name, len(v.Data.Fields))); err != nil {
			return err
		}
		for _, f := range v.Data.Fields {
			if err := sinkErr(sink.StructField(strat.FieldName(f.Name))); err != nil {
				return err
			}
			if err := reserializeType(d, f.Type, sink, strat); err != nil {
				return err
			}
		}
		if err := sinkErr(sink.EndStruct()); err != nil {
			return err
		}
	}
	return sinkErr(sink.EndEnum())
}
