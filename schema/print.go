package schema

import (
	"fmt"
	"strings"
)

// Pretty renders an OwnedNamedType as pseudo-Go source, the schema
// equivalent of `go/printer` for an ordinary type: a top-level struct or
// enum renders its full body, while the same type appearing *inside*
// another type renders as just its name — the reader is expected to look
// the referenced type up separately rather than see it inlined twice.
func Pretty(nt *OwnedNamedType) string {
	var b strings.Builder
	writeType(&b, nt, true)
	return b.String()
}

func writeType(b *strings.Builder, nt *OwnedNamedType, topLevel bool) {
	t := nt.Type
	switch t.Kind {
	case Bool:
		b.WriteString("bool")
	case I8:
		b.WriteString("i8")
	case U8:
		b.WriteString("u8")
	case I16:
		b.WriteString("i16")
	case I32:
		b.WriteString("i32")
	case I64:
		b.WriteString("i64")
	case I128:
		b.WriteString("i128")
	case U16:
		b.WriteString("u16")
	case U32:
		b.WriteString("u32")
	case U64:
		b.WriteString("u64")
	case U128:
		b.WriteString("u128")
	case Usize:
		b.WriteString("usize")
	case Isize:
		b.WriteString("isize")
	case F32:
		b.WriteString("f32")
	case F64:
		b.WriteString("f64")
	case Char:
		b.WriteString("char")
	case String:
		b.WriteString("string")
	case ByteArray:
		b.WriteString("[]byte")
	case Unit:
		b.WriteString("()")
	case KindSchema:
		b.WriteString("Schema")
	case Option:
		b.WriteString("Option<")
		writeType(b, t.Inner, false)
		b.WriteString(">")
	case Seq:
		b.WriteString("[]")
		writeType(b, t.Inner, false)
	case Array:
		fmt.Fprintf(b, "[%d]", t.Count)
		writeType(b, t.Item, false)
	case Tuple:
		writeTuple(b, t.Elems)
	case Map:
		b.WriteString("map[")
		writeType(b, t.Key, false)
		b.WriteString("]")
		writeType(b, t.Val, false)
	case Struct:
		if topLevel {
			writeStructBody(b, nt.Name, t.Data)
		} else {
			b.WriteString(nt.Name)
		}
	case Enum:
		if topLevel {
			writeEnumBody(b, nt.Name, t.Variants)
		} else {
			b.WriteString(nt.Name)
		}
	}
}

// writeTuple matches the original's array-folding rule: a tuple all of
// whose elements are the same shape prints as a fixed-size array instead
// of an unrolled tuple.
func writeTuple(b *strings.Builder, elems []*OwnedNamedType) {
	if len(elems) == 0 {
		b.WriteString("()")
		return
	}
	first := elems[0]
	allSame := true
	for _, e := range elems[1:] {
		if !e.Equal(first) {
			allSame = false
			break
		}
	}
	if allSame {
		fmt.Fprintf(b, "[%d]", len(elems))
		writeType(b, first, false)
		return
	}
	b.WriteString("(")
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		writeType(b, e, false)
	}
	b.WriteString(")")
}

func writeStructBody(b *strings.Builder, name string, data *OwnedData) {
	fmt.Fprintf(b, "struct %s", name)
	switch data.Kind {
	case DataUnit:
		// no body
	case DataNewtype:
		b.WriteString("(")
		writeType(b, data.Inner, false)
		b.WriteString(")")
	case DataTuple:
		b.WriteString("(")
		for i, e := range data.Elems {
			if i > 0 {
				b.WriteString(", ")
			}
			writeType(b, e, false)
		}
		b.WriteString(")")
	case DataStruct:
		b.WriteString(" { ")
		for i, f := range data.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Name)
			b.WriteString(": ")
			writeType(b, f.Type, false)
		}
		b.WriteString(" }")
	}
}

func writeEnumBody(b *strings.Builder, name string, variants []*OwnedVariant) {
	fmt.Fprintf(b, "enum %s { ", name)
	for i, v := range variants {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.Name)
		switch v.Data.Kind {
		case DataUnit:
		case DataNewtype:
			b.WriteString("(")
			writeType(b, v.Data.Inner, false)
			b.WriteString(")")
		case DataTuple:
			b.WriteString("(")
			for j, e := range v.Data.Elems {
				if j > 0 {
					b.WriteString(", ")
				}
				writeType(b, e, false)
			}
			b.WriteString(")")
		case DataStruct:
			b.WriteString("{ ")
			for j, f := range v.Data.Fields {
				if j > 0 {
					b.WriteString(", ")
				}
				b.WriteString(f.Name)
				b.WriteString(": ")
				writeType(b, f.Type, false)
			}
			b.WriteString(" }")
		}
	}
	b.WriteString(" }")
}
