package postwire

import (
	"fmt"
	"reflect"
)

// Encoder[T] is the reflective front end that plays the role spec.md §1
// assigns to "the host language's reflective serialization framework":
// it walks a struct's fields (found once, via reflect, and cached as a
// plan) and drives a Serializer with the matching wire-kind calls. This
// mirrors the teacher's generics-based Encoder[T], minus the CRC/schema
// header glint embeds in every payload — spec.md's wire format has no
// self-description, so a postwire Encoder writes exactly the
// concatenation of fields spec.md §3 describes and nothing else.
//
// Build one Encoder per type and reuse it; the reflected plan is
// immutable once built, so an Encoder is safe for concurrent use.
type Encoder[T any] struct {
	plan *structPlan
}

// NewEncoder builds an Encoder for T. Fields are discovered via the
// "postwire" struct tag, e.g.:
//
//	type Point struct {
//	    X int32 `postwire:"x"`
//	    Y int32 `postwire:"y"`
//	}
//
// Untagged fields are skipped, mirroring glint's tag-driven field
// selection.
func NewEncoder[T any]() *Encoder[T] {
	var zero T
	return &Encoder[T]{plan: planStruct(reflect.TypeOf(zero))}
}

// Encode writes v's tagged fields, in declaration order, into buf and
// returns the encoded bytes.
func (e *Encoder[T]) Encode(v *T, buf *Growable) ([]byte, error) {
	s := NewSerializer(buf)
	if err := e.plan.encode(s, reflect.ValueOf(v).Elem()); err != nil {
		return nil, err
	}
	return s.Finalize()
}

// Decoder[T] is the read-side dual of Encoder[T].
type Decoder[T any] struct {
	plan *structPlan
}

// NewDecoder builds a Decoder for T using the same tag convention as
// NewEncoder.
func NewDecoder[T any]() *Decoder[T] {
	var zero T
	return &Decoder[T]{plan: planStruct(reflect.TypeOf(zero))}
}

// Decode reads one T out of buf.
func (d *Decoder[T]) Decode(buf []byte) (T, error) {
	var out T
	src := NewSliceSource(buf)
	ds := NewDeserializer(src)
	err := d.plan.decode(ds, reflect.ValueOf(&out).Elem())
	return out, err
}

// structPlan is the reflected, tag-driven shape of a struct: one fieldPlan
// per tagged field, computed once by planStruct and reused across every
// Encode/Decode call — the same "compile the reflection once" idea as
// glint's encodeInstruction slice, without the unsafe-pointer fast paths
// (this codec favors a reflect.Value walk for portability and auditability
// over raw pointer arithmetic).
type structPlan struct {
	typ    reflect.Type
	fields []fieldPlan
}

type fieldPlan struct {
	index []int
	name  string
}

func planStruct(t reflect.Type) *structPlan {
	if t == nil || t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("postwire: %v is not a struct", t))
	}
	p := &structPlan{typ: t}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		tag, ok := sf.Tag.Lookup("postwire")
		if !ok || tag == "-" {
			continue
		}
		p.fields = append(p.fields, fieldPlan{index: sf.Index, name: tag})
	}
	return p
}

func (p *structPlan) encode(s *Serializer, v reflect.Value) error {
	for _, fp := range p.fields {
		if err := encodeValue(s, v.FieldByIndex(fp.index)); err != nil {
			return fmt.Errorf("postwire: field %q: %w", fp.name, err)
		}
	}
	return nil
}

func (p *structPlan) decode(d *Deserializer, v reflect.Value) error {
	for _, fp := range p.fields {
		if err := decodeValue(d, v.FieldByIndex(fp.index)); err != nil {
			return fmt.Errorf("postwire: field %q: %w", fp.name, err)
		}
	}
	return nil
}

// encodeValue dispatches on v's Go kind to the matching wire kind from
// spec.md §3. Pointers are treated as option<T>; slices of non-byte
// element type are seq<T>; [N]byte and other fixed arrays are the
// concatenation-of-fields array kind; maps are map<K,V>; nested structs
// recurse through a freshly-planned structPlan.
func encodeValue(s *Serializer, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		return s.Bool(v.Bool())
	case reflect.Int8:
		return s.I8(int8(v.Int()))
	case reflect.Int16:
		return s.I16(int16(v.Int()))
	case reflect.Int32:
		return s.I32(int32(v.Int()))
	case reflect.Int64, reflect.Int:
		return s.I64(v.Int())
	case reflect.Uint8:
		return s.U8(uint8(v.Uint()))
	case reflect.Uint16:
		return s.U16(uint16(v.Uint()))
	case reflect.Uint32:
		return s.U32(uint32(v.Uint()))
	case reflect.Uint64, reflect.Uint:
		return s.U64(v.Uint())
	case reflect.Float32:
		return s.F32(float32(v.Float()))
	case reflect.Float64:
		return s.F64(v.Float())
	case reflect.String:
		return s.Str(v.String())
	case reflect.Ptr:
		if v.IsNil() {
			return s.OptionNone()
		}
		if err := s.OptionSome(); err != nil {
			return err
		}
		return encodeValue(s, v.Elem())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return s.Bytes(v.Bytes())
		}
		if err := s.SeqLen(v.Len()); err != nil {
			return err
		}
		for i := 0; i < v.Len(); i++ {
			if err := encodeValue(s, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := encodeValue(s, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		if err := s.MapLen(v.Len()); err != nil {
			return err
		}
		iter := v.MapRange()
		for iter.Next() {
			if err := encodeValue(s, iter.Key()); err != nil {
				return err
			}
			if err := encodeValue(s, iter.Value()); err != nil {
				return err
			}
		}
		return nil
	case reflect.Struct:
		return planStruct(v.Type()).encode(s, v)
	default:
		return fmt.Errorf("postwire: unsupported field kind %v", v.Kind())
	}
}

func decodeValue(d *Deserializer, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Bool:
		b, err := d.Bool()
		if err != nil {
			return err
		}
		v.SetBool(b)
		return nil
	case reflect.Int8:
		x, err := d.I8()
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
		return nil
	case reflect.Int16:
		x, err := d.I16()
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
		return nil
	case reflect.Int32:
		x, err := d.I32()
		if err != nil {
			return err
		}
		v.SetInt(int64(x))
		return nil
	case reflect.Int64, reflect.Int:
		x, err := d.I64()
		if err != nil {
			return err
		}
		v.SetInt(x)
		return nil
	case reflect.Uint8:
		x, err := d.U8()
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
		return nil
	case reflect.Uint16:
		x, err := d.U16()
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
		return nil
	case reflect.Uint32:
		x, err := d.U32()
		if err != nil {
			return err
		}
		v.SetUint(uint64(x))
		return nil
	case reflect.Uint64, reflect.Uint:
		x, err := d.U64()
		if err != nil {
			return err
		}
		v.SetUint(x)
		return nil
	case reflect.Float32:
		x, err := d.F32()
		if err != nil {
			return err
		}
		v.SetFloat(float64(x))
		return nil
	case reflect.Float64:
		x, err := d.F64()
		if err != nil {
			return err
		}
		v.SetFloat(x)
		return nil
	case reflect.String:
		x, err := d.StrTemp()
		if err != nil {
			return err
		}
		v.SetString(x)
		return nil
	case reflect.Ptr:
		some, err := d.OptionTag()
		if err != nil {
			return err
		}
		if !some {
			v.Set(reflect.Zero(v.Type()))
			return nil
		}
		v.Set(reflect.New(v.Type().Elem()))
		return decodeValue(d, v.Elem())
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := d.BytesTemp()
			if err != nil {
				return err
			}
			out := make([]byte, len(b))
			copy(out, b)
			v.SetBytes(out)
			return nil
		}
		n, err := d.SeqLen()
		if err != nil {
			return err
		}
		out := reflect.MakeSlice(v.Type(), n, n)
		for i := 0; i < n; i++ {
			if err := decodeValue(d, out.Index(i)); err != nil {
				return err
			}
		}
		v.Set(out)
		return nil
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := decodeValue(d, v.Index(i)); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		n, err := d.MapLen()
		if err != nil {
			return err
		}
		out := reflect.MakeMapWithSize(v.Type(), n)
		kt, vt := v.Type().Key(), v.Type().Elem()
		for i := 0; i < n; i++ {
			k := reflect.New(kt).Elem()
			if err := decodeValue(d, k); err != nil {
				return err
			}
			val := reflect.New(vt).Elem()
			if err := decodeValue(d, val); err != nil {
				return err
			}
			out.SetMapIndex(k, val)
		}
		v.Set(out)
		return nil
	case reflect.Struct:
		return planStruct(v.Type()).decode(d, v)
	default:
		return fmt.Errorf("postwire: unsupported field kind %v", v.Kind())
	}
}
