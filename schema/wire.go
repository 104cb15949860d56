package schema

import "github.com/kungfusheep/postwire"

// Encode writes nt as a first-class Schema value: spec.md's data model
// treats "a NamedType" as its own wire kind (KindSchema), so a schema can
// be sent alongside — or instead of — the data it describes, for tooling
// that wants to inspect a type without decoding a live value of it.
func Encode(s *postwire.Serializer, nt *OwnedNamedType) error {
	if err := s.Str(nt.Name); err != nil {
		return err
	}
	return encodeType(s, nt.Type)
}

// Decode reads back a value written by Encode.
func Decode(d *postwire.Deserializer) (*OwnedNamedType, error) {
	name, err := d.StrTemp()
	if err != nil {
		return nil, err
	}
	t, err := decodeType(d)
	if err != nil {
		return nil, err
	}
	return &OwnedNamedType{Name: name, Type: t}, nil
}

func encodeType(s *postwire.Serializer, t *OwnedType) error {
	if err := s.VariantIndex(uint32(t.Kind)); err != nil {
		return err
	}
	switch t.Kind {
	case Option, Seq:
		return Encode(s, t.Inner)
	case Array:
		if err := Encode(s, t.Item); err != nil {
			return err
		}
		return s.Usize(uint64(t.Count))
	case Tuple:
		if err := s.SeqLen(len(t.Elems)); err != nil {
			return err
		}
		for _, e := range t.Elems {
			if err := Encode(s, e); err != nil {
				return err
			}
		}
		return nil
	case Map:
		if err := Encode(s, t.Key); err != nil {
			return err
		}
		return Encode(s, t.Val)
	case Struct:
		return encodeData(s, t.Data)
	case Enum:
		if err := s.SeqLen(len(t.Variants)); err != nil {
			return err
		}
		for _, v := range t.Variants {
			if err := s.Str(v.Name); err != nil {
				return err
			}
			if err := encodeData(s, v.Data); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil // leaf kind, no payload
	}
}

func decodeType(d *postwire.Deserializer) (*OwnedType, error) {
	idx, err := d.VariantIndex(-1)
	if err != nil {
		return nil, err
	}
	kind := Kind(idx)
	t := &OwnedType{Kind: kind}
	switch kind {
	case Option, Seq:
		inner, err := Decode(d)
		if err != nil {
			return nil, err
		}
		t.Inner = inner
	case Array:
		item, err := Decode(d)
		if err != nil {
			return nil, err
		}
		n, err := d.Usize()
		if err != nil {
			return nil, err
		}
		t.Item = item
		t.Count = int(n)
	case Tuple:
		n, err := d.SeqLen()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			e, err := Decode(d)
			if err != nil {
				return nil, err
			}
			t.Elems = append(t.Elems, e)
		}
	case Map:
		key, err := Decode(d)
		if err != nil {
			return nil, err
		}
		val, err := Decode(d)
		if err != nil {
			return nil, err
		}
		t.Key, t.Val = key, val
	case Struct:
		data, err := decodeData(d)
		if err != nil {
			return nil, err
		}
		t.Data = data
	case Enum:
		n, err := d.SeqLen()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			name, err := d.StrTemp()
			if err != nil {
				return nil, err
			}
			data, err := decodeData(d)
			if err != nil {
				return nil, err
			}
			t.Variants = append(t.Variants, &OwnedVariant{Name: name, Data: data})
		}
	}
	return t, nil
}

func encodeData(s *postwire.Serializer, d *OwnedData) error {
	if err := s.VariantIndex(uint32(d.Kind)); err != nil {
		return err
	}
	switch d.Kind {
	case DataNewtype:
		return Encode(s, d.Inner)
	case DataTuple:
		if err := s.SeqLen(len(d.Elems)); err != nil {
			return err
		}
		for _, e := range d.Elems {
			if err := Encode(s, e); err != nil {
				return err
			}
		}
		return nil
	case DataStruct:
		if err := s.SeqLen(len(d.Fields)); err != nil {
			return err
		}
		for _, f := range d.Fields {
			if err := s.Str(f.Name); err != nil {
				return err
			}
			if err := Encode(s, f.Type); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func decodeData(d *postwire.Deserializer) (*OwnedData, error) {
	idx, err := d.VariantIndex(-1)
	if err != nil {
		return nil, err
	}
	kind := DataKind(idx)
	data := &OwnedData{Kind: kind}
	switch kind {
	case DataNewtype:
		inner, err := Decode(d)
		if err != nil {
			return nil, err
		}
		data.Inner = inner
	case DataTuple:
		n, err := d.SeqLen()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			e, err := Decode(d)
			if err != nil {
				return nil, err
			}
			data.Elems = append(data.Elems, e)
		}
	case DataStruct:
		n, err := d.SeqLen()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			name, err := d.StrTemp()
			if err != nil {
				return nil, err
			}
			ty, err := Decode(d)
			if err != nil {
				return nil, err
			}
			data.Fields = append(data.Fields, &OwnedField{Name: name, Type: ty})
		}
	}
	return data, nil
}
