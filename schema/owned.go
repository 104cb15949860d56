package schema

// OwnedNamedType is the heap-copied dual of NamedType: every string and
// every child is independently allocated, so an OwnedNamedType has no
// dependency on the lifetime of whatever produced it. This is the shape
// the dynamic package works with, since it builds schema trees by reading
// wire bytes (or another process's registry) rather than from a Go
// package's own static declarations.
type OwnedNamedType struct {
	Name string
	Type *OwnedType
}

// OwnedType is the heap-copied dual of Type.
type OwnedType struct {
	Kind Kind

	Inner *OwnedNamedType

	Elems []*OwnedNamedType
	Item  *OwnedNamedType
	Count int

	Key *OwnedNamedType
	Val *OwnedNamedType

	Data *OwnedData

	Variants []*OwnedVariant
}

// OwnedData is the heap-copied dual of Data.
type OwnedData struct {
	Kind DataKind

	Inner  *OwnedNamedType
	Elems  []*OwnedNamedType
	Fields []*OwnedField
}

// OwnedField is the heap-copied dual of Field.
type OwnedField struct {
	Name string
	Type *OwnedNamedType
}

// OwnedVariant is the heap-copied dual of Variant.
type OwnedVariant struct {
	Name string
	Data *OwnedData
}

// FromStatic deep-copies a static NamedType tree into an owned one. nil in,
// nil out.
func FromStatic(nt *NamedType) *OwnedNamedType {
	if nt == nil {
		return nil
	}
	return &OwnedNamedType{Name: nt.Name, Type: fromStaticType(nt.Type)}
}

func fromStaticType(t *Type) *OwnedType {
	if t == nil {
		return nil
	}
	ot := &OwnedType{
		Kind:  t.Kind,
		Inner: FromStatic(t.Inner),
		Item:  FromStatic(t.Item),
		Count: t.Count,
		Key:   FromStatic(t.Key),
		Val:   FromStatic(t.Val),
		Data:  fromStaticData(t.Data),
	}
	for _, e := range t.Elems {
		ot.Elems = append(ot.Elems, FromStatic(e))
	}
	for _, v := range t.Variants {
		ot.Variants = append(ot.Variants, fromStaticVariant(v))
	}
	return ot
}

func fromStaticData(d *Data) *OwnedData {
	if d == nil {
		return nil
	}
	od := &OwnedData{Kind: d.Kind, Inner: FromStatic(d.Inner)}
	for _, e := range d.Elems {
		od.Elems = append(od.Elems, FromStatic(e))
	}
	for _, f := range d.Fields {
		od.Fields = append(od.Fields, &OwnedField{Name: f.Name, Type: FromStatic(f.Type)})
	}
	return od
}

func fromStaticVariant(v *Variant) *OwnedVariant {
	if v == nil {
		return nil
	}
	return &OwnedVariant{Name: v.Name, Data: fromStaticData(v.Data)}
}

// Equal reports whether two owned trees describe the same shape, under the
// same name-invariance rules Hash uses: type names never participate, field
// and variant names do.
func (a *OwnedNamedType) Equal(b *OwnedNamedType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Type.Equal(b.Type)
}

func (a *OwnedType) Equal(b *OwnedType) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Option, Seq:
		return a.Inner.Equal(b.Inner)
	case Array:
		return a.Count == b.Count && a.Item.Equal(b.Item)
	case Tuple:
		return equalList(a.Elems, b.Elems)
	case Map:
		return a.Key.Equal(b.Key) && a.Val.Equal(b.Val)
	case Struct:
		return a.Data.Equal(b.Data)
	case Enum:
		if len(a.Variants) != len(b.Variants) {
			return false
		}
		for i := range a.Variants {
			if a.Variants[i].Name != b.Variants[i].Name || !a.Variants[i].Data.Equal(b.Variants[i].Data) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func (a *OwnedData) Equal(b *OwnedData) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case DataNewtype:
		return a.Inner.Equal(b.Inner)
	case DataTuple:
		return equalList(a.Elems, b.Elems)
	case DataStruct:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for i := range a.Fields {
			if a.Fields[i].Name != b.Fields[i].Name || !a.Fields[i].Type.Equal(b.Fields[i].Type) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

func equalList(a, b []*OwnedNamedType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
