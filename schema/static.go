package schema

// NamedType pairs a Kind tree with the name its defining type was declared
// under. "Static" here means the tree is expected to be built once, usually
// by a package-level var initializer next to the Go type it describes, and
// referenced by pointer from then on — the Go analogue of the original's
// `&'static` schema constants. Nothing in this package enforces that
// lifetime; it's a convention for callers that declare their own schemas.
type NamedType struct {
	Name string
	Type *Type
}

// Type is one node of a static schema tree.
type Type struct {
	Kind Kind

	// Option, Seq: the element type.
	Inner *NamedType

	// Tuple, Array: the element type(s). Tuple uses Elems (one per
	// position); Array uses Item+Count (one type repeated Count times).
	Elems []*NamedType
	Item  *NamedType
	Count int

	// Map: key and value types.
	Key *NamedType
	Val *NamedType

	// Struct: the struct's payload shape.
	Data *Data

	// Enum: the variant list.
	Variants []*Variant
}

// Data describes a Struct's (or a Variant's) payload.
type Data struct {
	Kind DataKind

	Inner  *NamedType   // Newtype
	Elems  []*NamedType // Tuple
	Fields []*Field     // Struct
}

// Field is one named member of a Struct's body.
type Field struct {
	Name string
	Type *NamedType
}

// Variant is one named arm of an Enum.
type Variant struct {
	Name string
	Data *Data
}

// Primitive builds a leaf NamedType for one of the non-recursive kinds
// (Bool..ByteArray, Unit, KindSchema). Panics if kind needs a payload this
// constructor doesn't take — use OptionOf/SeqOf/etc. for those.
func Primitive(name string, kind Kind) *NamedType {
	switch kind {
	case Option, Seq, Tuple, Map, Struct, Enum, Array:
		panic("schema: " + kind.String() + " is not a primitive kind")
	}
	return &NamedType{Name: name, Type: &Type{Kind: kind}}
}

// OptionOf builds the NamedType for Option<inner>.
func OptionOf(name string, inner *NamedType) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Option, Inner: inner}}
}

// SeqOf builds the NamedType for a variable-length sequence of inner.
func SeqOf(name string, inner *NamedType) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Seq, Inner: inner}}
}

// ArrayOf builds the NamedType for a fixed-length array of count copies of
// item.
func ArrayOf(name string, item *NamedType, count int) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Array, Item: item, Count: count}}
}

// TupleOf builds the NamedType for an unnamed, fixed-arity tuple.
func TupleOf(name string, elems ...*NamedType) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Tuple, Elems: elems}}
}

// MapOf builds the NamedType for Map<key, val>.
func MapOf(name string, key, val *NamedType) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Map, Key: key, Val: val}}
}

// StructOf builds the NamedType for a struct whose payload is data.
func StructOf(name string, data *Data) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Struct, Data: data}}
}

// EnumOf builds the NamedType for an enum with the given variants.
func EnumOf(name string, variants ...*Variant) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: Enum, Variants: variants}}
}

// UnitData, NewtypeData, TupleData, and StructData build the four payload
// shapes a Struct or Variant can carry.
func UnitData() *Data { return &Data{Kind: DataUnit} }

func NewtypeData(inner *NamedType) *Data { return &Data{Kind: DataNewtype, Inner: inner} }

func TupleData(elems ...*NamedType) *Data { return &Data{Kind: DataTuple, Elems: elems} }

func StructData(fields ...*Field) *Data { return &Data{Kind: DataStruct, Fields: fields} }

// F builds one named struct field.
func F(name string, ty *NamedType) *Field { return &Field{Name: name, Type: ty} }

// V builds one named enum variant.
func V(name string, data *Data) *Variant { return &Variant{Name: name, Data: data} }

// SchemaType is the schema-of-a-schema leaf: the wire kind used when a
// value's type is itself "a NamedType", per spec.md's first-class Schema
// kind.
func SchemaType(name string) *NamedType {
	return &NamedType{Name: name, Type: &Type{Kind: KindSchema}}
}
