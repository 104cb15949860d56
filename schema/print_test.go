package schema

import "testing"

func TestPrettyStruct(t *testing.T) {
	foo := StructOf("Foo", StructData(
		F("a", Primitive("u32", U32)),
		F("b", Primitive("String", String)),
	))
	got := Pretty(FromStatic(foo))
	want := "struct Foo { a: u32, b: string }"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrettyEnum(t *testing.T) {
	foo := StructOf("Foo", StructData(F("a", Primitive("u32", U32))))
	bar := EnumOf("Bar",
		V("A", UnitData()),
		V("B", NewtypeData(foo)),
	)
	got := Pretty(FromStatic(bar))
	want := "enum Bar { A, B(Foo) }"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrettyTupleFoldsIntoArray(t *testing.T) {
	u8 := Primitive("u8", U8)
	tup := TupleOf("t", u8, u8, u8)
	got := Pretty(FromStatic(tup))
	want := "[3]u8"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrettyMixedTupleStaysTuple(t *testing.T) {
	tup := TupleOf("t", Primitive("u8", U8), Primitive("String", String))
	got := Pretty(FromStatic(tup))
	want := "(u8, string)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestPrettyNestedStructReferencesByName(t *testing.T) {
	inner := StructOf("Inner", StructData(F("v", Primitive("u8", U8))))
	outer := StructOf("Outer", StructData(F("inner", inner)))
	got := Pretty(FromStatic(outer))
	want := "struct Outer { inner: Inner }"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}
