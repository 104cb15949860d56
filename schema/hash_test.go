package schema

import "testing"

func TestHashStability(t *testing.T) {
	foo := StructOf("Foo", StructData(
		F("a", Primitive("u32", U32)),
		F("b", Primitive("String", String)),
	))
	bar := EnumOf("Bar",
		V("A", UnitData()),
		V("B", NewtypeData(foo)),
	)

	got := HashStatic("test_path", bar)
	want := [8]byte{0x8B, 0x80, 0x34, 0x1B, 0x6B, 0x08, 0xDA, 0x62}
	if got != want {
		t.Fatalf("hash mismatch: got %v want %v", got, want)
	}
}

func TestHashTypePunning(t *testing.T) {
	byteSlice := SeqOf("slice", Primitive("u8", U8))
	byteVec := SeqOf("vec", Primitive("u8", U8))
	u16Vec := SeqOf("vec16", Primitive("u16", U16))

	h1 := HashStatic("test_path", byteSlice)
	h2 := HashStatic("test_path", byteVec)
	h3 := HashStatic("test_path", u16Vec)

	if h1 != h2 {
		t.Fatalf("expected byte slice and byte vec to hash identically (name-invariant), got %v vs %v", h1, h2)
	}
	if h1 == h3 {
		t.Fatalf("expected byte vec and u16 vec to hash differently, got equal %v", h1)
	}
}

func TestHashNamespacedByPath(t *testing.T) {
	leaf := Primitive("u8", U8)
	h1 := HashStatic("a", leaf)
	h2 := HashStatic("b", leaf)
	if h1 == h2 {
		t.Fatalf("expected different paths to produce different hashes")
	}
}

func TestHashIgnoresStructAndEnumNames(t *testing.T) {
	a := StructOf("Alpha", StructData(F("x", Primitive("u8", U8))))
	b := StructOf("Beta", StructData(F("x", Primitive("u8", U8))))
	if HashStatic("p", a) != HashStatic("p", b) {
		t.Fatalf("expected struct type names to be excluded from the hash")
	}
}

func TestHashFieldNamesMatter(t *testing.T) {
	a := StructOf("Alpha", StructData(F("x", Primitive("u8", U8))))
	b := StructOf("Alpha", StructData(F("y", Primitive("u8", U8))))
	if HashStatic("p", a) == HashStatic("p", b) {
		t.Fatalf("expected field names to participate in the hash")
	}
}
