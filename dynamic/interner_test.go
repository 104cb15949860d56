package dynamic

import "testing"

func TestInternerDedupes(t *testing.T) {
	in := NewInterner()
	a := in.Intern("name")
	b := in.Intern("name")
	if a != b {
		t.Fatalf("expected interned strings to compare equal")
	}
	if in.Len() != 1 {
		t.Fatalf("expected one distinct entry, got %d", in.Len())
	}
	in.Intern("other")
	if in.Len() != 2 {
		t.Fatalf("expected two distinct entries, got %d", in.Len())
	}
}

func TestLosslessStrategyUsesInterner(t *testing.T) {
	in := NewInterner()
	strat := NewLossless(in)
	strat.FieldName("id")
	strat.FieldName("id")
	strat.StructName("Widget")
	if in.Len() != 2 {
		t.Fatalf("expected the interner to dedupe repeated names, got %d entries", in.Len())
	}
}
