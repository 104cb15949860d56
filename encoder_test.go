package postwire

import (
	"reflect"
	"testing"
)

type encoderFixture struct {
	Name    string            `postwire:"name"`
	Age     uint8             `postwire:"age"`
	Tags    []string          `postwire:"tags"`
	Scores  []int32           `postwire:"scores"`
	Nick    *string           `postwire:"nick"`
	Weights map[string]uint32 `postwire:"weights"`
	Ignored string            // untagged, must be skipped entirely
}

func TestEncoderStructRoundTrip(t *testing.T) {
	nick := "sprocket"
	in := encoderFixture{
		Name:    "Ada",
		Age:     37,
		Tags:    []string{"engineer", "mathematician"},
		Scores:  []int32{-5, 0, 12},
		Nick:    &nick,
		Weights: map[string]uint32{"a": 1, "b": 2},
		Ignored: "should never be on the wire",
	}

	enc := NewEncoder[encoderFixture]()
	out, err := enc.Encode(&in, NewGrowable())
	if err != nil {
		t.Fatal(err)
	}

	dec := NewDecoder[encoderFixture]()
	got, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}

	in.Ignored = ""
	if got.Name != in.Name || got.Age != in.Age {
		t.Fatalf("got %+v want %+v", got, in)
	}
	if !reflect.DeepEqual(got.Tags, in.Tags) {
		t.Fatalf("tags: got %v want %v", got.Tags, in.Tags)
	}
	if !reflect.DeepEqual(got.Scores, in.Scores) {
		t.Fatalf("scores: got %v want %v", got.Scores, in.Scores)
	}
	if got.Nick == nil || *got.Nick != *in.Nick {
		t.Fatalf("nick: got %v want %v", got.Nick, in.Nick)
	}
	if !reflect.DeepEqual(got.Weights, in.Weights) {
		t.Fatalf("weights: got %v want %v", got.Weights, in.Weights)
	}
	if got.Ignored != "" {
		t.Fatalf("expected untagged field to decode as zero value, got %q", got.Ignored)
	}
}

func TestEncoderNilOptionRoundTrip(t *testing.T) {
	in := encoderFixture{Name: "Grace", Age: 29, Nick: nil}
	enc := NewEncoder[encoderFixture]()
	out, err := enc.Encode(&in, NewGrowable())
	if err != nil {
		t.Fatal(err)
	}
	dec := NewDecoder[encoderFixture]()
	got, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Nick != nil {
		t.Fatalf("expected nil nick, got %v", *got.Nick)
	}
}

type nestedFixture struct {
	Inner encoderFixture `postwire:"inner"`
	Count int64          `postwire:"count"`
}

func TestEncoderNestedStructRoundTrip(t *testing.T) {
	in := nestedFixture{
		Inner: encoderFixture{Name: "Alan", Age: 41, Tags: nil, Scores: nil, Weights: map[string]uint32{}},
		Count: -100,
	}
	enc := NewEncoder[nestedFixture]()
	out, err := enc.Encode(&in, NewGrowable())
	if err != nil {
		t.Fatal(err)
	}
	dec := NewDecoder[nestedFixture]()
	got, err := dec.Decode(out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Inner.Name != in.Inner.Name || got.Count != in.Count {
		t.Fatalf("got %+v want %+v", got, in)
	}
}

func TestEncodeLengthMatchesSizeMeasurer(t *testing.T) {
	in := encoderFixture{Name: "measured", Age: 5, Tags: []string{"x"}, Weights: map[string]uint32{}}
	enc := NewEncoder[encoderFixture]()
	out, err := enc.Encode(&in, NewGrowable())
	if err != nil {
		t.Fatal(err)
	}

	var m SizeMeasurer
	s := NewSerializer(&m)
	if err := s.Str(in.Name); err != nil {
		t.Fatal(err)
	}
	if err := s.U8(in.Age); err != nil {
		t.Fatal(err)
	}
	if err := s.SeqLen(len(in.Tags)); err != nil {
		t.Fatal(err)
	}
	for _, tag := range in.Tags {
		if err := s.Str(tag); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.SeqLen(len(in.Scores)); err != nil {
		t.Fatal(err)
	}
	if err := s.OptionNone(); err != nil {
		t.Fatal(err)
	}
	if err := s.MapLen(len(in.Weights)); err != nil {
		t.Fatal(err)
	}

	if len(out) != m.Len() {
		t.Fatalf("encode length %d != size measurer length %d", len(out), m.Len())
	}
}
