// Package postwire implements a compact binary serialization wire format
// aimed at resource-constrained and wire/IPC use: small payloads, no
// self-description overhead, deterministic framing.
//
// The package is organized the way the data actually flows:
//
//   - varint.go holds the LEB128 + zig-zag codec every other file builds on.
//   - flavor.go defines the Flavor middleware abstraction: SerializeFlavor
//     and DeserializeFlavor are driven one byte (or byte-run) at a time by
//     the primitive codec in primitive.go.
//   - ser_*.go / de_*.go are the standard sinks, sources, and in-line
//     transforms (COBS framing, checksums) that implement those
//     interfaces.
//   - visitor.go and encoder.go are the front ends: Serializer
//     and Deserializer expose one method per wire kind, and Encoder[T] /
//     Decoder[T] drive them from a struct's reflected shape.
//   - accumulator.go reassembles whole COBS frames out of arbitrary byte
//     chunks arriving off a stream.
//
// Two related packages build on top of this one: postwire/schema describes
// any value expressible in the data model as data, and postwire/dynamic
// replays an encoded message into a different serializer using nothing but
// that schema.
package postwire
