// Package kaitaistream implements the runtime stream engine that
// declarative-binary-format parser/serializer code is built on: a
// seekable, dual-mode (read/write) cursor over a pluggable backing store,
// typed primitive reads and writes in both endiannesses, a bit-level
// accumulator supporting both bit orders, terminator- and length-limited
// byte-array reads, substreams carved from a parent, a write-back
// mechanism for placeholder values whose size is only known after the
// fact, and a small suite of byte-transform helpers.
//
// Every primitive read/write, bit extraction, substream carve-out,
// terminator search, and validation check a generated parser performs
// delegates to this package; its contracts are what make generated code in
// different host languages produce identical bytes for identical inputs.
package kaitaistream
