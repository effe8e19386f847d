// Package water translates WebAssembly text format source into the
// binary instruction encoding.
//
// The pipeline has two stages: a grammar parser that turns source text
// into an AST, and a binary emitter that serializes AST nodes into the
// exact byte sequences the binary format defines.
//
// The library is organized into small packages with one responsibility
// each:
//
//	water/       Root package: parse and emit facades
//	├── ast/     The data model the parser produces
//	├── parser/  Composable grammar rules over string slices
//	├── opcode/  AST node to canonical opcode byte resolution
//	├── leb128/  Variable-length integers and little-endian floats
//	├── emitter/ Byte-sink wrapper emitting node encodings
//	└── waterr/  Structured Phase/Kind errors
//
// Basic usage:
//
//	ins, err := water.ParseInstruction(`(i32.add (i32.const 1) (i32.const 2))`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	n, err := water.EmitInstruction(&buf, ins)
//
// Folded operands are emitted depth-first, left to right, before the
// instruction that consumes them, so the example above produces
// 0x41 0x01 0x41 0x02 0x6A.
//
// Out of scope for now: resolving symbolic indices to numeric offsets,
// assembling complete module sections, and any execution or validation
// of parsed programs.
package water
