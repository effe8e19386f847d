// Package emitter serializes AST nodes into the binary instruction
// encoding.
//
// An Emitter wraps a byte sink for the duration of an emission session
// and owns it exclusively. Every emit operation writes the node's
// opcode byte followed by its operand encoding and returns the number
// of bytes written, so callers can verify or compose output sizes.
// A sink write failure aborts the remaining emission immediately and
// leaves the sink in an undefined partial state; the caller must
// discard it.
package emitter

import (
	"io"

	"github.com/wippyai/water/ast"
	"github.com/wippyai/water/leb128"
	"github.com/wippyai/water/opcode"
	"github.com/wippyai/water/waterr"
)

// Magic is the 4-byte marker opening every emitted program.
var Magic = [4]byte{0x00, 0x61, 0x73, 0x6D}

// Version is the 4-byte version marker written after Magic. These are
// the ASCII bytes of "1000", not the binary format's little-endian 1;
// kept as observed in the reference output, pending clarification.
var Version = [4]byte{'1', '0', '0', '0'}

// Emitter writes binary encodings of AST nodes to a byte sink.
type Emitter struct {
	w io.Writer
}

// New returns an Emitter writing to w. The Emitter assumes exclusive
// ownership of w until the session ends.
func New(w io.Writer) *Emitter {
	return &Emitter{w: w}
}

// Program writes the fixed file preamble: magic then version. Section
// assembly is a later stage; nothing of the program body is written
// yet.
func (e *Emitter) Program(p ast.Program) (int, error) {
	n, err := e.w.Write(Magic[:])
	if err != nil {
		return n, err
	}
	m, err := e.w.Write(Version[:])
	n += m
	if err != nil {
		return n, err
	}
	debugf("emitted preamble", "modules", len(p.Modules), "bytes", n)
	return n, nil
}

// Instruction writes a folded instruction tree: operands first,
// depth-first and left to right, then the operation that consumes
// them.
func (e *Emitter) Instruction(ins ast.Instruction) (int, error) {
	var n int
	for _, arg := range ins.Args {
		m, err := e.Instruction(arg)
		n += m
		if err != nil {
			return n, err
		}
	}
	m, err := e.Op(ins.Op)
	n += m
	return n, err
}

// Op writes a single operation: its opcode byte, then its immediate
// operands.
func (e *Emitter) Op(op ast.Op) (int, error) {
	switch op := op.(type) {
	case ast.Unreachable:
		return e.Unreachable()
	case ast.Call:
		return e.Call(op)
	case ast.VariableOp:
		return e.Variable(op)
	case ast.Const:
		return e.Constant(op.Value)
	case ast.Arithmetic:
		return e.Arithmetic(op)
	case ast.Comparison:
		return e.Comparison(op)
	}
	return 0, waterr.Unsupported(waterr.PhaseEmit, "unknown operation")
}

// Unreachable writes the trap marker. It carries no operands and is
// valid regardless of surrounding arity.
func (e *Emitter) Unreachable() (int, error) {
	return e.writeByte(opcode.Unreachable)
}

// Constant writes a `const` instruction: the opcode for the value's
// type, then the literal. Integers use the signed variable-length
// encoding; floats are fixed-width little-endian bit patterns.
func (e *Emitter) Constant(v ast.NumVal) (int, error) {
	n, err := e.writeByte(opcode.Constant(v))
	if err != nil {
		return n, err
	}

	var m int
	switch v := v.(type) {
	case ast.I32Val:
		m, err = leb128.WriteSigned(e.w, int64(v))
	case ast.I64Val:
		m, err = leb128.WriteSigned(e.w, int64(v))
	case ast.F32Val:
		m, err = leb128.WriteFloat32(e.w, float32(v))
	case ast.F64Val:
		m, err = leb128.WriteFloat64(e.w, float64(v))
	}
	return n + m, err
}

// Arithmetic writes an arithmetic operation. The operands themselves
// are emitted by the enclosing instruction tree, not here.
func (e *Emitter) Arithmetic(op ast.Arithmetic) (int, error) {
	return e.writeByte(opcode.Arithmetic(op.Type, op.Kind))
}

// Comparison writes a comparison operation.
func (e *Emitter) Comparison(op ast.Comparison) (int, error) {
	return e.writeByte(opcode.Comparison(op.Type, op.Kind))
}

// Variable writes a variable access: opcode then index.
func (e *Emitter) Variable(op ast.VariableOp) (int, error) {
	n, err := e.writeByte(opcode.Variable(op.Scope, op.Kind))
	if err != nil {
		return n, err
	}
	m, err := e.Index(op.Target)
	return n + m, err
}

// Call writes a direct call: opcode then target index.
func (e *Emitter) Call(op ast.Call) (int, error) {
	n, err := e.writeByte(opcode.Call)
	if err != nil {
		return n, err
	}
	m, err := e.Index(op.Target)
	return n + m, err
}

// Index writes a numeric index with the unsigned variable-length
// encoding. Symbolic indices have no binary form until a resolution
// pass exists, so emitting one fails.
func (e *Emitter) Index(idx ast.Index) (int, error) {
	switch idx := idx.(type) {
	case ast.NumIndex:
		return leb128.WriteUnsigned(e.w, uint64(idx))
	case ast.SymIndex:
		return 0, waterr.Unsupported(waterr.PhaseEmit,
			"symbolic index $"+idx.Name.String()+" (name resolution not implemented)")
	}
	return 0, waterr.Unsupported(waterr.PhaseEmit, "unknown index form")
}

func (e *Emitter) writeByte(b byte) (int, error) {
	return e.w.Write([]byte{b})
}
