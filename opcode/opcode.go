// Package opcode maps AST operations to their canonical binary opcode
// bytes.
//
// Resolution is a pure function: every supported (type, operation) pair
// has exactly one byte. Unsupported pairs — global.tee, float division
// on integer types, signed/unsigned division or remainder on float
// types — do not exist in the instruction set and are internal
// invariant violations: the parser cannot produce them, so hitting one
// means a hand-built tree or a resolver bug, and resolution aborts
// rather than picking a default.
package opcode

import (
	"fmt"

	"github.com/wippyai/water/ast"
)

const (
	// Unreachable is the trap marker opcode.
	Unreachable byte = 0x00
	// Call is the direct call opcode.
	Call byte = 0x10
)

// Resolve returns the opcode byte for op.
func Resolve(op ast.Op) byte {
	switch op := op.(type) {
	case ast.Unreachable:
		return Unreachable
	case ast.Call:
		return Call
	case ast.VariableOp:
		return Variable(op.Scope, op.Kind)
	case ast.Const:
		return Constant(op.Value)
	case ast.Arithmetic:
		return Arithmetic(op.Type, op.Kind)
	case ast.Comparison:
		return Comparison(op.Type, op.Kind)
	}
	panic(fmt.Sprintf("opcode: unknown operation %T", op))
}

// Constant returns the `const` opcode for the value's type.
func Constant(v ast.NumVal) byte {
	switch v.(type) {
	case ast.I32Val:
		return 0x41
	case ast.I64Val:
		return 0x42
	case ast.F32Val:
		return 0x43
	case ast.F64Val:
		return 0x44
	}
	panic(fmt.Sprintf("opcode: unknown numeric value %T", v))
}

// Variable returns the opcode for a variable access. Global tee does
// not exist and aborts.
func Variable(scope ast.Scope, kind ast.VarKind) byte {
	switch {
	case scope == ast.ScopeLocal && kind == ast.VarGet:
		return 0x20
	case scope == ast.ScopeLocal && kind == ast.VarSet:
		return 0x21
	case scope == ast.ScopeLocal && kind == ast.VarTee:
		return 0x22
	case scope == ast.ScopeGlobal && kind == ast.VarGet:
		return 0x23
	case scope == ast.ScopeGlobal && kind == ast.VarSet:
		return 0x24
	}
	panic(fmt.Sprintf("opcode: no instruction for %v.%v", scope, kind))
}

// Arithmetic returns the opcode for an arithmetic operation on the
// given type. Integer float-division and float signed/unsigned
// division or remainder abort.
func Arithmetic(t ast.NumType, k ast.ArithKind) byte {
	op, ok := arithmetic[struct {
		t ast.NumType
		k ast.ArithKind
	}{t, k}]
	if !ok {
		panic(fmt.Sprintf("opcode: no instruction for %v.%v", t, k))
	}
	return op
}

var arithmetic = map[struct {
	t ast.NumType
	k ast.ArithKind
}]byte{
	{ast.I32, ast.Add}:         0x6A,
	{ast.I32, ast.Sub}:         0x6B,
	{ast.I32, ast.Mul}:         0x6C,
	{ast.I32, ast.DivSigned}:   0x6D,
	{ast.I32, ast.DivUnsigned}: 0x6E,
	{ast.I32, ast.RemSigned}:   0x6F,
	{ast.I32, ast.RemUnsigned}: 0x70,

	{ast.I64, ast.Add}:         0x7C,
	{ast.I64, ast.Sub}:         0x7D,
	{ast.I64, ast.Mul}:         0x7E,
	{ast.I64, ast.DivSigned}:   0x7F,
	{ast.I64, ast.DivUnsigned}: 0x80,
	{ast.I64, ast.RemSigned}:   0x81,
	{ast.I64, ast.RemUnsigned}: 0x82,

	{ast.F32, ast.Add}:      0x92,
	{ast.F32, ast.Sub}:      0x93,
	{ast.F32, ast.Mul}:      0x94,
	{ast.F32, ast.DivFloat}: 0x95,

	{ast.F64, ast.Add}:      0xA0,
	{ast.F64, ast.Sub}:      0xA1,
	{ast.F64, ast.Mul}:      0xA2,
	{ast.F64, ast.DivFloat}: 0xA3,
}

// Comparison returns the opcode for a comparison on the given type.
// Integer orderings resolve to the signed forms.
func Comparison(t ast.NumType, k ast.CmpKind) byte {
	op, ok := comparison[struct {
		t ast.NumType
		k ast.CmpKind
	}{t, k}]
	if !ok {
		panic(fmt.Sprintf("opcode: no instruction for %v.%v", t, k))
	}
	return op
}

var comparison = map[struct {
	t ast.NumType
	k ast.CmpKind
}]byte{
	{ast.I32, ast.Eq}: 0x46,
	{ast.I32, ast.Ne}: 0x47,
	{ast.I32, ast.Lt}: 0x48,
	{ast.I32, ast.Gt}: 0x4A,
	{ast.I32, ast.Le}: 0x4C,
	{ast.I32, ast.Ge}: 0x4E,

	{ast.I64, ast.Eq}: 0x51,
	{ast.I64, ast.Ne}: 0x52,
	{ast.I64, ast.Lt}: 0x53,
	{ast.I64, ast.Gt}: 0x55,
	{ast.I64, ast.Le}: 0x57,
	{ast.I64, ast.Ge}: 0x59,

	{ast.F32, ast.Eq}: 0x5B,
	{ast.F32, ast.Ne}: 0x5C,
	{ast.F32, ast.Lt}: 0x5D,
	{ast.F32, ast.Gt}: 0x5E,
	{ast.F32, ast.Le}: 0x5F,
	{ast.F32, ast.Ge}: 0x60,

	{ast.F64, ast.Eq}: 0x61,
	{ast.F64, ast.Ne}: 0x62,
	{ast.F64, ast.Lt}: 0x63,
	{ast.F64, ast.Gt}: 0x64,
	{ast.F64, ast.Le}: 0x65,
	{ast.F64, ast.Ge}: 0x66,
}
