package main

import (
	"fmt"
	"strings"

	"github.com/wippyai/water/ast"
)

// sprintInstruction renders a folded instruction tree with one node
// per line, operands indented under their consumer.
func sprintInstruction(ins ast.Instruction, depth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(sprintOp(ins.Op))
	for _, arg := range ins.Args {
		b.WriteByte('\n')
		b.WriteString(sprintInstruction(arg, depth+1))
	}
	return b.String()
}

func sprintOp(op ast.Op) string {
	switch op := op.(type) {
	case ast.Unreachable:
		return "unreachable"
	case ast.Call:
		return fmt.Sprintf("call %s", op.Target)
	case ast.VariableOp:
		return fmt.Sprintf("%s.%s %s", op.Scope, op.Kind, op.Target)
	case ast.Const:
		return sprintConst(op.Value)
	case ast.Arithmetic:
		return fmt.Sprintf("%s.%s", op.Type, op.Kind)
	case ast.Comparison:
		return fmt.Sprintf("%s.%s", op.Type, op.Kind)
	}
	return fmt.Sprintf("%T", op)
}

func sprintConst(v ast.NumVal) string {
	switch v := v.(type) {
	case ast.I32Val:
		return fmt.Sprintf("i32.const %d", int32(v))
	case ast.I64Val:
		return fmt.Sprintf("i64.const %d", int64(v))
	case ast.F32Val:
		return fmt.Sprintf("f32.const %v", float32(v))
	case ast.F64Val:
		return fmt.Sprintf("f64.const %v", float64(v))
	}
	return fmt.Sprintf("%T", v)
}

func sprintFunction(fn ast.Function) string {
	var b strings.Builder
	b.WriteString("func")
	if !fn.Name.IsZero() {
		b.WriteString(" $")
		b.WriteString(fn.Name.String())
	}
	for _, name := range fn.Exports {
		fmt.Fprintf(&b, "\n  export %q", name)
	}
	for i, p := range fn.Params {
		if p.Name.IsZero() {
			fmt.Fprintf(&b, "\n  param %d %s", i, p.Type)
		} else {
			fmt.Fprintf(&b, "\n  param $%s %s", p.Name, p.Type)
		}
	}
	for i, l := range fn.Locals {
		if l.Name.IsZero() {
			fmt.Fprintf(&b, "\n  local %d %s", len(fn.Params)+i, l.Type)
		} else {
			fmt.Fprintf(&b, "\n  local $%s %s", l.Name, l.Type)
		}
	}
	return b.String()
}
