package opcode

import (
	"testing"

	"github.com/wippyai/water/ast"
)

func TestResolveFixed(t *testing.T) {
	tests := []struct {
		name string
		op   ast.Op
		want byte
	}{
		{"unreachable", ast.Unreachable{}, 0x00},
		{"call", ast.Call{Target: ast.NumIndex(3)}, 0x10},
		{"i32.const", ast.Const{Value: ast.I32Val(5)}, 0x41},
		{"i64.const", ast.Const{Value: ast.I64Val(5)}, 0x42},
		{"f32.const", ast.Const{Value: ast.F32Val(5)}, 0x43},
		{"f64.const", ast.Const{Value: ast.F64Val(5)}, 0x44},
		{"local.get", ast.VariableOp{Scope: ast.ScopeLocal, Kind: ast.VarGet}, 0x20},
		{"local.set", ast.VariableOp{Scope: ast.ScopeLocal, Kind: ast.VarSet}, 0x21},
		{"local.tee", ast.VariableOp{Scope: ast.ScopeLocal, Kind: ast.VarTee}, 0x22},
		{"global.get", ast.VariableOp{Scope: ast.ScopeGlobal, Kind: ast.VarGet}, 0x23},
		{"global.set", ast.VariableOp{Scope: ast.ScopeGlobal, Kind: ast.VarSet}, 0x24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.op); got != tt.want {
				t.Errorf("Resolve(%s) = %#02x, want %#02x", tt.name, got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		typ  ast.NumType
		kind ast.ArithKind
		want byte
	}{
		{"i32.add", ast.I32, ast.Add, 0x6A},
		{"i32.sub", ast.I32, ast.Sub, 0x6B},
		{"i32.mul", ast.I32, ast.Mul, 0x6C},
		{"i32.div_s", ast.I32, ast.DivSigned, 0x6D},
		{"i32.div_u", ast.I32, ast.DivUnsigned, 0x6E},
		{"i32.rem_s", ast.I32, ast.RemSigned, 0x6F},
		{"i32.rem_u", ast.I32, ast.RemUnsigned, 0x70},
		{"i64.add", ast.I64, ast.Add, 0x7C},
		{"i64.sub", ast.I64, ast.Sub, 0x7D},
		{"i64.mul", ast.I64, ast.Mul, 0x7E},
		{"i64.div_s", ast.I64, ast.DivSigned, 0x7F},
		{"i64.div_u", ast.I64, ast.DivUnsigned, 0x80},
		{"i64.rem_s", ast.I64, ast.RemSigned, 0x81},
		{"i64.rem_u", ast.I64, ast.RemUnsigned, 0x82},
		{"f32.add", ast.F32, ast.Add, 0x92},
		{"f32.sub", ast.F32, ast.Sub, 0x93},
		{"f32.mul", ast.F32, ast.Mul, 0x94},
		{"f32.div", ast.F32, ast.DivFloat, 0x95},
		{"f64.add", ast.F64, ast.Add, 0xA0},
		{"f64.sub", ast.F64, ast.Sub, 0xA1},
		{"f64.mul", ast.F64, ast.Mul, 0xA2},
		{"f64.div", ast.F64, ast.DivFloat, 0xA3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Resolution is pure: same byte on repeated calls.
			for i := 0; i < 3; i++ {
				if got := Arithmetic(tt.typ, tt.kind); got != tt.want {
					t.Fatalf("Arithmetic(%v, %v) = %#02x, want %#02x", tt.typ, tt.kind, got, tt.want)
				}
			}
		})
	}
}

func TestComparison(t *testing.T) {
	tests := []struct {
		name string
		typ  ast.NumType
		kind ast.CmpKind
		want byte
	}{
		{"i32.eq", ast.I32, ast.Eq, 0x46},
		{"i32.ne", ast.I32, ast.Ne, 0x47},
		{"i32.lt_s", ast.I32, ast.Lt, 0x48},
		{"i32.gt_s", ast.I32, ast.Gt, 0x4A},
		{"i32.le_s", ast.I32, ast.Le, 0x4C},
		{"i32.ge_s", ast.I32, ast.Ge, 0x4E},
		{"i64.eq", ast.I64, ast.Eq, 0x51},
		{"i64.ne", ast.I64, ast.Ne, 0x52},
		{"i64.lt_s", ast.I64, ast.Lt, 0x53},
		{"i64.gt_s", ast.I64, ast.Gt, 0x55},
		{"i64.le_s", ast.I64, ast.Le, 0x57},
		{"i64.ge_s", ast.I64, ast.Ge, 0x59},
		{"f32.eq", ast.F32, ast.Eq, 0x5B},
		{"f32.ne", ast.F32, ast.Ne, 0x5C},
		{"f32.lt", ast.F32, ast.Lt, 0x5D},
		{"f32.gt", ast.F32, ast.Gt, 0x5E},
		{"f32.le", ast.F32, ast.Le, 0x5F},
		{"f32.ge", ast.F32, ast.Ge, 0x60},
		{"f64.eq", ast.F64, ast.Eq, 0x61},
		{"f64.ne", ast.F64, ast.Ne, 0x62},
		{"f64.lt", ast.F64, ast.Lt, 0x63},
		{"f64.gt", ast.F64, ast.Gt, 0x64},
		{"f64.le", ast.F64, ast.Le, 0x65},
		{"f64.ge", ast.F64, ast.Ge, 0x66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				if got := Comparison(tt.typ, tt.kind); got != tt.want {
					t.Fatalf("Comparison(%v, %v) = %#02x, want %#02x", tt.typ, tt.kind, got, tt.want)
				}
			}
		})
	}
}

func TestUnsupportedPairsAbort(t *testing.T) {
	tests := []struct {
		name string
		call func()
	}{
		{"global.tee", func() { Variable(ast.ScopeGlobal, ast.VarTee) }},
		{"i32.div", func() { Arithmetic(ast.I32, ast.DivFloat) }},
		{"i64.div", func() { Arithmetic(ast.I64, ast.DivFloat) }},
		{"f32.div_s", func() { Arithmetic(ast.F32, ast.DivSigned) }},
		{"f32.div_u", func() { Arithmetic(ast.F32, ast.DivUnsigned) }},
		{"f32.rem_s", func() { Arithmetic(ast.F32, ast.RemSigned) }},
		{"f64.rem_u", func() { Arithmetic(ast.F64, ast.RemUnsigned) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s did not abort", tt.name)
				}
			}()
			tt.call()
		})
	}
}
