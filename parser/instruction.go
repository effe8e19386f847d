package parser

import "github.com/wippyai/water/ast"

// ParseInstruction parses an instruction, either plain or folded.
//
// A plain instruction is a bare operation: `i32.const 5`. The folded
// form wraps the operation in parentheses and nests its operands as
// further instructions: `(i32.add (i32.const 1) (i32.const 2))`.
// Operands evaluate depth-first, left to right.
//
// Does not eat leading whitespace.
func ParseInstruction(input string) (ast.Instruction, string, error) {
	return Alt(parsePlain, Parenthesized(parseFolded))(input)
}

func parsePlain(input string) (ast.Instruction, string, error) {
	op, rest, err := ParseOpcode(input)
	if err != nil {
		return ast.Instruction{}, input, err
	}
	return ast.Instruction{Op: op}, rest, nil
}

func parseFolded(input string) (ast.Instruction, string, error) {
	op, rest, err := ParseOpcode(input)
	if err != nil {
		return ast.Instruction{}, input, err
	}
	args, rest, err := Many0(func(input string) (ast.Instruction, string, error) {
		return ParseInstruction(space(input))
	})(rest)
	if err != nil {
		return ast.Instruction{}, input, err
	}
	return ast.Instruction{Op: op, Args: args}, rest, nil
}

// ParseOpcode parses a bare operation with its immediates: a variable
// access, a constant, an arithmetic or comparison operation, the
// unreachable marker, or a call.
func ParseOpcode(input string) (ast.Op, string, error) {
	return Alt(
		parseVariableOp,
		func(input string) (ast.Op, string, error) {
			v, rest, err := ParseConst(input)
			if err != nil {
				return nil, input, err
			}
			return ast.Const{Value: v}, rest, nil
		},
		parseNumericOp,
		keyword[ast.Op]("unreachable", ast.Unreachable{}),
		Context("call", parseCall),
	)(input)
}

// parseNumericOp parses a typed arithmetic or comparison mnemonic,
// e.g. `i32.add`, `f64.div`, `i64.lt_s`. The mnemonic set depends on
// the type: integer types take the signed/unsigned division,
// remainder and ordering forms, float types the plain ones, so the
// parser can never produce a (type, operation) pair the instruction
// set lacks.
func parseNumericOp(input string) (ast.Op, string, error) {
	typ, rest, err := ParseType(input)
	if err != nil {
		return nil, input, err
	}
	rest, err = tag(rest, ".")
	if err != nil {
		return nil, input, err
	}

	integer := typ == ast.I32 || typ == ast.I64

	arith := []struct {
		lit  string
		kind ast.ArithKind
		ok   bool
	}{
		{"add", ast.Add, true},
		{"sub", ast.Sub, true},
		{"mul", ast.Mul, true},
		{"div_s", ast.DivSigned, integer},
		{"div_u", ast.DivUnsigned, integer},
		{"rem_s", ast.RemSigned, integer},
		{"rem_u", ast.RemUnsigned, integer},
		{"div", ast.DivFloat, !integer},
	}
	for _, a := range arith {
		if !a.ok {
			continue
		}
		if r, ok := mnemonic(rest, a.lit); ok {
			return ast.Arithmetic{Type: typ, Kind: a.kind}, r, nil
		}
	}

	cmp := []struct {
		lit  string
		kind ast.CmpKind
		ok   bool
	}{
		{"eq", ast.Eq, true},
		{"ne", ast.Ne, true},
		{"gt_s", ast.Gt, integer},
		{"lt_s", ast.Lt, integer},
		{"ge_s", ast.Ge, integer},
		{"le_s", ast.Le, integer},
		{"gt", ast.Gt, !integer},
		{"lt", ast.Lt, !integer},
		{"ge", ast.Ge, !integer},
		{"le", ast.Le, !integer},
	}
	for _, c := range cmp {
		if !c.ok {
			continue
		}
		if r, ok := mnemonic(rest, c.lit); ok {
			return ast.Comparison{Type: typ, Kind: c.kind}, r, nil
		}
	}

	return nil, input, expected(rest, "operation mnemonic")
}

// mnemonic matches lit at a token boundary: the next character must
// not continue an identifier, so `eq` does not claim the front of
// `eqz`.
func mnemonic(input, lit string) (string, bool) {
	rest, err := tag(input, lit)
	if err != nil {
		return input, false
	}
	if rest != "" && isIdentChar(rest[0]) {
		return input, false
	}
	return rest, true
}

// ParseConst parses a typed constant such as `i32.const 20` or
// `f32.const 2.2`. The literal grammar is chosen by the declared type
// tag: integer types take signed decimal integers of the matching
// width, float types take the general floating grammar. An f32 literal
// parses as a 64-bit float and is then narrowed, which can lose
// precision right at the 32-bit boundary.
//
// Does not eat leading whitespace.
func ParseConst(input string) (ast.NumVal, string, error) {
	typ, rest, err := ParseType(input)
	if err != nil {
		return nil, input, err
	}
	rest, err = tag(rest, ".const")
	if err != nil {
		return nil, input, err
	}
	rest = space(rest)

	switch typ {
	case ast.I32:
		v, rest, err := parseInt(rest, 32)
		if err != nil {
			return nil, input, err
		}
		return ast.I32Val(int32(v)), rest, nil
	case ast.I64:
		v, rest, err := parseInt(rest, 64)
		if err != nil {
			return nil, input, err
		}
		return ast.I64Val(v), rest, nil
	case ast.F32:
		v, rest, err := parseFloat(rest)
		if err != nil {
			return nil, input, err
		}
		return ast.F32Val(float32(v)), rest, nil
	default:
		v, rest, err := parseFloat(rest)
		if err != nil {
			return nil, input, err
		}
		return ast.F64Val(v), rest, nil
	}
}

// parseCall parses `call` plus its target index.
func parseCall(input string) (ast.Op, string, error) {
	rest, err := tag(input, "call")
	if err != nil {
		return nil, input, err
	}
	target, rest, err := Context("numerical index or identifier", ParseIndex)(space(rest))
	if err != nil {
		return nil, input, err
	}
	return ast.Call{Target: target}, rest, nil
}

// parseVariableOp parses a direct variable access such as
// `local.get $x` or `global.set 2`. `global.tee` is not an
// instruction and never parses.
func parseVariableOp(input string) (ast.Op, string, error) {
	scope, rest, err := Alt(
		keyword("global", ast.ScopeGlobal),
		keyword("local", ast.ScopeLocal),
	)(input)
	if err != nil {
		return nil, input, err
	}

	get := keyword(".get", ast.VarGet)
	set := keyword(".set", ast.VarSet)
	tee := keyword(".tee", ast.VarTee)

	var kind ast.VarKind
	if scope == ast.ScopeGlobal {
		kind, rest, err = Alt(set, get)(rest)
	} else {
		kind, rest, err = Alt(set, get, tee)(rest)
	}
	if err != nil {
		return nil, input, err
	}

	target, rest, err := ParseIndex(space(rest))
	if err != nil {
		return nil, input, err
	}

	return ast.VariableOp{Scope: scope, Kind: kind, Target: target}, rest, nil
}
