package water

import (
	"io"

	"github.com/wippyai/water/ast"
	"github.com/wippyai/water/emitter"
	"github.com/wippyai/water/parser"
	"github.com/wippyai/water/waterr"
)

// ParseProgram parses source as a whole program: whitespace-separated
// modules down to the end of input.
func ParseProgram(source string) (ast.Program, error) {
	p, rest, err := parser.ParseProgram(source)
	if err != nil {
		return ast.Program{}, waterr.ParseFailed("program", err)
	}
	if rest = parser.SkipSpace(rest); rest != "" {
		return ast.Program{}, waterr.New(waterr.PhaseParse, waterr.KindUnexpected).
			Detail("trailing input after program: %.24q", rest).
			Build()
	}
	return p, nil
}

// ParseModule parses source as a single `(module)` form, requiring the
// whole input to be consumed.
func ParseModule(source string) (ast.Module, error) {
	m, rest, err := parser.ParseModule(source)
	if err != nil {
		return ast.Module{}, waterr.ParseFailed("module", err)
	}
	if rest = parser.SkipSpace(rest); rest != "" {
		return ast.Module{}, waterr.New(waterr.PhaseParse, waterr.KindUnexpected).
			Detail("trailing input after module: %.24q", rest).
			Build()
	}
	return m, nil
}

// ParseFunction parses source as a single function definition,
// requiring the whole input to be consumed.
func ParseFunction(source string) (ast.Function, error) {
	fn, rest, err := parser.ParseFunction(parser.SkipSpace(source))
	if err != nil {
		return ast.Function{}, waterr.ParseFailed("function", err)
	}
	if rest = parser.SkipSpace(rest); rest != "" {
		return ast.Function{}, waterr.New(waterr.PhaseParse, waterr.KindUnexpected).
			Detail("trailing input after function: %.24q", rest).
			Build()
	}
	return fn, nil
}

// ParseInstruction parses source as a single instruction, plain or
// folded, requiring the whole input to be consumed.
func ParseInstruction(source string) (ast.Instruction, error) {
	ins, rest, err := parser.ParseInstruction(parser.SkipSpace(source))
	if err != nil {
		return ast.Instruction{}, waterr.ParseFailed("instruction", err)
	}
	if rest = parser.SkipSpace(rest); rest != "" {
		return ast.Instruction{}, waterr.New(waterr.PhaseParse, waterr.KindUnexpected).
			Detail("trailing input after instruction: %.24q", rest).
			Build()
	}
	return ins, nil
}

// EmitProgram writes the binary preamble for p to w and returns the
// number of bytes written.
func EmitProgram(w io.Writer, p ast.Program) (int, error) {
	return emitter.New(w).Program(p)
}

// EmitInstruction writes the binary encoding of a folded instruction
// tree to w and returns the number of bytes written.
func EmitInstruction(w io.Writer, ins ast.Instruction) (int, error) {
	return emitter.New(w).Instruction(ins)
}
