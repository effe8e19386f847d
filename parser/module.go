package parser

import "github.com/wippyai/water/ast"

// ParseModule parses a `(module)` form. Eats leading whitespace.
func ParseModule(input string) (ast.Module, string, error) {
	inner := func(input string) (ast.Module, string, error) {
		rest, err := tag(space(input), "module")
		if err != nil {
			return ast.Module{}, input, err
		}
		return ast.Module{}, rest, nil
	}

	return Parenthesized(Context("module", inner))(space(input))
}

// ParseProgram parses whitespace-separated modules in source order.
func ParseProgram(input string) (ast.Program, string, error) {
	modules, rest, err := Many0(ParseModule)(input)
	if err != nil {
		return ast.Program{}, input, err
	}
	return ast.Program{Modules: modules}, rest, nil
}
