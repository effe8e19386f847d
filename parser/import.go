package parser

import "github.com/wippyai/water/ast"

// ParseImport parses a function import: a namespace, a name, and the
// imported function's signature.
//
//	(import "console" "log" (func $log (param f32) (param f32)))
//
// An import describes only a call contract; a signature carrying
// exports or locals aborts (see ast.NewFunctionImport).
func ParseImport(input string) (ast.FunctionImport, string, error) {
	inner := func(input string) (ast.FunctionImport, string, error) {
		rest, err := tag(space(input), "import")
		if err != nil {
			return ast.FunctionImport{}, input, err
		}

		namespace, rest, err := Cut(Context("import namespace", ParseString))(space(rest))
		if err != nil {
			return ast.FunctionImport{}, input, err
		}
		name, rest, err := Cut(Context("import name", ParseString))(space(rest))
		if err != nil {
			return ast.FunctionImport{}, input, err
		}
		sig, rest, err := Cut(ParseFunction)(space(rest))
		if err != nil {
			return ast.FunctionImport{}, input, err
		}

		return ast.NewFunctionImport(namespace, name, sig), rest, nil
	}

	return Parenthesized(Context("function import", inner))(input)
}
