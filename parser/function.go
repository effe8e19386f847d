package parser

import "github.com/wippyai/water/ast"

// ParseFunction parses a function definition: optional identifier,
// then exports, parameters and locals, each in source order.
//
//	(func $add (export "add") (param $x i32) (param i32) (local f64))
func ParseFunction(input string) (ast.Function, string, error) {
	inner := func(input string) (ast.Function, string, error) {
		rest, err := tag(space(input), "func")
		if err != nil {
			return ast.Function{}, input, err
		}

		name, _, rest, err := Opt(ParseIdentifier)(space(rest))
		if err != nil {
			return ast.Function{}, input, err
		}

		// More than one export per function is allowed; duplicate
		// names are a later stage's concern.
		exports, rest, err := Many0(exportRule)(rest)
		if err != nil {
			return ast.Function{}, input, err
		}
		params, rest, err := Many0(paramRule)(rest)
		if err != nil {
			return ast.Function{}, input, err
		}
		locals, rest, err := Many0(localRule)(rest)
		if err != nil {
			return ast.Function{}, input, err
		}

		fn := ast.Function{
			Name:    name,
			Exports: exports,
			Params:  params,
			Locals:  locals,
		}
		return fn, rest, nil
	}

	return Parenthesized(Context("function", inner))(input)
}

// ParseExport parses an `(export "name")` form. The empty string is a
// valid export name.
func ParseExport(input string) (string, string, error) {
	return exportRule(input)
}

var exportRule = spaced(Parenthesized(Context("export", func(input string) (string, string, error) {
	rest, err := tag(space(input), "export")
	if err != nil {
		return "", input, err
	}
	return Cut(Context("export name", ParseString))(space(rest))
})))

// ParseParameter parses a `(param $name? type)` form.
func ParseParameter(input string) (ast.Parameter, string, error) {
	return paramRule(input)
}

var paramRule = spaced(Parenthesized(Context("parameter", func(input string) (ast.Parameter, string, error) {
	rest, err := tag(space(input), "param")
	if err != nil {
		return ast.Parameter{}, input, err
	}
	name, _, rest, err := Opt(ParseIdentifier)(space(rest))
	if err != nil {
		return ast.Parameter{}, input, err
	}
	typ, rest, err := ParseType(space(rest))
	if err != nil {
		return ast.Parameter{}, input, err
	}
	return ast.Parameter{Name: name, Type: typ}, rest, nil
})))

// ParseLocal parses a `(local $name? type)` form.
func ParseLocal(input string) (ast.Local, string, error) {
	return localRule(input)
}

var localRule = spaced(Parenthesized(Context("local", func(input string) (ast.Local, string, error) {
	rest, err := tag(space(input), "local")
	if err != nil {
		return ast.Local{}, input, err
	}
	name, _, rest, err := Opt(ParseIdentifier)(space(rest))
	if err != nil {
		return ast.Local{}, input, err
	}
	typ, rest, err := ParseType(space(rest))
	if err != nil {
		return ast.Local{}, input, err
	}
	return ast.Local{Name: name, Type: typ}, rest, nil
})))
