package parser

import (
	"reflect"
	"testing"

	"github.com/wippyai/water/ast"
)

func TestParseFunction(t *testing.T) {
	input := "(func $add (param $number f64) (param i64) (local $l1 i32) (local f32))"

	fn, rest, err := ParseFunction(input)
	if err != nil {
		t.Fatalf("ParseFunction: %v", err)
	}
	if rest != "" {
		t.Errorf("rest = %q, want empty", rest)
	}

	want := ast.Function{
		Name: ast.Intern("add"),
		Params: []ast.Parameter{
			{Name: ast.Intern("number"), Type: ast.F64},
			{Type: ast.I64},
		},
		Locals: []ast.Local{
			{Name: ast.Intern("l1"), Type: ast.I32},
			{Type: ast.F32},
		},
	}
	if !reflect.DeepEqual(fn, want) {
		t.Errorf("got %+v, want %+v", fn, want)
	}
}

func TestParseFunctionForms(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty", "(func)", false},
		{"anonymous", "(func (param i32))", false},
		{"name only", "(func $f)", false},
		{"exported", `(func $f (export "f") (export "g") (param i32))`, false},
		{"wrong keyword", "(fun $f)", true},
		{"unterminated", "(func $f", true},
		{"param after local", "(func (local i32) (param i32))", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseFunction(tt.input)
			if tt.wantErr && err == nil {
				t.Fatalf("ParseFunction(%q) succeeded, want error", tt.input)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("ParseFunction(%q): %v", tt.input, err)
			}
		})
	}
}

func TestParseExport(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"simple", `(export "add")`, "add", false},
		{"interior whitespace", `(  export  "doSomethingUseful")`, "doSomethingUseful", false},
		{"empty name", `(export"")`, "", false},
		{"missing name", `(export)`, "", true},
		{"unclosed string", `(export ")`, "", true},
		{"missing close paren", `(export "valid"`, "", true},
		{"missing open paren", `export "valid")`, "", true},
		{"no parens", `export "valid"`, "", true},
		{"truncated keyword", `(expor "valid")`, "", true},
		{"case sensitive", `(exporT "valid")`, "", true},
		{"extra quote", `(export "valid"")`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, rest, err := ParseExport(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseExport(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseExport(%q): %v", tt.input, err)
			}
			if name != tt.want || rest != "" {
				t.Errorf("ParseExport(%q) = (%q, %q), want (%q, \"\")", tt.input, name, rest, tt.want)
			}
		})
	}
}

func TestMissingExportNameIsCommitted(t *testing.T) {
	_, _, err := ParseExport(`(export)`)
	se, ok := err.(*SyntaxError)
	if !ok {
		t.Fatalf("got %T, want *SyntaxError", err)
	}
	if !se.Committed() {
		t.Error("missing export name after (export should be committed")
	}
}

func TestParseParameterAndLocal(t *testing.T) {
	p, rest, err := ParseParameter("(param $n f64)")
	if err != nil {
		t.Fatalf("ParseParameter: %v", err)
	}
	if p.Name.String() != "n" || p.Type != ast.F64 || rest != "" {
		t.Errorf("got %+v, rest %q", p, rest)
	}

	l, rest, err := ParseLocal(" (local i32)")
	if err != nil {
		t.Fatalf("ParseLocal: %v", err)
	}
	if !l.Name.IsZero() || l.Type != ast.I32 || rest != "" {
		t.Errorf("got %+v, rest %q", l, rest)
	}

	if _, _, err := ParseParameter("(param $n)"); err == nil {
		t.Error("parameter without type succeeded")
	}
}
