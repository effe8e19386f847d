package ast

import (
	"strings"
	"testing"
)

func TestInternSymbols(t *testing.T) {
	a := Intern("add")
	b := Intern("add")
	c := Intern("sub")

	if a != b {
		t.Error("interning the same name twice gave different symbols")
	}
	if a == c {
		t.Error("distinct names interned to the same symbol")
	}
	if a.String() != "add" || c.String() != "sub" {
		t.Errorf("String() = %q, %q", a.String(), c.String())
	}
}

func TestZeroSymbol(t *testing.T) {
	var zero Symbol
	if !zero.IsZero() {
		t.Error("zero value Symbol is not IsZero")
	}
	if zero.String() != "" {
		t.Errorf("zero Symbol String() = %q", zero.String())
	}
	if empty := Intern(""); !empty.IsZero() {
		t.Error("interning the empty string did not give the zero Symbol")
	}
	if Intern("x").IsZero() {
		t.Error("interned symbol reports IsZero")
	}
}

func TestNewFunctionImport(t *testing.T) {
	sig := Function{
		Name:   Intern("log"),
		Params: []Parameter{{Type: F32}, {Type: F32}},
	}
	imp := NewFunctionImport("console", "log", sig)
	if imp.Namespace != "console" || imp.Name != "log" || len(imp.Sig.Params) != 2 {
		t.Errorf("got %+v", imp)
	}
}

func TestNewFunctionImportRejectsBodies(t *testing.T) {
	tests := []struct {
		name string
		sig  Function
		want string
	}{
		{"exports", Function{Exports: []string{"f"}}, "export"},
		{"locals", Function{Locals: []Local{{Type: I32}}}, "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("NewFunctionImport did not abort")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, tt.want) {
					t.Errorf("abort message %v does not mention %q", r, tt.want)
				}
			}()
			NewFunctionImport("a", "b", tt.sig)
		})
	}
}

func TestStringForms(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{I32.String(), "i32"},
		{F64.String(), "f64"},
		{SymIndex{Name: Intern("idx")}.String(), "$idx"},
		{NumIndex(7).String(), "7"},
		{ScopeGlobal.String(), "global"},
		{VarTee.String(), "tee"},
		{DivFloat.String(), "div"},
		{RemUnsigned.String(), "rem_u"},
		{Le.String(), "le"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
