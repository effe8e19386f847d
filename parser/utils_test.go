package parser

import (
	"testing"

	"github.com/wippyai/water/ast"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		rest    string
		wantErr bool
	}{
		{"simple", "$idx", "idx", "", false},
		{"punctuation", "$asd_aa? a", "asd_aa?", " a", false},
		{"full set", "$a!#$%&*+-./:<=>?@\\^_`|~0Z", "a!#$%&*+-./:<=>?@\\^_`|~0Z", "", false},
		{"stops at paren", "$add)", "add", ")", false},
		{"empty after sigil", "$ x", "", "", true},
		{"missing sigil", "idx", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym, rest, err := ParseIdentifier(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseIdentifier(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseIdentifier(%q): %v", tt.input, err)
			}
			if sym.String() != tt.want || rest != tt.rest {
				t.Errorf("ParseIdentifier(%q) = (%q, %q), want (%q, %q)",
					tt.input, sym.String(), rest, tt.want, tt.rest)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input string
		want  ast.NumType
	}{
		{"i32", ast.I32},
		{"i64", ast.I64},
		{"f32", ast.F32},
		{"f64", ast.F64},
	}
	for _, tt := range tests {
		typ, rest, err := ParseType(tt.input)
		if err != nil {
			t.Fatalf("ParseType(%q): %v", tt.input, err)
		}
		if typ != tt.want || rest != "" {
			t.Errorf("ParseType(%q) = (%v, %q)", tt.input, typ, rest)
		}
	}

	if _, _, err := ParseType("i16"); err == nil {
		t.Error("ParseType(\"i16\") succeeded, want error")
	}
}

func TestParseIndex(t *testing.T) {
	idx, rest, err := ParseIndex("$var")
	if err != nil {
		t.Fatalf("ParseIndex($var): %v", err)
	}
	sym, ok := idx.(ast.SymIndex)
	if !ok || sym.Name.String() != "var" || rest != "" {
		t.Errorf("ParseIndex($var) = (%v, %q)", idx, rest)
	}

	idx, rest, err = ParseIndex("5 next")
	if err != nil {
		t.Fatalf("ParseIndex(5): %v", err)
	}
	if n, ok := idx.(ast.NumIndex); !ok || n != 5 || rest != " next" {
		t.Errorf("ParseIndex(5) = (%v, %q)", idx, rest)
	}

	if _, _, err := ParseIndex("abc"); err == nil {
		t.Error("ParseIndex(abc) succeeded, want error")
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		rest    string
		wantErr bool
	}{
		{"simple", `"add" x`, "add", " x", false},
		{"empty", `""`, "", "", false},
		{"escaped quote", `"a\"b"`, `a\"b`, "", false},
		{"escaped backslash", `"a\\"`, `a\\`, "", false},
		{"unterminated", `"abc`, "", "", true},
		{"bare escape at end", `"abc\`, "", "", true},
		{"not a string", `abc"`, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rest, err := ParseString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseString(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseString(%q): %v", tt.input, err)
			}
			if s != tt.want || rest != tt.rest {
				t.Errorf("ParseString(%q) = (%q, %q), want (%q, %q)", tt.input, s, rest, tt.want, tt.rest)
			}
		})
	}
}
