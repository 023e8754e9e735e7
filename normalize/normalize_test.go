package normalize

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestLine(t *testing.T) {
	var lineTests = []struct {
		line     string
		expected string
	}{
		{"var x = 1", "let x = 1"},
		{"  var x = 1;  ", "let x = 1;"},
		{"\tvar a = 1, b = var2;", "let a = 1, b = var2;"},
		{"var variance = 2", "let variance = 2"},
		{"let variance = 2", "let variance = 2"},
		{"for (var i in vars) {}", "for (let i in vars) {}"},
		{"x.var = var", "x.let = let"},
		{"invar = avar", "invar = avar"},
		{"var_x = x_var", "var_x = x_var"},
		{"évar = 1", "évar = 1"},
		{"ñvar", "ñvar"},
		{"varé", "varé"},
		{"é var", "é let"},
		{"var1 var", "var1 let"},
		{"", ""},
	}

	for _, tt := range lineTests {
		t.Run(tt.line, func(t *testing.T) {
			test.String(t, Line(tt.line, nil), tt.expected)
		})
	}
}

func TestParams(t *testing.T) {
	var paramTests = []struct {
		line   string
		params Params
	}{
		{"const f = function (a: number, b: string) => a", Params{"a": "number", "b": "string"}},
		{"function(a:number)=>a", Params{"a": "number"}},
		{"function (a: number, b) => a", Params{"a": "number"}},
		{"function (a: x: y) => a", Params{}},
		{"function (a: number => a", Params{}},
		{"function f(a: number) { return a }", Params{}}, // no arrow
		{"const f = (a: number) => a", Params{}},         // no function
		{"function (a: number) => g(b: string)", Params{"a": "number"}},
		{"function () => 1", Params{}},
	}

	for _, tt := range paramTests {
		t.Run(tt.line, func(t *testing.T) {
			params := Params{}
			Line(tt.line, params)
			test.T(t, params, tt.params)
		})
	}
}

func TestLines(t *testing.T) {
	lines, params := Lines("var a = 1; // comment\nlet b = 2;")
	test.T(t, lines, []string{"let a = 1; // comment", "let b = 2;"})
	test.T(t, len(params), 0)

	// last declaration wins
	_, params = Lines("function (x: number) => x\nfunction (x: string) => x\n")
	test.T(t, params, Params{"x": "string"})
}

func TestSplitLines(t *testing.T) {
	var splitTests = []struct {
		s     string
		lines []string
	}{
		{"", []string{}},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"a\n\nb", []string{"a", "", "b"}},
		{"\n", []string{""}},
		{"a\rb", []string{"a\rb"}},
	}

	for _, tt := range splitTests {
		t.Run(fmt.Sprintf("%q", tt.s), func(t *testing.T) {
			test.T(t, SplitLines(tt.s), tt.lines)
		})
	}
}

////////////////////////////////////////////////////////////////

func ExampleLines() {
	lines, params := Lines("var f = function (n: number) => n * 2\nf(var1)")
	fmt.Println(lines[0])
	fmt.Println(lines[1])
	fmt.Println(params["n"])
	// Output:
	// let f = function (n: number) => n * 2
	// f(var1)
	// number
}
