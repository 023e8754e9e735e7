package jsi

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/tdewolff/jsi/normalize"
	"github.com/tdewolff/test"
)

func TestCompile(t *testing.T) {
	var jsiTests = []struct {
		jsi      string
		expected string
	}{
		{"", ""},
		{"var a = 1; // comment\nlet b = 2;", "let a = 1; let b = 2;"},
		{"let y = 2;\nhoist let x = 1;", "let x = 1;let y = 2;"},
		{"hoist let x = 1;\nlet y = 2;", "let x = 1;let y = 2;"},
		{"a();\nhoist var b = 1;\nc();\nhoist var d = 2;", "let b = 1;let d = 2;a();c();"},
		{`typeof null === "null"`, `"null" === "null"`},
		{"let s = 'typeof null';", `let s = '"null"';`},
		{"// typeof null\nx", "x"},
		{"let v = variance; /* unterminated", "let v = variance; "},
		{"  var x = 1;  \r\n\t// only a comment\n", "let x = 1;"},
		{"let s = 'a // b';\nvar t = \"c\";", "let s = 'a // b';let t = \"c\";"},
	}

	for _, tt := range jsiTests {
		t.Run(tt.jsi, func(t *testing.T) {
			w := &bytes.Buffer{}
			err := Compile(w, strings.NewReader(tt.jsi))
			test.Error(t, err)
			test.String(t, w.String(), tt.expected)
		})
	}
}

func TestCompileKeepComments(t *testing.T) {
	c := &Compiler{KeepComments: true}
	s, err := c.String("var a = 1; // one\nhoist let b = 2; /* two */")
	test.Error(t, err)
	test.String(t, s, "let b = 2; /* two */let a = 1; // one")
}

func TestTransform(t *testing.T) {
	js, params := Transform("let f = function (n: number) => typeof n\nhoist var x = typeof null;")
	test.String(t, js, "let x = \"null\";\nlet f = function (n: number) => typeof n")
	test.T(t, params, normalize.Params{"n": "number"})
}

func TestReplaceTypeofNull(t *testing.T) {
	var replaceTests = []struct {
		s        string
		expected string
	}{
		{"typeof null", `"null"`},
		{"typeof null == typeof null", `"null" == "null"`},
		{"'typeof null'", `'"null"'`},
		{"typeof nullable", `"null"able`},
		{"typeof  null", "typeof  null"},
		{"typeof x", "typeof x"},
	}

	for _, tt := range replaceTests {
		t.Run(tt.s, func(t *testing.T) {
			test.String(t, ReplaceTypeofNull(tt.s), tt.expected)
		})
	}
}

func TestBytes(t *testing.T) {
	b, err := Bytes([]byte("var a = 1;\nvar b = 2;"))
	test.Error(t, err)
	test.String(t, string(b), "let a = 1;let b = 2;")
}

func TestReaderErrors(t *testing.T) {
	r := test.NewErrorReader(0)
	w := &bytes.Buffer{}
	test.T(t, Compile(w, r), test.ErrPlain, "return error at first read")
}

func TestWriterErrors(t *testing.T) {
	var errorTests = []int{0, 1}

	for _, n := range errorTests {
		// writes:                   0               1
		r := strings.NewReader("let a = 1; // x\nlet b = 2;")
		w := test.NewErrorWriter(n)
		test.T(t, Compile(w, r), test.ErrPlain, fmt.Sprint("return error at write ", n))
	}
}

////////////////////////////////////////////////////////////////

func ExampleCompile() {
	r := strings.NewReader("var a = typeof null;\nhoist var b = 1; // first")
	if err := Compile(os.Stdout, r); err != nil {
		panic(err)
	}
	// Output: let b = 1; let a = "null";
}
