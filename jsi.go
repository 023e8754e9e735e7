// Package jsi compiles jsi source to minified JavaScript.
//
// Compilation runs four stages in order: line normalization (see package normalize),
// hoisting of `hoist`-marked lines (see package hoist), replacement of `typeof null`
// by the string literal "null", and minification (see package minify).
package jsi

import (
	"io"
	"strings"

	"github.com/tdewolff/jsi/hoist"
	"github.com/tdewolff/jsi/minify"
	"github.com/tdewolff/jsi/normalize"
	"github.com/tdewolff/parse/v2/buffer"
)

const typeofNull = "typeof null"

const nullString = `"null"`

// DefaultCompiler is the default compiler.
var DefaultCompiler = &Compiler{}

// Compiler compiles jsi source.
type Compiler struct {
	KeepComments bool
}

// Compile compiles jsi source, it reads from r and writes to w.
func Compile(w io.Writer, r io.Reader) error {
	return DefaultCompiler.Compile(w, r)
}

// Bytes compiles an array of bytes.
func Bytes(v []byte) ([]byte, error) {
	return DefaultCompiler.Bytes(v)
}

// String compiles a string.
func String(v string) (string, error) {
	return DefaultCompiler.String(v)
}

// Compile compiles jsi source, it reads from r and writes to w.
func (c *Compiler) Compile(w io.Writer, r io.Reader) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	js, _ := Transform(string(src))

	m := minify.Minifier{KeepComments: c.KeepComments}
	return m.Minify(w, strings.NewReader(js))
}

// Bytes compiles an array of bytes. On error it returns the original bytes.
func (c *Compiler) Bytes(v []byte) ([]byte, error) {
	out := buffer.NewWriter(make([]byte, 0, len(v)))
	if err := c.Compile(out, buffer.NewReader(v)); err != nil {
		return v, err
	}
	return out.Bytes(), nil
}

// String compiles a string. On error it returns the original string.
func (c *Compiler) String(v string) (string, error) {
	out, err := c.Bytes([]byte(v))
	return string(out), err
}

// Transform runs all stages but minification. It returns the hoisted source with `typeof null` replaced,
// and the parameter types declared in function signatures.
func Transform(src string) (string, normalize.Params) {
	lines, params := normalize.Lines(src)
	hoisted, rest := hoist.Partition(lines)
	return ReplaceTypeofNull(hoist.Join(hoisted, rest)), params
}

// ReplaceTypeofNull replaces every `typeof null` by "null", including those within strings and comments.
func ReplaceTypeofNull(s string) string {
	return strings.ReplaceAll(s, typeofNull, nullString)
}
