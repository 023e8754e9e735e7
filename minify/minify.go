// Package minify removes comments and newlines from jsi code while copying string literals verbatim.
package minify

import (
	"io"

	"github.com/tdewolff/parse/v2"
)

// keywords are copied as whole tokens, checked in this order.
var keywords = [][]byte{
	[]byte("const"),
	[]byte("let"),
	[]byte("var"),
}

type state int

const (
	normalState state = iota
	stringState
	lineCommentState
	blockCommentState
)

////////////////////////////////////////////////////////////////

// DefaultMinifier is the default minifier.
var DefaultMinifier = &Minifier{}

// Minifier is a jsi minifier.
type Minifier struct {
	KeepComments bool
}

// Minify minifies jsi code, it reads from r and writes to w.
func Minify(w io.Writer, r io.Reader) error {
	return DefaultMinifier.Minify(w, r)
}

// Minify minifies jsi code, it reads from r and writes to w.
// Newlines outside of strings and comments are removed, not replaced by a space.
// An unterminated block comment silently runs to the end of the input.
func (o *Minifier) Minify(w io.Writer, r io.Reader) error {
	z := parse.NewInput(r)
	defer z.Restore()

	st := normalState
	var delim byte
	for z.Err() == nil {
		c := z.Peek(0)
		switch st {
		case normalState:
			if c == '/' && (z.Peek(1) == '/' || z.Peek(1) == '*') {
				if !o.KeepComments {
					if err := flush(w, z); err != nil {
						return err
					}
				}
				if z.Peek(1) == '/' {
					st = lineCommentState
				} else {
					st = blockCommentState
				}
				z.Move(2)
			} else if c == '"' || c == '\'' {
				st = stringState
				delim = c
				z.Move(1)
			} else if n := keywordLen(z); 0 < n {
				z.Move(n)
			} else if c == '\n' {
				if err := flush(w, z); err != nil {
					return err
				}
				z.Move(1)
				z.Skip()
			} else {
				z.Move(1)
			}
		case stringState:
			// no escape handling, a backslash-escaped delimiter ends the string
			if c == delim {
				st = normalState
			}
			z.Move(1)
		case lineCommentState:
			z.Move(1)
			if c == '\n' {
				st = normalState
				if !o.KeepComments {
					z.Skip()
				}
			}
		case blockCommentState:
			if c == '*' && z.Peek(1) == '/' {
				z.Move(2)
				st = normalState
				if !o.KeepComments {
					z.Skip()
				}
			} else {
				z.Move(1)
			}
		}
	}
	if z.Err() != io.EOF {
		return z.Err()
	}

	if !o.KeepComments && (st == lineCommentState || st == blockCommentState) {
		z.Skip()
	}
	return flush(w, z)
}

// flush writes the pending lexeme and starts a new one.
func flush(w io.Writer, z *parse.Input) error {
	if lexeme := z.Lexeme(); 0 < len(lexeme) {
		if _, err := w.Write(lexeme); err != nil {
			return err
		}
	}
	z.Skip()
	return nil
}

// keywordLen returns the length of the keyword at the cursor, or zero.
// There is no word boundary check, so `lettuce` matches `let`.
func keywordLen(z *parse.Input) int {
Next:
	for _, keyword := range keywords {
		for i, c := range keyword {
			if z.Peek(i) != c {
				continue Next
			}
		}
		return len(keyword)
	}
	return 0
}
