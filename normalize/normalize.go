// Package normalize splits jsi source into trimmed lines, rewrites the `var` keyword to `let` and records the declared parameter types of function signatures.
package normalize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	varRegexp    = regexp.MustCompile(`var`)
	paramsRegexp = regexp.MustCompile(`\(([^)]*)\)`)
)

// Params maps a parameter name to its declared type. Later declarations overwrite earlier ones.
type Params map[string]string

// Lines returns the trimmed and normalized lines of src together with the declared parameter types.
func Lines(src string) ([]string, Params) {
	params := Params{}
	lines := SplitLines(src)
	for i, line := range lines {
		lines[i] = Line(line, params)
	}
	return lines, params
}

// Line trims a single line and replaces every whole-word `var` by `let`.
// When the line holds both `function` and `=>`, the `name: type` pairs of the first parenthesized list are added to params.
func Line(line string, params Params) string {
	line = strings.TrimSpace(line)
	line = replaceVar(line)
	if params != nil && strings.Contains(line, "function") && strings.Contains(line, "=>") {
		if m := paramsRegexp.FindStringSubmatch(line); m != nil {
			for _, param := range strings.Split(m[1], ",") {
				parts := strings.Split(strings.TrimSpace(param), ":")
				if len(parts) == 2 {
					params[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
				}
			}
		}
	}
	return line
}

// SplitLines splits s at newlines. A carriage return before a newline is dropped and a trailing newline does not start a new line.
func SplitLines(s string) []string {
	lines := []string{}
	for 0 < len(s) {
		i := strings.IndexByte(s, '\n')
		if i == -1 {
			lines = append(lines, s)
			break
		}
		line := s[:i]
		if 0 < len(line) && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		lines = append(lines, line)
		s = s[i+1:]
	}
	return lines
}

// replaceVar replaces `var` by `let` where it is not part of a longer identifier.
// Word characters are Unicode letters, digits and underscores.
func replaceVar(line string) string {
	sb := strings.Builder{}
	start := 0
	for _, loc := range varRegexp.FindAllStringIndex(line, -1) {
		before, _ := utf8.DecodeLastRuneInString(line[:loc[0]])
		after, _ := utf8.DecodeRuneInString(line[loc[1]:])
		if isWordRune(before) || isWordRune(after) {
			continue
		}
		sb.WriteString(line[start:loc[0]])
		sb.WriteString("let")
		start = loc[1]
	}
	if start == 0 {
		return line
	}
	sb.WriteString(line[start:])
	return sb.String()
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
