// Package hoist moves lines marked with the `hoist` prefix in front of all other lines.
package hoist

import "strings"

// Marker is the line prefix that marks a line for hoisting.
const Marker = "hoist"

// Partition splits lines into hoisted and remaining lines, keeping the relative order within each.
// Every occurrence of the marker is removed from a hoisted line, not only the leading one.
func Partition(lines []string) ([]string, []string) {
	hoisted := []string{}
	rest := []string{}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, Marker) {
			hoisted = append(hoisted, strings.TrimSpace(strings.ReplaceAll(line, Marker, "")))
		} else {
			rest = append(rest, line)
		}
	}
	return hoisted, rest
}

// Join concatenates the hoisted and remaining lines, separated by newlines.
func Join(hoisted, rest []string) string {
	lines := make([]string, 0, len(hoisted)+len(rest))
	lines = append(lines, hoisted...)
	lines = append(lines, rest...)
	return strings.Join(lines, "\n")
}
