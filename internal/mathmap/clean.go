// Package mathmap ties the symbol table, lexer, scheduler, and vm packages
// together into the front-end described by spec.md §4: cleaning function
// source, extracting variable names and expressions, compiling a whole
// (nin, nout) coordinate transform, and evaluating it.
package mathmap

import (
	"strings"
	"unicode"
)

// CleanFunctions strips every character unicode.IsSpace accepts and
// lowercases what remains, for each function string in raw.
func CleanFunctions(raw []string) []string {
	out := make([]string, len(raw))
	for i, fn := range raw {
		var b strings.Builder
		for _, r := range fn {
			if unicode.IsSpace(r) {
				continue
			}
			b.WriteRune(unicode.ToLower(r))
		}
		out[i] = b.String()
	}
	return out
}
