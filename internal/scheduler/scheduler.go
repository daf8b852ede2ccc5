// Package scheduler converts the flat, infix symbol stream produced by the
// lexer into a postfix opcode array, using a shunting-yard algorithm, and
// computes the vector-stack high-water mark the resulting program needs.
package scheduler

import (
	"github.com/skx/mathmap/internal/symtab"
)

// Program is a compiled expression: an opcode array (slot 0 holds the
// opcode count), the constant pool it draws on at runtime, and the
// high-water mark of the vector stack required to evaluate it.
type Program struct {
	Code      []int
	Constants []float64
	StackSize int
}

// Schedule performs the evaluation-order sort described in spec.md §4.6.
// symbols is the list of symbol-table indices produced by the lexer, in
// parse (infix) order; constants is the parallel pool the lexer built up
// (literal values, variable indices, and back-patched variadic argument
// counts), consumed here in the same order symbols were originally parsed.
func Schedule(symbols []int, constants []float64) Program {
	var (
		stack []int // pending-symbol stack, reusing push-down semantics
		code  []int // emitted opcodes, slot 0 reserved for the count below
		icon  int   // position in the constant pool, emission order
		depth int   // running stack depth
		high  int   // high-water mark
		flush bool  // one-shot: force-pop the matching opener
	)

	code = append(code, 0) // placeholder for the opcode count

	isym := 0
	for len(stack) > 0 || isym < len(symbols) {

		var push bool
		switch {
		case len(stack) == 0:
			push = true
		case isym >= len(symbols):
			push = false
		case flush:
			push = false
			flush = false
		default:
			next := symtab.Table[symbols[isym]]
			top := symtab.Table[stack[len(stack)-1]]
			push = next.LeftPriority > top.RightPriority
		}

		if push {
			sym := symbols[isym]
			isym++
			if symtab.Table[sym].ParenIncrement < 0 {
				flush = true
			} else {
				stack = append(stack, sym)
			}
			continue
		}

		sym := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if sym == symtab.SymLDVAR || sym == symtab.SymLDCON {
			icon++
		}

		s := symtab.Table[sym]
		if s.Opcode == symtab.NULL {
			continue
		}

		code = append(code, int(s.Opcode))

		if s.NArgs >= 0 {
			depth += s.StackIncrement
		} else {
			k := int(constants[icon] + 0.5)
			icon++
			depth -= k - 1
		}

		if depth > high {
			high = depth
		}
	}

	ncode := len(code) - 1
	code[0] = ncode

	return Program{Code: code, Constants: constants, StackSize: maxInt(high, 1)}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
