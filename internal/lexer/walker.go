// Package lexer implements the mathmap "symbol walker": a joint
// lexer/validator that turns a cleaned expression string into a flat
// sequence of symbol-table indices plus an ordered constant pool, ready
// for the scheduler to reorder into postfix opcodes.
package lexer

import (
	"strings"

	mmerrors "github.com/skx/mathmap/internal/errors"
	"github.com/skx/mathmap/internal/symtab"
)

// Result is the output of walking one expression: the symbol-index stream
// and the constant pool accumulated alongside it, in parse order.
type Result struct {
	Symbols   []int
	Constants []float64
}

// frameState tracks the bookkeeping needed to validate parenthesis and
// argument structure at one level of nesting.
type frameState struct {
	opener   int // index into symtab.Table of the symbol that opened this depth
	argCount int
}

// Walk scans expr (already cleaned: lowercased, whitespace-stripped) and
// produces its token stream, resolving variable references against vars.
func Walk(expr string, vars []string) (Result, error) {
	w := &walker{expr: expr, vars: vars, opernext: false, unarynext: true}
	return w.run()
}

type walker struct {
	expr string
	vars []string

	pos       int
	opernext  bool
	unarynext bool

	frames []frameState

	result Result
}

func (w *walker) run() (Result, error) {
	n := len(w.expr)

	for w.pos < n {
		symIdx, matched := w.matchSymbol()
		if matched {
			if err := w.validate(symIdx); err != nil {
				return Result{}, err
			}
			w.result.Symbols = append(w.result.Symbols, symIdx)
			w.pos += len(symtab.Table[symIdx].Text)
			w.opernext = !symtab.Table[symIdx].OperRight
			w.unarynext = symtab.Table[symIdx].UnaryNext
			continue
		}

		if w.opernext {
			return Result{}, mmerrors.New(mmerrors.MIOPR,
				"missing or invalid operator", w.expr[:w.pos+1])
		}

		if ok, err := w.tryLiteral(); err != nil {
			return Result{}, err
		} else if ok {
			continue
		}

		if ok, err := w.tryVariable(); err != nil {
			return Result{}, err
		} else if ok {
			continue
		}

		return Result{}, mmerrors.New(mmerrors.MIOPA,
			"missing or invalid operand", w.expr[:w.pos+1])
	}

	if !w.opernext {
		return Result{}, mmerrors.New(mmerrors.MIOPA,
			"expression ends expecting an operand", w.expr)
	}
	if len(w.frames) > 0 {
		return Result{}, mmerrors.New(mmerrors.MRPAR,
			"missing right parenthesis", w.expr)
	}

	return w.result, nil
}

// matchSymbol scans the static table in declared order and returns the
// first entry whose handedness/unary legality matches the walker's current
// state and whose text is a prefix of the remaining input.
func (w *walker) matchSymbol() (int, bool) {
	rest := w.expr[w.pos:]
	for idx, sym := range symtab.Table {
		if sym.Text == "" {
			continue
		}
		if sym.OperLeft != w.opernext {
			continue
		}
		if sym.UnaryOper && !w.unarynext {
			continue
		}
		if strings.HasPrefix(rest, sym.Text) {
			return idx, true
		}
	}
	return 0, false
}

// tryLiteral attempts to parse a numeric literal at the current position.
func (w *walker) tryLiteral() (bool, error) {
	c := w.expr[w.pos]
	if !(c >= '0' && c <= '9') && c != '.' {
		return false, nil
	}

	val, next, err := parseNumber(w.expr, w.pos)
	if err != nil {
		return false, err
	}

	w.result.Symbols = append(w.result.Symbols, symtab.SymLDCON)
	w.result.Constants = append(w.result.Constants, val)
	w.pos = next
	w.opernext = true
	w.unarynext = false
	return true, nil
}

// tryVariable attempts to parse an identifier at the current position and
// resolve it against the declared variable list.
func (w *walker) tryVariable() (bool, error) {
	start := w.pos
	if !isAlpha(w.expr[start]) {
		return false, nil
	}

	i := start + 1
	for i < len(w.expr) && isAlnumOrUnderscore(w.expr[i]) {
		i++
	}
	name := w.expr[start:i]

	for idx, v := range w.vars {
		if v == name {
			w.result.Symbols = append(w.result.Symbols, symtab.SymLDVAR)
			w.result.Constants = append(w.result.Constants, float64(idx))
			w.pos = i
			w.opernext = true
			w.unarynext = false
			return true, nil
		}
	}

	return false, mmerrors.New(mmerrors.UDVOF,
		"undefined variable or function", w.expr[:i])
}

// validate applies the per-symbol structural checks (§4.4): comma legality,
// opener/closer bookkeeping, and arity/variadic validation on close.
func (w *walker) validate(symIdx int) error {
	sym := symtab.Table[symIdx]

	switch {
	case sym.Text == ",":
		if len(w.frames) == 0 || w.frames[len(w.frames)-1].argCount == 0 {
			return mmerrors.New(mmerrors.DELIN, "spurious comma", w.expr[:w.pos+1])
		}
		w.frames[len(w.frames)-1].argCount++

	case sym.ParenIncrement > 0:
		argCount := 0
		if sym.NArgs != 0 {
			argCount = 1
		}
		w.frames = append(w.frames, frameState{opener: symIdx, argCount: argCount})

	case sym.ParenIncrement < 0:
		if len(w.frames) == 0 {
			return mmerrors.New(mmerrors.MLPAR, "missing left parenthesis", w.expr[:w.pos+1])
		}
		top := w.frames[len(w.frames)-1]
		opener := symtab.Table[top.opener]

		switch {
		case opener.NArgs > 0:
			if top.argCount != opener.NArgs {
				return mmerrors.New(mmerrors.WRNFA,
					"wrong number of function arguments", w.expr[:w.pos+1])
			}
		case opener.NArgs < 0:
			min := -opener.NArgs
			if top.argCount < min {
				return mmerrors.New(mmerrors.WRNFA,
					"insufficient function arguments", w.expr[:w.pos+1])
			}
			w.result.Constants = append(w.result.Constants, float64(top.argCount))
		}

		w.frames = w.frames[:len(w.frames)-1]
	}

	return nil
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnumOrUnderscore(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '_'
}
