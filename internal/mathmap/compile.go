package mathmap

import (
	mmerrors "github.com/skx/mathmap/internal/errors"
	"github.com/skx/mathmap/internal/lexer"
	"github.com/skx/mathmap/internal/scheduler"
)

// compileExpression lexes and schedules a single cleaned right-hand-side
// expression, resolving variable references against vars. funcIndex
// identifies the function within its direction's array, for error
// reporting.
func compileExpression(expr string, vars []string, funcIndex int) (scheduler.Program, error) {
	if expr == "" {
		return scheduler.Program{}, mmerrors.NewAt(mmerrors.MIOPA, "expression is empty", expr, funcIndex)
	}

	tokens, err := lexer.Walk(expr, vars)
	if err != nil {
		return scheduler.Program{}, mmerrors.WithFuncIndex(err, funcIndex)
	}

	return scheduler.Schedule(tokens.Symbols, tokens.Constants), nil
}

// direction holds everything compiled for one transform direction (forward
// or inverse): one program per output coordinate, and the combined
// high-water mark across all of them.
type direction struct {
	programs  []scheduler.Program
	stackSize int
	defined   bool
}

// compileDirection compiles every expression in exprs (the RHS array for
// this direction) against the free-variable namespace vars (the other
// direction's LHS names). exprs == nil means the direction is undefined.
func compileDirection(exprs []string, vars []string) (direction, error) {
	if exprs == nil {
		return direction{}, nil
	}

	d := direction{programs: make([]scheduler.Program, len(exprs)), defined: true}
	for i, expr := range exprs {
		prog, err := compileExpression(expr, vars, i)
		if err != nil {
			return direction{}, err
		}
		d.programs[i] = prog
		if prog.StackSize > d.stackSize {
			d.stackSize = prog.StackSize
		}
	}
	return d, nil
}
