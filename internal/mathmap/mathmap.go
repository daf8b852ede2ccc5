package mathmap

import (
	"fmt"

	"github.com/skx/mathmap/internal/scheduler"
	"github.com/skx/mathmap/internal/vm"
)

// Options carries the simplification hints recognised by the construction
// call's key=value option list (spec.md §6).
type Options struct {
	// SimpFI, when non-nil, sets the forward-then-inverse simplification
	// hint.
	SimpFI *bool

	// SimpIF, when non-nil, sets the inverse-then-forward simplification
	// hint.
	SimpIF *bool
}

// MathMap is a compiled, bidirectional coordinate transform: a forward
// direction (nout functions, consuming the inverse side's variable names)
// and an inverse direction (nin functions, consuming the forward side's
// variable names). Either direction may be undefined.
type MathMap struct {
	nin  int
	nout int

	fwdSource []string
	invSource []string

	fwdVars []string
	invVars []string

	fwd direction
	inv direction

	simpFI *bool
	simpIF *bool
}

// New compiles fwd (nout forward functions) and inv (nin inverse
// functions) into a MathMap. Either direction's functions may all omit
// their right-hand side (undefined transformation) but a direction may not
// mix defined and undefined functions.
func New(nin, nout int, fwd, inv []string, opts Options) (*MathMap, error) {
	fwdClean := CleanFunctions(fwd)
	invClean := CleanFunctions(inv)

	invVars, err := ExtractVariables(invClean)
	if err != nil {
		return nil, err
	}
	fwdVars, err := ExtractVariables(fwdClean)
	if err != nil {
		return nil, err
	}

	fwdExprs, err := ExtractExpressions(fwdClean)
	if err != nil {
		return nil, err
	}
	invExprs, err := ExtractExpressions(invClean)
	if err != nil {
		return nil, err
	}

	// The forward direction's free variables are the inverse side's LHS
	// names, and vice versa: each direction evaluates in terms of the
	// other direction's declared coordinates.
	fwdDir, err := compileDirection(fwdExprs, invVars)
	if err != nil {
		return nil, err
	}
	invDir, err := compileDirection(invExprs, fwdVars)
	if err != nil {
		return nil, err
	}

	return &MathMap{
		nin:       nin,
		nout:      nout,
		fwdSource: fwdClean,
		invSource: invClean,
		fwdVars:   fwdVars,
		invVars:   invVars,
		fwd:       fwdDir,
		inv:       invDir,
		simpFI:    opts.SimpFI,
		simpIF:    opts.SimpIF,
	}, nil
}

// NIn returns the number of input (inverse-direction) coordinates.
func (m *MathMap) NIn() int { return m.nin }

// NOut returns the number of output (forward-direction) coordinates.
func (m *MathMap) NOut() int { return m.nout }

// SimpFI returns the forward-then-inverse simplification hint, or nil if
// unset.
func (m *MathMap) SimpFI() *bool { return m.simpFI }

// SimpIF returns the inverse-then-forward simplification hint, or nil if
// unset.
func (m *MathMap) SimpIF() *bool { return m.simpIF }

// SetSimpFI changes the forward-then-inverse simplification hint. Per
// spec.md §5, a MathMap is otherwise immutable after construction;
// concurrent callers mutating this hint must synchronise externally.
func (m *MathMap) SetSimpFI(val bool) { m.simpFI = &val }

// SetSimpIF changes the inverse-then-forward simplification hint. See
// SetSimpFI for the concurrency caveat.
func (m *MathMap) SetSimpIF(val bool) { m.simpIF = &val }

// ForwardDefined reports whether the forward transformation is defined.
func (m *MathMap) ForwardDefined() bool { return m.fwd.defined }

// InverseDefined reports whether the inverse transformation is defined.
func (m *MathMap) InverseDefined() bool { return m.inv.defined }

// Transform evaluates the mathmap in the direction selected by forward
// (XORed, per spec.md §6, with any intrinsic "invert" sense the caller
// maintains externally) against npoints points of input, returning one
// output vector per output coordinate of that direction.
//
// It returns an error if the requested direction is undefined, or if the
// input slice count does not match the direction's expected coordinate
// count.
func (m *MathMap) Transform(forward bool, npoints int, inputs [][]float64) ([][]float64, error) {
	var d direction
	var nExpectedIn int

	if forward {
		d = m.fwd
		nExpectedIn = m.nin
	} else {
		d = m.inv
		nExpectedIn = m.nout
	}

	if !d.defined {
		return nil, &undefinedDirectionError{forward: forward}
	}
	if len(inputs) != nExpectedIn {
		return nil, &coordinateCountError{expected: nExpectedIn, got: len(inputs)}
	}

	out := make([][]float64, len(d.programs))
	for i, prog := range d.programs {
		outVec := make([]float64, npoints)
		runProgram(prog, npoints, inputs, outVec)
		out[i] = outVec
	}
	return out, nil
}

func runProgram(prog scheduler.Program, npoints int, inputs [][]float64, out []float64) {
	vm.Run(prog.Code, prog.Constants, prog.StackSize, npoints, inputs, out)
}

// undefinedDirectionError is returned by Transform when the requested
// direction has no compiled program.
type undefinedDirectionError struct {
	forward bool
}

func (e *undefinedDirectionError) Error() string {
	if e.forward {
		return "mathmap: forward transformation is undefined"
	}
	return "mathmap: inverse transformation is undefined"
}

// coordinateCountError is returned by Transform when the caller supplies
// the wrong number of input coordinate vectors.
type coordinateCountError struct {
	expected, got int
}

func (e *coordinateCountError) Error() string {
	return fmt.Sprintf("mathmap: wrong number of input coordinates: expected %d, got %d", e.expected, e.got)
}
