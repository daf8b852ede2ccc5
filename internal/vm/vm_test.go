package vm

import (
	"math"
	"testing"

	"github.com/skx/mathmap/internal/lexer"
	"github.com/skx/mathmap/internal/scheduler"
)

// compileAndRun is a small test harness that lexes+schedules expr (in terms
// of vars) and runs it against the given input columns.
func compileAndRun(t *testing.T, expr string, vars []string, inputs [][]float64) []float64 {
	t.Helper()

	res, err := lexer.Walk(expr, vars)
	if err != nil {
		t.Fatalf("unexpected lex error: %s", err)
	}
	prog := scheduler.Schedule(res.Symbols, res.Constants)

	npoints := 0
	if len(inputs) > 0 {
		npoints = len(inputs[0])
	}
	out := make([]float64, npoints)
	Run(prog.Code, prog.Constants, prog.StackSize, npoints, inputs, out)
	return out
}

func TestIdentity(t *testing.T) {
	out := compileAndRun(t, "x", []string{"x"}, [][]float64{{1.0, 2.0, BAD, 4.0}})
	want := []float64{1.0, 2.0, BAD, 4.0}
	assertVectorsEqual(t, want, out)
}

func TestVariadicMax(t *testing.T) {
	out := compileAndRun(t, "max(a,b,c)", []string{"a", "b", "c"}, [][]float64{
		{1, 9, 3},
		{2, 2, 2},
		{3, 5, 7},
	})
	want := []float64{3, 9, 7}
	assertVectorsEqual(t, want, out)
}

func TestOverflowToBad(t *testing.T) {
	out := compileAndRun(t, "x*x", []string{"x"}, [][]float64{{1e200}})
	assertVectorsEqual(t, []float64{BAD}, out)
}

func TestDomainErrorToBad(t *testing.T) {
	out := compileAndRun(t, "sqrt(x)", []string{"x"}, [][]float64{{4.0, -1.0, 0.0}})
	assertVectorsEqual(t, []float64{2.0, BAD, 0.0}, out)
}

func TestDegreesRadians(t *testing.T) {
	out := compileAndRun(t, "sind(x)", []string{"x"}, [][]float64{{0.0, 30.0, 90.0}})
	want := []float64{0.0, 0.5, 1.0}
	for i := range want {
		if math.Abs(out[i]-want[i]) > 1e-9 {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], out[i])
		}
	}
}

func TestDivideByZero(t *testing.T) {
	out := compileAndRun(t, "1/x", []string{"x"}, [][]float64{{0.0, 2.0}})
	assertVectorsEqual(t, []float64{BAD, 0.5}, out)
}

func TestBadPropagation(t *testing.T) {
	out := compileAndRun(t, "x+1", []string{"x"}, [][]float64{{BAD, 1.0}})
	assertVectorsEqual(t, []float64{BAD, 2.0}, out)
}

func TestNint(t *testing.T) {
	out := compileAndRun(t, "nint(x)", []string{"x"}, [][]float64{{1.4, 1.5, -1.5, -1.4}})
	assertVectorsEqual(t, []float64{1, 2, -2, -1}, out)
}

func TestDeterminism(t *testing.T) {
	inputs := [][]float64{{1.1, 2.2, 3.3}, {4.4, 5.5, 6.6}}
	a := compileAndRun(t, "sqrt(x*x+y*y)", []string{"x", "y"}, inputs)
	b := compileAndRun(t, "sqrt(x*x+y*y)", []string{"x", "y"}, inputs)
	assertVectorsEqual(t, a, b)
}

func assertVectorsEqual(t *testing.T, want, got []float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
