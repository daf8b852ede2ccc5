package scheduler

import (
	"testing"

	"github.com/skx/mathmap/internal/lexer"
	"github.com/skx/mathmap/internal/symtab"
)

func schedule(t *testing.T, expr string, vars []string) Program {
	t.Helper()
	res, err := lexer.Walk(expr, vars)
	if err != nil {
		t.Fatalf("unexpected lex error for %q: %s", expr, err)
	}
	return Schedule(res.Symbols, res.Constants)
}

func TestScheduleSimpleAddition(t *testing.T) {
	prog := schedule(t, "1+2", nil)

	want := []int{int(symtab.LDCON), int(symtab.LDCON), int(symtab.ADD)}
	assertCode(t, prog, want)
	if prog.StackSize != 2 {
		t.Fatalf("expected stacksize 2, got %d", prog.StackSize)
	}
}

func TestScheduleOperatorPrecedence(t *testing.T) {
	// 1 + 2 * 3 -> 1 2 3 * +
	prog := schedule(t, "1+2*3", nil)

	want := []int{
		int(symtab.LDCON), int(symtab.LDCON), int(symtab.LDCON),
		int(symtab.MUL), int(symtab.ADD),
	}
	assertCode(t, prog, want)
}

func TestScheduleParentheses(t *testing.T) {
	// (1 + 2) * 3 -> 1 2 + 3 *
	prog := schedule(t, "(1+2)*3", nil)

	want := []int{
		int(symtab.LDCON), int(symtab.LDCON), int(symtab.ADD),
		int(symtab.LDCON), int(symtab.MUL),
	}
	assertCode(t, prog, want)
}

func TestScheduleVariadicMax(t *testing.T) {
	prog := schedule(t, "max(1,2,3)", nil)

	want := []int{int(symtab.LDCON), int(symtab.LDCON), int(symtab.LDCON), int(symtab.MAX)}
	assertCode(t, prog, want)
	if prog.StackSize != 3 {
		t.Fatalf("expected stacksize 3, got %d", prog.StackSize)
	}
}

func TestScheduleRightAssociativePower(t *testing.T) {
	// 2 ** 3 ** 2 -> 2 3 2 ** **  (right-associative: 2**(3**2))
	prog := schedule(t, "2**3**2", nil)

	want := []int{
		int(symtab.LDCON), int(symtab.LDCON), int(symtab.LDCON),
		int(symtab.PWR), int(symtab.PWR),
	}
	assertCode(t, prog, want)
}

func TestScheduleCodeCountInvariant(t *testing.T) {
	prog := schedule(t, "sqrt(x*x+y*y)", []string{"x", "y"})
	if prog.Code[0] != len(prog.Code)-1 {
		t.Fatalf("code[0] (%d) must equal len(code)-1 (%d)", prog.Code[0], len(prog.Code)-1)
	}
}

func assertCode(t *testing.T, prog Program, wantOps []int) {
	t.Helper()
	got := prog.Code[1:]
	if len(got) != len(wantOps) {
		t.Fatalf("expected %d opcodes, got %d: %v", len(wantOps), len(got), got)
	}
	for i := range wantOps {
		if got[i] != wantOps[i] {
			t.Fatalf("opcode %d: expected %s, got %s", i, symtab.Opcode(wantOps[i]), symtab.Opcode(got[i]))
		}
	}
	if prog.Code[0] != len(prog.Code)-1 {
		t.Fatalf("code[0] (%d) must equal len(code)-1 (%d)", prog.Code[0], len(prog.Code)-1)
	}
}
