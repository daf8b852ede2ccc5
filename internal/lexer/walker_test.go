package lexer

import (
	"testing"

	mmerrors "github.com/skx/mathmap/internal/errors"
	"github.com/skx/mathmap/internal/symtab"
)

func TestWalkIdentity(t *testing.T) {
	res, err := Walk("x", []string{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(res.Symbols) != 1 || res.Symbols[0] != symtab.SymLDVAR {
		t.Fatalf("expected a single LDVAR symbol, got %v", res.Symbols)
	}
	if len(res.Constants) != 1 || res.Constants[0] != 0 {
		t.Fatalf("expected variable index 0, got %v", res.Constants)
	}
}

func TestWalkLiteral(t *testing.T) {
	res, err := Walk("3.5e2", nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(res.Constants) != 1 || res.Constants[0] != 350 {
		t.Fatalf("expected 350, got %v", res.Constants)
	}
}

func TestWalkUnknownVariable(t *testing.T) {
	_, err := Walk("q", []string{"x"})
	assertCode(t, err, mmerrors.UDVOF)
}

func TestWalkMissingOperand(t *testing.T) {
	_, err := Walk("1+", []string{"x"})
	assertCode(t, err, mmerrors.MIOPA)
}

func TestWalkMissingOperator(t *testing.T) {
	// "11" is a single literal, not two adjacent operands - must not error.
	if _, err := Walk("11", []string{"x"}); err != nil {
		t.Fatalf("a plain multi-digit literal must not error: %s", err)
	}

	// "1x" is a literal immediately followed by a variable reference,
	// with no operator between them.
	_, err := Walk("1x", []string{"x"})
	assertCode(t, err, mmerrors.MIOPR)
}

func TestWalkMissingRightParen(t *testing.T) {
	_, err := Walk("sqrt(1", []string{"x"})
	assertCode(t, err, mmerrors.MRPAR)
}

func TestWalkMissingLeftParen(t *testing.T) {
	_, err := Walk("1)", []string{"x"})
	assertCode(t, err, mmerrors.MLPAR)
}

func TestWalkSpuriousComma(t *testing.T) {
	_, err := Walk("1,2", []string{"x"})
	assertCode(t, err, mmerrors.DELIN)
}

func TestWalkWrongArgCount(t *testing.T) {
	_, err := Walk("sqrt(1,2)", []string{"x"})
	assertCode(t, err, mmerrors.WRNFA)
}

func TestWalkVariadicMinimum(t *testing.T) {
	_, err := Walk("max(1)", []string{"x"})
	assertCode(t, err, mmerrors.WRNFA)

	res, err := Walk("max(1,2,3)", []string{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// Three literals, each contributing one constant, plus the
	// back-patched argument count appended at the closing paren.
	if len(res.Constants) != 4 {
		t.Fatalf("expected 4 constants, got %v", res.Constants)
	}
	if res.Constants[3] != 3 {
		t.Fatalf("expected observed arg count 3, got %v", res.Constants[3])
	}
}

func TestWalkInvalidLiteral(t *testing.T) {
	_, err := Walk("1.2.3", []string{"x"})
	assertCode(t, err, mmerrors.CONIN)
}

func TestWalkUnaryMinus(t *testing.T) {
	res, err := Walk("-x", []string{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(res.Symbols) != 2 {
		t.Fatalf("expected unary minus + LDVAR, got %v", res.Symbols)
	}
}

func assertCode(t *testing.T, err error, code mmerrors.Code) {
	t.Helper()
	ce, ok := err.(*mmerrors.CompileError)
	if !ok {
		t.Fatalf("expected a *errors.CompileError, got %T (%v)", err, err)
	}
	if ce.Code != code {
		t.Fatalf("expected code %s, got %s (%v)", code, ce.Code, ce)
	}
}
