package lexer

import (
	"strconv"
	"strings"

	mmerrors "github.com/skx/mathmap/internal/errors"
)

// parseNumber consumes a numeric literal prefix of expr starting at
// position start. It recognises an optional fractional part and an
// optional exponent marker ('d' or 'e', with 'd' canonicalised to 'e'
// before conversion) with an optional sign.
//
// It returns the parsed value, the position immediately following the
// literal, and an error if the prefix committed to being a number but
// violated the numeric grammar.
func parseNumber(expr string, start int) (float64, int, error) {
	i := start
	n := len(expr)

	sawDigit := false
	sawDot := false
	sawExp := false
	sawExpDigit := false
	sawExpSign := false

	for i < n {
		c := expr[i]
		switch {
		case c >= '0' && c <= '9':
			sawDigit = true
			if sawExp {
				sawExpDigit = true
			}
			i++

		case c == '.':
			if sawExp {
				return 0, 0, mmerrors.New(mmerrors.CONIN,
					"decimal point not allowed in exponent", expr[start:i+1])
			}
			if sawDot {
				return 0, 0, mmerrors.New(mmerrors.CONIN,
					"second decimal point in numeric literal", expr[start:i+1])
			}
			sawDot = true
			i++

		case c == 'd' || c == 'e' || c == 'D' || c == 'E':
			if sawExp {
				return 0, 0, mmerrors.New(mmerrors.CONIN,
					"second exponent marker in numeric literal", expr[start:i+1])
			}
			sawExp = true
			i++

		case c == '+' || c == '-':
			if !sawExp {
				// Not part of this literal at all (handled by the walker
				// as a fresh binary/unary operator token).
				goto done
			}
			if sawExpDigit || sawExpSign {
				return 0, 0, mmerrors.New(mmerrors.CONIN,
					"misplaced sign in numeric literal exponent", expr[start:i+1])
			}
			sawExpSign = true
			i++

		default:
			goto done
		}
	}
done:

	if !sawDigit {
		return 0, 0, mmerrors.New(mmerrors.CONIN, "empty numeric literal", expr[start:i])
	}
	if sawExp && !sawExpDigit {
		return 0, 0, mmerrors.New(mmerrors.CONIN,
			"exponent with no digits in numeric literal", expr[start:i])
	}

	canon := strings.Map(func(r rune) rune {
		if r == 'd' || r == 'D' {
			return 'e'
		}
		return r
	}, expr[start:i])

	val, convErr := strconv.ParseFloat(canon, 64)
	if convErr != nil {
		return 0, 0, mmerrors.New(mmerrors.CONIN, "invalid numeric literal", expr[start:i])
	}
	return val, i, nil
}
