package mathmap

import (
	"strings"

	mmerrors "github.com/skx/mathmap/internal/errors"
)

// ExtractExpressions splits each cleaned function string at its '=' sign
// and returns the right-hand-side expressions. If none of the functions
// contain '=', the direction is undefined and (nil, nil) is returned. A
// mix of functions with and without '=', or an empty right-hand side,
// is an error.
func ExtractExpressions(cleaned []string) ([]string, error) {
	anyEquals := false
	for _, fn := range cleaned {
		if strings.ContainsRune(fn, '=') {
			anyEquals = true
			break
		}
	}

	if !anyEquals {
		return nil, nil
	}

	exprs := make([]string, len(cleaned))
	for i, fn := range cleaned {
		idx := strings.IndexByte(fn, '=')
		if idx < 0 || idx == len(fn)-1 {
			return nil, mmerrors.NewAt(mmerrors.NORHS, "missing right-hand side", fn, i)
		}
		exprs[i] = fn[idx+1:]
	}

	return exprs, nil
}
