package mathmap

import (
	"strings"

	mmerrors "github.com/skx/mathmap/internal/errors"
)

// ExtractVariables parses the left-hand-side variable name out of each
// cleaned function string and checks for duplicates within the set.
func ExtractVariables(cleaned []string) ([]string, error) {
	names := make([]string, len(cleaned))

	for i, fn := range cleaned {
		prefix := fn
		if idx := strings.IndexByte(fn, '='); idx >= 0 {
			prefix = fn[:idx]
		}

		if prefix == "" {
			if fn == "" {
				return nil, mmerrors.NewAt(mmerrors.MISVN, "function is blank", fn, i)
			}
			return nil, mmerrors.NewAt(mmerrors.MISVN, "missing variable name", fn, i)
		}

		name, consumed := parseIdentifier(prefix)
		if consumed != len(prefix) {
			return nil, mmerrors.NewAt(mmerrors.VARIN, "variable name is not a valid identifier", prefix, i)
		}

		names[i] = name
	}

	for i := range names {
		for j := i + 1; j < len(names); j++ {
			if names[i] == names[j] {
				return nil, mmerrors.NewAt(mmerrors.DUVAR, "duplicate variable name", names[i], j)
			}
		}
	}

	return names, nil
}

// parseIdentifier consumes a leading identifier (alpha, then alnum/_) from
// s and returns it along with the number of bytes consumed. If s does not
// begin with a letter, it returns ("", 0).
func parseIdentifier(s string) (string, int) {
	if len(s) == 0 || !isAlpha(s[0]) {
		return "", 0
	}
	i := 1
	for i < len(s) && isAlnumOrUnderscore(s[i]) {
		i++
	}
	return s[:i], i
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnumOrUnderscore(c byte) bool {
	return isAlpha(c) || (c >= '0' && c <= '9') || c == '_'
}
