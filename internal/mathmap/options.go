package mathmap

import (
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// ParseOptions recognises the "simpfi=" and "simpif=" keys from the
// construction call's key=value option list (spec.md §6) and rejects
// anything else as a configuration error.
func ParseOptions(kv []string) (Options, error) {
	var opts Options

	for _, entry := range kv {
		key, val, ok := strings.Cut(entry, "=")
		if !ok {
			return Options{}, pkgerrors.Errorf("mathmap: malformed option %q", entry)
		}

		b, err := strconv.ParseBool(val)
		if err != nil {
			return Options{}, pkgerrors.Wrapf(err, "mathmap: option %q has a non-boolean value", key)
		}

		switch strings.ToLower(key) {
		case "simpfi":
			opts.SimpFI = &b
		case "simpif":
			opts.SimpIF = &b
		default:
			return Options{}, pkgerrors.Errorf("mathmap: unrecognised option %q", key)
		}
	}

	return opts, nil
}
