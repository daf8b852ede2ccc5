package mathmap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Encode writes m's serialised form to w: one "F<k>=..." line per forward
// function, one "I<k>=..." line per inverse function, and, when set,
// "SimpFI=" / "SimpIF=" lines carrying the simplification hints.
//
// Direction counts are not written: on load they derive from the caller's
// nin/nout/invert, per spec.md §6.
func (m *MathMap) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	for i, fn := range m.fwdSource {
		if _, err := fmt.Fprintf(bw, "F%d=%s\n", i+1, fn); err != nil {
			return pkgerrors.Wrap(err, "encoding forward function")
		}
	}
	for i, fn := range m.invSource {
		if _, err := fmt.Fprintf(bw, "I%d=%s\n", i+1, fn); err != nil {
			return pkgerrors.Wrap(err, "encoding inverse function")
		}
	}
	if m.simpFI != nil {
		if _, err := fmt.Fprintf(bw, "SimpFI=%s\n", boolString(*m.simpFI)); err != nil {
			return pkgerrors.Wrap(err, "encoding SimpFI")
		}
	}
	if m.simpIF != nil {
		if _, err := fmt.Fprintf(bw, "SimpIF=%s\n", boolString(*m.simpIF)); err != nil {
			return pkgerrors.Wrap(err, "encoding SimpIF")
		}
	}

	return bw.Flush()
}

// Decode reads a serialised mathmap back from r. nin and nout come from
// the parent Mapping's dimensionality (spec.md §6: "the direction counts
// derive from the Mapping parent's input/output dimensionalities and the
// inverted flag"), and the stored sources are recompiled from scratch.
func Decode(r io.Reader, nin, nout int) (*MathMap, error) {
	fwd := make([]string, nout)
	inv := make([]string, nin)
	var opts Options

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, pkgerrors.Errorf("mathmap: malformed serialised line %q", line)
		}

		switch {
		case strings.HasPrefix(key, "F"):
			idx, err := strconv.Atoi(key[1:])
			if err != nil || idx < 1 || idx > nout {
				return nil, pkgerrors.Errorf("mathmap: forward function index out of range: %q", line)
			}
			fwd[idx-1] = val

		case strings.HasPrefix(key, "I"):
			idx, err := strconv.Atoi(key[1:])
			if err != nil || idx < 1 || idx > nin {
				return nil, pkgerrors.Errorf("mathmap: inverse function index out of range: %q", line)
			}
			inv[idx-1] = val

		case key == "SimpFI":
			b, err := parseBool(val)
			if err != nil {
				return nil, err
			}
			opts.SimpFI = &b

		case key == "SimpIF":
			b, err := parseBool(val)
			if err != nil {
				return nil, err
			}
			opts.SimpIF = &b

		default:
			return nil, pkgerrors.Errorf("mathmap: unrecognised serialised key %q", key)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pkgerrors.Wrap(err, "reading serialised mathmap")
	}

	return New(nin, nout, fwd, inv, opts)
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBool(s string) (bool, error) {
	switch s {
	case "1":
		return true, nil
	case "0":
		return false, nil
	default:
		return false, pkgerrors.Errorf("mathmap: invalid boolean value %q", s)
	}
}
