package script

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/gogpu/vecdev"
)

// ParsePath parses absolute SVG-style path data using the commands
// M, L, Q, C and Z. Numbers are separated by spaces or commas, and a
// command letter may repeat implicitly for further coordinate groups.
func ParsePath(data string) (*vecdev.Path, error) {
	toks := tokenize(data)
	p := vecdev.NewPath()

	var cmd byte
	for i := 0; i < len(toks); {
		if t := toks[i]; len(t) == 1 && unicode.IsLetter(rune(t[0])) {
			cmd = t[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				p.Close()
				continue
			}
		}
		n := argCount(cmd)
		if n == 0 {
			return nil, fmt.Errorf("%w: path command %q", ErrInvalid, string(cmd))
		}
		if i+n > len(toks) {
			return nil, fmt.Errorf("%w: path command %q needs %d numbers", ErrInvalid, string(cmd), n)
		}
		v := make([]float64, n)
		for j := range v {
			f, err := strconv.ParseFloat(toks[i+j], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: path number %q", ErrInvalid, toks[i+j])
			}
			v[j] = f
		}
		i += n

		switch cmd {
		case 'M':
			p.MoveTo(v[0], v[1])
			cmd = 'L'
		case 'L':
			p.LineTo(v[0], v[1])
		case 'Q':
			p.QuadTo(v[0], v[1], v[2], v[3])
		case 'C':
			p.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
		}
	}
	return p, nil
}

func argCount(cmd byte) int {
	switch cmd {
	case 'M', 'L':
		return 2
	case 'Q':
		return 4
	case 'C':
		return 6
	default:
		return 0
	}
}

// tokenize splits path data into command letters and numbers.
func tokenize(data string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range data {
		switch {
		case r == ',' || unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			flush()
			toks = append(toks, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
