// Package svgpath parses SVG 1.1 path-data text into a pathstore.Path.
// Grounded on the grammar notes in original_source/include/plutovg.h and
// the reference internal/gsv/gsv_text.go hand-rolled scanner style (no
// regexp, a cursor over the byte slice).
package svgpath

import (
	"fmt"

	"github.com/agg-go/vgcanvas/internal/pathstore"
)

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) skipSep() {
	for sc.pos < len(sc.s) {
		c := sc.s[sc.pos]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' {
			sc.pos++
			continue
		}
		break
	}
}

func (sc *scanner) peek() byte {
	if sc.pos >= len(sc.s) {
		return 0
	}
	return sc.s[sc.pos]
}

func (sc *scanner) eof() bool {
	sc.skipSep()
	return sc.pos >= len(sc.s)
}

// number skips any leading whitespace/comma separators, then scans an SVG
// number token.
func (sc *scanner) number() (float64, error) {
	sc.skipSep()
	start := sc.pos
	n := len(sc.s)
	i := sc.pos
	if i < n && (sc.s[i] == '+' || sc.s[i] == '-') {
		i++
	}
	for i < n && isDigit(sc.s[i]) {
		i++
	}
	if i < n && sc.s[i] == '.' {
		i++
		for i < n && isDigit(sc.s[i]) {
			i++
		}
	}
	if i < n && (sc.s[i] == 'e' || sc.s[i] == 'E') {
		j := i + 1
		if j < n && (sc.s[j] == '+' || sc.s[j] == '-') {
			j++
		}
		if j < n && isDigit(sc.s[j]) {
			i = j
			for i < n && isDigit(sc.s[i]) {
				i++
			}
		}
	}
	if i == start {
		return 0, fmt.Errorf("svgpath: expected number at offset %d", start)
	}
	sc.pos = i
	var v float64
	_, err := fmt.Sscanf(sc.s[start:i], "%g", &v)
	if err != nil {
		return 0, fmt.Errorf("svgpath: invalid number %q: %w", sc.s[start:i], err)
	}
	return v, nil
}

// flag scans a single SVG boolean flag digit (0 or 1), which per the SVG
// grammar need not be separated from the next token by whitespace, e.g.
// "A30,50,0,1,1,10,10".
func (sc *scanner) flag() (bool, error) {
	sc.skipSep()
	if sc.pos >= len(sc.s) {
		return false, fmt.Errorf("svgpath: expected flag at offset %d", sc.pos)
	}
	c := sc.s[sc.pos]
	if c != '0' && c != '1' {
		return false, fmt.Errorf("svgpath: invalid flag %q at offset %d", c, sc.pos)
	}
	sc.pos++
	return c == '1', nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Parse parses SVG 1.1 path data into a new path.
func Parse(d string) (*pathstore.Path, error) {
	p := pathstore.New()
	sc := &scanner{s: d}
	var cmd byte
	var curX, curY float64       // current point
	var startX, startY float64   // subpath start, for 'Z'
	var lastCtrlX, lastCtrlY float64
	var lastCmd byte

	hasCtrl := func(c byte) bool {
		switch c {
		case 'C', 'c', 'S', 's', 'Q', 'q', 'T', 't':
			return true
		}
		return false
	}

	for {
		sc.skipSep()
		if sc.pos >= len(sc.s) {
			break
		}
		c := sc.s[sc.pos]
		if isCommand(c) {
			cmd = c
			sc.pos++
		} else if cmd == 0 {
			return nil, fmt.Errorf("svgpath: path data must start with a command, got %q", c)
		}
		// else: implicit repeat of the previous command.

		rel := cmd >= 'a' && cmd <= 'z'
		upper := cmd
		if rel {
			upper = cmd - ('a' - 'A')
		}

		switch upper {
		case 'M':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel && lastCmd != 0 {
				x += curX
				y += curY
			}
			p.MoveTo(x, y)
			curX, curY = x, y
			startX, startY = x, y
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'L':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += curX
				y += curY
			}
			p.LineTo(x, y)
			curX, curY = x, y
		case 'H':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += curX
			}
			p.LineTo(x, curY)
			curX = x
		case 'V':
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				y += curY
			}
			p.LineTo(curX, y)
			curY = y
		case 'C':
			x1, err := sc.number()
			if err != nil {
				return nil, err
			}
			y1, err := sc.number()
			if err != nil {
				return nil, err
			}
			x2, err := sc.number()
			if err != nil {
				return nil, err
			}
			y2, err := sc.number()
			if err != nil {
				return nil, err
			}
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x1 += curX
				y1 += curY
				x2 += curX
				y2 += curY
				x += curX
				y += curY
			}
			p.CubicTo(x1, y1, x2, y2, x, y)
			lastCtrlX, lastCtrlY = x2, y2
			curX, curY = x, y
		case 'S':
			x2, err := sc.number()
			if err != nil {
				return nil, err
			}
			y2, err := sc.number()
			if err != nil {
				return nil, err
			}
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x2 += curX
				y2 += curY
				x += curX
				y += curY
			}
			x1, y1 := curX, curY
			if hasCtrl(lastCmd) {
				x1 = 2*curX - lastCtrlX
				y1 = 2*curY - lastCtrlY
			}
			p.CubicTo(x1, y1, x2, y2, x, y)
			lastCtrlX, lastCtrlY = x2, y2
			curX, curY = x, y
		case 'Q':
			x1, err := sc.number()
			if err != nil {
				return nil, err
			}
			y1, err := sc.number()
			if err != nil {
				return nil, err
			}
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x1 += curX
				y1 += curY
				x += curX
				y += curY
			}
			p.QuadTo(x1, y1, x, y)
			lastCtrlX, lastCtrlY = x1, y1
			curX, curY = x, y
		case 'T':
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += curX
				y += curY
			}
			x1, y1 := curX, curY
			if hasCtrl(lastCmd) {
				x1 = 2*curX - lastCtrlX
				y1 = 2*curY - lastCtrlY
			}
			p.QuadTo(x1, y1, x, y)
			lastCtrlX, lastCtrlY = x1, y1
			curX, curY = x, y
		case 'A':
			rx, err := sc.number()
			if err != nil {
				return nil, err
			}
			ry, err := sc.number()
			if err != nil {
				return nil, err
			}
			phi, err := sc.number()
			if err != nil {
				return nil, err
			}
			large, err := sc.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := sc.flag()
			if err != nil {
				return nil, err
			}
			x, err := sc.number()
			if err != nil {
				return nil, err
			}
			y, err := sc.number()
			if err != nil {
				return nil, err
			}
			if rel {
				x += curX
				y += curY
			}
			p.ArcTo(rx, ry, phi, large, sweep, x, y)
			curX, curY = x, y
		case 'Z':
			p.Close()
			curX, curY = startX, startY
		default:
			return nil, fmt.Errorf("svgpath: unsupported command %q", cmd)
		}
		lastCmd = cmd
	}
	return p, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}
