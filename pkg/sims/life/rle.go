package life

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cellular/pkg/coord"
)

// ErrBadRLE is returned for malformed run-length encoded patterns.
var ErrBadRLE = errors.New("life: malformed RLE pattern")

// Pattern is a decoded set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	W, H  int
	Cells []coord.Vec
}

// DecodeRLE parses the run-length encoded pattern format: an optional
// "x = W, y = H" header, '#' comment lines, then runs of 'b' (dead) and 'o'
// (alive) with '$' ending a row and '!' ending the pattern.
func DecodeRLE(src string) (Pattern, error) {
	var p Pattern
	var body strings.Builder
	header := false

	sc := bufio.NewScanner(strings.NewReader(src))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "#"):
			if name, ok := strings.CutPrefix(line, "#N"); ok && p.Name == "" {
				p.Name = strings.TrimSpace(name)
			}
			continue
		case !header && body.Len() == 0 && strings.HasPrefix(line, "x"):
			w, h, err := parseHeader(line)
			if err != nil {
				return Pattern{}, err
			}
			p.W, p.H = w, h
			header = true
			continue
		}
		body.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("read RLE: %w", err)
	}

	cells, w, h, err := decodeRuns(body.String())
	if err != nil {
		return Pattern{}, err
	}
	if header {
		if w > p.W || h > p.H {
			return Pattern{}, fmt.Errorf("%w: cells span %dx%d, header declares %dx%d", ErrBadRLE, w, h, p.W, p.H)
		}
	} else {
		p.W, p.H = w, h
	}
	p.Cells = cells
	return p, nil
}

func parseHeader(line string) (w, h int, err error) {
	seen := 0
	for _, field := range strings.Split(line, ",") {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			return 0, 0, fmt.Errorf("%w: header field %q", ErrBadRLE, field)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		switch key {
		case "x", "y":
			n, convErr := strconv.Atoi(val)
			if convErr != nil || n < 0 {
				return 0, 0, fmt.Errorf("%w: header %s = %q", ErrBadRLE, key, val)
			}
			if key == "x" {
				w = n
			} else {
				h = n
			}
			seen++
		case "rule":
			if r := strings.ToUpper(val); r != "B3/S23" && r != "23/3" {
				return 0, 0, fmt.Errorf("%w: unsupported rule %q", ErrBadRLE, val)
			}
		}
	}
	if seen != 2 {
		return 0, 0, fmt.Errorf("%w: header needs x and y", ErrBadRLE)
	}
	return w, h, nil
}

// decodeRuns returns the live cells and the extent they occupy.
func decodeRuns(body string) (cells []coord.Vec, w, h int, err error) {
	x, y, run := 0, 0, 0
	for i, r := range body {
		switch {
		case r >= '0' && r <= '9':
			run = run*10 + int(r-'0')
			continue
		case r == ' ' || r == '\t':
			continue
		}
		n := max(run, 1)
		run = 0
		switch r {
		case 'b':
			x += n
		case 'o':
			for range n {
				cells = append(cells, coord.New(x, y))
				x++
			}
			w = max(w, x)
			h = max(h, y+1)
		case '$':
			y += n
			x = 0
		case '!':
			return cells, w, h, nil
		default:
			return nil, 0, 0, fmt.Errorf("%w: unexpected %q at offset %d", ErrBadRLE, r, i)
		}
	}
	return nil, 0, 0, fmt.Errorf("%w: missing '!' terminator", ErrBadRLE)
}
