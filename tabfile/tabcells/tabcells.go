package tabcells

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/fingerbraille"
)

// Reader streams braille cells from table files.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	inCells    bool
}

// LoadCells parses table data and returns a table holding its cells, without
// markers.
//
// Cells are enclosed in between
//
//	\cells{ % some comment
//	あ 1
//	い 12
//	か 16
//	め ⠿
//	 ...
//	}
//
// Each line holds a character and its cell, written either as dot numbers or
// as a braille glyph. Other blocks, e.g. \markers{...} and \remap{...}, are
// skipped.
func LoadCells(name string, reader io.Reader) (*fingerbraille.Table, error) {
	return fingerbraille.LoadTable(name, NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next cell as (character, code).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, fingerbraille.Code, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if strings.HasPrefix(line, "\\message{") && strings.HasSuffix(line, "}") {
			r.identifier = line[9 : len(line)-1]
			continue
		}
		if strings.HasPrefix(line, "%") || line == "" {
			continue
		}
		if strings.HasPrefix(line, "\\cells{") {
			r.inCells = true
			continue
		}
		if strings.HasPrefix(line, "\\") {
			if !strings.HasSuffix(line, "}") {
				r.skipBlock()
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			if r.inCells { // closing of cells block
				r.inCells = false
				return "", 0, io.EOF
			}
			continue
		}
		if !r.inCells {
			continue
		}
		fields := strings.Fields(stripComment(line))
		if len(fields) != 2 {
			return "", 0, fmt.Errorf("line %d: expected character and cell, have %q", r.line, line)
		}
		code, err := fingerbraille.ParseCell(fields[1])
		if err != nil {
			return "", 0, fmt.Errorf("line %d: %w", r.line, err)
		}
		return fields[0], code, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", 0, err
	}
	if r.inCells {
		return "", 0, errors.New("unexpected end of file (unclosed \\cells block)")
	}
	return "", 0, io.EOF
}

func (r *Reader) skipBlock() {
	for r.scanner.Scan() {
		r.line++
		if strings.HasPrefix(strings.TrimSpace(r.scanner.Text()), "}") {
			return
		}
	}
}

func stripComment(line string) string {
	if i := strings.Index(line, "%"); i >= 0 {
		return line[:i]
	}
	return line
}
