package tabremaps

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/fingerbraille"
)

// Reader streams the conversions of one waiting mode from \remap{...} blocks.
//
//	\remap{Dakuon
//	か が
//	さ ざ
//	}
//
// A file may hold several blocks per mode; blocks of other modes are skipped.
type Reader struct {
	scanner *bufio.Scanner
	mode    fingerbraille.InputMode
	inBlock bool
	line    int
}

// LoadRemaps parses table data and adds the conversions of mode to table.
func LoadRemaps(table *fingerbraille.Table, mode fingerbraille.InputMode, reader io.Reader) error {
	return table.LoadRemap(mode, NewReader(reader, mode))
}

func NewReader(reader io.Reader, mode fingerbraille.InputMode) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
		mode:    mode,
	}
}

// Next returns the next conversion as (base, converted).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(stripComment(r.scanner.Text()))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "\\remap{") {
			mode, err := fingerbraille.ParseInputMode(strings.TrimSpace(line[7:]))
			if err != nil {
				return "", "", fmt.Errorf("line %d: %w", r.line, err)
			}
			if mode == r.mode {
				r.inBlock = true
			} else {
				skipBlock(r.scanner, &r.line)
			}
			continue
		}
		if strings.HasPrefix(line, "\\") {
			if !strings.HasSuffix(line, "}") {
				skipBlock(r.scanner, &r.line)
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			r.inBlock = false
			continue
		}
		if !r.inBlock {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return "", "", fmt.Errorf("line %d: expected base and converted character, have %q", r.line, line)
		}
		return fields[0], fields[1], nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	if r.inBlock {
		return "", "", errors.New("unexpected end of file (unclosed \\remap block)")
	}
	return "", "", io.EOF
}

// MarkerReader streams marker definitions from a \markers{...} block.
//
//	\markers{
//	濁音符 5 Dakuon
//	数符 3456 Suuji
//	}
//
// Each line holds the display label, the marker cell and the waiting mode.
type MarkerReader struct {
	scanner *bufio.Scanner
	inBlock bool
	line    int
}

func NewMarkerReader(reader io.Reader) *MarkerReader {
	return &MarkerReader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next marker, without conversions.
// It returns io.EOF when exhausted.
func (r *MarkerReader) Next() (fingerbraille.Marker, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(stripComment(r.scanner.Text()))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "\\markers{") {
			r.inBlock = true
			continue
		}
		if strings.HasPrefix(line, "\\") {
			if !strings.HasSuffix(line, "}") {
				skipBlock(r.scanner, &r.line)
			}
			continue
		}
		if strings.HasPrefix(line, "}") {
			if r.inBlock { // closing of markers block
				r.inBlock = false
				return fingerbraille.Marker{}, io.EOF
			}
			continue
		}
		if !r.inBlock {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return fingerbraille.Marker{}, fmt.Errorf("line %d: expected label, cell and mode, have %q", r.line, line)
		}
		code, err := fingerbraille.ParseCell(fields[1])
		if err != nil {
			return fingerbraille.Marker{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		mode, err := fingerbraille.ParseInputMode(fields[2])
		if err != nil {
			return fingerbraille.Marker{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return fingerbraille.Marker{Label: fields[0], Code: code, Mode: mode}, nil
	}
	if err := r.scanner.Err(); err != nil {
		return fingerbraille.Marker{}, err
	}
	if r.inBlock {
		return fingerbraille.Marker{}, errors.New("unexpected end of file (unclosed \\markers block)")
	}
	return fingerbraille.Marker{}, io.EOF
}

func skipBlock(scanner *bufio.Scanner, line *int) {
	for scanner.Scan() {
		*line++
		if strings.HasPrefix(strings.TrimSpace(scanner.Text()), "}") {
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
