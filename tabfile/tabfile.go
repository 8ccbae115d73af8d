package tabfile

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/fingerbraille"
	"github.com/npillmayer/fingerbraille/tabfile/tabcells"
	"github.com/npillmayer/fingerbraille/tabfile/tabremaps"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("fingerbraille.tabfile")
}

// LoadTable loads a braille table in table-file format: a \cells{...} block,
// an optional \markers{...} block and any number of \remap{...} blocks.
//
// Example usage:
//
//	f, _ := os.Open("path/to/japanese.tab")
//	defer f.Close()
//
//	table, err := tabfile.LoadTable("japanese", f)
//
// Without a \markers block the standard markers of Japanese braille are
// registered, together with their conversion tables; \remap blocks extend
// or override these. The file is read into memory temporarily.
func LoadTable(name string, reader io.Reader) (*fingerbraille.Table, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	cells := tabcells.NewReader(bytes.NewReader(data))
	table, err := fingerbraille.LoadTable(name, cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if cells.Identifier() != "" {
		tracer().Infof("%s: %s", name, cells.Identifier())
	}
	markers, err := readMarkers(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(markers) == 0 {
		tracer().Debugf("%s: no markers, using standard markers", name)
		if err = fingerbraille.AddStandardMarkers(table); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	for _, m := range markers {
		if err = table.AddMarker(m); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	for _, m := range table.Markers() {
		if err = tabremaps.LoadRemaps(table, m.Mode, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", name, m.Mode, err)
		}
		tracer().Debugf("%s: %s", name, m)
	}
	return table, nil
}

// LoadFile loads a table from a file, named after the file's base name.
func LoadFile(path string) (*fingerbraille.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	name := filepath.Base(path)
	return LoadTable(name[:len(name)-len(filepath.Ext(name))], f)
}

func readMarkers(reader io.Reader) ([]fingerbraille.Marker, error) {
	r := tabremaps.NewMarkerReader(reader)
	var markers []fingerbraille.Marker
	for {
		m, err := r.Next()
		if err == io.EOF {
			return markers, nil
		}
		if err != nil {
			return nil, err
		}
		markers = append(markers, m)
	}
}
