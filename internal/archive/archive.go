// Package archive unpacks chart archives (.osz, a zip container) into chart
// sets.
package archive

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"git.lost.host/meutraa/fourk/internal/game"
	"git.lost.host/meutraa/fourk/internal/parser"
	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

// Error means the archive itself, or one of its entries, could not be read.
// No chart set is produced.
type Error struct {
	Source string
	Entry  string
	Err    error
}

func (e *Error) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("archive %v: entry %v: %v", e.Source, e.Entry, e.Err)
	}
	return fmt.Sprintf("archive %v: %v", e.Source, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Extract reads a chart archive. Entries ending in .osu are parsed as charts,
// a chart that fails to parse is recorded in Rejected and does not stop the
// rest of the archive. Every other file is kept as a resource under its exact
// entry name.
func Extract(filename string, data []byte, p parser.Parser) (*game.ChartSet, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if nil != err {
		return nil, &Error{Source: filename, Err: err}
	}

	set := game.NewChartSet(filename)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		contents, err := readEntry(f)
		if nil != err {
			return nil, &Error{Source: filename, Entry: f.Name, Err: err}
		}

		if !strings.HasSuffix(f.Name, parser.Extension) {
			set.Resources[f.Name] = contents
			continue
		}

		log.Printf("Processing %v\n", f.Name)
		chart, err := p.Parse(string(contents))
		if nil != err {
			log.Printf("unable to parse %v: %v\n", f.Name, err)
			set.Rejected[f.Name] = err
			continue
		}
		set.Charts = append(set.Charts, chart)
	}
	return set, nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if nil != err {
		return nil, errors.Wrap(err, "open")
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if nil != err {
		return nil, errors.Wrap(err, "read")
	}
	return data, nil
}

// Open extracts an archive from disk.
func Open(path string, p parser.Parser) (*game.ChartSet, error) {
	data, err := os.ReadFile(path)
	if nil != err {
		return nil, &Error{Source: path, Err: err}
	}
	return Extract(filepath.Base(path), data, p)
}
