package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/cleared-dev/b2fa/internal/config"
	"github.com/cleared-dev/b2fa/internal/model"
)

var utf8BOM = []byte("\xEF\xBB\xBF")

// Parser converts a bank CSV export into a Statement.
type Parser struct {
	input   config.InputConfig
	amounts config.AmountsConfig
	output  config.OutputConfig
	log     zerolog.Logger
}

// NewParser creates a Parser for the layout described by cfg.
func NewParser(cfg *config.Config, log zerolog.Logger) *Parser {
	return &Parser{
		input:   cfg.Input,
		amounts: cfg.Amounts,
		output:  cfg.Output,
		log:     log,
	}
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) (model.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Statement{}, fmt.Errorf("opening bank export: %w", err)
	}
	defer f.Close()

	stmt, err := p.Parse(f)
	if err != nil {
		return model.Statement{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return stmt, nil
}

// Parse reads the whole export and returns its transaction rows in input
// order. An export without a header row yields an empty Statement.
func (p *Parser) Parse(r io.Reader) (model.Statement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return model.Statement{}, fmt.Errorf("reading bank export: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(normalizeLineEndings(data)))
	cr.Comma = p.input.Comma()
	cr.FieldsPerRecord = -1

	s := &scanState{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.Statement{}, fmt.Errorf("reading bank CSV: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if err := p.feed(s, rec, line); err != nil {
			return model.Statement{}, err
		}
	}
	p.finish(s)

	return s.stmt, nil
}

// normalizeLineEndings rewrites bare CR row separators to LF. The
// separator is detected from the first line break in the data.
func normalizeLineEndings(data []byte) []byte {
	i := bytes.IndexAny(data, "\r\n")
	if i < 0 || data[i] == '\n' {
		return data
	}
	if i+1 < len(data) && data[i+1] == '\n' {
		return data
	}
	return bytes.ReplaceAll(data, []byte{'\r'}, []byte{'\n'})
}
