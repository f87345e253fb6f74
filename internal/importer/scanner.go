package importer

import (
	"fmt"

	"github.com/cleared-dev/b2fa/internal/model"
)

type scanPhase int

const (
	seekingHeader scanPhase = iota
	collecting
	done
)

func (ph scanPhase) String() string {
	switch ph {
	case seekingHeader:
		return "seeking-header"
	case collecting:
		return "collecting"
	case done:
		return "done"
	default:
		return fmt.Sprintf("phase(%d)", int(ph))
	}
}

// scanState is threaded through the records of one export.
type scanState struct {
	phase scanPhase
	stmt  model.Statement
}

// feed advances the scan by one record. line is the input line the record
// starts on.
func (p *Parser) feed(s *scanState, rec model.RawRow, line int) error {
	switch s.phase {
	case seekingHeader:
		if p.isHeader(rec) {
			s.phase = collecting
			s.stmt.HeaderLine = line
			p.log.Debug().Int("line", line).Int("skipped", s.stmt.Skipped).Msg("header row found")
			return nil
		}
		s.stmt.Skipped++
		return nil

	case collecting:
		// Only the first header switches phase; a repeat is not data.
		if p.isHeader(rec) {
			p.log.Warn().Int("line", line).Msg("ignoring repeated header row")
			return nil
		}
		row, err := p.normalize(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", line, err)
		}
		row.Line = line
		s.stmt.Rows = append(s.stmt.Rows, row)
		return nil

	default:
		return fmt.Errorf("row %d: scan already %s", line, s.phase)
	}
}

func (p *Parser) finish(s *scanState) {
	if s.phase == seekingHeader {
		p.log.Debug().Int("skipped", s.stmt.Skipped).Str("marker", p.input.HeaderMarker).Msg("header row not found")
	}
	s.phase = done
}

func (p *Parser) isHeader(rec model.RawRow) bool {
	return len(rec) > 0 && rec[0] == p.input.HeaderMarker
}
