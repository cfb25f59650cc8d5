package csvloader

import (
	"io"
	"unsafe"
)

// defaultLoader is used by the package-level functions.
var defaultLoader = &Loader{}

// Loader parses CSV text into typed grids. The zero value is ready to use.
//
// A Loader holds configuration only. Every call allocates its own scratch buffer, so one
// Loader may be used from multiple goroutines at once.
type Loader struct {
	// MaxFieldSize caps the scratch buffer used to unescape quoted fields. A quoted field longer
	// than this fails with ErrAllocationFailure. Zero means no limit.
	MaxFieldSize int
	// InitialScratchSize is the starting capacity of the scratch buffer. Zero selects 64 bytes.
	InitialScratchSize int
}

// Loads parses data with the default Loader.
func Loads(data []byte) (Grid, error) {
	return defaultLoader.Loads(data)
}

// LoadsString parses s with the default Loader without copying it.
func LoadsString(s string) (Grid, error) {
	return defaultLoader.LoadsString(s)
}

// LoadReader reads r to the end and parses the result with the default Loader.
func LoadReader(r io.Reader) (Grid, error) {
	return defaultLoader.LoadReader(r)
}

// LoadsString parses s without copying it. Returned strings never alias s.
func (l *Loader) LoadsString(s string) (Grid, error) {
	// data is only read; every string value is copied out of it.
	return l.Loads(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// LoadReader reads r to the end and parses the result. It is not a streaming parser: the whole
// input is held in memory.
func (l *Loader) LoadReader(r io.Reader) (Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return l.Loads(data)
}

// Loads parses data, which is borrowed for the duration of the call and never modified.
//
// It returns either the complete grid or an error, never both. An empty input yields one row
// holding one null value. A final row without a trailing newline is still returned, and a
// trailing newline does not start an extra row.
func (l *Loader) Loads(data []byte) (Grid, error) {
	p := parser{
		data:    data,
		scratch: newScratch(l.InitialScratchSize, l.MaxFieldSize),
		line:    1,
	}
	return p.run()
}

// parser is the state of one Loads call.
type parser struct {
	data    []byte
	scratch *scratch

	grid Grid
	row  Row

	// Location tracking for errors.
	line      int
	lineStart int
}

func (p *parser) run() (Grid, error) {
	data := p.data
	start := 0
	inQuotes := false
	quoted := false
	shape := newNumericShape()

	for i := 0; i < len(data); i++ {
		c := data[i]

		if !inQuotes && (c == ',' || c == '\n') {
			if err := p.appendField(data[start:i], quoted, shape, i); err != nil {
				return nil, err
			}
			if c == '\n' {
				p.closeRow()
				p.line++
				p.lineStart = i + 1
			}

			// Reset field state.
			start = i + 1
			quoted = false
			shape = newNumericShape()
			continue
		}

		pos := i - start
		if c == '"' {
			// A quote opens a quoted field only as its first byte.
			if pos == 0 {
				quoted = true
			}
			if !quoted {
				return nil, p.errorAt(i, ErrBareQuote)
			}
			// In a quoted field every quote toggles; "" closes and reopens, leaving one literal quote.
			inQuotes = !inQuotes
		} else {
			if quoted && !inQuotes {
				return nil, p.errorAt(i, ErrExtraneousData)
			}
			if c == '\n' {
				// Newline inside quotes is data; keep line numbers accurate.
				p.line++
				p.lineStart = i + 1
			}
		}
		shape.observe(c, pos)
	}

	if inQuotes {
		return nil, p.errorAt(len(data), ErrUnterminatedQuote)
	}

	// Flush the final field unless the input ended exactly on a row terminator.
	if len(data) == 0 || data[len(data)-1] != '\n' {
		if err := p.appendField(data[start:], quoted, shape, len(data)); err != nil {
			return nil, err
		}
		p.closeRow()
	}

	grid := p.grid
	p.grid = nil
	return grid, nil
}

// appendField classifies the field ending at offset end and appends it to the current row.
func (p *parser) appendField(field []byte, quoted bool, shape numericShape, end int) error {
	v, err := classify(field, quoted, shape, p.scratch)
	if err != nil {
		return p.errorAt(end, err)
	}
	p.row = append(p.row, v)
	return nil
}

// closeRow moves the current row into the grid. The next row starts with the same capacity.
func (p *parser) closeRow() {
	p.grid = append(p.grid, p.row)
	p.row = make(Row, 0, len(p.row))
}

// errorAt wraps err in a *ParseError for the byte at offset off, dropping everything built so far.
func (p *parser) errorAt(off int, err error) error {
	p.grid = nil
	p.row = nil
	return &ParseError{Line: p.line, Column: off - p.lineStart + 1, Err: err}
}
