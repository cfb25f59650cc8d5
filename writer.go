package csvloader

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

const defaultBufferSize = 1 << 10 // 1024 bytes

var (
	errNilWriter      = errors.New("csvloader: writer is nil")
	errWriterNoTarget = errors.New("csvloader: writer destination cannot be nil")

	// ErrNonFiniteFloat is returned when a row holds an infinite or NaN float, which has no text
	// form that loads back as a float.
	ErrNonFiniteFloat = errors.New("csvloader: non-finite float cannot be written")
)

// Writer emits typed rows as CSV text that Loads reads back to the same values.
//
// Integers and floats are written bare, floats always with a decimal point. Strings are quoted
// when they are empty, contain ',', '"' or '\n', or would otherwise load as a number.
type Writer struct {
	dst *bufio.Writer

	// AlwaysQuote forces quoting for all string values when enabled.
	AlwaysQuote bool

	num []byte
	err error
}

// NewWriter creates a new Writer with internal buffering tuned for bulk writes.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		dst: bufio.NewWriterSize(w, defaultBufferSize),
		num: make([]byte, 0, 32),
	}
}

// Reset updates the underlying writer while preserving the configuration flags.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write emits a single row terminated with '\n'. A row without values is written as an empty
// line, which loads back as a row holding one null.
func (w *Writer) Write(row Row) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	for i := range row {
		if i > 0 {
			if err := w.dst.WriteByte(','); err != nil {
				w.err = err
				return err
			}
		}
		if err := w.writeValue(row[i]); err != nil {
			w.err = err
			return err
		}
	}

	if err := w.dst.WriteByte('\n'); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes every row of grid, stopping at the first error.
func (w *Writer) WriteAll(grid Grid) error {
	if w == nil {
		return errNilWriter
	}
	for _, row := range grid {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the writer.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

// Dumps renders grid as CSV text.
func Dumps(grid Grid) ([]byte, error) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.WriteAll(grid); err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (w *Writer) writeValue(v Value) error {
	switch v.Kind() {
	case KindNull:
		return nil
	case KindInt:
		n, _ := v.Int()
		w.num = strconv.AppendInt(w.num[:0], n, 10)
		_, err := w.dst.Write(w.num)
		return err
	case KindFloat:
		f, _ := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return ErrNonFiniteFloat
		}
		// 'f' keeps the text free of exponents, which would load as a string.
		w.num = strconv.AppendFloat(w.num[:0], f, 'f', -1, 64)
		if bytes.IndexByte(w.num, '.') < 0 {
			w.num = append(w.num, '.', '0')
		}
		_, err := w.dst.Write(w.num)
		return err
	default:
		s, _ := v.Str()
		return w.writeString(s)
	}
}

func (w *Writer) writeString(field string) error {
	if !w.AlwaysQuote && !fieldNeedsQuote(field) {
		_, err := w.dst.WriteString(field)
		return err
	}
	if err := w.dst.WriteByte('"'); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			if _, err := w.dst.WriteString(field[start : i+1]); err != nil {
				return err
			}
			if err := w.dst.WriteByte('"'); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(field) {
		if _, err := w.dst.WriteString(field[start:]); err != nil {
			return err
		}
	}
	return w.dst.WriteByte('"')
}

// fieldNeedsQuote reports whether field, written bare, would load as something other than
// the same string.
func fieldNeedsQuote(field string) bool {
	if field == "" || strings.ContainsAny(field, ",\"\n") {
		return true
	}
	return classifyText(field).Kind() != KindString
}
