package csvloader

import (
	"errors"
	"math"
	"strconv"
)

// numericShape tracks, byte by byte, whether the field seen so far can still be an integer or
// a float. Both flags start true for every field and only ever go from true to false.
type numericShape struct {
	isInt   bool
	isFloat bool
}

func newNumericShape() numericShape {
	return numericShape{isInt: true, isFloat: true}
}

// observe feeds byte c found at offset pos of the current field.
func (s *numericShape) observe(c byte, pos int) {
	if !s.isFloat {
		return
	}
	switch {
	case c >= '0' && c <= '9':
	case c == '-' && pos == 0:
	case c == '.':
		if s.isInt {
			s.isInt = false
		} else {
			s.isFloat = false
		}
	default:
		s.isInt = false
		s.isFloat = false
	}
}

// classify turns a finished field into a value. field is the raw span including any bounding
// quotes. The order is: empty, integer, float, quoted string, raw string.
func classify(field []byte, quoted bool, shape numericShape, buf *scratch) (Value, error) {
	switch {
	case len(field) == 0:
		return NullValue(), nil
	case shape.isInt:
		return parseInt(field), nil
	case shape.isFloat:
		return parseFloat(field), nil
	case quoted:
		body, err := buf.unescape(field[1 : len(field)-1])
		if err != nil {
			return Value{}, err
		}
		return StringValue(string(body)), nil
	default:
		return StringValue(string(field)), nil
	}
}

// parseInt parses an integer-shaped field in base 10. Values beyond the int64 range load as
// floats; text no parser accepts, such as a lone "-", loads as a string.
func parseInt(field []byte) Value {
	n, err := strconv.ParseInt(string(field), 10, 64)
	if err == nil {
		return IntValue(n)
	}
	if errors.Is(err, strconv.ErrRange) {
		return parseFloat(field)
	}
	return StringValue(string(field))
}

// parseFloat parses a float-shaped field. Text that is not a finite float64, such as "." or a
// value out of range, loads as a string.
func parseFloat(field []byte) Value {
	f, err := strconv.ParseFloat(string(field), 64)
	if err != nil || math.IsInf(f, 0) {
		return StringValue(string(field))
	}
	return FloatValue(f)
}

// classifyText reports the value an unquoted field holding s would load as.
func classifyText(s string) Value {
	shape := newNumericShape()
	for i := 0; i < len(s); i++ {
		shape.observe(s[i], i)
	}
	// Unquoted fields never touch the scratch buffer.
	v, _ := classify([]byte(s), false, shape, nil)
	return v
}
