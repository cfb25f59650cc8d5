package csvloader

// defaultScratchSize is the initial capacity of the scratch buffer.
const defaultScratchSize = 64

// scratch is the buffer quoted fields are unescaped into before their value is copied out.
//
// It belongs to a single load call. Its capacity only grows: once a long quoted field has been
// seen, later fields reuse the larger allocation instead of reallocating. The contents are only
// valid until the next quoted field is unescaped.
type scratch struct {
	b     []byte
	limit int // zero means no limit
}

func newScratch(size, limit int) *scratch {
	if size <= 0 {
		size = defaultScratchSize
	}
	if limit > 0 && size > limit {
		size = limit
	}
	return &scratch{b: make([]byte, 0, size), limit: limit}
}

// grow ensures the buffer can hold n bytes. The new capacity is the larger of twice the
// current capacity and n, capped at the limit.
func (s *scratch) grow(n int) error {
	if n <= cap(s.b) {
		return nil
	}
	if s.limit > 0 && n > s.limit {
		return ErrAllocationFailure
	}

	size := 2 * cap(s.b)
	if size < n {
		size = n
	}
	if s.limit > 0 && size > s.limit {
		size = s.limit
	}
	s.b = make([]byte, 0, size)
	return nil
}

// unescape writes the body of a quoted field into the buffer, collapsing each doubled quote
// into one, and returns the result. raw is the field without its bounding quotes; the scanner
// has already checked that its quotes come in pairs.
func (s *scratch) unescape(raw []byte) ([]byte, error) {
	if err := s.grow(len(raw)); err != nil {
		return nil, err
	}

	dst := s.b[:0]
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '"' {
			i++
		}
		dst = append(dst, c)
	}
	s.b = dst
	return dst, nil
}
