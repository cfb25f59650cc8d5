// Package source reads CSV inputs that may arrive compressed.
//
// Telemetry exports are often shipped as .gz, .zst, .lz4, .xz or s2/snappy streams. The
// compression is picked from the file name first and from the leading magic bytes second, so
// renamed or extension-less files still decode.
package source

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/ulikunitz/xz"
)

// ErrTooLarge is returned when the decompressed input exceeds the configured limit.
var ErrTooLarge = errors.New("source: input exceeds size limit")

// Compression identifies the container an input is wrapped in.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionGzip
	CompressionZstd
	CompressionS2
	CompressionLZ4
	CompressionXZ
)

var compressionNames = [...]string{
	CompressionNone: "none",
	CompressionGzip: "gzip",
	CompressionZstd: "zstd",
	CompressionS2:   "s2",
	CompressionLZ4:  "lz4",
	CompressionXZ:   "xz",
}

func (c Compression) String() string {
	if int(c) < len(compressionNames) {
		return compressionNames[c]
	}
	return fmt.Sprintf("Compression(%d)", uint8(c))
}

// ParseCompression maps a name as printed by String back to a Compression.
func ParseCompression(name string) (Compression, error) {
	for i, n := range compressionNames {
		if strings.EqualFold(name, n) {
			return Compression(i), nil
		}
	}
	return CompressionNone, fmt.Errorf("source: unknown compression %q", name)
}

var extensions = map[string]Compression{
	".gz":   CompressionGzip,
	".gzip": CompressionGzip,
	".zst":  CompressionZstd,
	".zstd": CompressionZstd,
	".s2":   CompressionS2,
	".sz":   CompressionS2,
	".lz4":  CompressionLZ4,
	".xz":   CompressionXZ,
}

var magics = []struct {
	prefix []byte
	c      Compression
}{
	{[]byte{0x1f, 0x8b}, CompressionGzip},
	{[]byte{0x28, 0xb5, 0x2f, 0xfd}, CompressionZstd},
	{[]byte{0xff, 0x06, 0x00, 0x00}, CompressionS2}, // stream identifier chunk, s2 or snappy
	{[]byte{0x04, 0x22, 0x4d, 0x18}, CompressionLZ4},
	{[]byte{0xfd, '7', 'z', 'X', 'Z', 0x00}, CompressionXZ},
}

// maxMagicLen is the longest prefix Detect looks at.
const maxMagicLen = 6

// Detect picks the compression for an input called name whose first bytes are head.
func Detect(name string, head []byte) Compression {
	if c, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return c
	}
	for _, m := range magics {
		if bytes.HasPrefix(head, m.prefix) {
			return m.c
		}
	}
	return CompressionNone
}

// NewReader wraps r so that reads return the decompressed stream.
func NewReader(r io.Reader, c Compression) (io.ReadCloser, error) {
	switch c {
	case CompressionNone:
		return io.NopCloser(r), nil
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return zr, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return dec.IOReadCloser(), nil
	case CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	case CompressionXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create xz reader: %w", err)
		}
		return io.NopCloser(xr), nil
	default:
		return nil, fmt.Errorf("source: unsupported compression %s", c)
	}
}

// Read detects the compression of r, named name, and returns the decompressed bytes along
// with the compression found. maxSize bounds the decompressed size; zero means no bound.
func Read(r io.Reader, name string, maxSize int64) ([]byte, Compression, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(maxMagicLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, CompressionNone, err
	}

	c := Detect(name, head)
	data, err := ReadAs(br, c, maxSize)
	return data, c, err
}

// ReadAs decompresses r with the given compression.
func ReadAs(r io.Reader, c Compression, maxSize int64) ([]byte, error) {
	rc, err := NewReader(r, c)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var src io.Reader = rc
	if maxSize > 0 {
		src = io.LimitReader(rc, maxSize+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("source: read %s input: %w", c, err)
	}
	if maxSize > 0 && int64(len(data)) > maxSize {
		return nil, ErrTooLarge
	}
	return data, nil
}

// ReadFile reads the file at path, decompressing it as needed.
func ReadFile(path string, maxSize int64) ([]byte, Compression, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CompressionNone, err
	}
	defer f.Close()

	return Read(f, path, maxSize)
}
