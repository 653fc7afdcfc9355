package linepipe

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"

	"github.com/kbukum/utl/errors"
)

// Compression names the encoding detected on an input stream.
type Compression string

const (
	CompressionNone  Compression = "none"
	CompressionGzip  Compression = "gzip"
	CompressionZstd  Compression = "zstd"
	CompressionBzip2 Compression = "bzip2"
	CompressionXz    Compression = "xz"
)

var magics = []struct {
	kind  Compression
	magic []byte
}{
	{CompressionGzip, []byte{0x1f, 0x8b}},
	{CompressionBzip2, []byte{0x42, 0x5a, 0x68}},
	{CompressionZstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{CompressionXz, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
}

// Detect peeks at the start of br and reports its compression. Streams
// shorter than a magic number are uncompressed.
func Detect(br *bufio.Reader) (Compression, error) {
	head, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return CompressionNone, errors.IO("read input", err)
	}
	for _, m := range magics {
		if bytes.HasPrefix(head, m.magic) {
			return m.kind, nil
		}
	}
	return CompressionNone, nil
}

// Decompress returns a reader over the decoded content of r. Gzip, zstd,
// bzip2 and xz streams are recognised by their magic numbers; anything else
// is passed through unchanged. Closing the result does not close r.
func Decompress(r io.Reader) (io.ReadCloser, Compression, error) {
	br := bufio.NewReader(r)
	kind, err := Detect(br)
	if err != nil {
		return nil, kind, err
	}

	var rc io.ReadCloser
	switch kind {
	case CompressionGzip:
		var zr *gzip.Reader
		zr, err = gzip.NewReader(br)
		rc = zr
	case CompressionZstd:
		var dec *zstd.Decoder
		dec, err = zstd.NewReader(br)
		if err == nil {
			rc = dec.IOReadCloser()
		}
	case CompressionBzip2:
		rc = io.NopCloser(bzip2.NewReader(br))
	case CompressionXz:
		var xr *xz.Reader
		xr, err = xz.NewReader(br)
		rc = io.NopCloser(xr)
	default:
		rc = io.NopCloser(br)
	}
	if err != nil {
		return nil, kind, errors.IO("open "+string(kind)+" stream", err).WithDetail("compression", string(kind))
	}
	return rc, kind, nil
}
