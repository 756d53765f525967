// core/fastq/open.go
package fastq

import (
	"bufio"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader over the FASTQ text at path.
// "-" reads stdin (never closed by Close). Gzip input is detected by
// magic number (1F 8B) or by a .gz suffix and decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	raw, _, err := OpenRaw(path)
	if err != nil {
		return nil, err
	}
	return Decompress(raw, HasGzipSuffix(path))
}

// OpenRaw opens path without decompressing it and reports its size in
// bytes, or -1 when the size is unknown (stdin, pipes).
func OpenRaw(path string) (io.ReadCloser, int64, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), -1, nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	size := int64(-1)
	if st, err := fh.Stat(); err == nil && st.Mode().IsRegular() {
		size = st.Size()
	}
	return fh, size, nil
}

// HasGzipSuffix reports whether path names a gzip file by extension.
func HasGzipSuffix(path string) bool { return strings.HasSuffix(path, ".gz") }

// Decompress wraps rc with a gzip reader when the stream starts with the gzip
// magic number or when forceGzip is set. Closing the result closes rc.
// On error rc is closed before returning.
func Decompress(rc io.ReadCloser, forceGzip bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(rc, 64*1024)
	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || forceGzip {
		gr, err := gzip.NewReader(br)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, rc}}, nil
	}
	return &multiReadCloser{Reader: br, closers: []io.Closer{rc}}, nil
}
