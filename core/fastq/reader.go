// core/fastq/reader.go
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrMalformed marks a record that could not be decoded. The reader stays
// usable after returning it.
var ErrMalformed = errors.New("malformed fastq record")

// Record is a single four-line FASTQ entry.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
	Qual []byte
}

// Check reports whether the record is well formed: non-empty id, ASCII
// sequence and quality, and a quality string as long as the sequence.
func (r Record) Check() error {
	if r.ID == "" {
		return errors.New("expecting id for fastq record")
	}
	if !isASCII(r.Seq) {
		return errors.New("non-ascii character found in sequence")
	}
	if len(r.Seq) != len(r.Qual) {
		return fmt.Errorf("sequence length %d differs from quality length %d", len(r.Seq), len(r.Qual))
	}
	if !isASCII(r.Qual) {
		return errors.New("non-ascii character found in quality")
	}
	return nil
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// Reader decodes FASTQ records one at a time.
type Reader struct {
	sc   *bufio.Scanner
	line int
}

// NewReader returns a Reader over r. r is expected to be uncompressed; use
// Open or Decompress for gzip input.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow long single-line reads (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)
	return &Reader{sc: sc}
}

// Read returns the next record, or io.EOF once the input is exhausted.
//
// A record that cannot be decoded (missing '@' header, missing '+'
// separator, truncated at end of input) yields an error wrapping
// ErrMalformed and the caller may keep calling Read. A bad header consumes
// one line; a bad separator consumes the whole four-line block, including
// the line in quality position. Any other error comes from the underlying
// reader.
func (r *Reader) Read() (Record, error) {
	hdr, err := r.next(true)
	if err != nil {
		return Record{}, err
	}
	if hdr[0] != '@' {
		return Record{}, r.malformed("expected '@' at record start")
	}
	var rec Record
	rec.ID, rec.Desc = parseHeader(hdr[1:])

	seq, err := r.next(false)
	if err != nil {
		return Record{}, r.truncated(err)
	}
	rec.Seq = append([]byte(nil), seq...)

	sep, err := r.next(false)
	if err != nil {
		return Record{}, r.truncated(err)
	}
	if len(sep) == 0 || sep[0] != '+' {
		err := r.malformed("expected '+' separator")
		// Quality lines may start with '@'; never resync on one.
		if _, qerr := r.next(false); qerr != nil && qerr != io.EOF {
			return Record{}, qerr
		}
		return Record{}, err
	}

	qual, err := r.next(false)
	if err != nil {
		return Record{}, r.truncated(err)
	}
	rec.Qual = append([]byte(nil), qual...)
	return rec, nil
}

// next returns the next line without its line terminator. With skipBlank,
// empty lines between records are ignored.
func (r *Reader) next(skipBlank bool) ([]byte, error) {
	for r.sc.Scan() {
		r.line++
		line := bytes.TrimRight(r.sc.Bytes(), "\r")
		if skipBlank && len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		return line, nil
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("fastq scan: %w", err)
	}
	return nil, io.EOF
}

func (r *Reader) malformed(msg string) error {
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, r.line, msg)
}

func (r *Reader) truncated(err error) error {
	if err == io.EOF {
		return r.malformed("unexpected end of input")
	}
	return err
}

// parseHeader splits a header line (without '@') at the first space. A
// leading space leaves the id empty.
func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimRight(hdr, " \t")
	if i := bytes.IndexByte(hdr, ' '); i >= 0 {
		return string(hdr[:i]), string(hdr[i+1:])
	}
	return string(hdr), ""
}
