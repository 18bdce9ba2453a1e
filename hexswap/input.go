package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
)

const stdinName = "-"

var (
	magicGzip   = []byte{0x1f, 0x8b}
	magicZstd   = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicSnappy = []byte("\xff\x06\x00\x00sNaPpY")
	magicS2     = []byte("\xff\x06\x00\x00S2sTwO")
)

type source struct {
	name  string
	stdin io.Reader
	raw   bool
}

// openSources maps the command operands to sources in order. No operands
// means stdin only; "-" selects stdin wherever it appears.
func openSources(names []string, stdin io.Reader, raw bool) []source {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	sources := make([]source, 0, len(names))
	for _, name := range names {
		sources = append(sources, source{
			name:  name,
			stdin: stdin,
			raw:   raw,
		})
	}

	return sources
}

func (s source) String() string {
	if s.name == stdinName {
		return "<stdin>"
	}

	return s.name
}

func (s source) open() (io.ReadCloser, error) {
	var rc io.ReadCloser
	if s.name == stdinName {
		rc = io.NopCloser(s.stdin)
	} else {
		f, err := os.Open(s.name)
		if err != nil {
			return nil, err
		}
		rc = f
	}

	if s.raw {
		return rc, nil
	}

	dr, err := decompress(rc)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("%v: %w", s, err)
	}

	return dr, nil
}

// decompress sniffs the leading bytes of rc and wraps it in the matching
// decoder. Anything else passes through as plain text.
func decompress(rc io.ReadCloser) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(magicS2))
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(head, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		return &stack{Reader: zr, closers: []io.Closer{zr, rc}}, nil

	case bytes.HasPrefix(head, magicZstd):
		zr, err := zstd.NewReader(br, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return &stack{Reader: zr, closers: []io.Closer{zr.IOReadCloser(), rc}}, nil

	case bytes.HasPrefix(head, magicSnappy), bytes.HasPrefix(head, magicS2):
		return &stack{Reader: s2.NewReader(br), closers: []io.Closer{rc}}, nil
	}

	return &stack{Reader: br, closers: []io.Closer{rc}}, nil
}

// stack reads from the outermost decoder and closes every layer, innermost
// decoder first.
type stack struct {
	io.Reader
	closers []io.Closer
}

func (s *stack) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}

// lineReader splits on "\n", "\r\n" and a lone "\r" with no limit on line
// length. It follows the bufio.Scanner calling convention.
type lineReader struct {
	r       *bufio.Reader
	pending []string
	line    string
	err     error
	done    bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Scan() bool {
	for len(l.pending) == 0 {
		if l.done {
			return false
		}
		l.fill()
	}

	l.line, l.pending = l.pending[0], l.pending[1:]

	return true
}

// fill reads up to the next "\n". Any "\r" before it also ends a line, so a
// "\r\n" pair always arrives in one chunk.
func (l *lineReader) fill() {
	chunk, err := l.r.ReadString('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
			return
		}
	}
	if chunk == "" {
		return
	}

	terminated := strings.HasSuffix(chunk, "\n")
	if terminated {
		chunk = strings.TrimSuffix(chunk[:len(chunk)-1], "\r")
	}

	lines := strings.Split(chunk, "\r")
	// Unterminated input ending in "\r" leaves an empty tail that is not a line.
	if !terminated && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	l.pending = append(l.pending, lines...)
}

func (l *lineReader) Text() string {
	return l.line
}

func (l *lineReader) Err() error {
	return l.err
}
