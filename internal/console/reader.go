// internal/console/reader.go
//
// Line-based input for the guess engine.
// Reader wraps any io.Reader (normally os.Stdin) and returns one line per call,
// without the trailing "\n" or "\r\n". End of input is reported as io.EOF, which
// the engine treats as a broken input channel.
//
// Lines longer than MaxLineSize are cut: the first MaxLineSize bytes are returned
// followed by Truncated, and the rest of the line is discarded. Such a line can
// never parse as a number, so the engine rejects it and keeps reading.

package console

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// MaxLineSize is the number of bytes kept from a single input line.
const MaxLineSize = 64 * 1024

// Truncated marks a line that was cut at MaxLineSize.
const Truncated = "…"

// Reader implements game.LineReader over an io.Reader.
type Reader struct {
	br *bufio.Reader
}

// NewReader constructs a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// ReadLine returns the next line, or io.EOF once the input is exhausted.
// A final line without a newline is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	var (
		line []byte
		read bool
		cut  bool
	)
	for {
		chunk, err := r.br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		chunk = bytes.TrimSuffix(chunk, []byte("\n"))
		if keep := MaxLineSize - len(line); len(chunk) > keep {
			chunk, cut = chunk[:keep], true
		}
		line = append(line, chunk...)

		switch {
		case err == nil:
			return finish(line, cut), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if !read {
				return "", io.EOF
			}
			return finish(line, cut), nil
		default:
			return "", fmt.Errorf("read line: %w", err)
		}
	}
}

// finish drops a "\r" left by a "\r\n" terminator and marks cut lines.
func finish(line []byte, cut bool) string {
	line = bytes.TrimSuffix(line, []byte("\r"))
	if cut {
		return string(line) + Truncated
	}
	return string(line)
}
