package angel

import (
	"io"
	"os"
)

// Read writes prompt to standard output without a terminator, then blocks
// until one whitespace-delimited token is available on standard input.
//
// Standard input is read one byte at a time, so nothing past the token's
// terminator is taken from the process's input. Use a Console for buffered
// reading.
//
// Read returns ErrEndOfInput if the input ends before a token starts. There
// is no timeout and no cancellation.
//
// Example:
//
//	name, err := angel.Read("Name: ")
func Read(prompt string) (string, error) {
	return readToken(os.Stdin, os.Stdout, prompt)
}

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

func readToken(in io.Reader, out io.Writer, prompt string) (string, error) {
	if err := writePrompt(out, prompt); err != nil {
		return "", err
	}
	return scanToken(in)
}

func writePrompt(out io.Writer, prompt string) error {
	if prompt != "" {
		if _, err := io.WriteString(out, prompt); err != nil {
			return &IOError{Op: "prompt", Err: err}
		}
	}
	if fl, ok := out.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return &IOError{Op: "prompt", Err: err}
		}
	}
	return nil
}

// scanToken skips leading whitespace and returns the following run of
// non-whitespace bytes. When in can unread, the terminating whitespace is
// pushed back.
func scanToken(in io.Reader) (string, error) {
	src := byteSource(in)

	var token []byte
	for {
		b, err := src.ReadByte()
		if err != nil {
			if err == io.EOF {
				if len(token) == 0 {
					return "", ErrEndOfInput
				}
				return string(token), nil
			}
			return "", &IOError{Op: "read", Err: err}
		}

		if isSpace(b) {
			if len(token) == 0 {
				continue
			}
			if bs, ok := src.(io.ByteScanner); ok {
				// Cannot fail: the last operation was a successful ReadByte.
				_ = bs.UnreadByte()
			}
			return string(token), nil
		}

		token = append(token, b)
	}
}

// isSpace reports whether b is whitespace in the C locale.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func byteSource(in io.Reader) io.ByteReader {
	if br, ok := in.(io.ByteReader); ok {
		return br
	}
	return &singleByteReader{r: in}
}

// singleByteReader reads exactly one byte per call and never reads ahead.
type singleByteReader struct {
	r   io.Reader
	buf [1]byte
}

func (s *singleByteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			err = io.EOF
		}
		return 0, err
	}
	return s.buf[0], nil
}
