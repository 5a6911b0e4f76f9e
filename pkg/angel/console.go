package angel

import (
	"bufio"
	"io"
)

// Console binds Read and Print to explicit streams.
//
// A Console owns a buffered reader over its input, so successive Read calls
// never lose bytes buffered by an earlier call. A Console is not safe for
// concurrent use.
//
// Example:
//
//	con := angel.NewConsole(os.Stdin, os.Stdout)
//	name, err := con.Read("Name: ")
//	if err != nil {
//	    return err
//	}
//	con.Print(angel.Str("Hello, " + name))
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	format Formatter
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithFormatOptions sets the options used by Console.Print.
func WithFormatOptions(opts FormatOptions) ConsoleOption {
	return func(c *Console) {
		c.format = NewFormatter(opts)
	}
}

// NewConsole creates a Console reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		in:     bufio.NewReader(in),
		out:    out,
		format: DefaultFormatter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read writes prompt without a terminator and returns the next
// whitespace-delimited token. It returns ErrEndOfInput when no token remains.
func (c *Console) Read(prompt string) (string, error) {
	return readToken(c.in, c.out, prompt)
}

// Print writes the textual form of v followed by a line terminator.
func (c *Console) Print(v Formattable) error {
	return c.format.Fprint(c.out, v)
}

// Formatter returns the formatter used by Print.
func (c *Console) Formatter() Formatter {
	return c.format
}

// Flush flushes the output if it is buffered.
func (c *Console) Flush() error {
	if fl, ok := c.out.(flusher); ok {
		if err := fl.Flush(); err != nil {
			return &IOError{Op: "print", Err: err}
		}
	}
	return nil
}

// ConsolePrintScalar prints a raw scalar through c.
func ConsolePrintScalar[T Scalar](c *Console, v T) error {
	return c.Print(Of(v))
}
