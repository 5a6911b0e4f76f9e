package angel

import (
	"io"
	"os"
)

// LineTerminator ends every printed line.
const LineTerminator = "\n"

// Print writes the textual form of v and a line terminator to standard output.
//
// A write failure is returned as *IOError and nothing is retried.
//
// Example:
//
//	angel.Print(angel.Bool(true)) // True
//	angel.Print(angel.Float(1234567)) // 1.23457e+06
func Print(v Formattable) error {
	return DefaultFormatter().Fprint(os.Stdout, v)
}

// PrintScalar prints a raw scalar. It is shorthand for Print(Of(v)).
func PrintScalar[T Scalar](v T) error {
	return Print(Of(v))
}

// Text returns the textual form of v using the default format options,
// without the line terminator.
func Text(v Formattable) string {
	return DefaultFormatter().Text(v)
}

// Fprint writes the textual form of v and a line terminator to w in a single
// Write call.
func (f Formatter) Fprint(w io.Writer, v Formattable) error {
	line := f.Text(v) + LineTerminator
	if _, err := io.WriteString(w, line); err != nil {
		return &IOError{Op: "print", Err: err}
	}
	return nil
}
