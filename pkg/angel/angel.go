// Package angel is the runtime support library for programs generated by the
// Angel source-to-source translator.
//
// Generated code calls four primitives:
//
//   - Print writes one value as a line, rendering booleans as True/False
//   - Read prompts and returns one whitespace-delimited token from input
//   - SequenceToText renders a slice as "[e0, e1, ..., en]"
//   - Split breaks text on a delimiter rune, dropping empty fragments
//
// The textual forms are fixed so that programs generated for different
// target languages print byte-identical output for the same values.
//
// # Values
//
// Rendering dispatches on a closed set of kinds: bool, signed and unsigned
// integers, floats, characters and text. Raw Go scalars are tagged with Of
// (or the kind-specific constructors Bool, Int, Uint, Float, Float32, Rune,
// Str). Anything else must implement Formattable by providing a String
// method; a value that does neither is rejected by the compiler.
//
//	angel.PrintScalar(true)                         // True
//	angel.PrintScalar(42)                           // 42
//	angel.PrintScalar(2.5)                          // 2.5
//	angel.Print(angel.Sequence[angel.Value]{        // [1, True]
//	    angel.Int(1), angel.Bool(true),
//	})
//
// # Thread Safety
//
// The package keeps no mutable state. Print, Split, SequenceToText and Text
// may be called from multiple goroutines; ordering of lines written to the
// shared standard output is up to the caller. A Console must be used by one
// goroutine at a time.
//
// # Errors
//
// Split and SequenceToText cannot fail. Read returns ErrEndOfInput when the
// input is exhausted. Stream failures are returned as *IOError and are never
// retried.
package angel
