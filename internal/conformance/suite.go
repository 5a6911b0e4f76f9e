// Package conformance checks the runtime primitives against golden cases.
//
// A suite is a YAML document listing cases; every runtime implementation for
// every target language is expected to reproduce the same outputs. The
// built-in suite lives in testdata/conformance.yaml.
package conformance

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/shapestone/angel-runtime/pkg/angel"
)

//go:embed testdata/conformance.yaml
var builtinSuite []byte

// Op names the primitive a case exercises.
type Op string

const (
	OpPrint    Op = "print"
	OpSequence Op = "sequence"
	OpSplit    Op = "split"
	OpRead     Op = "read"
)

// ErrorEndOfInput is the error name used for angel.ErrEndOfInput in fixtures.
const ErrorEndOfInput = "end_of_input"

// Suite is a decoded list of cases.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

// Case is one golden case. Which fields apply depends on Op.
type Case struct {
	Name string `yaml:"name"`
	Op   Op     `yaml:"op"`

	// print, sequence
	Value     *ScalarSpec  `yaml:"value,omitempty"`
	Values    []ScalarSpec `yaml:"values,omitempty"`
	Precision *int         `yaml:"precision,omitempty"`

	// split
	Text  string `yaml:"text,omitempty"`
	Delim string `yaml:"delim,omitempty"`

	// read
	Stdin  string `yaml:"stdin,omitempty"`
	Prompt string `yaml:"prompt,omitempty"`

	// expectations
	Output *string  `yaml:"output,omitempty"`
	Tokens []string `yaml:"tokens,omitempty"`
	Error  string   `yaml:"error,omitempty"`

	value  angel.Value
	values []angel.Value
	delim  rune
}

// ScalarSpec is a typed scalar as written in a fixture: {kind: int, value: "1"}.
type ScalarSpec struct {
	Kind string
	Text string
}

// UnmarshalYAML keeps the raw scalar text so numbers are parsed by kind
// rather than by YAML's own resolution rules.
func (s *ScalarSpec) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Kind  string    `yaml:"kind"`
		Value yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Value.Kind != 0 && raw.Value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", raw.Value.Line)
	}
	s.Kind = raw.Kind
	s.Text = raw.Value.Value
	return nil
}

// Parse converts s into a tagged value of its kind.
func (s ScalarSpec) Parse() (angel.Value, error) {
	switch s.Kind {
	case "bool":
		b, err := strconv.ParseBool(s.Text)
		if err != nil {
			return angel.Value{}, err
		}
		return angel.Bool(b), nil
	case "int":
		i, err := strconv.ParseInt(s.Text, 10, 64)
		if err != nil {
			return angel.Value{}, err
		}
		return angel.Int(i), nil
	case "uint":
		u, err := strconv.ParseUint(s.Text, 10, 64)
		if err != nil {
			return angel.Value{}, err
		}
		return angel.Uint(u), nil
	case "float":
		f, err := strconv.ParseFloat(s.Text, 64)
		if err != nil {
			return angel.Value{}, err
		}
		return angel.Float(f), nil
	case "float32":
		f, err := strconv.ParseFloat(s.Text, 32)
		if err != nil {
			return angel.Value{}, err
		}
		return angel.Float32(float32(f)), nil
	case "char":
		r, err := singleRune(s.Text)
		if err != nil {
			return angel.Value{}, err
		}
		return angel.Rune(r), nil
	case "text":
		return angel.Str(s.Text), nil
	default:
		return angel.Value{}, fmt.Errorf("unknown kind %q", s.Kind)
	}
}

// CaseError reports an invalid case in a suite.
type CaseError struct {
	// Index is the zero-based position of the case in the suite.
	Index int
	// Name is the case name, if it had one.
	Name string
	// Err is the underlying error.
	Err error
}

// Error returns the case position, name and cause.
func (e *CaseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("conformance: case %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("conformance: case %d (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *CaseError) Unwrap() error {
	return e.Err
}

// ErrEmptySuite is returned when a document holds no cases.
var ErrEmptySuite = errors.New("conformance: suite has no cases")

// Load decodes and validates a suite.
func Load(r io.Reader) (*Suite, error) {
	var s Suite
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySuite
		}
		return nil, fmt.Errorf("conformance: decode: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, ErrEmptySuite
	}

	for i := range s.Cases {
		if err := s.Cases[i].prepare(); err != nil {
			return nil, &CaseError{Index: i, Name: s.Cases[i].Name, Err: err}
		}
	}
	return &s, nil
}

// LoadFile loads a suite from a file.
func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Builtin returns the suite embedded in the binary.
func Builtin() (*Suite, error) {
	return Load(bytes.NewReader(builtinSuite))
}

// prepare validates the case and parses its typed inputs.
func (c *Case) prepare() error {
	if c.Name == "" {
		return errors.New("missing name")
	}

	switch c.Op {
	case OpPrint:
		if c.Value == nil {
			return errors.New("print case needs a value")
		}
		v, err := c.Value.Parse()
		if err != nil {
			return err
		}
		c.value = v
		return c.needOutput()

	case OpSequence:
		c.values = make([]angel.Value, 0, len(c.Values))
		for i, spec := range c.Values {
			v, err := spec.Parse()
			if err != nil {
				return fmt.Errorf("values[%d]: %w", i, err)
			}
			c.values = append(c.values, v)
		}
		return c.needOutput()

	case OpSplit:
		r, err := singleRune(c.Delim)
		if err != nil {
			return fmt.Errorf("delim: %w", err)
		}
		c.delim = r
		return nil

	case OpRead:
		if c.Error == "" {
			c.Error = ErrorEndOfInput
		}
		return nil

	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
}

func (c *Case) needOutput() error {
	if c.Output == nil {
		return fmt.Errorf("%s case needs an output", c.Op)
	}
	return nil
}

func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, fmt.Errorf("want exactly one character, got %q", s)
	}
	return r, nil
}
