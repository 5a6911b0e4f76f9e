package angel

import (
	"bytes"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Sequence separator and brackets.
const (
	SequenceOpen      = "["
	SequenceClose     = "]"
	SequenceSeparator = ", "
)

// Sequence is an ordered collection of formattable values. It is itself
// Formattable, so sequences nest and can be passed straight to Print.
type Sequence[T Formattable] []T

// String renders the sequence with the default format options.
func (s Sequence[T]) String() string {
	return SequenceToTextWith(DefaultFormatter(), []T(s))
}

func (s Sequence[T]) lower(f Formatter) ast.SchemaNode {
	return sequenceNode(f, []T(s))
}

// lowerer is implemented by composite values that render as a nested array.
type lowerer interface {
	lower(f Formatter) ast.SchemaNode
}

// SequenceToText renders values as "[e0, e1, ..., en]".
//
// Each element renders exactly as Print would render it alone, so booleans
// inside a sequence read True and False. The empty sequence renders as "[]".
//
// Example:
//
//	angel.SequenceToText(angel.Values([]int{1, 2, 3}))
//	// "[1, 2, 3]"
func SequenceToText[T Formattable](values []T) string {
	return SequenceToTextWith(DefaultFormatter(), values)
}

// SequenceToTextWith renders values using f for every element.
func SequenceToTextWith[T Formattable](f Formatter, values []T) string {
	return renderToString(sequenceNode(f, values))
}

// ScalarsToText renders a slice of raw scalars, the form generated code
// produces for vector literals.
//
// Example:
//
//	angel.ScalarsToText([]bool{true, false})
//	// "[True, False]"
func ScalarsToText[T Scalar](values []T) string {
	return SequenceToText(Values(values))
}

// sequenceNode lowers values to an array of literal nodes. Nested sequences
// become nested arrays; everything else becomes a literal holding the
// element's formatted text.
func sequenceNode[T Formattable](f Formatter, values []T) *ast.ArrayDataNode {
	elements := make([]ast.SchemaNode, 0, len(values))
	for _, v := range values {
		if l, ok := any(v).(lowerer); ok {
			elements = append(elements, l.lower(f))
			continue
		}
		elements = append(elements, ast.NewLiteralNode(f.Text(v), ast.ZeroPosition()))
	}
	return ast.NewArrayDataNode(elements, ast.ZeroPosition())
}

func renderToString(node ast.SchemaNode) string {
	var buf bytes.Buffer
	renderNode(node, &buf)
	return buf.String()
}

// renderNode recursively renders a lowered sequence to the buffer.
func renderNode(node ast.SchemaNode, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.ArrayDataNode:
		renderArrayData(n, buf)
	case *ast.LiteralNode:
		renderLiteral(n, buf)
	}
}

func renderArrayData(node *ast.ArrayDataNode, buf *bytes.Buffer) {
	buf.WriteString(SequenceOpen)
	for i, elem := range node.Elements() {
		if i > 0 {
			buf.WriteString(SequenceSeparator)
		}
		renderNode(elem, buf)
	}
	buf.WriteString(SequenceClose)
}

func renderLiteral(node *ast.LiteralNode, buf *bytes.Buffer) {
	if s, ok := node.Value().(string); ok {
		buf.WriteString(s)
	}
}
