package conformance

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestBuiltinSuitePasses(t *testing.T) {
	suite, err := Builtin()
	require.NoError(t, err)
	require.NotEmpty(t, suite.Cases)

	report := NewRunner().Run(suite)
	for _, res := range report.Failures() {
		t.Errorf("case %q (%s) failed:\n want %q\n  got %q", res.Name, res.Op, res.Want, res.Got)
	}
	assert.True(t, report.OK())
	assert.Equal(t, len(suite.Cases), report.Passed)
}

func TestLoadFile(t *testing.T) {
	suite, err := LoadFile(filepath.Join("testdata", "conformance.yaml"))
	require.NoError(t, err)

	builtin, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, len(builtin.Cases), len(suite.Cases))

	_, err = LoadFile(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "unknown op",
			doc:     "cases:\n  - name: x\n    op: shout\n",
			wantErr: `unknown op "shout"`,
		},
		{
			name:    "unknown kind",
			doc:     "cases:\n  - name: x\n    op: print\n    value: {kind: complex, value: \"1\"}\n    output: \"\"\n",
			wantErr: `unknown kind "complex"`,
		},
		{
			name:    "bad int",
			doc:     "cases:\n  - name: x\n    op: print\n    value: {kind: int, value: \"one\"}\n    output: \"\"\n",
			wantErr: "invalid syntax",
		},
		{
			name:    "multi-character delimiter",
			doc:     "cases:\n  - name: x\n    op: split\n    text: a\n    delim: \",,\"\n",
			wantErr: "exactly one character",
		},
		{
			name:    "empty delimiter",
			doc:     "cases:\n  - name: x\n    op: split\n    text: a\n",
			wantErr: "exactly one character",
		},
		{
			name:    "multi-character char",
			doc:     "cases:\n  - name: x\n    op: print\n    value: {kind: char, value: ab}\n    output: \"\"\n",
			wantErr: "exactly one character",
		},
		{
			name:    "missing output",
			doc:     "cases:\n  - name: x\n    op: sequence\n    values: []\n",
			wantErr: "needs an output",
		},
		{
			name:    "missing value",
			doc:     "cases:\n  - name: x\n    op: print\n    output: \"\"\n",
			wantErr: "needs a value",
		},
		{
			name:    "missing name",
			doc:     "cases:\n  - op: print\n",
			wantErr: "missing name",
		},
		{
			name:    "non-scalar value",
			doc:     "cases:\n  - name: x\n    op: print\n    value: {kind: int, value: [1]}\n    output: \"\"\n",
			wantErr: "must be a scalar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_CaseError(t *testing.T) {
	doc := "cases:\n  - name: ok\n    op: split\n    text: a\n    delim: \",\"\n  - name: bad\n    op: nope\n"

	_, err := Load(strings.NewReader(doc))

	var caseErr *CaseError
	require.True(t, errors.As(err, &caseErr))
	assert.Equal(t, 1, caseErr.Index)
	assert.Equal(t, "bad", caseErr.Name)
	assert.Equal(t, `conformance: case 1 (bad): unknown op "nope"`, err.Error())
}

func TestLoad_Empty(t *testing.T) {
	_, err := Load(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptySuite)

	_, err = Load(strings.NewReader("cases: []\n"))
	assert.ErrorIs(t, err, ErrEmptySuite)
}

func TestLoad_ReadDefaultsToEndOfInput(t *testing.T) {
	suite, err := Load(strings.NewReader("cases:\n  - name: r\n    op: read\n    stdin: \"a\"\n    tokens: [a]\n"))
	require.NoError(t, err)
	assert.Equal(t, ErrorEndOfInput, suite.Cases[0].Error)
}

func TestRunner_ReportsFailures(t *testing.T) {
	doc := `cases:
  - name: wrong bool
    op: print
    value: {kind: bool, value: "true"}
    output: "true\n"
  - name: right split
    op: split
    text: "a,,b"
    delim: ","
    tokens: [a, b]
  - name: wrong read
    op: read
    stdin: "x y"
    tokens: [x]
`
	suite, err := Load(strings.NewReader(doc))
	require.NoError(t, err)

	report := NewRunner().Run(suite)
	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Failed)

	failures := report.Failures()
	require.Len(t, failures, 2)
	assert.Equal(t, "wrong bool", failures[0].Name)
	assert.Equal(t, "True\n", failures[0].Got)
	assert.Equal(t, "wrong read", failures[1].Name)
	assert.Contains(t, failures[1].Got, `["x" "y"]`)
}

func TestRunner_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	runner := NewRunner(WithLogger(zap.New(core)))

	doc := `cases:
  - name: pass
    op: sequence
    values: []
    output: "[]"
  - name: fail
    op: sequence
    values: []
    output: "[ ]"
`
	suite, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	runner.Run(suite)

	assert.Equal(t, 1, logs.FilterMessage("case passed").Len())

	failed := logs.FilterMessage("case failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "fail", failed[0].ContextMap()["case"])
	assert.Equal(t, "[]", failed[0].ContextMap()["got"])

	finished := logs.FilterMessage("conformance run finished").All()
	require.Len(t, finished, 1)
	assert.Equal(t, int64(1), finished[0].ContextMap()["failed"])
}

func TestWithLogger_NilKeepsNop(t *testing.T) {
	r := NewRunner(WithLogger(nil))
	assert.NotNil(t, r.logger)
}

func TestQuoteTokens(t *testing.T) {
	assert.Equal(t, "[]", quoteTokens(nil))
	assert.Equal(t, "[]", quoteTokens([]string{}))
	assert.Equal(t, `["a" "b,c"]`, quoteTokens([]string{"a", "b,c"}))
}
