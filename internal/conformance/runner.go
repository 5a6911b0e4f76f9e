package conformance

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/shapestone/angel-runtime/pkg/angel"
)

// Result is the outcome of one case.
type Result struct {
	Name   string
	Op     Op
	Passed bool
	Want   string
	Got    string
}

// Report summarizes a run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// OK reports whether every case passed.
func (r Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the failed results in suite order.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Runner executes suites against the angel package.
type Runner struct {
	logger *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger that receives one entry per case.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner. Without WithLogger nothing is logged.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every case in order and never stops early.
func (r *Runner) Run(s *Suite) Report {
	var report Report
	for i := range s.Cases {
		res := r.runCase(&s.Cases[i])
		report.Results = append(report.Results, res)

		fields := []zap.Field{
			zap.String("case", res.Name),
			zap.String("op", string(res.Op)),
		}
		if res.Passed {
			report.Passed++
			r.logger.Debug("case passed", fields...)
		} else {
			report.Failed++
			r.logger.Warn("case failed", append(fields,
				zap.String("want", res.Want),
				zap.String("got", res.Got),
			)...)
		}
	}

	r.logger.Info("conformance run finished",
		zap.Int("passed", report.Passed),
		zap.Int("failed", report.Failed),
	)
	return report
}

func (r *Runner) runCase(c *Case) Result {
	res := Result{Name: c.Name, Op: c.Op}

	switch c.Op {
	case OpPrint:
		var out bytes.Buffer
		if err := r.formatter(c).Fprint(&out, c.value); err != nil {
			res.Got = err.Error()
		} else {
			res.Got = out.String()
		}
		res.Want = *c.Output

	case OpSequence:
		res.Got = angel.SequenceToTextWith(r.formatter(c), c.values)
		res.Want = *c.Output

	case OpSplit:
		res.Got = quoteTokens(angel.Split(c.Text, c.delim))
		res.Want = quoteTokens(c.Tokens)

	case OpRead:
		res.Got, res.Want = runRead(c)
	}

	res.Passed = res.Got == res.Want
	return res
}

func (r *Runner) formatter(c *Case) angel.Formatter {
	opts := angel.DefaultFormatOptions()
	if c.Precision != nil {
		opts.FloatPrecision = *c.Precision
	}
	return angel.NewFormatter(opts)
}

// runRead reads until the console reports an error, then describes the
// tokens, the final error and, when expected, the prompt output.
func runRead(c *Case) (got, want string) {
	var out bytes.Buffer
	con := angel.NewConsole(strings.NewReader(c.Stdin), &out)

	var tokens []string
	var errName string
	for {
		token, err := con.Read(c.Prompt)
		if err != nil {
			if errors.Is(err, angel.ErrEndOfInput) {
				errName = ErrorEndOfInput
			} else {
				errName = err.Error()
			}
			break
		}
		tokens = append(tokens, token)
	}

	got = fmt.Sprintf("tokens=%s error=%s", quoteTokens(tokens), errName)
	want = fmt.Sprintf("tokens=%s error=%s", quoteTokens(c.Tokens), c.Error)
	if c.Output != nil {
		got += fmt.Sprintf(" output=%q", out.String())
		want += fmt.Sprintf(" output=%q", *c.Output)
	}
	return got, want
}

// quoteTokens renders tokens unambiguously; a nil slice and an empty slice
// render the same.
func quoteTokens(tokens []string) string {
	quoted := slices.Clone(tokens)
	for i, t := range quoted {
		quoted[i] = fmt.Sprintf("%q", t)
	}
	return "[" + strings.Join(quoted, " ") + "]"
}
