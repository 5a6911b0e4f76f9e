package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shapestone/angel-runtime/internal/conformance"
	"github.com/shapestone/angel-runtime/pkg/angel"
)

var (
	kind      string
	delim     string
	precision int
)

var printCmd = &cobra.Command{
	Use:   "print VALUE",
	Short: "Print one value followed by a newline",
	Example: `  angelrt print --kind bool true
  angelrt print --kind float 1234567`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

var seqCmd = &cobra.Command{
	Use:   "seq VALUE...",
	Short: "Print the bracketed text of a sequence",
	Args:  cobra.ArbitraryArgs,
	RunE:  runSeq,
}

var splitCmd = &cobra.Command{
	Use:   "split TEXT",
	Short: "Split text on a delimiter, one token per line",
	Args:  cobra.ExactArgs(1),
	RunE:  runSplit,
}

var readCmd = &cobra.Command{
	Use:   "read [PROMPT]",
	Short: "Read one whitespace-delimited token from stdin and echo it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRead,
}

var conformCmd = &cobra.Command{
	Use:   "conform [FILE]",
	Short: "Run a conformance suite (the built-in one when FILE is omitted)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConform,
}

func init() {
	for _, cmd := range []*cobra.Command{printCmd, seqCmd} {
		cmd.Flags().StringVarP(&kind, "kind", "k", "text", "Value kind: bool, int, uint, float, float32, char, text")
		cmd.Flags().IntVarP(&precision, "precision", "p", angel.DefaultFormatOptions().FloatPrecision, "Significant digits for floats (-1 for shortest)")
	}
	splitCmd.Flags().StringVarP(&delim, "delim", "d", ",", "Single-character delimiter")
}

func formatter() angel.Formatter {
	return angel.NewFormatter(angel.FormatOptions{FloatPrecision: precision})
}

func parseValue(text string) (angel.Value, error) {
	v, err := conformance.ScalarSpec{Kind: kind, Text: text}.Parse()
	if err != nil {
		return angel.Value{}, fmt.Errorf("invalid %s value %q: %w", kind, text, err)
	}
	return v, nil
}

func runPrint(cmd *cobra.Command, args []string) error {
	v, err := parseValue(args[0])
	if err != nil {
		return err
	}
	logger.Debug("Printing value", zap.Stringer("kind", v.Kind()), zap.String("input", args[0]))
	return formatter().Fprint(cmd.OutOrStdout(), v)
}

func runSeq(cmd *cobra.Command, args []string) error {
	values := make([]angel.Value, 0, len(args))
	for _, arg := range args {
		v, err := parseValue(arg)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	logger.Debug("Encoding sequence", zap.String("kind", kind), zap.Int("len", len(values)))

	text := angel.SequenceToTextWith(formatter(), values)
	return formatter().Fprint(cmd.OutOrStdout(), angel.Str(text))
}

func runSplit(cmd *cobra.Command, args []string) error {
	r, size := utf8.DecodeRuneInString(delim)
	if size == 0 || size != len(delim) || r == utf8.RuneError {
		return fmt.Errorf("delimiter must be exactly one character, got %q", delim)
	}

	tokens := angel.Split(args[0], r)
	logger.Debug("Split text", zap.Int("tokens", len(tokens)))

	out := cmd.OutOrStdout()
	for _, token := range tokens {
		if err := angel.DefaultFormatter().Fprint(out, angel.Str(token)); err != nil {
			return err
		}
	}
	return nil
}

func runRead(cmd *cobra.Command, args []string) error {
	prompt := ""
	if len(args) == 1 {
		prompt = args[0]
	}

	con := angel.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	token, err := con.Read(prompt)
	if errors.Is(err, angel.ErrEndOfInput) {
		logger.Debug("No token before end of input")
		return err
	}
	if err != nil {
		return err
	}
	return con.Print(angel.Str(token))
}

func runConform(cmd *cobra.Command, args []string) error {
	var (
		suite *conformance.Suite
		err   error
	)
	if len(args) == 1 {
		logger.Info("Loading conformance suite", zap.String("path", args[0]))
		suite, err = conformance.LoadFile(args[0])
	} else {
		logger.Info("Loading built-in conformance suite")
		suite, err = conformance.Builtin()
	}
	if err != nil {
		return err
	}

	report := conformance.NewRunner(conformance.WithLogger(logger)).Run(suite)

	out := cmd.OutOrStdout()
	for _, res := range report.Failures() {
		fmt.Fprintf(out, "FAIL %s (%s)\n  want: %q\n   got: %q\n", res.Name, res.Op, res.Want, res.Got)
	}
	fmt.Fprintf(out, "%d passed, %d failed\n", report.Passed, report.Failed)

	if !report.OK() {
		return fmt.Errorf("%d of %d conformance cases failed", report.Failed, len(report.Results))
	}
	return nil
}
