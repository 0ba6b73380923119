package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

// options are the values of the root command's flags.
type options struct {
	config   string
	in       string
	format   string
	echo     bool
	strict   bool
	rightpow bool
	jobs     int
	color    string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var o options
	cmd := &cobra.Command{
		Use:   "calc [flags] [expr...]",
		Short: "Evaluate arithmetic expressions",
		Long: `calc evaluates arithmetic expressions with + - * / ^, brackets, the
functions sin cos tan asin acos atan exp ln log log2 log10 abs sqrt, and the
constants PI and E. Results are printed in the order the expressions are given.

Expressions starting with a minus sign must come after "--".`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		Version:      version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &o, args)
		},
	}
	f := cmd.Flags()
	f.StringVar(&o.config, "config", "", "config file (.toml, .yaml, or .yml)")
	f.StringVar(&o.in, "in", "", "input file with one expression per line, or - for stdin (default stdin if no args given)")
	f.StringVar(&o.format, "fmt", "%g", "result formatting verb")
	f.BoolVar(&o.echo, "echo", false, "print each expression in postfix order")
	f.BoolVar(&o.strict, "strict", false, "reject unrecognized text instead of skipping it")
	f.BoolVar(&o.rightpow, "right-assoc-pow", false, "group ^ right to left")
	f.IntVarP(&o.jobs, "jobs", "j", 1, "number of expressions to evaluate concurrently")
	f.StringVar(&o.color, "color", "auto", "colorize output (auto|on|off)")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "log debug information to stderr")
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, o *options, args []string) error {
	log := newLogger(cmd.ErrOrStderr(), o.verbose)
	cfg := defaultConfig()
	if o.config != "" {
		c, err := loadConfig(o.config)
		if err != nil {
			return err
		}
		log.Debug("loaded config", slog.String("config", o.config))
		cfg = c
	}
	cfg.override(cmd, o)
	if err := cfg.validate(); err != nil {
		return err
	}

	var srcs []string
	if o.in != "" || len(args) == 0 {
		lines, err := readInput(cmd.InOrStdin(), o.in)
		if err != nil {
			return err
		}
		srcs = append(srcs, lines...)
	}
	srcs = append(srcs, args...)

	var opts []calc.ParseOption
	if cfg.Strict {
		opts = append(opts, calc.Strict())
	}
	if cfg.RightAssocPow {
		opts = append(opts, calc.RightAssocPow())
	}
	results := evalAll(log, srcs, cfg.Jobs, opts)

	p := newPrinter(cmd.OutOrStdout(), cfg.Format, cfg.Color)
	for i, r := range results {
		if cfg.Echo && r.expr != nil {
			p.postfix(srcs[i], r.expr)
		}
		if r.err != nil {
			p.failure(r.err)
			continue
		}
		p.result(srcs[i], r.val)
	}
	return p.err
}

// result is the outcome of evaluating one expression.
type result struct {
	expr *calc.Expr
	val  float64
	err  error
}

// evalAll evaluates srcs using up to jobs goroutines. The results are in the
// same order as srcs.
func evalAll(log *slog.Logger, srcs []string, jobs int, opts []calc.ParseOption) []result {
	results := make([]result, len(srcs))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			r := &results[i]
			r.expr, r.err = calc.Parse(src, opts...)
			if r.err != nil {
				log.Debug("parse failed", slog.String("expr", src), slog.Any("err", r.err))
				return nil
			}
			log.Debug("parsed", slog.String("expr", src), slog.String("rpn", r.expr.String()))
			r.val, r.err = r.expr.Eval()
			return nil
		})
	}
	// Evaluation errors are results, not failures.
	g.Wait()
	return results
}

// readInput reads non-blank lines from the named file, or from stdin if name
// is empty or "-".
func readInput(stdin io.Reader, name string) ([]string, error) {
	r := stdin
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	var lines []string
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
