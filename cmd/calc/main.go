package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"github.com/mattn/go-isatty"

	"github.com/zephyrtronium/calculator"
	"github.com/zephyrtronium/calculator/internal/config"
)

type cli struct {
	// Expr is nil when no expression argument was given, as opposed to an
	// empty one.
	Expr   *string `arg:"" optional:"" help:"Expression to evaluate. If omitted, each line of standard input is evaluated."`
	Config string  `short:"c" type:"path" help:"YAML file with output settings."`
	Format string  `help:"Result formatting verb for numbers, e.g. %.3f."`
	Echo   *bool   `negatable:"" help:"Print the parenthesized form of each expression."`
	Tokens bool    `help:"Print the postfix tokens of each expression."`
	Color  string  `help:"Color errors: auto, always, or never."`
}

// stdio is the process's view of the outside world.
type stdio struct {
	in          io.Reader
	out, err    io.Writer
	inTerminal  bool
	errTerminal bool
}

func main() {
	log.SetFlags(0)
	code, err := run(os.Args[1:], stdio{
		in:          os.Stdin,
		out:         os.Stdout,
		err:         os.Stderr,
		inTerminal:  isTerminal(os.Stdin),
		errTerminal: isTerminal(os.Stderr),
	})
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// run evaluates the expressions requested by args and returns the exit code.
// The error is non-nil only if calc couldn't be set up.
func run(args []string, std stdio) (int, error) {
	var c cli
	k, err := kong.New(&c,
		kong.Name("calc"),
		kong.Description("Evaluate arithmetic and boolean expressions.\n\nUse \"calc -- -1+2\" to pass an expression that starts with -."),
		kong.Writers(std.out, std.err),
	)
	if err != nil {
		return 0, err
	}
	kctx, err := k.Parse(args)
	if err != nil {
		return 0, err
	}
	cfg, err := settings(&c)
	if err != nil {
		return 0, err
	}
	p := printer{
		cfg:    cfg,
		tokens: c.Tokens,
		out:    std.out,
		err:    std.err,
		color:  cfg.Color == config.ColorAlways || cfg.Color == config.ColorAuto && std.errTerminal,
	}

	if c.Expr != nil {
		if !p.eval(*c.Expr) {
			return 1, nil
		}
		return 0, nil
	}
	if std.inTerminal {
		fmt.Fprintln(std.err, "calc: missing expression")
		kctx.PrintUsage(true)
		return 2, nil
	}
	code := 0
	s := bufio.NewScanner(std.in)
	for s.Scan() {
		line := s.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !p.eval(line) {
			code = 1
		}
	}
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	return code, nil
}

// settings merges the config file, if any, with flags. Flags win.
func settings(c *cli) (config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		var err error
		cfg, err = config.Load(c.Config)
		if err != nil {
			return config.Config{}, err
		}
	}
	if c.Format != "" {
		cfg.Format = c.Format
	}
	if c.Echo != nil {
		cfg.Echo = *c.Echo
	}
	if c.Color != "" {
		cfg.Color = c.Color
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

type printer struct {
	cfg    config.Config
	tokens bool
	color  bool
	out    io.Writer
	err    io.Writer
}

// eval parses and evaluates one expression, printing the result or the
// error. Returns false if the expression didn't parse.
func (p *printer) eval(src string) bool {
	if p.tokens {
		repr.New(p.out).Println(calculator.ToPostfix(calculator.Tokenize(src)))
	}
	e, err := calculator.Parse(src)
	if err != nil {
		if p.color {
			fmt.Fprintf(p.err, "\x1b[31m%v\x1b[0m\n", err)
		} else {
			fmt.Fprintln(p.err, err)
		}
		return false
	}
	if p.cfg.Echo {
		fmt.Fprintf(p.out, "%v : ", e)
	}
	fmt.Fprintf(p.out, "%s = %s\n", src, p.format(e.Eval()))
	return true
}

func (p *printer) format(v calculator.Value) string {
	if f, ok := v.AsFloat(); ok && p.cfg.Format != "" {
		return fmt.Sprintf(p.cfg.Format, f)
	}
	return v.String()
}
