// Package cli handles command-line argument parsing.
package cli

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"

	"github.com/rickgorman/flagparser/pkg/flagparser"
)

var (
	ErrShowHelp    = errors.New("show_help")
	ErrShowVersion = errors.New("show_version")
)

// Args represents parsed command-line arguments.
type Args struct {
	// Schema flags
	SchemaPath string
	WithTypes  bool

	// Parser behaviour
	Strict      bool
	LooseInt    bool
	StrictFloat bool

	// Input sources
	Interactive bool
	Line        string
	Tokens      []string
}

var options = newOptions()

func newOptions() *flagparser.Parser {
	p := flagparser.New()
	p.Register(flagparser.NewFlag("-h"))
	p.Register(flagparser.NewFlag("--help"))
	p.Register(flagparser.NewFlag("--version"))
	p.Register(flagparser.NewFlag("--schema").MustAddArgument("path", flagparser.Text, false))
	p.Register(flagparser.NewFlag("--types"))
	p.Register(flagparser.NewFlag("--strict"))
	p.Register(flagparser.NewFlag("--loose-int"))
	p.Register(flagparser.NewFlag("--strict-float"))
	p.Register(flagparser.NewFlag("--line").MustAddArgument("text", flagparser.Text, false))
	p.Register(flagparser.NewFlag("--interactive"))
	return p
}

// Usage returns the syntax of flagdemo's own options.
func Usage() string {
	return options.Usage(true)
}

// Parse parses command-line arguments into an Args struct.
func Parse(osArgs []string) (*Args, error) {
	args := &Args{
		Tokens: []string{},
	}

	var own []string
	if len(osArgs) > 1 {
		own = osArgs[1:] // Skip program name
	}
	for i, arg := range own {
		if arg == "--" {
			args.Tokens = append(args.Tokens, own[i+1:]...)
			own = own[:i]
			break
		}
	}

	res, err := options.Parse(own, false)
	if err != nil {
		return nil, explain(err)
	}

	for _, entry := range res.Entries {
		m, ok := entry.(*flagparser.MatchedFlag)
		if !ok {
			return nil, fmt.Errorf("unexpected argument %q (input tokens go after --)",
				entry.(*flagparser.StrayToken).Text)
		}

		switch m.Flag.Name() {
		case "-h", "--help":
			return nil, ErrShowHelp

		case "--version":
			return nil, ErrShowVersion

		case "--schema":
			args.SchemaPath, _ = m.Get("path")

		case "--types":
			args.WithTypes = true

		case "--strict":
			args.Strict = true

		case "--loose-int":
			args.LooseInt = true

		case "--strict-float":
			args.StrictFloat = true

		case "--line":
			args.Line, _ = m.Get("text")

		case "--interactive":
			args.Interactive = true
		}
	}

	sources := 0
	for _, set := range []bool{args.Line != "", len(args.Tokens) > 0, args.Interactive} {
		if set {
			sources++
		}
	}
	if sources > 1 {
		return nil, errors.New("--line, --interactive and tokens after -- are mutually exclusive")
	}

	return args, nil
}

// explain adds a hint for option values that are inferred as booleans.
// Text slots only take text and numbers, so "true" and "false" cannot be
// passed to --schema or --line directly.
func explain(err error) error {
	var invalid *flagparser.InvalidArgumentError
	if !errors.As(err, &invalid) || invalid.Observed != flagparser.Boolean {
		return err
	}
	switch invalid.Flag {
	case "--schema":
		return fmt.Errorf("%w: use ./%s to name a file called %q", err, invalid.Value, invalid.Value)
	case "--line":
		return fmt.Errorf("%w: pass a bare %q as a token after -- instead", err, invalid.Value)
	}
	return err
}

// ParserOptions returns the flagparser options selected on the command line.
func (a *Args) ParserOptions() []flagparser.Option {
	return []flagparser.Option{
		flagparser.WithStrictInt(!a.LooseInt),
		flagparser.WithStrictFloat(a.StrictFloat),
	}
}

// Input returns the tokens to parse: the split --line text, or the tokens
// after --. It is empty when neither was given.
func (a *Args) Input() ([]string, error) {
	if a.Line != "" {
		return SplitLine(a.Line)
	}
	return a.Tokens, nil
}

// SplitLine splits a line into tokens using shell quoting rules.
func SplitLine(line string) ([]string, error) {
	tokens, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("splitting %q: %w", line, err)
	}
	return tokens, nil
}
