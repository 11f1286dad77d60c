package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rickgorman/flagparser/internal/cli"
	"github.com/rickgorman/flagparser/internal/schema"
	"github.com/rickgorman/flagparser/internal/ui"
	"github.com/rickgorman/flagparser/pkg/flagparser"
)

const version = "1.0.0"

// demoInput is parsed when no tokens are given.
var demoInput = []string{
	"-flip",
	"-skew", "120", "0",
	"-inflate", "10.5",
	"-addtext", "0", "200", "a",
	"-clean", "20",
}

func main() {
	// Parse arguments
	args, err := cli.Parse(os.Args)
	if err != nil {
		if errors.Is(err, cli.ErrShowHelp) {
			showHelp()
			os.Exit(0)
		}
		if errors.Is(err, cli.ErrShowVersion) {
			fmt.Printf("flagdemo %s\n", version)
			os.Exit(0)
		}
		ui.Fail("Error parsing arguments: %v", err)
		ui.Info("Run %s for usage information", ui.Bold("flagdemo --help"))
		os.Exit(1)
	}

	parser, err := schema.Load(args.SchemaPath, args.ParserOptions()...)
	if err != nil {
		ui.Fail("Failed to load schema: %v", err)
		os.Exit(1)
	}

	if args.Interactive {
		runInteractive(parser, args)
		return
	}

	tokens, err := args.Input()
	if err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
	if len(tokens) == 0 {
		tokens = demoInput
		ui.Warn("No input given, parsing the demo input")
	}

	if !runOnce(parser, args, tokens) {
		os.Exit(1)
	}
}

// runOnce parses tokens and prints the result. It reports whether parsing
// succeeded.
func runOnce(parser *flagparser.Parser, args *cli.Args, tokens []string) bool {
	ui.Info("Parsing %d token(s)", len(tokens))

	res, err := parser.Parse(tokens, !args.Strict)
	if err != nil {
		ui.Fail("%v", err)
		return false
	}

	ui.PrintResult(res, args.WithTypes)
	ui.PrintSummary(res)
	return true
}

func runInteractive(parser *flagparser.Parser, args *cli.Args) {
	ui.Header()
	ui.DimMsg("Enter a line to parse, or an empty line to quit")
	ui.BlankLine()
	ui.PrintUsage(parser, true)
	ui.BlankLine()

	for {
		line, ok := ui.AskString(ui.Cyan(">"))
		if !ok || line == "" {
			break
		}

		tokens, err := cli.SplitLine(line)
		if err != nil {
			ui.Fail("%v", err)
			continue
		}
		runOnce(parser, args, tokens)
	}

	ui.Footer()
}

func showHelp() {
	help := `flagdemo - parse flag/argument tokens against a flag schema

USAGE:
    flagdemo [OPTIONS] [-- TOKENS...]

OPTIONS:
    --schema PATH          Load flag definitions from a YAML file
    --types                Show declared argument types in the output
    --strict               Reject stray tokens after the first flag
    --loose-int            Accept decimal tokens for integer arguments
    --strict-float         Reject integer tokens for decimal arguments
    --line TEXT            Parse TEXT, split with shell quoting rules
    --interactive          Read lines from stdin until an empty line
    -h, --help             Show this help message
    --version              Show version information

    --schema and --line reject the bare words true and false; use ./true
    for a path, or pass such tokens after --.

EXAMPLES:
    # Parse the built-in demo input
    flagdemo

    # Parse tokens against the built-in schema
    flagdemo -- -skew 120 0 -clean

    # Parse a quoted line against a custom schema
    flagdemo --schema flags.yaml --line '-addtext 0 200 "hello world" red'
`
	fmt.Print(help)

	fmt.Println()
	fmt.Println("OPTION SYNTAX:")
	for _, line := range strings.Split(strings.TrimSuffix(cli.Usage(), "\n"), "\n") {
		fmt.Printf("    %s\n", line)
	}

	if parser, err := schema.Default(); err == nil {
		fmt.Println()
		fmt.Println("BUILT-IN SCHEMA:")
		ui.PrintUsage(parser, true)
	}
}
