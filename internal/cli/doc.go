// Package cli provides command-line argument parsing for flagdemo.
//
// flagdemo's own options are declared with pkg/flagparser, so the demo
// parses its command line with the same parser it demonstrates. Everything
// after a literal "--" is left untouched and becomes the input tokens.
//
// Supported flags include:
//   - --schema: Load flag definitions from a YAML file
//   - --types: Show argument types in usage output
//   - --strict: Reject stray tokens
//   - --loose-int: Accept decimals for integer arguments
//   - --strict-float: Reject integers for decimal arguments
//   - --line: Parse a single shell-quoted line
//   - --interactive: Read lines from stdin until an empty line
//
// Option values follow the library's type rules, so the bare words "true"
// and "false" are rejected by --schema and --line. Use ./true for a path,
// or pass such tokens after --.
//
// Example usage:
//
//	args, err := cli.Parse(os.Args)
//	if err != nil {
//	    if errors.Is(err, cli.ErrShowHelp) {
//	        showHelp()
//	        os.Exit(0)
//	    }
//	    log.Fatal(err)
//	}
//
//	tokens, err := args.Input()
package cli
