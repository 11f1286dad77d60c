package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rickgorman/flagparser/pkg/flagparser"
)

// Result is where parse results are written.
var Result io.Writer = os.Stdout

// PrintResult prints every entry of a parse result in input order. With
// withTypes set, argument names are shown with their declared types.
func PrintResult(res *flagparser.Result, withTypes bool) {
	for _, e := range res.Entries {
		switch e := e.(type) {
		case *flagparser.MatchedFlag:
			fmt.Fprintf(Result, "Flag: %s\n", Bold(e.Flag.Name()))
			if len(e.Values) == 0 {
				fmt.Fprintf(Result, "    %s\n", Dim("(no args)"))
				continue
			}
			for _, v := range e.Values {
				name := v.Argument.Name()
				if withTypes {
					name = v.Argument.Syntax(true)
				}
				fmt.Fprintf(Result, "    %s = %s\n", name, Green(v.Raw))
			}
		case *flagparser.StrayToken:
			fmt.Fprintf(Result, "Argument: %s %s\n", e.Text, Dim("("+e.Type.String()+")"))
		}
	}
}

// PrintSummary reports how many entries a parse produced, warning about
// stray tokens first.
func PrintSummary(res *flagparser.Result) {
	if n := len(res.Strays()); n > 0 {
		Warn("%d stray token(s) not attached to any flag", n)
	}
	Success("Parsed %d entries", res.Len())
}

// PrintUsage prints the syntax of every flag a parser knows.
func PrintUsage(p *flagparser.Parser, withTypes bool) {
	for _, line := range strings.Split(strings.TrimSuffix(p.Usage(withTypes), "\n"), "\n") {
		if line == "" {
			continue
		}
		fmt.Fprintf(Result, "    %s\n", line)
	}
}
