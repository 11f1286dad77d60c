package flagparser_test

import (
	"errors"
	"fmt"

	"github.com/rickgorman/flagparser/pkg/flagparser"
)

// ExampleParser_Parse demonstrates registering flags and walking a result.
func ExampleParser_Parse() {
	p := flagparser.New()
	p.Register(flagparser.NewFlag("-flip"))
	p.Register(flagparser.NewFlag("-skew").
		MustAddArgument("x", flagparser.Integer, false).
		MustAddArgument("y", flagparser.Integer, false))
	p.Register(flagparser.NewFlag("-clean").
		MustAddArgument("amount", flagparser.Integer, true))

	res, err := p.Parse([]string{"loose", "-flip", "-skew", "120", "0", "-clean"}, true)
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, e := range res.Entries {
		switch e := e.(type) {
		case *flagparser.MatchedFlag:
			fmt.Printf("Flag: %s\n", e.Flag.Name())
			for _, v := range e.Values {
				fmt.Printf("    %s = %s\n", v.Argument.Name(), v.Raw)
			}
		case *flagparser.StrayToken:
			fmt.Printf("Argument: %s\n", e.Text)
		}
	}
	// Output:
	// Argument: loose
	// Flag: -flip
	// Flag: -skew
	//     x = 120
	//     y = 0
	// Flag: -clean
}

// ExampleFlag_Syntax demonstrates rendering help text for a flag.
func ExampleFlag_Syntax() {
	f := flagparser.NewFlag("-addtext").
		MustAddArgument("x", flagparser.Integer, false).
		MustAddArgument("text", flagparser.Text, false).
		MustAddArgument("bold", flagparser.Boolean, true)

	fmt.Println(f.Syntax(false))
	fmt.Println(f.Syntax(true))
	// Output:
	// -addtext <x>  <text>  [bold]
	// -addtext <(Number) x>  <(Text) text>  [(State) bold]
}

// ExampleMissingRequiredArgumentError demonstrates inspecting parse errors.
func ExampleMissingRequiredArgumentError() {
	p := flagparser.New()
	p.Register(flagparser.NewFlag("-skew").
		MustAddArgument("x", flagparser.Integer, false).
		MustAddArgument("y", flagparser.Integer, false))

	_, err := p.Parse([]string{"-skew", "5"}, true)

	var missing *flagparser.MissingRequiredArgumentError
	if errors.As(err, &missing) {
		fmt.Printf("%s needs %s\n", missing.Flag, missing.Argument)
	}
	fmt.Println(errors.Is(err, flagparser.ErrMissingRequiredArgument))
	// Output:
	// -skew needs y
	// true
}
