// Package flagparser provides a small declarative flag and argument parser.
//
// Callers describe flags up front: each Flag has a name and an ordered
// list of typed positional Arguments, some of which may be optional. A
// Parser holds the registered flags and turns a pre-tokenized argument
// list into a Result.
//
// Supported argument types:
//   - Integer: "120", "-5", "0x1f"
//   - Decimal: "10.5", "1e3" (integers are accepted too)
//   - Text: anything; numeric tokens are accepted as text
//   - Boolean: "true" or "false"
//
// Types are inferred from the token using Go's own literal syntax, so a
// token is only checked, never converted. The Result keeps the original
// strings.
//
// Example usage:
//
//	skew := flagparser.NewFlag("-skew").
//	    MustAddArgument("x", flagparser.Integer, false).
//	    MustAddArgument("y", flagparser.Integer, false)
//
//	p := flagparser.New()
//	p.Register(skew)
//
//	res, err := p.Parse([]string{"-skew", "120", "0"}, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := res.Flag("-skew")
//	x, _ := m.Get("x") // "120"
//
// Tokens that are neither a flag name nor consumed by an argument slot
// are returned as StrayToken entries, unless stray tokens are disallowed.
//
// Errors:
//   - ErrInvalidFlagDefinition: required argument added after an optional one
//   - ErrUnexpectedToken: stray token with stray tokens disallowed
//   - ErrMissingRequiredArgument: input ended before a required argument
//   - ErrInvalidArgument: token type does not fit the argument slot
package flagparser
