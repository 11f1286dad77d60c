// Package schema loads flag definitions for flagdemo.
//
// A schema is a YAML document listing flags and their arguments:
//
//	flags:
//	  - name: -skew
//	    args:
//	      - {name: x, type: int}
//	      - {name: y, type: int}
//	  - name: -clean
//	    args:
//	      - {name: amount, type: int, optional: true}
//
// Argument types accept int/integer/number, float/decimal, str/string/text
// and bool/boolean/state. The type defaults to text when omitted.
//
// When no schema file is given, the built-in schema (default.yaml) is
// used. It registers the demo flags: -flip, -skew,
// -inflate, -clean and -addtext.
//
// Example usage:
//
//	p, err := schema.Load("flags.yaml")
//	if err != nil {
//	    return err
//	}
//	res, err := p.Parse(tokens, true)
package schema
