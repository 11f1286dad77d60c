package flagparser

import (
	"sort"
	"strings"
)

// Parser holds the registered flags. Register all flags before parsing;
// Parse itself keeps no state on the Parser and may be called repeatedly.
// The registry is not synchronized.
type Parser struct {
	flags       map[string]*Flag
	strictInt   bool
	strictFloat bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrictInt controls whether decimal tokens are rejected for integer
// arguments. Defaults to true.
func WithStrictInt(strict bool) Option {
	return func(p *Parser) { p.strictInt = strict }
}

// WithStrictFloat controls whether integer tokens are rejected for
// decimal arguments. Defaults to false.
func WithStrictFloat(strict bool) Option {
	return func(p *Parser) { p.strictFloat = strict }
}

// New creates an empty Parser.
func New(opts ...Option) *Parser {
	p := &Parser{
		flags:     make(map[string]*Flag),
		strictInt: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds a flag, replacing any flag with the same name.
func (p *Parser) Register(f *Flag) {
	p.flags[f.name] = f
}

// Lookup returns the flag registered under name.
func (p *Parser) Lookup(name string) (*Flag, bool) {
	f, ok := p.flags[name]
	return f, ok
}

// Flags returns the registered flags sorted by name.
func (p *Parser) Flags() []*Flag {
	out := make([]*Flag, 0, len(p.flags))
	for _, f := range p.flags {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Usage returns the syntax of every registered flag, one per line.
func (p *Parser) Usage(withTypes bool) string {
	var b strings.Builder
	for _, f := range p.Flags() {
		b.WriteString(f.Syntax(withTypes))
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse scans tokens left to right.
//
// While the active flag still has unfilled arguments, each token fills
// the next one: required arguments first, then optional ones. Otherwise a
// token naming a registered flag activates that flag, and anything else
// is a stray token. Stray tokens are an error when allowStray is false
// and a flag has already been seen.
func (p *Parser) Parse(tokens []string, allowStray bool) (*Result, error) {
	res := newResult()

	var (
		active   *MatchedFlag
		required []*Argument
		optional []*Argument
	)

	for _, tok := range tokens {
		switch {
		case len(required) > 0:
			if err := p.fill(active, required[0], tok); err != nil {
				return nil, err
			}
			required = required[1:]

		case len(optional) > 0:
			if err := p.fill(active, optional[0], tok); err != nil {
				return nil, err
			}
			optional = optional[1:]

		default:
			if f, ok := p.flags[tok]; ok {
				active = res.activate(f)
				required, optional = f.split()
				continue
			}
			if !allowStray && active != nil {
				return nil, &UnexpectedTokenError{Token: tok}
			}
			res.addStray(tok)
		}
	}

	if len(required) > 0 {
		return nil, &MissingRequiredArgumentError{
			Flag:     active.Flag.name,
			Argument: required[0].name,
		}
	}
	return res, nil
}

// fill checks tok against arg and records it on m.
func (p *Parser) fill(m *MatchedFlag, arg *Argument, tok string) error {
	observed := Infer(tok)
	if !Compatible(observed, arg.dataType, p.strictInt, p.strictFloat) {
		return &InvalidArgumentError{
			Flag:     m.Flag.name,
			Argument: arg,
			Value:    tok,
			Observed: observed,
		}
	}
	m.Values = append(m.Values, Value{Argument: arg, Raw: tok})
	return nil
}
