package flagparser

import "strings"

// Flag is a named trigger token followed by zero or more Arguments.
type Flag struct {
	name string
	args []*Argument
}

// NewFlag creates a Flag with no arguments.
func NewFlag(name string) *Flag {
	return &Flag{name: name}
}

// Name returns the flag name, which is also the token that activates it.
func (f *Flag) Name() string { return f.name }

// Arguments returns the flag's arguments in declaration order.
func (f *Flag) Arguments() []*Argument {
	out := make([]*Argument, len(f.args))
	copy(out, f.args)
	return out
}

// AddArgument appends an argument. A required argument cannot follow an
// optional one.
//
// Only the previous argument is checked. Arguments are only ever
// appended, so that is enough to keep every optional argument after all
// required ones.
func (f *Flag) AddArgument(name string, dataType DataType, optional bool) error {
	if n := len(f.args); n > 0 && f.args[n-1].optional && !optional {
		return &InvalidFlagDefinitionError{
			Flag:     f.name,
			Previous: f.args[n-1].name,
			Argument: name,
		}
	}
	f.args = append(f.args, NewArgument(name, dataType, optional))
	return nil
}

// MustAddArgument is like AddArgument but panics on error. It returns f so
// static definitions can be chained.
func (f *Flag) MustAddArgument(name string, dataType DataType, optional bool) *Flag {
	if err := f.AddArgument(name, dataType, optional); err != nil {
		panic(err)
	}
	return f
}

// Syntax renders the flag followed by its arguments, separated by two
// spaces, e.g. "-skew <x>  <y>". A flag without arguments renders as its
// bare name.
func (f *Flag) Syntax(withTypes bool) string {
	if len(f.args) == 0 {
		return f.name
	}
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.Syntax(withTypes)
	}
	return f.name + " " + strings.Join(parts, "  ")
}

// split returns the required and optional arguments, each in declaration
// order.
func (f *Flag) split() (required, optional []*Argument) {
	for _, a := range f.args {
		if a.optional {
			optional = append(optional, a)
		} else {
			required = append(required, a)
		}
	}
	return required, optional
}
