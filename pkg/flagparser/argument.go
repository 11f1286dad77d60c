package flagparser

// Argument is one positional value slot of a Flag.
// Arguments are compared by pointer; two arguments with the same name are
// distinct.
type Argument struct {
	name     string
	dataType DataType
	optional bool
}

// NewArgument creates an Argument.
func NewArgument(name string, dataType DataType, optional bool) *Argument {
	return &Argument{
		name:     name,
		dataType: dataType,
		optional: optional,
	}
}

// Name returns the argument name.
func (a *Argument) Name() string { return a.name }

// Type returns the declared type.
func (a *Argument) Type() DataType { return a.dataType }

// Optional reports whether the argument may be omitted.
func (a *Argument) Optional() bool { return a.optional }

// Syntax renders the argument as <name> or [name]. With withType set the
// name is prefixed by its type label, e.g. <(Number) x>.
func (a *Argument) Syntax(withType bool) string {
	out := a.name
	if withType {
		out = "(" + a.dataType.Label() + ") " + out
	}
	if a.optional {
		return "[" + out + "]"
	}
	return "<" + out + ">"
}
