package flagparser

// Entry is one element of a Result: either a *MatchedFlag or a *StrayToken.
type Entry interface {
	isEntry()
}

// Value is a raw token consumed for an Argument.
type Value struct {
	Argument *Argument
	Raw      string
}

// MatchedFlag is a flag found in the input with the values consumed for
// its arguments. Omitted optional arguments have no Value.
type MatchedFlag struct {
	Flag   *Flag
	Values []Value
}

func (*MatchedFlag) isEntry() {}

// Get returns the raw value of the first filled argument with the given
// name.
func (m *MatchedFlag) Get(name string) (string, bool) {
	for _, v := range m.Values {
		if v.Argument.Name() == name {
			return v.Raw, true
		}
	}
	return "", false
}

// StrayToken is an input token that matched no flag and filled no
// argument slot.
type StrayToken struct {
	Text string
	Type DataType
}

func (*StrayToken) isEntry() {}

// Result is the outcome of a single Parse call, in input order.
type Result struct {
	Entries []Entry

	flags map[string]*MatchedFlag
}

func newResult() *Result {
	return &Result{flags: make(map[string]*MatchedFlag)}
}

// Len returns the number of entries.
func (r *Result) Len() int { return len(r.Entries) }

// Flag returns the entry for the named flag, if it was matched.
func (r *Result) Flag(name string) (*MatchedFlag, bool) {
	m, ok := r.flags[name]
	return m, ok
}

// Strays returns the stray tokens in input order.
func (r *Result) Strays() []*StrayToken {
	var out []*StrayToken
	for _, e := range r.Entries {
		if s, ok := e.(*StrayToken); ok {
			out = append(out, s)
		}
	}
	return out
}

// activate records a matched flag. A flag seen again keeps its position
// and starts over with no values.
func (r *Result) activate(f *Flag) *MatchedFlag {
	if m, ok := r.flags[f.name]; ok {
		m.Flag = f
		m.Values = nil
		return m
	}
	m := &MatchedFlag{Flag: f}
	r.flags[f.name] = m
	r.Entries = append(r.Entries, m)
	return m
}

func (r *Result) addStray(tok string) {
	r.Entries = append(r.Entries, &StrayToken{Text: tok, Type: Infer(tok)})
}
