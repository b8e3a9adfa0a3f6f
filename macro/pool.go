package macro

import (
	"slices"

	"github.com/ezrec/rvasm/token"
)

// Pool holds the macros of one source file.
type Pool struct {
	Macros []*Macro
	Stack  Stack // Lines whose macro call is being expanded.

	current *Macro
	counter int
}

// Current returns the macro being defined, if any.
func (mp *Pool) Current() *Macro {
	return mp.current
}

// Begin opens a macro definition from the tokens of a .macro line, which
// is at line index with source line number lineno. Both `name %a %b` and
// `name(%a, %b)` headers are accepted.
func (mp *Pool) Begin(tokens token.List, index int, lineno int) (err error) {
	if mp.current != nil {
		err = ErrNestedMacro
		return
	}

	// tokens[0] is the .macro directive itself.
	if len(tokens) < 2 || (tokens[1].Type != token.IDENTIFIER && tokens[1].Type != token.OPERATOR) {
		err = ErrMacroSyntax
		return
	}

	params := tokens[2:]
	if len(params) >= 2 && params[0].Type == token.LEFT_PAREN && params[len(params)-1].Type == token.RIGHT_PAREN {
		params = params[1 : len(params)-1]
	}

	macro := &Macro{
		Name:             tokens[1].Text,
		FromLine:         index + 1,
		OriginalFromLine: lineno,
	}
	for _, param := range params {
		if !IsParameter(param) {
			err = ErrMacroSyntax
			return
		}
		macro.Params = append(macro.Params, param.Text)
	}

	mp.current = macro
	return
}

// AddLabel records a label defined inside the open macro body.
func (mp *Pool) AddLabel(name string) {
	if mp.current == nil || slices.Contains(mp.current.Labels, name) {
		return
	}
	mp.current.Labels = append(mp.current.Labels, name)
}

// Commit closes the open definition at the .end_macro line index.
func (mp *Pool) Commit(index int, lineno int) (macro *Macro, err error) {
	macro = mp.current
	if macro == nil {
		err = ErrEndMacroWithoutMacro
		return
	}

	macro.ToLine = index - 1
	macro.OriginalToLine = lineno
	slices.Sort(macro.Labels)

	mp.Macros = append(mp.Macros, macro)
	mp.current = nil
	return
}

// HasName reports whether any committed macro is called name.
func (mp *Pool) HasName(name string) bool {
	return slices.ContainsFunc(mp.Macros, func(m *Macro) bool { return m.Name == name })
}

// Match finds the macro for a call: same name, one parameter per argument.
// The most recently defined of several candidates wins.
func (mp *Pool) Match(call token.List) (match *Macro) {
	if len(call) == 0 {
		return
	}

	for _, m := range mp.Macros {
		if m.Name != call[0].Text || len(m.Params)+1 != len(call) {
			continue
		}
		if match == nil || m.FromLine > match.FromLine {
			match = m
		}
	}

	return
}

// NextCounter returns a number unique to each expansion of this pool.
func (mp *Pool) NextCounter() (counter int) {
	counter = mp.counter
	mp.counter++
	return
}

// Reset drops every definition and restarts the expansion counter.
func (mp *Pool) Reset() {
	mp.Macros = nil
	mp.current = nil
	mp.counter = 0
	mp.Stack.Reset()
}

// NormalizeCall strips SPIM style parentheses from a call: name(a, b).
func NormalizeCall(call token.List) token.List {
	if len(call) >= 3 && call[1].Type == token.LEFT_PAREN && call[len(call)-1].Type == token.RIGHT_PAREN {
		normal := slices.Clone(call[:1])
		return append(normal, call[2:len(call)-1]...)
	}
	return call
}
