// Package macro stores macro definitions and performs their textual
// expansion.
package macro

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ezrec/rvasm/token"
)

// Macro is a committed or in-progress macro definition.
type Macro struct {
	Name   string
	Params []string // Parameter names, including the leading % or $.
	Labels []string // Labels defined in the body, sorted once committed.

	FromLine int // Index of the first body line.
	ToLine   int // Index of the last body line.

	OriginalFromLine int // Source line number of the .macro directive.
	OriginalToLine   int // Source line number of the .end_macro directive.
}

// IsParameter reports whether a token names a macro parameter.
func IsParameter(tok token.Token) bool {
	if tok.Type == token.MACRO_PARAMETER {
		return true
	}
	if strings.HasPrefix(tok.Text, "$") && len(tok.Text) > 1 {
		_, isReg := token.Register(tok.Text)
		return !isReg
	}
	return false
}

// HasLabel reports whether name is a label defined inside the macro body.
func (m *Macro) HasLabel(name string) bool {
	_, found := slices.BinarySearch(m.Labels, name)
	return found
}

// Substitute rewrites one body line for a call. Parameters are replaced by
// the call arguments and body labels get a _M<counter> suffix. Tokens are
// rewritten right to left so earlier columns stay valid. Unknown parameters
// are reported and left as written.
func (m *Macro) Substitute(text string, tokens token.List, call token.List, counter int) (line string, errs []error) {
	line = text
	for n := len(tokens) - 1; n >= 0; n-- {
		tok := tokens[n]
		start := tok.Column - 1
		end := start + len(tok.Text)
		if start < 0 || end > len(line) || line[start:end] != tok.Text {
			continue
		}

		var replace string
		switch {
		case IsParameter(tok):
			index := slices.Index(m.Params, tok.Text)
			if index < 0 || index+1 >= len(call) {
				errs = append(errs, &ErrParameter{Macro: m.Name, Name: tok.Text, Column: tok.Column})
				continue
			}
			replace = call[index+1].Text
		case tok.Type == token.IDENTIFIER && m.HasLabel(tok.Text):
			replace = fmt.Sprintf("%v_M%d", tok.Text, counter)
		default:
			continue
		}

		line = line[:start] + replace + line[end:]
	}

	// Errors were collected right to left.
	slices.Reverse(errs)
	return
}
