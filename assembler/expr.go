package assembler

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rvasm/token"
)

var exprPattern = regexp.MustCompile(`\$\([^\$]*\)`)

// parenEval does compile-time $(...) evaluations. Integer equates are
// visible to the expression by name.
func parenEval(expr string, equates map[string]string) (value int64, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for _, key := range sortedKeys(equates) {
		v, ok := token.ParseInt(equates[key])
		if !ok {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = &ErrName{Name: expr, Err: ErrExpression}
		return
	}

	rc, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = &ErrName{Name: expr, Err: ErrExpression}
		return
	}
	value, ok = rc.Int64()
	if !ok {
		err = &ErrName{Name: expr, Err: ErrExpression}
		return
	}

	return
}

// evaluate replaces every $(...) of a line with its decimal value.
func evaluate(line string, equates map[string]string) (text string, err error) {
	text = exprPattern.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := parenEval(str[2:len(str)-1], equates)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return fmt.Sprintf("%d", value)
	})
	return
}

func sortedKeys(m map[string]string) []string {
	keys := slices.Collect(maps.Keys(m))
	slices.Sort(keys)
	return keys
}
