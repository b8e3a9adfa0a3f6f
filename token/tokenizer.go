package token

import (
	"strconv"
	"strings"

	"github.com/ezrec/rvasm/directive"
)

// Tokenizer splits source lines into token lists.
type Tokenizer struct {
	// IsMnemonic reports whether a word names an instruction. Words it
	// accepts become OPERATOR tokens, unless directly followed by a colon.
	IsMnemonic func(word string) bool
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || c == '.' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '$'
}

// scanIdent returns the end of the identifier starting at start.
func scanIdent(text string, start int) (end int) {
	for end = start; end < len(text) && isIdentChar(text[end]); end++ {
	}
	return
}

// scanNumber returns the end of the numeric literal starting at start.
func scanNumber(text string, start int) (end int) {
	hex := strings.HasPrefix(strings.ToLower(strings.TrimLeft(text[start:], "+-")), "0x")
	for end = start; end < len(text); end++ {
		c := text[end]
		if isIdentChar(c) {
			continue
		}
		if (c == '+' || c == '-') && !hex && end > start && (text[end-1] == 'e' || text[end-1] == 'E') {
			continue
		}
		break
	}
	return
}

// scanQuoted returns the end of the text quoted by the delimiter at start.
func scanQuoted(text string, start int) (end int, ok bool) {
	quote := text[start]
	for end = start + 1; end < len(text); end++ {
		switch text[end] {
		case '\\':
			end++
		case quote:
			return end + 1, true
		}
	}
	return
}

// numberType classifies a numeric literal.
func numberType(text string) (tt Type, ok bool) {
	value, err := strconv.ParseInt(text, 0, 64)
	if err == nil {
		return IntegerType(value), true
	}
	if _, ok = ParseInt(text); ok {
		return INTEGER_64, true
	}
	if _, err = strconv.ParseFloat(text, 64); err == nil {
		return REAL_NUMBER, true
	}
	return
}

// wordType classifies an identifier-like word.
func (tk *Tokenizer) wordType(word string) Type {
	if word[0] == '.' {
		if _, ok := directive.Lookup(word); ok {
			return DIRECTIVE
		}
		return IDENTIFIER
	}
	if _, ok := Register(word); ok {
		return REGISTER_NAME
	}
	if _, ok := FPRegister(word); ok {
		return FP_REGISTER_NAME
	}
	if _, ok := CSR(word); ok {
		return CSR_NAME
	}
	if tk.IsMnemonic != nil && tk.IsMnemonic(word) {
		return OPERATOR
	}
	return IDENTIFIER
}

// followedByColon is true if the next non-blank character after end is ':'.
func followedByColon(text string, end int) bool {
	rest := strings.TrimLeft(text[end:], " \t")
	return strings.HasPrefix(rest, ":")
}

// Tokenize splits one source line into tokens. Commas and blanks
// separate tokens and are not kept.
func (tk *Tokenizer) Tokenize(file string, lineno int, text string) (tl List, err error) {
	add := func(tt Type, start, end int) {
		tl = append(tl, Token{
			Type:   tt,
			Text:   text[start:end],
			File:   file,
			Line:   lineno,
			Column: start + 1,
		})
	}

	fail := func(start int, cause error) {
		err = &ErrToken{Column: start + 1, Text: text[start:], Err: cause}
	}

	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == ',' || c == '\r':
			i++
		case c == '#':
			add(COMMENT, i, len(text))
			i = len(text)
		case c == '(':
			add(LEFT_PAREN, i, i+1)
			i++
		case c == ')':
			add(RIGHT_PAREN, i, i+1)
			i++
		case c == ':':
			add(COLON, i, i+1)
			i++
		case c == '"':
			end, ok := scanQuoted(text, i)
			if !ok {
				fail(i, ErrUnterminatedString)
				return
			}
			add(QUOTED_STRING, i, end)
			i = end
		case c == '\'':
			end, ok := scanQuoted(text, i)
			if !ok {
				fail(i, ErrUnterminatedString)
				return
			}
			value, ok := ParseInt(text[i:end])
			if !ok {
				fail(i, ErrInvalidNumber)
				return
			}
			add(IntegerType(value), i, end)
			i = end
		case (c == '+' || c == '-') && i+1 < len(text) && isDigit(text[i+1]) &&
			!(i > 0 && (isIdentChar(text[i-1]) || text[i-1] == ')')):
			// A sign directly after an operand is an operator, as in label+4.
			end := scanNumber(text, i+1)
			tt, ok := numberType(text[i:end])
			if !ok {
				fail(i, ErrInvalidNumber)
				return
			}
			add(tt, i, end)
			i = end
		case c == '+':
			add(PLUS, i, i+1)
			i++
		case c == '-':
			add(MINUS, i, i+1)
			i++
		case isDigit(c):
			end := scanNumber(text, i)
			tt, ok := numberType(text[i:end])
			if !ok {
				fail(i, ErrInvalidNumber)
				return
			}
			add(tt, i, end)
			i = end
		case (c == '%' || c == '$') && i+1 < len(text) && isIdentStart(text[i+1]):
			end := scanIdent(text, i+1)
			tt := MACRO_PARAMETER
			if _, ok := Register(text[i:end]); ok {
				tt = REGISTER_NAME
			}
			add(tt, i, end)
			i = end
		case isIdentStart(c):
			end := scanIdent(text, i)
			tt := tk.wordType(text[i:end])
			if tt == OPERATOR && followedByColon(text, end) {
				tt = IDENTIFIER
			}
			add(tt, i, end)
			i = end
		default:
			fail(i, ErrInvalidCharacter)
			return
		}
	}

	return
}
