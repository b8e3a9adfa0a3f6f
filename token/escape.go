package token

import (
	"strconv"
	"strings"
)

// Unescape decodes the backslash escapes of quoted text: \n \t \r \\ \"
// \' \b \f \0 and \uXXXX with exactly four hex digits.
func Unescape(text string) (str string, err error) {
	if !strings.ContainsRune(text, '\\') {
		return text, nil
	}

	var sb strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(text) {
			err = ErrEscape
			return
		}
		switch text[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '0':
			sb.WriteByte(0)
		case '\\', '"', '\'':
			sb.WriteByte(text[i])
		case 'u':
			if i+5 > len(text) {
				err = ErrEscape
				return
			}
			var r uint64
			r, err = strconv.ParseUint(text[i+1:i+5], 16, 16)
			if err != nil {
				err = ErrEscape
				return
			}
			sb.WriteRune(rune(r))
			i += 4
		default:
			err = ErrEscape
			return
		}
	}

	str = sb.String()
	return
}
