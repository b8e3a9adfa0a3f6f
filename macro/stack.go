package macro

import (
	"slices"
)

const (
	STACK_LIMIT = 64 // Maximum macro expansion depth
)

// Stack holds the source line indexes of the macro calls being expanded.
type Stack struct {
	Data []int
}

// Push adds a caller line. It refuses a line already on the stack, or any
// line once the stack is full.
func (s *Stack) Push(line int) (ok bool) {
	if s.Full() || s.Contains(line) {
		return
	}
	s.Data = append(s.Data, line)
	return true
}

func (s *Stack) Pop() (line int, ok bool) {
	line, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *Stack) Contains(line int) bool {
	return slices.Contains(s.Data, line)
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}

func (s *Stack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *Stack) Peek() (line int, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *Stack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
