package assembler

import (
	"github.com/ezrec/rvasm/token"
)

// forwardRef is a data value naming a symbol that was not defined when
// the value was stored.
type forwardRef struct {
	Address uint32 // Where the value is stored.
	Length  int    // Width of the value in bytes.
	Offset  int64  // Added to the symbol address.
	Token   token.Token
}

// resolveForward patches every reference whose symbol lookup finds,
// returning the references still unresolved.
func (asm *Assembler) resolveForward(refs []forwardRef, lookup func(name string) (uint32, bool)) (unresolved []forwardRef) {
	for _, ref := range refs {
		address, ok := lookup(ref.Token.Text)
		if !ok {
			unresolved = append(unresolved, ref)
			continue
		}

		err := asm.store.Set(ref.Address, uint64(int64(address)+ref.Offset), ref.Length)
		if err != nil {
			asm.errorAt(ref.Token, err)
		}
	}
	return
}
