package token

import (
	"fmt"
)

// Integer register ABI names, indexed by register number.
var abiNames = [32]string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

// Floating point register ABI names, indexed by register number.
var fpAbiNames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1",
	"fa0", "fa1", "fa2", "fa3", "fa4", "fa5", "fa6", "fa7",
	"fs2", "fs3", "fs4", "fs5", "fs6", "fs7", "fs8", "fs9", "fs10", "fs11",
	"ft8", "ft9", "ft10", "ft11",
}

// Control and status registers known by name.
var csrMap = map[string]int{
	"ustatus":  0x000,
	"fflags":   0x001,
	"frm":      0x002,
	"fcsr":     0x003,
	"uie":      0x004,
	"utvec":    0x005,
	"uscratch": 0x040,
	"uepc":     0x041,
	"ucause":   0x042,
	"utval":    0x043,
	"uip":      0x044,
	"cycle":    0xc00,
	"time":     0xc01,
	"instret":  0xc02,
	"cycleh":   0xc80,
	"timeh":    0xc81,
	"instreth": 0xc82,
}

var regMap = make(map[string]int, 66)
var fpRegMap = make(map[string]int, 64)

func init() {
	for n, name := range abiNames {
		regMap[name] = n
		regMap[fmt.Sprintf("x%d", n)] = n
	}
	regMap["fp"] = 8

	for n, name := range fpAbiNames {
		fpRegMap[name] = n
		fpRegMap[fmt.Sprintf("f%d", n)] = n
	}
}

// Register returns the number of an integer register name.
func Register(name string) (number int, ok bool) {
	number, ok = regMap[name]
	return
}

// FPRegister returns the number of a floating point register name.
func FPRegister(name string) (number int, ok bool) {
	number, ok = fpRegMap[name]
	return
}

// CSR returns the address of a named control and status register.
func CSR(name string) (number int, ok bool) {
	number, ok = csrMap[name]
	return
}
