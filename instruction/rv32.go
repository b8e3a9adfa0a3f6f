package instruction

// rv32Basic lists the RV32IMF and Zicsr base instructions.
var rv32Basic = []Instruction{
	NewBasic("add t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 000 fffff 0110011",
		"Addition: set t1 to (t2 plus t3)"),
	NewBasic("sub t1,t2,t3", FORMAT_R,
		"0100000 ttttt sssss 000 fffff 0110011",
		"Subtraction: set t1 to (t2 minus t3)"),
	NewBasic("sll t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 001 fffff 0110011",
		"Shift left logical: set t1 to result of shifting t2 left by number of bits specified by value in low-order 5 bits of t3"),
	NewBasic("slt t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 010 fffff 0110011",
		"Set less than: if t2 is less than t3, then set t1 to 1, else set t1 to 0"),
	NewBasic("sltu t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 011 fffff 0110011",
		"Set less than unsigned: if t2 is less than t3 using unsigned comparison, then set t1 to 1, else set t1 to 0"),
	NewBasic("xor t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 100 fffff 0110011",
		"Bitwise XOR: set t1 to bitwise XOR of t2 and t3"),
	NewBasic("srl t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 101 fffff 0110011",
		"Shift right logical: set t1 to result of shifting t2 right by number of bits specified by value in low-order 5 bits of t3"),
	NewBasic("sra t1,t2,t3", FORMAT_R,
		"0100000 ttttt sssss 101 fffff 0110011",
		"Shift right arithmetic: set t1 to result of sign-extended shifting t2 right by number of bits specified by value in low-order 5 bits of t3"),
	NewBasic("or t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 110 fffff 0110011",
		"Bitwise OR: set t1 to bitwise OR of t2 and t3"),
	NewBasic("and t1,t2,t3", FORMAT_R,
		"0000000 ttttt sssss 111 fffff 0110011",
		"Bitwise AND: set t1 to bitwise AND of t2 and t3"),
	NewBasic("mul t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 000 fffff 0110011",
		"Multiplication: set t1 to the lower 32 bits of t2*t3"),
	NewBasic("mulh t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 001 fffff 0110011",
		"Multiplication: set t1 to the upper 32 bits of t2*t3 using signed multiplication"),
	NewBasic("mulhsu t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 010 fffff 0110011",
		"Multiplication: set t1 to the upper 32 bits of t2*t3 where t2 is signed and t3 is unsigned"),
	NewBasic("mulhu t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 011 fffff 0110011",
		"Multiplication: set t1 to the upper 32 bits of t2*t3 using unsigned multiplication"),
	NewBasic("div t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 100 fffff 0110011",
		"Division: set t1 to the result of t2/t3"),
	NewBasic("divu t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 101 fffff 0110011",
		"Division: set t1 to the result of t2/t3 using unsigned division"),
	NewBasic("rem t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 110 fffff 0110011",
		"Remainder: set t1 to the remainder of t2/t3"),
	NewBasic("remu t1,t2,t3", FORMAT_R,
		"0000001 ttttt sssss 111 fffff 0110011",
		"Remainder: set t1 to the remainder of t2/t3 using unsigned division"),
	NewBasic("addi t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 000 fffff 0010011",
		"Addition immediate: set t1 to (t2 plus signed 12-bit immediate)"),
	NewBasic("slti t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 010 fffff 0010011",
		"Set less than immediate: if t2 is less than sign-extended 12-bit immediate, then set t1 to 1 else set t1 to 0"),
	NewBasic("sltiu t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 011 fffff 0010011",
		"Set less than immediate unsigned: if t2 is less than sign-extended 12-bit immediate using unsigned comparison, then set t1 to 1 else set t1 to 0"),
	NewBasic("xori t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 100 fffff 0010011",
		"Bitwise XOR immediate: set t1 to bitwise XOR of t2 and sign-extended 12-bit immediate"),
	NewBasic("ori t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 110 fffff 0010011",
		"Bitwise OR immediate: set t1 to bitwise OR of t2 and sign-extended 12-bit immediate"),
	NewBasic("andi t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 111 fffff 0010011",
		"Bitwise AND immediate: set t1 to bitwise AND of t2 and sign-extended 12-bit immediate"),
	NewBasic("slli t1,t2,10", FORMAT_I,
		"0000000 ttttt sssss 001 fffff 0010011",
		"Shift left logical: set t1 to result of shifting t2 left by number of bits specified by immediate"),
	NewBasic("srli t1,t2,10", FORMAT_I,
		"0000000 ttttt sssss 101 fffff 0010011",
		"Shift right logical: set t1 to result of shifting t2 right by number of bits specified by immediate"),
	NewBasic("srai t1,t2,10", FORMAT_I,
		"0100000 ttttt sssss 101 fffff 0010011",
		"Shift right arithmetic: set t1 to result of sign-extended shifting t2 right by number of bits specified by immediate"),
	NewBasic("lb t1,-100(t2)", FORMAT_I,
		"ssssssssssss ttttt 000 fffff 0000011",
		"Set t1 to sign-extended 8-bit value from effective memory byte address"),
	NewBasic("lh t1,-100(t2)", FORMAT_I,
		"ssssssssssss ttttt 001 fffff 0000011",
		"Set t1 to sign-extended 16-bit value from effective memory halfword address"),
	NewBasic("lw t1,-100(t2)", FORMAT_I,
		"ssssssssssss ttttt 010 fffff 0000011",
		"Set t1 to contents of effective memory word address"),
	NewBasic("lbu t1,-100(t2)", FORMAT_I,
		"ssssssssssss ttttt 100 fffff 0000011",
		"Set t1 to zero-extended 8-bit value from effective memory byte address"),
	NewBasic("lhu t1,-100(t2)", FORMAT_I,
		"ssssssssssss ttttt 101 fffff 0000011",
		"Set t1 to zero-extended 16-bit value from effective memory halfword address"),
	NewBasic("sb t1,-100(t2)", FORMAT_S,
		"sssssss fffff ttttt 000 sssss 0100011",
		"Store byte: store the low-order 8 bits of t1 into the effective memory byte address"),
	NewBasic("sh t1,-100(t2)", FORMAT_S,
		"sssssss fffff ttttt 001 sssss 0100011",
		"Store halfword: store the low-order 16 bits of t1 into the effective memory halfword address"),
	NewBasic("sw t1,-100(t2)", FORMAT_S,
		"sssssss fffff ttttt 010 sssss 0100011",
		"Store word: store contents of t1 into effective memory word address"),
	NewBasic("beq t1,t2,label", FORMAT_B,
		"ttttttt sssss fffff 000 ttttt 1100011",
		"Branch if equal: branch to statement at label's address if t1 and t2 are equal"),
	NewBasic("bne t1,t2,label", FORMAT_B,
		"ttttttt sssss fffff 001 ttttt 1100011",
		"Branch if not equal: branch to statement at label's address if t1 and t2 are not equal"),
	NewBasic("blt t1,t2,label", FORMAT_B,
		"ttttttt sssss fffff 100 ttttt 1100011",
		"Branch if less than: branch to statement at label's address if t1 is less than t2"),
	NewBasic("bge t1,t2,label", FORMAT_B,
		"ttttttt sssss fffff 101 ttttt 1100011",
		"Branch if greater than or equal: branch to statement at label's address if t1 is greater than or equal to t2"),
	NewBasic("bltu t1,t2,label", FORMAT_B,
		"ttttttt sssss fffff 110 ttttt 1100011",
		"Branch if less than unsigned: branch to statement at label's address if t1 is less than t2 using unsigned comparison"),
	NewBasic("bgeu t1,t2,label", FORMAT_B,
		"ttttttt sssss fffff 111 ttttt 1100011",
		"Branch if greater than or equal unsigned: branch to statement at label's address if t1 is greater than or equal to t2 using unsigned comparison"),
	NewBasic("jal t1,target", FORMAT_J,
		"ssssssssssssssssssss fffff 1101111",
		"Jump and link: set t1 to program counter (return address) then jump to statement at target address"),
	NewBasic("jalr t1,t2,-100", FORMAT_I,
		"tttttttttttt sssss 000 fffff 1100111",
		"Jump and link register: set t1 to program counter (return address) then jump to statement at t2 + immediate"),
	NewBasic("lui t1,100000", FORMAT_U,
		"ssssssssssssssssssss fffff 0110111",
		"Load upper immediate: set t1 to 20-bit followed by 12 0s"),
	NewBasic("auipc t1,100000", FORMAT_U,
		"ssssssssssssssssssss fffff 0010111",
		"Add upper immediate to pc: set t1 to (pc plus an upper 20 bit immediate)"),
	NewBasic("ecall", FORMAT_I,
		"000000000000 00000 000 00000 1110011",
		"Issue a system call: execute the system call specified by value in a7"),
	NewBasic("ebreak", FORMAT_I,
		"000000000001 00000 000 00000 1110011",
		"Pause execution"),
	NewBasic("fence 1,1", FORMAT_I,
		"0000 ffff ssss 00000 000 00000 0001111",
		"Ensure that IO and memory accesses before the fence happen before the following IO and memory accesses as viewed by a different thread"),
	NewBasic("fence.i", FORMAT_I,
		"000000000000 00000 001 00000 0001111",
		"Ensure that stores to instruction memory are visible to instruction fetches"),
	NewBasic("uret", FORMAT_I,
		"000000000010 00000 000 00000 1110011",
		"Return from handling an interrupt or exception (to uepc)"),
	NewBasic("wfi", FORMAT_I,
		"000100000101 00000 000 00000 1110011",
		"Wait for Interrupt"),
	NewBasic("csrrw t0,fcsr,t1", FORMAT_I,
		"ssssssssssss ttttt 001 fffff 1110011",
		"Atomic Read/Write CSR: read from the CSR into t0 and write t1 into the CSR"),
	NewBasic("csrrs t0,fcsr,t1", FORMAT_I,
		"ssssssssssss ttttt 010 fffff 1110011",
		"Atomic Read/Set CSR: read from the CSR into t0 and logical or t1 into the CSR"),
	NewBasic("csrrc t0,fcsr,t1", FORMAT_I,
		"ssssssssssss ttttt 011 fffff 1110011",
		"Atomic Read/Clear CSR: read from the CSR into t0 and clear bits of the CSR according to t1"),
	NewBasic("csrrwi t0,fcsr,10", FORMAT_I,
		"ssssssssssss ttttt 101 fffff 1110011",
		"Atomic Read/Write CSR Immediate: read from the CSR into t0 and write a constant into the CSR"),
	NewBasic("csrrsi t0,fcsr,10", FORMAT_I,
		"ssssssssssss ttttt 110 fffff 1110011",
		"Atomic Read/Set CSR Immediate: read from the CSR into t0 and logical or a constant into the CSR"),
	NewBasic("csrrci t0,fcsr,10", FORMAT_I,
		"ssssssssssss ttttt 111 fffff 1110011",
		"Atomic Read/Clear CSR Immediate: read from the CSR into t0 and clear bits of the CSR according to a constant"),
	NewBasic("flw f1,-100(t1)", FORMAT_I,
		"ssssssssssss ttttt 010 fffff 0000111",
		"Load a float from memory"),
	NewBasic("fsw f1,-100(t1)", FORMAT_S,
		"sssssss fffff ttttt 010 sssss 0100111",
		"Store a float to memory"),
	NewBasic("fadd.s f1,f2,f3", FORMAT_R,
		"0000000 ttttt sssss 111 fffff 1010011",
		"Floating ADD: assigns f1 to f2 + f3"),
	NewBasic("fsub.s f1,f2,f3", FORMAT_R,
		"0000100 ttttt sssss 111 fffff 1010011",
		"Floating SUBtract: assigns f1 to f2 - f3"),
	NewBasic("fmul.s f1,f2,f3", FORMAT_R,
		"0001000 ttttt sssss 111 fffff 1010011",
		"Floating MULtiply: assigns f1 to f2 * f3"),
	NewBasic("fdiv.s f1,f2,f3", FORMAT_R,
		"0001100 ttttt sssss 111 fffff 1010011",
		"Floating DIVide: assigns f1 to f2 / f3"),
	NewBasic("fsqrt.s f1,f2", FORMAT_R,
		"0101100 00000 sssss 111 fffff 1010011",
		"Floating SQuare RooT: assigns f1 to the square root of f2"),
	NewBasic("fsgnj.s f1,f2,f3", FORMAT_R,
		"0010000 ttttt sssss 000 fffff 1010011",
		"Floating point sign injection: replace the sign bit of f2 with the sign bit of f3 and assign it to f1"),
	NewBasic("fsgnjn.s f1,f2,f3", FORMAT_R,
		"0010000 ttttt sssss 001 fffff 1010011",
		"Floating point sign injection (inverted): replace the sign bit of f2 with the opposite of sign bit of f3 and assign it to f1"),
	NewBasic("fsgnjx.s f1,f2,f3", FORMAT_R,
		"0010000 ttttt sssss 010 fffff 1010011",
		"Floating point sign injection (xor): xor the sign bit of f2 with the sign bit of f3 and assign it to f1"),
	NewBasic("fmin.s f1,f2,f3", FORMAT_R,
		"0010100 ttttt sssss 000 fffff 1010011",
		"Floating MINimum: assigns f1 to the smaller of f2 and f3"),
	NewBasic("fmax.s f1,f2,f3", FORMAT_R,
		"0010100 ttttt sssss 001 fffff 1010011",
		"Floating MAXimum: assigns f1 to the larger of f2 and f3"),
	NewBasic("feq.s t1,f1,f2", FORMAT_R,
		"1010000 ttttt sssss 010 fffff 1010011",
		"Floating EQuals: if f1 = f2, set t1 to 1, else set t1 to 0"),
	NewBasic("flt.s t1,f1,f2", FORMAT_R,
		"1010000 ttttt sssss 001 fffff 1010011",
		"Floating Less Than: if f1 < f2, set t1 to 1, else set t1 to 0"),
	NewBasic("fle.s t1,f1,f2", FORMAT_R,
		"1010000 ttttt sssss 000 fffff 1010011",
		"Floating Less than or Equals: if f1 <= f2, set t1 to 1, else set t1 to 0"),
	NewBasic("fcvt.w.s t1,f1", FORMAT_R,
		"1100000 00000 sssss 111 fffff 1010011",
		"Convert integer from float: assigns the value of f1 (rounded) to t1"),
	NewBasic("fcvt.wu.s t1,f1", FORMAT_R,
		"1100000 00001 sssss 111 fffff 1010011",
		"Convert unsigned integer from float: assigns the value of f1 (rounded) to t1"),
	NewBasic("fcvt.s.w f1,t1", FORMAT_R,
		"1101000 00000 sssss 111 fffff 1010011",
		"Convert float from integer: assigns the value of t1 to f1"),
	NewBasic("fcvt.s.wu f1,t1", FORMAT_R,
		"1101000 00001 sssss 111 fffff 1010011",
		"Convert float from unsigned integer: assigns the value of t1 to f1"),
	NewBasic("fmv.x.w t1,f1", FORMAT_R,
		"1110000 00000 sssss 000 fffff 1010011",
		"Move float: move a float value from f1 into an integer register t1"),
	NewBasic("fmv.w.x f1,t1", FORMAT_R,
		"1111000 00000 sssss 000 fffff 1010011",
		"Move float: move a float value from t1 to the floating point register f1"),
	NewBasic("fclass.s t1,f1", FORMAT_R,
		"1110000 00000 sssss 001 fffff 1010011",
		"Classify a floating point number"),
	NewBasic("fmadd.s f1,f2,f3,f4", FORMAT_R4,
		"qqqqq 00 ttttt sssss 111 fffff 1000011",
		"Fused Multiply Add: Assigns f2*f3+f4 to f1"),
	NewBasic("fmsub.s f1,f2,f3,f4", FORMAT_R4,
		"qqqqq 00 ttttt sssss 111 fffff 1000111",
		"Fused Multiply Subtract: Assigns f2*f3-f4 to f1"),
	NewBasic("fnmsub.s f1,f2,f3,f4", FORMAT_R4,
		"qqqqq 00 ttttt sssss 111 fffff 1001011",
		"Fused Negate Multiply Subtract: Assigns -(f2*f3-f4) to f1"),
	NewBasic("fnmadd.s f1,f2,f3,f4", FORMAT_R4,
		"qqqqq 00 ttttt sssss 111 fffff 1001111",
		"Fused Negate Multiply Add: Assigns -(f2*f3+f4) to f1"),
}

// rv32Extended lists the pseudo instructions.
var rv32Extended = []Instruction{
	NewExtended("nop", "NO OPeration",
		"addi x0, x0, 0"),
	NewExtended("mv t1,t2", "MoVe: set t1 to contents of t2",
		"add RG1, x0, RG2"),
	NewExtended("not t1,t2", "Bitwise NOT (bit inversion)",
		"xori RG1, RG2, -1"),
	NewExtended("neg t1,t2", "NEGate: set t1 to negation of t2",
		"sub RG1, x0, RG2"),
	NewExtended("li t1,-100", "Load Immediate: set t1 to 12-bit immediate (sign-extended)",
		"addi RG1, x0, VL2"),
	NewExtended("li t1,1000000000", "Load Immediate: set t1 to 32-bit immediate",
		"lui RG1, VH2", "addi RG1, RG1, VL2"),
	NewExtended("la t1,label", "Load Address: set t1 to label's address",
		"auipc RG1, PCH2", "addi RG1, RG1, PCL2"),
	NewExtended("lb t1,(t2)", "Load from the address in t2 (shorthand for lb t1,0(t2))",
		"lb RG1, 0(RG3)"),
	NewExtended("lb t1,label", "Load from the address of label",
		"auipc RG1, PCH2", "lb RG1, PCL2(RG1)"),
	NewExtended("lh t1,(t2)", "Load from the address in t2 (shorthand for lh t1,0(t2))",
		"lh RG1, 0(RG3)"),
	NewExtended("lh t1,label", "Load from the address of label",
		"auipc RG1, PCH2", "lh RG1, PCL2(RG1)"),
	NewExtended("lw t1,(t2)", "Load from the address in t2 (shorthand for lw t1,0(t2))",
		"lw RG1, 0(RG3)"),
	NewExtended("lw t1,label", "Load from the address of label",
		"auipc RG1, PCH2", "lw RG1, PCL2(RG1)"),
	NewExtended("lbu t1,(t2)", "Load from the address in t2 (shorthand for lbu t1,0(t2))",
		"lbu RG1, 0(RG3)"),
	NewExtended("lbu t1,label", "Load from the address of label",
		"auipc RG1, PCH2", "lbu RG1, PCL2(RG1)"),
	NewExtended("lhu t1,(t2)", "Load from the address in t2 (shorthand for lhu t1,0(t2))",
		"lhu RG1, 0(RG3)"),
	NewExtended("lhu t1,label", "Load from the address of label",
		"auipc RG1, PCH2", "lhu RG1, PCL2(RG1)"),
	NewExtended("sb t1,(t2)", "Store to the address in t2 (shorthand for sb t1,0(t2))",
		"sb RG1, 0(RG3)"),
	NewExtended("sb t1,label,t2", "Store to the address of label using t2 as a temporary",
		"auipc RG3, PCH2", "sb RG1, PCL2(RG3)"),
	NewExtended("sh t1,(t2)", "Store to the address in t2 (shorthand for sh t1,0(t2))",
		"sh RG1, 0(RG3)"),
	NewExtended("sh t1,label,t2", "Store to the address of label using t2 as a temporary",
		"auipc RG3, PCH2", "sh RG1, PCL2(RG3)"),
	NewExtended("sw t1,(t2)", "Store to the address in t2 (shorthand for sw t1,0(t2))",
		"sw RG1, 0(RG3)"),
	NewExtended("sw t1,label,t2", "Store to the address of label using t2 as a temporary",
		"auipc RG3, PCH2", "sw RG1, PCL2(RG3)"),
	NewExtended("flw f1,(t1)", "Load a float from the address in t1",
		"flw RG1, 0(RG3)"),
	NewExtended("flw f1,label,t1", "Load a float from the address of label using t1 as a temporary",
		"auipc RG3, PCH2", "flw RG1, PCL2(RG3)"),
	NewExtended("fsw f1,(t1)", "Store a float to the address in t1",
		"fsw RG1, 0(RG3)"),
	NewExtended("fsw f1,label,t1", "Store a float to the address of label using t1 as a temporary",
		"auipc RG3, PCH2", "fsw RG1, PCL2(RG3)"),
	NewExtended("b label", "Branch unconditionally to label",
		"jal x0, LAB"),
	NewExtended("j label", "Jump to statement at label",
		"jal x0, LAB"),
	NewExtended("jal label", "Jump and link to statement at label",
		"jal x1, LAB"),
	NewExtended("jr t1", "Jump Register: jump to address in t1",
		"jalr x0, RG1, 0"),
	NewExtended("jalr t1", "Jump And Link Register: jump to address in t1 and set the return address to ra",
		"jalr x1, RG1, 0"),
	NewExtended("jalr t1,-100(t2)", "Jump And Link Register: jump to address t2+immediate and set the return address to t1",
		"jalr RG1, RG4, RG2"),
	NewExtended("ret", "Return: return from a subroutine",
		"jalr x0, x1, 0"),
	NewExtended("call label", "CALL: call a far-away subroutine",
		"auipc x1, PCH1", "jalr x1, x1, PCL1"),
	NewExtended("tail label", "TAIL call: call a far-away subroutine without saving the return address",
		"auipc x6, PCH1", "jalr x0, x6, PCL1"),
	NewExtended("beqz t1,label", "Branch if EQual Zero",
		"beq RG1, x0, LAB"),
	NewExtended("bnez t1,label", "Branch if Not Equal Zero",
		"bne RG1, x0, LAB"),
	NewExtended("blez t1,label", "Branch if Less than or Equal to Zero",
		"bge x0, RG1, LAB"),
	NewExtended("bgez t1,label", "Branch if Greater than or Equal to Zero",
		"bge RG1, x0, LAB"),
	NewExtended("bltz t1,label", "Branch if Less Than Zero",
		"blt RG1, x0, LAB"),
	NewExtended("bgtz t1,label", "Branch if Greater Than Zero",
		"blt x0, RG1, LAB"),
	NewExtended("bgt t1,t2,label", "Branch if Greater Than",
		"blt RG2, RG1, LAB"),
	NewExtended("ble t1,t2,label", "Branch if Less than or Equal",
		"bge RG2, RG1, LAB"),
	NewExtended("bgtu t1,t2,label", "Branch if Greater Than (unsigned)",
		"bltu RG2, RG1, LAB"),
	NewExtended("bleu t1,t2,label", "Branch if Less than or Equal (unsigned)",
		"bgeu RG2, RG1, LAB"),
	NewExtended("seqz t1,t2", "Set EQual to Zero: if t2 == 0 then set t1 to 1 else 0",
		"sltiu RG1, RG2, 1"),
	NewExtended("snez t1,t2", "Set Not Equal to Zero: if t2 != 0 then set t1 to 1 else 0",
		"sltu RG1, x0, RG2"),
	NewExtended("sltz t1,t2", "Set Less Than Zero: if t2 < 0 then set t1 to 1 else 0",
		"slt RG1, RG2, x0"),
	NewExtended("sgtz t1,t2", "Set Greater Than Zero: if t2 > 0 then set t1 to 1 else 0",
		"slt RG1, x0, RG2"),
	NewExtended("csrr t1,fcsr", "Read control and status register",
		"csrrs RG1, RG2, x0"),
	NewExtended("csrw t1,fcsr", "Write control and status register",
		"csrrw x0, RG2, RG1"),
	NewExtended("csrs t1,fcsr", "Set bits in control and status register",
		"csrrs x0, RG2, RG1"),
	NewExtended("csrc t1,fcsr", "Clear bits in control and status register",
		"csrrc x0, RG2, RG1"),
	NewExtended("csrwi fcsr,10", "Write control and status register",
		"csrrwi x0, RG1, RG2"),
	NewExtended("rdcycle t1", "Read from cycle",
		"csrrs RG1, cycle, x0"),
	NewExtended("rdtime t1", "Read from time",
		"csrrs RG1, time, x0"),
	NewExtended("rdinstret t1", "Read from instret",
		"csrrs RG1, instret, x0"),
	NewExtended("frcsr t1", "Read FP control/status register",
		"csrrs RG1, fcsr, x0"),
	NewExtended("fscsr t1", "Write FP control/status register",
		"csrrw x0, fcsr, RG1"),
	NewExtended("fmv.s f1,f2", "Move the value of f2 to f1",
		"fsgnj.s RG1, RG2, RG2"),
	NewExtended("fneg.s f1,f2", "Set f1 to the negation of f2",
		"fsgnjn.s RG1, RG2, RG2"),
	NewExtended("fabs.s f1,f2", "Set f1 to the absolute value of f2",
		"fsgnjx.s RG1, RG2, RG2"),
}

// Default is the RV32IMF instruction set with pseudo instructions.
var Default = NewSet(append(append([]Instruction{}, rv32Basic...), rv32Extended...)...)
