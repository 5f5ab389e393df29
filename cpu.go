// Package sh2 implements a Hitachi SH-2 32-bit RISC CPU interpreter.
//
// The SH-2 is a 32-bit internal/external load-store RISC processor with:
//   - Sixteen 32-bit general-purpose registers (R0-R15), where R15 also
//     serves as the stack pointer
//   - A 32-bit status register (SR) carrying the T/S/M/Q condition bits
//     and the 4-bit interrupt mask
//   - GBR/VBR base registers, a MACH:MACL multiply-accumulate pair, PR
//     (procedure return) and PC
//   - A delayed-branch pipeline: the instruction following a branch
//     always executes before the branch target takes effect
package sh2

import (
	"errors"
	"fmt"
	"log"
)

// CPUState describes the top-level execution state of the sequencer.
type CPUState int

const (
	StatePowerOff CPUState = iota
	StateProgramExecution
	StateSleep
	StateStandby
	StateExceptionProcessing
)

// String implements fmt.Stringer for trace/debug output.
func (s CPUState) String() string {
	switch s {
	case StatePowerOff:
		return "PowerOff"
	case StateProgramExecution:
		return "ProgramExecution"
	case StateSleep:
		return "Sleep"
	case StateStandby:
		return "Standby"
	case StateExceptionProcessing:
		return "ExceptionProcessing"
	default:
		return "Unknown"
	}
}

// CPU is the SH-2 processor core. A CPU is not goroutine safe; the
// embedder must serialize Cycle/IRQ/NMI calls, e.g. by draining a queue
// of cross-thread IRQ requests between cycles (spec guidance, §5).
type CPU struct {
	reg   Registers
	bus   Bus
	state CPUState

	// delayTarget is the pending PC for the next fetch once the current
	// instruction (the delay slot) completes. Zero means no delayed
	// branch is in flight.
	delayTarget uint32

	// currentDelayTarget is the scratch value captured at the top of
	// the cycle that is executing in a delay slot; zero otherwise.
	// Illegal-slot detection reads this value.
	currentDelayTarget uint32

	// instrPC is the address the current instruction was fetched from.
	instrPC uint32

	irqPending uint8

	// Logger receives diagnostics for guest-visible anomalies (illegal
	// instruction, illegal slot). Defaults to log.Default(); set to a
	// logger with output discarded to silence it.
	Logger *log.Logger
}

// ErrNilBus is returned by New when given a nil bus.
var ErrNilBus = errors.New("sh2: bus must not be nil")

// ErrInvalidIRQLine is returned by IRQ for lines outside 0-7.
var ErrInvalidIRQLine = errors.New("sh2: invalid IRQ line")

// New constructs a CPU wired to the given bus. The CPU starts in
// PowerOff state with all registers zeroed; call PowerOn to perform the
// hardware reset sequence.
func New(bus Bus) (*CPU, error) {
	if bus == nil {
		return nil, ErrNilBus
	}
	return &CPU{bus: bus, Logger: log.Default()}, nil
}

// PowerOn performs a hard reset: PC and SP (R15) are loaded from the
// vector table at addresses 0x00000000 and 0x00000004, VBR is cleared,
// the interrupt mask is set to 0xF, and the CPU enters ProgramExecution.
func (c *CPU) PowerOn() {
	c.reg = Registers{}
	c.reg.VBR = 0
	c.reg.PC = c.bus.Read32(0x00000000)
	c.reg.R[RegSP] = c.bus.Read32(0x00000004)
	c.reg.SetIMask(0xF)
	c.delayTarget = 0
	c.currentDelayTarget = 0
	c.irqPending = 0
	c.state = StateProgramExecution
}

// SoftReset performs a soft reset: PC and SP are loaded from VBR+0x08
// and VBR+0x0C, then VBR itself is cleared.
func (c *CPU) SoftReset() {
	vbr := c.reg.VBR
	c.reg.PC = c.bus.Read32(vbr + 0x08)
	c.reg.R[RegSP] = c.bus.Read32(vbr + 0x0C)
	c.reg.VBR = 0
	c.delayTarget = 0
	c.currentDelayTarget = 0
	c.state = StateProgramExecution
}

// State returns the current sequencer state.
func (c *CPU) State() CPUState { return c.state }

// Registers returns a snapshot of the programmer-visible register file.
func (c *CPU) Registers() Registers { return c.reg }

// SetRegisters overwrites the register file directly. Intended for
// tests and save-state restore, where exact CPU state must be
// established without running a reset sequence.
func (c *CPU) SetRegisters(r Registers) { c.reg = r }

// IRQ asserts an external interrupt request line (0-7). Line 7 is the
// highest priority maskable level.
func (c *CPU) IRQ(line int) error {
	if line < 0 || line > 7 {
		return fmt.Errorf("%w: %d", ErrInvalidIRQLine, line)
	}
	c.irqPending |= 1 << uint(line)
	return nil
}

// NMI takes a non-maskable interrupt immediately, regardless of the SR
// interrupt mask: SR and PC are pushed, PC is set to VBR+0x2C, and the
// interrupt mask is raised to 0xF before NMI returns.
func (c *CPU) NMI() {
	c.enterException(vecNMI, c.reg.PC)
	c.reg.SetIMask(0xF)
}

// Cycle advances the CPU by one step. In PowerOff it does nothing. In
// Sleep and Standby it only arbitrates pending IRQs, so an accepted IRQ
// moves the CPU to ExceptionProcessing without executing an instruction.
// Otherwise it arbitrates pending IRQs and then fetches and executes one
// instruction; when an IRQ was accepted, that instruction is the first
// one of the interrupt handler.
func (c *CPU) Cycle() {
	switch c.state {
	case StatePowerOff:
		return
	case StateSleep, StateStandby:
		c.arbitrateIRQ()
		return
	default: // ProgramExecution, ExceptionProcessing
		c.arbitrateIRQ()
		if c.state != StateProgramExecution && c.state != StateExceptionProcessing {
			return
		}
		c.fetchAndExecute()
	}
}

// fetchAndExecute performs one fetch/PC-update/dispatch step.
func (c *CPU) fetchAndExecute() {
	instrPC := c.reg.PC
	opcode := c.bus.Read16(instrPC)
	c.instrPC = instrPC

	if c.delayTarget != 0 {
		c.currentDelayTarget = c.delayTarget
		c.reg.PC = c.delayTarget
		c.delayTarget = 0
	} else {
		c.currentDelayTarget = 0
		c.reg.PC = instrPC + 2
	}

	handler := opcodeTable[opcode]
	if handler == nil {
		c.Logger.Printf("sh2: illegal instruction %#04x at %#08x", opcode, instrPC)
		c.raiseIllegalInstruction()
		return
	}
	handler(c, opcode)
}

// push32 pushes a 32-bit value onto the stack (R15), predecrementing
// R15 by 4 first.
func (c *CPU) push32(v uint32) {
	c.reg.R[RegSP] -= 4
	c.bus.Write32(c.reg.R[RegSP], v)
}

// pop32 pops a 32-bit value from the stack (R15), postincrementing R15
// by 4.
func (c *CPU) pop32() uint32 {
	v := c.bus.Read32(c.reg.R[RegSP])
	c.reg.R[RegSP] += 4
	return v
}
