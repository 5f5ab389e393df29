package sh2

import "testing"

// TestIllegalInstructionVector checks that an unmapped opcode enters the
// illegal-instruction exception at VBR+0x10, pushing the faulting PC.
func TestIllegalInstructionVector(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.VBR = 0x4000
	bus.Write16(cpu.reg.PC, 0xFFFF) // never assigned by any register* func

	faultPC := cpu.reg.PC
	sp := cpu.reg.R[RegSP]
	cpu.Cycle()

	if cpu.reg.PC != 0x4010 {
		t.Errorf("PC = %#x, want 0x4010", cpu.reg.PC)
	}
	if cpu.State() != StateExceptionProcessing {
		t.Errorf("state = %v, want ExceptionProcessing", cpu.State())
	}
	pushedPC := bus.Read32(sp - 8) // SR went to sp-4 first, then PC to sp-8
	if pushedPC != faultPC {
		t.Errorf("pushed PC = %#x, want %#x", pushedPC, faultPC)
	}
}

// TestIllegalSlotInstruction covers universal property 7: a branch
// placed in another branch's delay slot faults at VBR+0x18 with the
// outer branch's target pushed as PC.
func TestIllegalSlotInstruction(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.VBR = 0x4000
	cpu.reg.PC = 0x200
	bus.Write16(0x200, 0xA001) // BRA disp=1 -> target (0x200+4)+1*2 = 0x206
	bus.Write16(0x202, 0xA000) // BRA disp=0, illegally placed in delay slot

	cpu.Cycle() // dispatch outer BRA, delayTarget = 0x206
	cpu.Cycle() // delay slot is itself a branch: illegal slot fault

	if cpu.reg.PC != 0x4018 {
		t.Errorf("PC = %#x, want 0x4018", cpu.reg.PC)
	}
	if cpu.State() != StateExceptionProcessing {
		t.Errorf("state = %v, want ExceptionProcessing", cpu.State())
	}
	pushedPC := bus.Read32(cpu.reg.R[RegSP])
	if pushedPC != 0x206 {
		t.Errorf("pushed PC = %#x, want 0x206 (outer branch's target)", pushedPC)
	}
}

// TestBFInDelaySlotIsIllegal checks that a non-delayed conditional
// branch (BF) placed in another branch's delay slot still faults, even
// when its own condition would not have taken it.
func TestBFInDelaySlotIsIllegal(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.VBR = 0x4000
	cpu.reg.PC = 0x200
	cpu.reg.SetT(true)        // BF would not be taken on its own
	bus.Write16(0x200, 0xA001) // BRA disp=1 -> target (0x200+4)+1*2 = 0x206
	bus.Write16(0x202, 0x8B00) // BF +0, illegally placed in delay slot

	cpu.Cycle() // dispatch outer BRA
	cpu.Cycle() // delay slot is BF: illegal slot fault regardless of T

	if cpu.reg.PC != 0x4018 {
		t.Errorf("PC = %#x, want 0x4018", cpu.reg.PC)
	}
	if cpu.State() != StateExceptionProcessing {
		t.Errorf("state = %v, want ExceptionProcessing", cpu.State())
	}
}

// TestIRQArbitration checks that a pending IRQ above the current mask
// is accepted, vectors to VBR+0x100+line*4, and raises the mask to the
// accepted level, while a lower-or-equal-priority line is deferred.
func TestIRQArbitration(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.VBR = 0x8000
	cpu.reg.SetIMask(3)
	bus.Write16(cpu.reg.PC, 0x0009) // NOP, should not execute this cycle

	vector := uint32(0x8000 + 0x100 + 5*4)
	bus.Write16(vector, 0x0009) // NOP at the handler entry, so arbitration's
	// own fetchAndExecute call (same Cycle) has a valid instruction to run

	if err := cpu.IRQ(5); err != nil {
		t.Fatalf("IRQ(5): %v", err)
	}
	cpu.Cycle()

	if cpu.reg.PC != vector+2 {
		t.Errorf("PC = %#x, want %#x", cpu.reg.PC, vector+2)
	}
	if cpu.reg.IMask() != 5 {
		t.Errorf("IMask = %d, want 5", cpu.reg.IMask())
	}
}

// TestIRQMaskedDefers checks a line at or below the current mask stays
// pending instead of being accepted.
func TestIRQMaskedDefers(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.SetIMask(5)
	startPC := cpu.reg.PC
	bus.Write16(cpu.reg.PC, 0x0009) // NOP

	if err := cpu.IRQ(3); err != nil {
		t.Fatalf("IRQ(3): %v", err)
	}
	cpu.Cycle()

	if cpu.State() != StateProgramExecution {
		t.Errorf("state = %v, want ProgramExecution (IRQ should be masked)", cpu.State())
	}
	if cpu.reg.PC != startPC+2 {
		t.Errorf("PC = %#x, want %#x (NOP should have executed)", cpu.reg.PC, startPC+2)
	}
}

// TestInvalidIRQLine checks the 0-7 validation on IRQ.
func TestInvalidIRQLine(t *testing.T) {
	cpu, _ := newTestCPU()
	if err := cpu.IRQ(8); err == nil {
		t.Error("IRQ(8): want error, got nil")
	}
	if err := cpu.IRQ(-1); err == nil {
		t.Error("IRQ(-1): want error, got nil")
	}
}

// TestNMIUnconditional checks NMI fires even with the mask at maximum.
func TestNMIUnconditional(t *testing.T) {
	cpu, _ := newTestCPU()
	cpu.reg.VBR = 0x9000
	cpu.reg.SetIMask(0xF)

	cpu.NMI()

	if cpu.reg.PC != 0x9000+0x2C {
		t.Errorf("PC = %#x, want %#x", cpu.reg.PC, 0x9000+0x2C)
	}
	if cpu.reg.IMask() != 0xF {
		t.Errorf("IMask = %d, want 0xF after NMI", cpu.reg.IMask())
	}
}

// TestTRAPA checks the TRAPA vector offset scales with the immediate.
func TestTRAPA(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.VBR = 0x2000
	bus.Write16(cpu.reg.PC, 0xC310) // TRAPA #0x10

	cpu.Cycle()

	if cpu.reg.PC != 0x2000+0x80+0x10*4 {
		t.Errorf("PC = %#x, want %#x", cpu.reg.PC, 0x2000+0x80+0x10*4)
	}
}

// TestRTERestoresState checks that RTE pops PC then SR (stack order),
// restores ProgramExecution, and defers the jump through the delay slot
// like any other delayed branch.
func TestRTERestoresState(t *testing.T) {
	cpu, bus := newTestCPU()
	cpu.reg.PC = 0x300
	cpu.push32(0x1234) // SR (bottom)
	cpu.push32(0x5678) // PC (top)
	bus.Write16(0x300, 0x002B) // RTE
	bus.Write16(0x302, 0x0009) // delay slot NOP

	cpu.state = StateExceptionProcessing
	cpu.Cycle() // dispatch RTE
	if cpu.State() != StateProgramExecution {
		t.Errorf("state after RTE dispatch = %v, want ProgramExecution", cpu.State())
	}
	cpu.Cycle() // delay slot executes, PC lands on popped value

	if cpu.reg.PC != 0x5678 {
		t.Errorf("PC = %#x, want 0x5678", cpu.reg.PC)
	}
	if cpu.reg.SR != 0x1234&srMask {
		t.Errorf("SR = %#x, want %#x", cpu.reg.SR, 0x1234&srMask)
	}
}
